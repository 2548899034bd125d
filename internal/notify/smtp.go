package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/theraaajj/voxguard/internal/config"
	"github.com/theraaajj/voxguard/internal/logger"
)

type implNotifier struct {
	cfg    config.SMTPConfig
	logger logger.Logger
}

// New creates an SMTP Notifier. An empty host disables delivery; Send then
// logs and returns nil so unconfigured installs still complete pipelines.
func New(cfg config.SMTPConfig, log logger.Logger) Notifier {
	return &implNotifier{cfg: cfg, logger: log}
}

func (n *implNotifier) Send(ctx context.Context, subject, body, videoTitle, videoURL string) error {
	if n.cfg.Host == "" {
		n.logger.Info(ctx, "SMTP not configured, skipping notification for %s", videoTitle)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", n.cfg.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", renderHTML(body, videoTitle, videoURL))

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.Username, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	n.logger.Info(ctx, "Notification sent: %s", subject)
	return nil
}

// renderHTML wraps the markdown report in a minimal HTML shell with a link
// back to the source video. No markdown rendering beyond line breaks; mail
// clients show the report as-is.
func renderHTML(markdown, videoTitle, videoURL string) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(videoTitle))
	fmt.Fprintf(&b, "<p><a href=%q>%s</a></p>", videoURL, html.EscapeString(videoURL))
	b.WriteString("<pre style=\"font-family:inherit;white-space:pre-wrap\">")
	b.WriteString(html.EscapeString(markdown))
	b.WriteString("</pre></body></html>")
	return b.String()
}

package notify

import "context"

// Notifier delivers the finished report to a human. Delivery failures are
// the caller's to log; nothing downstream depends on them.
type Notifier interface {
	Send(ctx context.Context, subject, body, videoTitle, videoURL string) error
}

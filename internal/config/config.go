package config

import "fmt"

type Config struct {
	Whisper  WhisperConfig  `yaml:"whisper"`
	Diarize  DiarizeConfig  `yaml:"diarize"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Report   ReportConfig   `yaml:"report"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	Storage  StorageConfig  `yaml:"storage"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Paths    PathsConfig    `yaml:"paths"`
	Watch    WatchConfig    `yaml:"watch"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type DiarizeConfig struct {
	// Command produces RTTM on stdout for the audio path appended as the
	// final argument. Empty command means diarization runs in degraded mode.
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

type AnalysisConfig struct {
	SampleRate     int     `yaml:"sample_rate"`
	FrameStride    int     `yaml:"frame_stride"`
	TrustThreshold float64 `yaml:"trust_threshold"`
	NoiseCap       float64 `yaml:"noise_cap"`
}

type ReportConfig struct {
	SingleShotMaxChars int `yaml:"single_shot_max_chars"`
	ShortWordCount     int `yaml:"short_word_count"`
	ChunkSize          int `yaml:"chunk_size"`
	MapDelaySeconds    int `yaml:"map_delay_seconds"`
}

type GeminiConfig struct {
	APIKeys    []string `yaml:"api_keys"`
	Model      string   `yaml:"model"`
	EmbedModel string   `yaml:"embed_model"`
}

type StorageConfig struct {
	DatabasePath    string `yaml:"database_path"`
	VectorIndexPath string `yaml:"vector_index_path"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
}

type PathsConfig struct {
	Data    string `yaml:"data"`
	Reports string `yaml:"reports"`
}

type WatchConfig struct {
	Input         string `yaml:"input"`
	MaxConcurrent int    `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required")
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Analysis.SampleRate == 0 {
		c.Analysis.SampleRate = 16000
	}
	if c.Analysis.FrameStride == 0 {
		c.Analysis.FrameStride = 512
	}
	if c.Analysis.TrustThreshold == 0 {
		c.Analysis.TrustThreshold = 0.6
	}
	if c.Analysis.NoiseCap == 0 {
		c.Analysis.NoiseCap = 0.5
	}
	if c.Report.SingleShotMaxChars == 0 {
		c.Report.SingleShotMaxChars = 15000
	}
	if c.Report.ShortWordCount == 0 {
		c.Report.ShortWordCount = 300
	}
	if c.Report.ChunkSize == 0 {
		c.Report.ChunkSize = 6000
	}
	if c.Report.MapDelaySeconds == 0 {
		c.Report.MapDelaySeconds = 5
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.EmbedModel == "" {
		c.Gemini.EmbedModel = "gemini-embedding-001"
	}
	if c.Storage.DatabasePath == "" {
		c.Storage.DatabasePath = "voxguard.db"
	}
	if c.Storage.VectorIndexPath == "" {
		c.Storage.VectorIndexPath = "data/vector_index.json"
	}
	if c.Paths.Data == "" {
		c.Paths.Data = "data"
	}
	if c.Paths.Reports == "" {
		c.Paths.Reports = "data/reports"
	}
	if c.Watch.Input == "" {
		c.Watch.Input = "inbox"
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 1
	}

	return nil
}

package config

import "time"

// UI mode values accepted by the ui.mode setting.
const (
	UIModeAuto  = "auto"
	UIModeLive  = "live"
	UIModePlain = "plain"
)

// DefaultNoticeSeconds is how long the result notice stays visible when
// ui.notice_seconds is absent. An explicit 0 keeps the notice on screen.
const DefaultNoticeSeconds = 4

// Config is the optional .geoquiz.yml settings file.
type Config struct {
	UI  UIConfig  `yaml:"ui"`
	Log LogConfig `yaml:"log"`
}

// UIConfig configures the presentation layer.
type UIConfig struct {
	Mode          string `yaml:"mode"`
	NoColor       bool   `yaml:"no_color"`
	NoticeSeconds int    `yaml:"notice_seconds"`
	AltScreen     bool   `yaml:"alt_screen"`
}

// LogConfig configures the diagnostic log file.
type LogConfig struct {
	Path    string `yaml:"path"`
	Verbose bool   `yaml:"verbose"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		UI: UIConfig{
			Mode:          UIModeAuto,
			NoticeSeconds: DefaultNoticeSeconds,
		},
	}
}

// NoticeDuration returns the result notice lifetime.
func (c UIConfig) NoticeDuration() time.Duration {
	return time.Duration(c.NoticeSeconds) * time.Second
}

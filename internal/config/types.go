package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the teeform configuration document.
type Config struct {
	Theme   string        `yaml:"theme" toml:"theme" validate:"required,theme"`
	Log     LogConfig     `yaml:"log" toml:"log"`
	Submit  SubmitConfig  `yaml:"submit" toml:"submit"`
	Preview PreviewConfig `yaml:"preview" toml:"preview"`
}

// LogConfig controls where and how verbosely the application logs.
type LogConfig struct {
	Level         string `yaml:"level" toml:"level" validate:"required,log_level"`
	File          string `yaml:"file" toml:"file"`
	HumanReadable bool   `yaml:"human_readable" toml:"human_readable"`
}

// SubmitConfig tunes the stub submitter.
type SubmitConfig struct {
	Delay time.Duration `yaml:"delay" toml:"delay" validate:"gte=0,lte=1m"`
}

// PreviewConfig sizes the uploaded image thumbnail, in terminal cells.
type PreviewConfig struct {
	Width int `yaml:"width" toml:"width" validate:"gte=8,lte=80"`
}

// DefaultLogFile is used when log.file is empty.
const DefaultLogFile = "teeform.log"

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Theme: "light",
		Log: LogConfig{
			Level: "info",
		},
		Submit: SubmitConfig{
			Delay: time.Second,
		},
		Preview: PreviewConfig{
			Width: 24,
		},
	}
}

// LogFilePath resolves the log destination, falling back to the temp directory.
func (c *Config) LogFilePath() string {
	if c == nil || c.Log.File == "" {
		return filepath.Join(os.TempDir(), DefaultLogFile)
	}
	return c.Log.File
}

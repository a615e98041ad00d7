package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/teeform/internal/config"
)

type rootFlags struct {
	configPath string
	theme      string
	logFile    string
	logLevel   string
}

func (f *rootFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "Path to a YAML or TOML configuration file")
	cmd.PersistentFlags().StringVar(&f.theme, "theme", "", "Starting theme: light, dark or colorful")
	cmd.PersistentFlags().StringVar(&f.logFile, "log-file", "", "Log file for the interactive form (default $TMPDIR/teeform.log)")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
}

// loadConfig reads the config file and applies any flags the user set.
func loadConfig(cmd *cobra.Command, f *rootFlags) (*config.Config, error) {
	cfg, err := config.ParseConfig(f.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("theme") {
		cfg.Theme = f.theme
	}
	if changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

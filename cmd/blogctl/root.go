package main

import (
	"github.com/spf13/cobra"

	"blog-cms/internal/config"
	"blog-cms/internal/logger"
)

// loadConfig is replaced in tests.
var loadConfig = config.Load

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blogctl",
		Short:         "Maintenance commands for the blog",
		SilenceUsage:  true,
	}

	root.AddCommand(newMigrateCmd(), newSeedCmd())
	return root
}

// setup loads configuration and applies the logging settings.
func setup() (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	return cfg, nil
}

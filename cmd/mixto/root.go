package main

import (
	"context"
	"fmt"
	"os"

	"mixto_gestao/internal/bootstrap"
	"mixto_gestao/internal/config"
	"mixto_gestao/internal/logger"

	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagDriver string
)

var rootCmd = &cobra.Command{
	Use:           "mixto",
	Short:         "Gestão de clientes, orçamentos e obras",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "  erro:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", os.Getenv("CONFIG_FILE"), "YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagDriver, "driver", "", "Override the storage driver")
}

// openApp loads configuration and storage shared by every subcommand.
// Commands other than serve log only warnings.
func openApp(ctx context.Context, server bool) (*bootstrap.App, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDriver != "" {
		cfg.Storage.Driver = flagDriver
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if !server {
		cfg.Log.Level = "warn"
		cfg.Log.Format = "console"
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(ctx, cfg, zl)
}

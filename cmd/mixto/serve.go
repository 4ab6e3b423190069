package main

import (
	"os"
	"os/signal"
	"syscall"

	"mixto_gestao/internal/adapter/http/routes"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, err := openApp(ctx, true)
		if err != nil {
			return err
		}
		defer app.Close()
		return routes.Run(ctx, app)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

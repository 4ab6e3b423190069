package main

import (
	"fmt"

	"mixto_gestao/internal/cli"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard totals and monthly revenue",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := openApp(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer app.Close()

		fmt.Println()
		fmt.Println(cli.RenderTitle("MIXTO · PAINEL"))
		fmt.Println()
		fmt.Print(cli.RenderDashboard(app.Stats.Dashboard(cmd.Context())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

package main

import (
	"fmt"

	"mixto_gestao/internal/cli"
	"mixto_gestao/internal/domain/entities"

	"github.com/spf13/cobra"
)

var flagStatus string

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "List budgets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := openApp(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer app.Close()

		budgets, err := app.Budgets.List(cmd.Context(), flagStatus)
		if err != nil {
			return err
		}
		snapshot := app.Workspace.Snapshot()
		lines := make([]cli.BudgetLine, 0, len(budgets))
		for _, b := range budgets {
			name := entities.UnknownClientName
			if c, ok := snapshot.FindClient(b.ClientID); ok {
				name = c.Name
			}
			lines = append(lines, cli.BudgetLine{Budget: b, ClientName: name})
		}

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("Orçamentos (%d)", len(lines)),
			Headers: cli.BudgetHeaders,
			Rows:    cli.BudgetRows(lines),
		}))
		return nil
	},
}

func init() {
	budgetsCmd.Flags().StringVarP(&flagStatus, "status", "s", "", "Filter by status")
	rootCmd.AddCommand(budgetsCmd)
}

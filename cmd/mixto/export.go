package main

import (
	"fmt"
	"os"

	"mixto_gestao/internal/infrastructure/reports"

	"github.com/spf13/cobra"
)

var flagOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export budgets as PDF or XLSX",
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf <NNN/YYYY>",
	Short: "Write the PDF of one budget",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer app.Close()

		doc, err := app.Reports.BudgetPDF(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out := flagOutput
		if out == "" {
			out = reports.PDFFileName(args[0])
		}
		return writeExport(out, doc)
	},
}

var exportXLSXCmd = &cobra.Command{
	Use:   "xlsx",
	Short: "Write a spreadsheet with every budget",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := openApp(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer app.Close()

		doc, err := app.Reports.BudgetsSpreadsheet(cmd.Context())
		if err != nil {
			return err
		}
		out := flagOutput
		if out == "" {
			out = "orcamentos.xlsx"
		}
		return writeExport(out, doc)
	},
}

func writeExport(path string, doc []byte) error {
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return err
	}
	fmt.Printf("  %s (%d bytes)\n", path, len(doc))
	return nil
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Output file")
	exportCmd.AddCommand(exportPDFCmd, exportXLSXCmd)
	rootCmd.AddCommand(exportCmd)
}

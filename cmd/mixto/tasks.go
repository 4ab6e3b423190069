package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"mixto_gestao/internal/cli"

	"github.com/spf13/cobra"
)

var flagYes bool

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage project tasks",
}

var tasksRemoveCmd = &cobra.Command{
	Use:   "remove <NNN/YYYY> <task-id>",
	Short: "Remove a task from a budget",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed := flagYes
		if !confirmed {
			fmt.Print(cli.Warn(fmt.Sprintf("  Remover a tarefa %s do orçamento %s? [s/N] ", args[1], args[0])))
			answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			confirmed = isYes(answer)
		}
		if !confirmed {
			fmt.Println("  Nada foi alterado.")
			return nil
		}

		app, err := openApp(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer app.Close()

		b, err := app.Tasks.RemoveTask(cmd.Context(), args[0], args[1], true)
		if err != nil {
			return err
		}
		fmt.Printf("  Tarefa removida. Progresso do orçamento %s: %d%%\n", b.ID, b.ProgressPercent())
		return nil
	},
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "sim", "y", "yes":
		return true
	}
	return false
}

func init() {
	tasksRemoveCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")
	tasksCmd.AddCommand(tasksRemoveCmd)
	rootCmd.AddCommand(tasksCmd)
}

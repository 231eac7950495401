package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timvw/todo-tui/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the todo list to stdout",
	Long: `Print the todo list to stdout, one item per line.

Completed items are marked [x]. Reads the same snapshot file as the
interactive list, so this is handy in scripts and shell prompts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}

		st := store.New(cfg.Store, store.WithObserver(warnOnBadSnapshot(cfg.Store)))
		for _, item := range st.LoadOrDefault().Items() {
			mark := " "
			if item.Completed {
				mark = "x"
			}
			fmt.Printf("[%s] %s\n", mark, item.Text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

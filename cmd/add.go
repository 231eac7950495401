package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/timvw/todo-tui/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Append a todo without opening the interactive list",
	Long: `Append a todo to the snapshot and exit.

Multiple arguments are joined with spaces. The text is stored verbatim.
Unlike the interactive list, a failed write is reported: a script needs
to know its item was not recorded.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}

		st := store.New(cfg.Store, store.WithObserver(warnOnBadSnapshot(cfg.Store)))
		list := st.LoadOrDefault()
		text := strings.Join(args, " ")
		list.Append(text)
		if err := st.Save(list.Items()); err != nil {
			return fmt.Errorf("adding todo: %w", err)
		}

		fmt.Printf("added: %s\n", text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}

// warnOnBadSnapshot logs when an existing snapshot could not be read.
// A missing file is the normal first-run case and stays silent, matching
// the interactive list's behavior.
func warnOnBadSnapshot(path string) store.Observer {
	return func(o store.Outcome) {
		if o.Op == store.OpLoad && o.Fallback && o.Err != nil && !errors.Is(o.Err, os.ErrNotExist) {
			log.Warn("snapshot unreadable, starting from defaults", "path", path, "err", o.Err)
		}
	}
}

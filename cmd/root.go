package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/timvw/todo-tui/internal/config"
	"github.com/timvw/todo-tui/internal/otel"
	"github.com/timvw/todo-tui/internal/store"
	"github.com/timvw/todo-tui/internal/tui"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

var (
	// Global flags.
	flagStore string
	flagTheme string
)

var rootCmd = &cobra.Command{
	Use:   "todo-tui",
	Short: "Interactive terminal todo list",
	Long: `todo-tui is a small modal todo list for the terminal.

Running it bare opens the interactive list. Items live in todos.json in
the current working directory, so every directory gets its own list.
The file is rewritten after every change; if it is missing or corrupt,
the app starts from a fresh tutorial list instead of failing.

Keys: up/down (or k/j) navigate, Space toggles, a adds, d deletes, q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}

		otel.Version = Version
		tel, err := otel.Init(cmd.Context(), otel.OTELConfig{
			Endpoint: cfg.OTELEndpoint,
			Headers:  cfg.OTELHeaders,
		})
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			tel.Shutdown(ctx)
		}()

		ctx, span := tel.Tracer.Start(cmd.Context(), "session")
		defer span.End()

		st := store.New(cfg.Store, store.WithObserver(tel.Metrics.StoreObserver(ctx)))
		list := st.LoadOrDefault()

		t := &tui.TUI{
			Store: st,
			List:  list,
			Theme: tui.ThemeByName(cfg.Theme),
			OnMutation: func(op string) {
				tel.Metrics.RecordMutation(ctx, op)
			},
		}
		// Run restores the terminal before returning, so any error cobra
		// prints afterwards lands on a sane screen.
		return t.Run()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "snapshot file path (default: todos.json in the working directory)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "color theme: dark, light")
}

// resolveConfig loads the config file/environment and applies flag
// overrides. Flags win over everything.
func resolveConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagStore != "" {
		cfg.Store = flagStore
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	return cfg, nil
}

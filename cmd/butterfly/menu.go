package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/butterfly-effect/internal/platform/spectate"
	"github.com/vovakirdan/butterfly-effect/internal/platform/tui"
	"github.com/vovakirdan/butterfly-effect/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level pack interactively",
	Long: `Start in interactive menu mode.

Pick a pack, then choose the starting level and difficulty. When a run ends,
Esc returns to the pack list. Tab on the pack list opens the run history.

Controls:
  Up/Down/j/k     - Navigate
  Left/Right/h/l  - Change a setting
  Enter/Space     - Select
  Tab             - Run history
  Q               - Quit

Examples:
  butterfly menu
  butterfly menu --fps 30
  butterfly menu --packs ./packs`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Stream the board to WebSocket viewers on this address")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	opts := tui.SessionOptions{
		Logger:     logger,
		ConfigPath: flagConfig,
		Clipboard:  true,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		cmd.PrintErrf("Warning: could not open run history: %v\n", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	if flagSpectate != "" {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		hub := spectate.NewHub(logger)
		go func() {
			if err := hub.ListenAndServe(ctx, flagSpectate); err != nil {
				logger.Error("spectator stream stopped", "error", err)
			}
		}()
		opts.Publisher = hub
	}

	return tui.RunSession(opts, runtimeConfig())
}

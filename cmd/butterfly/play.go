package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/butterfly-effect/internal/platform/spectate"
	"github.com/vovakirdan/butterfly-effect/internal/platform/tui"
	"github.com/vovakirdan/butterfly-effect/internal/registry"
	"github.com/vovakirdan/butterfly-effect/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagSpectate   string
)

var playCmd = &cobra.Command{
	Use:   "play [pack|dir]",
	Short: "Play a level pack",
	Long: `Start playing a level pack. Without an argument the built-in pack is
played. A directory argument is loaded as a pack of .yaml or .txt levels.

Controls:
  Arrows/WASD  - Steer (costs one turn)
  R            - Reset the trail (restart the pack when the run is over)
  P            - Pause
  Esc/Q        - Quit
  Ctrl+S       - Save a screenshot
  Ctrl+Y       - Copy the board to the clipboard

Difficulty options:
  easy   - More turns, slower rocket
  normal - Values from the config file
  hard   - Fewer turns, faster rocket
  fixed  - No per-level scaling

Examples:
  butterfly play
  butterfly play ./my-levels --level 3
  butterfly play --difficulty hard
  butterfly play --config ./butterfly.yaml
  butterfly play --spectate :8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at (1-based)")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Stream the board to WebSocket viewers on this address")
}

func runPlay(cmd *cobra.Command, args []string) error {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	packID, err := resolvePack(arg)
	if err != nil {
		return err
	}

	game, err := registry.Create(packID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		StartLevel: flagLevel - 1,
	})
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	opts := tui.ModelOptions{
		Logger:    logger,
		Clipboard: true,
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

	if err := tui.Run(game, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

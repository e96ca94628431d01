// butterfly is a turn-budgeted grid puzzle for the terminal: steer a rocket
// to the goals while every bend leaves a wall behind.
//
// Usage:
//
//	butterfly list               - List level packs
//	butterfly play [pack|dir]    - Play a pack
//	butterfly menu               - Pick packs interactively
//	butterfly check [pack|dir]   - Check that every level can be solved
//	butterfly scores [pack]      - Show the best runs
//	butterfly serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--db <path>      - Set database path (default: ~/.arcade/butterfly.db)
//	--packs <dir>    - Register every pack found under dir
//	--log <path>     - Write a game log to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/butterfly-effect/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagPacksDir string
	flagLogPath  string
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "butterfly",
	Short: "Butterfly Effect - a grid puzzle where every turn leaves a wall",
	Long: `Butterfly Effect is a terminal puzzle. A rocket flies across a walled
grid toward the goals. Each time it bends its path, a wall appears where it
turned. Reach enough goals to clear the level before you box yourself in.

Available commands:
  list     - Show all level packs
  play     - Play a pack directly
  menu     - Interactive pack picker
  check    - Verify that levels can be solved
  scores   - View the best runs
  serve    - Start SSH server for remote play

Examples:
  butterfly list
  butterfly play
  butterfly play ./my-levels --difficulty hard
  butterfly check ./my-levels
  butterfly serve --ssh :2222`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return registerPackDirs(flagPacksDir)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/butterfly.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagPacksDir, "packs", "", "Directory whose subdirectories are level packs")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write the game log to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every tick event")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// openLogger returns a file logger when --log is set. The terminal belongs to
// the game, so without --log nothing is logged. The returned func closes the
// file.
func openLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "butterfly",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}

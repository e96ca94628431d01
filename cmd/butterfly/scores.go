package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/butterfly-effect/internal/platform/tui"
	"github.com/vovakirdan/butterfly-effect/internal/registry"
	"github.com/vovakirdan/butterfly-effect/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [pack]",
	Short: "Show the best runs for a pack",
	Long: `Display the best runs for a pack, ranked by levels cleared, then goals
reached, then fewest trail walls. Without a pack the most recent runs across
all packs are shown.

Examples:
  butterfly scores classic
  butterfly scores
  butterfly scores --tui
  butterfly scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded runs of the pack")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run history: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	if len(args) == 0 {
		runs, err := store.RecentRuns(flagScoresLimit)
		if err != nil {
			return fmt.Errorf("error retrieving runs: %w", err)
		}
		fmt.Println("Recent runs")
		fmt.Println()
		printRuns(runs, true)
		return nil
	}

	packID := args[0]
	if !registry.Exists(packID) {
		fmt.Fprintln(os.Stderr, "Run 'butterfly list' to see available packs.")
		return fmt.Errorf("unknown pack %q", packID)
	}

	if flagScoresClear {
		if err := store.ClearRuns(packID); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s\n", packID)
		return nil
	}

	runs, err := store.TopRuns(packID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Printf("Best runs - %s\n", packID)
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'butterfly play %s' to set the first one!\n", packID)
		return nil
	}
	printRuns(runs, false)

	if best, err := store.BestLevels(packID); err == nil {
		fmt.Println()
		fmt.Printf("Most levels cleared: %d\n", best)
	}
	return nil
}

func printRuns(runs []storage.RunEntry, withPack bool) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	packCol := ""
	if withPack {
		packCol = fmt.Sprintf("%-12s  ", "Pack")
	}
	fmt.Printf("  %-4s  %s%-6s  %-5s  %-5s  %-9s  %s\n", "Rank", packCol, "Levels", "Goals", "Walls", "Outcome", "Date")
	fmt.Printf("  %-4s  %s%-6s  %-5s  %-5s  %-9s  %s\n", "----", dashes(packCol), "------", "-----", "-----", "-------", "----")

	for i, r := range runs {
		if withPack {
			packCol = fmt.Sprintf("%-12s  ", r.PackID)
		}
		fmt.Printf("  %-4d  %s%-6d  %-5d  %-5d  %-9s  %s\n",
			i+1, packCol, r.LevelsCleared, r.Goals, r.TrailWalls, r.Outcome,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func dashes(col string) string {
	if col == "" {
		return ""
	}
	return fmt.Sprintf("%-12s  ", "----")
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/butterfly-effect/internal/config"
	"github.com/vovakirdan/butterfly-effect/internal/games/butterfly"
	"github.com/vovakirdan/butterfly-effect/internal/games/butterfly/core"
	"github.com/vovakirdan/butterfly-effect/internal/games/butterfly/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check [pack|dir]",
	Short: "Check that every level of a pack can be solved",
	Long: `Build each level of a pack on the configured arena and check that a
goal can be reached from the start cell before any turn is taken.

The command exits with an error if any level fails, which makes it usable in
CI for level packs.

Examples:
  butterfly check
  butterfly check ./my-levels
  butterfly check ./my-levels --config ./butterfly.yaml
  butterfly check ./my-levels --level 03-maze`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

var flagCheckLevel string

func init() {
	checkCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	checkCmd.Flags().StringVar(&flagCheckLevel, "level", "", "Check only the level with this ID")
}

// selectLevels returns the pack's levels, or just the one named id. Packs
// loaded from a directory re-read the level from disk.
func selectLevels(pack levels.Pack, id string) ([]levels.Level, error) {
	if id == "" {
		return pack.Levels, nil
	}
	if pack.Source != "" {
		l, err := levels.NewLoader(pack.Source).LoadByID(id)
		if err != nil {
			return nil, err
		}
		return []levels.Level{l}, nil
	}
	for _, l := range pack.Levels {
		if l.ID == id {
			return []levels.Level{l}, nil
		}
	}
	return nil, fmt.Errorf("level not found: %s", id)
}

func runCheck(cmd *cobra.Command, args []string) error {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	packID, err := resolvePack(arg)
	if err != nil {
		return err
	}
	pack, ok := butterfly.LookupPack(packID)
	if !ok {
		return fmt.Errorf("unknown pack %q", packID)
	}

	selected, err := selectLevels(pack, flagCheckLevel)
	if err != nil {
		return err
	}

	cfg, err := config.LoadButterfly(flagConfig)
	if err != nil {
		return err
	}
	w, h := cfg.Arena.Width, cfg.Arena.Height
	start := core.C(cfg.Arena.StartX, cfg.Arena.StartY)

	fmt.Printf("Pack %s: %d levels on a %dx%d arena, start %s\n\n", pack.ID, pack.Len(), w, h, start)
	fmt.Printf("  %-3s  %-20s  %5s  %3s  %5s  %9s  %8s  %s\n", "#", "Level", "Goals", "Cut", "Walls", "Reachable", "Distance", "Result")
	fmt.Printf("  %-3s  %-20s  %5s  %3s  %5s  %9s  %8s  %s\n", "-", "-----", "-----", "---", "-----", "---------", "--------", "------")

	failed := 0
	for i, l := range selected {
		r := levels.Analyze(l, w, h, start)
		result := "ok"
		if err := levels.Validate(l, w, h, start); err != nil {
			failed++
			var verr levels.ValidationError
			if errors.As(err, &verr) {
				result = verr.Code + ": " + verr.Message
			} else {
				result = err.Error()
			}
		}
		dist := "-"
		if r.Distance >= 0 {
			dist = fmt.Sprintf("%d", r.Distance)
		}
		fmt.Printf("  %-3d  %-20s  %5d  %3d  %5d  %9d  %8s  %s\n",
			i+1, truncateName(l.Name, 20), r.Goals, r.Cut, r.Walls, r.Reachable, dist, result)
	}

	fmt.Println()
	if failed > 0 {
		return fmt.Errorf("%d of %d levels failed", failed, len(selected))
	}
	fmt.Println("All levels can be solved.")
	return nil
}

func truncateName(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}

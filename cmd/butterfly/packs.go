package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/butterfly-effect/internal/games/butterfly"
	"github.com/vovakirdan/butterfly-effect/internal/games/butterfly/levels"
	"github.com/vovakirdan/butterfly-effect/internal/registry"
)

// registerPackDirs registers every subdirectory of root that holds levels.
// Directories without levels are skipped.
func registerPackDirs(root string) error {
	if root == "" {
		return nil
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("cannot read packs directory: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		pack, err := levels.NewLoader(filepath.Join(root, e.Name())).LoadPack()
		if err != nil {
			continue
		}
		if err := butterfly.RegisterPack(pack); err != nil {
			return err
		}
	}
	return nil
}

// resolvePack turns a command argument into a registered pack ID. The
// argument may be a pack ID or a directory of level files; an empty argument
// selects the built-in pack.
func resolvePack(arg string) (string, error) {
	if arg == "" {
		return levels.ClassicID, nil
	}
	if registry.Exists(arg) {
		return arg, nil
	}

	info, err := os.Stat(arg)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("unknown pack %q (run 'butterfly list' to see packs)", arg)
	}
	pack, err := levels.NewLoader(arg).LoadPack()
	if err != nil {
		return "", err
	}
	if err := butterfly.RegisterPack(pack); err != nil {
		return "", err
	}
	return pack.ID, nil
}

// Package registry provides a global registry of playable level packs.
// The built-in pack registers itself in init(); packs loaded from disk are
// registered by the CLI at startup. The platform discovers and instantiates
// games through this package without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/butterfly-effect/internal/core"
)

// Game is the interface the platform drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the pack identifier (e.g., "classic").
	// Used for CLI commands and run history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Options carries per-run settings chosen on the command line.
type Options struct {
	ConfigPath string
	Difficulty string
	StartLevel int // zero-based level index to begin at
}

// GameInfo contains metadata about a registered pack.
type GameInfo struct {
	ID     string
	Title  string
	Levels int
}

// Factory creates a new game instance for a pack.
type Factory func(opts Options) Game

// Leveled is implemented by games that know their level count.
type Leveled interface {
	LevelCount() int
}

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a pack factory to the registry.
// Panics if a pack with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}
	factories[id] = f

	// Get metadata by creating a temporary instance
	g := f(Options{})
	info := GameInfo{ID: id, Title: g.Title()}
	if l, ok := g.(Leveled); ok {
		info.Levels = l.LevelCount()
	}
	infos[id] = info
}

// TryRegister is Register for packs discovered at runtime: a clash with an
// existing ID is reported instead of panicking.
func TryRegister(id string, f Factory) error {
	if Exists(id) {
		return fmt.Errorf("registry: pack %q already registered", id)
	}
	Register(id, f)
	return nil
}

// List returns information about all registered packs, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game for the pack with the given ID.
// Returns an error if the ID is not registered.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown pack %q", id)
	}
	return f(opts), nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

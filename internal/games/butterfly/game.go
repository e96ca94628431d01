// Package butterfly implements Butterfly Effect: steer a rocket to the goals
// of each level while every bend it makes leaves a wall behind.
package butterfly

import (
	"sync"

	"github.com/vovakirdan/butterfly-effect/internal/config"
	platformcore "github.com/vovakirdan/butterfly-effect/internal/core"
	"github.com/vovakirdan/butterfly-effect/internal/games/butterfly/core"
	"github.com/vovakirdan/butterfly-effect/internal/games/butterfly/levels"
	"github.com/vovakirdan/butterfly-effect/internal/registry"
)

var (
	packsMu sync.RWMutex
	packs   = make(map[string]levels.Pack)
)

func init() {
	classic := levels.Classic()
	packs[classic.ID] = classic
	registry.Register(classic.ID, func(opts registry.Options) registry.Game {
		return New(classic, opts)
	})
}

// RegisterPack makes a pack loaded from disk playable by ID.
func RegisterPack(p levels.Pack) error {
	err := registry.TryRegister(p.ID, func(opts registry.Options) registry.Game {
		return New(p, opts)
	})
	if err != nil {
		return err
	}
	packsMu.Lock()
	packs[p.ID] = p
	packsMu.Unlock()
	return nil
}

// LookupPack returns a registered pack by ID.
func LookupPack(id string) (levels.Pack, bool) {
	packsMu.RLock()
	defer packsMu.RUnlock()
	p, ok := packs[id]
	return p, ok
}

// Game implements the level controller: it owns the board of the current
// level and runs the per-tick stages in a fixed order.
type Game struct {
	pack levels.Pack
	opts registry.Options

	// Configuration
	runtime    platformcore.RuntimeConfig
	cfg        config.ButterflyConfig
	difficulty *config.DifficultyManager
	start      core.Cell
	priority   []core.Dir

	// Board
	grid   *core.Grid
	token  *core.Token
	trail  core.Trail
	events core.EventQueue

	// Progress
	levelIndex    int // == pack.Len() once the win board is shown
	goalsReached  int // goals reached on the current level
	totalGoals    int
	levelsCleared int
	maxTurns      int

	// Timing
	tick           uint64
	moveEveryTicks int
	moveTicker     int

	gameOver bool
	won      bool
	paused   bool
}

// New creates a game for the given pack.
func New(pack levels.Pack, opts registry.Options) *Game {
	return &Game{pack: pack, opts: opts}
}

// ID returns the pack ID.
func (g *Game) ID() string {
	return g.pack.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.pack.Name == "" || g.pack.Name == g.pack.ID {
		return "Butterfly Effect (" + g.pack.ID + ")"
	}
	return "Butterfly Effect: " + g.pack.Name
}

// LevelCount returns the number of levels in the pack.
func (g *Game) LevelCount() int {
	return g.pack.Len()
}

// Reset initializes or restarts the run from the configured start level.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	cfg, err := config.LoadButterfly(g.opts.ConfigPath)
	if err != nil {
		cfg = config.DefaultButterflyConfig()
	}
	if preset := config.ParsePreset(g.opts.Difficulty); preset != "" {
		config.ApplyButterflyPreset(&cfg, preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.start = core.C(cfg.Arena.StartX, cfg.Arena.StartY)
	g.priority = g.priority[:0]
	for _, name := range cfg.Input.Priority {
		if d, err := core.ParseDir(name); err == nil {
			g.priority = append(g.priority, d)
		}
	}
	if len(g.priority) == 0 {
		g.priority = append(g.priority, core.DefaultPriority...)
	}

	g.trail = core.Trail{}
	g.events.Flush()
	g.tick = 0
	g.totalGoals = 0
	g.levelsCleared = 0
	g.gameOver = false
	g.won = false
	g.paused = false

	startLevel := g.opts.StartLevel
	if startLevel < 0 || startLevel >= g.pack.Len() {
		startLevel = 0
	}
	g.loadLevel(startLevel)
	// Level load on reset is not reported as a tick event.
	g.events.Flush()
}

// loadLevel rebuilds the board for level i. Past the last level the win
// board is loaded.
func (g *Game) loadLevel(i int) {
	w, h := g.cfg.Arena.Width, g.cfg.Arena.Height
	g.levelIndex = i
	g.goalsReached = 0

	base := g.cfg.Rules.MaxTurns
	if lvl, ok := g.pack.Level(i); ok {
		g.grid = lvl.ToGrid(w, h)
		base = lvl.Turns(base)
	} else {
		g.levelIndex = g.pack.Len()
		g.grid = core.ParseLayout(w, h, levels.YouWonRows)
		g.won = true
	}
	g.maxTurns = g.difficulty.Turns(base, g.levelsCleared)
	g.token = core.NewToken(g.start, g.maxTurns)

	interval := g.difficulty.MoveInterval(g.cfg.Rules.MoveIntervalMs, g.levelsCleared)
	g.moveEveryTicks = max(1, (interval*g.runtime.TickRate+500)/1000)
	g.moveTicker = 0

	g.events.Push(core.Event{Kind: core.EventLevelLoaded, Level: g.levelIndex})
}

// loadGameOver replaces the board with the fixed game over picture.
func (g *Game) loadGameOver() {
	g.grid = core.NewGrid(g.cfg.Arena.Width, g.cfg.Arena.Height)
	core.PlaceLayout(g.grid, levels.GameOverRows)
	g.token.Reset(g.start, 0)
	g.gameOver = true
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	g.tick++
	g.runStages(in)

	return platformcore.StepResult{
		State:  g.State(),
		Events: toPlatformEvents(g.events.Flush()),
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.totalGoals,
		Level:    g.levelsCleared,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// TurnsLeft returns the remaining direction changes of the rocket.
func (g *Game) TurnsLeft() int {
	return g.token.TurnsLeft
}

// TrailWalls returns how many trail walls were laid during the run.
func (g *Game) TrailWalls() int {
	return g.trail.Deposited
}

// heldKeys maps the frame's actions to direction signals.
func heldKeys(in platformcore.InputFrame) core.HeldKeys {
	return core.HeldKeys{
		Left:  in.Has(platformcore.ActionLeft),
		Up:    in.Has(platformcore.ActionUp),
		Right: in.Has(platformcore.ActionRight),
		Down:  in.Has(platformcore.ActionDown),
	}
}

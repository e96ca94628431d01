package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/butterfly-effect/internal/core"
	"github.com/vovakirdan/butterfly-effect/internal/games/butterfly"
	"github.com/vovakirdan/butterfly-effect/internal/platform/spectate"
	"github.com/vovakirdan/butterfly-effect/internal/registry"
	"github.com/vovakirdan/butterfly-effect/internal/storage"
)

// statusTicks is how long a status message replaces the help line.
const statusTicks = 120

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// ModelOptions wires a game model to the outside world. Every field is optional.
type ModelOptions struct {
	Store     *storage.Store
	Logger    *log.Logger
	Publisher spectate.Publisher

	// Clipboard enables copying the board with ctrl+y. Only useful when the
	// program runs on the player's machine.
	Clipboard bool

	// Player names the session in spectator frames and logs.
	Player string

	// Embedded makes the back key return to the caller's menu instead of
	// quitting the program.
	Embedded bool
}

// trailCounter is implemented by games that report laid trail walls.
type trailCounter interface {
	TrailWalls() int
}

// turnCounter is implemented by games with a turn budget.
type turnCounter interface {
	TurnsLeft() int
}

// entityLister is implemented by games that expose their board for spectators.
type entityLister interface {
	Entities() []butterfly.Entity
}

// Model is the Bubble Tea model for running a level pack.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	publisher  spectate.Publisher
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	tickGen    uint64

	runStarted time.Time
	runSaved   bool // whether the current run has been written to the store

	seq       uint64
	lastFrame string

	status      string
	statusTicks int

	player     string
	clipboard  bool
	embedded   bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for the given game and starts its first run.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		store:      opts.Store,
		logger:     logger,
		publisher:  opts.Publisher,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		tickGen:    nextTickGen(),
		player:     opts.Player,
		clipboard:  opts.Clipboard,
		embedded:   opts.Embedded,
	}
	m.startRun()
	return m
}

// boardHeight leaves the last terminal row for the help line.
func boardHeight(h int) int {
	return max(1, h-1)
}

func (m *Model) startRun() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runStarted = time.Now()
	m.runSaved = false
	m.logger.Info("run started", "pack", m.game.ID(), "title", m.game.Title(), "player", m.player)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Copy):
		m.copyBoard()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg, m.gameState)
	switch {
	case isQuit:
		m.abandonRun()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.abandonRun()
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The board is re-centered on
// the next render; the run is not touched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.Finished() {
		m.startRun()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.tickGen)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)

	if m.gameState.Finished() && !m.runSaved {
		outcome := storage.OutcomeGameOver
		if m.gameState.Won {
			outcome = storage.OutcomeWon
		}
		m.recordRun(outcome)
	}

	m.publish(result.Events)

	if m.statusTicks > 0 {
		m.statusTicks--
		if m.statusTicks == 0 {
			m.status = ""
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

func (m *Model) logEvents(events []core.Event) {
	for _, ev := range events {
		attrs := append([]any{"pack", m.game.ID()}, ev.Attrs...)
		switch ev.Name {
		case "level_loaded", "game_over", "target_reached":
			m.logger.Info(ev.Name, attrs...)
		default:
			m.logger.Debug(ev.Name, attrs...)
		}
	}
}

// abandonRun records a run the player walked away from, if it got anywhere.
func (m *Model) abandonRun() {
	if m.runSaved {
		return
	}
	if m.gameState.Score == 0 && m.gameState.Level == 0 {
		return
	}
	m.recordRun(storage.OutcomeQuit)
}

func (m *Model) recordRun(outcome string) {
	m.runSaved = true
	if m.store == nil {
		return
	}

	entry := storage.RunEntry{
		PackID:        m.game.ID(),
		LevelsCleared: m.gameState.Level,
		Goals:         m.gameState.Score,
		Outcome:       outcome,
		Duration:      int(time.Since(m.runStarted).Seconds()),
	}
	if tc, ok := m.game.(trailCounter); ok {
		entry.TrailWalls = tc.TrailWalls()
	}

	if _, err := m.store.SaveRun(entry); err != nil {
		m.logger.Error("cannot save run", "pack", entry.PackID, "error", err)
		return
	}
	m.logger.Info("run saved",
		"pack", entry.PackID,
		"outcome", outcome,
		"levels", entry.LevelsCleared,
		"goals", entry.Goals,
	)
}

// publish sends the current board to spectators when it changed.
func (m *Model) publish(events []core.Event) {
	if m.publisher == nil {
		return
	}
	m.game.Render(m.screen)
	text := m.screen.String()
	if text == m.lastFrame && len(events) == 0 {
		return
	}
	m.lastFrame = text
	m.seq++
	f := frameFor(m.game, m.gameState, m.screen, m.seq, events)
	f.Player = m.player
	m.publisher.Publish(f)
}

// frameFor builds a spectator frame from the rendered screen.
func frameFor(game registry.Game, state core.GameState, screen *core.Screen, seq uint64, events []core.Event) spectate.Frame {
	f := spectate.Frame{
		Game:     game.ID(),
		Seq:      seq,
		Goals:    state.Score,
		Levels:   state.Level,
		GameOver: state.GameOver,
		Won:      state.Won,
		Paused:   state.Paused,
		Rows:     make([]string, screen.Height()),
	}
	for y := range screen.Height() {
		f.Rows[y] = screen.Row(y)
	}
	if tc, ok := game.(turnCounter); ok {
		f.TurnsLeft = tc.TurnsLeft()
	}
	if el, ok := game.(entityLister); ok {
		for _, e := range el.Entities() {
			ent := spectate.Entity{X: e.Cell.X, Y: e.Cell.Y, Kind: e.Kind.String()}
			if e.Kind == butterfly.EntityToken {
				ent.Dir = e.Dir.String()
			}
			f.Entities = append(f.Entities, ent)
		}
	}
	for _, ev := range events {
		f.Events = append(f.Events, ev.Name)
	}
	return f
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusTicks = statusTicks
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.setStatus("screenshot failed: %v", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setStatus("screenshot failed: %v", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setStatus("screenshot failed: %v", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("saved %s", path)
}

// copyBoard puts the plain-text board on the system clipboard.
func (m *Model) copyBoard() {
	if !m.clipboard || clipboard.Unsupported {
		m.setStatus("clipboard not available")
		return
	}
	m.game.Render(m.screen)
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.setStatus("copy failed: %v", err)
		return
	}
	m.setStatus("board copied")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)

	line := helpStyle.Render(m.help.View(m.keyMapper.Keys))
	if m.status != "" {
		line = statusStyle.Render(m.status)
	}

	// Full help takes rows from the bottom of the board.
	rows := strings.Split(RenderScreen(m.screen), "\n")
	if extra := lipgloss.Height(line) - 1; extra > 0 && extra < len(rows) {
		rows = rows[:len(rows)-extra]
	}
	return strings.Join(rows, "\n") + "\n" + line
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

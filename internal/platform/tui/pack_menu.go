package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/butterfly-effect/internal/config"
	"github.com/vovakirdan/butterfly-effect/internal/core"
	"github.com/vovakirdan/butterfly-effect/internal/registry"
)

// difficulties in the order the options screen cycles through them.
var difficulties = []config.DifficultyPreset{
	config.DifficultyNormal,
	config.DifficultyEasy,
	config.DifficultyHard,
	config.DifficultyFixed,
}

const (
	packRowStart = iota
	packRowLevel
	packRowDifficulty
	packRowBack
	packRowCount
)

// PackMenuModel lets the player choose the starting level and difficulty
// for a pack.
type PackMenuModel struct {
	item       MenuItem
	cursor     int
	level      int // zero-based start level
	difficulty int // index into difficulties
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	chosen     bool
	quitting   bool
	back       bool
}

// NewPackMenuModel creates the options screen for a pack.
func NewPackMenuModel(item MenuItem, cfg core.RuntimeConfig) PackMenuModel {
	return PackMenuModel{
		item:      item,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m PackMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PackMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}
	return m, nil
}

func (m PackMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < packRowCount-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.cycle(-1)
	case MenuActionRight:
		m.cycle(1)
	case MenuActionSelect:
		switch m.cursor {
		case packRowBack:
			m.back = true
		case packRowLevel, packRowDifficulty:
			m.cycle(1)
			return m, nil
		default:
			m.chosen = true
		}
		return m, tea.Quit
	}
	return m, nil
}

// cycle changes the value on the current row, wrapping at both ends.
func (m *PackMenuModel) cycle(delta int) {
	switch m.cursor {
	case packRowLevel:
		if n := m.item.Levels; n > 0 {
			m.level = (m.level + delta + n) % n
		}
	case packRowDifficulty:
		n := len(difficulties)
		m.difficulty = (m.difficulty + delta + n) % n
	}
}

// View renders the options screen.
func (m PackMenuModel) View() string {
	if m.quitting || m.back || m.chosen {
		return ""
	}
	width := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(m.item.Title), width))
	b.WriteString("\n\n")

	rows := [packRowCount]string{
		packRowStart:      "Start",
		packRowLevel:      fmt.Sprintf("Level       < %d/%d >", m.level+1, max(1, m.item.Levels)),
		packRowDifficulty: fmt.Sprintf("Difficulty  < %s >", difficulties[m.difficulty]),
		packRowBack:       "Back",
	}
	for i, row := range rows {
		row = fmt.Sprintf("%-26s", row)
		line := "  " + row
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + row)
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Esc: Back"
	b.WriteString(centerText(menuDimStyle.Render(controls), width))
	b.WriteString("\n")
	return b.String()
}

// Options returns the run options chosen on this screen.
func (m PackMenuModel) Options() registry.Options {
	return registry.Options{
		Difficulty: string(difficulties[m.difficulty]),
		StartLevel: m.level,
	}
}

// Chosen returns true if the player started a run.
func (m PackMenuModel) Chosen() bool {
	return m.chosen
}

// IsBack returns true if the player went back to the pack list.
func (m PackMenuModel) IsBack() bool {
	return m.back
}

// IsQuitting returns true if user requested to quit.
func (m PackMenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m PackMenuModel) Config() core.RuntimeConfig {
	return m.config
}

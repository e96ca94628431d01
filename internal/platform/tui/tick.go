// Package tui is the Bubble Tea front end: it maps keys to actions, drives
// the fixed-rate tick loop and renders game screens, menus and the run
// history. The same models back local play and SSH sessions.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step of the game model that scheduled it.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

// tickGens numbers tick chains. A game model only steps on ticks from its
// own chain.
var tickGens atomic.Uint64

func nextTickGen() uint64 {
	return tickGens.Add(1)
}

// tickCmd schedules the next tick of chain gen at tickRate per second.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}

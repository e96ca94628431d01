package butterfly

import "github.com/vovakirdan/butterfly-effect/internal/games/butterfly/core"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick          uint64
	LevelIndex    int
	GoalsReached  int
	TotalGoals    int
	LevelsCleared int
	Pos           core.Cell
	Dir           core.Dir
	TurnsLeft     int
	TrailWalls    []core.Cell
	GameOver      bool
	Won           bool
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:          g.tick,
		LevelIndex:    g.levelIndex,
		GoalsReached:  g.goalsReached,
		TotalGoals:    g.totalGoals,
		LevelsCleared: g.levelsCleared,
		Pos:           g.token.Pos,
		Dir:           g.token.Dir,
		TurnsLeft:     g.token.TurnsLeft,
		TrailWalls:    g.grid.TrailWalls(),
		GameOver:      g.gameOver,
		Won:           g.won,
	}
}

// Hash returns a simple hash of the snapshot for comparison.
func (s Snapshot) Hash() uint64 {
	h := s.Tick
	for _, v := range []int{
		s.LevelIndex, s.GoalsReached, s.TotalGoals, s.LevelsCleared,
		s.Pos.X, s.Pos.Y, int(s.Dir), s.TurnsLeft, boolInt(s.GameOver), boolInt(s.Won),
	} {
		h = h*31 + uint64(v)
	}
	for _, c := range s.TrailWalls {
		h = h*31 + uint64(c.X)
		h = h*31 + uint64(c.Y)
	}
	return h
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

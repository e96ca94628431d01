package butterfly

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/butterfly-effect/internal/core"
	"github.com/vovakirdan/butterfly-effect/internal/games/butterfly/core"
)

// EntityKind classifies something drawn on the board.
type EntityKind uint8

const (
	EntityWall EntityKind = iota
	EntityTrailWall
	EntityGoal
	EntityToken
)

func (k EntityKind) String() string {
	switch k {
	case EntityWall:
		return "wall"
	case EntityTrailWall:
		return "trail"
	case EntityGoal:
		return "goal"
	case EntityToken:
		return "rocket"
	default:
		return "unknown"
	}
}

// Entity is one drawable item on the board.
type Entity struct {
	Cell      core.Cell
	Kind      EntityKind
	Dir       core.Dir // rocket only
	TurnsLeft int      // rocket only
}

// Entities lists everything on the board: static walls, trail walls in the
// order they were laid, goals, then the rocket.
func (g *Game) Entities() []Entity {
	static := g.grid.StaticWalls()
	trail := g.grid.TrailWalls()
	goals := g.grid.Goals()
	out := make([]Entity, 0, len(static)+len(trail)+len(goals)+1)
	for _, c := range static {
		out = append(out, Entity{Cell: c, Kind: EntityWall})
	}
	for _, c := range trail {
		out = append(out, Entity{Cell: c, Kind: EntityTrailWall})
	}
	for _, c := range goals {
		out = append(out, Entity{Cell: c, Kind: EntityGoal})
	}
	out = append(out, Entity{
		Cell:      g.token.Pos,
		Kind:      EntityToken,
		Dir:       g.token.Dir,
		TurnsLeft: g.token.TurnsLeft,
	})
	return out
}

// Each board cell is two screen columns wide so the board looks square.
const cellW = 2

// Glyphs for board cells.
var (
	wallGlyph  = [cellW]rune{'█', '█'}
	trailGlyph = [cellW]rune{'▒', '▒'}
	goalGlyph  = [cellW]rune{'◆', ' '}
)

func rocketGlyph(d core.Dir) [cellW]rune {
	switch d {
	case core.DirLeft:
		return [cellW]rune{'◀', ' '}
	case core.DirUp:
		return [cellW]rune{'▲', ' '}
	case core.DirRight:
		return [cellW]rune{'▶', ' '}
	case core.DirDown:
		return [cellW]rune{'▼', ' '}
	default:
		return [cellW]rune{'●', ' '}
	}
}

// hudRows is the status line plus its separator.
const hudRows = 2

// Render draws the HUD and the board into dst.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	boardW := g.grid.Width() * cellW
	boardH := g.grid.Height()
	area := dst.Bounds().TrimTop(hudRows)
	if !area.Fits(boardW, boardH) {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", boardW, boardH+hudRows))
		return
	}

	g.renderHUD(dst)
	board := area.Center(boardW, boardH)

	for _, e := range g.Entities() {
		var glyph [cellW]rune
		var color platformcore.Color
		switch e.Kind {
		case EntityWall:
			glyph, color = wallGlyph, platformcore.ColorWall
			if g.gameOver {
				color = platformcore.ColorWallLost
			} else if g.won {
				color = platformcore.ColorWallWon
			}
		case EntityTrailWall:
			glyph, color = trailGlyph, platformcore.ColorTrail
		case EntityGoal:
			glyph, color = goalGlyph, platformcore.ColorGoal
		case EntityToken:
			if g.gameOver {
				continue
			}
			glyph, color = rocketGlyph(e.Dir), platformcore.ColorRocket
			if e.TurnsLeft == 0 {
				color = platformcore.ColorRocketSpent
			}
		}
		x := board.X + e.Cell.X*cellW
		y := board.Y + (g.grid.Height() - 1 - e.Cell.Y)
		for i, r := range glyph {
			dst.SetColored(x+i, y, r, color)
		}
	}

	switch {
	case g.gameOver:
		g.renderFooter(dst, "No way left to a goal. R to restart, Q to quit")
	case g.paused:
		g.renderFooter(dst, "Paused. P to continue")
	case g.won:
		g.renderFooter(dst, "Every level cleared!")
	}
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	level := fmt.Sprintf("Level %d/%d", g.levelIndex+1, g.pack.Len())
	if g.won {
		level = "Complete"
	}
	hud := fmt.Sprintf(" %s  %s  Goals: %d/%d  turns left: %d",
		g.Title(), level, g.goalsReached, g.cfg.Rules.GoalThreshold+1, g.token.TurnsLeft)
	dst.DrawTextColored(0, 0, hud, platformcore.ColorHUD)
	dst.DrawHLine(0, hudRows-1, dst.Width(), '─')
}

func (g *Game) renderFooter(dst *platformcore.Screen, text string) {
	y := dst.Height() - 1
	dst.DrawHLine(0, y, dst.Width(), ' ')
	x := (dst.Width() - utf8.RuneCountInString(text)) / 2
	dst.DrawTextColored(x, y, text, platformcore.ColorNotice)
}

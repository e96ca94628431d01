package core

// Layout glyphs.
const (
	GlyphWall = 'W'
	GlyphGoal = 'T'
)

// ParseLayout builds a bordered grid and places rows inside the border.
func ParseLayout(width, height int, rows []string) *Grid {
	g := NewBorderedGrid(width, height)
	PlaceLayout(g, rows)
	return g
}

// PlaceLayout adds the walls and goals described by rows to g.
//
// The last row is the bottom of the level. Glyphs are placed at an offset of
// one cell so that row text starts inside the border. Glyphs that would land
// outside the interior are ignored and short rows leave the rest free.
func PlaceLayout(g *Grid, rows []string) {
	for i := range rows {
		y := len(rows) - 1 - i + 1
		x := 1
		for _, r := range rows[i] {
			c := C(x, y)
			x++
			if !g.Interior(c) {
				continue
			}
			switch r {
			case GlyphWall:
				g.AddWall(c)
			case GlyphGoal:
				g.AddGoal(c)
			}
		}
	}
}

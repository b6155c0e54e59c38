package world

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/amazeing/internal/maze"
)

// Plan glyphs.
const (
	GlyphPost    = '+'
	GlyphWallNS  = '│'
	GlyphWallEW  = '─'
	GlyphLock    = 'L'
	GlyphKey     = 'K'
	GlyphCoin    = '$'
	GlyphMonster = 'M'
	GlyphFloor   = ' '
)

// PlanPoint maps a world position to half-cell grid units relative to the
// plan of room c. Screen x follows world +x and screen y follows world -z,
// so cell (i, j) lands on (2i+1, 2(size-j)-1).
func (p Params) PlanPoint(c maze.Coord, pos mgl32.Vec3) (gx, gy int) {
	x, z := p.RoomOrigin(c)
	u := float64((pos.X() - x) / p.CellSize)
	v := float64((z - pos.Z()) / p.CellSize)
	gx = int(math.Round(2*u)) + 1
	gy = 2*p.RoomSize - 1 - int(math.Round(2*v))
	return gx, gy
}

// Plan draws the room top-down as a (2*size+1) square of runes.
func (l Layout) Plan(p Params) [][]rune {
	p = p.Normalize()
	n := 2*l.Size + 1
	grid := make([][]rune, n)
	for y := range grid {
		grid[y] = make([]rune, n)
		for x := range grid[y] {
			grid[y][x] = GlyphFloor
			if x%2 == 0 && y%2 == 0 {
				grid[y][x] = GlyphPost
			}
		}
	}

	set := func(pos mgl32.Vec3, r rune) {
		gx, gy := p.PlanPoint(l.Coord, pos)
		if gx >= 0 && gx < n && gy >= 0 && gy < n {
			grid[gy][gx] = r
		}
	}

	for _, w := range l.Walls {
		if w.Kind == Horizontal {
			set(w.Center, GlyphWallNS)
		} else {
			set(w.Center, GlyphWallEW)
		}
	}
	for _, m := range l.Monsters {
		set(m.Position, GlyphMonster)
	}
	if l.HasItem() {
		set(l.Item.Position, ItemGlyph(l.Item.Kind))
	}
	return grid
}

// PlanString renders Plan as text, one row per line.
func (l Layout) PlanString(p Params) string {
	var sb strings.Builder
	for y, row := range l.Plan(p) {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// ItemGlyph returns the plan glyph of an item kind.
func ItemGlyph(k ItemKind) rune {
	switch k {
	case ItemLock:
		return GlyphLock
	case ItemKey:
		return GlyphKey
	case ItemCoin:
		return GlyphCoin
	}
	return GlyphFloor
}

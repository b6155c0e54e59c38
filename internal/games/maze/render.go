package maze

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/amazeing/internal/core"
	"github.com/vovakirdan/amazeing/internal/maze"
	"github.com/vovakirdan/amazeing/internal/world"
)

// HUD strings.
const (
	continueHint = "SPACE or click to continue..."
	keyLabel     = "Carrying key"
	pausedTitle  = "Paused"
	playerGlyph  = '@'
)

// Render draws the current phase into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.state.Phase {
	case PhaseMenu:
		g.renderMenu(dst)
	case PhaseStory:
		g.renderStory(dst)
	case PhasePlaying:
		g.renderMap(dst)
		g.renderHUD(dst)
	case PhasePaused:
		g.renderPaused(dst)
	case PhaseEnded:
		g.renderEnd(dst)
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	cy := dst.Height() / 2
	dst.DrawTextCentered(cy-3, GameTitle, core.ColorBrightCyan)
	if g.runtime.Seed != 0 {
		dst.DrawTextCentered(cy-1, fmt.Sprintf("seed %d", g.runtime.Seed), core.ColorGray)
	}
	g.drawButtons(dst, cy+1, menuButtons)
	dst.DrawTextCentered(dst.Height()-2, "W/S or arrows to choose, ENTER to confirm, Q to quit", core.ColorGray)
}

func (g *Game) renderStory(dst *core.Screen) {
	page := g.state.Page
	if page < 0 || page >= len(StoryPages) {
		return
	}
	lines := strings.Split(StoryPages[page], "\n")
	y := dst.Height()/2 - len(lines)/2 - 1
	for i, line := range lines {
		dst.DrawTextCentered(y+i, line, core.ColorWhite)
	}
	dst.DrawTextCentered(dst.Height()-2, continueHint, core.ColorGray)
}

func (g *Game) renderEnd(dst *core.Screen) {
	lines := strings.Split(EndText(g.state.Coins), "\n")
	y := dst.Height()/2 - len(lines) - 2
	for i, line := range lines {
		dst.DrawTextCentered(y+i, line, core.ColorWhite)
	}
	dst.DrawTextCentered(y+len(lines)+1, fmt.Sprintf("Coins: %d", g.state.Coins), core.ColorYellow)
	g.drawButtons(dst, dst.Height()/2+1, endButtons)
}

// renderPaused draws the pause box over a summary of the snapshot. The
// rooms are released while paused, so there is no map.
func (g *Game) renderPaused(dst *core.Screen) {
	if snap := g.state.Saved; snap != nil {
		status := fmt.Sprintf("Coins: %d", snap.Coins())
		if snap.HasKey {
			status += "  " + keyLabel
		}
		dst.DrawTextColored(1, 0, status, core.ColorYellow)
		pos := fmt.Sprintf("(%d, %d)", snap.Room.Row, snap.Room.Col)
		dst.DrawTextColored(dst.Width()-len(pos)-1, 0, pos, core.ColorGray)
	}
	g.renderButtons(dst, pausedTitle, pauseButtons)
}

func (g *Game) renderButtons(dst *core.Screen, title string, buttons []string) {
	w := 24
	h := len(buttons) + 4
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightWhite)
	g.drawButtons(dst, box.Y+2, buttons)
}

func (g *Game) drawButtons(dst *core.Screen, y int, buttons []string) {
	for i, b := range buttons {
		if i == g.selected {
			dst.DrawTextCentered(y+i, "> "+b+" <", core.ColorBrightYellow)
			continue
		}
		dst.DrawTextCentered(y+i, b, core.ColorWhite)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	p := g.play
	if p == nil {
		return
	}

	status := fmt.Sprintf("Coins: %d", p.Coins())
	if p.HasKey() {
		status += "  " + keyLabel
	}
	dst.DrawTextColored(1, 0, status, core.ColorYellow)

	room := p.Room()
	pos := fmt.Sprintf("(%d, %d)", room.Row, room.Col)
	dst.DrawTextColored(dst.Width()-len(pos)-1, 0, pos, core.ColorGray)

	if name, alpha := p.RoomName(); alpha > 0 {
		dst.DrawTextCentered(1, "– "+name+" –", fadeColor(alpha))
	}
	if prompt := p.Prompt(); prompt != "" {
		dst.DrawTextCentered(dst.Height()-1, prompt, core.ColorBrightWhite)
	}
}

// fadeColor approximates text opacity with three shades.
func fadeColor(alpha float64) core.Color {
	switch {
	case alpha > 0.66:
		return core.ColorBrightWhite
	case alpha > 0.33:
		return core.ColorWhite
	}
	return core.ColorGray
}

// mapView projects plan grid points around the player onto the screen.
// One grid step is two columns wide so rooms look square.
type mapView struct {
	params world.Params
	room   maze.Coord
	px, py int
	cx, cy int
	dst    *core.Screen
}

func (v mapView) grid(pos mgl32.Vec3) (int, int) {
	return v.params.PlanPoint(v.room, pos)
}

func (v mapView) set(gx, gy int, r rune, c core.Color) {
	v.dst.SetColored(v.cx+2*(gx-v.px), v.cy+gy-v.py, r, c)
}

func (v mapView) setRun(gx, gy int, r rune, c core.Color) {
	sx, sy := v.cx+2*(gx-v.px), v.cy+gy-v.py
	for x := sx - 1; x <= sx+1; x++ {
		v.dst.SetColored(x, sy, r, c)
	}
}

// renderMap draws the streamed rooms top-down from the scene graph.
func (g *Game) renderMap(dst *core.Screen) {
	p := g.play
	if p == nil {
		return
	}
	params := p.Chunks().Params()
	eye := p.Camera().Eye()

	v := mapView{params: params, room: p.Room(), dst: dst}
	v.px, v.py = v.grid(eye)
	v.cx, v.cy = dst.Width()/2, (dst.Height()+1)/2

	radius := int64(g.cfg.HUD.MapRadius)
	if radius < 0 {
		radius = 0
	}
	near := func(c maze.Coord) bool {
		return chebyshev(c, v.room) <= radius
	}

	size := params.RoomSize
	for _, e := range g.graph.Visible(world.NodeRoom) {
		if !near(e.Room) {
			continue
		}
		color := core.HueColor(e.Hue)
		if e.Room != v.room {
			color = core.ColorGray
		}

		ox, oy := v.grid(e.Position)
		ox, oy = ox-1, oy-(2*size-1)
		for y := 0; y <= 2*size; y += 2 {
			for x := 0; x <= 2*size; x += 2 {
				v.set(ox+x, oy+y, world.GlyphPost, color)
			}
		}
		for _, w := range e.Walls {
			gx, gy := v.grid(w.Center)
			if w.Kind == world.Horizontal {
				v.set(gx, gy, world.GlyphWallNS, color)
			} else {
				v.setRun(gx, gy, world.GlyphWallEW, color)
			}
		}
	}

	for _, e := range g.graph.Visible(world.NodeItem) {
		if !near(e.Room) {
			continue
		}
		gx, gy := v.grid(e.Position)
		v.set(gx, gy, world.ItemGlyph(e.Item), itemColor(e.Item))
	}
	for _, e := range g.graph.Visible(world.NodeMonster) {
		if !near(e.Room) {
			continue
		}
		gx, gy := v.grid(e.Position)
		v.set(gx, gy, world.GlyphMonster, core.ColorBrightRed)
	}

	dst.SetColored(v.cx, v.cy, playerGlyph, core.ColorBrightGreen)
	dst.SetColored(v.cx+1, v.cy, facingGlyph(p.Camera().Forward()), core.ColorBrightGreen)
}

func itemColor(k world.ItemKind) core.Color {
	switch k {
	case world.ItemLock:
		return core.ColorBrightWhite
	case world.ItemKey:
		return core.ColorBrightCyan
	}
	return core.ColorBrightYellow
}

// facingGlyph returns an arrow for the view direction on the map, where
// up is -z.
func facingGlyph(dir mgl32.Vec3) rune {
	dx, dz := dir.X(), dir.Z()
	if abs32(dx) > abs32(dz) {
		if dx > 0 {
			return '→'
		}
		return '←'
	}
	if dz > 0 {
		return '↓'
	}
	return '↑'
}

func chebyshev(a, b maze.Coord) int64 {
	return max(abs64(a.Row-b.Row), abs64(a.Col-b.Col))
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/amazeing/internal/core"
)

const (
	// holdWindow is how long a movement key counts as held after its last
	// press or auto-repeat.
	holdWindow = 150 * time.Millisecond

	// cellPixels converts mouse motion in cells to pointer pixels.
	cellPixels = 8
)

// heldKeys emulates key-up events for terminals, which only report presses.
type heldKeys struct {
	window time.Duration
	until  map[core.Action]time.Time
}

func newHeldKeys(window time.Duration) *heldKeys {
	return &heldKeys{window: window, until: make(map[core.Action]time.Time)}
}

func (h *heldKeys) press(a core.Action, now time.Time) {
	h.until[a] = now.Add(h.window)
}

// apply marks every still-held action in f and forgets expired ones.
func (h *heldKeys) apply(f *core.InputFrame, now time.Time) {
	for a, t := range h.until {
		if now.Before(t) {
			f.Set(a)
			continue
		}
		delete(h.until, a)
	}
}

func (h *heldKeys) release() {
	clear(h.until)
}

// pointer turns mouse drags into pointer deltas and clicks into Interact.
type pointer struct {
	dragging bool
	x, y     int
}

func (p *pointer) handle(msg tea.MouseMsg, f *core.InputFrame) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			f.Set(core.ActionInteract)
			p.dragging = true
			p.x, p.y = msg.X, msg.Y
		}
	case tea.MouseActionMotion:
		if p.dragging {
			f.Look(float32((msg.X-p.x)*cellPixels), float32((msg.Y-p.y)*cellPixels))
			p.x, p.y = msg.X, msg.Y
		}
	case tea.MouseActionRelease:
		p.dragging = false
	}
}

package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/amazeing/internal/core"
)

func TestHeldKeysWindow(t *testing.T) {
	h := newHeldKeys(holdWindow)
	start := time.Unix(100, 0)
	h.press(core.ActionForward, start)

	f := core.NewInputFrame()
	h.apply(&f, start.Add(100*time.Millisecond))
	assert.True(t, f.Has(core.ActionForward))

	// auto-repeat extends the hold
	h.press(core.ActionForward, start.Add(120*time.Millisecond))
	f.Clear()
	h.apply(&f, start.Add(200*time.Millisecond))
	assert.True(t, f.Has(core.ActionForward))

	f.Clear()
	h.apply(&f, start.Add(300*time.Millisecond))
	assert.False(t, f.Has(core.ActionForward))
	assert.Empty(t, h.until)
}

func TestHeldKeysRelease(t *testing.T) {
	h := newHeldKeys(holdWindow)
	now := time.Unix(100, 0)
	h.press(core.ActionTurnLeft, now)
	h.press(core.ActionStrafeRight, now)
	h.release()

	f := core.NewInputFrame()
	h.apply(&f, now)
	assert.Empty(t, f.Actions)
}

func TestPointerDrag(t *testing.T) {
	var p pointer
	f := core.NewInputFrame()

	p.handle(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &f)
	assert.True(t, f.Has(core.ActionInteract))

	p.handle(tea.MouseMsg{X: 13, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, &f)
	assert.Equal(t, float32(3*cellPixels), f.PointerDX)
	assert.Equal(t, float32(-cellPixels), f.PointerDY)

	p.handle(tea.MouseMsg{X: 13, Y: 4, Action: tea.MouseActionRelease}, &f)
	f.Clear()
	p.handle(tea.MouseMsg{X: 20, Y: 9, Action: tea.MouseActionMotion}, &f)
	assert.Zero(t, f.PointerDX)
	assert.Zero(t, f.PointerDY)
}

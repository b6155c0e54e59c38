package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/amazeing/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionForward, false
	case "s", "down":
		return core.ActionBackward, false
	case "a":
		return core.ActionStrafeLeft, false
	case "d":
		return core.ActionStrafeRight, false
	case "left", "j":
		return core.ActionTurnLeft, false
	case "right", "l":
		return core.ActionTurnRight, false
	case "i":
		return core.ActionLookUp, false
	case "k":
		return core.ActionLookDown, false
	case " ", "e":
		return core.ActionInteract, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	}
	return core.ActionNone, false
}

// IsHeld reports whether an action stays active while its key repeats.
// Terminals report presses only, so held actions are emulated.
func (km *KeyMapper) IsHeld(a core.Action) bool {
	switch a {
	case core.ActionForward, core.ActionBackward,
		core.ActionStrafeLeft, core.ActionStrafeRight,
		core.ActionTurnLeft, core.ActionTurnRight,
		core.ActionLookUp, core.ActionLookDown:
		return true
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionDelete
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "x", "delete":
		return MenuActionDelete
	}
	return MenuActionNone
}

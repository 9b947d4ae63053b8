package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodger/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a discrete action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	// Game actions
	switch key {
	case "enter":
		return core.ActionStart, false
	case " ": // Space for the evasive dash
		return core.ActionDash, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// moveDir indexes the four held-movement directions.
type moveDir int

const (
	moveUp moveDir = iota
	moveDown
	moveLeft
	moveRight
	moveDirCount
)

// MapMoveKey translates a key message to a movement direction.
// Returns the direction and whether the key was a movement key at all.
func (km *KeyMapper) MapMoveKey(msg tea.KeyMsg) (moveDir, bool) {
	switch msg.String() {
	case "w", "up":
		return moveUp, true
	case "s", "down":
		return moveDown, true
	case "a", "left":
		return moveLeft, true
	case "d", "right":
		return moveRight, true
	}
	return 0, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// Package savegame stores named save slots holding encoded game sessions.
package savegame

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when a slot does not exist.
var ErrNotFound = errors.New("savegame: slot not found")

// DefaultSlot is used when no slot name is given.
const DefaultSlot = "default"

// Slot is one saved session.
type Slot struct {
	Name      string    `json:"name"`
	GameID    string    `json:"game_id"`
	Seed      uint64    `json:"seed"`
	Payload   []byte    `json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository persists save slots.
type Repository interface {
	// Save creates or replaces a slot.
	Save(ctx context.Context, slot Slot) error
	// Load returns a slot or ErrNotFound.
	Load(ctx context.Context, name string) (Slot, error)
	// List returns every slot ordered by name.
	List(ctx context.Context) ([]Slot, error)
	// Delete removes a slot. Deleting a missing slot returns ErrNotFound.
	Delete(ctx context.Context, name string) error
}

// ValidateName checks that a slot name is usable as a key.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("savegame: slot name is required")
	}
	if len(name) > 64 {
		return fmt.Errorf("savegame: slot name %q is too long", name)
	}
	if strings.ContainsAny(name, " \t\n*?[]:") {
		return fmt.Errorf("savegame: slot name %q contains reserved characters", name)
	}
	return nil
}

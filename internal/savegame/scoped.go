package savegame

import (
	"context"
	"errors"
	"strings"
)

const (
	scopeSep = "." // joins an owner and a slot name
	maxOwner = 24
)

// Scoped is a view of a Repository restricted to one owner's slots.
// Slot names are stored as "owner.name" and reported without the owner.
type Scoped struct {
	repo   Repository
	prefix string
}

var _ Repository = (*Scoped)(nil)

// NewScoped returns the slots of owner in repo. Owner names are cleaned
// with SanitizeOwner.
func NewScoped(repo Repository, owner string) (*Scoped, error) {
	if repo == nil {
		return nil, errors.New("savegame: repository is required")
	}
	owner = SanitizeOwner(owner)
	if owner == "" {
		return nil, errors.New("savegame: owner is required")
	}
	return &Scoped{repo: repo, prefix: owner + scopeSep}, nil
}

// SanitizeOwner keeps letters, digits, '-' and '_' and caps the length so
// that scoped names stay valid slot names.
func SanitizeOwner(owner string) string {
	var b strings.Builder
	for _, r := range owner {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
		if b.Len() == maxOwner {
			break
		}
	}
	return b.String()
}

// Save stores slot under the owner's prefix.
func (s *Scoped) Save(ctx context.Context, slot Slot) error {
	if err := ValidateName(slot.Name); err != nil {
		return err
	}
	slot.Name = s.prefix + slot.Name
	if err := ValidateName(slot.Name); err != nil {
		return err
	}
	return s.repo.Save(ctx, slot)
}

// Load returns one of the owner's slots.
func (s *Scoped) Load(ctx context.Context, name string) (Slot, error) {
	slot, err := s.repo.Load(ctx, s.prefix+name)
	if err != nil {
		return Slot{}, err
	}
	slot.Name = name
	return slot, nil
}

// List returns the owner's slots ordered by name.
func (s *Scoped) List(ctx context.Context) ([]Slot, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var slots []Slot
	for _, slot := range all {
		name, ok := strings.CutPrefix(slot.Name, s.prefix)
		if !ok {
			continue
		}
		slot.Name = name
		slots = append(slots, slot)
	}
	return slots, nil
}

// Delete removes one of the owner's slots.
func (s *Scoped) Delete(ctx context.Context, name string) error {
	return s.repo.Delete(ctx, s.prefix+name)
}

package savegame

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopedKeepsOwnersApart(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	alice, err := NewScoped(repo, "alice")
	require.NoError(t, err)
	bob, err := NewScoped(repo, "bob")
	require.NoError(t, err)

	require.NoError(t, alice.Save(ctx, Slot{Name: DefaultSlot, Seed: 1, Payload: []byte("{}")}))
	require.NoError(t, bob.Save(ctx, Slot{Name: DefaultSlot, Seed: 2, Payload: []byte("{}")}))
	assert.True(t, mr.Exists("amazeing:save:alice.default"))

	got, err := alice.Load(ctx, DefaultSlot)
	require.NoError(t, err)
	assert.Equal(t, DefaultSlot, got.Name)
	assert.Equal(t, uint64(1), got.Seed)

	slots, err := bob.List(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, DefaultSlot, slots[0].Name)
	assert.Equal(t, uint64(2), slots[0].Seed)

	require.NoError(t, alice.Delete(ctx, DefaultSlot))
	_, err = alice.Load(ctx, DefaultSlot)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = bob.Load(ctx, DefaultSlot)
	assert.NoError(t, err)
}

func TestScopedRejectsLongNames(t *testing.T) {
	repo, _ := newTestRepository(t)
	s, err := NewScoped(repo, "someone")
	require.NoError(t, err)

	name := strings.Repeat("n", 60)
	assert.Error(t, s.Save(context.Background(), Slot{Name: name, Payload: []byte("{}")}))
}

func TestSanitizeOwner(t *testing.T) {
	assert.Equal(t, "alice", SanitizeOwner("alice"))
	assert.Equal(t, "evil", SanitizeOwner("e:v*i l"))
	assert.Equal(t, strings.Repeat("x", maxOwner), SanitizeOwner(strings.Repeat("x", 40)))

	_, err := NewScoped(nil, "alice")
	assert.Error(t, err)
	repo, _ := newTestRepository(t)
	_, err = NewScoped(repo, "???")
	assert.Error(t, err)
}

package world

import "time"

// MonsterGlimpse is how long a monster stays visible once the player is
// close.
const MonsterGlimpse = 400 * time.Millisecond

// Monster tracks when the player came close to a monster sprite.
//
// While the player stays in range the monster is visible for MonsterGlimpse
// and then hidden. Leaving range resets it and it is visible again, so a
// monster is only ever glimpsed on approach.
type Monster struct {
	reach    float32
	since    time.Duration
	tracking bool
}

// NewMonster returns a monster that reacts within reach world units.
func NewMonster(reach float32) *Monster {
	return &Monster{reach: reach}
}

// Update records the player's distance at play time now and reports
// whether the monster is visible.
func (m *Monster) Update(distance float32, now time.Duration) bool {
	inRange := distance < m.reach
	if !m.tracking {
		if inRange {
			m.tracking = true
			m.since = now
		}
		return true
	}
	if inRange {
		return now-m.since < MonsterGlimpse
	}
	m.tracking = false
	return true
}

// Tracking reports whether the glimpse timer is running.
func (m *Monster) Tracking() bool {
	return m.tracking
}

// Package seed derives reproducible random generators from the world seed.
//
// Every procedural decision in the world is taken from a generator seeded by
// folding the world seed and a position into a fixed-size buffer, so no
// generated state ever needs to be stored.
package seed

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/vovakirdan/amazeing/internal/maze"
)

// DoorOdds is the chance that a room border has an opening.
// All four directions must share it for neighbouring rooms to agree.
const DoorOdds float32 = 0.8

// KeyRadius bounds the rows and columns the key room is drawn from.
const KeyRadius = 6

// keyMinDistance keeps the key away from the lock room.
const keyMinDistance = 3

const (
	tagItem byte = 'i'
)

var keyTag = []byte("key")

// Derive folds the given byte parts into a ChaCha8 seed and returns a
// generator over it. Byte i of the concatenated parts is XORed into
// position i mod 32 of the seed buffer.
//
// The scheme is order sensitive and not cryptographic; collisions between
// positions are possible in principle and tolerated.
func Derive(parts ...[]byte) *rand.Rand {
	var buf [32]byte
	i := 0
	for _, part := range parts {
		for _, b := range part {
			buf[i%len(buf)] ^= b
			i++
		}
	}
	return rand.New(rand.NewChaCha8(buf))
}

// ForRoom returns the generator for a room's layout.
func ForRoom(seed uint64, c maze.Coord) *rand.Rand {
	return Derive(u64(seed), i64(c.Row), i64(c.Col))
}

// ForItem returns the generator used to place a room's collectible.
func ForItem(seed uint64, c maze.Coord) *rand.Rand {
	return Derive(u64(seed), i64(c.Row), i64(c.Col), []byte{tagItem})
}

// ForBorder returns the generator for one border of a room.
// Queries for the same shared border from either side return equal generators.
func ForBorder(seed uint64, c maze.Coord, d maze.Direction) *rand.Rand {
	c, d = Canonical(c, d)
	return Derive(u64(seed), i64(c.Row), i64(c.Col), []byte{byte(d)})
}

// Canonical rewrites a border query into the form that is hashed.
//
// Up and Left borders at positive coordinates, and Right and Down borders at
// negative coordinates, are expressed from the neighbouring room instead.
// The rule is asymmetric around zero; changing it changes every world.
func Canonical(c maze.Coord, d maze.Direction) (maze.Coord, maze.Direction) {
	switch {
	case d == maze.Up && c.Col > 0:
		return maze.Coord{Row: c.Row, Col: c.Col - 1}, maze.Down
	case d == maze.Left && c.Row > 0:
		return maze.Coord{Row: c.Row - 1, Col: c.Col}, maze.Right
	case d == maze.Right && c.Row < 0:
		return maze.Coord{Row: c.Row + 1, Col: c.Col}, maze.Left
	case d == maze.Down && c.Col < 0:
		return maze.Coord{Row: c.Row, Col: c.Col + 1}, maze.Up
	}
	return c, d
}

// BorderOpening decides whether side d of room c has an opening and at
// which of the size cell offsets it sits.
func BorderOpening(seed uint64, c maze.Coord, d maze.Direction, size int) (int, bool) {
	rng := ForBorder(seed, c, d)
	if rng.Float32() < DoorOdds {
		return rng.IntN(size), true
	}
	return 0, false
}

// KeyRoom returns the single room holding the key for this seed.
func KeyRoom(seed uint64) maze.Coord {
	rng := Derive(u64(seed), keyTag)
	span := 2*KeyRadius + 1
	for {
		c := maze.Coord{
			Row: int64(rng.IntN(span) - KeyRadius),
			Col: int64(rng.IntN(span) - KeyRadius),
		}
		if c.Manhattan(maze.Origin) >= keyMinDistance {
			return c
		}
	}
}

func u64(v uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, v)
}

func i64(v int64) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(v))
}

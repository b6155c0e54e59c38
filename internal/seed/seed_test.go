package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/amazeing/internal/maze"
)

type opening struct {
	offset int
	ok     bool
}

func border(seed uint64, c maze.Coord, d maze.Direction) opening {
	offset, ok := BorderOpening(seed, c, d, maze.DefaultSize)
	return opening{offset: offset, ok: ok}
}

func TestUpwardStability(t *testing.T) {
	assert.Equal(t,
		border(0, maze.Coord{Row: 0, Col: 0}, maze.Up),
		border(0, maze.Coord{Row: 0, Col: -1}, maze.Down))
}

func TestLeftStability(t *testing.T) {
	assert.Equal(t,
		border(0, maze.Coord{Row: 0, Col: 0}, maze.Left),
		border(0, maze.Coord{Row: -1, Col: 0}, maze.Right))
}

func TestRightStability(t *testing.T) {
	assert.Equal(t,
		border(0, maze.Coord{Row: 0, Col: 0}, maze.Right),
		border(0, maze.Coord{Row: 1, Col: 0}, maze.Left))
}

func TestDownwardStability(t *testing.T) {
	assert.Equal(t,
		border(0, maze.Coord{Row: 0, Col: 0}, maze.Down),
		border(0, maze.Coord{Row: 0, Col: 1}, maze.Up))
}

func TestBorderSymmetryEverywhere(t *testing.T) {
	seeds := []uint64{0, 1, 7, 0xdeadbeef, ^uint64(0)}
	for _, s := range seeds {
		for row := int64(-6); row <= 6; row++ {
			for col := int64(-6); col <= 6; col++ {
				c := maze.Coord{Row: row, Col: col}
				for _, d := range maze.Directions {
					mine := border(s, c, d)
					theirs := border(s, c.Neighbor(d), d.Opposite())
					require.Equalf(t, mine, theirs, "seed %d room %v side %v", s, c, d)
				}
			}
		}
	}
}

func TestBorderSymmetryFarFromOrigin(t *testing.T) {
	far := []maze.Coord{
		{Row: 1 << 40, Col: -(1 << 40)},
		{Row: -123456789, Col: 987654321},
	}
	for _, c := range far {
		for _, d := range maze.Directions {
			assert.Equal(t, border(99, c, d), border(99, c.Neighbor(d), d.Opposite()))
		}
	}
}

func TestCanonicalIsAsymmetricAroundZero(t *testing.T) {
	c, d := Canonical(maze.Coord{Row: 0, Col: 0}, maze.Up)
	assert.Equal(t, maze.Coord{Row: 0, Col: 0}, c, "Up at column 0 is not rewritten")
	assert.Equal(t, maze.Up, d)

	c, d = Canonical(maze.Coord{Row: 0, Col: 1}, maze.Up)
	assert.Equal(t, maze.Coord{Row: 0, Col: 0}, c)
	assert.Equal(t, maze.Down, d)

	c, d = Canonical(maze.Coord{Row: -1, Col: 4}, maze.Right)
	assert.Equal(t, maze.Coord{Row: 0, Col: 4}, c)
	assert.Equal(t, maze.Left, d)

	c, d = Canonical(maze.Coord{Row: 3, Col: -2}, maze.Down)
	assert.Equal(t, maze.Coord{Row: 3, Col: -1}, c)
	assert.Equal(t, maze.Up, d)
}

func TestBorderOpeningInRange(t *testing.T) {
	opened, walled := 0, 0
	for col := int64(0); col < 400; col++ {
		offset, ok := BorderOpening(3, maze.Coord{Row: 2, Col: col}, maze.Down, maze.DefaultSize)
		if !ok {
			walled++
			continue
		}
		opened++
		require.GreaterOrEqual(t, offset, 0)
		require.Less(t, offset, maze.DefaultSize)
	}
	assert.Greater(t, opened, walled, "most borders have a door")
	assert.Positive(t, walled, "some borders are solid")
}

func TestDeriveFoldsPastBufferLength(t *testing.T) {
	long := make([]byte, 40)
	long[33] = 1

	a := Derive(long).Uint64()
	b := Derive([]byte{0, 1}).Uint64()
	assert.Equal(t, a, b, "byte 33 folds onto position 1")

	assert.Equal(t, Derive([]byte{1}, []byte{2}).Uint64(), Derive([]byte{1, 2}).Uint64(),
		"the running index continues across parts")
	assert.NotEqual(t, Derive([]byte{1, 2}).Uint64(), Derive([]byte{2, 1}).Uint64())
}

func TestForRoomDeterministic(t *testing.T) {
	c := maze.Coord{Row: -3, Col: 8}
	assert.Equal(t, ForRoom(5, c).Uint64(), ForRoom(5, c).Uint64())
	assert.NotEqual(t, ForRoom(5, c).Uint64(), ForRoom(6, c).Uint64())
	assert.NotEqual(t, ForRoom(5, c).Uint64(), ForItem(5, c).Uint64())
}

func TestKeyRoom(t *testing.T) {
	for s := range uint64(100) {
		k := KeyRoom(s)
		require.Equal(t, k, KeyRoom(s))
		require.GreaterOrEqual(t, k.Manhattan(maze.Origin), int64(keyMinDistance))
		require.LessOrEqual(t, k.Row, int64(KeyRadius))
		require.GreaterOrEqual(t, k.Row, int64(-KeyRadius))
		require.LessOrEqual(t, k.Col, int64(KeyRadius))
		require.GreaterOrEqual(t, k.Col, int64(-KeyRadius))
	}
}

// Package maze builds the wall layout of a single room and defines the
// coordinate types shared by the world generator.
//
// A room is a Size x Size grid of cells. Only the internal walls between
// cells are stored here; whether the room border has an opening to the
// neighbouring room is decided elsewhere so that both rooms agree on it.
package maze

import "fmt"

// DefaultSize is the number of cells along one side of a room.
const DefaultSize = 5

// Direction names one side of a cell or a room.
// The numeric values are part of the border seed derivation and must not change.
type Direction uint8

const (
	Up Direction = iota
	Left
	Right
	Down
)

// Directions lists every direction in the order walls are collected.
var Directions = [4]Direction{Up, Left, Right, Down}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}

// Opposite returns the direction facing back across the same wall.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Left:
		return Right
	case Right:
		return Left
	default:
		return Up
	}
}

// Cell identifies a grid square inside a room.
type Cell struct {
	Row, Col int
}

// Coord identifies a room in the unbounded room lattice.
type Coord struct {
	Row int64 `json:"row"`
	Col int64 `json:"col"`
}

// Origin is the room the player starts in.
var Origin = Coord{}

// String formats the coordinate as (row, col).
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Neighbor returns the room that shares the given border with c.
// Up and Down move along the column axis, Left and Right along the row axis.
func (c Coord) Neighbor(d Direction) Coord {
	switch d {
	case Up:
		return Coord{Row: c.Row, Col: c.Col - 1}
	case Left:
		return Coord{Row: c.Row - 1, Col: c.Col}
	case Right:
		return Coord{Row: c.Row + 1, Col: c.Col}
	default:
		return Coord{Row: c.Row, Col: c.Col + 1}
	}
}

// Manhattan returns the lattice distance between two rooms.
func (c Coord) Manhattan(o Coord) int64 {
	return abs64(c.Row-o.Row) + abs64(c.Col-o.Col)
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

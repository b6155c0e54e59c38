package maze

import "math/rand/v2"

// Topology records which internal walls of a room are closed.
//
// The first (size-1)*size entries are the walls below each cell of rows
// 0..size-2, indexed row*size+col. The remaining size*(size-1) entries are
// the walls to the right of each cell of columns 0..size-2, indexed
// row*(size-1)+col after that block.
type Topology struct {
	size  int
	walls []bool
}

// wallRef is a frontier entry: a closed wall seen from one of its cells.
type wallRef struct {
	from Cell
	dir  Direction
}

// NewTopology returns a room of the given size with every internal wall closed.
func NewTopology(size int) Topology {
	if size < 1 {
		size = 1
	}
	walls := make([]bool, 2*(size-1)*size)
	for i := range walls {
		walls[i] = true
	}
	return Topology{size: size, walls: walls}
}

// Generate carves a spanning tree over the room with randomized Prim's
// algorithm run on walls instead of weighted edges.
//
// Starting from the center cell, a random wall is swap-removed from the
// frontier; if the cell behind it has not been visited the wall is opened and
// that cell's closed walls join the frontier. The order of RNG draws is part
// of the world format: the same generator state always yields the same maze.
func Generate(rng *rand.Rand, size int) Topology {
	t := NewTopology(size)
	center := Cell{Row: t.size / 2, Col: t.size / 2}

	visited := make([]bool, t.size*t.size)
	visited[t.index(center)] = true
	frontier := t.closedAround(center, nil)

	for len(frontier) > 0 {
		i := rng.IntN(len(frontier))
		w := frontier[i]
		last := len(frontier) - 1
		frontier[i] = frontier[last]
		frontier = frontier[:last]

		to, ok := t.Neighbor(w.from, w.dir)
		if !ok || visited[t.index(to)] {
			continue
		}
		t.Set(w.from, w.dir, false)
		visited[t.index(to)] = true
		frontier = t.closedAround(to, frontier)
	}

	return t
}

// Size returns the number of cells along one side.
func (t Topology) Size() int {
	return t.size
}

// Len returns the number of internal walls tracked.
func (t Topology) Len() int {
	return len(t.walls)
}

// Bits returns a copy of the raw wall flags (true = closed).
func (t Topology) Bits() []bool {
	out := make([]bool, len(t.walls))
	copy(out, t.walls)
	return out
}

// Equal reports whether two topologies have the same size and walls.
func (t Topology) Equal(o Topology) bool {
	if t.size != o.size || len(t.walls) != len(o.walls) {
		return false
	}
	for i := range t.walls {
		if t.walls[i] != o.walls[i] {
			return false
		}
	}
	return true
}

// ClosedBelow reports whether the wall under cell c is closed.
// c.Row must be below size-1.
func (t Topology) ClosedBelow(c Cell) bool {
	return t.walls[t.belowIndex(c)]
}

// ClosedRight reports whether the wall right of cell c is closed.
// c.Col must be below size-1.
func (t Topology) ClosedRight(c Cell) bool {
	return t.walls[t.rightIndex(c)]
}

// IsClosed reports whether the internal wall on side d of cell c is closed.
// ok is false when that side is the room border or c is outside the room.
func (t Topology) IsClosed(c Cell, d Direction) (closed, ok bool) {
	to, ok := t.Neighbor(c, d)
	if !ok {
		return false, false
	}
	switch d {
	case Up:
		return t.walls[t.belowIndex(to)], true
	case Left:
		return t.walls[t.rightIndex(to)], true
	case Right:
		return t.walls[t.rightIndex(c)], true
	default:
		return t.walls[t.belowIndex(c)], true
	}
}

// Set opens (closed=false) or closes the internal wall on side d of cell c.
// Border sides are ignored.
func (t Topology) Set(c Cell, d Direction, closed bool) {
	to, ok := t.Neighbor(c, d)
	if !ok {
		return
	}
	switch d {
	case Up:
		t.walls[t.belowIndex(to)] = closed
	case Left:
		t.walls[t.rightIndex(to)] = closed
	case Right:
		t.walls[t.rightIndex(c)] = closed
	case Down:
		t.walls[t.belowIndex(c)] = closed
	}
}

// Neighbor returns the cell across side d of c, if it is inside the room.
func (t Topology) Neighbor(c Cell, d Direction) (Cell, bool) {
	if !t.Contains(c) {
		return Cell{}, false
	}
	switch d {
	case Up:
		if c.Row > 0 {
			return Cell{Row: c.Row - 1, Col: c.Col}, true
		}
	case Left:
		if c.Col > 0 {
			return Cell{Row: c.Row, Col: c.Col - 1}, true
		}
	case Right:
		if c.Col < t.size-1 {
			return Cell{Row: c.Row, Col: c.Col + 1}, true
		}
	case Down:
		if c.Row < t.size-1 {
			return Cell{Row: c.Row + 1, Col: c.Col}, true
		}
	}
	return Cell{}, false
}

// Contains reports whether c lies inside the room.
func (t Topology) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < t.size && c.Col >= 0 && c.Col < t.size
}

// OpenCount returns the number of open internal walls.
func (t Topology) OpenCount() int {
	n := 0
	for _, closed := range t.walls {
		if !closed {
			n++
		}
	}
	return n
}

// Reachable counts the cells reachable from start through open walls,
// start included.
func (t Topology) Reachable(start Cell) int {
	if !t.Contains(start) {
		return 0
	}
	seen := make([]bool, t.size*t.size)
	seen[t.index(start)] = true
	queue := []Cell{start}
	count := 0
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		count++
		for _, d := range Directions {
			closed, ok := t.IsClosed(c, d)
			if !ok || closed {
				continue
			}
			to, _ := t.Neighbor(c, d)
			if seen[t.index(to)] {
				continue
			}
			seen[t.index(to)] = true
			queue = append(queue, to)
		}
	}
	return count
}

// Connected reports whether every cell is reachable from the center.
func (t Topology) Connected() bool {
	return t.Reachable(Cell{Row: t.size / 2, Col: t.size / 2}) == t.size*t.size
}

func (t Topology) closedAround(c Cell, dst []wallRef) []wallRef {
	for _, d := range Directions {
		if closed, ok := t.IsClosed(c, d); ok && closed {
			dst = append(dst, wallRef{from: c, dir: d})
		}
	}
	return dst
}

func (t Topology) index(c Cell) int {
	return c.Row*t.size + c.Col
}

func (t Topology) belowIndex(c Cell) int {
	return c.Row*t.size + c.Col
}

func (t Topology) rightIndex(c Cell) int {
	return (t.size-1)*t.size + c.Row*(t.size-1) + c.Col
}

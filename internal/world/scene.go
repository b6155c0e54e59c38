package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/amazeing/internal/maze"
)

// Handle is an opaque reference to a node owned by a Scene.
type Handle uint64

// NodeKind classifies scene nodes.
type NodeKind uint8

const (
	NodeRoom NodeKind = iota
	NodeItem
	NodeMonster
)

func (k NodeKind) String() string {
	switch k {
	case NodeRoom:
		return "room"
	case NodeItem:
		return "item"
	case NodeMonster:
		return "monster"
	}
	return "unknown"
}

// Node describes geometry handed to a Scene. The world only creates,
// moves and releases nodes; it never reads them back.
type Node struct {
	Kind     NodeKind
	Room     maze.Coord
	Position mgl32.Vec3
	Yaw      float32
	Visible  bool

	Hue   float32  // room tint
	Walls []Wall   // room geometry
	Item  ItemKind // item nodes
}

// Scene is the sink that holds renderable nodes.
type Scene interface {
	Add(n Node) Handle
	SetTransform(h Handle, pos mgl32.Vec3, yaw float32)
	SetVisible(h Handle, visible bool)
	Remove(h Handle)
}

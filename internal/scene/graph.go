// Package scene is an in-memory scene graph. It owns the nodes the world
// streams in and hands out sequential handles for them.
package scene

import (
	"slices"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/amazeing/internal/world"
)

// Entry is a node together with its handle.
type Entry struct {
	Handle world.Handle
	world.Node
}

// Graph stores scene nodes keyed by handle.
// It is safe for use by the game loop and a renderer on another goroutine.
type Graph struct {
	mu    sync.RWMutex
	ids   allocator
	nodes map[world.Handle]world.Node
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[world.Handle]world.Node)}
}

// Add stores n and returns its handle.
func (g *Graph) Add(n world.Node) world.Handle {
	g.mu.Lock()
	defer g.mu.Unlock()

	h := g.ids.next()
	g.nodes[h] = n
	return h
}

// SetTransform moves a node. Unknown handles are ignored.
func (g *Graph) SetTransform(h world.Handle, pos mgl32.Vec3, yaw float32) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if n, ok := g.nodes[h]; ok {
		n.Position, n.Yaw = pos, yaw
		g.nodes[h] = n
	}
}

// SetVisible shows or hides a node. Unknown handles are ignored.
func (g *Graph) SetVisible(h world.Handle, visible bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if n, ok := g.nodes[h]; ok {
		n.Visible = visible
		g.nodes[h] = n
	}
}

// Remove releases a node.
func (g *Graph) Remove(h world.Handle) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.nodes, h)
}

// Get returns the node behind a handle.
func (g *Graph) Get(h world.Handle) (world.Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[h]
	return n, ok
}

// Len returns the number of live nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Nodes returns every live node in handle order.
func (g *Graph) Nodes() []Entry {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Entry, 0, len(g.nodes))
	for h, n := range g.nodes {
		out = append(out, Entry{Handle: h, Node: n})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		switch {
		case a.Handle < b.Handle:
			return -1
		case a.Handle > b.Handle:
			return 1
		}
		return 0
	})
	return out
}

// Visible returns the visible nodes of one kind in handle order.
func (g *Graph) Visible(kind world.NodeKind) []Entry {
	all := g.Nodes()
	out := all[:0]
	for _, e := range all {
		if e.Kind == kind && e.Visible {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops every node and restarts handle numbering.
func (g *Graph) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	clear(g.nodes)
	g.ids = allocator{}
}

// allocator issues handles 1, 2, 3, ... in insertion order.
// Handle 0 is never issued.
type allocator struct {
	last world.Handle
}

func (a *allocator) next() world.Handle {
	a.last++
	return a.last
}

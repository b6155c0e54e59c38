package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// WallKind tells which axis a wall clamps.
type WallKind uint8

const (
	// Horizontal walls lie at a fixed x and span z.
	Horizontal WallKind = iota
	// Vertical walls lie at a fixed z and span x.
	Vertical
)

func (k WallKind) String() string {
	if k == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Wall is one cell-wide wall segment centered on Center.
type Wall struct {
	Kind   WallKind
	Center mgl32.Vec3
}

func (w Wall) String() string {
	return fmt.Sprintf("%s(%.3f, %.3f)", w.Kind, w.Center.X(), w.Center.Z())
}

// PushBack clamps p out of the wall's thickness band when p lies within the
// wall's span. halfSpan is half the wall's length.
//
// The clamp is per axis and per wall, not a sweep; a step longer than
// WallThickness can pass through.
func (w Wall) PushBack(p mgl32.Vec3, halfSpan float32) mgl32.Vec3 {
	switch w.Kind {
	case Horizontal:
		if w.Center.Z()-halfSpan <= p.Z() && p.Z() <= w.Center.Z()+halfSpan {
			p[0] = clampOut(p.X(), w.Center.X())
		}
	case Vertical:
		if w.Center.X()-halfSpan <= p.X() && p.X() <= w.Center.X()+halfSpan {
			p[2] = clampOut(p.Z(), w.Center.Z())
		}
	}
	return p
}

func clampOut(v, center float32) float32 {
	switch {
	case center-WallThickness < v && v <= center:
		return center - WallThickness
	case center <= v && v <= center+WallThickness:
		return center + WallThickness
	}
	return v
}

// ResolveMove applies every wall to the candidate position in order.
func ResolveMove(walls []Wall, candidate mgl32.Vec3, halfSpan float32) mgl32.Vec3 {
	for _, w := range walls {
		candidate = w.PushBack(candidate, halfSpan)
	}
	return candidate
}

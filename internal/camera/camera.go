// Package camera implements the first-person camera: yaw/pitch mouse look,
// flat movement basis and the view and projection matrices handed to the
// renderer.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// LookStep scales pointer deltas into radians.
	LookStep float32 = 0.0025
	// MoveStep is the length of one tick of movement.
	MoveStep float32 = 0.05

	pitchEpsilon float32 = 0.01

	defaultFov    float32 = math.Pi / 4
	defaultNear   float32 = 0.05
	defaultFar    float32 = 1024
	defaultAspect float32 = 800.0 / 600.0
)

// FirstPerson is a camera that looks around its eye with yaw and pitch.
type FirstPerson struct {
	eye   mgl32.Vec3
	yaw   float32
	pitch float32

	fov, near, far, aspect float32
	lookStep, moveStep     float32

	coords coordSystem

	view, proj, projView, invProjView mgl32.Mat4
}

// Option configures a camera at construction.
type Option func(*FirstPerson)

// WithFrustum overrides the vertical field of view and clip planes.
func WithFrustum(fov, near, far float32) Option {
	return func(c *FirstPerson) {
		c.fov, c.near, c.far = fov, near, far
	}
}

// WithSteps overrides look sensitivity and movement step length.
func WithSteps(look, move float32) Option {
	return func(c *FirstPerson) {
		if look > 0 {
			c.lookStep = look
		}
		if move > 0 {
			c.moveStep = move
		}
	}
}

// WithUpAxis sets the world's up axis. The maze always uses +Y.
func WithUpAxis(up mgl32.Vec3) Option {
	return func(c *FirstPerson) {
		c.coords = newCoordSystem(up)
	}
}

// New creates a camera at eye looking towards at.
func New(eye, at mgl32.Vec3, opts ...Option) *FirstPerson {
	c := &FirstPerson{
		fov:      defaultFov,
		near:     defaultNear,
		far:      defaultFar,
		aspect:   defaultAspect,
		lookStep: LookStep,
		moveStep: MoveStep,
		coords:   newCoordSystem(mgl32.Vec3{0, 1, 0}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.LookAt(eye, at)
	return c
}

// NewWithFrustum creates a camera with an explicit field of view and clip planes.
func NewWithFrustum(fov, near, far float32, eye, at mgl32.Vec3) *FirstPerson {
	return New(eye, at, WithFrustum(fov, near, far))
}

// LookAt places the eye and derives yaw and pitch from the target point.
func (c *FirstPerson) LookAt(eye, at mgl32.Vec3) {
	dist := eye.Sub(at).Len()
	viewEye := c.coords.toYUp.Rotate(eye)
	viewAt := c.coords.toYUp.Rotate(at)

	c.eye = eye
	if dist > 0 {
		c.pitch = acos32(clampUnit((viewAt.Y() - viewEye.Y()) / dist))
		c.yaw = atan2(viewAt.Z()-viewEye.Z(), viewAt.X()-viewEye.X())
	}
	c.restrict()
	c.update()
}

// Eye returns the eye position.
func (c *FirstPerson) Eye() mgl32.Vec3 {
	return c.eye
}

// SetEye moves the eye without changing orientation.
func (c *FirstPerson) SetEye(eye mgl32.Vec3) {
	c.eye = eye
	c.restrict()
	c.update()
}

// Yaw returns the horizontal look angle in radians.
func (c *FirstPerson) Yaw() float32 {
	return c.yaw
}

// Pitch returns the angle from the up axis in radians.
func (c *FirstPerson) Pitch() float32 {
	return c.pitch
}

// At returns the point one unit ahead of the eye along the view direction.
func (c *FirstPerson) At() mgl32.Vec3 {
	viewEye := c.coords.toYUp.Rotate(c.eye)
	sinPitch := sin32(c.pitch)
	at := mgl32.Vec3{
		viewEye.X() + cos32(c.yaw)*sinPitch,
		viewEye.Y() + cos32(c.pitch),
		viewEye.Z() + sin32(c.yaw)*sinPitch,
	}
	return c.coords.fromYUp.Rotate(at)
}

// Look turns the camera by a pointer delta in screen pixels.
func (c *FirstPerson) Look(dx, dy float32) {
	c.yaw += dx * c.lookStep
	c.pitch += dy * c.lookStep
	c.restrict()
	c.update()
}

// SetAspect updates the projection for a new framebuffer size.
func (c *FirstPerson) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.aspect = float32(width) / float32(height)
	c.update()
}

// MoveDir returns one tick of displacement for the held movement keys,
// flattened onto the ground plane. ok is false when nothing is held or the
// keys cancel out.
func (c *FirstPerson) MoveDir(forward, back, right, left bool) (mgl32.Vec3, bool) {
	if !forward && !back && !right && !left {
		return mgl32.Vec3{}, false
	}

	front := c.At().Sub(c.eye).Normalize()
	side := c.coords.up.Cross(front).Normalize()

	var move mgl32.Vec3
	if forward {
		move = move.Add(front)
	}
	if back {
		move = move.Sub(front)
	}
	if right {
		move = move.Sub(side)
	}
	if left {
		move = move.Add(side)
	}
	move[1] = 0

	if move.Len() < 1e-6 {
		return mgl32.Vec3{}, false
	}
	return move.Normalize().Mul(c.moveStep), true
}

// View returns the world-to-camera matrix.
func (c *FirstPerson) View() mgl32.Mat4 {
	return c.view
}

// Forward returns the unit view direction, read from the view matrix.
func (c *FirstPerson) Forward() mgl32.Vec3 {
	return c.view.Row(2).Vec3().Mul(-1)
}

// Projection, ProjView, InverseProjView and ClipPlanes describe the
// perspective frustum for a 3D renderer. The terminal map is top-down and
// only reads the view.

// Projection returns the perspective matrix.
func (c *FirstPerson) Projection() mgl32.Mat4 {
	return c.proj
}

// ProjView returns Projection * View.
func (c *FirstPerson) ProjView() mgl32.Mat4 {
	return c.projView
}

// InverseProjView returns the inverse of ProjView.
func (c *FirstPerson) InverseProjView() mgl32.Mat4 {
	return c.invProjView
}

// ClipPlanes returns the near and far clip distances.
func (c *FirstPerson) ClipPlanes() (near, far float32) {
	return c.near, c.far
}

func (c *FirstPerson) restrict() {
	if c.pitch <= pitchEpsilon {
		c.pitch = pitchEpsilon
	}
	if c.pitch > math.Pi-pitchEpsilon {
		c.pitch = math.Pi - pitchEpsilon
	}
}

func (c *FirstPerson) update() {
	c.view = mgl32.LookAtV(c.eye, c.At(), c.coords.up)
	c.proj = mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
	c.projView = c.proj.Mul4(c.view)
	if c.projView.Det() != 0 {
		c.invProjView = c.projView.Inv()
	}
}

// coordSystem converts between the world's up axis and the Y-up frame the
// yaw/pitch math works in.
type coordSystem struct {
	up      mgl32.Vec3
	toYUp   mgl32.Quat
	fromYUp mgl32.Quat
}

func newCoordSystem(up mgl32.Vec3) coordSystem {
	up = up.Normalize()
	yUp := mgl32.Vec3{0, 1, 0}

	var rot mgl32.Quat
	if up.Dot(yUp) < -1+1e-6 {
		rot = mgl32.QuatRotate(math.Pi, mgl32.Vec3{1, 0, 0})
	} else {
		rot = mgl32.QuatBetweenVectors(up, yUp)
	}
	return coordSystem{up: up, toYUp: rot, fromYUp: rot.Inverse()}
}

func sin32(x float32) float32 { return float32(math.Sin(float64(x))) }
func cos32(x float32) float32 { return float32(math.Cos(float64(x))) }
func acos32(x float32) float32 {
	return float32(math.Acos(float64(x)))
}
func atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

func clampUnit(x float32) float32 {
	return mgl32.Clamp(x, -1, 1)
}

package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func spawnCamera() *FirstPerson {
	return New(mgl32.Vec3{0, 0.25, 0}, mgl32.Vec3{0, 0.25, -1})
}

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.Truef(t, want.ApproxEqualThreshold(got, eps), "want %v, got %v", want, got)
}

func TestLookAtRoundTrip(t *testing.T) {
	c := spawnCamera()
	assert.InDelta(t, math.Pi/2, c.Pitch(), eps)
	assert.InDelta(t, -math.Pi/2, c.Yaw(), eps)
	assertVec(t, mgl32.Vec3{0, 0.25, -1}, c.At())
	assertVec(t, mgl32.Vec3{0, 0.25, 0}, c.Eye())
}

func TestLookClampsPitch(t *testing.T) {
	c := spawnCamera()

	c.Look(0, 1e6)
	assert.InDelta(t, math.Pi-pitchEpsilon, c.Pitch(), eps)

	c.Look(0, -1e7)
	assert.InDelta(t, pitchEpsilon, c.Pitch(), eps)
}

func TestLookTurnsYaw(t *testing.T) {
	c := spawnCamera()
	yaw := c.Yaw()
	c.Look(100, 0)
	assert.InDelta(t, yaw+100*LookStep, c.Yaw(), eps)
}

func TestForwardFollowsView(t *testing.T) {
	c := spawnCamera()
	assertVec(t, mgl32.Vec3{0, 0, -1}, c.Forward())

	c.Look(float32(math.Pi/2)/LookStep, 0)
	assertVec(t, mgl32.Vec3{1, 0, 0}, c.Forward())
	assertVec(t, c.At().Sub(c.Eye()), c.Forward())
}

func TestMoveDirBasis(t *testing.T) {
	c := spawnCamera()

	tests := []struct {
		name                       string
		forward, back, right, left bool
		want                       mgl32.Vec3
	}{
		{"forward", true, false, false, false, mgl32.Vec3{0, 0, -MoveStep}},
		{"back", false, true, false, false, mgl32.Vec3{0, 0, MoveStep}},
		{"right", false, false, true, false, mgl32.Vec3{MoveStep, 0, 0}},
		{"left", false, false, false, true, mgl32.Vec3{-MoveStep, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.MoveDir(tt.forward, tt.back, tt.right, tt.left)
			require.True(t, ok)
			assertVec(t, tt.want, got)
		})
	}
}

func TestMoveDirDiagonalHasStepLength(t *testing.T) {
	c := spawnCamera()
	got, ok := c.MoveDir(true, false, true, false)
	require.True(t, ok)
	assert.InDelta(t, MoveStep, got.Len(), eps)
}

func TestMoveDirIgnoresPitch(t *testing.T) {
	c := spawnCamera()
	c.Look(0, 300)
	got, ok := c.MoveDir(true, false, false, false)
	require.True(t, ok)
	assert.Zero(t, got.Y())
	assert.InDelta(t, MoveStep, got.Len(), eps)
}

func TestMoveDirNothingHeld(t *testing.T) {
	c := spawnCamera()
	_, ok := c.MoveDir(false, false, false, false)
	assert.False(t, ok)

	_, ok = c.MoveDir(true, true, false, false)
	assert.False(t, ok, "opposite keys cancel")
}

func TestProjViewInverse(t *testing.T) {
	c := spawnCamera()
	c.SetAspect(1920, 1080)
	id := c.ProjView().Mul4(c.InverseProjView())
	assert.True(t, id.ApproxEqualThreshold(mgl32.Ident4(), 1e-3), "%v", id)
}

func TestSetEyeKeepsOrientation(t *testing.T) {
	c := spawnCamera()
	yaw, pitch := c.Yaw(), c.Pitch()
	c.SetEye(mgl32.Vec3{3, 0.25, -2})
	assert.Equal(t, yaw, c.Yaw())
	assert.Equal(t, pitch, c.Pitch())
	assertVec(t, mgl32.Vec3{3, 0.25, -3}, c.At())
}

func TestCustomUpAxis(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, WithUpAxis(mgl32.Vec3{0, 0, 1}))
	assertVec(t, mgl32.Vec3{1, 0, 0}, c.At())
	assert.InDelta(t, math.Pi/2, c.Pitch(), eps)
}

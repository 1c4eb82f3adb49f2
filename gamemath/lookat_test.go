package gamemath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func assertVec(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], eps, "want %v got %v", want, got)
}

func TestComputeLookAt(t *testing.T) {
	tests := []struct {
		name        string
		subject     mgl64.Vec3
		rotation    mgl64.Quat
		reference   mgl64.Vec3
		axes        LookAtAxes
		wantForward mgl64.Vec3
	}{
		{
			name:        "Straight ahead",
			rotation:    mgl64.QuatIdent(),
			reference:   mgl64.Vec3{0, 0, 5},
			axes:        FreeLookAt,
			wantForward: mgl64.Vec3{0, 0, 1},
		},
		{
			name:        "Diagonal from offset subject",
			subject:     mgl64.Vec3{1, 1, 1},
			rotation:    mgl64.QuatIdent(),
			reference:   mgl64.Vec3{4, 5, 1},
			axes:        FreeLookAt,
			wantForward: mgl64.Vec3{0.6, 0.8, 0},
		},
		{
			name:        "Pitch locked flattens elevation",
			rotation:    mgl64.QuatIdent(),
			reference:   mgl64.Vec3{3, 10, 4},
			axes:        LookAtAxes{AllowVertical: true},
			wantForward: mgl64.Vec3{0.6, 0, 0.8},
		},
		{
			// Pitch is still allowed, so the subject tilts to face straight up.
			name:        "Yaw locked keeps elevation",
			rotation:    mgl64.QuatIdent(),
			reference:   mgl64.Vec3{0, 5, 0},
			axes:        LookAtAxes{AllowHorizontal: true},
			wantForward: mgl64.Vec3{0, 1, 0},
		},
		{
			name:        "Yaw locked on rotated subject",
			rotation:    YawRotation(90),
			reference:   mgl64.Vec3{3, 4, 7},
			axes:        LookAtAxes{AllowHorizontal: true},
			wantForward: mgl64.Vec3{0.6, 0.8, 0},
		},
		{
			name:        "Inverted forward",
			rotation:    mgl64.QuatIdent(),
			reference:   mgl64.Vec3{0, 0, 5},
			axes:        LookAtAxes{AllowVertical: true, AllowHorizontal: true, InvertForward: true},
			wantForward: mgl64.Vec3{0, 0, -1},
		},
		{
			name:        "Inverted forward after constraints",
			rotation:    mgl64.QuatIdent(),
			reference:   mgl64.Vec3{-3, 9, -4},
			axes:        LookAtAxes{AllowVertical: true, InvertForward: true},
			wantForward: mgl64.Vec3{0.6, 0, 0.8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rot, ok := ComputeLookAt(tt.subject, tt.rotation, tt.reference, tt.axes)
			require.True(t, ok)
			assertVec(t, tt.wantForward, Forward(rot))
			assert.InDelta(t, 1.0, rot.Len(), eps)
		})
	}
}

func TestComputeLookAtNoOp(t *testing.T) {
	start := YawRotation(30)

	tests := []struct {
		name      string
		rotation  mgl64.Quat
		reference mgl64.Vec3
		axes      LookAtAxes
	}{
		{"Reference at subject", start, mgl64.Vec3{}, FreeLookAt},
		{"Pitch locked and reference straight up", start, mgl64.Vec3{0, 5, 0}, LookAtAxes{AllowVertical: true}},
		{"Yaw locked and reference along right axis", mgl64.QuatIdent(), mgl64.Vec3{5, 0, 0}, LookAtAxes{AllowHorizontal: true}},
		{"Both locked and reference straight up", mgl64.QuatIdent(), mgl64.Vec3{0, 3, 0}, LookAtAxes{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rot, ok := ComputeLookAt(mgl64.Vec3{}, tt.rotation, tt.reference, tt.axes)
			assert.False(t, ok)
			assert.Equal(t, tt.rotation, rot)
		})
	}
}

func TestYawLockedStraightUpKeepsHeading(t *testing.T) {
	for _, yaw := range []float64{90, -45, 180} {
		start := YawRotation(yaw)
		rot, ok := ComputeLookAt(mgl64.Vec3{}, start, mgl64.Vec3{0, 5, 0}, LookAtAxes{AllowHorizontal: true})
		require.True(t, ok)

		assertVec(t, mgl64.Vec3{0, 1, 0}, Forward(rot))
		assertVec(t, Right(start), Right(rot))
	}
}

func TestLookRotationFallback(t *testing.T) {
	right := mgl64.Vec3{0, 0, -1}
	rot := LookRotationFallback(mgl64.Vec3{0, -2, 0}, WorldUp, right)
	assertVec(t, mgl64.Vec3{0, -1, 0}, Forward(rot))
	assertVec(t, right, Right(rot))

	// A fallback parallel to forward falls back to the world axes.
	rot = LookRotationFallback(mgl64.Vec3{0, 3, 0}, WorldUp, WorldUp)
	assertVec(t, WorldRight, Right(rot))
}

func TestPitchLockedHasNoVerticalComponent(t *testing.T) {
	axes := LookAtAxes{AllowVertical: true}
	for _, y := range []float64{-50, -1, 0.5, 3, 1000} {
		rot, ok := ComputeLookAt(mgl64.Vec3{0, 2, 0}, mgl64.QuatIdent(), mgl64.Vec3{2, y, -7}, axes)
		require.True(t, ok)
		assert.InDelta(t, 0.0, Forward(rot).Y(), eps, "y=%v", y)
	}
}

func TestInvertedIsNegatedDirection(t *testing.T) {
	subject := mgl64.Vec3{1, -2, 3}
	reference := mgl64.Vec3{-4, 6, 2}

	normal, ok := ComputeLookAt(subject, mgl64.QuatIdent(), reference, FreeLookAt)
	require.True(t, ok)
	inverted, ok := ComputeLookAt(subject, mgl64.QuatIdent(), reference, LookAtAxes{AllowVertical: true, AllowHorizontal: true, InvertForward: true})
	require.True(t, ok)

	assertVec(t, Forward(normal).Mul(-1), Forward(inverted))
	assertVec(t, reference.Sub(subject).Normalize(), Forward(normal))
}

func TestProjectOnPlane(t *testing.T) {
	assertVec(t, mgl64.Vec3{1, 0, 3}, ProjectOnPlane(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0, 4, 0}))
	assertVec(t, mgl64.Vec3{1, 2, 3}, ProjectOnPlane(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{}))
	assertVec(t, mgl64.Vec3{}, ProjectOnPlane(mgl64.Vec3{2, 0, 0}, WorldRight))
}

func TestLookRotationBasis(t *testing.T) {
	forwards := []mgl64.Vec3{
		{0, 0, 1},
		{0, 0, -1},
		{1, 0, 0},
		{-2, 3, 1},
		{0, 1, 0},
		{0, -4, 0},
	}

	for _, f := range forwards {
		rot := LookRotation(f, WorldUp)
		assertVec(t, f.Normalize(), Forward(rot))
		assert.InDelta(t, 0.0, Right(rot).Y(), eps, "right axis stays level for %v", f)
		assert.InDelta(t, 0.0, Forward(rot).Dot(Up(rot)), eps)
	}

	assert.Equal(t, mgl64.QuatIdent(), LookRotation(mgl64.Vec3{}, WorldUp))
}

func TestYawRotationFacesRight(t *testing.T) {
	assertVec(t, mgl64.Vec3{1, 0, 0}, Forward(YawRotation(90)))
	assertVec(t, mgl64.Vec3{0, 0, -1}, Right(YawRotation(90)))
}

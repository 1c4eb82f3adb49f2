package interp

import "github.com/go-gl/mathgl/mgl64"

// clamp01 keeps NaN as NaN so invalid input propagates to the result.
func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// LerpFloat blends two scalars. t is clamped to [0, 1] and 1 yields b exactly.
func LerpFloat(a, b, t float64) float64 {
	t = clamp01(t)
	if t == 1 {
		return b
	}
	return a + (b-a)*t
}

// LerpVec3 blends two vectors component-wise. t is clamped to [0, 1].
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = clamp01(t)
	if t == 1 {
		return b
	}
	return a.Add(b.Sub(a).Mul(t))
}

// LerpColor blends every channel, alpha included, without gamma correction.
// t is clamped to [0, 1].
func LerpColor(a, b Color, t float64) Color {
	t = clamp01(t)
	if t == 1 {
		return b
	}
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// SlerpQuat interpolates rotations along the shortest arc. t is clamped to [0, 1].
func SlerpQuat(a, b mgl64.Quat, t float64) mgl64.Quat {
	t = clamp01(t)
	if t == 1 {
		return b
	}
	return mgl64.QuatSlerp(a, b, t)
}

// NewFloat creates a scalar interpolator.
func NewFloat(smoothDamp float64, useStep bool) *Interpolator[float64] {
	return New(LerpFloat, smoothDamp, useStep)
}

// NewVec3 creates a vector interpolator.
func NewVec3(smoothDamp float64, useStep bool) *Interpolator[mgl64.Vec3] {
	return New(LerpVec3, smoothDamp, useStep)
}

// NewColor creates a color interpolator.
func NewColor(smoothDamp float64, useStep bool) *Interpolator[Color] {
	return New(LerpColor, smoothDamp, useStep)
}

// NewRotation creates a rotation interpolator using spherical interpolation.
func NewRotation(smoothDamp float64, useStep bool) *Interpolator[mgl64.Quat] {
	return New(SlerpQuat, smoothDamp, useStep)
}

// Default interpolators without smoothing or stepping.
var (
	DefaultFloat    = NewFloat(0, false)
	DefaultVec3     = NewVec3(0, false)
	DefaultColor    = NewColor(0, false)
	DefaultRotation = NewRotation(0, false)
)

package interp

import "github.com/go-gl/mathgl/mgl64"

// LerpFunc blends a toward b by t. Each value type supplies its own law.
type LerpFunc[T any] func(a, b T, t float64) T

// Interpolator produces values between a start and an end value using a
// type-specific blend law. It holds configuration only; smoothing over time is
// done by a caller-side integrator such as Smoother.
type Interpolator[T any] struct {
	law        LerpFunc[T]
	smoothDamp float64
	useStep    bool
}

// New creates an interpolator for the given blend law.
// smoothDamp is clamped to [0, 1] where 0 means no smoothing. When useStep is
// set, Interpolate always returns the start value.
func New[T any](law LerpFunc[T], smoothDamp float64, useStep bool) *Interpolator[T] {
	return &Interpolator[T]{
		law:        law,
		smoothDamp: mgl64.Clamp(smoothDamp, 0, 1),
		useStep:    useStep,
	}
}

// Interpolate returns the value at fraction t between a and b.
func (i *Interpolator[T]) Interpolate(a, b T, t float64) T {
	if i.useStep {
		return a
	}
	return i.law(a, b, t)
}

// Blend applies the blend law directly, ignoring step mode.
func (i *Interpolator[T]) Blend(a, b T, t float64) T {
	return i.law(a, b, t)
}

// SmoothDamp returns the smoothing coefficient in [0, 1].
func (i *Interpolator[T]) SmoothDamp() float64 {
	return i.smoothDamp
}

// UseStep reports whether step interpolation is enabled.
func (i *Interpolator[T]) UseStep() bool {
	return i.useStep
}

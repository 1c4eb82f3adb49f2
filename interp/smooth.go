package interp

import "math"

// SmoothReferenceFPS is the frame rate at which smoothDamp equals the fraction
// of the remaining distance kept per frame.
const SmoothReferenceFPS = 60.0

// SmoothFactor converts a smoothing coefficient into the blend amount to apply
// for a frame of dt seconds. 0 tracks the target immediately, 1 never moves.
func SmoothFactor(smoothDamp, dt float64) float64 {
	if smoothDamp <= 0 {
		return 1
	}
	if smoothDamp >= 1 {
		return 0
	}
	return clamp01(1 - math.Pow(smoothDamp, dt*SmoothReferenceFPS))
}

// Smoother is a one-pole low-pass that damps the output of an interpolator
// using its smoothDamp coefficient. The zero value is not usable; use NewSmoother.
type Smoother[T any] struct {
	interp *Interpolator[T]
	value  T
	primed bool
}

// NewSmoother creates a smoother driven by the given interpolator.
func NewSmoother[T any](i *Interpolator[T]) *Smoother[T] {
	return &Smoother[T]{interp: i}
}

// Step interpolates a toward b by t and moves the previous output toward that
// value according to the elapsed frame time dt.
func (s *Smoother[T]) Step(a, b T, t, dt float64) T {
	if s.interp.UseStep() {
		s.value = a
		s.primed = true
		return a
	}

	direct := s.interp.Interpolate(a, b, t)
	if !s.primed || s.interp.SmoothDamp() == 0 {
		s.value = direct
		s.primed = true
		return direct
	}

	s.value = s.interp.Blend(s.value, direct, SmoothFactor(s.interp.SmoothDamp(), dt))
	return s.value
}

// Follow damps the previous output toward target. It is Step with t fixed at 1.
func (s *Smoother[T]) Follow(current, target T, dt float64) T {
	if !s.primed {
		s.value = current
		s.primed = true
	}
	return s.Step(s.value, target, 1, dt)
}

// Value returns the last output.
func (s *Smoother[T]) Value() T {
	return s.value
}

// Reset forgets the previous output so the next step passes through.
func (s *Smoother[T]) Reset() {
	var zero T
	s.value = zero
	s.primed = false
}

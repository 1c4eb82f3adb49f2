package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

const frame = 1.0 / 60

func TestSmoothFactor(t *testing.T) {
	assert.Equal(t, 1.0, SmoothFactor(0, frame))
	assert.Equal(t, 0.0, SmoothFactor(1, frame))
	assert.InDelta(t, 0.5, SmoothFactor(0.5, frame), 1e-9)

	// Two half frames move as far as one full frame.
	half := SmoothFactor(0.5, frame/2)
	assert.InDelta(t, SmoothFactor(0.5, frame), 1-(1-half)*(1-half), 1e-9)
}

func TestSmootherPassThroughWithoutDamp(t *testing.T) {
	s := NewSmoother(NewFloat(0, false))

	assert.Equal(t, 5.0, s.Step(0, 10, 0.5, frame))
	assert.Equal(t, 10.0, s.Step(0, 10, 1, frame))
}

func TestSmootherLagsAndConverges(t *testing.T) {
	s := NewSmoother(NewFloat(0.5, false))

	// First step primes the output.
	assert.Equal(t, 0.0, s.Step(0, 10, 0, frame))

	v := s.Step(0, 10, 1, frame)
	assert.InDelta(t, 5.0, v, 1e-9)

	for i := 0; i < 60; i++ {
		v = s.Step(0, 10, 1, frame)
	}
	assert.InDelta(t, 10.0, v, 1e-6)
}

func TestSmootherStepModeHoldsStart(t *testing.T) {
	s := NewSmoother(NewColor(0.9, true))

	assert.Equal(t, Black, s.Step(Black, White, 0.7, frame))
	assert.Equal(t, Black, s.Value())
}

func TestSmootherFollowAndReset(t *testing.T) {
	s := NewSmoother(NewFloat(0.5, false))

	assert.InDelta(t, 5.0, s.Follow(0, 10, frame), 1e-9)
	assert.InDelta(t, 7.5, s.Follow(0, 10, frame), 1e-9)

	s.Reset()
	assert.InDelta(t, 10.0, s.Follow(20, 0, frame), 1e-9)
}

func TestTransitionReachesEnd(t *testing.T) {
	tr := NewTransition(NewFloat(0, false), 0, 10, 1, ease.Linear)

	v, done := tr.Update(0.5)
	require.False(t, done)
	assert.InDelta(t, 5.0, v, 1e-5)

	v, done = tr.Update(0.6)
	assert.True(t, done)
	assert.Equal(t, 10.0, v)
	assert.True(t, tr.Done())

	v, done = tr.Update(1)
	assert.True(t, done)
	assert.Equal(t, 10.0, v)
}

func TestTransitionStepJumpsAtEnd(t *testing.T) {
	tr := NewTransition(NewColor(0, true), Black, White, 1, nil)

	v, done := tr.Update(0.9)
	require.False(t, done)
	assert.Equal(t, Black, v)

	v, done = tr.Update(0.2)
	assert.True(t, done)
	assert.Equal(t, White, v)

	tr.Reset()
	assert.False(t, tr.Done())
	assert.Equal(t, Black, tr.Value())
}

func TestEasingByName(t *testing.T) {
	fn, err := EasingByName("")
	require.NoError(t, err)
	assert.NotNil(t, fn)

	for _, name := range EasingNames() {
		fn, err := EasingByName(name)
		require.NoError(t, err, name)
		assert.InDelta(t, 1.0, float64(fn(1, 0, 1, 1)), 1e-5, name)
	}

	_, err = EasingByName("Wobble")
	assert.ErrorIs(t, err, ErrUnknownEasing)
}

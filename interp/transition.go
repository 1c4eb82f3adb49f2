package interp

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ErrUnknownEasing is returned by EasingByName for unregistered names.
var ErrUnknownEasing = errors.New("unknown easing")

var easings = map[string]ease.TweenFunc{
	"Linear":     ease.Linear,
	"InQuad":     ease.InQuad,
	"OutQuad":    ease.OutQuad,
	"InOutQuad":  ease.InOutQuad,
	"InCubic":    ease.InCubic,
	"OutCubic":   ease.OutCubic,
	"InOutCubic": ease.InOutCubic,
	"InSine":     ease.InSine,
	"OutSine":    ease.OutSine,
	"InOutSine":  ease.InOutSine,
}

// EasingByName looks up an easing function. An empty name selects Linear.
func EasingByName(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownEasing, name)
	}
	return fn, nil
}

// EasingNames lists the registered easing names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Transition moves a value from From to To over a fixed duration. Progress is
// produced by a tween over [0, 1] and fed to the interpolator, so step
// interpolators hold From and switch to To once the transition finishes.
type Transition[T any] struct {
	From, To T

	tween    *gween.Tween
	smoother *Smoother[T]
	current  T
	done     bool
}

// NewTransition creates a transition lasting duration seconds.
func NewTransition[T any](i *Interpolator[T], from, to T, duration float32, easing ease.TweenFunc) *Transition[T] {
	if easing == nil {
		easing = ease.Linear
	}
	return &Transition[T]{
		From:     from,
		To:       to,
		tween:    gween.New(0, 1, duration, easing),
		smoother: NewSmoother(i),
		current:  from,
	}
}

// Update advances the transition by dt seconds and returns the current value
// and whether the transition has finished.
func (tr *Transition[T]) Update(dt float32) (T, bool) {
	if tr.done {
		return tr.To, true
	}

	progress, finished := tr.tween.Update(dt)
	if finished {
		tr.done = true
		tr.current = tr.To
		return tr.To, true
	}

	tr.current = tr.smoother.Step(tr.From, tr.To, float64(progress), float64(dt))
	return tr.current, false
}

// Value returns the last value produced by Update.
func (tr *Transition[T]) Value() T {
	return tr.current
}

// Done reports whether the transition has reached To.
func (tr *Transition[T]) Done() bool {
	return tr.done
}

// Reset rewinds the transition to From.
func (tr *Transition[T]) Reset() {
	tr.tween.Reset()
	tr.smoother.Reset()
	tr.current = tr.From
	tr.done = false
}

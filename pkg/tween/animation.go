// Package tween animates named numeric attributes of arbitrary targets
// over time.
//
// # Core Components
//
//   - [Animation]: drives a set of attributes from their current values to
//     configured end values over a fixed duration, with optional delay,
//     easing curve, integer rounding and completion callback.
//
//   - [Task]: runs a callback after an interval, once or on a loop.
//
//   - [Group]: an explicit active set that updates its members each frame
//     and drops the ones that finish.
//
//   - [Target]: the capability interface animated objects implement.
//     [Fields] adapts a plain map of float64 pointers.
//
// # Basic Usage
//
// Create an animation with the end values, configure it, start it on a
// target, then feed elapsed time each frame:
//
//	ani, err := tween.New(tween.Props{"x": 240, "y": 96}, 1000)
//	if err != nil {
//	    return err
//	}
//	ani.Transition = easing.OutQuad
//	ani.OnComplete = func() { fmt.Println("arrived") }
//	if err := ani.Start(sprite); err != nil {
//	    return err
//	}
//
//	group := tween.NewGroup()
//	group.Add(ani)
//
//	// each frame
//	group.Update(dt)
//
// Durations, delays and intervals share whatever unit dt uses, typically
// milliseconds.
//
// Everything in this package is single-goroutine. Drive a given instance
// from one loop and keep callbacks on that loop.
package tween

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-drift/motion/pkg/easing"
)

// Props names the attributes to animate and the values they should reach.
type Props map[string]float64

// State reports where an [Animation] is in its lifecycle.
//
//	      Start()           elapsed >= Delay       progress >= 1
//	Idle ────────► Delayed ─────────────► Running ────────► Complete
//
// An animation with no delay skips Delayed. Complete is terminal.
type State int

const (
	// StateIdle means the animation has not started yet.
	StateIdle State = iota
	// StateDelayed means the animation started but is still inside its delay.
	StateDelayed
	// StateRunning means the animation is writing attribute values.
	StateRunning
	// StateComplete means the animation finished and released its targets.
	StateComplete
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDelayed:
		return "delayed"
	case StateRunning:
		return "running"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// span holds one attribute's captured start value and configured end value.
type span struct {
	name string
	from float64
	to   float64
}

// binding ties a started target to its spans.
type binding struct {
	target Target
	spans  []span
}

// Animation changes numeric attributes over time.
//
// Configure the exported fields before calling Start; they are read on
// every update. Start captures each attribute's current value, and Update
// writes blended values until progress reaches 1. A finished animation
// stays finished: build a new one to run the motion again.
//
// See ExampleAnimation for the typical flow.
type Animation struct {
	// Duration is how long progress takes to run from 0 to 1, in the same
	// unit as dt. A nonpositive duration completes on the first update
	// past the delay.
	Duration float64

	// Delay postpones attribute writes until elapsed time reaches it.
	// The delay gates writes without shifting the timing window: progress
	// still counts from the first update, so once a delay shorter than
	// Duration ends, the motion picks up partway through its course.
	Delay float64

	// Transition shapes progress before blending. Nil means
	// [easing.Linear]. Any [easing.Func] works, including catalog curves
	// from [easing.ByName] and custom functions.
	Transition easing.Func

	// RoundValues rounds every written value to the nearest integer.
	// Set it when animating integer-backed attributes to avoid jitter
	// from truncation.
	RoundValues bool

	// OnComplete, if set, runs exactly once when the animation finishes,
	// after the final attribute write.
	OnComplete func()

	props    Props
	elapsed  float64
	bindings []binding
	complete bool
}

// New creates an animation that drives the attributes named in props to
// the given end values over duration.
func New(props Props, duration float64) (*Animation, error) {
	if len(props) == 0 {
		return nil, ErrNoProperties
	}
	copied := make(Props, len(props))
	for name, end := range props {
		copied[name] = end
	}
	return &Animation{Duration: duration, props: copied}, nil
}

// Start binds the animation to a target, capturing the current value of
// every configured attribute. Calling Start again binds an additional
// target to the same clock; each target interpolates from its own start
// values.
//
// If any attribute cannot be read the target is not bound and the error
// wraps the failed lookup, typically a [FieldError].
func (a *Animation) Start(target Target) error {
	if a.complete {
		return ErrCompleted
	}
	names := make([]string, 0, len(a.props))
	for name := range a.props {
		names = append(names, name)
	}
	sort.Strings(names)

	spans := make([]span, 0, len(names))
	for _, name := range names {
		from, err := target.NumericField(name)
		if err != nil {
			return fmt.Errorf("tween: start %T: %w", target, err)
		}
		spans = append(spans, span{name: name, from: from, to: a.props[name]})
	}
	a.bindings = append(a.bindings, binding{target: target, spans: spans})
	return nil
}

// Update advances the animation by dt. Before Start and after completion
// it does nothing. During the delay it only accumulates time. Otherwise
// it writes the blended value of every bound attribute, and on reaching
// full progress it releases the targets and fires OnComplete.
func (a *Animation) Update(dt float64) {
	if a.complete || len(a.bindings) == 0 {
		return
	}
	a.elapsed += dt
	if a.elapsed < a.Delay {
		return
	}

	p := 1.0
	if a.Duration > 0 {
		p = math.Min(1, a.elapsed/a.Duration)
	}
	fn := a.Transition
	if fn == nil {
		fn = easing.Linear
	}
	t := fn(p)
	for _, b := range a.bindings {
		for _, s := range b.spans {
			value := s.from*(1-t) + s.to*t
			if a.RoundValues {
				value = math.Round(value)
			}
			b.target.SetNumericField(s.name, value)
		}
	}

	if p >= 1 {
		a.bindings = nil
		a.complete = true
		if a.OnComplete != nil {
			a.OnComplete()
		}
	}
}

// Progress reports interpolation progress in [0, 1]. It stays 0 until the
// animation starts and reports 1 once complete. During a delay it already
// advances, matching the timing model described on Delay.
func (a *Animation) Progress() float64 {
	if a.complete {
		return 1
	}
	if len(a.bindings) == 0 {
		return 0
	}
	if a.Duration <= 0 {
		return 1
	}
	return math.Min(1, a.elapsed/a.Duration)
}

// State returns the current lifecycle state.
func (a *Animation) State() State {
	switch {
	case a.complete:
		return StateComplete
	case len(a.bindings) == 0:
		return StateIdle
	case a.elapsed < a.Delay:
		return StateDelayed
	default:
		return StateRunning
	}
}

// Done reports whether the animation has completed.
func (a *Animation) Done() bool {
	return a.complete
}

package tween

import "errors"

var (
	// ErrNoProperties reports an animation constructed with nothing to
	// animate.
	ErrNoProperties = errors.New("tween: no properties to animate")

	// ErrCompleted reports a Start attempted after the animation finished.
	ErrCompleted = errors.New("tween: animation already complete")

	// ErrNilCallback reports a task constructed without a callback.
	ErrNilCallback = errors.New("tween: nil task callback")

	// ErrLoopCount reports a task loop count below -1.
	ErrLoopCount = errors.New("tween: loop count below -1")
)

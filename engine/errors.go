package engine

import "errors"

var (
	// ErrPileFull is returned when a push would exceed a pile's fixed capacity.
	// Klondike can never legally reach that state, so it means the caller's
	// dealing or move logic is broken.
	ErrPileFull = errors.New("pile is at capacity")

	// ErrRandomness wraps a failure of the random source during shuffling.
	ErrRandomness = errors.New("random source failed")
)

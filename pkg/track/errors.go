package track

import "errors"

var (
	// ErrInvalidAnchorCount is returned when an anchor set has fewer than
	// MinAnchors or more than MaxAnchors points.
	ErrInvalidAnchorCount = errors.New("invalid anchor count")

	// ErrIndexOutOfRange is returned for anchor indices outside [0, N).
	ErrIndexOutOfRange = errors.New("anchor index out of range")

	// ErrPositionsNotReady is returned when segments are requested before
	// every anchor of the current generation has reported its position.
	ErrPositionsNotReady = errors.New("anchor positions not ready")

	// ErrNotAdjacent is returned when asking a segment for its orientation
	// relative to an anchor it does not touch.
	ErrNotAdjacent = errors.New("segment does not touch anchor")

	// ErrBarrierTimeout is returned by Wait when the positions of the
	// current generation did not all arrive within Config.BarrierTimeout.
	ErrBarrierTimeout = errors.New("timed out waiting for anchor positions")

	// ErrSuperseded is returned by Wait when the generation it waited for
	// was replaced by SetAnchors or cleared by Release.
	ErrSuperseded = errors.New("anchor set superseded")

	// ErrNoAnchors is returned by Wait when no anchor set is active.
	ErrNoAnchors = errors.New("no anchors set")

	// ErrInvalidConfig wraps configuration validation failures.
	ErrInvalidConfig = errors.New("invalid track config")
)

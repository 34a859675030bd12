package render

import "errors"

var (
	// ErrUnknownRecoveryLevel is returned for a recovery level name other
	// than low, medium, high or highest.
	ErrUnknownRecoveryLevel = errors.New("unknown recovery level")
	// ErrEmptyText is returned when asked to render nothing.
	ErrEmptyText = errors.New("nothing to render")
	// ErrInvalidSize is returned for a non-positive width or height.
	ErrInvalidSize = errors.New("invalid render size")
	// ErrSuperseded is returned when the container was cleared or hidden
	// again before the surface could be drawn.
	ErrSuperseded = errors.New("render superseded")
)

package slider

import (
	"errors"
	"fmt"
)

var (
	// ErrDestroyed is returned by handlers invoked after Destroy.
	ErrDestroyed = errors.New("slider destroyed")
	// ErrDegenerateTrack reports a track with no usable extent along its axis.
	ErrDegenerateTrack = errors.New("track has no usable extent")
	// ErrNotANumber reports a NaN or infinite progress or coordinate.
	ErrNotANumber = errors.New("value is not a finite number")
)

// InvalidRangeError is returned when the configured bounds cannot be
// normalized (min >= max, or a zero max).
type InvalidRangeError struct {
	Min    float64
	Max    float64
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range [%g, %g]: %s", e.Min, e.Max, e.Reason)
}

// UnsupportedEventError is returned when no coordinate can be extracted from
// a pointer event.
type UnsupportedEventError struct {
	Kind string
}

func (e *UnsupportedEventError) Error() string {
	return fmt.Sprintf("unsupported pointer event: %s", e.Kind)
}

// ErrDetached is returned by PointerDown when no Document has been attached
// to receive document-level drag events.
var ErrDetached = errors.New("slider is not attached to a document")

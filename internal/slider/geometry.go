package slider

import "fmt"

// Track is the on-screen box pointer coordinates are measured against, in
// the same coordinate space as the pointer events.
type Track struct {
	Left, Top     float64
	Width, Height float64
	// ThumbInset is removed from the extent along the drag axis so that the
	// thumb stops at the track edge.
	ThumbInset float64
}

// Bottom is the lower edge of the track (page Y grows downward).
func (t Track) Bottom() float64 { return t.Top + t.Height }

// ProgressAt maps the coordinate (x, y) to raw, unclamped progress along the
// given axis.
func (t Track) ProgressAt(o Orientation, x, y float64) (float64, error) {
	if !finite(x) || !finite(y) {
		return 0, fmt.Errorf("pointer (%v, %v): %w", x, y, ErrNotANumber)
	}
	if o == Vertical {
		extent := t.Height - t.ThumbInset
		if extent <= 0 {
			return 0, fmt.Errorf("vertical extent %v: %w", extent, ErrDegenerateTrack)
		}
		// page Y grows downward, an upward drag must increase progress
		return (t.Bottom() - y) / extent, nil
	}
	extent := t.Width - t.ThumbInset
	if extent <= 0 {
		return 0, fmt.Errorf("horizontal extent %v: %w", extent, ErrDegenerateTrack)
	}
	return (x - t.Left) / extent, nil
}

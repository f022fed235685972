package windowpos

// Placement is the top-left corner of a native window in screen pixels.
type Placement struct {
	X, Y int
}

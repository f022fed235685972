package slider

// Pointer is a mouse or touch event reduced to what the slider needs. The
// set of implementations is closed: Mouse and Touch.
type Pointer interface {
	pointerKind() string
}

// Mouse is a pointer event carrying a single page coordinate.
type Mouse struct {
	X, Y float64
}

func (Mouse) pointerKind() string { return "mouse" }

// TouchPoint is one contact of a touch event.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// Touch carries the contacts that changed in this event; the first one
// drives the slider.
type Touch struct {
	Changed []TouchPoint
}

func (Touch) pointerKind() string { return "touch" }

// Coordinates extracts the page coordinate of p.
func Coordinates(p Pointer) (x, y float64, err error) {
	switch ev := p.(type) {
	case Mouse:
		return ev.X, ev.Y, nil
	case *Mouse:
		if ev != nil {
			return ev.X, ev.Y, nil
		}
	case Touch:
		if len(ev.Changed) > 0 {
			return ev.Changed[0].X, ev.Changed[0].Y, nil
		}
		return 0, 0, &UnsupportedEventError{Kind: "touch without changed touches"}
	case *Touch:
		if ev != nil {
			return Coordinates(*ev)
		}
	}
	return 0, 0, &UnsupportedEventError{Kind: "nil pointer"}
}

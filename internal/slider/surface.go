package slider

// Surface is a headless Mount: it stands in for a track element and its
// owning document so a Controller can be driven without a GUI toolkit.
type Surface struct {
	Geometry Track

	doc      Dispatcher
	next     int
	handlers map[int]MountHandlers
}

// NewSurface returns a mount whose track occupies geometry.
func NewSurface(geometry Track) *Surface {
	return &Surface{Geometry: geometry, handlers: make(map[int]MountHandlers)}
}

func (s *Surface) Listen(h MountHandlers) Subscription {
	id := s.next
	s.next++
	s.handlers[id] = h
	return NewSubscription(func() { delete(s.handlers, id) })
}

func (s *Surface) Track() Track { return s.Geometry }

func (s *Surface) Document() Document { return &s.doc }

// Listeners counts open element and document listeners.
func (s *Surface) Listeners() (element, document int) {
	return len(s.handlers), s.doc.Listeners()
}

// PointerDown dispatches a press on the track.
func (s *Surface) PointerDown(p Pointer) {
	for _, h := range s.handlers {
		if h.PointerDown != nil {
			h.PointerDown(p)
		}
	}
}

// Click dispatches a click on the track.
func (s *Surface) Click(p Pointer) {
	for _, h := range s.handlers {
		if h.Click != nil {
			h.Click(p)
		}
	}
}

// KeyDown dispatches a key press on the thumb.
func (s *Surface) KeyDown(k Key) {
	for _, h := range s.handlers {
		if h.KeyDown != nil {
			h.KeyDown(k)
		}
	}
}

// Scroll dispatches a wheel step on the thumb.
func (s *Surface) Scroll(dy float64) {
	for _, h := range s.handlers {
		if h.Scroll != nil {
			h.Scroll(dy)
		}
	}
}

// Move dispatches a pointer move anywhere on the document.
func (s *Surface) Move(p Pointer) { s.doc.Move(p) }

// Up dispatches a pointer release anywhere on the document.
func (s *Surface) Up(p Pointer) { s.doc.Up(p) }

// Drag performs a full gesture: press at from, move through path, release.
func (s *Surface) Drag(from Pointer, path ...Pointer) {
	s.PointerDown(from)
	for _, p := range path {
		s.Move(p)
	}
	if len(path) > 0 {
		s.Up(path[len(path)-1])
		return
	}
	s.Up(from)
}

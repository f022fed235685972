package slider

import (
	"sort"
	"sync"
)

// Subscription is a handle on a group of listeners. Close releases them; it
// is safe to call more than once.
type Subscription interface {
	Close()
}

type onceSubscription struct {
	once    sync.Once
	release func()
}

// NewSubscription wraps release so that it runs at most once.
func NewSubscription(release func()) Subscription {
	return &onceSubscription{release: release}
}

func (s *onceSubscription) Close() {
	s.once.Do(func() {
		if s.release != nil {
			s.release()
		}
	})
}

// DragHandlers receive document-level events for the duration of a gesture.
type DragHandlers struct {
	Move func(Pointer)
	Up   func(Pointer)
}

// Document delivers pointer events from anywhere on the page, so a drag keeps
// tracking once the pointer leaves the widget.
type Document interface {
	Subscribe(h DragHandlers) Subscription
}

// MountHandlers are the widget-local listeners: the track receives pointer
// down and click, the thumb receives keys and wheel steps.
type MountHandlers struct {
	PointerDown func(Pointer)
	Click       func(Pointer)
	KeyDown     func(Key)
	Scroll      func(dy float64)
}

// Mount is the host element a slider is attached to.
type Mount interface {
	Listen(h MountHandlers) Subscription
	Track() Track
	Document() Document
}

// Dispatcher is a Document that fans events out to its current subscribers.
// The zero value is ready to use. It is not safe for concurrent use; like
// the rest of the package it expects to run on the UI goroutine.
type Dispatcher struct {
	next int
	subs map[int]DragHandlers
}

// Subscribe registers h until the returned subscription is closed.
func (d *Dispatcher) Subscribe(h DragHandlers) Subscription {
	if d.subs == nil {
		d.subs = make(map[int]DragHandlers)
	}
	id := d.next
	d.next++
	d.subs[id] = h
	return NewSubscription(func() { delete(d.subs, id) })
}

// Move delivers a move event to every subscriber.
func (d *Dispatcher) Move(p Pointer) {
	for _, h := range d.snapshot() {
		if h.Move != nil {
			h.Move(p)
		}
	}
}

// Up delivers a release event to every subscriber.
func (d *Dispatcher) Up(p Pointer) {
	for _, h := range d.snapshot() {
		if h.Up != nil {
			h.Up(p)
		}
	}
}

// Listeners reports how many subscriptions are open.
func (d *Dispatcher) Listeners() int { return len(d.subs) }

// snapshot lets handlers unsubscribe while an event is being delivered.
func (d *Dispatcher) snapshot() []DragHandlers {
	ids := make([]int, 0, len(d.subs))
	for id := range d.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]DragHandlers, len(ids))
	for i, id := range ids {
		out[i] = d.subs[id]
	}
	return out
}

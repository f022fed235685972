package slider

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// State is the interaction state of a Controller.
type State int

const (
	// Idle means no pointer gesture is in progress.
	Idle State = iota
	// Dragging means document-level move/up listeners are active.
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Reflector receives the state after every change so the host can redraw.
type Reflector interface {
	Reflect(progress float64, value int)
}

// ReflectorFunc adapts a function to Reflector.
type ReflectorFunc func(progress float64, value int)

func (f ReflectorFunc) Reflect(progress float64, value int) { f(progress, value) }

type nopReflector struct{}

func (nopReflector) Reflect(float64, int) {}

// Controller is one slider instance: it turns pointer and key events into
// progress updates, reflects them and notifies OnChange. It must only be
// used from the goroutine that delivers UI events.
type Controller struct {
	opts      Options
	model     *Model
	reflector Reflector
	log       logrus.FieldLogger

	state State
	track Track // geometry captured for the active gesture
	doc   Document
	drag  Subscription
	mount Subscription

	destroyed bool
}

// New builds a controller from opts and reflects the initial position
// without calling OnChange. A nil reflector discards render updates.
func New(opts Options, r Reflector) (*Controller, error) {
	model, err := NewModel(opts)
	if err != nil {
		return nil, err
	}
	if r == nil {
		r = nopReflector{}
	}
	c := &Controller{
		opts:      opts,
		model:     model,
		reflector: r,
		log:       opts.logger().WithField("slider", opts.label()),
	}
	c.commit(false)
	return c, nil
}

// Attach binds the controller to a host element. Any previous mount is
// released first.
func (c *Controller) Attach(m Mount) error {
	if c.destroyed {
		return ErrDestroyed
	}
	if c.mount != nil {
		c.endDrag()
		c.mount.Close()
	}
	c.doc = m.Document()
	c.mount = m.Listen(MountHandlers{
		PointerDown: func(p Pointer) { c.report("pointerdown", c.PointerDown(p, m.Track())) },
		Click:       func(p Pointer) { c.report("click", c.Click(p, m.Track())) },
		KeyDown:     func(k Key) { c.report("keydown", c.KeyDown(k)) },
		Scroll:      func(dy float64) { c.report("scroll", c.Scroll(dy)) },
	})
	return nil
}

// PointerDown starts a drag gesture on track. The value does not change
// until the first move.
func (c *Controller) PointerDown(p Pointer, track Track) error {
	if c.destroyed {
		return ErrDestroyed
	}
	if c.state == Dragging {
		return nil
	}
	if _, _, err := Coordinates(p); err != nil {
		return err
	}
	if c.doc == nil {
		return ErrDetached
	}
	c.track = track
	c.state = Dragging
	c.drag = c.doc.Subscribe(DragHandlers{
		Move: c.onDragMove,
		Up:   func(Pointer) { c.PointerUp() },
	})
	c.log.WithField("state", c.state).Debug("drag started")
	return nil
}

func (c *Controller) onDragMove(p Pointer) {
	if c.state != Dragging || c.destroyed {
		return
	}
	c.report("pointermove", c.moveTo(p, c.track))
}

// PointerUp ends the active gesture and releases its document listeners.
// Calling it while Idle is a no-op.
func (c *Controller) PointerUp() {
	if c.state != Dragging {
		return
	}
	c.endDrag()
	c.log.WithField("state", c.state).Debug("drag ended")
}

// Click positions the slider at a single point on track.
func (c *Controller) Click(p Pointer, track Track) error {
	if c.destroyed {
		return ErrDestroyed
	}
	return c.moveTo(p, track)
}

// KeyDown applies a discrete step. Keys the slider does not handle are
// ignored.
func (c *Controller) KeyDown(k Key) error {
	if c.destroyed {
		return ErrDestroyed
	}
	var err error
	switch k {
	case KeyArrowUp, KeyArrowRight:
		err = c.model.Nudge(c.model.ProgressStep())
	case KeyArrowDown, KeyArrowLeft:
		err = c.model.Nudge(-c.model.ProgressStep())
	case KeyHome:
		err = c.model.SetProgress(c.model.MinProgress())
	case KeyEnd:
		err = c.model.SetProgress(1)
	case KeyPageUp:
		err = c.model.Nudge(c.model.LargeStep())
	case KeyPageDown:
		err = c.model.Nudge(-c.model.LargeStep())
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("key %s: %w", k, err)
	}
	c.commit(true)
	return nil
}

// Scroll steps the slider by one step per wheel notch direction.
func (c *Controller) Scroll(dy float64) error {
	switch {
	case dy > 0:
		return c.KeyDown(KeyArrowUp)
	case dy < 0:
		return c.KeyDown(KeyArrowDown)
	}
	return nil
}

// Destroy releases every listener the controller holds, including an
// in-flight drag. Further events return ErrDestroyed.
func (c *Controller) Destroy() {
	if c.destroyed {
		return
	}
	c.endDrag()
	if c.mount != nil {
		c.mount.Close()
		c.mount = nil
	}
	c.destroyed = true
	c.log.Debug("destroyed")
}

// Value is the current public value, derived from progress on every call.
func (c *Controller) Value() int { return c.model.Value() }

// Progress is the current normalized position.
func (c *Controller) Progress() float64 { return c.model.Progress() }

// State reports whether a gesture is active.
func (c *Controller) State() State { return c.state }

// Options returns the configuration the controller was built with.
func (c *Controller) Options() Options { return c.opts }

// Model exposes the progress model for read-only queries.
func (c *Controller) Model() *Model { return c.model }

func (c *Controller) moveTo(p Pointer, track Track) error {
	x, y, err := Coordinates(p)
	if err != nil {
		return err
	}
	raw, err := track.ProgressAt(c.opts.Orientation, x, y)
	if err != nil {
		return err
	}
	if err := c.model.SetProgress(raw); err != nil {
		return err
	}
	c.commit(true)
	return nil
}

// commit reflects the model and, for user-driven changes, notifies.
func (c *Controller) commit(notify bool) {
	value := c.model.Value()
	c.reflector.Reflect(c.model.Progress(), value)
	if notify && c.opts.OnChange != nil {
		c.opts.OnChange(value)
	}
	c.log.WithFields(logrus.Fields{
		"progress": c.model.Progress(),
		"value":    value,
	}).Trace("reflected")
}

// endDrag is the single exit point of a gesture.
func (c *Controller) endDrag() {
	if c.drag != nil {
		c.drag.Close()
		c.drag = nil
	}
	c.state = Idle
}

func (c *Controller) report(event string, err error) {
	if err == nil {
		return
	}
	c.log.WithError(err).WithField("event", event).Warn("event ignored")
}

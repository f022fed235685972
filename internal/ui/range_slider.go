package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/minislider/internal/render"
	"github.com/edward-ap/minislider/internal/slider"
)

// RangeSlider hosts a slider.Controller in a fyne canvas. The widget is the
// controller's mount point: its track receives presses, clicks, keys and
// wheel steps, and it relays drag events as the document would.
type RangeSlider struct {
	widget.BaseWidget

	ctrl    *slider.Controller
	adapter *render.Adapter
	opts    slider.Options

	doc      slider.Dispatcher
	handlers slider.MountHandlers
	state    render.State
	focused  bool

	// OnDragStateChanged is called when a gesture starts or ends.
	OnDragStateChanged func(dragging bool)
}

var (
	_ fyne.Draggable    = (*RangeSlider)(nil)
	_ fyne.Tappable     = (*RangeSlider)(nil)
	_ fyne.Focusable    = (*RangeSlider)(nil)
	_ fyne.Scrollable   = (*RangeSlider)(nil)
	_ desktop.Mouseable = (*RangeSlider)(nil)
	_ mobile.Touchable  = (*RangeSlider)(nil)
	_ slider.Mount      = (*RangeSlider)(nil)
)

// NewRangeSlider builds the controller for opts and mounts it on a new
// widget. Extra sinks (a form mirror, a value label) see every state.
func NewRangeSlider(opts slider.Options, sinks ...render.Sink) (*RangeSlider, error) {
	s := &RangeSlider{opts: opts}
	s.ExtendBaseWidget(s)

	all := append([]render.Sink{render.SinkFunc(s.reflect)}, sinks...)
	s.adapter = render.NewAdapter(opts, all...)
	ctrl, err := slider.New(opts, s.adapter)
	if err != nil {
		return nil, err
	}
	if err := ctrl.Attach(s); err != nil {
		return nil, err
	}
	s.ctrl = ctrl
	return s, nil
}

// Value is the current public value.
func (s *RangeSlider) Value() int { return s.ctrl.Value() }

// Progress is the current normalized position.
func (s *RangeSlider) Progress() float64 { return s.ctrl.Progress() }

// KeyDown feeds a synthetic key press through the thumb listener.
func (s *RangeSlider) KeyDown(k slider.Key) error { return s.ctrl.KeyDown(k) }

// Dragging reports whether a pointer gesture is active.
func (s *RangeSlider) Dragging() bool { return s.ctrl.State() == slider.Dragging }

// Accessibility returns the ARIA attributes of the last rendered state.
func (s *RangeSlider) Accessibility() render.ARIA { return s.state.ARIA }

// ElementID is the id other elements use to reference this slider.
func (s *RangeSlider) ElementID() string { return s.adapter.ID() }

// Destroy releases every listener. The widget ignores input afterwards.
func (s *RangeSlider) Destroy() {
	before := s.Dragging()
	s.ctrl.Destroy()
	s.notifyDrag(before)
}

// Listen implements slider.Mount.
func (s *RangeSlider) Listen(h slider.MountHandlers) slider.Subscription {
	s.handlers = h
	return slider.NewSubscription(func() { s.handlers = slider.MountHandlers{} })
}

// Track implements slider.Mount. Event positions are widget-relative, so
// the track starts at the origin.
func (s *RangeSlider) Track() slider.Track {
	sz := s.Size()
	return slider.Track{
		Width:      float64(sz.Width),
		Height:     float64(sz.Height),
		ThumbInset: s.opts.ThumbInset,
	}
}

// Document implements slider.Mount.
func (s *RangeSlider) Document() slider.Document { return &s.doc }

func (s *RangeSlider) reflect(st render.State) {
	s.state = st
	if s.ctrl != nil {
		s.Refresh()
	}
}

// MouseDown starts a gesture on primary button presses.
func (s *RangeSlider) MouseDown(e *desktop.MouseEvent) {
	if e == nil || e.Button != desktop.MouseButtonPrimary {
		return
	}
	s.press(mouseAt(e.Position))
}

// MouseUp ends the gesture started by MouseDown.
func (s *RangeSlider) MouseUp(e *desktop.MouseEvent) {
	if e == nil {
		return
	}
	s.release(mouseAt(e.Position))
}

// TouchDown starts a gesture on touch devices.
func (s *RangeSlider) TouchDown(e *mobile.TouchEvent) {
	if e == nil {
		return
	}
	s.press(touchAt(e.Position))
}

// TouchUp ends a touch gesture.
func (s *RangeSlider) TouchUp(e *mobile.TouchEvent) {
	if e == nil {
		return
	}
	s.release(touchAt(e.Position))
}

// TouchCancel ends a touch gesture the system took over.
func (s *RangeSlider) TouchCancel(e *mobile.TouchEvent) {
	s.release(touchAt(fyne.Position{}))
}

// Dragged relays pointer motion. Drivers that deliver no press event first
// get one synthesized at the drag position.
func (s *RangeSlider) Dragged(e *fyne.DragEvent) {
	if e == nil {
		return
	}
	p := mouseAt(e.Position)
	if !s.Dragging() {
		s.press(p)
	}
	s.doc.Move(p)
}

// DragEnd releases the gesture; fyne delivers it even when the pointer was
// let go outside the window.
func (s *RangeSlider) DragEnd() {
	s.release(slider.Mouse{})
}

// Tapped moves the thumb to the tapped position and takes focus.
func (s *RangeSlider) Tapped(e *fyne.PointEvent) {
	if e == nil {
		return
	}
	if s.handlers.Click != nil {
		s.handlers.Click(mouseAt(e.Position))
	}
	if app := fyne.CurrentApp(); app != nil {
		if c := app.Driver().CanvasForObject(s); c != nil {
			c.Focus(s)
		}
	}
}

// Scrolled steps the value using mouse wheel input.
func (s *RangeSlider) Scrolled(ev *fyne.ScrollEvent) {
	if ev == nil || s.handlers.Scroll == nil {
		return
	}
	s.handlers.Scroll(float64(ev.Scrolled.DY))
}

// TypedKey handles arrows, Home/End and PageUp/PageDown.
func (s *RangeSlider) TypedKey(ev *fyne.KeyEvent) {
	if ev == nil || s.handlers.KeyDown == nil {
		return
	}
	if k := keyFromFyne(ev.Name); k != slider.KeyUnknown {
		s.handlers.KeyDown(k)
	}
}

func (s *RangeSlider) TypedRune(rune) {}

func (s *RangeSlider) FocusGained() {
	s.focused = true
	s.Refresh()
}

func (s *RangeSlider) FocusLost() {
	s.focused = false
	s.Refresh()
}

// MinSize keeps a comfortable touch target along the cross axis.
func (s *RangeSlider) MinSize() fyne.Size {
	if s.opts.Orientation == slider.Vertical {
		w := theme.IconInlineSize()
		if w < 20 {
			w = 20
		}
		return fyne.NewSize(w, 180)
	}
	return fyne.NewSize(100, theme.IconInlineSize())
}

func (s *RangeSlider) CreateRenderer() fyne.WidgetRenderer {
	r := &rangeSliderRenderer{
		s:     s,
		track: canvas.NewRectangle(theme.ShadowColor()),
		fill:  canvas.NewRectangle(theme.PrimaryColor()),
		thumb: canvas.NewCircle(theme.ForegroundColor()),
	}
	r.objs = []fyne.CanvasObject{r.track, r.fill, r.thumb}
	return r
}

func (s *RangeSlider) press(p slider.Pointer) {
	if s.handlers.PointerDown == nil {
		return
	}
	before := s.Dragging()
	s.handlers.PointerDown(p)
	s.notifyDrag(before)
}

func (s *RangeSlider) release(p slider.Pointer) {
	before := s.Dragging()
	s.doc.Up(p)
	s.notifyDrag(before)
}

func (s *RangeSlider) notifyDrag(before bool) {
	if now := s.Dragging(); now != before && s.OnDragStateChanged != nil {
		s.OnDragStateChanged(now)
	}
}

func mouseAt(pos fyne.Position) slider.Pointer {
	return slider.Mouse{X: float64(pos.X), Y: float64(pos.Y)}
}

func touchAt(pos fyne.Position) slider.Pointer {
	return slider.Touch{Changed: []slider.TouchPoint{{X: float64(pos.X), Y: float64(pos.Y)}}}
}

func keyFromFyne(name fyne.KeyName) slider.Key {
	switch name {
	case fyne.KeyUp:
		return slider.KeyArrowUp
	case fyne.KeyDown:
		return slider.KeyArrowDown
	case fyne.KeyLeft:
		return slider.KeyArrowLeft
	case fyne.KeyRight:
		return slider.KeyArrowRight
	case fyne.KeyHome:
		return slider.KeyHome
	case fyne.KeyEnd:
		return slider.KeyEnd
	case fyne.KeyPageUp:
		return slider.KeyPageUp
	case fyne.KeyPageDown:
		return slider.KeyPageDown
	}
	return slider.KeyUnknown
}

type rangeSliderRenderer struct {
	s     *RangeSlider
	track *canvas.Rectangle
	fill  *canvas.Rectangle
	thumb *canvas.Circle
	objs  []fyne.CanvasObject
}

func (r *rangeSliderRenderer) Layout(sz fyne.Size) {
	const trackW = float32(4)
	st := r.s.state
	// Track maps pointers over the extent minus the inset; the thumb centre
	// uses the same extent so it stays under the pointer.
	inset := float32(r.s.opts.ThumbInset)
	thumbR := theme.IconInlineSize() / 4

	if st.Orientation == slider.Vertical {
		x := (sz.Width - trackW) / 2
		r.track.Move(fyne.NewPos(x, 0))
		r.track.Resize(fyne.NewSize(trackW, sz.Height))

		// fill grows from the bottom
		fillH := float32(st.ThumbOffset(float64(sz.Height - inset)))
		cy := clampFloat32(sz.Height-fillH, thumbR, sz.Height-thumbR)
		r.fill.Move(fyne.NewPos(x, sz.Height-fillH))
		r.fill.Resize(fyne.NewSize(trackW, fillH))
		r.placeThumb(sz.Width/2, cy, thumbR)
		return
	}

	y := (sz.Height - trackW) / 2
	r.track.Move(fyne.NewPos(0, y))
	r.track.Resize(fyne.NewSize(sz.Width, trackW))

	fillW := float32(st.ThumbOffset(float64(sz.Width - inset)))
	cx := clampFloat32(fillW, thumbR, sz.Width-thumbR)
	r.fill.Move(fyne.NewPos(0, y))
	r.fill.Resize(fyne.NewSize(fillW, trackW))
	r.placeThumb(cx, sz.Height/2, thumbR)
}

func (r *rangeSliderRenderer) placeThumb(cx, cy, radius float32) {
	r.thumb.Resize(fyne.NewSize(radius*2, radius*2))
	r.thumb.Move(fyne.NewPos(cx-radius, cy-radius))
}

func (r *rangeSliderRenderer) MinSize() fyne.Size { return r.s.MinSize() }

func (r *rangeSliderRenderer) Refresh() {
	r.track.FillColor = theme.ShadowColor()
	r.fill.FillColor = theme.PrimaryColor()
	r.thumb.FillColor = theme.ForegroundColor()
	if r.s.focused {
		r.thumb.StrokeColor = theme.FocusColor()
		r.thumb.StrokeWidth = 2
	} else {
		r.thumb.StrokeWidth = 0
	}
	r.Layout(r.s.Size())
	canvas.Refresh(r.track)
	canvas.Refresh(r.fill)
	canvas.Refresh(r.thumb)
}

// Destroy drops an in-flight gesture; the widget itself stays usable since
// fyne may recreate renderers.
func (r *rangeSliderRenderer) Destroy() {
	r.s.release(slider.Mouse{})
}

func (r *rangeSliderRenderer) Objects() []fyne.CanvasObject { return r.objs }

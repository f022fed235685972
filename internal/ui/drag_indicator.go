package ui

import (
	"image/color"
	"math"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

var indicatorIdle = color.NRGBA{0x80, 0x80, 0x80, 0xFF}

// DragIndicator is a small dot that pulses while any watched slider has a
// gesture in progress.
type DragIndicator struct {
	wrap   *fyne.Container
	dot    *canvas.Circle
	active atomic.Int32 // sliders currently dragging
}

// NewDragIndicator constructs an indicator with the given diameter.
func NewDragIndicator(diameter float32) *DragIndicator {
	c := canvas.NewCircle(indicatorIdle)
	c.StrokeColor = color.NRGBA{}
	inner := container.New(layout.NewGridWrapLayout(fyne.NewSize(diameter, diameter)), c)
	return &DragIndicator{wrap: container.NewCenter(inner), dot: c}
}

// CanvasObject returns the fyne object suitable for embedding in layouts.
func (d *DragIndicator) CanvasObject() fyne.CanvasObject { return d.wrap }

// Watch chains onto s.OnDragStateChanged.
func (d *DragIndicator) Watch(s *RangeSlider) {
	prev := s.OnDragStateChanged
	s.OnDragStateChanged = func(dragging bool) {
		if prev != nil {
			prev(dragging)
		}
		d.SetDragging(dragging)
	}
}

// SetDragging records one slider entering or leaving a gesture.
func (d *DragIndicator) SetDragging(dragging bool) {
	if dragging {
		if d.active.Add(1) == 1 {
			go d.animate()
		}
		return
	}
	if d.active.Add(-1) <= 0 {
		d.active.Store(0)
		CallOnMain(func() {
			d.dot.FillColor = indicatorIdle
			d.dot.Refresh()
		})
	}
}

// Active reports whether any watched slider is dragging.
func (d *DragIndicator) Active() bool { return d.active.Load() > 0 }

func (d *DragIndicator) animate() {
	t := time.NewTicker(90 * time.Millisecond)
	defer t.Stop()
	hue := 200.0 // blues only
	for d.Active() {
		<-t.C
		hue += 6
		if hue >= 260 {
			hue = 200
		}
		col := hsvToNRGBA(hue, 0.65, 0.95)
		CallOnMain(func() {
			if !d.Active() {
				return
			}
			d.dot.FillColor = col
			d.dot.Refresh()
		})
	}
}

// hsvToNRGBA converts HSV (0..360, 0..1, 0..1) to color.NRGBA.
func hsvToNRGBA(h, s, v float64) color.NRGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.NRGBA{
		R: uint8((r+m)*255 + 0.5),
		G: uint8((g+m)*255 + 0.5),
		B: uint8((b+m)*255 + 0.5),
		A: 0xFF,
	}
}

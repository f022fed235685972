package ui

import (
	"io"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edward-ap/minislider/internal/render"
	"github.com/edward-ap/minislider/internal/slider"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestSlider(t *testing.T, opts slider.Options, size fyne.Size, sinks ...render.Sink) (*RangeSlider, *[]int) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	var changes []int
	opts.Logger = quietLogger()
	opts.OnChange = func(v int) { changes = append(changes, v) }
	s, err := NewRangeSlider(opts, sinks...)
	require.NoError(t, err)
	s.Resize(size)
	return s, &changes
}

func press(s *RangeSlider, x, y float32) {
	s.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	})
}

func drag(s *RangeSlider, x, y float32) {
	s.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}})
}

func TestNewRangeSliderRejectsInvalidRange(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	_, err := NewRangeSlider(slider.Options{Min: 10, Max: 10})
	var rangeErr *slider.InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
}

func TestRangeSliderDrag(t *testing.T) {
	s, changes := newTestSlider(t, slider.Options{Min: 0, Max: 100, Step: 20}, fyne.NewSize(200, 20))
	var dragStates []bool
	s.OnDragStateChanged = func(d bool) { dragStates = append(dragStates, d) }

	press(s, 10, 10)
	assert.True(t, s.Dragging())
	drag(s, 90, 10)
	drag(s, 250, 10)
	s.DragEnd()
	assert.False(t, s.Dragging())
	assert.Equal(t, []int{40, 100}, *changes)
	assert.Equal(t, []bool{true, false}, dragStates)

	// late motion after release must not change anything
	s.doc.Move(slider.Mouse{X: 0})
	assert.Equal(t, 100, s.Value())
	assert.Equal(t, 0, s.doc.Listeners())
}

func TestRangeSliderDragWithoutPress(t *testing.T) {
	s, changes := newTestSlider(t, slider.Options{Min: 0, Max: 10}, fyne.NewSize(100, 20))
	drag(s, 30, 5)
	s.DragEnd()
	assert.Equal(t, []int{3}, *changes)
	assert.False(t, s.Dragging())
}

func TestRangeSliderVerticalTap(t *testing.T) {
	s, _ := newTestSlider(t, slider.Options{Min: -12, Max: 12, Orientation: slider.Vertical}, fyne.NewSize(20, 240))
	s.Tapped(&fyne.PointEvent{Position: fyne.NewPos(10, 240)})
	assert.Equal(t, -12, s.Value())
	s.Tapped(&fyne.PointEvent{Position: fyne.NewPos(10, 0)})
	assert.Equal(t, 12, s.Value())
	s.Tapped(&fyne.PointEvent{Position: fyne.NewPos(10, 120)})
	assert.Equal(t, 0, s.Value())
}

func TestRangeSliderTouch(t *testing.T) {
	s, changes := newTestSlider(t, slider.Options{Min: 0, Max: 100}, fyne.NewSize(200, 20))
	s.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(20, 10)}})
	assert.True(t, s.Dragging())
	drag(s, 50, 10)
	s.TouchCancel(&mobile.TouchEvent{})
	assert.False(t, s.Dragging())
	assert.Equal(t, []int{25}, *changes)
}

func TestRangeSliderKeys(t *testing.T) {
	s, changes := newTestSlider(t, slider.Options{Min: 0, Max: 1000, Step: 1, DefaultValue: 500}, fyne.NewSize(200, 20))
	s.TypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	assert.Equal(t, 501, s.Value())
	s.TypedKey(&fyne.KeyEvent{Name: fyne.KeyPageDown})
	assert.Equal(t, 401, s.Value())
	s.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEnd})
	assert.Equal(t, 1000, s.Value())
	s.TypedKey(&fyne.KeyEvent{Name: fyne.KeyHome})
	assert.Equal(t, 0, s.Value())
	s.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Len(t, *changes, 4)
}

func TestRangeSliderScroll(t *testing.T) {
	s, _ := newTestSlider(t, slider.Options{Min: 0, Max: 10, DefaultValue: 5}, fyne.NewSize(100, 20))
	s.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, 3)})
	assert.Equal(t, 6, s.Value())
	s.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, -3)})
	assert.Equal(t, 5, s.Value())
}

func TestRangeSliderFormAndARIA(t *testing.T) {
	form := render.NewForm()
	opts := slider.Options{
		Min:           0,
		Max:           200,
		Step:          20,
		DefaultValue:  25,
		Name:          "brightness",
		AriaLabeledBy: "caption-1",
		AriaValueText: func(v int) string { return "level " + form.Get("brightness") },
	}
	s, _ := newTestSlider(t, opts, fyne.NewSize(200, 20), form.Mirror())
	assert.Equal(t, 20, s.Value())
	assert.Equal(t, "20", form.Get("brightness"))

	s.Tapped(&fyne.PointEvent{Position: fyne.NewPos(200, 10)})
	assert.Equal(t, "200", form.Get("brightness"))
	attrs := s.Accessibility().Attrs()
	assert.Equal(t, "200", attrs["aria-valuenow"])
	assert.Equal(t, "caption-1", attrs["aria-labelledby"])
	assert.Equal(t, s.ElementID(), attrs["id"])
}

func TestRangeSliderDestroyMidDrag(t *testing.T) {
	s, changes := newTestSlider(t, slider.Options{Min: 0, Max: 100}, fyne.NewSize(100, 20))
	var dragStates []bool
	s.OnDragStateChanged = func(d bool) { dragStates = append(dragStates, d) }

	press(s, 10, 10)
	drag(s, 50, 10)
	s.Destroy()
	assert.Equal(t, 0, s.doc.Listeners())
	assert.Equal(t, []bool{true, false}, dragStates)

	drag(s, 90, 10)
	s.Tapped(&fyne.PointEvent{Position: fyne.NewPos(90, 10)})
	s.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEnd})
	assert.Equal(t, []int{50}, *changes)
}

func TestRangeSliderRendererLayout(t *testing.T) {
	s, _ := newTestSlider(t, slider.Options{Min: 0, Max: 100, DefaultValue: 50}, fyne.NewSize(200, 20))
	r := test.WidgetRenderer(s).(*rangeSliderRenderer)
	r.Layout(fyne.NewSize(200, 20))
	assert.InDelta(t, 100, r.fill.Size().Width, 0.01)
	assert.InDelta(t, 100, r.thumb.Position().X+r.thumb.Size().Width/2, 0.01)
	assert.Len(t, r.Objects(), 3)
}

func TestRangeSliderThumbFollowsPointerWithInset(t *testing.T) {
	tests := []struct {
		name        string
		orientation slider.Orientation
		size        fyne.Size
		tap         fyne.Position
		centre      func(r *rangeSliderRenderer) float32
		want        float32
	}{
		{
			name: "horizontal middle", size: fyne.NewSize(210, 20), tap: fyne.NewPos(100, 10), want: 100,
			centre: func(r *rangeSliderRenderer) float32 { return r.thumb.Position().X + r.thumb.Size().Width/2 },
		},
		{
			name: "horizontal end", size: fyne.NewSize(210, 20), tap: fyne.NewPos(200, 10), want: 200,
			centre: func(r *rangeSliderRenderer) float32 { return r.thumb.Position().X + r.thumb.Size().Width/2 },
		},
		{
			name: "vertical middle", orientation: slider.Vertical, size: fyne.NewSize(20, 210), tap: fyne.NewPos(10, 110), want: 110,
			centre: func(r *rangeSliderRenderer) float32 { return r.thumb.Position().Y + r.thumb.Size().Height/2 },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := slider.Options{Min: 0, Max: 200, ThumbInset: 10, Orientation: tt.orientation}
			s, _ := newTestSlider(t, opts, tt.size)
			r := test.WidgetRenderer(s).(*rangeSliderRenderer)
			s.Tapped(&fyne.PointEvent{Position: tt.tap})
			r.Layout(tt.size)
			assert.InDelta(t, tt.want, tt.centre(r), 0.01)
		})
	}
}

func TestKeyFromFyne(t *testing.T) {
	assert.Equal(t, slider.KeyArrowUp, keyFromFyne(fyne.KeyUp))
	assert.Equal(t, slider.KeyPageUp, keyFromFyne(fyne.KeyPageUp))
	assert.Equal(t, slider.KeyUnknown, keyFromFyne(fyne.KeyA))
}

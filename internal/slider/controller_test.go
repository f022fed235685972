package slider

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	progress []float64
	values   []int
}

func (r *recorder) Reflect(progress float64, value int) {
	r.progress = append(r.progress, progress)
	r.values = append(r.values, value)
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type harness struct {
	ctrl    *Controller
	surface *Surface
	render  *recorder
	changes []int
}

func newHarness(t *testing.T, opts Options, track Track) *harness {
	t.Helper()
	h := &harness{render: &recorder{}}
	opts.Logger = quietLogger()
	opts.OnChange = func(v int) { h.changes = append(h.changes, v) }
	ctrl, err := New(opts, h.render)
	require.NoError(t, err)
	h.ctrl = ctrl
	h.surface = NewSurface(track)
	require.NoError(t, ctrl.Attach(h.surface))
	return h
}

var horizontalTrack = Track{Left: 100, Top: 40, Width: 200, Height: 20}

func TestInitialReflectDoesNotNotify(t *testing.T) {
	h := newHarness(t, Options{Min: 0, Max: 200, Step: 20, DefaultValue: 25}, horizontalTrack)
	assert.Equal(t, 20, h.ctrl.Value())
	assert.Equal(t, []int{20}, h.render.values)
	assert.Empty(t, h.changes)
}

func TestDragToTrackLeftYieldsMin(t *testing.T) {
	h := newHarness(t, Options{Min: 0, Max: 100, DefaultValue: 50}, horizontalTrack)
	h.surface.Drag(Mouse{X: 200, Y: 50}, Mouse{X: 100, Y: 50})
	assert.Equal(t, 0.0, h.ctrl.Progress())
	assert.Equal(t, 0, h.ctrl.Value())
	assert.Equal(t, []int{0}, h.changes)
}

func TestDragHonoursMinProgressFloor(t *testing.T) {
	h := newHarness(t, Options{Min: 20, Max: 100, DefaultValue: 50, Normalization: NormalizeMax}, horizontalTrack)
	h.surface.Drag(Mouse{X: 200, Y: 50}, Mouse{X: 100, Y: 50})
	// progress stops at min/max = 0.2 of travel, which maps to 20+0.2*80
	assert.InDelta(t, 0.2, h.ctrl.Progress(), 1e-12)
	assert.Equal(t, 36, h.ctrl.Value())
}

func TestDragStepStops(t *testing.T) {
	h := newHarness(t, Options{Min: 0, Max: 100, Step: 20}, horizontalTrack)
	path := make([]Pointer, 0, 201)
	for x := 100.0; x <= 300; x++ {
		path = append(path, Mouse{X: x, Y: 50})
	}
	h.surface.Drag(Mouse{X: 100, Y: 50}, path...)
	require.Len(t, h.changes, len(path))
	for _, v := range h.changes {
		assert.Contains(t, []int{0, 20, 40, 60, 80, 100}, v)
	}
	assert.Equal(t, 100, h.ctrl.Value())
}

func TestExtremeCoordinatesStayInBounds(t *testing.T) {
	h := newHarness(t, Options{Min: -30, Max: 70, Step: 3}, horizontalTrack)
	for _, x := range []float64{-1e9, -300, 0, 99, 301, 5000, 1e12} {
		h.surface.Drag(Mouse{X: 150, Y: 0}, Mouse{X: x, Y: -1e6})
		v := h.ctrl.Value()
		assert.GreaterOrEqual(t, v, -30, "x=%v", x)
		assert.LessOrEqual(t, v, 70, "x=%v", x)
	}
}

func TestThumbInset(t *testing.T) {
	h := newHarness(t, Options{Min: 0, Max: 100}, Track{Left: 0, Width: 110, Height: 10, ThumbInset: 10})
	h.surface.Click(Mouse{X: 50})
	assert.InDelta(t, 0.5, h.ctrl.Progress(), 1e-12)
	assert.Equal(t, 50, h.ctrl.Value())
}

func TestVerticalMapping(t *testing.T) {
	track := Track{Left: 0, Top: 50, Width: 20, Height: 200}
	h := newHarness(t, Options{Min: 0, Max: 100, DefaultValue: 50, Orientation: Vertical}, track)

	h.surface.Drag(Mouse{X: 10, Y: 150}, Mouse{X: 10, Y: 250})
	assert.Equal(t, 0.0, h.ctrl.Progress())
	assert.Equal(t, 0, h.ctrl.Value())

	h.surface.Drag(Mouse{X: 10, Y: 150}, Mouse{X: 10, Y: 50})
	assert.Equal(t, 1.0, h.ctrl.Progress())
	assert.Equal(t, 100, h.ctrl.Value())

	h.surface.Drag(Mouse{X: 10, Y: 150}, Mouse{X: 10, Y: 100})
	assert.InDelta(t, 0.75, h.ctrl.Progress(), 1e-12)
}

func TestPointerUpReleasesDocumentListeners(t *testing.T) {
	h := newHarness(t, Options{Min: 0, Max: 100}, horizontalTrack)

	h.surface.PointerDown(Mouse{X: 150, Y: 50})
	assert.Equal(t, Dragging, h.ctrl.State())
	_, doc := h.surface.Listeners()
	assert.Equal(t, 1, doc)

	h.surface.Move(Mouse{X: 200, Y: 50})
	h.surface.Up(Mouse{X: 200, Y: 50})
	assert.Equal(t, Idle, h.ctrl.State())
	_, doc = h.surface.Listeners()
	assert.Equal(t, 0, doc)

	before := len(h.changes)
	h.surface.Move(Mouse{X: 300, Y: 50})
	h.surface.Move(Mouse{X: 100, Y: 50})
	assert.Len(t, h.changes, before)
	assert.Equal(t, 50, h.ctrl.Value())
}

func TestSecondPointerDownKeepsSingleSubscription(t *testing.T) {
	h := newHarness(t, Options{Min: 0, Max: 100}, horizontalTrack)
	h.surface.PointerDown(Mouse{X: 150})
	h.surface.PointerDown(Mouse{X: 160})
	_, doc := h.surface.Listeners()
	assert.Equal(t, 1, doc)
	h.ctrl.PointerUp()
	_, doc = h.surface.Listeners()
	assert.Equal(t, 0, doc)
}

func TestMovesAppliedInOrder(t *testing.T) {
	h := newHarness(t, Options{Min: 0, Max: 100}, horizontalTrack)
	h.surface.Drag(Mouse{X: 100}, Mouse{X: 300}, Mouse{X: 120}, Mouse{X: 260})
	assert.Equal(t, []int{100, 10, 80}, h.changes)
}

func TestClickStaysIdle(t *testing.T) {
	h := newHarness(t, Options{Min: 0, Max: 100}, horizontalTrack)
	h.surface.Click(Mouse{X: 250, Y: 50})
	assert.Equal(t, Idle, h.ctrl.State())
	assert.Equal(t, 75, h.ctrl.Value())
	assert.Equal(t, []int{75}, h.changes)
}

func TestTouchUsesFirstChangedTouch(t *testing.T) {
	h := newHarness(t, Options{Min: 0, Max: 100}, horizontalTrack)
	h.surface.Drag(
		Touch{Changed: []TouchPoint{{ID: 1, X: 100}}},
		Touch{Changed: []TouchPoint{{ID: 1, X: 200}, {ID: 2, X: 300}}},
	)
	assert.Equal(t, 50, h.ctrl.Value())
}

func TestUnsupportedEventLeavesStateIntact(t *testing.T) {
	h := newHarness(t, Options{Min: 0, Max: 100, DefaultValue: 30}, horizontalTrack)

	err := h.ctrl.Click(Touch{}, horizontalTrack)
	var unsupported *UnsupportedEventError
	require.True(t, errors.As(err, &unsupported))

	err = h.ctrl.PointerDown(nil, horizontalTrack)
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, Idle, h.ctrl.State())
	assert.Equal(t, 30, h.ctrl.Value())
	assert.Empty(t, h.changes)
}

func TestDegenerateTrackIsRejected(t *testing.T) {
	h := newHarness(t, Options{Min: 0, Max: 100, DefaultValue: 30}, horizontalTrack)
	err := h.ctrl.Click(Mouse{X: 10}, Track{Width: 10, ThumbInset: 10})
	require.ErrorIs(t, err, ErrDegenerateTrack)
	assert.Equal(t, 30, h.ctrl.Value())
}

func TestPointerDownWithoutDocument(t *testing.T) {
	ctrl, err := New(Options{Min: 0, Max: 10, Logger: quietLogger()}, nil)
	require.NoError(t, err)
	require.ErrorIs(t, ctrl.PointerDown(Mouse{}, horizontalTrack), ErrDetached)
	assert.Equal(t, Idle, ctrl.State())
}

func TestKeyboard(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		keys []Key
		want int
	}{
		{name: "arrow up", opts: Options{Min: 0, Max: 100, Step: 5, DefaultValue: 50}, keys: []Key{KeyArrowUp}, want: 55},
		{name: "arrow right", opts: Options{Min: 0, Max: 100, Step: 5, DefaultValue: 50}, keys: []Key{KeyArrowRight, KeyArrowRight}, want: 60},
		{name: "arrow down", opts: Options{Min: 0, Max: 100, Step: 5, DefaultValue: 50}, keys: []Key{KeyArrowDown}, want: 45},
		{name: "arrow left clamps", opts: Options{Min: 0, Max: 100, Step: 5, DefaultValue: 0}, keys: []Key{KeyArrowLeft}, want: 0},
		{name: "home", opts: Options{Min: 0, Max: 100, Step: 5, DefaultValue: 50}, keys: []Key{KeyHome}, want: 0},
		{name: "home with max normalization", opts: Options{Min: 10, Max: 110, Step: 20, DefaultValue: 70, Normalization: NormalizeMax}, keys: []Key{KeyHome}, want: 10},
		{name: "end", opts: Options{Min: 0, Max: 100, Step: 30}, keys: []Key{KeyEnd}, want: 100},
		{name: "page up is at least ten percent", opts: Options{Min: 0, Max: 1000, Step: 1}, keys: []Key{KeyPageUp}, want: 100},
		{name: "page up uses coarse step", opts: Options{Min: 0, Max: 100, Step: 25}, keys: []Key{KeyPageUp}, want: 25},
		{name: "page down", opts: Options{Min: 0, Max: 1000, Step: 1, DefaultValue: 500}, keys: []Key{KeyPageDown}, want: 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.opts, horizontalTrack)
			for _, k := range tt.keys {
				h.surface.KeyDown(k)
			}
			assert.Equal(t, tt.want, h.ctrl.Value())
			assert.Len(t, h.changes, len(tt.keys))
		})
	}
}

func TestUnknownKeyIsNoop(t *testing.T) {
	h := newHarness(t, Options{Min: 0, Max: 100, DefaultValue: 40}, horizontalTrack)
	require.NoError(t, h.ctrl.KeyDown(ParseKey("Escape")))
	assert.Empty(t, h.changes)
	assert.Len(t, h.render.values, 1)
}

func TestParseKey(t *testing.T) {
	assert.Equal(t, KeyPageDown, ParseKey("PageDown"))
	assert.Equal(t, KeyUnknown, ParseKey("pagedown"))
	assert.Equal(t, "ArrowLeft", KeyArrowLeft.String())
}

func TestScroll(t *testing.T) {
	h := newHarness(t, Options{Min: 0, Max: 10, DefaultValue: 5}, horizontalTrack)
	h.surface.Scroll(1)
	assert.Equal(t, 6, h.ctrl.Value())
	h.surface.Scroll(-1)
	h.surface.Scroll(-1)
	assert.Equal(t, 4, h.ctrl.Value())
	h.surface.Scroll(0)
	assert.Len(t, h.changes, 3)
}

func TestDestroyMidDragReleasesEverything(t *testing.T) {
	h := newHarness(t, Options{Min: 0, Max: 100}, horizontalTrack)
	h.surface.PointerDown(Mouse{X: 150})
	h.surface.Move(Mouse{X: 200})

	h.ctrl.Destroy()
	elem, doc := h.surface.Listeners()
	assert.Equal(t, 0, elem)
	assert.Equal(t, 0, doc)
	assert.Equal(t, Idle, h.ctrl.State())

	h.surface.Move(Mouse{X: 300})
	h.surface.KeyDown(KeyEnd)
	assert.Equal(t, []int{50}, h.changes)
	require.ErrorIs(t, h.ctrl.KeyDown(KeyEnd), ErrDestroyed)
	require.ErrorIs(t, h.ctrl.Attach(h.surface), ErrDestroyed)

	h.ctrl.Destroy()
}

func TestReattachReleasesPreviousMount(t *testing.T) {
	h := newHarness(t, Options{Min: 0, Max: 100}, horizontalTrack)
	other := NewSurface(horizontalTrack)
	require.NoError(t, h.ctrl.Attach(other))
	elem, _ := h.surface.Listeners()
	assert.Equal(t, 0, elem)
	other.Click(Mouse{X: 300})
	assert.Equal(t, 100, h.ctrl.Value())
}

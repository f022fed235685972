package ui

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/minislider/internal/render"
)

// StatusTicker shows the latest slider announcement in a single-line label
// and marquee-scrolls it when it does not fit. Announce is safe to call from
// any goroutine.
type StatusTicker struct {
	lbl      *widget.Label
	viewport fyne.CanvasObject // measured for the visible width
	text     binding.String

	mu      sync.Mutex
	stop    context.CancelFunc
	current string

	interval time.Duration
	gap      string
}

// NewStatusTicker binds lbl and measures overflow against viewport.
func NewStatusTicker(lbl *widget.Label, viewport fyne.CanvasObject) *StatusTicker {
	b := binding.NewString()
	lbl.Bind(b)
	_ = b.Set("Ready")
	return &StatusTicker{
		lbl:      lbl,
		viewport: viewport,
		text:     b,
		interval: 120 * time.Millisecond,
		gap:      "   ",
	}
}

// Sink announces every state of a slider as "label: spoken value".
func (st *StatusTicker) Sink(label string) render.Sink {
	return render.SinkFunc(func(s render.State) {
		st.Announce(label + ": " + s.ARIA.Spoken())
	})
}

// Close stops any scrolling goroutine.
func (st *StatusTicker) Close() {
	st.mu.Lock()
	st.cancelLocked()
	st.mu.Unlock()
}

// Announce replaces the ticker text.
func (st *StatusTicker) Announce(text string) {
	st.mu.Lock()
	if text == st.current {
		st.mu.Unlock()
		return
	}
	st.cancelLocked()
	st.current = text
	st.mu.Unlock()

	_ = st.text.Set(text)

	textW := measureLabelTextWidth(st.lbl, text)
	if !tickerNeedsScroll(textW, st.viewport.Size().Width) {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	st.mu.Lock()
	if st.current != text {
		// a newer Announce won while the text was measured
		st.mu.Unlock()
		cancel()
		return
	}
	st.cancelLocked()
	st.stop = cancel
	st.mu.Unlock()
	go st.scroll(ctx, text, textW)
}

// superseded reports whether text is no longer the announced one or the
// ticker was closed.
func (st *StatusTicker) superseded(text string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.stop == nil || st.current != text
}

func (st *StatusTicker) scroll(ctx context.Context, text string, textW float32) {
	runes := []rune(st.gap + text + st.gap)
	t := time.NewTicker(st.interval)
	defer t.Stop()
	offset := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		if st.superseded(text) {
			return
		}
		if !tickerNeedsScroll(textW, st.viewport.Size().Width) {
			_ = st.text.Set(text)
			return
		}
		offset = (offset + 1) % len(runes)
		_ = st.text.Set(string(runes[offset:]) + string(runes[:offset]))
	}
}

func (st *StatusTicker) cancelLocked() {
	if st.stop != nil {
		st.stop()
		st.stop = nil
	}
}

// overflowSlack absorbs rounding in text measurement.
const overflowSlack float32 = 0.5

// tickerNeedsScroll reports whether text of textWidth overflows the viewport.
func tickerNeedsScroll(textWidth, viewportWidth float32) bool {
	if textWidth <= 0 {
		return false
	}
	return textWidth-max(viewportWidth, 0) > overflowSlack
}

// measureLabelTextWidth estimates the width the label would need for the text.
func measureLabelTextWidth(lbl *widget.Label, text string) float32 {
	if lbl == nil {
		return 0
	}
	tmp := widget.NewLabel(text)
	tmp.Alignment = lbl.Alignment
	tmp.TextStyle = lbl.TextStyle
	tmp.Importance = lbl.Importance
	tmp.Refresh()
	return tmp.MinSize().Width
}

// Package render reflects slider state into whatever presents it: track and
// thumb geometry, accessibility attributes and a hidden form field.
package render

import (
	"math"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/edward-ap/minislider/internal/slider"
)

// State is one rendered snapshot of a slider.
type State struct {
	Orientation slider.Orientation
	// Fill is the filled fraction of the track, 0..1.
	Fill  float64
	Value int
	ARIA  ARIA
	// FormName is empty when the slider does not take part in a form.
	FormName  string
	FormValue string
}

// ThumbOffset places the thumb centre along a track of the given length.
// Horizontal offsets grow from the left edge, vertical ones from the bottom.
func (s State) ThumbOffset(length float64) float64 {
	return s.Fill * length
}

// Sink presents a State.
type Sink interface {
	Render(State)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(State)

func (f SinkFunc) Render(s State) { f(s) }

// Adapter is the slider.Reflector that turns progress and value into a
// State and pushes it to its sinks.
type Adapter struct {
	id    string
	opts  slider.Options
	sinks []Sink
	last  State
	log   logrus.FieldLogger
}

// NewAdapter creates an adapter with a fresh element id.
func NewAdapter(opts slider.Options, sinks ...Sink) *Adapter {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	a := &Adapter{
		id:    "slider-" + uuid.NewString(),
		opts:  opts,
		sinks: sinks,
		log:   log,
	}
	a.last = a.build(0, int(math.Floor(opts.Min)))
	return a
}

// ID is the element id published in the ARIA attributes; other elements
// reference it to label or describe the slider.
func (a *Adapter) ID() string { return a.id }

// AddSink registers s and renders the last state into it immediately.
func (a *Adapter) AddSink(s Sink) {
	a.sinks = append(a.sinks, s)
	s.Render(a.last)
}

// State returns the last reflected state.
func (a *Adapter) State() State { return a.last }

// Reflect implements slider.Reflector. Non-finite progress is never
// rendered; the previous state stays on screen.
func (a *Adapter) Reflect(progress float64, value int) {
	if math.IsNaN(progress) || math.IsInf(progress, 0) {
		a.log.WithField("progress", progress).Warn("refusing to render non-finite progress")
		return
	}
	a.last = a.build(progress, value)
	for _, s := range a.sinks {
		s.Render(a.last)
	}
}

func (a *Adapter) build(progress float64, value int) State {
	st := State{
		Orientation: a.opts.Orientation,
		Fill:        slider.Clamp(progress, 0, 1),
		Value:       value,
		ARIA: ARIA{
			ID:          a.id,
			ValueMin:    a.opts.Min,
			ValueMax:    a.opts.Max,
			ValueNow:    value,
			Orientation: a.opts.Orientation.String(),
			Label:       a.opts.AriaLabel,
			LabelledBy:  a.opts.AriaLabeledBy,
		},
	}
	if a.opts.AriaValueText != nil {
		st.ARIA.ValueText = a.opts.AriaValueText(value)
	}
	if a.opts.Name != "" {
		st.FormName = a.opts.Name
		st.FormValue = strconv.Itoa(value)
	}
	return st
}

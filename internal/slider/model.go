package slider

import (
	"fmt"
	"math"
)

const (
	// largeStepFloor keeps PageUp/PageDown at 10% of travel or more.
	largeStepFloor = 0.1
	// quantTolerance absorbs float drift from accumulated keyboard steps so
	// that n increments of 1/n land on stop n rather than n-1.
	quantTolerance = 1e-9
)

// Model holds the normalized progress of a slider and derives the public
// value from it. Progress is the only mutable field.
type Model struct {
	min, max     float64
	span         float64
	norm         Normalization
	progressStep float64
	minProgress  float64
	progress     float64
}

// NewModel validates opts and positions progress at opts.DefaultValue
// (clamped into range).
func NewModel(opts Options) (*Model, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	m := &Model{
		min:  opts.Min,
		max:  opts.Max,
		span: opts.span(),
		norm: opts.Normalization,
	}
	m.progressStep = opts.step() / m.span
	if m.norm == NormalizeMax {
		m.minProgress = opts.Min / opts.Max
	}

	def := Clamp(opts.DefaultValue, opts.Min, opts.Max)
	var initial float64
	if m.norm == NormalizeMax {
		initial = def / opts.Max
	} else {
		p, err := ValueToPercent(def, opts.Min, opts.Max)
		if err != nil {
			return nil, err
		}
		initial = p
	}
	m.progress = Clamp(initial, m.minProgress, 1)
	return m, nil
}

// SetProgress clamps raw to [MinProgress, 1] and stores it. Non-finite input
// is rejected and the previous progress kept.
func (m *Model) SetProgress(raw float64) error {
	if !finite(raw) {
		return fmt.Errorf("set progress %v: %w", raw, ErrNotANumber)
	}
	m.progress = Clamp(raw, m.minProgress, 1)
	return nil
}

// Nudge moves progress by delta.
func (m *Model) Nudge(delta float64) error {
	return m.SetProgress(m.progress + delta)
}

// Progress returns the stored normalized position.
func (m *Model) Progress() float64 { return m.progress }

// MinProgress is the floor of the progress interval.
func (m *Model) MinProgress() float64 { return m.minProgress }

// ProgressStep is one value-space step expressed in progress units.
func (m *Model) ProgressStep() float64 { return m.progressStep }

// LargeStep is the PageUp/PageDown increment.
func (m *Model) LargeStep() float64 { return math.Max(m.progressStep, largeStepFloor) }

// Bounds returns the configured value range.
func (m *Model) Bounds() (min, max float64) { return m.min, m.max }

// Value derives the public value: progress is mapped into value space,
// quantized down to a step boundary, clamped and floored to an integer.
// Full travel always reports max.
func (m *Model) Value() int {
	if m.progress >= 1 {
		return int(math.Floor(m.max))
	}
	total := PercentToValue(m.progress, m.min, m.max)
	stepSize := m.progressStep * m.span

	var q float64
	if m.norm == NormalizeMax {
		q = math.Floor(total/stepSize+quantTolerance) * stepSize
	} else {
		q = m.min + math.Floor((total-m.min)/stepSize+quantTolerance)*stepSize
	}
	q = Clamp(q, m.min, m.max)
	v := math.Floor(q + quantTolerance)
	if v < m.min {
		// fractional min: the first integer inside the range
		v = math.Ceil(m.min)
	}
	return int(v)
}

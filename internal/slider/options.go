// Package slider implements the value and geometry core of a range input:
// numeric conversions, the progress model and the pointer/keyboard
// interaction state machine. It has no GUI dependency; hosts bind it to a
// toolkit through the Mount, Document and Reflector interfaces.
package slider

import (
	"math"
	"strings"

	"github.com/sirupsen/logrus"
)

// Orientation selects the drag axis.
type Orientation int

const (
	// Horizontal maps pointer X to progress, left to right.
	Horizontal Orientation = iota
	// Vertical maps pointer Y to progress, bottom to top.
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation accepts "horizontal" or "vertical" (case-insensitive).
// Anything else yields Horizontal.
func ParseOrientation(s string) Orientation {
	if strings.EqualFold(strings.TrimSpace(s), "vertical") {
		return Vertical
	}
	return Horizontal
}

// Normalization selects how a value-space step is turned into a progress
// step and where the progress floor sits.
type Normalization int

const (
	// NormalizeSpan divides by (max-min) and floors progress at 0.
	NormalizeSpan Normalization = iota
	// NormalizeMax divides by max and floors progress at min/max. Kept for
	// sliders that must reproduce the stops of the older widgets.
	NormalizeMax
)

func (n Normalization) String() string {
	if n == NormalizeMax {
		return "max"
	}
	return "span"
}

// ParseNormalization accepts "span" or "max"; anything else yields
// NormalizeSpan.
func ParseNormalization(s string) Normalization {
	if strings.EqualFold(strings.TrimSpace(s), "max") {
		return NormalizeMax
	}
	return NormalizeSpan
}

// Options is the constructor-time configuration of a slider. It is
// immutable for the lifetime of the Controller built from it.
type Options struct {
	Min          float64
	Max          float64
	Step         float64 // value units; <= 0 means 1
	DefaultValue float64
	Orientation  Orientation

	// Name mirrors the value into a hidden form field when non-empty.
	Name          string
	AriaLabel     string
	AriaLabeledBy string
	// AriaValueText renders the value as accessible text on every change.
	AriaValueText func(int) string
	// OnChange is called after every user-driven change.
	OnChange func(int)

	// Container identifies the mount point the host attaches the slider to.
	Container string
	// ThumbInset is subtracted from the track extent in pointer mapping.
	ThumbInset    float64
	Normalization Normalization

	Logger logrus.FieldLogger
}

// Validate reports configuration errors that would otherwise surface as
// division by zero during normalization.
func (o Options) Validate() error {
	if !finite(o.Min) || !finite(o.Max) {
		return &InvalidRangeError{Min: o.Min, Max: o.Max, Reason: "bounds must be finite"}
	}
	if o.Min >= o.Max {
		return &InvalidRangeError{Min: o.Min, Max: o.Max, Reason: "min must be less than max"}
	}
	if o.Max == 0 {
		return &InvalidRangeError{Min: o.Min, Max: o.Max, Reason: "max must not be zero"}
	}
	// values are reported as integers
	if math.Ceil(o.Min) > math.Floor(o.Max) {
		return &InvalidRangeError{Min: o.Min, Max: o.Max, Reason: "range contains no integer value"}
	}
	if o.Normalization == NormalizeMax && o.Max < 0 {
		return &InvalidRangeError{Min: o.Min, Max: o.Max, Reason: "max normalization requires a positive max"}
	}
	if !finite(o.Step) || !finite(o.DefaultValue) || !finite(o.ThumbInset) {
		return &InvalidRangeError{Min: o.Min, Max: o.Max, Reason: "step, default value and inset must be finite"}
	}
	return nil
}

// step returns the configured step with the <= 0 fallback applied.
func (o Options) step() float64 {
	if o.Step > 0 {
		return o.Step
	}
	return 1
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}

func (o Options) label() string {
	switch {
	case o.Name != "":
		return o.Name
	case o.AriaLabel != "":
		return o.AriaLabel
	case o.Container != "":
		return o.Container
	}
	return "slider"
}

// span is the value-space length progress 1.0 corresponds to.
func (o Options) span() float64 {
	if o.Normalization == NormalizeMax {
		return o.Max
	}
	return o.Max - o.Min
}

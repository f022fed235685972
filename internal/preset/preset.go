// Package preset manages named snapshots of a slider bank. Sliders expose no
// value setter, so a preset is applied the way a user would: with key
// presses.
package preset

import (
	"fmt"
	"strings"

	"github.com/edward-ap/minislider/internal/slider"
)

// Preset holds one value per bank slider, in bank order.
type Preset struct {
	Name   string
	Values []int
}

// Internal copy of the default presets. Values are in dB for the five-band
// demo bank and stay inside its -12..12 range.
var defaultPresets = []Preset{
	{Name: "Flat", Values: []int{0, 0, 0, 0, 0}},
	{Name: "Bass Boost", Values: []int{6, 4, 1, -1, -3}},
	{Name: "Treble Boost", Values: []int{-3, -1, 1, 4, 6}},
	{Name: "Vocal Boost", Values: []int{-2, 1, 4, 3, -1}},
}

// DefaultPresets returns a deep copy of the bundled presets so callers can
// modify entries without affecting the defaults.
func DefaultPresets() []Preset {
	out := make([]Preset, len(defaultPresets))
	for i, p := range defaultPresets {
		out[i] = clonePreset(p)
	}
	return out
}

// FindByName performs a case-insensitive lookup in presets.
func FindByName(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return clonePreset(p), true
		}
	}
	return Preset{}, false
}

// Names lists preset names in order.
func Names(presets []Preset) []string {
	out := make([]string, len(presets))
	for i, p := range presets {
		out[i] = p.Name
	}
	return out
}

// Target is the part of a slider a preset needs: key input, the derived
// value and the position along the track.
type Target interface {
	KeyDown(k slider.Key) error
	Value() int
	Progress() float64
}

// Capture builds a preset from the current values of the bank.
func Capture(name string, bank []Target) Preset {
	out := Preset{Name: name, Values: make([]int, len(bank))}
	for i, t := range bank {
		out.Values[i] = t.Value()
	}
	return out
}

// Apply drives every bank slider to the preset value at the same index.
// Sliders beyond the preset length are sent Home.
func Apply(p Preset, bank []Target) error {
	for i, t := range bank {
		var err error
		if i < len(p.Values) {
			err = DriveTo(t, p.Values[i])
		} else {
			err = t.KeyDown(slider.KeyHome)
		}
		if err != nil {
			return fmt.Errorf("preset %q slider %d: %w", p.Name, i, err)
		}
	}
	return nil
}

// maxDriveSteps bounds DriveTo on sliders with very fine steps.
const maxDriveSteps = 100000

// DriveTo moves t to the smallest reachable value >= want using Home and
// ArrowUp. If want lies beyond the last stop the slider ends at full travel.
func DriveTo(t Target, want int) error {
	if err := t.KeyDown(slider.KeyHome); err != nil {
		return err
	}
	for i := 0; i < maxDriveSteps && t.Value() < want && t.Progress() < 1; i++ {
		if err := t.KeyDown(slider.KeyArrowUp); err != nil {
			return err
		}
	}
	return nil
}

// clonePreset performs a deep copy so callers can mutate the clone without
// affecting stored presets.
func clonePreset(p Preset) Preset {
	clone := Preset{Name: p.Name, Values: make([]int, len(p.Values))}
	copy(clone.Values, p.Values)
	return clone
}

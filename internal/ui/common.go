// Package ui hosts the slider core in fyne: the RangeSlider widget plus the
// small captions and indicators the demo window arranges around it.
package ui

import (
	"fyne.io/fyne/v2"

	"github.com/edward-ap/minislider/internal/slider"
)

// Drivers expose one of these to run work on the UI goroutine.
type (
	mainRunner interface{ RunOnMain(func()) }
	mainCaller interface{ CallOnMain(func()) }
)

// CallOnMain runs f on the UI goroutine when the driver can, inline otherwise.
func CallOnMain(f func()) {
	if f == nil {
		return
	}
	switch d := currentDriver().(type) {
	case mainRunner:
		d.RunOnMain(f)
	case mainCaller:
		d.CallOnMain(f)
	default:
		f()
	}
}

func currentDriver() fyne.Driver {
	if a := fyne.CurrentApp(); a != nil {
		return a.Driver()
	}
	return nil
}

// currentScale is the app's UI scale, 1 without an app.
func currentScale() float64 {
	a := fyne.CurrentApp()
	if a == nil || a.Settings() == nil {
		return 1
	}
	if sc := a.Settings().Scale(); sc > 0 {
		return float64(sc)
	}
	return 1
}

// clampFloat32 constrains v to [lo, hi]; an inverted interval yields lo.
func clampFloat32(v, lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	return float32(slider.Clamp(float64(v), float64(lo), float64(hi)))
}

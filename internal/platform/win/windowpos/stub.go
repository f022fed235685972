//go:build !windows

// Package windowpos is compiled as a no-op on non-Windows platforms.
package windowpos

import "fyne.io/fyne/v2"

// Capture is unavailable off Windows and always reports false.
func Capture(fyne.Window) (Placement, bool) { return Placement{}, false }

// Restore is unavailable off Windows and always reports false.
func Restore(fyne.Window, Placement) bool { return false }

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// thumbTheme scales the inline icon size, which RangeSlider derives its
// thumb radius from.
type thumbTheme struct {
	fyne.Theme
	scale float32
}

func (t thumbTheme) Size(n fyne.ThemeSizeName) float32 {
	base := t.Theme.Size(n)
	if n == theme.SizeNameInlineIcon {
		return base * t.scale
	}
	return base
}

// UseThumbScale wraps the current app theme so slider thumbs are drawn at
// scale times their usual size. Values outside (0, 1] are ignored.
func UseThumbScale(scale float64) {
	app := fyne.CurrentApp()
	if app == nil || scale <= 0 || scale > 1 {
		return
	}
	current := app.Settings().Theme()
	if wrapped, ok := current.(thumbTheme); ok {
		current = wrapped.Theme
	}
	app.Settings().SetTheme(thumbTheme{Theme: current, scale: float32(scale)})
}

package sliderapp

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/minislider/internal/config"
	"github.com/edward-ap/minislider/internal/preset"
	"github.com/edward-ap/minislider/internal/ui"
	"github.com/edward-ap/minislider/internal/valuetext"
)

const (
	bankCellWidth    float32 = 28
	captionWidth     float32 = 22
	scaleColumnWidth float32 = 56
)

// buildBank renders the vertical sliders side by side, each with a rotated
// caption the slider is labelled by, plus the preset controls above them.
func (a *App) buildBank() (fyne.CanvasObject, error) {
	configs := a.cfg.Bank()
	if len(configs) == 0 {
		return container.NewVBox(), nil
	}

	var cells []fyne.CanvasObject
	var height float32
	for _, sc := range configs {
		caption := ui.NewRotatedCaption("caption-"+sc.ID, sc.Label)
		if strings.TrimSpace(sc.AriaLabeledBy) == "" && strings.TrimSpace(sc.AriaLabel) == "" {
			sc.AriaLabeledBy = caption.ID
		}
		s, err := a.newSlider(sc)
		if err != nil {
			return nil, err
		}
		a.bank = append(a.bank, s)

		h := s.MinSize().Height
		if h > height {
			height = h
		}
		caption.FitInto(captionWidth, h)
		sliderCell := container.New(layout.NewGridWrapLayout(fyne.NewSize(bankCellWidth, h)), s)
		val := widget.NewLabelWithData(a.values[sc.ID])
		val.Alignment = fyne.TextAlignCenter
		cells = append(cells, container.NewVBox(
			container.NewHBox(caption.CanvasObject(), sliderCell),
			val,
		))
	}

	first := configs[0]
	scale := makeScaleColumn(height, scaleLabels(first))
	grid := container.NewGridWithColumns(len(cells), cells...)
	sliders := container.NewBorder(nil, nil, container.NewHBox(scale, widget.NewSeparator()), nil, grid)

	header := container.NewBorder(nil, nil, widget.NewLabel("Presets"), a.buildPresetButtons(), a.buildPresetSelect())
	return container.NewVBox(header, widget.NewSeparator(), sliders), nil
}

func (a *App) buildPresetSelect() fyne.CanvasObject {
	a.presets = preset.DefaultPresets()
	for _, p := range a.cfg.Presets {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		a.presets = upsertPreset(a.presets, preset.Preset{Name: p.Name, Values: p.Values})
	}

	a.nameEntry = widget.NewEntry()
	a.nameEntry.SetPlaceHolder("Preset name")
	a.presetSel = widget.NewSelect(preset.Names(a.presets), a.applyPreset)
	a.presetSel.PlaceHolder = "Choose preset"
	return container.NewGridWithColumns(2, a.presetSel, a.nameEntry)
}

func (a *App) buildPresetButtons() fyne.CanvasObject {
	save := widget.NewButton("Save Preset As…", func() {
		a.savePreset(a.nameEntry.Text)
	})
	return save
}

// applyPreset drives the bank to the named preset.
func (a *App) applyPreset(name string) {
	p, ok := preset.FindByName(a.presets, name)
	if !ok {
		return
	}
	if err := preset.Apply(p, a.bankTargets()); err != nil {
		a.log.WithError(err).WithField("preset", name).Warn("preset not applied")
		return
	}
	a.log.WithField("preset", p.Name).Info("preset applied")
}

// savePreset captures the bank under name, replacing a preset of the same
// name, and persists it with the config.
func (a *App) savePreset(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	p := preset.Capture(name, a.bankTargets())
	a.presets = upsertPreset(a.presets, p)

	data := config.PresetData{Name: p.Name, Values: p.Values}
	replaced := false
	for i := range a.cfg.Presets {
		if strings.EqualFold(a.cfg.Presets[i].Name, name) {
			a.cfg.Presets[i] = data
			replaced = true
		}
	}
	if !replaced {
		a.cfg.Presets = append(a.cfg.Presets, data)
	}

	if a.presetSel != nil {
		a.presetSel.Options = preset.Names(a.presets)
		a.presetSel.Refresh()
	}
	a.log.WithField("preset", name).Info("preset saved")
}

func (a *App) bankTargets() []preset.Target {
	out := make([]preset.Target, len(a.bank))
	for i, s := range a.bank {
		out[i] = s
	}
	return out
}

func upsertPreset(list []preset.Preset, p preset.Preset) []preset.Preset {
	for i := range list {
		if strings.EqualFold(list[i].Name, p.Name) {
			list[i] = p
			return list
		}
	}
	return append(list, p)
}

// scaleLabels formats the top, middle and bottom of a slider's range with
// its own value text.
func scaleLabels(sc config.SliderConfig) [3]string {
	format, err := valuetext.Lookup(sc.ValueText, valuetext.Range{Min: sc.Min, Max: sc.Max})
	if err != nil || format == nil {
		format, _ = valuetext.Lookup("plain", valuetext.Range{Min: sc.Min, Max: sc.Max})
	}
	mid := int(sc.Min + (sc.Max-sc.Min)/2)
	return [3]string{format(int(sc.Max)), format(mid), format(int(sc.Min))}
}

// makeScaleColumn renders a fixed-height column with labels at the top edge,
// mid-height and bottom edge so they line up with the bank's thumbs.
func makeScaleColumn(height float32, labels [3]string) fyne.CanvasObject {
	top := widget.NewLabel(labels[0])
	mid := widget.NewLabel(labels[1])
	bot := widget.NewLabel(labels[2])

	bg := canvas.NewRectangle(color.NRGBA{})
	bg.SetMinSize(fyne.NewSize(scaleColumnWidth, height))
	lay := container.NewWithoutLayout(bg, top, mid, bot)

	place := func(l *widget.Label, y float32) {
		sz := l.MinSize()
		x := (scaleColumnWidth - sz.Width) / 2
		if x < 0 {
			x = 0
		}
		l.Move(fyne.NewPos(x, y))
		l.Resize(sz)
	}
	midH := mid.MinSize().Height
	place(top, -midH/2)
	place(mid, nonNegative(height/2-midH/2))
	place(bot, nonNegative(height-midH/2))

	return container.New(layout.NewGridWrapLayout(fyne.NewSize(scaleColumnWidth, height)), lay)
}

func nonNegative(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}

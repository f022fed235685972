// Package sliderapp wires configuration, logging and the slider widgets
// together into the MiniSlider demo window.
package sliderapp

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/edward-ap/minislider/internal/config"
	"github.com/edward-ap/minislider/internal/platform/win/windowpos"
	"github.com/edward-ap/minislider/internal/preset"
	"github.com/edward-ap/minislider/internal/render"
	"github.com/edward-ap/minislider/internal/ui"
)

// App owns the fyne application, the window and every slider built from the
// config.
type App struct {
	fa      fyne.App
	w       fyne.Window
	cfg     *config.Config
	cfgPath string
	log     logrus.FieldLogger

	form    *render.Form
	sliders []*ui.RangeSlider
	values  map[string]binding.String // slider id -> spoken value

	// bank
	bank      []*ui.RangeSlider
	presets   []preset.Preset
	presetSel *widget.Select
	nameEntry *widget.Entry

	ticker *ui.StatusTicker
	ind    *ui.DragIndicator

	closed bool
}

// NewApp creates the fyne application and builds the window for cfg. path is
// where the config is saved back on close.
func NewApp(cfg *config.Config, path string, log logrus.FieldLogger) (*App, error) {
	fa := app.NewWithID(config.AppID)
	fa.Settings().SetTheme(theme.DarkTheme())
	if AppIcon != nil {
		fa.SetIcon(AppIcon)
	}
	return newApp(fa, cfg, path, log)
}

func newApp(fa fyne.App, cfg *config.Config, path string, log logrus.FieldLogger) (*App, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	ui.UseThumbScale(cfg.Theme.ThumbScale)

	w := fa.NewWindow("MiniSlider")
	w.SetMaster()
	if AppIcon != nil {
		w.SetIcon(AppIcon)
	}

	a := &App{
		fa:      fa,
		w:       w,
		cfg:     cfg,
		cfgPath: path,
		log:     log,
		form:    render.NewForm(),
		values:  map[string]binding.String{},
		ind:     ui.NewDragIndicator(10),
	}
	if err := a.buildUI(); err != nil {
		return nil, err
	}
	a.restoreWindowPlacement()

	w.SetCloseIntercept(func() {
		a.Close()
		w.Close()
		fa.Quit()
	})
	return a, nil
}

// Run shows the window and enters the fyne event loop.
func (a *App) Run() {
	a.w.ShowAndRun()
}

// Sliders returns every slider in config order.
func (a *App) Sliders() []*ui.RangeSlider { return a.sliders }

// Form returns the hidden form the sliders mirror their values into.
func (a *App) Form() *render.Form { return a.form }

// Close destroys the sliders and persists window geometry and presets. It is
// safe to call more than once.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true

	sz := a.w.Canvas().Size()
	if sz.Width > 0 && sz.Height > 0 {
		a.cfg.Window.Width = int(sz.Width)
		a.cfg.Window.Height = int(sz.Height)
	}
	a.captureWindowPlacement()

	for _, s := range a.sliders {
		s.Destroy()
	}
	if a.ticker != nil {
		a.ticker.Close()
	}
	if a.cfgPath != "" {
		if err := a.cfg.Save(a.cfgPath); err != nil {
			a.log.WithError(err).WithField("path", a.cfgPath).Warn("config save failed")
		}
	}
	a.log.Debug("app closed")
}

func (a *App) buildUI() error {
	status := a.buildStatusBar()
	controls, err := a.buildControls()
	if err != nil {
		return err
	}
	bank, err := a.buildBank()
	if err != nil {
		return err
	}

	body := container.NewVBox(controls, widget.NewSeparator(), bank)
	a.w.SetContent(container.NewBorder(nil, status, nil, nil, container.NewPadded(body)))

	width := float32(a.cfg.Window.Width)
	if width < config.MinWindowWidth {
		width = config.MinWindowWidth
	}
	a.w.Resize(fyne.NewSize(width, float32(a.cfg.Window.Height)))
	return nil
}

// buildControls lays out the horizontal sliders as a form whose submit
// button logs the encoded hidden fields.
func (a *App) buildControls() (fyne.CanvasObject, error) {
	f := widget.NewForm()
	for _, sc := range a.cfg.Sliders {
		if sc.Group == config.GroupBank {
			continue
		}
		s, err := a.newSlider(sc)
		if err != nil {
			return nil, err
		}
		val := widget.NewLabelWithData(a.values[sc.ID])
		f.Append(sc.Label, container.NewBorder(nil, nil, nil, val, s))
	}
	f.SubmitText = "Submit"
	f.OnSubmit = a.submit
	return f, nil
}

func (a *App) submit() {
	encoded := a.form.Encode()
	a.log.WithField("form", encoded).Info("form submitted")
	a.ticker.Announce("Submitted " + encoded)
}

// newSlider builds the widget for sc and hooks it to the shared form, the
// status ticker and the drag indicator.
func (a *App) newSlider(sc config.SliderConfig) (*ui.RangeSlider, error) {
	opts, err := sc.Options()
	if err != nil {
		return nil, err
	}

	log := a.log.WithField("slider", sc.ID)
	opts.Logger = log
	opts.OnChange = func(v int) {
		log.WithField("value", v).Debug("changed")
	}

	value := binding.NewString()
	a.values[sc.ID] = value
	sinks := []render.Sink{
		a.form.Mirror(),
		render.SinkFunc(func(st render.State) { _ = value.Set(st.ARIA.Spoken()) }),
		a.ticker.Sink(sc.Label),
	}
	s, err := ui.NewRangeSlider(opts, sinks...)
	if err != nil {
		return nil, fmt.Errorf("build slider %q: %w", sc.ID, err)
	}
	a.ind.Watch(s)
	a.sliders = append(a.sliders, s)
	return s, nil
}

func (a *App) buildStatusBar() fyne.CanvasObject {
	lbl := widget.NewLabel("")
	lbl.Truncation = fyne.TextTruncateClip
	viewport := container.NewStack(lbl)
	a.ticker = ui.NewStatusTicker(lbl, viewport)
	return container.NewBorder(nil, nil, a.ind.CanvasObject(), nil, viewport)
}

// restoreWindowPlacement moves the window to the persisted coordinates when
// the platform supports it. The native window may not exist yet, so a few
// retries are made in the background.
func (a *App) restoreWindowPlacement() {
	if !a.cfg.Window.PosValid {
		return
	}
	p := windowpos.Placement{X: a.cfg.Window.X, Y: a.cfg.Window.Y}
	if windowpos.Restore(a.w, p) {
		return
	}
	go func() {
		const attempts = 10
		for i := 0; i < attempts; i++ {
			time.Sleep(150 * time.Millisecond)
			if windowpos.Restore(a.w, p) {
				return
			}
		}
	}()
}

func (a *App) captureWindowPlacement() {
	if p, ok := windowpos.Capture(a.w); ok {
		a.cfg.Window.X = p.X
		a.cfg.Window.Y = p.Y
		a.cfg.Window.PosValid = true
	}
}

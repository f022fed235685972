package sliderapp

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edward-ap/minislider/internal/config"
	"github.com/edward-ap/minislider/internal/slider"
)

func newTestApp(t *testing.T, path string) (*App, *logtest.Hook) {
	t.Helper()
	fa := test.NewApp()
	t.Cleanup(fa.Quit)

	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	a, err := newApp(fa, config.Default(), path, log)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a, hook
}

func bankValues(a *App) []int {
	out := make([]int, len(a.bank))
	for i, s := range a.bank {
		out[i] = s.Value()
	}
	return out
}

func TestNewAppBuildsEverySlider(t *testing.T) {
	a, _ := newTestApp(t, "")
	require.Len(t, a.Sliders(), len(config.Default().Sliders))
	require.Len(t, a.bank, 5)

	assert.Equal(t, "70", a.Form().Get("volume"))
	assert.Equal(t, "0", a.Form().Get("balance"))
	assert.Equal(t, "0", a.Form().Get("band_60"))

	aria := a.bank[0].Accessibility()
	assert.Equal(t, "caption-band-60", aria.LabelledBy)
	assert.Empty(t, aria.Label)
	assert.Equal(t, "0 dB", aria.ValueText)
}

func TestNewAppRejectsBadSlider(t *testing.T) {
	fa := test.NewApp()
	defer fa.Quit()

	cfg := config.Default()
	cfg.Sliders[0].Max = cfg.Sliders[0].Min
	_, err := newApp(fa, cfg, "", logrus.New())
	var rangeErr *slider.InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
}

func TestApplyPresetDrivesBank(t *testing.T) {
	a, _ := newTestApp(t, "")
	a.applyPreset("bass boost")
	assert.Equal(t, []int{6, 4, 1, -1, -3}, bankValues(a))
	assert.Equal(t, "6", a.Form().Get("band_60"))

	a.applyPreset("no such preset")
	assert.Equal(t, []int{6, 4, 1, -1, -3}, bankValues(a))
}

func TestSavePresetUpserts(t *testing.T) {
	a, _ := newTestApp(t, "")
	a.applyPreset("Vocal Boost")
	a.savePreset("  Mine ")
	require.Len(t, a.cfg.Presets, 1)
	assert.Equal(t, config.PresetData{Name: "Mine", Values: []int{-2, 1, 4, 3, -1}}, a.cfg.Presets[0])
	assert.Contains(t, a.presetSel.Options, "Mine")

	a.applyPreset("Flat")
	a.savePreset("mine")
	require.Len(t, a.cfg.Presets, 1)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, a.cfg.Presets[0].Values)

	a.savePreset("   ")
	assert.Len(t, a.cfg.Presets, 1)
}

func TestSubmitLogsEncodedForm(t *testing.T) {
	a, hook := newTestApp(t, "")
	a.submit()
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "form submitted", entry.Message)
	assert.Equal(t, a.Form().Encode(), entry.Data["form"])
}

func TestCloseDestroysSlidersAndSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	a, _ := newTestApp(t, path)
	a.applyPreset("Treble Boost")
	a.savePreset("Bright")

	a.Close()
	a.Close()
	for _, s := range a.Sliders() {
		assert.ErrorIs(t, s.KeyDown(slider.KeyEnd), slider.ErrDestroyed)
	}

	loaded, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Presets, 1)
	assert.Equal(t, "Bright", loaded.Presets[0].Name)
	assert.Equal(t, []int{-3, -1, 1, 4, 6}, loaded.Presets[0].Values)
}

package preset

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edward-ap/minislider/internal/slider"
)

func newBank(t *testing.T, n int, opts slider.Options) ([]Target, *[]int) {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	opts.Logger = l
	var changes []int
	opts.OnChange = func(v int) { changes = append(changes, v) }
	bank := make([]Target, n)
	for i := range bank {
		c, err := slider.New(opts, nil)
		require.NoError(t, err)
		bank[i] = c
	}
	return bank, &changes
}

func TestDefaultPresetsCount(t *testing.T) {
	presets := DefaultPresets()
	const expected = 4
	if len(presets) != expected {
		t.Fatalf("expected %d presets, got %d", expected, len(presets))
	}
	for i, p := range presets {
		if p.Name == "" {
			t.Fatalf("preset %d has empty name", i)
		}
		if len(p.Values) != 5 {
			t.Fatalf("preset %s expected 5 values, got %d", p.Name, len(p.Values))
		}
	}
	presets[0].Values[0] = 99
	assert.Equal(t, 0, DefaultPresets()[0].Values[0])
}

func TestFindByName(t *testing.T) {
	p, ok := FindByName(DefaultPresets(), "bass boost")
	require.True(t, ok)
	assert.Equal(t, 6, p.Values[0])
	_, ok = FindByName(DefaultPresets(), "non-existent")
	assert.False(t, ok)
	assert.Equal(t, []string{"Flat", "Bass Boost", "Treble Boost", "Vocal Boost"}, Names(DefaultPresets()))
}

func TestApplyAndCapture(t *testing.T) {
	bank, changes := newBank(t, 5, slider.Options{Min: -12, Max: 12, Step: 1})
	p, _ := FindByName(DefaultPresets(), "Vocal Boost")

	require.NoError(t, Apply(p, bank))
	got := Capture("Mine", bank)
	assert.Equal(t, p.Values, got.Values)
	assert.Equal(t, "Mine", got.Name)
	assert.NotEmpty(t, *changes)
}

func TestApplyShortPresetSendsRestHome(t *testing.T) {
	bank, _ := newBank(t, 3, slider.Options{Min: 0, Max: 10, DefaultValue: 5})
	require.NoError(t, Apply(Preset{Name: "short", Values: []int{7}}, bank))
	assert.Equal(t, []int{7, 0, 0}, Capture("", bank).Values)
}

func TestDriveToCoarseStep(t *testing.T) {
	bank, _ := newBank(t, 1, slider.Options{Min: 0, Max: 100, Step: 30})
	require.NoError(t, DriveTo(bank[0], 40))
	assert.Equal(t, 60, bank[0].Value(), "smallest stop at or above the target")

	require.NoError(t, DriveTo(bank[0], 95))
	assert.Equal(t, 100, bank[0].Value(), "beyond the last stop ends at full travel")

	require.NoError(t, DriveTo(bank[0], 500))
	assert.Equal(t, 100, bank[0].Value())
}

func TestDriveToFineStep(t *testing.T) {
	bank, _ := newBank(t, 1, slider.Options{Min: -2, Max: 2, Step: 0.25})
	require.NoError(t, DriveTo(bank[0], 1))
	assert.Equal(t, 1, bank[0].Value())
}

func TestApplyOnDestroyedSlider(t *testing.T) {
	bank, _ := newBank(t, 1, slider.Options{Min: 0, Max: 10})
	bank[0].(*slider.Controller).Destroy()
	err := Apply(Preset{Name: "x", Values: []int{3}}, bank)
	require.ErrorIs(t, err, slider.ErrDestroyed)
}

// Package config defines the slider demo configuration format and helpers
// for loading it (viper) or writing the initial file (yaml).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/edward-ap/minislider/internal/slider"
	"github.com/edward-ap/minislider/internal/valuetext"
)

const (
	// AppID is the stable application identifier used by the GUI framework.
	AppID = "io.github.edward-ap.minislider"
	// AppConfigSubdir is the OS-specific directory that holds the config file.
	AppConfigSubdir = "MiniSlider"
	// AppConfigName is the YAML file stored on disk.
	AppConfigName = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. MINISLIDER_LOG_LEVEL.
	EnvPrefix = "MINISLIDER"

	// DefaultWidth is the preferred window width.
	DefaultWidth = 560
	// DefaultHeight is the preferred window height.
	DefaultHeight = 420
	// MinWindowWidth keeps the horizontal sliders usable.
	MinWindowWidth = 320
	// DefaultLogLevel is used when the file names none or an unknown one.
	DefaultLogLevel = "info"
	// DefaultThumbScale halves the inline icon size the thumb is drawn with.
	DefaultThumbScale = 0.5

	// GroupBank marks vertical sliders that presets apply to.
	GroupBank = "bank"
)

// SliderConfig is one slider entry; it maps onto slider.Options.
type SliderConfig struct {
	ID            string  `mapstructure:"id" yaml:"id"`
	Label         string  `mapstructure:"label" yaml:"label"`
	Group         string  `mapstructure:"group" yaml:"group,omitempty"`
	Min           float64 `mapstructure:"min" yaml:"min"`
	Max           float64 `mapstructure:"max" yaml:"max"`
	Step          float64 `mapstructure:"step" yaml:"step,omitempty"`
	Default       float64 `mapstructure:"default" yaml:"default"`
	Orientation   string  `mapstructure:"orientation" yaml:"orientation,omitempty"`
	Name          string  `mapstructure:"name" yaml:"name,omitempty"`
	AriaLabel     string  `mapstructure:"ariaLabel" yaml:"ariaLabel,omitempty"`
	AriaLabeledBy string  `mapstructure:"ariaLabeledBy" yaml:"ariaLabeledBy,omitempty"`
	ValueText     string  `mapstructure:"valueText" yaml:"valueText,omitempty"`
	ThumbInset    float64 `mapstructure:"thumbInset" yaml:"thumbInset,omitempty"`
	Normalization string  `mapstructure:"normalization" yaml:"normalization,omitempty"`
}

// PresetData is a user-defined snapshot of the slider bank.
type PresetData struct {
	Name   string `mapstructure:"name" yaml:"name"`
	Values []int  `mapstructure:"values" yaml:"values"`
}

// WindowConfig sizes the demo window. X and Y are only meaningful when
// PosValid is set, which happens on platforms that can report them.
type WindowConfig struct {
	Width    int  `mapstructure:"width" yaml:"width"`
	Height   int  `mapstructure:"height" yaml:"height"`
	X        int  `mapstructure:"x" yaml:"x,omitempty"`
	Y        int  `mapstructure:"y" yaml:"y,omitempty"`
	PosValid bool `mapstructure:"posValid" yaml:"posValid,omitempty"`
}

// LogConfig controls logrus output.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	// TraceFile, when set, receives debug logs through a rotating writer.
	TraceFile string `mapstructure:"traceFile" yaml:"traceFile,omitempty"`
}

// ThemeConfig tweaks the widget look.
type ThemeConfig struct {
	ThumbScale float64 `mapstructure:"thumbScale" yaml:"thumbScale"`
}

// Config aggregates every setting the demo reads at start-up.
type Config struct {
	Window  WindowConfig   `mapstructure:"window" yaml:"window"`
	Log     LogConfig      `mapstructure:"log" yaml:"log"`
	Theme   ThemeConfig    `mapstructure:"theme" yaml:"theme"`
	Sliders []SliderConfig `mapstructure:"sliders" yaml:"sliders"`
	Presets []PresetData   `mapstructure:"presets" yaml:"presets,omitempty"`
}

// ConfigDir resolves the writable directory that should contain the config file.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppConfigSubdir), nil
}

// ConfigPath is a helper that returns the full path to config.yaml.
func ConfigPath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, AppConfigName), nil
}

// Load reads the config at path (ConfigPath when empty). A missing file is
// first written with defaults for the user to edit. Environment variables
// prefixed with EnvPrefix override scalar settings in either case.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg := Default()
		if err := cfg.Save(path); err != nil {
			// no file to read back; apply env overrides onto the defaults
			if err := newViper().Unmarshal(cfg); err != nil {
				return nil, fmt.Errorf("config parse error: %w", err)
			}
			cfg.applyRuntimeDefaults()
			return cfg, nil
		}
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config read error: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	cfg.applyRuntimeDefaults()
	return cfg, nil
}

// Save writes the configuration as YAML, creating directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Bank returns the sliders that presets apply to, in file order.
func (c *Config) Bank() []SliderConfig {
	var out []SliderConfig
	for _, s := range c.Sliders {
		if s.Group == GroupBank {
			out = append(out, s)
		}
	}
	return out
}

// Options converts the entry to slider options, resolving the value text
// formatter by name.
func (s SliderConfig) Options() (slider.Options, error) {
	format, err := valuetext.Lookup(s.ValueText, valuetext.Range{Min: s.Min, Max: s.Max})
	if err != nil {
		return slider.Options{}, fmt.Errorf("slider %q: %w", s.ID, err)
	}
	opts := slider.Options{
		Min:           s.Min,
		Max:           s.Max,
		Step:          s.Step,
		DefaultValue:  s.Default,
		Orientation:   slider.ParseOrientation(s.Orientation),
		Name:          s.Name,
		AriaLabel:     s.AriaLabel,
		AriaLabeledBy: s.AriaLabeledBy,
		Container:     s.ID,
		ThumbInset:    s.ThumbInset,
		Normalization: slider.ParseNormalization(s.Normalization),
	}
	if format != nil {
		opts.AriaValueText = format
	}
	if opts.AriaLabel == "" && opts.AriaLabeledBy == "" {
		opts.AriaLabel = s.Label
	}
	if err := opts.Validate(); err != nil {
		return slider.Options{}, fmt.Errorf("slider %q: %w", s.ID, err)
	}
	return opts, nil
}

// newViper returns a viper instance with defaults and EnvPrefix overrides.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", DefaultWidth)
	v.SetDefault("window.height", DefaultHeight)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.traceFile", "")
	v.SetDefault("theme.thumbScale", DefaultThumbScale)
}

// Default builds an in-memory config populated with the demo sliders.
func Default() *Config {
	cfg := &Config{
		Window:  WindowConfig{Width: DefaultWidth, Height: DefaultHeight},
		Log:     LogConfig{Level: DefaultLogLevel},
		Theme:   ThemeConfig{ThumbScale: DefaultThumbScale},
		Sliders: defaultSliders(),
		Presets: []PresetData{},
	}
	cfg.applyRuntimeDefaults()
	return cfg
}

func defaultSliders() []SliderConfig {
	out := []SliderConfig{
		{ID: "volume", Label: "Volume", Min: 0, Max: 100, Step: 1, Default: 70, Name: "volume", ValueText: "percent"},
		{ID: "balance", Label: "Balance", Min: -50, Max: 50, Step: 5, Default: 0, Name: "balance", ValueText: "%d"},
		{ID: "buffer", Label: "Buffer", Min: 0, Max: 64 << 20, Step: 4 << 20, Default: 16 << 20, Name: "buffer", ValueText: "ibytes", ThumbInset: 10},
	}
	for _, band := range []string{"60", "250", "1k", "4k", "16k"} {
		out = append(out, SliderConfig{
			ID:          "band-" + band,
			Label:       band + " Hz",
			Group:       GroupBank,
			Min:         -12,
			Max:         12,
			Step:        1,
			Orientation: slider.Vertical.String(),
			Name:        "band_" + band,
			ValueText:   "%d dB",
		})
	}
	return out
}

// applyRuntimeDefaults normalizes config values after a load or when defaults
// are constructed, ensuring the UI always receives sane inputs.
func (c *Config) applyRuntimeDefaults() {
	if c.Window.Width <= 0 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Width < MinWindowWidth {
		c.Window.Width = MinWindowWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = DefaultHeight
	}
	if strings.TrimSpace(c.Log.Level) == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Theme.ThumbScale <= 0 || c.Theme.ThumbScale > 1 {
		c.Theme.ThumbScale = DefaultThumbScale
	}
	if len(c.Sliders) == 0 {
		c.Sliders = defaultSliders()
	}
	for i := range c.Sliders {
		s := &c.Sliders[i]
		s.ID = strings.TrimSpace(s.ID)
		if s.ID == "" {
			s.ID = fmt.Sprintf("slider-%d", i+1)
		}
		if strings.TrimSpace(s.Label) == "" {
			s.Label = s.ID
		}
		s.Group = strings.ToLower(strings.TrimSpace(s.Group))
	}
	if c.Presets == nil {
		c.Presets = []PresetData{}
	}
}

package sliderapp

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/edward-ap/minislider/internal/config"
	"github.com/edward-ap/minislider/internal/render"
	"github.com/edward-ap/minislider/internal/slider"
)

// checkTrack is the headless track every slider is mounted on by Check.
var checkTrack = slider.Track{Width: 200, Height: 200}

// Check builds every configured slider without a GUI, presses keys on each
// one in order and writes the resulting value and accessibility attributes,
// followed by the encoded form. The first invalid slider aborts the check.
func Check(cfg *config.Config, keys []slider.Key, w io.Writer, log logrus.FieldLogger) error {
	if log == nil {
		log = logrus.StandardLogger()
	}
	form := render.NewForm()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, sc := range cfg.Sliders {
		opts, err := sc.Options()
		if err != nil {
			return err
		}
		opts.Logger = log.WithField("slider", sc.ID)

		adapter := render.NewAdapter(opts, form.Mirror())
		ctrl, err := slider.New(opts, adapter)
		if err != nil {
			return fmt.Errorf("slider %q: %w", sc.ID, err)
		}
		surface := slider.NewSurface(checkTrack)
		if err := ctrl.Attach(surface); err != nil {
			return fmt.Errorf("slider %q: %w", sc.ID, err)
		}
		for _, k := range keys {
			surface.KeyDown(k)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", sc.ID, ctrl.Value(), formatAttrs(adapter.State().ARIA.Attrs()))
		ctrl.Destroy()
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "form: %s\n", form.Encode())
	return err
}

// ParseKeys converts a comma-separated list of key names. Blank entries are
// skipped; unknown names are an error.
func ParseKeys(list string) ([]slider.Key, error) {
	var out []slider.Key
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		k := slider.ParseKey(name)
		if k == slider.KeyUnknown {
			return nil, fmt.Errorf("unknown key %q", name)
		}
		out = append(out, k)
	}
	return out, nil
}

func formatAttrs(attrs map[string]string) string {
	names := make([]string, 0, len(attrs))
	for n := range attrs {
		names = append(names, n)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("%s=%q", n, attrs[n])
	}
	return strings.Join(parts, " ")
}

// Package valuetext provides the human-readable renderings used for a
// slider's aria-valuetext, selectable by name from configuration.
package valuetext

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Formatter renders a slider value for assistive technology.
type Formatter func(int) string

// Range gives formatters that depend on the slider bounds access to them.
type Range struct {
	Min, Max float64
}

type factory func(Range) Formatter

var builtins = map[string]factory{
	"plain": func(Range) Formatter { return strconv.Itoa },
	"comma": func(Range) Formatter {
		return func(v int) string { return humanize.Comma(int64(v)) }
	},
	"ordinal": func(Range) Formatter { return humanize.Ordinal },
	"bytes": func(Range) Formatter {
		return func(v int) string {
			if v < 0 {
				return "-" + humanize.Bytes(uint64(-v))
			}
			return humanize.Bytes(uint64(v))
		}
	},
	"ibytes": func(Range) Formatter {
		return func(v int) string {
			if v < 0 {
				return "-" + humanize.IBytes(uint64(-v))
			}
			return humanize.IBytes(uint64(v))
		}
	},
	"percent": func(r Range) Formatter {
		span := r.Max - r.Min
		return func(v int) string {
			if span <= 0 {
				return "0%"
			}
			return humanize.FtoaWithDigits((float64(v)-r.Min)/span*100, 1) + "%"
		}
	},
}

// Names lists the built-in formatter names.
func Names() []string {
	out := make([]string, 0, len(builtins))
	for k := range builtins {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Lookup resolves spec into a Formatter. spec is either a built-in name or a
// fmt template containing exactly one integer verb, e.g. "%d dB". An empty
// spec yields a nil Formatter: the slider publishes no value text.
func Lookup(spec string, r Range) (Formatter, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}
	if f, ok := builtins[strings.ToLower(spec)]; ok {
		return f(r), nil
	}
	if strings.Count(spec, "%") == 1 && (strings.Contains(spec, "%d") || strings.Contains(spec, "%v")) {
		return func(v int) string { return fmt.Sprintf(spec, v) }, nil
	}
	return nil, fmt.Errorf("unknown value text format %q (want one of %s or a %%d template)", spec, strings.Join(Names(), ", "))
}

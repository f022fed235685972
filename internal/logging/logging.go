// Package logging configures the logrus logger shared by the slider core and
// the demo host.
package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var traceEnabled atomic.Bool

// SetTraceLoggingEnabled forces trace level regardless of the configured
// level. Call it before Setup.
func SetTraceLoggingEnabled(enabled bool) {
	traceEnabled.Store(enabled)
}

// TraceLoggingEnabled reports the flag set by SetTraceLoggingEnabled.
func TraceLoggingEnabled() bool {
	return traceEnabled.Load()
}

// Options selects level and destinations.
type Options struct {
	Level string
	// TraceFile additionally receives every entry through a size-rotated
	// writer when non-empty.
	TraceFile string
	// Out defaults to os.Stderr.
	Out io.Writer
}

// Setup builds a logger. An unknown level falls back to info and is
// reported once at warn level.
func Setup(opts Options) (*logrus.Logger, io.Closer) {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: opts.TraceFile != ""})

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	var closer io.Closer = nopCloser{}
	if strings.TrimSpace(opts.TraceFile) != "" {
		rot := &lumberjack.Logger{
			Filename:   opts.TraceFile,
			MaxSize:    5, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
		}
		out = io.MultiWriter(out, rot)
		closer = rot
	}
	l.SetOutput(out)

	level, err := logrus.ParseLevel(strings.TrimSpace(opts.Level))
	if err != nil {
		level = logrus.InfoLevel
		l.WithField("level", opts.Level).Warn("unknown log level, using info")
	}
	if TraceLoggingEnabled() {
		level = logrus.TraceLevel
	}
	l.SetLevel(level)
	return l, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

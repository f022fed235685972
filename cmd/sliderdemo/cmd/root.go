package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/edward-ap/minislider/internal/config"
	"github.com/edward-ap/minislider/internal/logging"
	"github.com/edward-ap/minislider/internal/sliderapp"
)

var (
	configFile string
	logLevel   string
	traceLog   string
)

var rootCmd = &cobra.Command{
	Use:          "sliderdemo",
	Short:        "MiniSlider demo window with horizontal and vertical range sliders",
	SilenceUsage: true,
	RunE:         runGUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&traceLog, "trace-log", "", "also write trace logs to this rotating file")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	log, closer := setupLogging(cfg, cmd.ErrOrStderr())
	defer closer.Close()

	app, err := sliderapp.NewApp(cfg, path, log)
	if err != nil {
		return fmt.Errorf("failed to build window: %w", err)
	}
	app.Run()
	return nil
}

// loadConfig resolves the config path and loads it.
func loadConfig() (*config.Config, string, error) {
	path := strings.TrimSpace(configFile)
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return nil, "", fmt.Errorf("failed to resolve config path: %w", err)
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, path, nil
}

// setupLogging applies flag overrides on top of the config's log section.
func setupLogging(cfg *config.Config, out io.Writer) (*logrus.Logger, io.Closer) {
	opts := logging.Options{Level: cfg.Log.Level, TraceFile: cfg.Log.TraceFile, Out: out}
	if strings.TrimSpace(logLevel) != "" {
		opts.Level = logLevel
	}
	if strings.TrimSpace(traceLog) != "" {
		opts.TraceFile = traceLog
		logging.SetTraceLoggingEnabled(true)
	}
	return logging.Setup(opts)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/weekcal/internal/calendar"
	"github.com/username/weekcal/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// app holds the state shared by all commands
type app struct {
	configPath   string
	calendarName string
	output       string

	cfg      *config.Config
	registry *calendar.Registry
	logger   *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "weekcal",
		Short: "Week-based calendar engine",
		Long:  "Convert, inspect and do arithmetic on dates in ISO, retail 4-4-5 and fiscal week-based calendars",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (default: search ., $HOME/.weekcal, /etc/weekcal)")
	rootCmd.PersistentFlags().StringVarP(&a.calendarName, "calendar", "k", "", "Calendar name (default: default_calendar from config)")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "text", "Output format: text, json, yaml or toml")

	rootCmd.AddCommand(
		a.convertCmd(),
		a.dateCmd(),
		a.infoCmd(),
		a.rangeCmd(),
		a.addCmd(),
		a.listCmd(),
		a.serveCmd(),
	)

	return rootCmd
}

// setup loads the config, sets up logging and builds the calendar registry
func (a *app) setup() error {
	if _, err := newPrinter(a.output); err != nil {
		return err
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	if cfg.Log.File != "" {
		a.logger = initFileLogger(cfg.Log.File, cfg.Log.Level)
	} else {
		a.logger, err = initLogger(cfg.Log.Level)
		if err != nil {
			return err
		}
	}

	a.registry = calendar.NewRegistry(a.logger)
	if err := cfg.Configure(a.registry); err != nil {
		return err
	}
	return nil
}

// calendar returns the calendar selected with --calendar
func (a *app) calendar() (calendar.Calendar, error) {
	return a.registry.Get(a.calendarName)
}

func initLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func initFileLogger(logFile string, level string) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core)
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	return zapLevel
}

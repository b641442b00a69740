package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/username/weekcal/internal/calendar"
	"go.uber.org/zap/zapcore"
)

// Config represents application configuration
type Config struct {
	Log             LogConfig                      `mapstructure:"log"`
	Server          ServerConfig                   `mapstructure:"server"`
	DefaultCalendar string                         `mapstructure:"default_calendar"`
	DefinitionsFile string                         `mapstructure:"definitions_file"` // Extra calendars in a YAML or TOML file
	Calendars       map[string]calendar.Definition `mapstructure:"calendars"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // Empty: log to the console
	Level string `mapstructure:"level"`
}

// ServerConfig represents HTTP API configuration
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// EnvPrefix prefixes every environment variable override, e.g.
// WEEKCAL_SERVER_ADDR
const EnvPrefix = "WEEKCAL"

// Load loads configuration from file. A missing file is not an error when no
// explicit path is given; defaults and the environment still apply.
func Load(configPath string) (*Config, error) {
	// Ignore error: .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("default_calendar", calendar.ISO)
	v.SetDefault("definitions_file", "")

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.weekcal")
		v.AddConfigPath("/etc/weekcal")
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration and reports every problem found
func (c *Config) Validate() error {
	var errs []error

	if c.Log.Level != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
			errs = append(errs, fmt.Errorf("log.level must be debug, info, warn or error, got '%s'", c.Log.Level))
		}
	}
	if c.Server.Addr == "" {
		errs = append(errs, fmt.Errorf("server.addr is required"))
	}

	for name, def := range c.Calendars {
		switch name {
		case calendar.ISO, calendar.NRF, calendar.Gregorian:
			errs = append(errs, fmt.Errorf("calendars.%s: name is reserved for a built-in calendar", name))
			continue
		}
		if err := def.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("calendars.%s: %w", name, err))
		}
	}

	if c.DefaultCalendar == "" {
		errs = append(errs, fmt.Errorf("default_calendar is required"))
	} else if !c.isKnownCalendar(c.DefaultCalendar) {
		errs = append(errs, fmt.Errorf("default_calendar '%s' is not defined", c.DefaultCalendar))
	}

	return errors.Join(errs...)
}

// isKnownCalendar reports whether name is built in or defined inline.
// Calendars from DefinitionsFile are only known once loaded, so any name is
// accepted when that file is set.
func (c *Config) isKnownCalendar(name string) bool {
	switch name {
	case calendar.ISO, calendar.NRF, calendar.Gregorian:
		return true
	}
	if _, ok := c.Calendars[name]; ok {
		return true
	}
	return c.DefinitionsFile != ""
}

// ExpandEnvVars expands environment variables in path settings
func (c *Config) ExpandEnvVars() {
	c.Log.File = os.ExpandEnv(c.Log.File)
	c.DefinitionsFile = os.ExpandEnv(c.DefinitionsFile)
}

// Configure registers the calendars of DefinitionsFile and then the inline
// calendars in r, and selects the default calendar
func (c *Config) Configure(r *calendar.Registry) error {
	if c.DefinitionsFile != "" {
		if err := r.LoadFile(c.DefinitionsFile); err != nil {
			return err
		}
	}
	if err := r.DefineAll(c.Calendars); err != nil {
		return fmt.Errorf("failed to define calendars: %w", err)
	}
	if err := r.SetDefault(c.DefaultCalendar); err != nil {
		return fmt.Errorf("default_calendar: %w", err)
	}
	return nil
}

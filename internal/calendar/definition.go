package calendar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/username/weekcal/pkg/monthcal"
	"github.com/username/weekcal/pkg/weekcal"
	"gopkg.in/yaml.v3"
)

// Definition describes a calendar in configuration. Zero fields take their
// value from Base, or from the weekcal defaults when Base is empty.
type Definition struct {
	Kind               string `mapstructure:"kind" yaml:"kind" toml:"kind"`
	Base               string `mapstructure:"base" yaml:"base" toml:"base"` // "iso", "nrf" or "gregorian"
	Description        string `mapstructure:"description" yaml:"description" toml:"description"`
	MonthOfYear        int    `mapstructure:"month_of_year" yaml:"month_of_year" toml:"month_of_year"`
	DayOfWeek          int    `mapstructure:"day_of_week" yaml:"day_of_week" toml:"day_of_week"`
	MinDaysInFirstWeek int    `mapstructure:"min_days_in_first_week" yaml:"min_days_in_first_week" toml:"min_days_in_first_week"`
	FirstOrLast        string `mapstructure:"first_or_last" yaml:"first_or_last" toml:"first_or_last"`
	Year               string `mapstructure:"year" yaml:"year" toml:"year"`
	WeeksInMonth       []int  `mapstructure:"weeks_in_month" yaml:"weeks_in_month" toml:"weeks_in_month"`
}

// Build creates the calendar described by def under name
func (def Definition) Build(name string) (Calendar, error) {
	kind, err := def.kind()
	if err != nil {
		return nil, fmt.Errorf("calendar %q: %w", name, err)
	}
	if kind == KindMonth {
		cfg, err := def.monthConfig()
		if err != nil {
			return nil, fmt.Errorf("calendar %q: %w", name, err)
		}
		return NewMonthCalendar(name, cfg)
	}
	cfg, err := def.weekConfig()
	if err != nil {
		return nil, fmt.Errorf("calendar %q: %w", name, err)
	}
	return NewWeekCalendar(name, cfg)
}

// Validate checks def without registering it
func (def Definition) Validate() error {
	_, err := def.Build("")
	return err
}

func (def Definition) kind() (Kind, error) {
	switch strings.ToLower(def.Kind) {
	case "":
		if strings.EqualFold(def.Base, "gregorian") {
			return KindMonth, nil
		}
		return KindWeek, nil
	case string(KindWeek):
		return KindWeek, nil
	case string(KindMonth):
		return KindMonth, nil
	}
	return "", &weekcal.ConfigError{Field: "kind", Value: def.Kind, Reason: "must be week or month"}
}

func (def Definition) weekConfig() (weekcal.Config, error) {
	var cfg weekcal.Config
	switch strings.ToLower(def.Base) {
	case "", "default":
		cfg = weekcal.DefaultConfig()
	case "iso":
		cfg = weekcal.ISO()
	case "nrf":
		cfg = weekcal.NRF()
	default:
		return weekcal.Config{}, &weekcal.ConfigError{Field: "base", Value: def.Base, Reason: "must be iso or nrf for a week calendar"}
	}

	var opts []weekcal.Option
	if def.MonthOfYear != 0 {
		opts = append(opts, weekcal.WithMonthOfYear(def.MonthOfYear))
	}
	if def.DayOfWeek != 0 {
		opts = append(opts, weekcal.WithDayOfWeek(def.DayOfWeek))
	}
	if def.MinDaysInFirstWeek != 0 {
		opts = append(opts, weekcal.WithMinDaysInFirstWeek(def.MinDaysInFirstWeek))
	}
	if def.FirstOrLast != "" {
		a, err := weekcal.ParseAnchor(def.FirstOrLast)
		if err != nil {
			return weekcal.Config{}, err
		}
		opts = append(opts, weekcal.WithFirstOrLast(a))
	}
	if def.Year != "" {
		y, err := weekcal.ParseYearDetermination(def.Year)
		if err != nil {
			return weekcal.Config{}, err
		}
		opts = append(opts, weekcal.WithYearDetermination(y))
	}
	if len(def.WeeksInMonth) != 0 {
		if len(def.WeeksInMonth) != 3 {
			return weekcal.Config{}, &weekcal.ConfigError{Field: "weeks_in_month", Value: def.WeeksInMonth, Reason: "must list three months"}
		}
		opts = append(opts, weekcal.WithWeeksInMonth(def.WeeksInMonth[0], def.WeeksInMonth[1], def.WeeksInMonth[2]))
	}

	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.Validate()
}

func (def Definition) monthConfig() (monthcal.Config, error) {
	switch strings.ToLower(def.Base) {
	case "", "gregorian":
	default:
		return monthcal.Config{}, &weekcal.ConfigError{Field: "base", Value: def.Base, Reason: "must be gregorian for a month calendar"}
	}
	if def.DayOfWeek != 0 || def.MinDaysInFirstWeek != 0 || def.FirstOrLast != "" || len(def.WeeksInMonth) != 0 {
		return monthcal.Config{}, &weekcal.ConfigError{Field: "kind", Value: def.Kind, Reason: "month calendars take only month_of_year and year"}
	}

	cfg := monthcal.Gregorian()
	if def.MonthOfYear != 0 {
		cfg.MonthOfYear = def.MonthOfYear
	}
	if def.Year != "" {
		y, err := weekcal.ParseYearDetermination(def.Year)
		if err != nil {
			return monthcal.Config{}, err
		}
		cfg.Year = y
	}
	return cfg.Validate()
}

// definitionFile is the layout of a calendar definitions file
type definitionFile struct {
	Calendars map[string]Definition `yaml:"calendars" toml:"calendars"`
}

// LoadDefinitions reads calendar definitions from a YAML or TOML file,
// chosen by extension.
func LoadDefinitions(path string) (map[string]Definition, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}

	var file definitionFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &file); err != nil {
			return nil, fmt.Errorf("failed to parse YAML definitions: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(content, &file); err != nil {
			return nil, fmt.Errorf("failed to parse TOML definitions: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported definitions format: %q", ext)
	}
	return file.Calendars, nil
}

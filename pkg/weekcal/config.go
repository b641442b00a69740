package weekcal

import (
	"fmt"
	"strings"
)

// Anchor selects whether a calendar-year is defined by its first week or by
// its last week.
type Anchor int

const (
	// First anchors the year at its start: week 1 is the first week holding
	// at least MinDaysInFirstWeek days of MonthOfYear.
	First Anchor = iota + 1
	// Last anchors the year at its end: the final week ends on DayOfWeek and
	// holds at least MinDaysInFirstWeek days of MonthOfYear.
	Last
)

func (a Anchor) String() string {
	switch a {
	case First:
		return "first"
	case Last:
		return "last"
	}
	return fmt.Sprintf("Anchor(%d)", int(a))
}

// ParseAnchor parses "first" or "last", case-insensitively.
func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first":
		return First, nil
	case "last":
		return Last, nil
	}
	return 0, &ConfigError{Field: "first_or_last", Value: s, Reason: "must be first or last"}
}

// YearDetermination selects which Gregorian year labels a calendar-year that
// spans two Gregorian years.
type YearDetermination int

const (
	// Majority labels the year by the Gregorian year holding most of its
	// weeks.
	Majority YearDetermination = iota + 1
	// Beginning labels the year by the Gregorian year it starts in.
	Beginning
	// Ending labels the year by the Gregorian year it ends in.
	Ending
)

func (y YearDetermination) String() string {
	switch y {
	case Majority:
		return "majority"
	case Beginning:
		return "beginning"
	case Ending:
		return "ending"
	}
	return fmt.Sprintf("YearDetermination(%d)", int(y))
}

// ParseYearDetermination parses "majority", "beginning" or "ending".
func ParseYearDetermination(s string) (YearDetermination, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "majority":
		return Majority, nil
	case "beginning":
		return Beginning, nil
	case "ending":
		return Ending, nil
	}
	return 0, &ConfigError{Field: "year", Value: s, Reason: "must be majority, beginning or ending"}
}

// Config describes a week-based calendar. A Config is a plain value; use
// Validate or NewConfig before handing it to New.
type Config struct {
	// MonthOfYear is the Gregorian month, 1..12, the year is anchored to.
	MonthOfYear int
	// DayOfWeek is the anchor weekday, 1 for Monday through 7 for Sunday.
	// With First it is the first day of every week, with Last it is the last
	// day of the year.
	DayOfWeek int
	// MinDaysInFirstWeek is how many days of MonthOfYear the anchoring week
	// must contain, 1..7.
	MinDaysInFirstWeek int
	FirstOrLast        Anchor
	Year               YearDetermination
	// WeeksInMonth distributes the 13 weeks of a quarter over its three
	// months.
	WeeksInMonth [3]int
}

var weekPatterns = [][3]int{{4, 4, 5}, {4, 5, 4}, {5, 4, 4}}

// Option adjusts a Config under construction.
type Option func(*Config)

// WithMonthOfYear sets the anchor month.
func WithMonthOfYear(m int) Option { return func(c *Config) { c.MonthOfYear = m } }

// WithDayOfWeek sets the anchor weekday.
func WithDayOfWeek(d int) Option { return func(c *Config) { c.DayOfWeek = d } }

// WithMinDaysInFirstWeek sets the minimum number of anchor-month days in the
// anchoring week.
func WithMinDaysInFirstWeek(n int) Option { return func(c *Config) { c.MinDaysInFirstWeek = n } }

// WithFirstOrLast sets the anchor.
func WithFirstOrLast(a Anchor) Option { return func(c *Config) { c.FirstOrLast = a } }

// WithYearDetermination sets how a year spanning two Gregorian years is
// labelled.
func WithYearDetermination(y YearDetermination) Option { return func(c *Config) { c.Year = y } }

// WithWeeksInMonth sets the weeks-per-month pattern of every quarter.
func WithWeeksInMonth(m1, m2, m3 int) Option {
	return func(c *Config) { c.WeeksInMonth = [3]int{m1, m2, m3} }
}

// DefaultConfig returns the default configuration: a year starting on the
// Monday on or before January 1st, 4-4-5 months.
func DefaultConfig() Config {
	return Config{
		MonthOfYear:        1,
		DayOfWeek:          1,
		MinDaysInFirstWeek: 1,
		FirstOrLast:        First,
		Year:               Majority,
		WeeksInMonth:       [3]int{4, 4, 5},
	}
}

// NewConfig applies opts on top of DefaultConfig and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.Validate()
}

// ISO returns the ISO 8601 week calendar: weeks start on Monday and week 1
// contains January 4th.
func ISO() Config {
	cfg := DefaultConfig()
	cfg.MinDaysInFirstWeek = 4
	return cfg
}

// NRF returns the National Retail Federation 4-5-4 calendar: the year ends on
// the Saturday nearest the end of January.
func NRF() Config {
	return Config{
		MonthOfYear:        1,
		DayOfWeek:          6,
		MinDaysInFirstWeek: 4,
		FirstOrLast:        Last,
		Year:               Majority,
		WeeksInMonth:       [3]int{4, 5, 4},
	}
}

// Validate checks every field and returns c unchanged when it is valid, so
// validating twice is a no-op. The error is a *ConfigError naming the first
// offending field.
func (c Config) Validate() (Config, error) {
	switch {
	case c.MonthOfYear < 1 || c.MonthOfYear > 12:
		return Config{}, &ConfigError{Field: "month_of_year", Value: c.MonthOfYear, Reason: "must be in 1..12"}
	case c.DayOfWeek < 1 || c.DayOfWeek > 7:
		return Config{}, &ConfigError{Field: "day_of_week", Value: c.DayOfWeek, Reason: "must be in 1..7"}
	case c.MinDaysInFirstWeek < 1 || c.MinDaysInFirstWeek > 7:
		return Config{}, &ConfigError{Field: "min_days_in_first_week", Value: c.MinDaysInFirstWeek, Reason: "must be in 1..7"}
	case c.FirstOrLast != First && c.FirstOrLast != Last:
		return Config{}, &ConfigError{Field: "first_or_last", Value: c.FirstOrLast, Reason: "must be first or last"}
	case c.Year != Majority && c.Year != Beginning && c.Year != Ending:
		return Config{}, &ConfigError{Field: "year", Value: c.Year, Reason: "must be majority, beginning or ending"}
	}
	for _, p := range weekPatterns {
		if c.WeeksInMonth == p {
			return c, nil
		}
	}
	return Config{}, &ConfigError{Field: "weeks_in_month", Value: c.WeeksInMonth, Reason: "must be one of [4 4 5], [4 5 4], [5 4 4]"}
}

func (c Config) String() string {
	return fmt.Sprintf("{month_of_year:%d day_of_week:%d min_days:%d %s %s weeks_in_month:%v}",
		c.MonthOfYear, c.DayOfWeek, c.MinDaysInFirstWeek, c.FirstOrLast, c.Year, c.WeeksInMonth)
}

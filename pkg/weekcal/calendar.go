// Package weekcal implements week-based calendars: 52/53-week fiscal, retail
// and ISO-style calendars derived from the proleptic Gregorian calendar.
//
// A calendar-year consists of whole weeks. Its boundary is fixed by a Config:
// an anchor month, an anchor weekday, a minimum number of anchor-month days
// in the anchoring week, whether the first or the last week is anchored, and
// which Gregorian year gives the calendar-year its number. Every year has 52
// weeks, or 53 in a long year. Quarters have 13 weeks each and split into
// three months following a 4-4-5, 4-5-4 or 5-4-4 pattern; the 53rd week of a
// long year belongs to the twelfth month.
//
// Dates are (year, week, day) triples. All conversions go through epoch days
// as defined by package dateutil, so a week date converts to any other
// calendar by way of its epoch day.
//
// A *Calendar is immutable apart from an internal memo of year boundaries and
// is safe for concurrent use.
package weekcal

import (
	"fmt"

	"github.com/username/weekcal/internal/cache"
)

const (
	daysInWeek     = 7
	weeksInQuarter = 13
	monthsInYear   = 12
)

// Date is a date in a week-based calendar. Day is the day of the week counted
// from the first day of the calendar's weeks, not an ISO weekday.
type Date struct {
	Year int
	Week int
	Day  int
}

func (d Date) String() string {
	return fmt.Sprintf("%d-W%02d-%d", d.Year, d.Week, d.Day)
}

// Calendar computes dates for one Config.
type Calendar struct {
	cfg   Config
	spans cache.Memo[int, YearSpan]
}

// New validates cfg and returns a Calendar for it.
func New(cfg Config) (*Calendar, error) {
	cfg, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	return &Calendar{cfg: cfg}, nil
}

// MustNew is like New but panics on an invalid Config. It is meant for
// package-level calendars built from constant configurations.
func MustNew(cfg Config) *Calendar {
	c, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// Config returns the calendar's configuration.
func (c *Calendar) Config() Config {
	return c.cfg
}

// ValidDate reports whether d exists in the calendar.
func (c *Calendar) ValidDate(d Date) bool {
	return c.checkDate(d) == nil
}

func (c *Calendar) checkDate(d Date) error {
	if max := c.WeeksInYear(d.Year); d.Week < 1 || d.Week > max {
		return &DateError{Year: d.Year, Field: "week", Value: d.Week, Max: max}
	}
	if d.Day < 1 || d.Day > daysInWeek {
		return &DateError{Year: d.Year, Field: "day", Value: d.Day, Max: daysInWeek}
	}
	return nil
}

func (c *Calendar) checkMonth(year, month int) error {
	if month < 1 || month > monthsInYear {
		return &DateError{Year: year, Field: "month", Value: month, Max: monthsInYear}
	}
	return nil
}

func (c *Calendar) checkQuarter(year, quarter int) error {
	if quarter < 1 || quarter > 4 {
		return &DateError{Year: year, Field: "quarter", Value: quarter, Max: 4}
	}
	return nil
}

// Package monthcal implements month-based calendars: the Gregorian calendar
// with the year starting on the first day of a month other than January,
// as used by many fiscal years.
package monthcal

import (
	"fmt"

	"github.com/username/weekcal/pkg/dateutil"
	"github.com/username/weekcal/pkg/weekcal"
)

const monthsInYear = 12

// Config describes a month-based calendar.
type Config struct {
	// MonthOfYear is the Gregorian month the year starts in.
	MonthOfYear int
	// Year selects the Gregorian year that numbers a year spanning two.
	Year weekcal.YearDetermination
}

// Gregorian is the plain Gregorian calendar.
func Gregorian() Config {
	return Config{MonthOfYear: 1, Year: weekcal.Majority}
}

// Validate returns c unchanged if it is valid.
func (c Config) Validate() (Config, error) {
	if c.MonthOfYear < 1 || c.MonthOfYear > monthsInYear {
		return Config{}, &weekcal.ConfigError{Field: "month_of_year", Value: c.MonthOfYear, Reason: "must be in 1..12"}
	}
	switch c.Year {
	case weekcal.Majority, weekcal.Beginning, weekcal.Ending:
		return c, nil
	}
	return Config{}, &weekcal.ConfigError{Field: "year", Value: c.Year, Reason: "must be majority, beginning or ending"}
}

// Date is a date in a month-based calendar. Month counts from the first
// month of the year, so Month 1 of an April calendar is Gregorian April.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%d-M%02d-%02d", d.Year, d.Month, d.Day)
}

// Calendar computes dates for one month-based Config.
type Calendar struct {
	cfg Config
}

// New validates cfg and returns a Calendar for it.
func New(cfg Config) (*Calendar, error) {
	cfg, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	return &Calendar{cfg: cfg}, nil
}

// Config returns the calendar's configuration.
func (c *Calendar) Config() Config {
	return c.cfg
}

// startYear returns the Gregorian year in which year begins.
func (c *Calendar) startYear(year int) int {
	if c.cfg.MonthOfYear == 1 {
		return year
	}
	switch c.cfg.Year {
	case weekcal.Beginning:
		return year
	case weekcal.Ending:
		return year - 1
	}
	if c.cfg.MonthOfYear <= 6 {
		return year
	}
	return year - 1
}

// GregorianMonth returns the Gregorian year and month of month in year.
func (c *Calendar) GregorianMonth(year, month int) (gyear, gmonth int) {
	offset := c.cfg.MonthOfYear - 1 + month - 1
	return c.startYear(year) + offset/monthsInYear, offset%monthsInYear + 1
}

// DaysInMonth returns the number of days in month of year.
func (c *Calendar) DaysInMonth(year, month int) (int, error) {
	if month < 1 || month > monthsInYear {
		return 0, &weekcal.DateError{Year: year, Field: "month", Value: month, Max: monthsInYear}
	}
	return dateutil.DaysInMonth(c.GregorianMonth(year, month)), nil
}

// DaysInYear returns 365 or 366.
func (c *Calendar) DaysInYear(year int) int {
	r := c.YearRange(year)
	return r.Len()
}

// IsLeapYear reports whether year contains a February 29th.
func (c *Calendar) IsLeapYear(year int) bool {
	return c.DaysInYear(year) == 366
}

// ValidDate reports whether d exists.
func (c *Calendar) ValidDate(d Date) bool {
	return c.checkDate(d) == nil
}

func (c *Calendar) checkDate(d Date) error {
	days, err := c.DaysInMonth(d.Year, d.Month)
	if err != nil {
		return err
	}
	if d.Day < 1 || d.Day > days {
		return &weekcal.DateError{Year: d.Year, Field: "day of month", Value: d.Day, Max: days}
	}
	return nil
}

// EpochDay converts d to an epoch day.
func (c *Calendar) EpochDay(d Date) (int, error) {
	if err := c.checkDate(d); err != nil {
		return 0, err
	}
	gy, gm := c.GregorianMonth(d.Year, d.Month)
	return dateutil.EpochDay(gy, gm, d.Day), nil
}

// FromEpochDay returns the date of epoch day e.
func (c *Calendar) FromEpochDay(e int) Date {
	gy, gm, gd := dateutil.FromEpochDay(e)
	start, month := gy, gm-c.cfg.MonthOfYear+1
	if month < 1 {
		month += monthsInYear
		start--
	}
	// A year is labelled either by the Gregorian year it starts in or by
	// the following one; startYear(0) tells which.
	return Date{Year: start - c.startYear(0), Month: month, Day: gd}
}

// QuarterOfYear returns the quarter of d.
func (c *Calendar) QuarterOfYear(d Date) (int, error) {
	if err := c.checkDate(d); err != nil {
		return 0, err
	}
	return (d.Month-1)/3 + 1, nil
}

// YearRange returns the days of year.
func (c *Calendar) YearRange(year int) weekcal.Range {
	first, _ := c.MonthRange(year, 1)
	last, _ := c.MonthRange(year, monthsInYear)
	return weekcal.Range{First: first.First, Last: last.Last}
}

// QuarterRange returns the days of quarter 1..4 of year.
func (c *Calendar) QuarterRange(year, quarter int) (weekcal.Range, error) {
	if quarter < 1 || quarter > 4 {
		return weekcal.Range{}, &weekcal.DateError{Year: year, Field: "quarter", Value: quarter, Max: 4}
	}
	first, _ := c.MonthRange(year, quarter*3-2)
	last, _ := c.MonthRange(year, quarter*3)
	return weekcal.Range{First: first.First, Last: last.Last}, nil
}

// MonthRange returns the days of month of year.
func (c *Calendar) MonthRange(year, month int) (weekcal.Range, error) {
	days, err := c.DaysInMonth(year, month)
	if err != nil {
		return weekcal.Range{}, err
	}
	gy, gm := c.GregorianMonth(year, month)
	first := dateutil.EpochDay(gy, gm, 1)
	return weekcal.Range{First: first, Last: first + days - 1}, nil
}

// Plus adds n units to d. Months, quarters and years keep the day of month
// and fail with a *weekcal.DateError when it does not exist in the target
// month, unless coerce clamps it to the month's last day.
func (c *Calendar) Plus(d Date, unit weekcal.Unit, n int, coerce bool) (Date, error) {
	if err := weekcal.CheckYear(d.Year); err != nil {
		return Date{}, err
	}
	if err := c.checkDate(d); err != nil {
		return Date{}, err
	}

	// Days per unit, for bounding n before it is scaled.
	var step, months int
	switch unit {
	case weekcal.Years:
		step, months = 365, monthsInYear
	case weekcal.Quarters:
		step, months = 90, 3
	case weekcal.Months:
		step, months = 28, 1
	case weekcal.Weeks:
		step = 7
	case weekcal.Days:
		step = 1
	default:
		return Date{}, fmt.Errorf("plus: unknown unit %v", unit)
	}
	if err := weekcal.CheckSteps(n, step, unit); err != nil {
		return Date{}, err
	}
	if months > 0 {
		return c.plusMonths(d, n*months, coerce)
	}
	return c.plusDays(d, n*step)
}

func (c *Calendar) plusDays(d Date, n int) (Date, error) {
	e, _ := c.EpochDay(d)
	got := c.FromEpochDay(e + n)
	if err := weekcal.CheckYear(got.Year); err != nil {
		return Date{}, err
	}
	return got, nil
}

// plusMonths needs no walk: every month length is known from the Gregorian
// calendar directly.
func (c *Calendar) plusMonths(d Date, n int, coerce bool) (Date, error) {
	idx := d.Year*monthsInYear + d.Month - 1 + n
	year, month := idx/monthsInYear, idx%monthsInYear
	if month < 0 {
		year--
		month += monthsInYear
	}
	month++
	if err := weekcal.CheckYear(year); err != nil {
		return Date{}, err
	}

	days, _ := c.DaysInMonth(year, month)
	day := d.Day
	if day > days {
		if !coerce {
			return Date{}, &weekcal.DateError{Year: year, Field: "day of month", Value: day, Max: days}
		}
		day = days
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

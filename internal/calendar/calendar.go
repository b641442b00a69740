package calendar

import (
	"github.com/username/weekcal/pkg/dateutil"
	"github.com/username/weekcal/pkg/weekcal"
)

// Kind tells how a calendar divides its year
type Kind string

const (
	KindWeek  Kind = "week"
	KindMonth Kind = "month"
)

// Date is a calendar date in either kind of calendar. Week calendars use
// Week and Day (day of week 1..7), month calendars use Month and Day (day of
// month).
type Date struct {
	Year  int `json:"year" yaml:"year" toml:"year"`
	Week  int `json:"week,omitempty" yaml:"week,omitempty" toml:"week,omitempty"`
	Month int `json:"month,omitempty" yaml:"month,omitempty" toml:"month,omitempty"`
	Day   int `json:"day" yaml:"day" toml:"day"`
}

// DayInfo represents everything a calendar knows about a single day
type DayInfo struct {
	Calendar   string `json:"calendar" yaml:"calendar" toml:"calendar"`
	Gregorian  string `json:"gregorian" yaml:"gregorian" toml:"gregorian"`
	EpochDay   int    `json:"epoch_day" yaml:"epoch_day" toml:"epoch_day"`
	Date       Date   `json:"date" yaml:"date" toml:"date"`
	Label      string `json:"label" yaml:"label" toml:"label"`
	Quarter    int    `json:"quarter" yaml:"quarter" toml:"quarter"`
	Month      int    `json:"month" yaml:"month" toml:"month"`
	DayOfMonth int    `json:"day_of_month" yaml:"day_of_month" toml:"day_of_month"`
	DayOfYear  int    `json:"day_of_year" yaml:"day_of_year" toml:"day_of_year"`
	DayOfWeek  int    `json:"day_of_week" yaml:"day_of_week" toml:"day_of_week"`
}

// YearInfo represents calendar information for a whole year
type YearInfo struct {
	Calendar      string `json:"calendar" yaml:"calendar" toml:"calendar"`
	Year          int    `json:"year" yaml:"year" toml:"year"`
	First         string `json:"first" yaml:"first" toml:"first"`
	Last          string `json:"last" yaml:"last" toml:"last"`
	Days          int    `json:"days" yaml:"days" toml:"days"`
	Weeks         int    `json:"weeks,omitempty" yaml:"weeks,omitempty" toml:"weeks,omitempty"`
	Long          bool   `json:"long" yaml:"long" toml:"long"`
	GregorianFrom int    `json:"gregorian_from" yaml:"gregorian_from" toml:"gregorian_from"`
	GregorianTo   int    `json:"gregorian_to" yaml:"gregorian_to" toml:"gregorian_to"`
}

// Calendar is the capability set shared by week- and month-based calendars.
// Every date is reachable through epoch days, which is how calendars of
// different kinds are converted into each other.
type Calendar interface {
	Name() string
	Kind() Kind
	// Describe returns a one-line summary of the configuration.
	Describe() string

	// EpochDay converts d, failing with weekcal.ErrInvalidDate when d does
	// not exist.
	EpochDay(d Date) (int, error)
	FromEpochDay(e int) Date
	// Format renders d in the calendar's own notation.
	Format(d Date) string

	DayInfo(e int) DayInfo
	YearInfo(year int) YearInfo

	// Range returns the days of the n-th unit of year. Years ignore n;
	// days are not a range unit.
	Range(unit weekcal.Unit, year, n int) (weekcal.Range, error)
	Plus(d Date, unit weekcal.Unit, n int, coerce bool) (Date, error)
}

// Convert maps d from one calendar into another through its epoch day.
func Convert(from, to Calendar, d Date) (Date, error) {
	e, err := from.EpochDay(d)
	if err != nil {
		return Date{}, err
	}
	return to.FromEpochDay(e), nil
}

// Summary describes a registered calendar
type Summary struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Kind    Kind   `json:"kind" yaml:"kind" toml:"kind"`
	Config  string `json:"config" yaml:"config" toml:"config"`
	Default bool   `json:"default" yaml:"default" toml:"default"`
}

// RangeInfo describes the days of one unit of a year
type RangeInfo struct {
	Calendar string `json:"calendar" yaml:"calendar" toml:"calendar"`
	Unit     string `json:"unit" yaml:"unit" toml:"unit"`
	Year     int    `json:"year" yaml:"year" toml:"year"`
	N        int    `json:"n,omitempty" yaml:"n,omitempty" toml:"n,omitempty"`
	First    string `json:"first" yaml:"first" toml:"first"`
	Last     string `json:"last" yaml:"last" toml:"last"`
	Days     int    `json:"days" yaml:"days" toml:"days"`
}

// AddResult is the outcome of calendar arithmetic
type AddResult struct {
	Unit   string  `json:"unit" yaml:"unit" toml:"unit"`
	N      int     `json:"n" yaml:"n" toml:"n"`
	Coerce bool    `json:"coerce" yaml:"coerce" toml:"coerce"`
	From   DayInfo `json:"from" yaml:"from" toml:"from"`
	To     DayInfo `json:"to" yaml:"to" toml:"to"`
}

// Summarize describes c; defaultName marks the registry default
func Summarize(c Calendar, defaultName string) Summary {
	return Summary{
		Name:    c.Name(),
		Kind:    c.Kind(),
		Config:  c.Describe(),
		Default: c.Name() == defaultName,
	}
}

// DescribeRange returns the n-th unit of year in c
func DescribeRange(c Calendar, unit weekcal.Unit, year, n int) (RangeInfo, error) {
	r, err := c.Range(unit, year, n)
	if err != nil {
		return RangeInfo{}, err
	}
	if unit == weekcal.Years {
		n = 0
	}
	return RangeInfo{
		Calendar: c.Name(),
		Unit:     unit.String(),
		Year:     year,
		N:        n,
		First:    dateutil.Format(r.First),
		Last:     dateutil.Format(r.Last),
		Days:     r.Len(),
	}, nil
}

// Add adds n units to d in c and describes both ends
func Add(c Calendar, d Date, unit weekcal.Unit, n int, coerce bool) (AddResult, error) {
	from, err := c.EpochDay(d)
	if err != nil {
		return AddResult{}, err
	}
	got, err := c.Plus(d, unit, n, coerce)
	if err != nil {
		return AddResult{}, err
	}
	to, err := c.EpochDay(got)
	if err != nil {
		return AddResult{}, err
	}
	return AddResult{
		Unit:   unit.String(),
		N:      n,
		Coerce: coerce,
		From:   c.DayInfo(from),
		To:     c.DayInfo(to),
	}, nil
}

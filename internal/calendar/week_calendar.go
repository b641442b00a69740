package calendar

import (
	"errors"
	"fmt"

	"github.com/username/weekcal/pkg/dateutil"
	"github.com/username/weekcal/pkg/weekcal"
)

// ErrUnsupportedUnit is returned by Range for units that do not describe a
// range of a year.
var ErrUnsupportedUnit = errors.New("unsupported range unit")

// WeekCalendar implements Calendar on top of a week-based weekcal.Calendar
type WeekCalendar struct {
	name string
	cal  *weekcal.Calendar
}

// NewWeekCalendar creates a named week-based calendar for cfg
func NewWeekCalendar(name string, cfg weekcal.Config) (*WeekCalendar, error) {
	cal, err := weekcal.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("calendar %q: %w", name, err)
	}
	return &WeekCalendar{name: name, cal: cal}, nil
}

func (wc *WeekCalendar) Name() string { return wc.name }

func (wc *WeekCalendar) Kind() Kind { return KindWeek }

func (wc *WeekCalendar) Describe() string {
	return "week " + wc.cal.Config().String()
}

// Engine exposes the underlying week calendar
func (wc *WeekCalendar) Engine() *weekcal.Calendar { return wc.cal }

func (wc *WeekCalendar) EpochDay(d Date) (int, error) {
	return wc.cal.EpochDay(toWeekDate(d))
}

func (wc *WeekCalendar) FromEpochDay(e int) Date {
	return fromWeekDate(wc.cal.FromEpochDay(e))
}

func (wc *WeekCalendar) Format(d Date) string {
	return toWeekDate(d).String()
}

func (wc *WeekCalendar) DayInfo(e int) DayInfo {
	pos := wc.cal.Locate(e)
	return DayInfo{
		Calendar:   wc.name,
		Gregorian:  dateutil.Format(e),
		EpochDay:   e,
		Date:       fromWeekDate(pos.Date),
		Label:      pos.Date.String(),
		Quarter:    pos.Quarter,
		Month:      pos.Month,
		DayOfMonth: pos.DayOfMonth,
		DayOfYear:  pos.DayOfYear,
		DayOfWeek:  dateutil.DayOfWeek(e),
	}
}

func (wc *WeekCalendar) YearInfo(year int) YearInfo {
	span := wc.cal.Span(year)
	from, to := wc.cal.GregorianYears(year)
	return YearInfo{
		Calendar:      wc.name,
		Year:          year,
		First:         dateutil.Format(span.First),
		Last:          dateutil.Format(span.Last),
		Days:          span.Days(),
		Weeks:         span.Weeks(),
		Long:          wc.cal.IsLongYear(year),
		GregorianFrom: from,
		GregorianTo:   to,
	}
}

func (wc *WeekCalendar) Range(unit weekcal.Unit, year, n int) (weekcal.Range, error) {
	switch unit {
	case weekcal.Years:
		return wc.cal.YearRange(year), nil
	case weekcal.Quarters:
		return wc.cal.QuarterRange(year, n)
	case weekcal.Months:
		return wc.cal.MonthRange(year, n)
	case weekcal.Weeks:
		return wc.cal.WeekRange(year, n)
	}
	return weekcal.Range{}, fmt.Errorf("%w: %v", ErrUnsupportedUnit, unit)
}

func (wc *WeekCalendar) Plus(d Date, unit weekcal.Unit, n int, coerce bool) (Date, error) {
	got, err := wc.cal.Plus(toWeekDate(d), unit, n, coerce)
	if err != nil {
		return Date{}, err
	}
	return fromWeekDate(got), nil
}

func toWeekDate(d Date) weekcal.Date {
	return weekcal.Date{Year: d.Year, Week: d.Week, Day: d.Day}
}

func fromWeekDate(d weekcal.Date) Date {
	return Date{Year: d.Year, Week: d.Week, Day: d.Day}
}

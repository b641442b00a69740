package calendar

import (
	"fmt"

	"github.com/username/weekcal/pkg/dateutil"
	"github.com/username/weekcal/pkg/monthcal"
	"github.com/username/weekcal/pkg/weekcal"
)

// MonthCalendar implements Calendar on top of a month-based monthcal.Calendar
type MonthCalendar struct {
	name string
	cal  *monthcal.Calendar
}

// NewMonthCalendar creates a named month-based calendar for cfg
func NewMonthCalendar(name string, cfg monthcal.Config) (*MonthCalendar, error) {
	cal, err := monthcal.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("calendar %q: %w", name, err)
	}
	return &MonthCalendar{name: name, cal: cal}, nil
}

func (mc *MonthCalendar) Name() string { return mc.name }

func (mc *MonthCalendar) Kind() Kind { return KindMonth }

func (mc *MonthCalendar) Describe() string {
	cfg := mc.cal.Config()
	return fmt.Sprintf("month {month_of_year:%d %s}", cfg.MonthOfYear, cfg.Year)
}

func (mc *MonthCalendar) EpochDay(d Date) (int, error) {
	return mc.cal.EpochDay(toMonthDate(d))
}

func (mc *MonthCalendar) FromEpochDay(e int) Date {
	return fromMonthDate(mc.cal.FromEpochDay(e))
}

func (mc *MonthCalendar) Format(d Date) string {
	return toMonthDate(d).String()
}

func (mc *MonthCalendar) DayInfo(e int) DayInfo {
	md := mc.cal.FromEpochDay(e)
	first := mc.cal.YearRange(md.Year).First
	return DayInfo{
		Calendar:   mc.name,
		Gregorian:  dateutil.Format(e),
		EpochDay:   e,
		Date:       fromMonthDate(md),
		Label:      md.String(),
		Quarter:    (md.Month-1)/3 + 1,
		Month:      md.Month,
		DayOfMonth: md.Day,
		DayOfYear:  e - first + 1,
		DayOfWeek:  dateutil.DayOfWeek(e),
	}
}

func (mc *MonthCalendar) YearInfo(year int) YearInfo {
	r := mc.cal.YearRange(year)
	fy, _, _ := dateutil.FromEpochDay(r.First)
	ly, _, _ := dateutil.FromEpochDay(r.Last)
	return YearInfo{
		Calendar:      mc.name,
		Year:          year,
		First:         dateutil.Format(r.First),
		Last:          dateutil.Format(r.Last),
		Days:          r.Len(),
		Long:          mc.cal.IsLeapYear(year),
		GregorianFrom: fy,
		GregorianTo:   ly,
	}
}

func (mc *MonthCalendar) Range(unit weekcal.Unit, year, n int) (weekcal.Range, error) {
	switch unit {
	case weekcal.Years:
		return mc.cal.YearRange(year), nil
	case weekcal.Quarters:
		return mc.cal.QuarterRange(year, n)
	case weekcal.Months:
		return mc.cal.MonthRange(year, n)
	}
	return weekcal.Range{}, fmt.Errorf("%w: %v", ErrUnsupportedUnit, unit)
}

func (mc *MonthCalendar) Plus(d Date, unit weekcal.Unit, n int, coerce bool) (Date, error) {
	got, err := mc.cal.Plus(toMonthDate(d), unit, n, coerce)
	if err != nil {
		return Date{}, err
	}
	return fromMonthDate(got), nil
}

func toMonthDate(d Date) monthcal.Date {
	return monthcal.Date{Year: d.Year, Month: d.Month, Day: d.Day}
}

func fromMonthDate(d monthcal.Date) Date {
	return Date{Year: d.Year, Month: d.Month, Day: d.Day}
}

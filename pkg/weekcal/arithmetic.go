package weekcal

import (
	"fmt"
	"strings"

	"github.com/username/weekcal/pkg/dateutil"
)

// Unit is a calendar unit for Plus.
type Unit int

const (
	Years Unit = iota + 1
	Quarters
	Months
	Weeks
	Days
)

func (u Unit) String() string {
	switch u {
	case Years:
		return "years"
	case Quarters:
		return "quarters"
	case Months:
		return "months"
	case Weeks:
		return "weeks"
	case Days:
		return "days"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit accepts the singular or plural unit name.
func ParseUnit(s string) (Unit, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s") {
	case "year":
		return Years, nil
	case "quarter":
		return Quarters, nil
	case "month":
		return Months, nil
	case "week":
		return Weeks, nil
	case "day":
		return Days, nil
	}
	return 0, fmt.Errorf("unknown unit %q", s)
}

// MaxMonthSteps bounds month and quarter arithmetic. Month lengths depend on
// which years are long, so adding months walks one month at a time.
const MaxMonthSteps = 120000

// MaxYear bounds the years arithmetic accepts and produces, in either
// direction.
const MaxYear = 1000000

// maxDaySteps is more days than lie between -MaxYear and MaxYear, and small
// enough that a week count below it cannot overflow when turned into days.
const maxDaySteps = 2 * (MaxYear + 1) * 371

// CheckYear returns an error matching ErrOutOfRange when year is beyond
// MaxYear.
func CheckYear(year int) error {
	if year > MaxYear || year < -MaxYear {
		return fmt.Errorf("year %d beyond %d: %w", year, MaxYear, ErrOutOfRange)
	}
	return nil
}

// CheckSteps returns an error matching ErrOutOfRange when n units of size
// step, in days, would certainly leave the supported years.
func CheckSteps(n, step int, unit Unit) error {
	if n > maxDaySteps/step || n < -maxDaySteps/step {
		return fmt.Errorf("add %d %s: %w", n, unit, ErrOutOfRange)
	}
	return nil
}

// Plus adds n units to d. Weeks and days are exact. Years keep the week and
// day; months and quarters keep the day of month. When the kept component
// does not exist in the target year or month, Plus fails with a *DateError
// unless coerce is set, in which case it is clamped to the last valid value.
func (c *Calendar) Plus(d Date, unit Unit, n int, coerce bool) (Date, error) {
	if err := CheckYear(d.Year); err != nil {
		return Date{}, err
	}
	if err := c.checkDate(d); err != nil {
		return Date{}, err
	}
	switch unit {
	case Years:
		if err := CheckSteps(n, 364, unit); err != nil {
			return Date{}, err
		}
		return c.plusYears(d, n, coerce)
	case Quarters:
		if n > MaxMonthSteps/3 || n < -MaxMonthSteps/3 {
			return Date{}, fmt.Errorf("add %d quarters: %w", n, ErrOutOfRange)
		}
		return c.plusMonths(d, n*3, coerce)
	case Months:
		return c.plusMonths(d, n, coerce)
	case Weeks:
		if err := CheckSteps(n, daysInWeek, unit); err != nil {
			return Date{}, err
		}
		return c.plusDays(d, n*daysInWeek)
	case Days:
		if err := CheckSteps(n, 1, unit); err != nil {
			return Date{}, err
		}
		return c.plusDays(d, n)
	}
	return Date{}, fmt.Errorf("plus: unknown unit %v", unit)
}

func (c *Calendar) plusDays(d Date, n int) (Date, error) {
	e := c.epochDay(d) + n
	if y, _, _ := dateutil.FromEpochDay(e); CheckYear(y) != nil {
		return Date{}, fmt.Errorf("add %d days: %w", n, ErrOutOfRange)
	}
	return c.FromEpochDay(e), nil
}

// Minus subtracts n units from d.
func (c *Calendar) Minus(d Date, unit Unit, n int, coerce bool) (Date, error) {
	return c.Plus(d, unit, -n, coerce)
}

func (c *Calendar) plusYears(d Date, n int, coerce bool) (Date, error) {
	year := d.Year + n
	if err := CheckYear(year); err != nil {
		return Date{}, err
	}
	if max := c.WeeksInYear(year); d.Week > max {
		if !coerce {
			return Date{}, &DateError{Year: year, Field: "week", Value: d.Week, Max: max}
		}
		return Date{Year: year, Week: max, Day: d.Day}, nil
	}
	return Date{Year: year, Week: d.Week, Day: d.Day}, nil
}

// plusMonths moves between month starts one month at a time, summing the
// weeks of every month crossed, then reapplies the original day of month.
// Because every step lands exactly on a month start, no day drift builds up
// along the way and the only adjustment is the final clamp.
func (c *Calendar) plusMonths(d Date, n int, coerce bool) (Date, error) {
	if n == 0 {
		return d, nil
	}
	if n > MaxMonthSteps || n < -MaxMonthSteps {
		return Date{}, fmt.Errorf("add %d months: %w", n, ErrOutOfRange)
	}

	month, day := c.monthDate(d)
	year := d.Year
	start := c.epochDay(d) - (day - 1)

	for ; n > 0; n-- {
		start += c.daysInMonth(year, month)
		if month++; month > monthsInYear {
			month = 1
			year++
		}
	}
	for ; n < 0; n++ {
		if month--; month < 1 {
			month = monthsInYear
			year--
		}
		start -= c.daysInMonth(year, month)
	}
	if err := CheckYear(year); err != nil {
		return Date{}, err
	}

	if max := c.daysInMonth(year, month); day > max {
		if !coerce {
			return Date{}, &DateError{Year: year, Field: "day of month", Value: day, Max: max}
		}
		day = max
	}
	return c.FromEpochDay(start + day - 1), nil
}

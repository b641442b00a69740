package weekcal

import "github.com/username/weekcal/pkg/dateutil"

// EpochDay converts d to an epoch day. It fails with a *DateError when the
// week or day is out of range for d.Year.
func (c *Calendar) EpochDay(d Date) (int, error) {
	if err := c.checkDate(d); err != nil {
		return 0, err
	}
	return c.epochDay(d), nil
}

func (c *Calendar) epochDay(d Date) int {
	return c.FirstEpochDay(d.Year) + (d.Week-1)*daysInWeek + d.Day - 1
}

// FromEpochDay returns the week date of epoch day e.
func (c *Calendar) FromEpochDay(e int) Date {
	year := c.yearOf(e)
	doy := e - c.FirstEpochDay(year) + 1
	week := (doy + daysInWeek - 1) / daysInWeek
	return Date{Year: year, Week: week, Day: doy - (week-1)*daysInWeek}
}

// yearOf finds the calendar-year owning e. The Gregorian year of e is at
// most one calendar-year away from the answer.
func (c *Calendar) yearOf(e int) int {
	year, _, _ := dateutil.FromEpochDay(e)
	for e < c.FirstEpochDay(year) {
		year--
	}
	for e > c.LastEpochDay(year) {
		year++
	}
	return year
}

// FromGregorian returns the week date of a Gregorian date.
func (c *Calendar) FromGregorian(year, month, day int) (Date, error) {
	e, err := dateutil.ToEpochDay(year, month, day)
	if err != nil {
		return Date{}, err
	}
	return c.FromEpochDay(e), nil
}

// ToGregorian returns the Gregorian date of d.
func (c *Calendar) ToGregorian(d Date) (year, month, day int, err error) {
	e, err := c.EpochDay(d)
	if err != nil {
		return 0, 0, 0, err
	}
	year, month, day = dateutil.FromEpochDay(e)
	return year, month, day, nil
}

// DayOfYear returns the 1-based ordinal of d within its calendar-year.
func (c *Calendar) DayOfYear(d Date) (int, error) {
	if err := c.checkDate(d); err != nil {
		return 0, err
	}
	return (d.Week-1)*daysInWeek + d.Day, nil
}

// DayOfWeek returns the ISO weekday of d, 1 for Monday through 7 for Sunday.
func (c *Calendar) DayOfWeek(d Date) (int, error) {
	e, err := c.EpochDay(d)
	if err != nil {
		return 0, err
	}
	return dateutil.DayOfWeek(e), nil
}

package weekcal

// QuarterOfWeek returns the quarter, 1..4, that week falls in. Week 53 only
// exists in long years and belongs to the fourth quarter.
func QuarterOfWeek(week int) (int, error) {
	if err := checkWeek(week); err != nil {
		return 0, err
	}
	return quarterOfWeek(week), nil
}

func quarterOfWeek(week int) int {
	if week == 53 {
		return 4
	}
	return (week + weeksInQuarter - 1) / weeksInQuarter
}

// MonthOfWeek returns the month, 1..12, that week falls in under the
// calendar's weeks-per-month pattern. Week 53 belongs to month 12.
func (c *Calendar) MonthOfWeek(week int) (int, error) {
	if err := checkWeek(week); err != nil {
		return 0, err
	}
	return c.monthOfWeek(week), nil
}

func (c *Calendar) monthOfWeek(week int) int {
	if week == 53 {
		return monthsInYear
	}
	quarter := quarterOfWeek(week)
	inQuarter := (week-1)%weeksInQuarter + 1

	m := c.cfg.WeeksInMonth
	month := 3
	switch {
	case inQuarter <= m[0]:
		month = 1
	case inQuarter <= m[0]+m[1]:
		month = 2
	}
	return (quarter-1)*3 + month
}

// checkWeek accepts the weeks some year has, 1..53.
func checkWeek(week int) error {
	if week < 1 || week > 53 {
		return &DateError{Field: "week", Value: week, Max: 53, AnyYear: true}
	}
	return nil
}

// QuarterOfYear returns the quarter of d.
func (c *Calendar) QuarterOfYear(d Date) (int, error) {
	if err := c.checkDate(d); err != nil {
		return 0, err
	}
	return quarterOfWeek(d.Week), nil
}

// MonthOfYear returns the month of d.
func (c *Calendar) MonthOfYear(d Date) (int, error) {
	if err := c.checkDate(d); err != nil {
		return 0, err
	}
	return c.monthOfWeek(d.Week), nil
}

// DaysInMonth returns the length of month in year: the month's weeks times
// seven, plus a week for month 12 of a long year.
func (c *Calendar) DaysInMonth(year, month int) (int, error) {
	if err := c.checkMonth(year, month); err != nil {
		return 0, err
	}
	return c.daysInMonth(year, month), nil
}

func (c *Calendar) daysInMonth(year, month int) int {
	first, last := c.monthWeeks(year, month)
	return (last - first + 1) * daysInWeek
}

// DaysInMonthNoYear returns the length of month when it does not depend on
// the year. Month 12 gains a week in long years, so it yields an
// *AmbiguousError holding both lengths.
func (c *Calendar) DaysInMonthNoYear(month int) (int, error) {
	if month < 1 || month > monthsInYear {
		return 0, &DateError{Field: "month", Value: month, Max: monthsInYear, AnyYear: true}
	}
	days := c.cfg.WeeksInMonth[(month-1)%3] * daysInWeek
	if month == monthsInYear {
		return 0, &AmbiguousError{Op: "days in month 12", Min: days, Max: days + daysInWeek}
	}
	return days, nil
}

// monthWeeks returns the first and last week of month.
func (c *Calendar) monthWeeks(year, month int) (first, last int) {
	quarter := (month-1)/3 + 1
	inQuarter := (month-1)%3 + 1

	first = (quarter - 1) * weeksInQuarter
	for i := 0; i < inQuarter-1; i++ {
		first += c.cfg.WeeksInMonth[i]
	}
	first++
	last = first + c.cfg.WeeksInMonth[inQuarter-1] - 1
	if month == monthsInYear && c.IsLongYear(year) {
		last++
	}
	return first, last
}

// quarterWeeks returns the first and last week of quarter.
func (c *Calendar) quarterWeeks(year, quarter int) (first, last int) {
	first = (quarter-1)*weeksInQuarter + 1
	last = quarter * weeksInQuarter
	if quarter == 4 && c.IsLongYear(year) {
		last++
	}
	return first, last
}

// WeekOfMonth returns the 1-based week of d within its month.
func (c *Calendar) WeekOfMonth(d Date) (int, error) {
	if err := c.checkDate(d); err != nil {
		return 0, err
	}
	first, _ := c.monthWeeks(d.Year, c.monthOfWeek(d.Week))
	return d.Week - first + 1, nil
}

// MonthDate returns d as a month and a 1-based day of that month.
func (c *Calendar) MonthDate(d Date) (month, day int, err error) {
	if err := c.checkDate(d); err != nil {
		return 0, 0, err
	}
	month, day = c.monthDate(d)
	return month, day, nil
}

func (c *Calendar) monthDate(d Date) (month, day int) {
	month = c.monthOfWeek(d.Week)
	first, _ := c.monthWeeks(d.Year, month)
	return month, (d.Week-first)*daysInWeek + d.Day
}

// FromMonthDate returns the week date of the given day of month.
func (c *Calendar) FromMonthDate(year, month, day int) (Date, error) {
	if err := c.checkMonth(year, month); err != nil {
		return Date{}, err
	}
	if max := c.daysInMonth(year, month); day < 1 || day > max {
		return Date{}, &DateError{Year: year, Field: "day of month", Value: day, Max: max}
	}
	first, _ := c.monthWeeks(year, month)
	offset := day - 1
	return Date{
		Year: year,
		Week: first + offset/daysInWeek,
		Day:  offset%daysInWeek + 1,
	}, nil
}

// Position breaks a day down into its place in the calendar.
type Position struct {
	Date        Date
	Quarter     int
	Month       int
	WeekOfMonth int
	DayOfMonth  int
	DayOfYear   int
}

// Locate returns the position of epoch day e.
func (c *Calendar) Locate(e int) Position {
	d := c.FromEpochDay(e)
	month, day := c.monthDate(d)
	first, _ := c.monthWeeks(d.Year, month)
	return Position{
		Date:        d,
		Quarter:     quarterOfWeek(d.Week),
		Month:       month,
		WeekOfMonth: d.Week - first + 1,
		DayOfMonth:  day,
		DayOfYear:   e - c.FirstEpochDay(d.Year) + 1,
	}
}

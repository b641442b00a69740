package weekcal

import "github.com/username/weekcal/pkg/dateutil"

// YearSpan holds the first and last epoch day of a calendar-year.
type YearSpan struct {
	First int
	Last  int
}

// Days returns the number of days in the span, 364 or 371.
func (s YearSpan) Days() int {
	return s.Last - s.First + 1
}

// Weeks returns the number of weeks in the span, 52 or 53.
func (s YearSpan) Weeks() int {
	return s.Days() / daysInWeek
}

// Span returns the boundaries of year.
func (c *Calendar) Span(year int) YearSpan {
	return c.spans.Get(year, c.computeSpan)
}

// FirstEpochDay returns the epoch day of the first day of year.
func (c *Calendar) FirstEpochDay(year int) int {
	return c.Span(year).First
}

// LastEpochDay returns the epoch day of the last day of year.
func (c *Calendar) LastEpochDay(year int) int {
	return c.Span(year).Last
}

// IsLongYear reports whether year has 53 weeks.
func (c *Calendar) IsLongYear(year int) bool {
	return c.Span(year).Weeks() == 53
}

// WeeksInYear returns 52 or 53.
func (c *Calendar) WeeksInYear(year int) int {
	return c.Span(year).Weeks()
}

// DaysInYear returns 364 or 371.
func (c *Calendar) DaysInYear(year int) int {
	return c.Span(year).Days()
}

// MonthsInYear is always 12; week 53 extends the last month.
func (c *Calendar) MonthsInYear(year int) int {
	return monthsInYear
}

// GregorianYears returns the Gregorian years in which year starts and ends
// according to the year determination rule. For calendars anchored on
// January (First) or December (Last) both are year.
func (c *Calendar) GregorianYears(year int) (start, end int) {
	switch {
	case c.cfg.FirstOrLast == First && c.cfg.MonthOfYear == 1:
		return year, year
	case c.cfg.FirstOrLast == Last && c.cfg.MonthOfYear == 12:
		return year, year
	}
	switch c.cfg.Year {
	case Beginning:
		return year, year + 1
	case Ending:
		return year - 1, year
	}
	if c.cfg.MonthOfYear <= 6 {
		return year, year + 1
	}
	return year - 1, year
}

// RelatedGregorianYear returns the Gregorian year holding the middle day of
// year.
func (c *Calendar) RelatedGregorianYear(year int) int {
	s := c.Span(year)
	y, _, _ := dateutil.FromEpochDay(s.First + s.Days()/2)
	return y
}

func (c *Calendar) computeSpan(year int) YearSpan {
	if c.cfg.FirstOrLast == First {
		return YearSpan{First: c.anchoredFirstDay(year), Last: c.anchoredFirstDay(year+1) - 1}
	}
	return YearSpan{First: c.anchoredLastDay(year-1) + 1, Last: c.anchoredLastDay(year)}
}

// anchoredFirstDay locates the first day of year for a First-anchored
// calendar. The anchor date is the latest possible start that still leaves
// MinDaysInFirstWeek days of the anchor month in week 1; the year starts on
// the nearest DayOfWeek on or before it.
func (c *Calendar) anchoredFirstDay(year int) int {
	start, _ := c.GregorianYears(year)
	anchor := dateutil.EpochDay(start, c.cfg.MonthOfYear, c.cfg.MinDaysInFirstWeek)
	back := floorMod(dateutil.DayOfWeek(anchor)-c.cfg.DayOfWeek, daysInWeek)
	return anchor - back
}

// anchoredLastDay locates the last day of year for a Last-anchored calendar:
// the first DayOfWeek strictly after the anchor month's last day minus
// MinDaysInFirstWeek, so the final week keeps at least that many days of the
// anchor month.
func (c *Calendar) anchoredLastDay(year int) int {
	_, end := c.GregorianYears(year)
	month := c.cfg.MonthOfYear
	anchor := dateutil.EpochDay(end, month, dateutil.DaysInMonth(end, month)-c.cfg.MinDaysInFirstWeek)
	forward := floorMod(c.cfg.DayOfWeek-dateutil.DayOfWeek(anchor), daysInWeek)
	if forward == 0 {
		forward = daysInWeek
	}
	return anchor + forward
}

func floorMod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

package weekcal

import (
	"fmt"
	"iter"

	"github.com/username/weekcal/pkg/dateutil"
)

// Range is an inclusive span of epoch days.
type Range struct {
	First int
	Last  int
}

// Len returns the number of days in r.
func (r Range) Len() int {
	return r.Last - r.First + 1
}

// Contains reports whether epoch day e lies in r.
func (r Range) Contains(e int) bool {
	return e >= r.First && e <= r.Last
}

// At returns the i-th day of r, counting from zero.
func (r Range) At(i int) (int, bool) {
	if i < 0 || i >= r.Len() {
		return 0, false
	}
	return r.First + i, true
}

// Days yields every epoch day in r in order. The sequence holds no state
// between calls and may be ranged over any number of times.
func (r Range) Days() iter.Seq[int] {
	return func(yield func(int) bool) {
		for e := r.First; e <= r.Last; e++ {
			if !yield(e) {
				return
			}
		}
	}
}

func (r Range) String() string {
	return fmt.Sprintf("%s..%s", dateutil.Format(r.First), dateutil.Format(r.Last))
}

// Dates yields the week date of every day in r.
func (c *Calendar) Dates(r Range) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for e := range r.Days() {
			if !yield(c.FromEpochDay(e)) {
				return
			}
		}
	}
}

// YearRange returns the days of year.
func (c *Calendar) YearRange(year int) Range {
	s := c.Span(year)
	return Range{First: s.First, Last: s.Last}
}

// QuarterRange returns the days of quarter 1..4 of year.
func (c *Calendar) QuarterRange(year, quarter int) (Range, error) {
	if err := c.checkQuarter(year, quarter); err != nil {
		return Range{}, err
	}
	first, last := c.quarterWeeks(year, quarter)
	return c.weeksRange(year, first, last), nil
}

// MonthRange returns the days of month 1..12 of year.
func (c *Calendar) MonthRange(year, month int) (Range, error) {
	if err := c.checkMonth(year, month); err != nil {
		return Range{}, err
	}
	first, last := c.monthWeeks(year, month)
	return c.weeksRange(year, first, last), nil
}

// WeekRange returns the seven days of week in year.
func (c *Calendar) WeekRange(year, week int) (Range, error) {
	if err := c.checkDate(Date{Year: year, Week: week, Day: 1}); err != nil {
		return Range{}, err
	}
	return c.weeksRange(year, week, week), nil
}

func (c *Calendar) weeksRange(year, firstWeek, lastWeek int) Range {
	return Range{
		First: c.epochDay(Date{Year: year, Week: firstWeek, Day: 1}),
		Last:  c.epochDay(Date{Year: year, Week: lastWeek, Day: daysInWeek}),
	}
}

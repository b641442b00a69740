package weekcal_test

import (
	"fmt"

	"github.com/username/weekcal/pkg/dateutil"
	"github.com/username/weekcal/pkg/weekcal"
)

func ExampleCalendar_FromGregorian() {
	iso := weekcal.MustNew(weekcal.ISO())

	d, err := iso.FromGregorian(2019, 12, 30)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	fmt.Println(iso.IsLongYear(2020), iso.WeeksInYear(2019))
	// Output:
	// 2020-W01-1
	// true 52
}

func ExampleCalendar_Span() {
	nrf := weekcal.MustNew(weekcal.NRF())

	span := nrf.Span(2019)
	fmt.Println(dateutil.Format(span.First), dateutil.Format(span.Last), span.Weeks())
	// Output:
	// 2019-02-03 2020-02-01 52
}

func ExampleCalendar_Plus() {
	iso := weekcal.MustNew(weekcal.ISO())
	last := weekcal.Date{Year: 2020, Week: 53, Day: 7}

	_, err := iso.Plus(last, weekcal.Months, 1, false)
	fmt.Println(err)

	d, _ := iso.Plus(last, weekcal.Months, 1, true)
	fmt.Println(d)
	// Output:
	// invalid date: day of month 42 out of range 1..28 in year 2021
	// 2021-W04-7
}

func ExampleCalendar_MonthRange() {
	iso := weekcal.MustNew(weekcal.ISO())

	r, _ := iso.MonthRange(2020, 12)
	fmt.Println(r, r.Len())
	// Output:
	// 2020-11-23..2021-01-03 42
}

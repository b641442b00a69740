// Package dateutil converts proleptic Gregorian dates to and from a
// continuous day count.
//
// An epoch day is the number of days since 0000-01-01 in the proleptic
// Gregorian calendar, which is day 0. Negative values are valid and count
// backwards into earlier years. All week-based and month-based calendars in
// this module use epoch days as their common currency.
package dateutil

import (
	"fmt"
	"time"
)

const (
	daysPer400Years = 146097

	// 0000-01-01 was a Saturday.
	weekdayOffset = 5
)

// daysBefore[m] counts the number of days in a non-leap year before month m
// begins. daysBefore[12] is the length of a non-leap year.
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// IsLeap reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of year.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// ValidDate reports whether (year, month, day) names a real date.
func ValidDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= DaysInMonth(year, month)
}

// ToEpochDay returns the epoch day of (year, month, day). It fails if the
// triple is not a valid Gregorian date.
func ToEpochDay(year, month, day int) (int, error) {
	if !ValidDate(year, month, day) {
		return 0, fmt.Errorf("invalid gregorian date %04d-%02d-%02d", year, month, day)
	}
	return EpochDay(year, month, day), nil
}

// EpochDay is ToEpochDay without validation. The caller guarantees that
// month is in 1..12 and day is in range for the month.
func EpochDay(year, month, day int) int {
	d := daysBeforeYear(year) + daysBefore[month-1] + day - 1
	if month > 2 && IsLeap(year) {
		d++
	}
	return d
}

// FromEpochDay returns the Gregorian date of epoch day e.
func FromEpochDay(e int) (year, month, day int) {
	year, yday := yearAndDay(e)

	// Estimate month assuming every month has 31 days. The estimate may be
	// too low by one month.
	leap := 0
	if IsLeap(year) {
		leap = 1
	}
	month = yday/31 + 1
	if yday >= monthStart(month+1, leap) {
		month++
	}
	return year, month, yday - monthStart(month, leap) + 1
}

// DayOfWeek returns the weekday of epoch day e, 1 for Monday through 7 for
// Sunday.
func DayOfWeek(e int) int {
	return floorMod(e+weekdayOffset, 7) + 1
}

// DayOfYear returns the 1-based ordinal of epoch day e within its Gregorian
// year.
func DayOfYear(e int) int {
	_, yday := yearAndDay(e)
	return yday + 1
}

// FromTime returns the epoch day of t's calendar date in t's location.
func FromTime(t time.Time) int {
	y, m, d := t.Date()
	return EpochDay(y, int(m), d)
}

// ToTime returns midnight of epoch day e in loc.
func ToTime(e int, loc *time.Location) time.Time {
	y, m, d := FromEpochDay(e)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
}

// Today returns today's epoch day in loc.
func Today(loc *time.Location) int {
	return FromTime(time.Now().In(loc))
}

// Format renders epoch day e as YYYY-MM-DD. Years outside 0..9999 keep their
// sign and natural width.
func Format(e int) string {
	y, m, d := FromEpochDay(e)
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

// DateLayout is the time layout of the dates ParseDate accepts.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into an epoch day. Only four-digit
// years are accepted.
func ParseDate(s string) (int, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", s, err)
	}
	return FromTime(t), nil
}

func monthStart(month, leap int) int {
	if month > 2 {
		return daysBefore[month-1] + leap
	}
	return daysBefore[month-1]
}

// daysBeforeYear returns the epoch day of January 1st of year.
func daysBeforeYear(year int) int {
	n, y := floorDiv(year, 400)
	return n*daysPer400Years + daysInCycleBefore(y)
}

// daysInCycleBefore counts the days in years [0, y) of a 400-year cycle that
// starts with a leap year.
func daysInCycleBefore(y int) int {
	return 365*y + (y+3)/4 - (y+99)/100 + (y+399)/400
}

// yearAndDay splits epoch day e into its year and 0-based day of year.
func yearAndDay(e int) (year, yday int) {
	n, d := floorDiv(e, daysPer400Years)

	// d/365 never undershoots the year inside the cycle, and overshoots by
	// at most one.
	y := d / 365
	for daysInCycleBefore(y) > d {
		y--
	}
	return 400*n + y, d - daysInCycleBefore(y)
}

// floorDiv returns q, r such that a == q*b + r and 0 <= r < b.
func floorDiv(a, b int) (q, r int) {
	q, r = a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

func floorMod(a, b int) int {
	_, r := floorDiv(a, b)
	return r
}

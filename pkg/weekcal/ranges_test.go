package weekcal

import (
	"errors"
	"testing"

	"github.com/username/weekcal/pkg/dateutil"
)

func TestRanges_Tiling(t *testing.T) {
	for _, cfg := range sampleConfigs() {
		cal := MustNew(cfg)
		for year := 2015; year <= 2025; year++ {
			yr := cal.YearRange(year)

			next := yr.First
			for week := 1; week <= cal.WeeksInYear(year); week++ {
				r, err := cal.WeekRange(year, week)
				if err != nil {
					t.Fatalf("%v: WeekRange(%d, %d) error = %v", cfg, year, week, err)
				}
				if r.First != next || r.Len() != 7 {
					t.Fatalf("%v: week %d of %d = %v, want 7 days from %s", cfg, week, year, r, dateutil.Format(next))
				}
				next = r.Last + 1
			}
			if next != yr.Last+1 {
				t.Fatalf("%v: weeks of %d end at %d, year ends at %d", cfg, year, next-1, yr.Last)
			}

			next = yr.First
			for quarter := 1; quarter <= 4; quarter++ {
				q, err := cal.QuarterRange(year, quarter)
				if err != nil {
					t.Fatalf("%v: QuarterRange() error = %v", cfg, err)
				}
				if q.First != next {
					t.Fatalf("%v: quarter %d of %d starts at %d, want %d", cfg, quarter, year, q.First, next)
				}
				for month := quarter*3 - 2; month <= quarter*3; month++ {
					m, err := cal.MonthRange(year, month)
					if err != nil {
						t.Fatalf("%v: MonthRange() error = %v", cfg, err)
					}
					if m.First != next {
						t.Fatalf("%v: month %d of %d starts at %d, want %d", cfg, month, year, m.First, next)
					}
					days, _ := cal.DaysInMonth(year, month)
					if m.Len() != days {
						t.Fatalf("%v: month %d of %d has %d days, DaysInMonth = %d", cfg, month, year, m.Len(), days)
					}
					next = m.Last + 1
				}
				if q.Last != next-1 {
					t.Fatalf("%v: quarter %d of %d ends at %d, months end at %d", cfg, quarter, year, q.Last, next-1)
				}
			}
			if next != yr.Last+1 {
				t.Fatalf("%v: quarters of %d do not cover the year", cfg, year)
			}
		}
	}
}

func TestRanges_Errors(t *testing.T) {
	if _, err := isoCal.WeekRange(2019, 53); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("WeekRange(2019, 53) error = %v, want ErrInvalidDate", err)
	}
	if _, err := isoCal.MonthRange(2019, 0); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("MonthRange(2019, 0) error = %v, want ErrInvalidDate", err)
	}
	if _, err := isoCal.QuarterRange(2019, 5); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("QuarterRange(2019, 5) error = %v, want ErrInvalidDate", err)
	}
}

func TestRange_Sequences(t *testing.T) {
	r, err := isoCal.QuarterRange(2020, 4)
	if err != nil {
		t.Fatalf("QuarterRange() error = %v", err)
	}
	if r.Len() != 98 {
		t.Errorf("Q4 2020 has %d days, want 98", r.Len())
	}

	// Ranging twice yields the same sequence.
	for pass := 0; pass < 2; pass++ {
		i := 0
		for d := range isoCal.Dates(r) {
			e, ok := r.At(i)
			if !ok {
				t.Fatalf("At(%d) out of range", i)
			}
			if want := isoCal.FromEpochDay(e); d != want {
				t.Fatalf("pass %d: date %d = %v, want %v", pass, i, d, want)
			}
			i++
		}
		if i != r.Len() {
			t.Errorf("pass %d: yielded %d dates, want %d", pass, i, r.Len())
		}
	}

	first := Date{2020, 40, 1}
	for d := range isoCal.Dates(r) {
		if d != first {
			t.Errorf("first date = %v, want %v", d, first)
		}
		break
	}

	if _, ok := r.At(r.Len()); ok {
		t.Errorf("At(Len()) ok = true, want false")
	}
	if !r.Contains(r.Last) || r.Contains(r.Last+1) {
		t.Errorf("Contains boundaries wrong for %v", r)
	}
}

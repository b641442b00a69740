package calendar

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/username/weekcal/pkg/weekcal"
	"go.uber.org/zap"
)

func TestRegistry_BuiltIns(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	r := NewRegistry(logger)

	var names []string
	for _, c := range r.List() {
		names = append(names, c.Name())
	}
	if len(names) != 3 || names[0] != Gregorian || names[1] != ISO || names[2] != NRF {
		t.Errorf("List() names = %v, want [gregorian iso nrf]", names)
	}

	c, err := r.Get("")
	if err != nil || c.Name() != ISO {
		t.Errorf("Get(\"\") = %v, %v, want iso", c, err)
	}
	if _, err := r.Get("lunar"); !errors.Is(err, ErrUnknownCalendar) {
		t.Errorf("Get(lunar) error = %v, want ErrUnknownCalendar", err)
	}

	if err := r.SetDefault(NRF); err != nil {
		t.Fatalf("SetDefault(nrf) error = %v", err)
	}
	if r.Default() != NRF {
		t.Errorf("Default() = %q, want nrf", r.Default())
	}
	if err := r.SetDefault("lunar"); !errors.Is(err, ErrUnknownCalendar) {
		t.Errorf("SetDefault(lunar) error = %v, want ErrUnknownCalendar", err)
	}
}

func TestMustBuiltin_PanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("mustBuiltin() did not panic on a constructor error")
		}
	}()
	cfg := weekcal.ISO()
	cfg.DayOfWeek = 9
	mustBuiltin(NewWeekCalendar("broken", cfg))
}

func TestRegistry_Define(t *testing.T) {
	tests := []struct {
		name     string
		def      Definition
		wantKind Kind
		wantErr  error
	}{
		{"retail from base", Definition{Base: "nrf", WeeksInMonth: []int{5, 4, 4}}, KindWeek, nil},
		{"fiscal april weeks", Definition{Kind: "week", MonthOfYear: 4, DayOfWeek: 7, FirstOrLast: "last", Year: "ending"}, KindWeek, nil},
		{"fiscal april months", Definition{Kind: "month", MonthOfYear: 4, Year: "beginning"}, KindMonth, nil},
		{"gregorian base", Definition{Base: "gregorian"}, KindMonth, nil},
		{"bad weekday", Definition{DayOfWeek: 8}, "", weekcal.ErrInvalidConfig},
		{"bad anchor", Definition{FirstOrLast: "middle"}, "", weekcal.ErrInvalidConfig},
		{"bad pattern length", Definition{WeeksInMonth: []int{4, 4}}, "", weekcal.ErrInvalidConfig},
		{"bad pattern", Definition{WeeksInMonth: []int{4, 4, 4}}, "", weekcal.ErrInvalidConfig},
		{"bad kind", Definition{Kind: "lunar"}, "", weekcal.ErrInvalidConfig},
		{"week fields on month calendar", Definition{Kind: "month", DayOfWeek: 1}, "", weekcal.ErrInvalidConfig},
		{"month base on week calendar", Definition{Kind: "week", Base: "gregorian"}, "", weekcal.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(zap.NewNop())
			err := r.Define("custom", tt.def)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Define() error = %v, want %v", err, tt.wantErr)
				}
				if _, err := r.Get("custom"); !errors.Is(err, ErrUnknownCalendar) {
					t.Errorf("failed definition was registered")
				}
				return
			}
			if err != nil {
				t.Fatalf("Define() error = %v", err)
			}
			c := mustGet(t, r, "custom")
			if c.Kind() != tt.wantKind {
				t.Errorf("Kind() = %q, want %q", c.Kind(), tt.wantKind)
			}
		})
	}
}

func TestRegistry_DefineAllJoinsErrors(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	err := r.DefineAll(map[string]Definition{
		"good": {Base: "iso", MonthOfYear: 7},
		"bad1": {DayOfWeek: 9},
		"bad2": {Year: "sometimes"},
	})
	if !errors.Is(err, weekcal.ErrInvalidConfig) {
		t.Fatalf("DefineAll() error = %v, want ErrInvalidConfig", err)
	}
	var cfgErr *weekcal.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("DefineAll() error does not carry a *ConfigError")
	}
	if _, err := r.Get("good"); err != nil {
		t.Errorf("Get(good) error = %v", err)
	}
}

func TestRegistry_LoadFile(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"calendars.yaml": `calendars:
  fiscal:
    kind: month
    month_of_year: 4
    year: beginning
  retail:
    base: nrf
    weeks_in_month: [5, 4, 4]
`,
		"calendars.toml": `[calendars.fiscal]
kind = "month"
month_of_year = 4
year = "beginning"

[calendars.retail]
base = "nrf"
weeks_in_month = [5, 4, 4]
`,
	}

	for file, content := range files {
		t.Run(file, func(t *testing.T) {
			path := filepath.Join(dir, file)
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			r := NewRegistry(zap.NewNop())
			if err := r.LoadFile(path); err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}

			fiscal := mustGet(t, r, "fiscal")
			got, err := Convert(mustGet(t, r, Gregorian), fiscal, Date{Year: 2021, Month: 3, Day: 15})
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if want := (Date{Year: 2020, Month: 12, Day: 15}); got != want {
				t.Errorf("fiscal date = %+v, want %+v", got, want)
			}

			retail := mustGet(t, r, "retail")
			first, err := retail.Range(weekcal.Months, 2019, 1)
			if err != nil {
				t.Fatalf("Range() error = %v", err)
			}
			if first.Len() != 35 {
				t.Errorf("retail month 1 has %d days, want 35", first.Len())
			}
		})
	}

	if err := NewRegistry(zap.NewNop()).LoadFile(filepath.Join(dir, "calendars.json")); err == nil {
		t.Errorf("LoadFile(missing json) expected error, got nil")
	}
}

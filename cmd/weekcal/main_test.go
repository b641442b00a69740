package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/username/weekcal/internal/calendar"
	"github.com/username/weekcal/pkg/weekcal"
)

const quietConfig = "log:\n  level: error\n"

func run(t *testing.T, configContent string, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(configContent), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", path}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands_Text(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "convert",
			args: []string{"convert", "2019-12-30"},
			want: "2019-12-30 = 2020-W01-1 (iso)\n  quarter 1, month 1, day of month 1\n  day of year 1, weekday 1\n",
		},
		{
			name: "info long year",
			args: []string{"info", "2020"},
			want: "2020 (iso): 2019-12-30..2021-01-03, 371 days, 53 weeks, long, Gregorian 2020\n",
		},
		{
			name: "info retail year",
			args: []string{"-k", "nrf", "info", "2019"},
			want: "2019 (nrf): 2019-02-03..2020-02-01, 364 days, 52 weeks, Gregorian 2019-2020\n",
		},
		{
			name: "range month",
			args: []string{"range", "month", "2020", "12"},
			want: "2020-11-23..2021-01-03 (42 days)\n",
		},
		{
			name: "range year",
			args: []string{"range", "year", "2019"},
			want: "2018-12-31..2019-12-29 (364 days)\n",
		},
		{
			name: "add months coerced",
			args: []string{"add", "2020", "53", "7", "--unit", "months", "-n", "1", "--coerce"},
			want: "2020-W53-7 +1 months = 2021-W04-7 (2021-01-31)\n",
		},
		{
			name: "subtract a week",
			args: []string{"add", "2021", "1", "1", "-u", "weeks", "-n", "-1"},
			want: "2021-W01-1 -1 weeks = 2020-W53-1 (2020-12-28)\n",
		},
		{
			name: "list",
			args: []string{"list"},
			want: "  gregorian    month {month_of_year:1 majority}\n" +
				"* iso          week {month_of_year:1 day_of_week:1 min_days:4 first majority weeks_in_month:[4 4 5]}\n" +
				"  nrf          week {month_of_year:1 day_of_week:6 min_days:4 last majority weeks_in_month:[4 5 4]}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, quietConfig, tt.args...)
			if err != nil {
				t.Fatalf("%v error = %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("%v output:\n%s\nwant:\n%s", tt.args, got, tt.want)
			}
		})
	}
}

func TestCommands_StructuredOutput(t *testing.T) {
	out, err := run(t, quietConfig, "-k", "nrf", "-o", "json", "date", "2019", "1", "1")
	if err != nil {
		t.Fatalf("date error = %v", err)
	}
	var info calendar.DayInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if info.Gregorian != "2019-02-03" || info.DayOfWeek != 7 {
		t.Errorf("date json = %+v", info)
	}

	tests := []struct {
		format string
		want   []string
	}{
		{"yaml", []string{"calendars:", "name: gregorian", "default: true"}},
		{"toml", []string{"[[calendars]]", `name = "iso"`, "default = true"}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := run(t, quietConfig, "-o", tt.format, "list")
			if err != nil {
				t.Fatalf("list error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("list -o %s output %q does not contain %q", tt.format, out, want)
				}
			}
		})
	}
}

func TestCommands_ConfiguredCalendar(t *testing.T) {
	cfg := quietConfig + `default_calendar: fiscal
calendars:
  fiscal:
    kind: month
    month_of_year: 4
    year: beginning
`
	got, err := run(t, cfg, "convert", "2021-03-15")
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}
	if !strings.HasPrefix(got, "2021-03-15 = 2020-M12-15 (fiscal)\n") {
		t.Errorf("convert output = %q", got)
	}
}

func TestCommands_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"week 53 in short year", []string{"date", "2019", "53", "1"}, weekcal.ErrInvalidDate},
		{"month overflow", []string{"add", "2020", "53", "7", "--unit", "months"}, weekcal.ErrInvalidDate},
		{"unknown calendar", []string{"-k", "lunar", "info", "2020"}, calendar.ErrUnknownCalendar},
		{"week range in month calendar", []string{"-k", "gregorian", "range", "week", "2020", "1"}, calendar.ErrUnsupportedUnit},
		{"bad output", []string{"-o", "xml", "list"}, nil},
		{"bad year", []string{"info", "MMXX"}, nil},
		{"missing n", []string{"range", "month", "2020"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, quietConfig, tt.args...)
			if err == nil {
				t.Fatalf("%v expected error, got nil", tt.args)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("%v error = %v, want %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/username/weekcal/internal/calendar"
	"github.com/username/weekcal/pkg/weekcal"
	"go.uber.org/zap"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `log:
  level: debug
server:
  addr: ":9090"
default_calendar: retail
calendars:
  retail:
    base: nrf
    weeks_in_month: [5, 4, 4]
  fiscal:
    kind: month
    month_of_year: 4
    year: beginning
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.DefaultCalendar != "retail" {
		t.Errorf("DefaultCalendar = %q, want retail", cfg.DefaultCalendar)
	}
	retail := cfg.Calendars["retail"]
	if retail.Base != "nrf" || len(retail.WeeksInMonth) != 3 || retail.WeeksInMonth[0] != 5 {
		t.Errorf("Calendars[retail] = %+v", retail)
	}
	if fiscal := cfg.Calendars["fiscal"]; fiscal.Kind != "month" || fiscal.MonthOfYear != 4 {
		t.Errorf("Calendars[fiscal] = %+v", fiscal)
	}

	r := calendar.NewRegistry(zap.NewNop())
	if err := cfg.Configure(r); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	c, err := r.Get("")
	if err != nil || c.Name() != "retail" {
		t.Errorf("default calendar = %v, %v, want retail", c, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "info" || cfg.Server.Addr != ":8080" || cfg.DefaultCalendar != calendar.ISO {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("WEEKCAL_SERVER_ADDR", "127.0.0.1:7000")
	t.Setenv("WEEKCAL_DEFAULT_CALENDAR", calendar.NRF)

	cfg, err := Load(writeConfig(t, "server:\n  addr: \":9090\"\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:7000" {
		t.Errorf("Server.Addr = %q, want env override", cfg.Server.Addr)
	}
	if cfg.DefaultCalendar != calendar.NRF {
		t.Errorf("DefaultCalendar = %q, want nrf", cfg.DefaultCalendar)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("Load(absent.yaml) expected error, got nil")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Log:             LogConfig{Level: "info"},
			Server:          ServerConfig{Addr: ":8080"},
			DefaultCalendar: calendar.ISO,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"no addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
		{"no default", func(c *Config) { c.DefaultCalendar = "" }, "default_calendar is required"},
		{"unknown default", func(c *Config) { c.DefaultCalendar = "lunar" }, "default_calendar 'lunar'"},
		{"default from definitions file", func(c *Config) {
			c.DefaultCalendar = "lunar"
			c.DefinitionsFile = "calendars.yaml"
		}, ""},
		{"reserved name", func(c *Config) {
			c.Calendars = map[string]calendar.Definition{calendar.ISO: {}}
		}, "calendars.iso: name is reserved"},
		{"bad definition", func(c *Config) {
			c.Calendars = map[string]calendar.Definition{"custom": {DayOfWeek: 8}}
		}, "calendars.custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantMsg == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Config{
		Log:             LogConfig{Level: "loud"},
		DefaultCalendar: calendar.ISO,
		Calendars:       map[string]calendar.Definition{"custom": {FirstOrLast: "middle"}},
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() error = nil")
	}
	for _, want := range []string{"log.level", "server.addr", "calendars.custom"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q does not mention %s", err, want)
		}
	}
	if !errors.Is(err, weekcal.ErrInvalidConfig) {
		t.Errorf("Validate() error does not wrap ErrInvalidConfig")
	}
}

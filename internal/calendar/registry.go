package calendar

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/username/weekcal/pkg/monthcal"
	"github.com/username/weekcal/pkg/weekcal"
	"go.uber.org/zap"
)

// Built-in calendar names
const (
	ISO       = "iso"
	NRF       = "nrf"
	Gregorian = "gregorian"
)

// ErrUnknownCalendar is returned when a name is not registered
var ErrUnknownCalendar = errors.New("unknown calendar")

// Registry holds named calendars. It is safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	calendars   map[string]Calendar
	defaultName string
	logger      *zap.Logger
}

// NewRegistry creates a registry holding the built-in calendars, with iso as
// the default
func NewRegistry(logger *zap.Logger) *Registry {
	r := &Registry{
		calendars:   make(map[string]Calendar),
		defaultName: ISO,
		logger:      logger,
	}

	for _, c := range []Calendar{
		mustBuiltin(NewWeekCalendar(ISO, weekcal.ISO())),
		mustBuiltin(NewWeekCalendar(NRF, weekcal.NRF())),
		mustBuiltin(NewMonthCalendar(Gregorian, monthcal.Gregorian())),
	} {
		r.calendars[c.Name()] = c
	}
	return r
}

// mustBuiltin panics if a built-in calendar fails to build
func mustBuiltin(c Calendar, err error) Calendar {
	if err != nil {
		panic(fmt.Sprintf("built-in calendar: %v", err))
	}
	return c
}

// Register adds c, replacing any calendar of the same name
func (r *Registry) Register(c Calendar) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.calendars[c.Name()]; ok {
		r.logger.Warn("Replacing registered calendar", zap.String("name", c.Name()))
	}
	r.calendars[c.Name()] = c
	r.logger.Debug("Calendar registered",
		zap.String("name", c.Name()),
		zap.String("config", c.Describe()))
}

// Define builds def and registers it under name
func (r *Registry) Define(name string, def Definition) error {
	if name == "" {
		return fmt.Errorf("calendar name is required")
	}
	c, err := def.Build(name)
	if err != nil {
		return err
	}
	r.Register(c)
	return nil
}

// DefineAll registers every definition, in name order, and reports all
// failures together
func (r *Registry) DefineAll(defs map[string]Definition) error {
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(defs)) {
		if err := r.Define(name, defs[name]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LoadFile registers the calendars defined in a YAML or TOML file
func (r *Registry) LoadFile(path string) error {
	defs, err := LoadDefinitions(path)
	if err != nil {
		return err
	}
	if err := r.DefineAll(defs); err != nil {
		return fmt.Errorf("failed to load calendars from %s: %w", path, err)
	}

	r.logger.Info("Calendar definitions loaded",
		zap.String("file", path),
		zap.Int("calendars", len(defs)))
	return nil
}

// Get returns the calendar registered under name; an empty name selects the
// default calendar.
func (r *Registry) Get(name string) (Calendar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name == "" {
		name = r.defaultName
	}
	c, ok := r.calendars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCalendar, name)
	}
	return c, nil
}

// SetDefault selects the calendar Get returns for an empty name
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.calendars[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCalendar, name)
	}
	r.defaultName = name
	return nil
}

// Default returns the name of the default calendar
func (r *Registry) Default() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultName
}

// List returns the registered calendars sorted by name
func (r *Registry) List() []Calendar {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Calendar, 0, len(r.calendars))
	for _, name := range slices.Sorted(maps.Keys(r.calendars)) {
		out = append(out, r.calendars[name])
	}
	return out
}

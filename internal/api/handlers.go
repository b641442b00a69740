package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/username/weekcal/internal/calendar"
	"github.com/username/weekcal/pkg/dateutil"
	"github.com/username/weekcal/pkg/weekcal"
	"go.uber.org/zap"
)

// errBadParam marks a malformed path or query parameter
var errBadParam = errors.New("bad parameter")

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	registry *calendar.Registry
	logger   *zap.Logger
	location *time.Location // For "today"
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(registry *calendar.Registry, logger *zap.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		logger:   logger,
		location: time.UTC,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond(w, map[string]any{
		"status":    "healthy",
		"calendars": len(h.registry.List()),
	})
}

// ListCalendars handles GET /api/v1/calendars
func (h *Handlers) ListCalendars(w http.ResponseWriter, r *http.Request) {
	def := h.registry.Default()
	var out []calendar.Summary
	for _, c := range h.registry.List() {
		out = append(out, calendar.Summarize(c, def))
	}
	respond(w, out)
}

// GetCalendar handles GET /api/v1/calendars/{name}
func (h *Handlers) GetCalendar(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendar(w, r)
	if !ok {
		return
	}
	respond(w, calendar.Summarize(cal, h.registry.Default()))
}

// Convert handles GET /api/v1/calendars/{name}/convert?date=YYYY-MM-DD.
// Without a date it converts today.
func (h *Handlers) Convert(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendar(w, r)
	if !ok {
		return
	}

	e := dateutil.Today(h.location)
	if s := r.URL.Query().Get("date"); s != "" {
		var err error
		if e, err = dateutil.ParseDate(s); err != nil {
			fail(w, http.StatusBadRequest, "Invalid date: %s. Use YYYY-MM-DD", s)
			return
		}
	}
	respond(w, cal.DayInfo(e))
}

// GetDate handles GET /api/v1/calendars/{name}/date?year=&week=&month=&day=
func (h *Handlers) GetDate(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendar(w, r)
	if !ok {
		return
	}

	d, err := dateFromQuery(r, cal.Kind())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	e, err := cal.EpochDay(d)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respond(w, cal.DayInfo(e))
}

// GetYear handles GET /api/v1/calendars/{name}/years/{year}
func (h *Handlers) GetYear(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendar(w, r)
	if !ok {
		return
	}

	year, err := intParam("year", chi.URLParam(r, "year"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respond(w, cal.YearInfo(year))
}

// GetRange handles GET /api/v1/calendars/{name}/ranges/{unit}/{year}[/{n}]
func (h *Handlers) GetRange(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendar(w, r)
	if !ok {
		return
	}

	unit, err := weekcal.ParseUnit(chi.URLParam(r, "unit"))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %v", errBadParam, err))
		return
	}
	year, err := intParam("year", chi.URLParam(r, "year"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var n int
	if s := chi.URLParam(r, "n"); s != "" {
		if n, err = intParam("n", s); err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	info, err := calendar.DescribeRange(cal, unit, year, n)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respond(w, info)
}

// Add handles GET /api/v1/calendars/{name}/add?year=&week=&month=&day=&unit=&n=&coerce=
func (h *Handlers) Add(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendar(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	d, err := dateFromQuery(r, cal.Kind())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	unit, err := weekcal.ParseUnit(q.Get("unit"))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %v", errBadParam, err))
		return
	}
	n, err := intParam("n", q.Get("n"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	coerce := false
	if s := q.Get("coerce"); s != "" {
		if coerce, err = strconv.ParseBool(s); err != nil {
			h.writeError(w, r, fmt.Errorf("%w: coerce must be true or false", errBadParam))
			return
		}
	}

	res, err := calendar.Add(cal, d, unit, n, coerce)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respond(w, res)
}

// calendar resolves the {name} path parameter, writing a 404 when unknown
func (h *Handlers) calendar(w http.ResponseWriter, r *http.Request) (calendar.Calendar, bool) {
	cal, err := h.registry.Get(chi.URLParam(r, "name"))
	if err != nil {
		fail(w, http.StatusNotFound, "%v", err)
		return nil, false
	}
	return cal, true
}

// writeError maps engine errors to HTTP statuses
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, calendar.ErrUnknownCalendar):
		fail(w, http.StatusNotFound, "%v", err)
	case errors.Is(err, errBadParam),
		errors.Is(err, calendar.ErrUnsupportedUnit),
		errors.Is(err, weekcal.ErrInvalidDate),
		errors.Is(err, weekcal.ErrAmbiguous):
		fail(w, http.StatusBadRequest, "%v", err)
	case errors.Is(err, weekcal.ErrOutOfRange):
		fail(w, http.StatusUnprocessableEntity, "%v", err)
	default:
		h.logger.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", r.Header.Get(RequestIDHeader)),
			zap.Error(err))
		fail(w, http.StatusInternalServerError, "Internal server error")
	}
}

// dateFromQuery reads year and day plus week or month, depending on kind
func dateFromQuery(r *http.Request, kind calendar.Kind) (calendar.Date, error) {
	q := r.URL.Query()
	var d calendar.Date
	var err error
	if d.Year, err = intParam("year", q.Get("year")); err != nil {
		return calendar.Date{}, err
	}
	if kind == calendar.KindWeek {
		d.Week, err = intParam("week", q.Get("week"))
	} else {
		d.Month, err = intParam("month", q.Get("month"))
	}
	if err != nil {
		return calendar.Date{}, err
	}
	if d.Day, err = intParam("day", q.Get("day")); err != nil {
		return calendar.Date{}, err
	}
	return d, nil
}

func intParam(name, value string) (int, error) {
	if value == "" {
		return 0, fmt.Errorf("%w: %s is required", errBadParam, name)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", errBadParam, name, value)
	}
	return n, nil
}

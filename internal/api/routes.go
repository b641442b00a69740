package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health
//	GET /api/v1/calendars
//	GET /api/v1/calendars/{name}
//	GET /api/v1/calendars/{name}/convert?date=YYYY-MM-DD
//	GET /api/v1/calendars/{name}/date?year=&week=|month=&day=
//	GET /api/v1/calendars/{name}/years/{year}
//	GET /api/v1/calendars/{name}/ranges/{unit}/{year}[/{n}]
//	GET /api/v1/calendars/{name}/add?year=&week=|month=&day=&unit=&n=&coerce=
func NewRouter(h *Handlers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID, middleware.RealIP, Logging(logger), Recovery(logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		fail(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		fail(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1/calendars", func(r chi.Router) {
		r.Get("/", h.ListCalendars)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", h.GetCalendar)
			r.Get("/convert", h.Convert)
			r.Get("/date", h.GetDate)
			r.Get("/years/{year}", h.GetYear)
			r.Get("/ranges/{unit}/{year}", h.GetRange)
			r.Get("/ranges/{unit}/{year}/{n}", h.GetRange)
			r.Get("/add", h.Add)
		})
	})

	return r
}

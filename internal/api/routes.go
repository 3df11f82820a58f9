package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health
//	GET /api/v1/liturgical/today
//	GET /api/v1/liturgical/date/{date}
//	GET /api/v1/liturgical/range?start=&end=
//	GET /api/v1/liturgical/year/{year}
//	GET /api/v1/liturgical/seasons
//	GET /api/v1/calendar
//	GET /api/v1/calendar/{year}
//	GET /api/v1/calendar/{year}/{date}
func SetupRoutes(handlers *Handlers, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(ChainMiddleware(
		RequestIDMiddleware(),
		RecoveryMiddleware(log),
		LoggingMiddleware(log),
		CORSMiddleware(),
	))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", CodeMethodNotAllowed)
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/liturgical", func(r chi.Router) {
			r.Get("/today", handlers.GetToday)
			r.Get("/date/{date}", handlers.GetDate)
			r.Get("/range", handlers.GetRange)
			r.Get("/year/{year}", handlers.GetYearBoundaries)
			r.Get("/seasons", handlers.GetSeasons)
		})
		r.Route("/calendar", func(r chi.Router) {
			r.Get("/", handlers.ListCalendars)
			r.Get("/{year}", handlers.GetCalendar)
			r.Get("/{year}/{date}", handlers.GetCalendarDay)
		})
	})

	return r
}

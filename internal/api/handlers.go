package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/zapponejosh/liturgical-calendar/internal/calendar"
	"github.com/zapponejosh/liturgical-calendar/internal/config"
	"github.com/zapponejosh/liturgical-calendar/internal/database"
	"github.com/zapponejosh/liturgical-calendar/internal/logger"
)

// Years outside this window are rejected before they reach the calendar.
// 1583 is the first full Gregorian year; 9999 is the last year YYYY-MM-DD can carry.
const (
	MinYear = 1583
	MaxYear = 9999
)

// CalendarStore persists materialized calendar years.
type CalendarStore interface {
	Health(ctx context.Context) error
	GetYear(ctx context.Context, year int) (*database.YearCalendar, error)
	GetDay(ctx context.Context, date calendar.Date) (*calendar.Day, error)
	ListYears(ctx context.Context) ([]int, error)
	SaveYear(ctx context.Context, yc database.YearCalendar) error
}

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	store    CalendarStore
	provider *calendar.Provider
	cfg      *config.Config
	logger   *slog.Logger
	now      func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store CalendarStore, provider *calendar.Provider, cfg *config.Config, log *slog.Logger) *Handlers {
	return &Handlers{
		store:    store,
		provider: provider,
		cfg:      cfg,
		logger:   log,
		now:      time.Now,
	}
}

// SeasonSummary describes one season of the vocabulary.
type SeasonSummary struct {
	Season      calendar.Season `json:"season"`
	Color       calendar.Color  `json:"color"`
	Description string          `json:"description"`
}

// CalendarResponse is a materialized year plus its season runs.
type CalendarResponse struct {
	database.YearCalendar
	Runs []calendar.Run `json:"runs"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Health(r.Context()); err != nil {
		h.log(r).Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", CodeHealthCheckFailed)
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetToday handles GET /api/v1/liturgical/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	today := h.provider.Today(h.now())
	WriteSuccess(w, h.provider.Day(today))
}

// GetDate handles GET /api/v1/liturgical/date/{date}
func (h *Handlers) GetDate(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(chi.URLParam(r, "date"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	WriteSuccess(w, h.provider.Day(date))
}

// GetRange handles GET /api/v1/liturgical/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) GetRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	start, err := parseDateParam(startStr)
	if err != nil {
		WriteBadRequest(w, "start: "+err.Error())
		return
	}
	end, err := parseDateParam(endStr)
	if err != nil {
		WriteBadRequest(w, "end: "+err.Error())
		return
	}

	if start.After(end) {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}

	// both ends are included
	if start.DaysUntil(end)+1 > h.cfg.MaxRangeDays {
		WriteBadRequest(w, fmt.Sprintf("Date range cannot exceed %d days", h.cfg.MaxRangeDays))
		return
	}

	WriteSuccess(w, map[string]any{
		"start": start,
		"end":   end,
		"days":  h.provider.Days(start, end),
	})
}

// GetYearBoundaries handles GET /api/v1/liturgical/year/{year}
func (h *Handlers) GetYearBoundaries(w http.ResponseWriter, r *http.Request) {
	year, err := parseYearParam(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	WriteSuccess(w, h.provider.Boundaries(year))
}

// GetSeasons handles GET /api/v1/liturgical/seasons
func (h *Handlers) GetSeasons(w http.ResponseWriter, r *http.Request) {
	summaries := lo.Map(calendar.Seasons(), func(s calendar.Season, _ int) SeasonSummary {
		info := calendar.SeasonInfo(s)
		return SeasonSummary{Season: info.Season, Color: info.Color, Description: info.Description}
	})

	WriteSuccess(w, map[string]any{
		"seasons": summaries,
		"colors":  calendar.Colors(),
	})
}

// GetCalendar handles GET /api/v1/calendar/{year}
//
// Years are served from the store; a missing year is generated, saved and returned.
func (h *Handlers) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, err := parseYearParam(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	yc, err := h.loadOrMaterialize(ctx, year)
	if err != nil {
		h.log(r).Error("failed to load calendar",
			slog.Int("year", year),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve calendar")
		return
	}

	WriteSuccess(w, CalendarResponse{
		YearCalendar: *yc,
		Runs:         calendar.Runs(yc.Days),
	})
}

// ListCalendars handles GET /api/v1/calendar
func (h *Handlers) ListCalendars(w http.ResponseWriter, r *http.Request) {
	years, err := h.store.ListYears(r.Context())
	if err != nil {
		h.log(r).Error("failed to list calendars", slog.Any("error", err))
		WriteInternalError(w, "Failed to list calendars")
		return
	}
	if years == nil {
		years = []int{}
	}

	WriteSuccess(w, map[string]any{
		"years": years,
	})
}

// GetCalendarDay handles GET /api/v1/calendar/{year}/{date}
//
// The day is read from the store, materializing its year first if needed.
func (h *Handlers) GetCalendarDay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, err := parseYearParam(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	date, err := parseDateParam(chi.URLParam(r, "date"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	if date.Year != year {
		WriteBadRequest(w, fmt.Sprintf("date %s is not in year %d", date, year))
		return
	}

	day, err := h.store.GetDay(ctx, date)
	if database.IsNotFound(err) {
		if _, err = h.loadOrMaterialize(ctx, year); err == nil {
			day, err = h.store.GetDay(ctx, date)
		}
	}
	if err != nil {
		h.log(r).Error("failed to load calendar day",
			slog.String("date", date.String()),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve calendar day")
		return
	}

	WriteSuccess(w, day)
}

func (h *Handlers) loadOrMaterialize(ctx context.Context, year int) (*database.YearCalendar, error) {
	yc, err := h.store.GetYear(ctx, year)
	if err == nil {
		return yc, nil
	}
	if !database.IsNotFound(err) {
		return nil, fmt.Errorf("get year: %w", err)
	}

	generated := database.YearCalendar{
		Boundaries: h.provider.Boundaries(year),
		Days:       h.provider.YearDays(year),
	}
	if err := h.store.SaveYear(ctx, generated); err != nil {
		return nil, fmt.Errorf("save year: %w", err)
	}
	logger.FromContext(ctx, h.logger).Info("materialized calendar year", slog.Int("year", year))

	// Re-read so the response carries the stored generation timestamp.
	return h.store.GetYear(ctx, year)
}

func (h *Handlers) log(r *http.Request) *slog.Logger {
	return logger.FromContext(r.Context(), h.logger)
}

// parseDateParam parses a YYYY-MM-DD parameter and checks the supported year window.
func parseDateParam(s string) (calendar.Date, error) {
	if s == "" {
		return calendar.Date{}, errors.New("date parameter is required")
	}
	d, err := calendar.ParseDate(s)
	if err != nil {
		return calendar.Date{}, err
	}
	if d.Year < MinYear || d.Year > MaxYear {
		return calendar.Date{}, fmt.Errorf("year %d is outside the supported range %d-%d", d.Year, MinYear, MaxYear)
	}
	return d, nil
}

// parseYearParam parses a year path parameter and checks the supported window.
func parseYearParam(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid year: %q", s)
	}
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("year %d is outside the supported range %d-%d", year, MinYear, MaxYear)
	}
	return year, nil
}

package database

import (
	"time"

	"github.com/zapponejosh/liturgical-calendar/internal/calendar"
)

// YearCalendar is a materialized calendar year: its marker dates and
// the classification of every day.
type YearCalendar struct {
	Boundaries  calendar.YearBoundaries `json:"boundaries"`
	Days        []calendar.Day          `json:"days"`
	GeneratedAt time.Time               `json:"generated_at"`
}

// Year returns the calendar year being described.
func (yc YearCalendar) Year() int {
	return yc.Boundaries.Year
}

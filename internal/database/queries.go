package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/zapponejosh/liturgical-calendar/internal/calendar"
)

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Returns the zero time if parsing fails.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// nullString converts an empty string to SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// =============================================================================
// Year Queries
// =============================================================================

// SaveYear writes a materialized year, replacing any previous copy.
func (db *DB) SaveYear(ctx context.Context, yc YearCalendar) error {
	return db.WithTx(ctx, func(tx *sql.Tx) error {
		b := yc.Boundaries

		for _, table := range []string{"liturgical_days", "year_boundaries"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE year = ?", b.Year); err != nil {
				return fmt.Errorf("delete year %d from %s: %w", b.Year, table, err)
			}
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO year_boundaries (
				year, easter_sunday, ash_wednesday, palm_sunday, pentecost_sunday,
				christmas_day, epiphany, baptism_of_lord, first_sunday_of_advent
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			b.Year,
			b.EasterSunday.String(),
			b.AshWednesday.String(),
			b.PalmSunday.String(),
			b.PentecostSunday.String(),
			b.ChristmasDay.String(),
			b.Epiphany.String(),
			b.BaptismOfLord.String(),
			b.FirstSundayOfAdvent.String(),
		)
		if err != nil {
			return fmt.Errorf("insert year %d boundaries: %w", b.Year, err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO liturgical_days (
				date, year, weekday, season, color, description, day_name,
				liturgical_year, sunday_cycle, weekday_cycle
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("prepare day insert: %w", err)
		}
		defer stmt.Close()

		for _, d := range yc.Days {
			if d.Date.Year != b.Year {
				return fmt.Errorf("day %s does not belong to year %d", d.Date, b.Year)
			}
			_, err := stmt.ExecContext(ctx,
				d.Date.String(),
				d.Date.Year,
				d.Weekday,
				string(d.Season),
				string(d.Color),
				d.Description,
				nullString(d.DayName),
				d.LiturgicalYear,
				string(d.SundayCycle),
				string(d.WeekdayCycle),
			)
			if err != nil {
				return fmt.Errorf("insert day %s: %w", d.Date, err)
			}
		}
		return nil
	})
}

// GetYear loads a materialized year.
// Returns ErrNotFound if the year has not been saved.
func (db *DB) GetYear(ctx context.Context, year int) (*YearCalendar, error) {
	var (
		dates       [8]string
		generatedAt string
	)
	err := db.QueryRowContext(ctx, `
		SELECT
			easter_sunday, ash_wednesday, palm_sunday, pentecost_sunday,
			christmas_day, epiphany, baptism_of_lord, first_sunday_of_advent,
			generated_at
		FROM year_boundaries
		WHERE year = ?
	`, year).Scan(
		&dates[0], &dates[1], &dates[2], &dates[3],
		&dates[4], &dates[5], &dates[6], &dates[7],
		&generatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query year %d: %w", year, err)
	}

	var parsed [8]calendar.Date
	for i, s := range dates {
		if parsed[i], err = calendar.ParseDate(s); err != nil {
			return nil, fmt.Errorf("year %d boundaries: %w", year, err)
		}
	}

	days, err := db.queryDays(ctx, "WHERE year = ? ORDER BY date ASC", year)
	if err != nil {
		return nil, err
	}

	return &YearCalendar{
		Boundaries: calendar.YearBoundaries{
			Year:                year,
			EasterSunday:        parsed[0],
			AshWednesday:        parsed[1],
			PalmSunday:          parsed[2],
			PentecostSunday:     parsed[3],
			ChristmasDay:        parsed[4],
			Epiphany:            parsed[5],
			BaptismOfLord:       parsed[6],
			FirstSundayOfAdvent: parsed[7],
		},
		Days:        days,
		GeneratedAt: parseTimestamp(generatedAt),
	}, nil
}

// GetDay loads one materialized day.
// Returns ErrNotFound if the day's year has not been saved.
func (db *DB) GetDay(ctx context.Context, date calendar.Date) (*calendar.Day, error) {
	days, err := db.queryDays(ctx, "WHERE date = ?", date.String())
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, ErrNotFound
	}
	return &days[0], nil
}

// ListYears returns the materialized years in ascending order.
func (db *DB) ListYears(ctx context.Context) ([]int, error) {
	rows, err := db.QueryContext(ctx, "SELECT year FROM year_boundaries ORDER BY year ASC")
	if err != nil {
		return nil, fmt.Errorf("query years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("scan year: %w", err)
		}
		years = append(years, y)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate years: %w", err)
	}
	return years, nil
}

// queryDays runs a liturgical_days select with the given WHERE/ORDER clause.
func (db *DB) queryDays(ctx context.Context, clause string, args ...any) ([]calendar.Day, error) {
	query := `
		SELECT
			date, weekday, season, color, description, day_name,
			liturgical_year, sunday_cycle, weekday_cycle
		FROM liturgical_days
	` + clause

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query days: %w", err)
	}
	defer rows.Close()

	var days []calendar.Day
	for rows.Next() {
		var (
			d                         calendar.Day
			date, season, color       string
			sundayCycle, weekdayCycle string
			dayName                   sql.NullString
		)
		err := rows.Scan(
			&date,
			&d.Weekday,
			&season,
			&color,
			&d.Description,
			&dayName,
			&d.LiturgicalYear,
			&sundayCycle,
			&weekdayCycle,
		)
		if err != nil {
			return nil, fmt.Errorf("scan day row: %w", err)
		}

		if d.Date, err = calendar.ParseDate(date); err != nil {
			return nil, fmt.Errorf("scan day row: %w", err)
		}
		d.Season = calendar.Season(season)
		d.Color = calendar.Color(color)
		if !d.Season.IsValid() || !d.Color.IsValid() {
			return nil, fmt.Errorf("day %s: unknown season %q or color %q", date, season, color)
		}
		d.DayName = dayName.String
		d.SundayCycle = calendar.SundayCycle(sundayCycle)
		d.WeekdayCycle = calendar.WeekdayCycle(weekdayCycle)

		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate days: %w", err)
	}
	return days, nil
}

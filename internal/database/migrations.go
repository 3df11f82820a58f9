package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
var migrationsSQL = map[int]string{
	1: migrationV1CalendarSchema,
}

// migrationV1CalendarSchema creates the materialized calendar tables.
//
// Rows are derived data: a year is always written as a whole (boundaries
// plus every day) and can be regenerated at any time from the calendar
// package. Dates are stored as TEXT in YYYY-MM-DD so they sort and compare
// lexically.
const migrationV1CalendarSchema = `
-- ============================================================================
-- Table: year_boundaries
-- ============================================================================
-- Marker dates for one calendar year.
-- ============================================================================
CREATE TABLE IF NOT EXISTS year_boundaries (
    year INTEGER PRIMARY KEY,
    easter_sunday TEXT NOT NULL,
    ash_wednesday TEXT NOT NULL,
    palm_sunday TEXT NOT NULL,
    pentecost_sunday TEXT NOT NULL,
    christmas_day TEXT NOT NULL,
    epiphany TEXT NOT NULL,
    baptism_of_lord TEXT NOT NULL,
    first_sunday_of_advent TEXT NOT NULL,
    generated_at TEXT NOT NULL DEFAULT (datetime('now'))
);

-- ============================================================================
-- Table: liturgical_days
-- ============================================================================
-- One row per civil day of a materialized year.
-- ============================================================================
CREATE TABLE IF NOT EXISTS liturgical_days (
    date TEXT PRIMARY KEY,
    year INTEGER NOT NULL,
    weekday TEXT NOT NULL,
    season TEXT NOT NULL CHECK (season IN (
        'Advent',
        'Christmas',
        'Ordinary Time',
        'Lent',
        'Easter'
    )),
    color TEXT NOT NULL CHECK (color IN ('purple', 'white', 'green', 'red', 'rose')),
    description TEXT NOT NULL,
    day_name TEXT,
    liturgical_year INTEGER NOT NULL,
    sunday_cycle TEXT NOT NULL CHECK (sunday_cycle IN ('A', 'B', 'C')),
    weekday_cycle TEXT NOT NULL CHECK (weekday_cycle IN ('I', 'II')),

    FOREIGN KEY (year) REFERENCES year_boundaries(year) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_liturgical_days_year
    ON liturgical_days(year);

CREATE INDEX IF NOT EXISTS idx_liturgical_days_season
    ON liturgical_days(season);
`

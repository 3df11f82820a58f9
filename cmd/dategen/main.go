// Command dategen prints the key liturgical dates and season runs for one
// or more years, and can materialize them into the calendar database.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/zapponejosh/liturgical-calendar/internal/calendar"
	"github.com/zapponejosh/liturgical-calendar/internal/database"
	"github.com/zapponejosh/liturgical-calendar/internal/logger"
)

func main() {
	year := flag.Int("year", 2025, "First year to generate")
	to := flag.Int("to", 0, "Last year to generate (defaults to -year)")
	dbPath := flag.String("db", "", "SQLite file to materialize the years into (optional)")
	verbose := flag.Bool("v", false, "Log database activity")
	flag.Parse()

	last := *to
	if last == 0 {
		last = *year
	}
	if last < *year {
		fmt.Fprintf(os.Stderr, "-to (%d) must not be before -year (%d)\n", last, *year)
		os.Exit(2)
	}

	level := "error"
	if *verbose {
		level = "info"
	}
	log := logger.New(os.Stderr, level, "text")

	if err := run(context.Background(), os.Stdout, log, *year, last, *dbPath); err != nil {
		log.Error("dategen failed", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, log *slog.Logger, first, last int, dbPath string) error {
	provider := calendar.NewProvider(calendar.WithCache(calendar.NewSnapshotCache()))

	var db *database.DB
	if dbPath != "" {
		var err error
		db, err = database.Open(database.DefaultConfig(dbPath), log)
		if err != nil {
			return err
		}
		defer db.Close()

		if _, err := db.Migrate(ctx); err != nil {
			return err
		}
	}

	for year := first; year <= last; year++ {
		b := provider.Boundaries(year)
		days := provider.YearDays(year)

		printYear(w, b, calendar.Runs(days))

		if db != nil {
			yc := database.YearCalendar{Boundaries: b, Days: days}
			if err := db.SaveYear(ctx, yc); err != nil {
				return fmt.Errorf("materialize %d: %w", year, err)
			}
			fmt.Fprintf(w, "  stored %d days in %s\n\n", len(days), dbPath)
		}
	}

	return nil
}

func printYear(w io.Writer, b calendar.YearBoundaries, runs []calendar.Run) {
	fmt.Fprintf(w, "=== Liturgical Dates for %d ===\n\n", b.Year)

	fmt.Fprintln(w, "Key Dates:")
	fmt.Fprintf(w, "  Epiphany:          %s\n", b.Epiphany)
	fmt.Fprintf(w, "  Baptism of Lord:   %s\n", b.BaptismOfLord)
	fmt.Fprintf(w, "  Ash Wednesday:     %s\n", b.AshWednesday)
	fmt.Fprintf(w, "  Palm Sunday:       %s\n", b.PalmSunday)
	fmt.Fprintf(w, "  Easter:            %s\n", b.EasterSunday)
	fmt.Fprintf(w, "  Ascension:         %s\n", calendar.Ascension(b.Year))
	fmt.Fprintf(w, "  Pentecost:         %s\n", b.PentecostSunday)
	fmt.Fprintf(w, "  Advent Start:      %s\n", b.FirstSundayOfAdvent)
	fmt.Fprintf(w, "  Christmas:         %s\n", b.ChristmasDay)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Seasons:")
	for _, r := range runs {
		label := string(r.Season)
		if r.DayName != "" {
			label += " (" + r.DayName + ")"
		}
		fmt.Fprintf(w, "  %s .. %s  %-22s %s\n", r.Start, r.End, label, r.Color)
	}
	fmt.Fprintln(w)
}

package calendar

import (
	"time"

	"github.com/samber/lo"
)

// Day is a civil date together with everything the calendar knows about it.
type Day struct {
	Date           Date         `json:"date"`
	Weekday        string       `json:"weekday"`
	Info                        // season, color, description, day name
	LiturgicalYear int          `json:"liturgical_year"`
	SundayCycle    SundayCycle  `json:"sunday_cycle"`
	WeekdayCycle   WeekdayCycle `json:"weekday_cycle"`
}

// Run is a maximal stretch of consecutive days sharing a season and day name.
type Run struct {
	Start   Date   `json:"start"`
	End     Date   `json:"end"` // inclusive
	Season  Season `json:"season"`
	Color   Color  `json:"color"`
	DayName string `json:"day_name,omitempty"`
}

// Day returns the full description of a civil date.
func (p *Provider) Day(d Date) Day {
	ly := p.LiturgicalYear(d)
	return Day{
		Date:           d,
		Weekday:        d.Weekday().String(),
		Info:           p.InfoForDate(d),
		LiturgicalYear: ly,
		SundayCycle:    SundayCycleFor(ly),
		WeekdayCycle:   WeekdayCycleFor(ly),
	}
}

// Days returns every day from start to end inclusive.
// It returns nil when end is before start.
func (p *Provider) Days(start, end Date) []Day {
	if end.Before(start) {
		return nil
	}
	dates := lo.Times(start.DaysUntil(end)+1, func(i int) Date {
		return start.AddDays(i)
	})
	return lo.Map(dates, func(d Date, _ int) Day {
		return p.Day(d)
	})
}

// YearDays returns every day of a calendar year.
func (p *Provider) YearDays(year int) []Day {
	return p.Days(
		Date{Year: year, Month: time.January, Day: 1},
		Date{Year: year, Month: time.December, Day: 31},
	)
}

// Runs collapses consecutive days with the same season and day name.
func Runs(days []Day) []Run {
	var runs []Run
	for _, d := range days {
		if n := len(runs); n > 0 {
			last := &runs[n-1]
			if last.Season == d.Season && last.DayName == d.DayName && last.End.AddDays(1) == d.Date {
				last.End = d.Date
				continue
			}
		}
		runs = append(runs, Run{
			Start:   d.Date,
			End:     d.Date,
			Season:  d.Season,
			Color:   d.Color,
			DayName: d.DayName,
		})
	}
	return runs
}

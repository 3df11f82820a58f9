package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveBoundaries_2024(t *testing.T) {
	b := DeriveBoundaries(2024)

	assert.Equal(t, 2024, b.Year)
	assert.Equal(t, "2024-03-31", b.EasterSunday.String())
	assert.Equal(t, "2024-02-14", b.AshWednesday.String())
	assert.Equal(t, "2024-03-24", b.PalmSunday.String())
	assert.Equal(t, "2024-05-19", b.PentecostSunday.String())
	assert.Equal(t, "2024-12-25", b.ChristmasDay.String())
	assert.Equal(t, "2024-01-06", b.Epiphany.String())
	assert.Equal(t, "2024-01-07", b.BaptismOfLord.String())
	assert.Equal(t, "2024-12-01", b.FirstSundayOfAdvent.String())
}

func TestDeriveBoundaries_EasterOffsets(t *testing.T) {
	for year := 1900; year <= 2100; year++ {
		b := DeriveBoundaries(year)

		assert.Equal(t, b.EasterSunday.AddDays(-46), b.AshWednesday, "year %d", year)
		assert.Equal(t, b.EasterSunday.AddDays(-7), b.PalmSunday, "year %d", year)
		assert.Equal(t, b.EasterSunday.AddDays(49), b.PentecostSunday, "year %d", year)
		assert.Equal(t, time.Wednesday, b.AshWednesday.Weekday(), "year %d", year)
		assert.Equal(t, Date{Year: year, Month: time.December, Day: 25}, b.ChristmasDay)
		assert.Equal(t, Date{Year: year, Month: time.January, Day: 6}, b.Epiphany)
	}
}

func TestDeriveBoundaries_BaptismOfLord(t *testing.T) {
	tests := []struct {
		name string
		year int
		want string
	}{
		{"epiphany on saturday", 2024, "2024-01-07"},
		{"epiphany on monday", 2025, "2025-01-12"},
		{"epiphany on sunday moves a full week", 2019, "2019-01-13"},
		{"epiphany on friday", 2023, "2023-01-08"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveBoundaries(tt.year).BaptismOfLord
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, time.Sunday, got.Weekday())
		})
	}

	for year := 1900; year <= 2100; year++ {
		b := DeriveBoundaries(year)
		assert.True(t, b.BaptismOfLord.After(b.Epiphany), "year %d", year)
		assert.LessOrEqual(t, b.Epiphany.DaysUntil(b.BaptismOfLord), 7, "year %d", year)
	}
}

func TestDeriveBoundaries_FirstSundayOfAdvent(t *testing.T) {
	tests := []struct {
		name string
		year int
		want string
	}{
		{"christmas on sunday", 2022, "2022-11-27"},
		{"christmas on monday", 2023, "2023-12-03"},
		{"christmas on wednesday", 2024, "2024-12-01"},
		{"christmas on thursday", 2025, "2025-11-30"},
		{"christmas on friday", 2026, "2026-11-29"},
		{"christmas on sunday again", 2016, "2016-11-27"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveBoundaries(tt.year).FirstSundayOfAdvent.String())
		})
	}

	for year := 1900; year <= 2100; year++ {
		advent := DeriveBoundaries(year).FirstSundayOfAdvent
		assert.Equal(t, time.Sunday, advent.Weekday(), "year %d", year)
		assert.False(t, advent.Before(Date{Year: year, Month: time.November, Day: 27}), "year %d: %s", year, advent)
		assert.False(t, advent.After(Date{Year: year, Month: time.December, Day: 3}), "year %d: %s", year, advent)
	}
}

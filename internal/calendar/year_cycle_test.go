package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLiturgicalYear(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want int
	}{
		{"day before advent 2024", NewDate(2024, time.November, 30), 2023},
		{"first sunday of advent 2024", NewDate(2024, time.December, 1), 2024},
		{"christmas 2024", NewDate(2024, time.December, 25), 2024},
		{"lent 2025", NewDate(2025, time.March, 15), 2024},
		{"new year's day", NewDate(2025, time.January, 1), 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, liturgicalYear(tt.date, DeriveBoundaries(tt.date.Year)))
		})
	}
}

func TestCycles(t *testing.T) {
	tests := []struct {
		liturgicalYear int
		sunday         SundayCycle
		weekday        WeekdayCycle
	}{
		{2022, CycleA, CycleI},  // Advent 2022 - 2023
		{2023, CycleB, CycleII}, // Advent 2023 - 2024
		{2024, CycleC, CycleI},  // Advent 2024 - 2025
		{2025, CycleA, CycleII}, // Advent 2025 - 2026
		{2026, CycleB, CycleI},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.sunday, SundayCycleFor(tt.liturgicalYear), "year %d", tt.liturgicalYear)
		assert.Equal(t, tt.weekday, WeekdayCycleFor(tt.liturgicalYear), "year %d", tt.liturgicalYear)
	}

	assert.Equal(t, CycleC, SundayCycleFor(-1))
}

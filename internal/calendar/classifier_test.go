package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classifyDate(t *testing.T, s string) Info {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return Classify(d, DeriveBoundaries(d.Year), DeriveBoundaries(d.Year-1))
}

func TestClassify_Scenarios(t *testing.T) {
	tests := []struct {
		date    string
		season  Season
		color   Color
		dayName string
	}{
		{"2024-08-15", SeasonOrdinaryTime, ColorGreen, ""},
		{"2024-12-25", SeasonChristmas, ColorWhite, ""},
		{"2025-01-01", SeasonChristmas, ColorWhite, ""},
		{"2024-03-28", SeasonLent, ColorPurple, DayNameHolyWeek},
		{"2024-02-14", SeasonLent, ColorPurple, ""},
		{"2024-02-13", SeasonOrdinaryTime, ColorGreen, ""},
		{"2024-03-23", SeasonLent, ColorPurple, ""},
		{"2024-03-24", SeasonLent, ColorPurple, DayNameHolyWeek},
		{"2024-03-30", SeasonLent, ColorPurple, DayNameHolyWeek},
		{"2024-03-31", SeasonEaster, ColorWhite, ""},
		{"2024-05-19", SeasonEaster, ColorWhite, ""},
		{"2024-05-20", SeasonOrdinaryTime, ColorGreen, ""},
		{"2024-11-30", SeasonOrdinaryTime, ColorGreen, ""},
		{"2024-12-01", SeasonAdvent, ColorPurple, ""},
		{"2024-12-24", SeasonAdvent, ColorPurple, ""},
		{"2024-12-31", SeasonChristmas, ColorWhite, ""},
		{"2024-01-06", SeasonChristmas, ColorWhite, ""},
		{"2024-01-07", SeasonOrdinaryTime, ColorGreen, ""},
		{"2025-01-11", SeasonChristmas, ColorWhite, ""},
		{"2025-01-12", SeasonOrdinaryTime, ColorGreen, ""},
		{"2022-11-27", SeasonAdvent, ColorPurple, ""},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got := classifyDate(t, tt.date)
			assert.Equal(t, tt.season, got.Season)
			assert.Equal(t, tt.color, got.Color)
			assert.Equal(t, tt.dayName, got.DayName)
			assert.NotEmpty(t, got.Description)
		})
	}
}

func TestClassify_RuleOrder(t *testing.T) {
	assert.Equal(t, []string{"advent", "christmas", "lent", "easter", "ordinary_time"}, RuleNames())
}

// Every day in the supported range matches exactly one of the
// season-specific rules, or none of them and falls to Ordinary Time.
func TestClassify_Totality(t *testing.T) {
	start := Date{Year: 1900, Month: time.January, Day: 1}
	end := Date{Year: 2100, Month: time.December, Day: 31}

	for d := start; !d.After(end); d = d.AddDays(1) {
		cur, prev := DeriveBoundaries(d.Year), DeriveBoundaries(d.Year-1)

		matches := 0
		for _, r := range rules[:len(rules)-1] {
			if r.match(d, cur, prev) {
				matches++
			}
		}
		if !assert.LessOrEqual(t, matches, 1, "overlapping windows on %s", d) {
			return
		}

		info, name := classify(d, cur, prev)
		if !assert.True(t, info.Season.IsValid(), "%s", d) || !assert.True(t, info.Color.IsValid(), "%s", d) {
			return
		}
		if matches == 0 {
			assert.Equal(t, "ordinary_time", name, "%s", d)
		}
	}
}

func TestClassify_Continuity(t *testing.T) {
	for year := 1900; year <= 2100; year++ {
		cur, prev := DeriveBoundaries(year), DeriveBoundaries(year-1)

		beforeAsh := Classify(cur.AshWednesday.AddDays(-1), cur, prev)
		assert.NotEqual(t, SeasonLent, beforeAsh.Season, "year %d", year)

		ash := Classify(cur.AshWednesday, cur, prev)
		assert.Equal(t, SeasonLent, ash.Season, "year %d", year)

		holySaturday := Classify(cur.EasterSunday.AddDays(-1), cur, prev)
		assert.Equal(t, SeasonLent, holySaturday.Season, "year %d", year)
		assert.Equal(t, DayNameHolyWeek, holySaturday.DayName, "year %d", year)

		easter := Classify(cur.EasterSunday, cur, prev)
		assert.Equal(t, SeasonEaster, easter.Season, "year %d", year)

		pentecost := Classify(cur.PentecostSunday, cur, prev)
		assert.Equal(t, SeasonEaster, pentecost.Season, "year %d", year)
	}
}

func TestSeasonInfo_Colors(t *testing.T) {
	want := map[Season]Color{
		SeasonAdvent:       ColorPurple,
		SeasonChristmas:    ColorWhite,
		SeasonLent:         ColorPurple,
		SeasonEaster:       ColorWhite,
		SeasonOrdinaryTime: ColorGreen,
	}
	for _, s := range Seasons() {
		info := SeasonInfo(s)
		assert.Equal(t, s, info.Season)
		assert.Equal(t, want[s], info.Color, "season %s", s)
		assert.Empty(t, info.DayName)
	}

	assert.False(t, Season("Pentecost").IsValid())
	assert.True(t, ColorRose.IsValid())
	assert.False(t, Color("gold").IsValid())
}

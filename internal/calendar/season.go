package calendar

// Season represents a liturgical season.
type Season string

const (
	SeasonAdvent       Season = "Advent"
	SeasonChristmas    Season = "Christmas"
	SeasonLent         Season = "Lent"
	SeasonEaster       Season = "Easter"
	SeasonOrdinaryTime Season = "Ordinary Time"
)

// Seasons returns all liturgical seasons in calendar order,
// starting with the beginning of the liturgical year.
func Seasons() []Season {
	return []Season{
		SeasonAdvent,
		SeasonChristmas,
		SeasonOrdinaryTime,
		SeasonLent,
		SeasonEaster,
	}
}

// IsValid checks if a season is valid.
func (s Season) IsValid() bool {
	for _, valid := range Seasons() {
		if s == valid {
			return true
		}
	}
	return false
}

// Color is a liturgical vestment color.
type Color string

// Red and rose are part of the vocabulary for feast overrides;
// the season classifier never produces them.
const (
	ColorPurple Color = "purple"
	ColorWhite  Color = "white"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorRose   Color = "rose"
)

// Colors returns all liturgical colors.
func Colors() []Color {
	return []Color{ColorPurple, ColorWhite, ColorGreen, ColorRed, ColorRose}
}

// IsValid checks if a color is valid.
func (c Color) IsValid() bool {
	for _, valid := range Colors() {
		if c == valid {
			return true
		}
	}
	return false
}

// DayNameHolyWeek tags the days from Palm Sunday to Holy Saturday.
const DayNameHolyWeek = "Holy Week"

// Info is the liturgical classification of a single day.
// It is a plain value: two Infos for the same date compare equal with ==.
type Info struct {
	Season      Season `json:"season"`
	Color       Color  `json:"color"`
	Description string `json:"description"`
	DayName     string `json:"day_name,omitempty"`
}

// Default descriptions. Display text is owned by the calling layer;
// these are stable fallbacks.
const (
	descAdvent    = "Season of preparation for Christmas."
	descChristmas = "Season celebrating the birth of Jesus."
	descLent      = "Season of penance, prayer and conversion."
	descHolyWeek  = "Holy Week, the summit of Lent."
	descEaster    = "Season celebrating the Resurrection of Christ."
	descOrdinary  = "Ordinary Time, living the mystery of Christ day by day."
)

// SeasonInfo returns the default Info for a season (no day name).
func SeasonInfo(s Season) Info {
	switch s {
	case SeasonAdvent:
		return Info{Season: SeasonAdvent, Color: ColorPurple, Description: descAdvent}
	case SeasonChristmas:
		return Info{Season: SeasonChristmas, Color: ColorWhite, Description: descChristmas}
	case SeasonLent:
		return Info{Season: SeasonLent, Color: ColorPurple, Description: descLent}
	case SeasonEaster:
		return Info{Season: SeasonEaster, Color: ColorWhite, Description: descEaster}
	default:
		return Info{Season: SeasonOrdinaryTime, Color: ColorGreen, Description: descOrdinary}
	}
}

func holyWeekInfo() Info {
	return Info{
		Season:      SeasonLent,
		Color:       ColorPurple,
		Description: descHolyWeek,
		DayName:     DayNameHolyWeek,
	}
}

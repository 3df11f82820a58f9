package calendar

import "time"

// Offsets of the movable feasts from Easter Sunday, in days.
const (
	ashWednesdayOffset = -46 // 40 days of Lent plus the six Sundays
	palmSundayOffset   = -7
	pentecostOffset    = 49
)

// YearBoundaries holds the marker dates used to classify every day of a
// calendar year. It is a pure function of Year and safe to cache forever.
type YearBoundaries struct {
	Year                int  `json:"year"`
	EasterSunday        Date `json:"easter_sunday"`
	AshWednesday        Date `json:"ash_wednesday"`
	PalmSunday          Date `json:"palm_sunday"`
	PentecostSunday     Date `json:"pentecost_sunday"`
	ChristmasDay        Date `json:"christmas_day"`
	Epiphany            Date `json:"epiphany"`
	BaptismOfLord       Date `json:"baptism_of_lord"`
	FirstSundayOfAdvent Date `json:"first_sunday_of_advent"`
}

// DeriveBoundaries computes the fixed and movable marker dates for a year.
func DeriveBoundaries(year int) YearBoundaries {
	easter := Easter(year)
	christmas := Date{Year: year, Month: time.December, Day: 25}
	epiphany := Date{Year: year, Month: time.January, Day: 6}

	return YearBoundaries{
		Year:                year,
		EasterSunday:        easter,
		AshWednesday:        easter.AddDays(ashWednesdayOffset),
		PalmSunday:          easter.AddDays(palmSundayOffset),
		PentecostSunday:     easter.AddDays(pentecostOffset),
		ChristmasDay:        christmas,
		Epiphany:            epiphany,
		BaptismOfLord:       nextSundayAfter(epiphany),
		FirstSundayOfAdvent: firstSundayOfAdvent(christmas),
	}
}

// nextSundayAfter returns the first Sunday strictly after d.
// If d is itself a Sunday the result is d + 7.
func nextSundayAfter(d Date) Date {
	days := (7 - int(d.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	return d.AddDays(days)
}

// sundayOnOrBefore returns d if it is a Sunday, otherwise the most recent Sunday before d.
func sundayOnOrBefore(d Date) Date {
	return d.AddDays(-int(d.Weekday()))
}

// firstSundayOfAdvent returns the fourth Sunday before Christmas.
//
// The fourth Sunday of Advent is the last Sunday strictly before Christmas
// Day, i.e. the Sunday on or before Christmas Eve. Three weeks earlier is
// the first. The result falls between November 27 and December 3, including
// years where Christmas itself is a Sunday.
func firstSundayOfAdvent(christmas Date) Date {
	christmasEve := christmas.AddDays(-1)
	fourthSunday := sundayOnOrBefore(christmasEve)
	return fourthSunday.AddDays(-21)
}

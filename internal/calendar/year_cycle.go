package calendar

// SundayCycle is the three-year Sunday lectionary cycle.
type SundayCycle string

const (
	CycleA SundayCycle = "A"
	CycleB SundayCycle = "B"
	CycleC SundayCycle = "C"
)

// WeekdayCycle is the two-year weekday lectionary cycle.
type WeekdayCycle string

const (
	CycleI  WeekdayCycle = "I"
	CycleII WeekdayCycle = "II"
)

// liturgicalYear returns the starting year of the liturgical year that
// contains d, given the boundaries of d's calendar year. The liturgical year
// "2024" runs from Advent 2024 through the Saturday before Advent 2025.
func liturgicalYear(d Date, cur YearBoundaries) int {
	if d.Before(cur.FirstSundayOfAdvent) {
		return d.Year - 1
	}
	return d.Year
}

// SundayCycleFor returns the Sunday cycle of a liturgical year.
//
// Cycles are keyed on the calendar year in which the liturgical year ends:
// a year divisible by 3 is Year C, so Advent 2024 opens Year C (2025).
func SundayCycleFor(liturgicalYear int) SundayCycle {
	switch mod(liturgicalYear+1, 3) {
	case 1:
		return CycleA
	case 2:
		return CycleB
	default:
		return CycleC
	}
}

// WeekdayCycleFor returns the weekday cycle of a liturgical year.
// Liturgical years ending in an odd calendar year use Year I.
func WeekdayCycleFor(liturgicalYear int) WeekdayCycle {
	if mod(liturgicalYear+1, 2) == 1 {
		return CycleI
	}
	return CycleII
}

// mod is a floored modulo so cycles stay stable for negative years.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

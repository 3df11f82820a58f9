// Package calendar provides liturgical calendar calculations.
package calendar

import "time"

// Easter calculates the date of Easter Sunday for a given year
// using the anonymous Gregorian computus (Meeus/Jones/Butcher).
//
// Every step uses floored division and modulo, so the result is a Sunday
// between March 22 and April 25 for any year, including zero and negative
// (proleptic) years.
func Easter(year int) Date {
	a := mod(year, 19)
	b := div(year, 100)
	c := mod(year, 100)
	d := div(b, 4)
	e := mod(b, 4)
	f := div(b+8, 25)
	g := div(b-f+1, 3)
	h := mod(19*a+b-d-g+15, 30)
	i := div(c, 4)
	k := mod(c, 4)
	l := mod(32+2*e+2*i-h-k, 7)
	m := div(a+11*h+22*l, 451)
	month := div(h+l-7*m+114, 31)
	day := mod(h+l-7*m+114, 31) + 1

	return Date{Year: year, Month: time.Month(month), Day: day}
}

// Ascension calculates Ascension Thursday for a given year.
// Ascension is 39 days after Easter.
func Ascension(year int) Date {
	return Easter(year).AddDays(39)
}

// div is floored integer division.
func div(a, n int) int {
	q := a / n
	if (a%n != 0) && ((a < 0) != (n < 0)) {
		q--
	}
	return q
}

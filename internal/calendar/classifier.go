package calendar

// rule is one entry of the ordered classification table.
// match receives the date plus the boundaries of its year and the year before.
type rule struct {
	name  string
	match func(d Date, cur, prev YearBoundaries) bool
	info  func(d Date, cur YearBoundaries) Info
}

// rules are evaluated in order and the first match wins. The Advent,
// Christmas and Lent windows are derived independently, so the order is
// what resolves any overlap between them.
var rules = []rule{
	{
		name: "advent",
		match: func(d Date, cur, _ YearBoundaries) bool {
			return !d.Before(cur.FirstSundayOfAdvent) && d.Before(cur.ChristmasDay)
		},
		info: fixed(SeasonAdvent),
	},
	{
		// Either the tail of last year's Christmas season, or this year's
		// Christmas Day onward.
		name: "christmas",
		match: func(d Date, cur, prev YearBoundaries) bool {
			if !d.Before(prev.ChristmasDay) && d.Before(cur.BaptismOfLord) {
				return true
			}
			return !d.Before(cur.ChristmasDay)
		},
		info: fixed(SeasonChristmas),
	},
	{
		name: "lent",
		match: func(d Date, cur, _ YearBoundaries) bool {
			return !d.Before(cur.AshWednesday) && d.Before(cur.EasterSunday)
		},
		info: func(d Date, cur YearBoundaries) Info {
			if !d.Before(cur.PalmSunday) {
				return holyWeekInfo()
			}
			return SeasonInfo(SeasonLent)
		},
	},
	{
		name: "easter",
		match: func(d Date, cur, _ YearBoundaries) bool {
			return !d.Before(cur.EasterSunday) && !d.After(cur.PentecostSunday)
		},
		info: fixed(SeasonEaster),
	},
	{
		name:  "ordinary_time",
		match: func(Date, YearBoundaries, YearBoundaries) bool { return true },
		info:  fixed(SeasonOrdinaryTime),
	},
}

func fixed(s Season) func(Date, YearBoundaries) Info {
	return func(Date, YearBoundaries) Info { return SeasonInfo(s) }
}

// RuleNames returns the classification rules in evaluation order.
func RuleNames() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

// Classify returns the liturgical info for d.
//
// cur must be the boundaries of d's year and prev those of the year before.
// The final rule always matches, so Classify is total.
func Classify(d Date, cur, prev YearBoundaries) Info {
	info, _ := classify(d, cur, prev)
	return info
}

// classify also reports which rule matched, for tests and logging.
func classify(d Date, cur, prev YearBoundaries) (Info, string) {
	for _, r := range rules {
		if r.match(d, cur, prev) {
			return r.info(d, cur), r.name
		}
	}
	// unreachable: the last rule matches everything
	return SeasonInfo(SeasonOrdinaryTime), "ordinary_time"
}

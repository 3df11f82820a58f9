package calendar

import "time"

// Provider answers liturgical questions about instants.
//
// It owns the reference location used to turn an instant into a civil date
// and the boundary cache. A Provider is safe for concurrent use.
type Provider struct {
	loc   *time.Location
	cache BoundaryCache
}

// Option configures a Provider.
type Option func(*Provider)

// WithLocation sets the reference time zone used to normalize instants.
// A nil location is ignored.
func WithLocation(loc *time.Location) Option {
	return func(p *Provider) {
		if loc != nil {
			p.loc = loc
		}
	}
}

// WithCache sets the boundary cache. A nil cache is ignored.
func WithCache(c BoundaryCache) Option {
	return func(p *Provider) {
		if c != nil {
			p.cache = c
		}
	}
}

// NewProvider creates a Provider. By default it normalizes in UTC and does not cache.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		loc:   time.UTC,
		cache: NoCache{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Location returns the reference time zone.
func (p *Provider) Location() *time.Location {
	return p.loc
}

// Today returns the civil date of t in the reference time zone.
func (p *Provider) Today(t time.Time) Date {
	return DateOf(t.In(p.loc))
}

// LiturgicalInfo returns the season, color and description for the day
// containing instant t in the reference time zone.
func (p *Provider) LiturgicalInfo(t time.Time) Info {
	return p.InfoForDate(p.Today(t))
}

// InfoForDate classifies an already-normalized civil date.
func (p *Provider) InfoForDate(d Date) Info {
	cur := p.cache.Boundaries(d.Year)
	prev := p.cache.Boundaries(d.Year - 1)
	return Classify(d, cur, prev)
}

// Boundaries returns the marker dates for a year.
func (p *Provider) Boundaries(year int) YearBoundaries {
	return p.cache.Boundaries(year)
}

// LiturgicalYear returns the liturgical year containing d.
// The liturgical year is named for the calendar year in which its Advent begins.
func (p *Provider) LiturgicalYear(d Date) int {
	return liturgicalYear(d, p.cache.Boundaries(d.Year))
}

package calendar

import (
	"maps"
	"strconv"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// BoundaryCache returns the YearBoundaries for a year, deriving them on a miss.
// Implementations must be safe for concurrent use.
type BoundaryCache interface {
	Boundaries(year int) YearBoundaries
}

var (
	_ BoundaryCache = NoCache{}
	_ BoundaryCache = (*SnapshotCache)(nil)
)

// NoCache derives boundaries on every call.
type NoCache struct{}

// Boundaries implements BoundaryCache.
func (NoCache) Boundaries(year int) YearBoundaries {
	return DeriveBoundaries(year)
}

// SnapshotCache is a copy-on-write BoundaryCache.
//
// Readers load an immutable map snapshot without locking. A miss derives
// the record and publishes a new snapshot containing it; concurrent misses
// for the same year share one derivation.
type SnapshotCache struct {
	snapshot atomic.Pointer[map[int]YearBoundaries]
	group    singleflight.Group
}

// NewSnapshotCache returns an empty SnapshotCache.
func NewSnapshotCache() *SnapshotCache {
	c := &SnapshotCache{}
	empty := map[int]YearBoundaries{}
	c.snapshot.Store(&empty)
	return c
}

// Boundaries implements BoundaryCache.
func (c *SnapshotCache) Boundaries(year int) YearBoundaries {
	if b, ok := (*c.snapshot.Load())[year]; ok {
		return b
	}

	v, _, _ := c.group.Do(strconv.Itoa(year), func() (any, error) {
		b := DeriveBoundaries(year)
		c.publish(b)
		return b, nil
	})
	return v.(YearBoundaries)
}

// Len returns the number of cached years.
func (c *SnapshotCache) Len() int {
	return len(*c.snapshot.Load())
}

func (c *SnapshotCache) publish(b YearBoundaries) {
	for {
		old := c.snapshot.Load()
		if _, ok := (*old)[b.Year]; ok {
			return
		}
		next := make(map[int]YearBoundaries, len(*old)+1)
		maps.Copy(next, *old)
		next[b.Year] = b
		if c.snapshot.CompareAndSwap(old, &next) {
			return
		}
	}
}

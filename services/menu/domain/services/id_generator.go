// Package services contains stateless domain services for the menu bounded context.
package services

import (
	"sync/atomic"
	"time"
)

// TimestampIDGenerator issues ids derived from the wall clock in milliseconds,
// bumped past both the highest id in use and the last id it issued so that
// rapid creates within one millisecond still get distinct ids.
type TimestampIDGenerator struct {
	now  func() time.Time
	last atomic.Int64
}

// NewTimestampIDGenerator returns a generator reading time from now.
// A nil now defaults to time.Now.
func NewTimestampIDGenerator(now func() time.Time) *TimestampIDGenerator {
	if now == nil {
		now = time.Now
	}
	return &TimestampIDGenerator{now: now}
}

// Next returns max(now_ms, highestInUse+1, last+1) and records it as last.
func (g *TimestampIDGenerator) Next(highestInUse int64) int64 {
	for {
		last := g.last.Load()
		id := max(g.now().UnixMilli(), highestInUse+1, last+1)
		if g.last.CompareAndSwap(last, id) {
			return id
		}
	}
}

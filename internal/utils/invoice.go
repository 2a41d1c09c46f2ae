package utils

import (
	"fmt"
	"sync"
	"time"
)

// ExternalIDGenerator produces "<prefix>-<unix millis>" identifiers.
// When two calls land in the same millisecond (or the clock steps back)
// the timestamp part is bumped past the last value handed out, so IDs
// never repeat within a process.
type ExternalIDGenerator struct {
	prefix string
	now    func() time.Time

	mu   sync.Mutex
	last int64
}

func NewExternalIDGenerator(prefix string) *ExternalIDGenerator {
	return NewExternalIDGeneratorWithClock(prefix, time.Now)
}

func NewExternalIDGeneratorWithClock(prefix string, now func() time.Time) *ExternalIDGenerator {
	return &ExternalIDGenerator{prefix: prefix, now: now}
}

func (g *ExternalIDGenerator) NewExternalID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms

	return fmt.Sprintf("%s-%d", g.prefix, ms)
}

package order

import (
	"strconv"
	"sync"
	"time"
)

const IDPrefix = "ORD"

// IDGenerator issues ids of the form ORD<unix millis>. When the clock has not
// advanced since the previous id, the millisecond value is bumped so ids stay
// unique within the process.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return IDPrefix + strconv.FormatInt(ms, 10)
}

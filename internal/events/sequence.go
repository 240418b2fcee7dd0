package events

import (
	"fmt"
	"sync"
)

// Sequencer hands out a monotonically increasing sequence per partition key,
// starting at 1. State lives for the lifetime of the process.
type Sequencer struct {
	mu   sync.Mutex
	last map[string]int64
}

func NewSequencer() *Sequencer {
	return &Sequencer{last: make(map[string]int64)}
}

func (s *Sequencer) NextSequence(partitionKey string) (int64, error) {
	if partitionKey == "" {
		return 0, fmt.Errorf("partition key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.last[partitionKey]++
	return s.last[partitionKey], nil
}

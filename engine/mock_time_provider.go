package engine

import (
	"sync"
	"time"
)

// SteppedTimeProvider is a deterministic TimeSource for tests
// Every Now call returns the pending instant and then advances it by the step
type SteppedTimeProvider struct {
	mu   sync.Mutex
	next time.Time
	step time.Duration
}

// NewSteppedTimeProvider starts at start; a zero step freezes time
func NewSteppedTimeProvider(start time.Time, step time.Duration) *SteppedTimeProvider {
	return &SteppedTimeProvider{next: start, step: step}
}

func (p *SteppedTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()

	t := p.next
	p.next = p.next.Add(p.step)
	return t
}

// Set replaces the pending instant
func (p *SteppedTimeProvider) Set(t time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.next = t
}

package engine

import "time"

// ClockLayout formats a timestamp as 24-hour zero-padded HH:MM:SS
const ClockLayout = "15:04:05"

// TimeSource yields wall-clock instants
type TimeSource interface {
	Now() time.Time
}

// TimeProvider provides the real system time in the local zone
type TimeProvider struct{}

// NewTimeProvider creates a system time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current local time
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// NowString returns the current local time as HH:MM:SS
func (p *TimeProvider) NowString() string {
	return FormatClock(p.Now())
}

// FormatClock formats t in its own location, sub-second precision discarded
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

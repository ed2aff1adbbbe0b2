package match

import (
	"log/slog"
	"time"
)

// Match timing thresholds since start.
const (
	DoubleElixirStart = 120 * time.Second
	RegularTimeEnd    = 180 * time.Second
	TripleElixirStart = 240 * time.Second
	MaxDuration       = 300 * time.Second
)

// Elixir generation rates in seconds per point.
const (
	NormalElixirRate = 2.8
	DoubleElixirRate = 1.4
	TripleElixirRate = 0.93
)

// Clock is the match-phase state machine. Time and rate are functions
// of elapsed wall-clock time; callers pass `now` explicitly so pacing
// is independent of polling cadence. Queries on an inactive or ended
// clock return zero/defined defaults and never fail.
type Clock struct {
	startedAt time.Time
	active    bool
	ended     bool
	logger    *slog.Logger
}

// NewClock returns an inactive Clock. logger may be nil.
func NewClock(logger *slog.Logger) *Clock {
	return &Clock{logger: logger}
}

// Start resets the elapsed-time origin to now and enters the normal
// phase. Starting again begins a fresh match.
func (c *Clock) Start(now time.Time) {
	c.startedAt = now
	c.active = true
	c.ended = false
	if c.logger != nil {
		c.logger.Info("match started")
	}
}

// End forces the terminal state. One-way and idempotent; elapsed time
// never ends a match on its own.
func (c *Clock) End() {
	if !c.active {
		return
	}
	c.active = false
	c.ended = true
	if c.logger != nil {
		c.logger.Info("match ended")
	}
}

// Active reports whether a match is being tracked.
func (c *Clock) Active() bool { return c.active }

// Elapsed returns time since match start, capped at MaxDuration.
// Zero when inactive or ended.
func (c *Clock) Elapsed(now time.Time) time.Duration {
	if !c.active || c.startedAt.IsZero() {
		return 0
	}
	elapsed := now.Sub(c.startedAt)
	if elapsed < 0 {
		return 0
	}
	if elapsed > MaxDuration {
		return MaxDuration
	}
	return elapsed
}

// Remaining returns time left until MaxDuration, zero when inactive.
func (c *Clock) Remaining(now time.Time) time.Duration {
	if !c.active {
		return 0
	}
	return MaxDuration - c.Elapsed(now)
}

// Phase returns the current match phase.
func (c *Clock) Phase(now time.Time) Phase {
	if c.ended {
		return PhaseEnded
	}
	if !c.active {
		return PhaseInactive
	}
	elapsed := c.Elapsed(now)
	switch {
	case elapsed < DoubleElixirStart:
		return PhaseNormal
	case elapsed < RegularTimeEnd:
		return PhaseDouble
	case elapsed < TripleElixirStart:
		return PhaseOvertimeDouble
	default:
		return PhaseOvertimeTriple
	}
}

// Rate returns the elixir generation rate in seconds per point for the
// current elapsed time. The default rate applies when inactive.
func (c *Clock) Rate(now time.Time) float64 {
	elapsed := c.Elapsed(now)
	switch {
	case elapsed < DoubleElixirStart:
		return NormalElixirRate
	case elapsed < TripleElixirStart:
		return DoubleElixirRate
	default:
		return TripleElixirRate
	}
}

// IsOvertime reports whether regular time is over.
func (c *Clock) IsOvertime(now time.Time) bool {
	return c.Elapsed(now) >= RegularTimeEnd
}

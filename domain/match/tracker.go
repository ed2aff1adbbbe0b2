package match

import (
	"fmt"
	"log/slog"
	"time"
)

// Tracker owns one match's clock and elixir meter and formats their
// state for the HUD. A session constructs one Tracker and drives it
// from its cycle; there is no package-level shared state.
type Tracker struct {
	clock *Clock
	meter *Meter
}

// NewTracker returns an inactive Tracker. logger may be nil.
func NewTracker(logger *slog.Logger) *Tracker {
	clock := NewClock(logger)
	return &Tracker{clock: clock, meter: NewMeter(clock, logger)}
}

// Start begins tracking a new match at now. Elixir resets to the
// starting balance.
func (t *Tracker) Start(now time.Time) {
	t.clock.Start(now)
	t.meter.Reset(now)
}

// End stops the match. Idempotent.
func (t *Tracker) End() { t.clock.End() }

// Active reports whether a match is in progress.
func (t *Tracker) Active() bool { return t.clock.Active() }

// Elapsed, Phase and Rate delegate to the clock.
func (t *Tracker) Elapsed(now time.Time) time.Duration { return t.clock.Elapsed(now) }
func (t *Tracker) Phase(now time.Time) Phase           { return t.clock.Phase(now) }
func (t *Tracker) Rate(now time.Time) float64          { return t.clock.Rate(now) }
func (t *Tracker) IsOvertime(now time.Time) bool       { return t.clock.IsOvertime(now) }

// Elixir accrues and returns the current balance.
func (t *Tracker) Elixir(now time.Time) float64 { return t.meter.Current(now) }

// Spend accrues up to now, then attempts to spend amount.
func (t *Tracker) Spend(amount float64, now time.Time) error {
	t.meter.Accrue(now)
	return t.meter.Spend(amount)
}

// FormattedTime returns elapsed match time as "M:SS".
func (t *Tracker) FormattedTime(now time.Time) string {
	return formatClock(t.clock.Elapsed(now))
}

// FormattedRemaining returns time left as "M:SS".
func (t *Tracker) FormattedRemaining(now time.Time) string {
	return formatClock(t.clock.Remaining(now))
}

// StatusString returns a one-line HUD summary of time, elixir, phase
// and rate.
func (t *Tracker) StatusString(now time.Time) string {
	if !t.clock.Active() {
		return "No active match"
	}
	return fmt.Sprintf("Time: %s | Elixir: %.1f/10 | Phase: %s | Rate: %.2fs/elixir",
		t.FormattedTime(now), t.Elixir(now), t.Phase(now), t.Rate(now))
}

func formatClock(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

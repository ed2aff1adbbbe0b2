package match

import (
	"errors"
	"log/slog"
	"time"
)

// Elixir bounds.
const (
	StartingElixir = 5.0
	MaxElixir      = 10.0
)

var (
	// ErrInsufficientElixir is returned by Spend when the balance is too low.
	ErrInsufficientElixir = errors.New("match: insufficient elixir")
	// ErrNegativeAmount is returned by Spend for amounts below zero.
	ErrNegativeAmount = errors.New("match: negative elixir amount")
)

// RateSource supplies the generation rate; satisfied by *Clock.
type RateSource interface {
	Rate(now time.Time) float64
	Active() bool
}

// Meter accrues elixir continuously from elapsed wall-clock time.
// Accrual is delta-based, so fine- or coarse-grained polling yields the
// same balance for the same instant. Not safe for concurrent use.
type Meter struct {
	rates      RateSource
	elixir     float64
	lastUpdate time.Time
	logger     *slog.Logger
}

// NewMeter returns a Meter at the starting balance. logger may be nil.
func NewMeter(rates RateSource, logger *slog.Logger) *Meter {
	return &Meter{rates: rates, elixir: StartingElixir}
}

// Reset restores the starting balance and anchors accrual at now.
// Called when a new match starts.
func (m *Meter) Reset(now time.Time) {
	m.elixir = StartingElixir
	m.lastUpdate = now
}

// Accrue advances the balance by elapsed/rate, clamped at MaxElixir.
// No-op while the match is inactive.
func (m *Meter) Accrue(now time.Time) {
	if m.rates == nil || !m.rates.Active() {
		return
	}
	if m.lastUpdate.IsZero() {
		m.lastUpdate = now
		return
	}
	dt := now.Sub(m.lastUpdate).Seconds()
	if dt <= 0 {
		return
	}
	rate := m.rates.Rate(now)
	if rate > 0 {
		m.elixir += dt / rate
		if m.elixir > MaxElixir {
			m.elixir = MaxElixir
		}
	}
	m.lastUpdate = now
}

// Current accrues up to now and returns the balance.
func (m *Meter) Current(now time.Time) float64 {
	m.Accrue(now)
	return m.elixir
}

// Spend subtracts amount from the balance. On failure the balance is
// unchanged.
func (m *Meter) Spend(amount float64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if m.elixir < amount {
		if m.logger != nil {
			m.logger.Debug("spend rejected", "have", m.elixir, "need", amount)
		}
		return ErrInsufficientElixir
	}
	m.elixir -= amount
	return nil
}

package match

import (
	"strings"
	"testing"
	"time"
)

func TestTracker_StatusInactive(t *testing.T) {
	tr := NewTracker(nil)
	if got := tr.StatusString(base); got != "No active match" {
		t.Fatalf("status = %q", got)
	}
}

func TestTracker_StatusString(t *testing.T) {
	tr := NewTracker(nil)
	tr.Start(base)
	got := tr.StatusString(base.Add(125 * time.Second))
	want := "Time: 2:05 | Elixir: 10.0/10 | Phase: double | Rate: 1.40s/elixir"
	if got != want {
		t.Fatalf("status = %q, want %q", got, want)
	}
}

func TestTracker_FormattedTimes(t *testing.T) {
	tr := NewTracker(nil)
	tr.Start(base)
	now := base.Add(65 * time.Second)
	if got := tr.FormattedTime(now); got != "1:05" {
		t.Fatalf("formatted time = %q", got)
	}
	if got := tr.FormattedRemaining(now); got != "3:55" {
		t.Fatalf("formatted remaining = %q", got)
	}
}

func TestTracker_SpendAccruesFirst(t *testing.T) {
	tr := NewTracker(nil)
	tr.Start(base)
	// After 14s at the normal rate the balance is 5 + 14/2.8 = 10.
	now := base.Add(14 * time.Second)
	if err := tr.Spend(9, now); err != nil {
		t.Fatalf("spend should succeed after accrual: %v", err)
	}
	if got := tr.Elixir(now); got > 1.0001 || got < 0.9999 {
		t.Fatalf("balance after spend = %v", got)
	}
}

func TestTracker_RestartResetsElixir(t *testing.T) {
	tr := NewTracker(nil)
	tr.Start(base)
	_ = tr.Spend(4, base)
	tr.End()
	if !strings.Contains(tr.StatusString(base), "No active match") {
		t.Fatalf("status after end = %q", tr.StatusString(base))
	}
	later := base.Add(time.Hour)
	tr.Start(later)
	if got := tr.Elixir(later); got != StartingElixir {
		t.Fatalf("restart should reset elixir, got %v", got)
	}
}

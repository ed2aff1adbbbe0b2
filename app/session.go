package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/lemus-D/clashBot/domain/board"
	"github.com/lemus-D/clashBot/domain/capture"
	"github.com/lemus-D/clashBot/domain/detect"
	"github.com/lemus-D/clashBot/domain/match"
)

// ErrNoFrame signals that no capture has arrived yet; the cycle is
// skipped, not failed.
var ErrNoFrame = errors.New("app: no frame available")

// Session owns one match's mutable state: the Board (via its
// reconstructor) and the match tracker. A single Run loop drives
// cycles; the mutex exists for readers (HUD, server) so they never
// observe a half-updated board. The reconstruction cycle is the unit
// of atomicity.
type Session struct {
	frames capture.FrameSource
	source detect.Source
	logger *slog.Logger

	mu          sync.Mutex
	recon       *board.Reconstructor
	tracker     *match.Tracker
	lastSummary board.Summary
	frameIndex  uint64
	lastSeq     uint64
}

// NewSession wires a session from its collaborators. logger may be nil.
func NewSession(frames capture.FrameSource, source detect.Source, logger *slog.Logger) *Session {
	return &Session{
		frames:  frames,
		source:  source,
		tracker: match.NewTracker(logger),
		logger:  logger,
	}
}

// RunCycle processes the latest frame: classify detections, rebuild the
// board, advance elixir accrual. Detection runs outside the lock; the
// board swap happens inside it.
func (s *Session) RunCycle(ctx context.Context, now time.Time) error {
	defer s.accrue(now)

	snap := s.frames.LatestFrame()
	if snap.Image == nil || snap.Region.Empty() {
		return ErrNoFrame
	}
	if snap.Sequence == s.lastSeq {
		return nil // no new frame since the last cycle
	}

	dets, err := s.source.Detect(ctx, snap.Image)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureReconstructor(snap.Region.Width, snap.Region.Height); err != nil {
		return err
	}
	s.lastSummary = s.recon.Reconstruct(dets)
	s.frameIndex++
	s.lastSeq = snap.Sequence
	return nil
}

// ensureReconstructor rebuilds the board stack when the capture-region
// size changes (window resized). Caller holds the lock.
func (s *Session) ensureReconstructor(w, h int) error {
	if s.recon != nil {
		cw, ch := s.recon.Mapper().Region()
		if cw == w && ch == h {
			return nil
		}
		if s.logger != nil {
			s.logger.Info("capture region resized", "w", w, "h", h)
		}
	}
	recon, err := board.NewReconstructor(w, h, s.logger)
	if err != nil {
		return err
	}
	s.recon = recon
	return nil
}

func (s *Session) accrue(now time.Time) {
	s.mu.Lock()
	s.tracker.Elixir(now)
	s.mu.Unlock()
}

// StartMatch begins tracking a new match.
func (s *Session) StartMatch(now time.Time) {
	s.mu.Lock()
	s.tracker.Start(now)
	s.mu.Unlock()
}

// EndMatch stops match tracking. Idempotent.
func (s *Session) EndMatch() {
	s.mu.Lock()
	s.tracker.End()
	s.mu.Unlock()
}

// MatchActive reports whether a match is being tracked.
func (s *Session) MatchActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Active()
}

// Spend attempts to pay amount elixir at now.
func (s *Session) Spend(amount float64, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Spend(amount, now)
}

// Status returns the one-line HUD status.
func (s *Session) Status(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.StatusString(now)
}

// Summary returns the latest reconstruction summary. The slices are
// replaced wholesale each cycle and never mutated afterwards.
func (s *Session) Summary() board.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSummary
}

// BoardDump renders the current board as text, empty before the first
// frame.
func (s *Session) BoardDump() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.recon == nil {
		return ""
	}
	return s.recon.Board().Render()
}

// BoardCells returns copies of the hand slots and arena grid.
func (s *Session) BoardCells() ([board.HandSize]board.Cell, [board.ArenaHeight][board.ArenaWidth]board.Cell) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.recon == nil {
		return [board.HandSize]board.Cell{}, [board.ArenaHeight][board.ArenaWidth]board.Cell{}
	}
	b := s.recon.Board()
	return b.Hand(), b.Arena()
}

// FrameIndex counts processed frames.
func (s *Session) FrameIndex() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameIndex
}

// Run drives cycles at the given interval until ctx is cancelled. One
// cycle completes before the next begins.
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := s.RunCycle(ctx, time.Now())
			if err != nil && !errors.Is(err, ErrNoFrame) && s.logger != nil {
				s.logger.Error("cycle failed", "error", err)
			}
		}
	}
}

package capture

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lemus-D/clashBot/domain/window"
)

const statsLogInterval = 5 * time.Second

// service grabs the tracked window region in a background loop and
// publishes the freshest frame through an atomic pointer. Readers never
// block the capture loop.
type service struct {
	running      atomic.Bool
	latest       atomic.Pointer[FrameSnapshot]
	regionFn     func() (window.Region, error)
	interval     time.Duration
	logger       *slog.Logger
	captures     atomic.Uint64
	skipped      atomic.Uint64
	captureNanos atomic.Uint64
	sequence     atomic.Uint64
}

// NewService constructs a capture service. regionFn is consulted every
// iteration so the capture follows the window. logger may be nil.
func NewService(regionFn func() (window.Region, error), interval time.Duration, logger *slog.Logger) Service {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return &service{regionFn: regionFn, interval: interval, logger: logger}
}

func (s *service) LatestFrame() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

func (s *service) Running() bool { return s.running.Load() }

func (s *service) Stats() Stats {
	captures := s.captures.Load()
	total := s.captureNanos.Load()
	var avg time.Duration
	if captures > 0 && total > 0 {
		avg = time.Duration(total / captures)
	}
	snapshot := s.LatestFrame()
	age := time.Duration(0)
	if !snapshot.CapturedAt.IsZero() {
		age = time.Since(snapshot.CapturedAt)
	}
	return Stats{
		Captures:       captures,
		Skipped:        s.skipped.Load(),
		AvgCapture:     avg,
		LastCapture:    snapshot.CapturedAt,
		LatestFrameAge: age,
		Sequence:       snapshot.Sequence,
	}
}

func (s *service) Start() {
	if s.running.Load() {
		return
	}
	s.running.Store(true)
	go s.loop()
}

func (s *service) Stop() {
	if !s.running.Load() {
		return
	}
	s.running.Store(false)
}

func (s *service) loop() {
	logTicker := time.NewTicker(statsLogInterval)
	defer logTicker.Stop()
	for s.running.Load() {
		start := time.Now()

		region, err := s.regionFn()
		if err != nil {
			if s.logger != nil {
				s.logger.Error("capture region", "error", err)
			}
			s.skipped.Add(1)
			time.Sleep(s.interval)
			continue
		}

		img, err := GrabRegion(region.Rect())
		if err != nil {
			if s.logger != nil {
				s.logger.Error("capture grab", "error", err)
			}
			s.skipped.Add(1)
			time.Sleep(s.interval)
			continue
		}

		elapsed := time.Since(start)
		s.captureNanos.Add(uint64(elapsed.Nanoseconds()))
		s.captures.Add(1)
		seq := s.sequence.Add(1)
		s.latest.Store(&FrameSnapshot{Image: img, Region: region, CapturedAt: time.Now(), Sequence: seq})

		select {
		case <-logTicker.C:
			s.logStats()
		default:
		}

		time.Sleep(s.interval)
	}
}

func (s *service) logStats() {
	if s.logger == nil {
		return
	}
	stats := s.Stats()
	s.logger.Debug("capture.stats",
		"captures", stats.Captures,
		"skipped", stats.Skipped,
		"avg_capture", stats.AvgCapture,
		"age", stats.LatestFrameAge,
	)
}

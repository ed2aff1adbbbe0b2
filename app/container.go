package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/lemus-D/clashBot/config"
	"github.com/lemus-D/clashBot/domain/action"
	"github.com/lemus-D/clashBot/domain/capture"
	"github.com/lemus-D/clashBot/domain/detect"
	"github.com/lemus-D/clashBot/domain/window"
	"github.com/lemus-D/clashBot/server"
)

// Container assembles the window tracker, capture service, perception
// client, session, saver, placer and optional debug server.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Windows window.Tracker
	Capture capture.Service
	Source  detect.Source
	Session *Session
	Saver   *Saver
	Placer  *action.Placer
	Server  *server.Server

	cancel context.CancelFunc
}

// BuildContainer constructs all components. No goroutines start until
// Start is called.
func BuildContainer(cfg *config.Config, logger *slog.Logger) *Container {
	c := &Container{Config: cfg, Logger: logger}

	insets := window.Insets{
		Top:        cfg.InsetTop,
		Left:       cfg.InsetLeft,
		TrimWidth:  cfg.TrimWidth,
		TrimHeight: cfg.TrimHeight,
	}
	c.Windows = window.NewTracker(cfg.WindowTitle, insets, logger)

	interval := time.Duration(cfg.CaptureIntervalMs) * time.Millisecond
	c.Capture = capture.NewService(c.Windows.Region, interval, logger)

	c.Source = detect.NewRoboflowClient(cfg.ModelID, cfg.APIKey, cfg.MinConfidence, logger)
	c.Session = NewSession(c.Capture, c.Source, logger)
	c.Saver = NewSaver(cfg.DumpDir, cfg.AggregateDump, logger)
	c.Placer = action.NewPlacer(cfg.MouseControl, logger)

	if cfg.ServerAddr != "" {
		c.Server = server.New(cfg.ServerAddr, c.Session, logger)
	}
	return c
}

// Start activates the game window, then launches the capture loop, the
// session cycle loop and the debug server.
func (c *Container) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	if err := c.Windows.Activate(); err != nil && c.Logger != nil {
		c.Logger.Warn("window activation failed", "title", c.Config.WindowTitle, "error", err)
		if titles, lerr := window.ListWindows(); lerr == nil {
			c.Logger.Info("visible windows", "titles", titles)
		}
		if fg, ferr := window.ForegroundWindowTitle(); ferr == nil {
			c.Logger.Info("foreground window", "title", fg)
		}
	}
	c.Capture.Start()
	go c.Session.Run(ctx, time.Duration(c.Config.CaptureIntervalMs)*time.Millisecond)
	if c.Server != nil {
		c.Server.Start()
	}
}

// Stop shuts everything down. Safe to call once.
func (c *Container) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	c.Capture.Stop()
	if c.Server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = c.Server.Shutdown(ctx)
	}
}

// SaveSnapshot persists the current board and summary.
func (c *Container) SaveSnapshot(now time.Time) (string, error) {
	return c.Saver.Save(c.Session.FrameIndex(), now, c.Session.BoardDump(), c.Session.Summary().Dump())
}

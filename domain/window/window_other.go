//go:build !windows

package window

import (
	"errors"
	"log/slog"
)

// fixedTracker serves a static region on platforms without window
// enumeration support. The insets are applied to a configured screen
// rectangle once at construction.
type fixedTracker struct {
	region Region
}

// NewTracker returns a Tracker that reports a fixed region derived
// from the primary-screen defaults minus the insets. Window discovery
// is a Windows-only collaborator.
func NewTracker(title string, insets Insets, logger *slog.Logger) Tracker {
	win := Region{Top: 0, Left: 0, Width: 1280, Height: 720}
	if logger != nil {
		logger.Warn("window tracking unavailable on this platform; using fixed region", "title", title)
	}
	return &fixedTracker{region: insets.Apply(win)}
}

func (t *fixedTracker) Region() (Region, error) {
	if t.region.Empty() {
		return Region{}, errors.New("window: fixed region empty")
	}
	return t.region, nil
}

func (t *fixedTracker) Activate() error { return nil }

// ListWindows is unsupported off Windows.
func ListWindows() ([]string, error) {
	return nil, errors.New("window: enumeration not supported on this platform")
}

// ForegroundWindowTitle is unsupported off Windows.
func ForegroundWindowTitle() (string, error) {
	return "", errors.New("window: foreground query not supported on this platform")
}

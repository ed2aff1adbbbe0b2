package capture

import (
	"image"
	"time"

	"github.com/lemus-D/clashBot/domain/window"
)

// FrameSnapshot carries the latest captured frame and metadata. Region
// records where on screen the frame was taken, so detections stay
// interpretable when the window moves between cycles.
type FrameSnapshot struct {
	Image      *image.RGBA
	Region     window.Region
	CapturedAt time.Time
	Sequence   uint64
}

// Stats summarises capture loop behaviour for instrumentation.
type Stats struct {
	Captures       uint64
	Skipped        uint64
	AvgCapture     time.Duration
	LastCapture    time.Time
	LatestFrameAge time.Duration
	Sequence       uint64
}

// FrameSource provides read-only access to captured frames.
type FrameSource interface {
	LatestFrame() FrameSnapshot
	Running() bool
}

// Service is the capture lifecycle used by the app container.
type Service interface {
	FrameSource
	Start()
	Stop()
	Stats() Stats
}

package detect

import (
	"context"
	"image"

	"github.com/lemus-D/clashBot/domain/board"
)

// Source produces raw detections for one frame. Implementations wrap
// the external perception model; the core never inspects pixels itself.
type Source interface {
	Detect(ctx context.Context, frame *image.RGBA) ([]board.RawDetection, error)
}

// StaticSource returns a fixed detection list for every frame. Used in
// tests and for offline replays.
type StaticSource struct {
	Detections []board.RawDetection
	Err        error
}

func (s *StaticSource) Detect(ctx context.Context, frame *image.RGBA) ([]board.RawDetection, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Detections, nil
}

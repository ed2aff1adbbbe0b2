package capture

import (
	"fmt"
	"image"

	"github.com/vova616/screenshot"
)

// Grab returns a capture of the whole screen.
func Grab() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, err
	}
	return img, nil
}

// GrabRegion captures the given screen rectangle.
func GrabRegion(r image.Rectangle) (*image.RGBA, error) {
	if r.Empty() {
		return nil, fmt.Errorf("capture: empty region %v", r)
	}
	img, err := screenshot.CaptureRect(r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

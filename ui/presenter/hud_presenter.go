package presenter

import (
	"image"
	"time"

	"github.com/lemus-D/clashBot/domain/capture"
	"github.com/lemus-D/clashBot/ui/images"
	"github.com/lemus-D/clashBot/ui/model"
)

// Preview bounds inside the HUD window.
const (
	previewMaxW = 280
	previewMaxH = 500
)

// SessionState narrows the session surface the HUD reads.
type SessionState interface {
	Status(now time.Time) string
	BoardDump() string
}

// HUDView receives formatted state from the presenter.
type HUDView interface {
	SetStatus(text string)
	SetBoard(text string)
	UpdatePreview(img image.Image)
}

// HUDPresenter pulls session state and the latest frame on each tick
// and pushes changes to the view.
type HUDPresenter struct {
	session SessionState
	frames  capture.FrameSource
	model   *model.HUDModel
	view    HUDView
}

// NewHUDPresenter returns a presenter. Any nil collaborator makes Tick
// a no-op for the corresponding concern.
func NewHUDPresenter(session SessionState, frames capture.FrameSource, m *model.HUDModel, view HUDView) *HUDPresenter {
	return &HUDPresenter{session: session, frames: frames, model: m, view: view}
}

// Tick refreshes the view. Runs on the UI thread.
func (p *HUDPresenter) Tick(now time.Time) {
	if p == nil || p.view == nil || p.model == nil {
		return
	}
	if p.session != nil {
		if status := p.session.Status(now); p.model.SetStatus(status) {
			p.view.SetStatus(status)
		}
		if dump := p.session.BoardDump(); p.model.SetBoardDump(dump) {
			p.view.SetBoard(dump)
		}
	}
	if p.frames != nil {
		snap := p.frames.LatestFrame()
		if snap.Image != nil && p.model.SetFrameSeq(snap.Sequence) {
			p.view.UpdatePreview(images.ScaleToFit(snap.Image, previewMaxW, previewMaxH))
		}
	}
}

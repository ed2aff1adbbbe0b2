package presenter

import (
	"image"
	"testing"
	"time"

	"github.com/lemus-D/clashBot/domain/capture"
	"github.com/lemus-D/clashBot/ui/model"
)

type mockSession struct {
	status string
	dump   string
}

func (s *mockSession) Status(time.Time) string { return s.status }
func (s *mockSession) BoardDump() string       { return s.dump }

type mockFrames struct{ snap capture.FrameSnapshot }

func (f *mockFrames) LatestFrame() capture.FrameSnapshot { return f.snap }
func (f *mockFrames) Running() bool                      { return true }

var _ capture.FrameSource = (*mockFrames)(nil)

type mockView struct {
	statusCalls, boardCalls, previewCalls int
	lastStatus, lastBoard                 string
	lastPreview                           image.Image
}

func (v *mockView) SetStatus(s string)            { v.statusCalls++; v.lastStatus = s }
func (v *mockView) SetBoard(s string)             { v.boardCalls++; v.lastBoard = s }
func (v *mockView) UpdatePreview(img image.Image) { v.previewCalls++; v.lastPreview = img }

func TestHUDPresenter_PushesOnlyChanges(t *testing.T) {
	sess := &mockSession{status: "No active match", dump: "Hand:\n"}
	frames := &mockFrames{}
	view := &mockView{}
	p := NewHUDPresenter(sess, frames, model.NewHUDModel(), view)
	now := time.Unix(1_700_000_000, 0)

	p.Tick(now)
	if view.statusCalls != 1 || view.lastStatus != "No active match" {
		t.Fatalf("statusCalls=%d lastStatus=%q", view.statusCalls, view.lastStatus)
	}
	if view.boardCalls != 1 || view.lastBoard != "Hand:\n" {
		t.Fatalf("boardCalls=%d lastBoard=%q", view.boardCalls, view.lastBoard)
	}

	// Same state: no extra pushes.
	p.Tick(now.Add(time.Second))
	if view.statusCalls != 1 || view.boardCalls != 1 {
		t.Fatalf("unchanged state was re-pushed: statusCalls=%d boardCalls=%d", view.statusCalls, view.boardCalls)
	}

	sess.status = "Time: 0:05 | Elixir: 6.8/10 | Phase: normal | Rate: 2.80s/elixir"
	p.Tick(now.Add(2 * time.Second))
	if view.statusCalls != 2 || view.lastStatus != sess.status {
		t.Fatalf("status change not pushed: calls=%d last=%q", view.statusCalls, view.lastStatus)
	}
}

func TestHUDPresenter_PreviewFollowsFrameSequence(t *testing.T) {
	frames := &mockFrames{}
	view := &mockView{}
	p := NewHUDPresenter(nil, frames, model.NewHUDModel(), view)
	now := time.Now()

	// No frame yet.
	p.Tick(now)
	if view.previewCalls != 0 {
		t.Fatalf("preview pushed without a frame")
	}

	frames.snap = capture.FrameSnapshot{
		Image:    image.NewRGBA(image.Rect(0, 0, 90, 160)),
		Sequence: 1,
	}
	p.Tick(now)
	if view.previewCalls != 1 || view.lastPreview == nil {
		t.Fatalf("previewCalls=%d", view.previewCalls)
	}

	// Same sequence: no re-push.
	p.Tick(now)
	if view.previewCalls != 1 {
		t.Fatalf("stale frame re-pushed: previewCalls=%d", view.previewCalls)
	}

	frames.snap.Sequence = 2
	p.Tick(now)
	if view.previewCalls != 2 {
		t.Fatalf("new frame not pushed: previewCalls=%d", view.previewCalls)
	}
}

func TestHUDPresenter_NilSafe(t *testing.T) {
	var p *HUDPresenter
	p.Tick(time.Now()) // must not panic

	NewHUDPresenter(nil, nil, nil, nil).Tick(time.Now())
}

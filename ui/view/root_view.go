package view

import (
	"image"
	"log/slog"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level HUD layout and wires UI callbacks.
// It owns the subviews and exposes update methods for presenters.
type RootView struct {
	logger *slog.Logger

	// Subviews
	Board   BoardPanel
	Preview FramePreview

	// Widgets
	StatusLabel *LabelWidget
	matchBtn    *ButtonWidget
	matchActive bool
}

// Callbacks bundles the user-action handlers installed by Build.
type Callbacks struct {
	OnToggleCapture func()
	OnStartMatch    func()
	OnEndMatch      func()
	OnSaveSnapshot  func()
	OnExit          func()
}

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout. Handlers are invoked on user actions.
func (rv *RootView) Build(cb Callbacks) {
	if rv == nil {
		return
	}
	// Row 0: status label spanning the board and preview columns.
	rv.StatusLabel = Label(Txt("No active match"), Borderwidth(1), Relief("ridge"), Anchor("w"))
	Grid(rv.StatusLabel, Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	// Column 0: board text, column 1: frame preview, column 2: buttons.
	rv.Board = NewBoardPanel(1, 0)
	rv.Preview = NewFramePreview(1, 1)

	btnFrame := Frame()
	Grid(btnFrame, Row(1), Column(2), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	addButton := func(row int, label string, handler func()) *ButtonWidget {
		b := Button(Txt(label), Command(handler))
		Grid(b, In(btnFrame), Row(row), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		return b
	}
	addButton(0, "Toggle Capture", cb.OnToggleCapture)
	rv.matchBtn = addButton(1, "Start Match", func() {
		if rv.matchActive {
			if cb.OnEndMatch != nil {
				cb.OnEndMatch()
			}
		} else if cb.OnStartMatch != nil {
			cb.OnStartMatch()
		}
	})
	addButton(2, "Save Snapshot", cb.OnSaveSnapshot)
	addButton(3, "Exit", cb.OnExit)
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// SetBoard replaces the board panel content.
func (rv *RootView) SetBoard(text string) {
	if rv != nil && rv.Board != nil {
		rv.Board.SetBoard(text)
	}
}

// UpdatePreview proxies to the frame preview.
func (rv *RootView) UpdatePreview(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Update(img)
	}
}

// SetMatchActive flips the match button label between start and end.
func (rv *RootView) SetMatchActive(active bool) {
	if rv == nil || rv.matchBtn == nil {
		return
	}
	rv.matchActive = active
	if active {
		rv.matchBtn.Configure(Txt("End Match"))
	} else {
		rv.matchBtn.Configure(Txt("Start Match"))
	}
}

// PreviewReset clears the frame preview.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}

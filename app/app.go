package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/lemus-D/clashBot/config"
	"github.com/lemus-D/clashBot/ui/model"
	"github.com/lemus-D/clashBot/ui/presenter"
	"github.com/lemus-D/clashBot/ui/view"
)

const tick = 100 * time.Millisecond

// app owns the Tk shell: it builds the container and root view, wires
// button callbacks and drives the presenter loop on Tk's event thread.
type app struct {
	cfg    *config.Config
	logger *slog.Logger

	container *Container
	rootView  *view.RootView
	hudModel  *model.HUDModel
	capModel  *model.CaptureModel
	loop      *presenter.Loop

	afterID string
}

func NewApp(title string, width, height int, cfg *config.Config, logger *slog.Logger) *app {
	a := &app{cfg: cfg, logger: logger}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))

	a.container = BuildContainer(cfg, logger)
	a.hudModel = model.NewHUDModel()
	a.capModel = &model.CaptureModel{}
	a.rootView = view.NewRootView(logger)
	return a
}

// Start builds the layout, launches the background services and enters
// the Tk event loop. Blocks until the window is closed.
func (a *app) Start() {
	a.rootView.Build(view.Callbacks{
		OnToggleCapture: a.toggleCapture,
		OnStartMatch:    a.startMatch,
		OnEndMatch:      a.endMatch,
		OnSaveSnapshot:  a.saveSnapshot,
		OnExit:          a.exitHandler,
	})

	hud := presenter.NewHUDPresenter(a.container.Session, a.container.Capture, a.hudModel, a.rootView)
	a.loop = presenter.NewLoop(hud, a.scheduleUpdate)

	a.container.Start()
	a.capModel.SetEnabled(true)

	a.scheduleUpdate()
	App.Wait()
}

func (a *app) scheduleUpdate() {
	a.afterID = TclAfter(tick, func() { a.loop.Tick() })
}

func (a *app) toggleCapture() {
	if a.capModel.Toggle() {
		a.container.Capture.Start()
		if a.logger != nil {
			a.logger.Info("capture enabled")
		}
		return
	}
	a.container.Capture.Stop()
	a.rootView.PreviewReset()
	if a.logger != nil {
		a.logger.Info("capture disabled")
	}
}

func (a *app) startMatch() {
	a.container.Session.StartMatch(time.Now())
	a.rootView.SetMatchActive(true)
}

func (a *app) endMatch() {
	a.container.Session.EndMatch()
	a.rootView.SetMatchActive(false)
}

func (a *app) saveSnapshot() {
	path, err := a.container.SaveSnapshot(time.Now())
	if err != nil {
		if a.logger != nil {
			a.logger.Error("snapshot save failed", "error", err)
		}
		return
	}
	if a.logger != nil {
		a.logger.Info("snapshot saved", "path", path)
	}
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	a.container.Stop()
	Destroy(App)
}

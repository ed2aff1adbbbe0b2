package presenter

import "time"

// Loop drives periodic HUD updates.
//
// It calls Tick on the HUD presenter and invokes a scheduler callback
// so the caller can re-arm the next tick. The zero value is usable
// (methods are nil-safe).
type Loop struct {
	HUD      *HUDPresenter
	Schedule func()
}

func NewLoop(hud *HUDPresenter, schedule func()) *Loop {
	return &Loop{HUD: hud, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	if l.HUD != nil {
		l.HUD.Tick(time.Now())
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}

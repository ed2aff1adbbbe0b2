package model

// HUDModel caches the strings shown by the HUD so presenters touch
// widgets only when something actually changed. No synchronization
// needed: updates occur on the UI thread tick.
type HUDModel struct {
	status    string
	boardDump string
	frameSeq  uint64
}

func NewHUDModel() *HUDModel { return &HUDModel{} }

// SetStatus stores the status line and reports whether it changed.
func (m *HUDModel) SetStatus(s string) bool {
	if m == nil || m.status == s {
		return false
	}
	m.status = s
	return true
}

// SetBoardDump stores the board text and reports whether it changed.
func (m *HUDModel) SetBoardDump(s string) bool {
	if m == nil || m.boardDump == s {
		return false
	}
	m.boardDump = s
	return true
}

// SetFrameSeq stores the latest rendered capture sequence and reports
// whether a newer frame arrived.
func (m *HUDModel) SetFrameSeq(seq uint64) bool {
	if m == nil || seq == 0 || m.frameSeq == seq {
		return false
	}
	m.frameSeq = seq
	return true
}

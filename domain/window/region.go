package window

import "image"

// Region is a capture rectangle in screen coordinates.
type Region struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// Rect converts the region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Left+r.Width, r.Top+r.Height)
}

// Empty reports whether the region has no area.
func (r Region) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// ToGlobal converts a region-local pixel coordinate to screen space.
func (r Region) ToGlobal(x, y int) (int, int) {
	return r.Left + x, r.Top + y
}

// Insets crop a window rectangle down to the playfield; they account
// for the emulator chrome around the game view.
type Insets struct {
	Top        int
	Left       int
	TrimWidth  int
	TrimHeight int
}

// Apply shrinks a window region by the insets.
func (i Insets) Apply(win Region) Region {
	return Region{
		Top:    win.Top + i.Top,
		Left:   win.Left + i.Left,
		Width:  win.Width - i.TrimWidth,
		Height: win.Height - i.TrimHeight,
	}
}

// Tracker resolves the game window's playfield region. Region is
// queried every cycle so a moved window is followed.
type Tracker interface {
	Region() (Region, error)
	Activate() error
}

//go:build windows

package window

// Win32 window discovery and activation. Titles are matched
// case-insensitively by substring so "BlueStacks" finds
// "BlueStacks App Player 1".

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"syscall"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumWindows         = user32.NewProc("EnumWindows")
	procGetWindowTextW      = user32.NewProc("GetWindowTextW")
	procIsWindowVisible     = user32.NewProc("IsWindowVisible")
	procIsIconic            = user32.NewProc("IsIconic")
	procShowWindow          = user32.NewProc("ShowWindow")
	procSetForegroundWindow = user32.NewProc("SetForegroundWindow")
	procGetWindowRect       = user32.NewProc("GetWindowRect")
	procGetForegroundWindow = user32.NewProc("GetForegroundWindow")
)

const swRestore = 9

type winRect struct {
	Left, Top, Right, Bottom int32
}

type winTracker struct {
	title  string
	insets Insets
	logger *slog.Logger
}

// NewTracker returns a Tracker that resolves the titled window through
// Win32 enumeration on every query. logger may be nil.
func NewTracker(title string, insets Insets, logger *slog.Logger) Tracker {
	return &winTracker{title: title, insets: insets, logger: logger}
}

// Region finds the window, restores it when minimized and returns its
// rect shrunk by the insets.
func (t *winTracker) Region() (Region, error) {
	hwnd, err := findWindow(t.title)
	if err != nil {
		return Region{}, err
	}
	if iconic, _, _ := procIsIconic.Call(hwnd); iconic != 0 {
		procShowWindow.Call(hwnd, swRestore)
	}
	var r winRect
	if ok, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r))); ok == 0 {
		return Region{}, fmt.Errorf("window: GetWindowRect failed for %q", t.title)
	}
	win := Region{
		Top:    int(r.Top),
		Left:   int(r.Left),
		Width:  int(r.Right - r.Left),
		Height: int(r.Bottom - r.Top),
	}
	region := t.insets.Apply(win)
	if region.Empty() {
		return Region{}, fmt.Errorf("window: region empty after insets win=%+v insets=%+v", win, t.insets)
	}
	return region, nil
}

// Activate brings the window to the foreground.
func (t *winTracker) Activate() error {
	hwnd, err := findWindow(t.title)
	if err != nil {
		return err
	}
	if iconic, _, _ := procIsIconic.Call(hwnd); iconic != 0 {
		procShowWindow.Call(hwnd, swRestore)
	}
	if ok, _, _ := procSetForegroundWindow.Call(hwnd); ok == 0 {
		return fmt.Errorf("window: SetForegroundWindow failed for %q", t.title)
	}
	return nil
}

// findWindow returns the handle of the first visible top-level window
// whose title contains the given text.
func findWindow(title string) (uintptr, error) {
	want := strings.ToLower(strings.TrimSpace(title))
	if want == "" {
		return 0, errors.New("window: empty title")
	}
	var found uintptr
	cb := syscall.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
		if vis, _, _ := procIsWindowVisible.Call(hwnd); vis == 0 {
			return 1
		}
		if strings.Contains(strings.ToLower(windowText(hwnd)), want) {
			found = hwnd
			return 0 // stop enumeration
		}
		return 1
	})
	procEnumWindows.Call(cb, 0)
	if found == 0 {
		return 0, fmt.Errorf("window: no window found with title %q", title)
	}
	return found, nil
}

// ListWindows returns the titles of all visible top-level windows.
// Empty titles are skipped.
func ListWindows() ([]string, error) {
	var titles []string
	cb := syscall.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
		if vis, _, _ := procIsWindowVisible.Call(hwnd); vis == 0 {
			return 1
		}
		if title := strings.TrimSpace(windowText(hwnd)); title != "" {
			titles = append(titles, title)
		}
		return 1
	})
	if r, _, err := procEnumWindows.Call(cb, 0); r == 0 {
		if err != nil && err != syscall.Errno(0) {
			return nil, err
		}
		return nil, errors.New("window: EnumWindows failed")
	}
	return titles, nil
}

// ForegroundWindowTitle returns the current foreground window's title.
func ForegroundWindowTitle() (string, error) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return "", errors.New("window: no foreground window")
	}
	return strings.TrimSpace(windowText(hwnd)), nil
}

func windowText(hwnd uintptr) string {
	buf := make([]uint16, 256)
	r, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if r == 0 {
		return ""
	}
	end := int(r)
	for i, v := range buf {
		if v == 0 {
			end = i
			break
		}
	}
	return string(utf16.Decode(buf[:end]))
}

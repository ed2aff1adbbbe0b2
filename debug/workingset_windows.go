//go:build windows

package debug

// Working-set (RSS) logger for correlating native memory growth with Go
// heap stats. The capture loop allocates screen-sized RGBA buffers every
// interval, so RSS drift here usually means frames are being retained.

import (
	"log/slog"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

// processMemoryCounters matches PROCESS_MEMORY_COUNTERS from psapi.
type processMemoryCounters struct {
	cb                         uint32
	PageFaultCount             uint32
	PeakWorkingSetSize         uintptr
	WorkingSetSize             uintptr
	QuotaPeakPagedPoolUsage    uintptr
	QuotaPagedPoolUsage        uintptr
	QuotaPeakNonPagedPoolUsage uintptr
	QuotaNonPagedPoolUsage     uintptr
	PagefileUsage              uintptr
	PeakPagefileUsage          uintptr
}

var (
	modPsapi                 = windows.NewLazySystemDLL("psapi.dll")
	procGetProcessMemoryInfo = modPsapi.NewProc("GetProcessMemoryInfo")
)

// StartWorkingSetLogger logs the process working set every interval.
// Best-effort; a failing psapi call is logged once and then suppressed.
func StartWorkingSetLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if logger == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var errLogged bool
		for range ticker.C {
			pmc := processMemoryCounters{cb: uint32(unsafe.Sizeof(processMemoryCounters{}))}
			r1, _, err := procGetProcessMemoryInfo.Call(
				uintptr(windows.CurrentProcess()),
				uintptr(unsafe.Pointer(&pmc)),
				uintptr(pmc.cb),
			)
			if r1 == 0 {
				if !errLogged {
					logger.Warn("workingset: GetProcessMemoryInfo failed", slog.String("err", err.Error()))
					errLogged = true
				}
				continue
			}
			logger.Info("workingset",
				slog.Uint64("rss", uint64(pmc.WorkingSetSize)),
				slog.Uint64("rss_peak", uint64(pmc.PeakWorkingSetSize)),
				slog.Uint64("page_faults", uint64(pmc.PageFaultCount)),
			)
		}
	}()
}

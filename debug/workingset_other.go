//go:build !windows

package debug

import (
	"log/slog"
	"time"
)

// StartWorkingSetLogger is a no-op off Windows; RSS is only sampled via
// psapi. Heap stats still come from StartRuntimeLogger.
func StartWorkingSetLogger(interval time.Duration, logger *slog.Logger) {}

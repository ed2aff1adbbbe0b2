package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const aggregateFile = "snapshots.txt"

// Saver persists board snapshots as plain text: one file per save
// event plus an optional aggregate file concatenating every entry with
// frame index and timestamp headers.
type Saver struct {
	dir       string
	aggregate bool
	logger    *slog.Logger
}

// NewSaver returns a Saver writing into dir. logger may be nil.
func NewSaver(dir string, aggregate bool, logger *slog.Logger) *Saver {
	return &Saver{dir: dir, aggregate: aggregate, logger: logger}
}

// Save writes one snapshot (board dump followed by the raw summary
// dump) and returns the path of the per-event file.
func (sv *Saver) Save(frameIndex uint64, at time.Time, boardDump, summaryDump string) (string, error) {
	if err := os.MkdirAll(sv.dir, 0o755); err != nil {
		return "", fmt.Errorf("snapshot: create dir: %w", err)
	}

	content := fmt.Sprintf("frame %d @ %s\n\n%s\n%s", frameIndex, at.Format(time.RFC3339), boardDump, summaryDump)

	name := fmt.Sprintf("snapshot_%06d_%s.txt", frameIndex, at.Format("20060102_150405"))
	path := filepath.Join(sv.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("snapshot: write %s: %w", path, err)
	}

	if sv.aggregate {
		if err := sv.appendAggregate(content); err != nil {
			// The per-event file exists, so report but keep the path.
			if sv.logger != nil {
				sv.logger.Error("aggregate append failed", "error", err)
			}
		}
	}
	if sv.logger != nil {
		sv.logger.Info("snapshot saved", "path", path, "frame", frameIndex)
	}
	return path, nil
}

func (sv *Saver) appendAggregate(content string) error {
	path := filepath.Join(sv.dir, aggregateFile)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "==========\n%s\n", content)
	return err
}

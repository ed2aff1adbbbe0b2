package board

import (
	"log/slog"
	"strings"
)

// Class label prefixes emitted by the detection model.
const (
	cardPrefix   = "card-"
	alliedPrefix = "allied-"
	enemyPrefix  = "enemy-"
)

// RawDetection is one detector output for the current frame: a class
// label and a bounding box in capture-region pixel space. Borrowed per
// call, never retained.
type RawDetection struct {
	Class          string
	X1, Y1, X2, Y2 float64
}

// Kind discriminates classified detections.
type Kind int

const (
	KindHandCandidate Kind = iota
	KindTroop
)

// Record is a classified detection with derived geometry. Tile is only
// meaningful for KindTroop.
type Record struct {
	Kind             Kind
	Name             string
	Owner            Owner
	CenterX, CenterY float64
	Area             float64
	Tile             Tile
}

// Classifier labels raw detections by class prefix and derives their
// geometric features. Troops additionally get tile coordinates from
// the mapper; troops whose center cannot be mapped are dropped.
type Classifier struct {
	mapper *Mapper
	logger *slog.Logger
}

// NewClassifier returns a Classifier bound to the given mapper. logger may be nil.
func NewClassifier(mapper *Mapper, logger *slog.Logger) *Classifier {
	return &Classifier{mapper: mapper, logger: logger}
}

// Classify derives a Record from one raw detection. Reports false for
// labels without a known prefix (ignored, not an error) and for troops
// whose center lies outside the frame.
func (c *Classifier) Classify(d RawDetection) (Record, bool) {
	rec := Record{
		CenterX: (d.X1 + d.X2) / 2,
		CenterY: (d.Y1 + d.Y2) / 2,
		Area:    (d.X2 - d.X1) * (d.Y2 - d.Y1),
	}
	switch {
	case strings.HasPrefix(d.Class, cardPrefix):
		rec.Kind = KindHandCandidate
		rec.Name = strings.TrimPrefix(d.Class, cardPrefix)
		return rec, true
	case strings.HasPrefix(d.Class, alliedPrefix):
		rec.Kind = KindTroop
		rec.Owner = OwnerAllied
		rec.Name = strings.TrimPrefix(d.Class, alliedPrefix)
	case strings.HasPrefix(d.Class, enemyPrefix):
		rec.Kind = KindTroop
		rec.Owner = OwnerEnemy
		rec.Name = strings.TrimPrefix(d.Class, enemyPrefix)
	default:
		return Record{}, false
	}
	tile, ok := c.mapper.ToTile(rec.CenterX, rec.CenterY)
	if !ok {
		if c.logger != nil {
			c.logger.Debug("troop center outside frame", "class", d.Class, "cx", rec.CenterX, "cy", rec.CenterY)
		}
		return Record{}, false
	}
	rec.Tile = tile
	return rec, true
}

// ClassifyAll splits a frame's detections into hand candidates and
// placeable troops. Unknown labels and unmappable troops are excluded.
func (c *Classifier) ClassifyAll(dets []RawDetection) (hand, troops []Record) {
	for _, d := range dets {
		rec, ok := c.Classify(d)
		if !ok {
			continue
		}
		if rec.Kind == KindHandCandidate {
			hand = append(hand, rec)
		} else {
			troops = append(troops, rec)
		}
	}
	return hand, troops
}

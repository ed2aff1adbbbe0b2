package board

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Summary reports one reconstruction cycle: the ordered hand, the
// candidates excluded by the hand filter, and every troop placed on
// the grid.
type Summary struct {
	CardsInHand   []Record
	CardsFiltered []Record
	TroopsOnBoard []Record
}

// Dump renders the summary as plain text for the HUD and for snapshot
// persistence.
func (s Summary) Dump() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "cards_in_hand (%d):\n", len(s.CardsInHand))
	for i, r := range s.CardsInHand {
		fmt.Fprintf(&sb, "  [%d] %s cx=%.0f cy=%.0f area=%.0f\n", i, r.Name, r.CenterX, r.CenterY, r.Area)
	}
	fmt.Fprintf(&sb, "cards_filtered (%d):\n", len(s.CardsFiltered))
	for _, r := range s.CardsFiltered {
		fmt.Fprintf(&sb, "  %s cx=%.0f cy=%.0f area=%.0f\n", r.Name, r.CenterX, r.CenterY, r.Area)
	}
	fmt.Fprintf(&sb, "troops_on_board (%d):\n", len(s.TroopsOnBoard))
	for _, r := range s.TroopsOnBoard {
		fmt.Fprintf(&sb, "  %s %s tile=(%d,%d)\n", r.Owner, r.Name, r.Tile.X, r.Tile.Y)
	}
	return sb.String()
}

// Reconstructor composes mapper, classifier and hand filter to turn a
// frame's raw detections into a Board snapshot. One instance per
// capture-region size; it owns the Board it writes.
type Reconstructor struct {
	board      *Board
	mapper     *Mapper
	classifier *Classifier
	filter     *HandFilter
	logger     *slog.Logger
}

// NewReconstructor builds the component stack for the given capture
// region. logger may be nil.
func NewReconstructor(regionW, regionH int, logger *slog.Logger) (*Reconstructor, error) {
	mapper, err := NewMapper(regionW, regionH)
	if err != nil {
		return nil, err
	}
	return &Reconstructor{
		board:      New(logger),
		mapper:     mapper,
		classifier: NewClassifier(mapper, logger),
		filter:     NewHandFilter(logger),
		logger:     logger,
	}, nil
}

// Board exposes the owned Board for readers.
func (r *Reconstructor) Board() *Board { return r.board }

// Mapper exposes the coordinate mapper (used for placement targeting).
func (r *Reconstructor) Mapper() *Mapper { return r.mapper }

// Reconstruct clears the Board and repopulates it from the frame's
// detections, returning the classification summary. The only side
// effect is mutating the owned Board.
func (r *Reconstructor) Reconstruct(dets []RawDetection) Summary {
	r.board.Clear()

	hand, troops := r.classifier.ClassifyAll(dets)

	var sum Summary
	if len(hand) > 0 {
		w, h := r.mapper.Region()
		kept, dropped := r.filter.Filter(hand, float64(w), float64(h))
		sort.Slice(kept, func(i, j int) bool { return kept[i].CenterX < kept[j].CenterX })
		for i, rec := range kept {
			r.board.SetHandCard(i, Card{Name: rec.Name, Cost: CostUnknown})
		}
		sum.CardsInHand = kept
		sum.CardsFiltered = dropped
	}

	for _, rec := range troops {
		if r.board.PlaceTroop(rec.Tile, Troop{Name: rec.Name, Owner: rec.Owner}) {
			sum.TroopsOnBoard = append(sum.TroopsOnBoard, rec)
		}
	}
	return sum
}

package board

import "testing"

func newTestReconstructor(t *testing.T) *Reconstructor {
	t.Helper()
	r, err := NewReconstructor(900, 1600, nil)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

// cardBox builds a card detection with the given center and bbox size.
func cardBox(name string, cx, cy, w, h float64) RawDetection {
	return RawDetection{Class: "card-" + name, X1: cx - w/2, Y1: cy - h/2, X2: cx + w/2, Y2: cy + h/2}
}

func TestReconstructor_PlacesTroopOnTile(t *testing.T) {
	r := newTestReconstructor(t)
	sum := r.Reconstruct([]RawDetection{
		{Class: "allied-giant", X1: 430, Y1: 780, X2: 470, Y2: 820}, // center (450,800)
	})
	if len(sum.TroopsOnBoard) != 1 {
		t.Fatalf("expected 1 troop, got %d", len(sum.TroopsOnBoard))
	}
	cell, ok := r.Board().CellAt(Tile{X: 4, Y: 8})
	if !ok || cell.Kind != CellTroop {
		t.Fatalf("expected troop at (4,8), got %+v ok=%v", cell, ok)
	}
	if cell.Troop.Name != "giant" || cell.Troop.Owner != OwnerAllied {
		t.Fatalf("unexpected troop %+v", cell.Troop)
	}
}

func TestReconstructor_HandFilteredAndOrdered(t *testing.T) {
	r := newTestReconstructor(t)
	// Four genuine cards (given out of order) plus a smaller preview
	// left of 15% of the width; areas 100,100,100,100,40.
	sum := r.Reconstruct([]RawDetection{
		cardBox("musketeer", 750, 1500, 10, 10),
		cardBox("giant", 300, 1500, 10, 10),
		cardBox("archer", 600, 1500, 10, 10),
		cardBox("knight", 450, 1500, 10, 10),
		cardBox("fireball", 100, 1540, 8, 5),
	})
	if len(sum.CardsInHand) != 4 {
		t.Fatalf("expected 4 cards in hand, got %d", len(sum.CardsInHand))
	}
	want := []string{"giant", "knight", "archer", "musketeer"}
	for i, name := range want {
		if sum.CardsInHand[i].Name != name {
			t.Fatalf("slot %d = %s, want %s", i, sum.CardsInHand[i].Name, name)
		}
		cell, _ := r.Board().HandCard(i)
		if cell.Kind != CellCard || cell.Card.Name != name {
			t.Fatalf("board slot %d holds %+v", i, cell)
		}
		if cell.Card.Cost != CostUnknown {
			t.Fatalf("vision cannot know cost; got %d", cell.Card.Cost)
		}
	}
	if len(sum.CardsFiltered) != 1 || sum.CardsFiltered[0].Name != "fireball" {
		t.Fatalf("expected fireball filtered, got %v", sum.CardsFiltered)
	}
}

func TestReconstructor_UnknownLabelsIgnored(t *testing.T) {
	r := newTestReconstructor(t)
	sum := r.Reconstruct([]RawDetection{
		{Class: "tower-king", X1: 400, Y1: 100, X2: 500, Y2: 200},
		{Class: "enemy-knight", X1: 100, Y1: 100, X2: 200, Y2: 200},
	})
	if len(sum.TroopsOnBoard) != 1 {
		t.Fatalf("expected the unknown label to be skipped, got %d troops", len(sum.TroopsOnBoard))
	}
}

func TestReconstructor_OffscreenTroopDropped(t *testing.T) {
	r := newTestReconstructor(t)
	sum := r.Reconstruct([]RawDetection{
		{Class: "enemy-knight", X1: 880, Y1: 0, X2: 960, Y2: 40}, // center x=920 > 900
	})
	if len(sum.TroopsOnBoard) != 0 {
		t.Fatalf("expected unmappable troop dropped, got %d", len(sum.TroopsOnBoard))
	}
}

// Two detections landing on the same tile within a frame: the later one
// wins. The board models the current frame, not merged history.
func TestReconstructor_SameTileLastWriteWins(t *testing.T) {
	r := newTestReconstructor(t)
	sum := r.Reconstruct([]RawDetection{
		{Class: "allied-giant", X1: 430, Y1: 780, X2: 470, Y2: 820},
		{Class: "enemy-knight", X1: 440, Y1: 790, X2: 460, Y2: 810},
	})
	// Both placements are reported in the summary.
	if len(sum.TroopsOnBoard) != 2 {
		t.Fatalf("expected both troops in summary, got %d", len(sum.TroopsOnBoard))
	}
	cell, _ := r.Board().CellAt(Tile{X: 4, Y: 8})
	if cell.Troop.Name != "knight" || cell.Troop.Owner != OwnerEnemy {
		t.Fatalf("expected last detection to win the cell, got %+v", cell.Troop)
	}
}

func TestReconstructor_ClearsBetweenCycles(t *testing.T) {
	r := newTestReconstructor(t)
	r.Reconstruct([]RawDetection{
		{Class: "allied-giant", X1: 430, Y1: 780, X2: 470, Y2: 820},
	})
	sum := r.Reconstruct(nil)
	if len(sum.TroopsOnBoard) != 0 {
		t.Fatalf("stale summary: %v", sum.TroopsOnBoard)
	}
	cell, _ := r.Board().CellAt(Tile{X: 4, Y: 8})
	if cell.Kind != CellEmpty {
		t.Fatalf("stale cell survived Clear: %+v", cell)
	}
}

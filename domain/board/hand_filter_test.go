package board

import "testing"

// candidate builds a hand-candidate record with the given geometry.
func candidate(name string, cx, cy, area float64) Record {
	return Record{Kind: KindHandCandidate, Name: name, CenterX: cx, CenterY: cy, Area: area}
}

func TestHandFilter_PassThroughAtHandSize(t *testing.T) {
	f := NewHandFilter(nil)
	cands := []Record{
		candidate("giant", 300, 1500, 100),
		candidate("knight", 450, 1500, 100),
		candidate("archer", 600, 1500, 100),
		candidate("musketeer", 750, 1500, 100),
	}
	kept, dropped := f.Filter(cands, 900, 1600)
	if len(kept) != 4 || len(dropped) != 0 {
		t.Fatalf("expected pass-through, got kept=%d dropped=%d", len(kept), len(dropped))
	}
}

func TestHandFilter_ExcludesPreviewCard(t *testing.T) {
	f := NewHandFilter(nil)
	// Four genuine cards plus a smaller preview near the bottom-left,
	// left of 15% of the region width.
	cands := []Record{
		candidate("giant", 300, 1500, 100),
		candidate("knight", 450, 1500, 100),
		candidate("archer", 600, 1500, 100),
		candidate("musketeer", 750, 1500, 100),
		candidate("fireball", 100, 1540, 40),
	}
	kept, dropped := f.Filter(cands, 900, 1600)
	if len(kept) != 4 {
		t.Fatalf("expected 4 kept, got %d", len(kept))
	}
	for _, r := range kept {
		if r.Name == "fireball" {
			t.Fatal("preview card survived the filter")
		}
	}
	if len(dropped) != 1 || dropped[0].Name != "fireball" {
		t.Fatalf("expected exactly the preview dropped, got %v", dropped)
	}
}

func TestHandFilter_NeverExceedsHandSize(t *testing.T) {
	f := NewHandFilter(nil)
	// Six similar candidates: the statistical cut cannot decide, so the
	// filter falls back to keeping the largest HandSize by area.
	cands := []Record{
		candidate("a", 200, 1500, 100),
		candidate("b", 320, 1500, 102),
		candidate("c", 440, 1500, 104),
		candidate("d", 560, 1500, 98),
		candidate("e", 680, 1500, 96),
		candidate("f", 800, 1500, 101),
	}
	kept, dropped := f.Filter(cands, 900, 1600)
	if len(kept) != HandSize {
		t.Fatalf("expected %d kept, got %d", HandSize, len(kept))
	}
	if len(kept)+len(dropped) != len(cands) {
		t.Fatalf("candidates lost: kept=%d dropped=%d", len(kept), len(dropped))
	}
}

func TestHandFilter_DriftAndPositionCuts(t *testing.T) {
	f := NewHandFilter(nil)
	// One candidate far above the tray row is excluded by the
	// vertical-drift cut even though its area passes.
	cands := []Record{
		candidate("giant", 300, 1500, 100),
		candidate("knight", 450, 1500, 100),
		candidate("archer", 600, 1500, 100),
		candidate("musketeer", 750, 1500, 100),
		candidate("stray", 500, 1100, 100),
	}
	kept, _ := f.Filter(cands, 900, 1600)
	for _, r := range kept {
		if r.Name == "stray" {
			t.Fatal("vertically drifted candidate survived")
		}
	}
	if len(kept) != 4 {
		t.Fatalf("expected 4 kept, got %d", len(kept))
	}
}

func TestMedian(t *testing.T) {
	if got := median([]float64{100, 100, 40, 100, 100}); got != 100 {
		t.Fatalf("odd median = %v", got)
	}
	if got := median([]float64{1, 3, 5, 7}); got != 4 {
		t.Fatalf("even median = %v", got)
	}
	if got := median(nil); got != 0 {
		t.Fatalf("empty median = %v", got)
	}
}

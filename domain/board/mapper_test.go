package board

import "testing"

func TestMapper_RejectsInvalidRegion(t *testing.T) {
	if _, err := NewMapper(0, 1600); err == nil {
		t.Fatal("expected error for zero width")
	}
	if _, err := NewMapper(900, -1); err == nil {
		t.Fatal("expected error for negative height")
	}
}

func TestMapper_RoundTrip(t *testing.T) {
	m, err := NewMapper(900, 1600)
	if err != nil {
		t.Fatal(err)
	}
	// Every tile's pixel center maps back to the same tile.
	for y := 0; y < ArenaHeight; y++ {
		for x := 0; x < ArenaWidth; x++ {
			px, py, ok := m.ToPixelCenter(Tile{X: x, Y: y})
			if !ok {
				t.Fatalf("center failed for tile (%d,%d)", x, y)
			}
			got, ok := m.ToTile(float64(px), float64(py))
			if !ok {
				t.Fatalf("ToTile failed for center of (%d,%d)", x, y)
			}
			if got.X != x || got.Y != y {
				t.Fatalf("round trip (%d,%d) -> (%d,%d)", x, y, got.X, got.Y)
			}
		}
	}
}

func TestMapper_RoundTripOddRegion(t *testing.T) {
	// Non-divisible dimensions exercise the floor/clamp path.
	m, err := NewMapper(901, 1601)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < ArenaHeight; y++ {
		for x := 0; x < ArenaWidth; x++ {
			px, py, ok := m.ToPixelCenter(Tile{X: x, Y: y})
			if !ok {
				t.Fatalf("center failed for tile (%d,%d)", x, y)
			}
			got, ok := m.ToTile(float64(px), float64(py))
			if !ok || got.X != x || got.Y != y {
				t.Fatalf("round trip (%d,%d) -> (%v, ok=%v)", x, y, got, ok)
			}
		}
	}
}

func TestMapper_ToTileOutOfBounds(t *testing.T) {
	m, _ := NewMapper(900, 1600)
	cases := [][2]float64{{-1, 0}, {0, -1}, {901, 0}, {0, 1601}, {-0.5, -0.5}}
	for _, c := range cases {
		if _, ok := m.ToTile(c[0], c[1]); ok {
			t.Fatalf("expected out-of-bounds for (%v,%v)", c[0], c[1])
		}
	}
}

func TestMapper_ToTileBoundaryClamped(t *testing.T) {
	m, _ := NewMapper(900, 1600)
	// Pixels exactly on the far edge are in range and clamp to the last tile.
	tile, ok := m.ToTile(900, 1600)
	if !ok {
		t.Fatal("edge pixel should map")
	}
	if tile.X != ArenaWidth-1 || tile.Y != ArenaHeight-1 {
		t.Fatalf("edge pixel mapped to (%d,%d)", tile.X, tile.Y)
	}
}

func TestMapper_ToPixelCenterOutOfRange(t *testing.T) {
	m, _ := NewMapper(900, 1600)
	bad := []Tile{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: ArenaWidth, Y: 0}, {X: 0, Y: ArenaHeight}}
	for _, tl := range bad {
		if _, _, ok := m.ToPixelCenter(tl); ok {
			t.Fatalf("expected failure for tile (%d,%d)", tl.X, tl.Y)
		}
	}
}

package action

import (
	"errors"
	"testing"

	"github.com/lemus-D/clashBot/domain/board"
	"github.com/lemus-D/clashBot/domain/window"
)

func TestSlotPixel(t *testing.T) {
	region := window.Region{Left: 400, Top: 50, Width: 900, Height: 1600}
	cases := []struct{ slot, x int }{
		{0, 300}, {1, 400}, {2, 500}, {3, 600},
	}
	for _, c := range cases {
		x, y, err := SlotPixel(c.slot, region)
		if err != nil {
			t.Fatalf("slot %d: %v", c.slot, err)
		}
		if x != c.x || y != 1500 {
			t.Fatalf("slot %d = (%d,%d), want (%d,1500)", c.slot, x, y, c.x)
		}
	}
	if _, _, err := SlotPixel(board.HandSize, region); err == nil {
		t.Fatal("expected error for out-of-range slot")
	}
}

func TestPlacer_DisabledNeverMoves(t *testing.T) {
	p := NewPlacer(false, nil)
	m, _ := board.NewMapper(900, 1600)
	region := window.Region{Width: 900, Height: 1600}
	if err := p.PlaceCard(0, board.Tile{X: 4, Y: 8}, m, region); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
	if err := p.Click(10, 10, region); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

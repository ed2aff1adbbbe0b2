package action

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-vgo/robotgo"

	"github.com/lemus-D/clashBot/domain/board"
	"github.com/lemus-D/clashBot/domain/window"
)

// Hand-slot pixel geometry inside the capture region: four cards
// centered horizontally near the bottom of the tray.
const (
	cardSpacing      = 100
	cardBottomOffset = 100
	handBlockHalf    = 150
)

// ErrDisabled is returned when automation is switched off in config.
var ErrDisabled = errors.New("action: mouse control disabled")

// Placer drives the OS mouse to play cards. It is a collaborator of the
// core: the board engine never calls it, a strategy layer would.
type Placer struct {
	enabled bool
	logger  *slog.Logger
}

// NewPlacer returns a Placer. With enabled false every action reports
// ErrDisabled and touches nothing.
func NewPlacer(enabled bool, logger *slog.Logger) *Placer {
	return &Placer{enabled: enabled, logger: logger}
}

// SlotPixel returns the region-local pixel position of a hand slot.
func SlotPixel(slot int, region window.Region) (int, int, error) {
	if slot < 0 || slot >= board.HandSize {
		return 0, 0, fmt.Errorf("action: hand slot %d out of range", slot)
	}
	x := region.Width/2 - handBlockHalf + slot*cardSpacing
	y := region.Height - cardBottomOffset
	return x, y, nil
}

// PlaceCard drags the card in the given hand slot onto the arena tile.
func (p *Placer) PlaceCard(slot int, tile board.Tile, m *board.Mapper, region window.Region) error {
	if !p.enabled {
		return ErrDisabled
	}
	sx, sy, err := SlotPixel(slot, region)
	if err != nil {
		return err
	}
	tx, ty, ok := m.ToPixelCenter(tile)
	if !ok {
		return fmt.Errorf("action: tile (%d,%d) out of range", tile.X, tile.Y)
	}

	fromX, fromY := region.ToGlobal(sx, sy)
	toX, toY := region.ToGlobal(tx, ty)

	robotgo.Move(fromX, fromY)
	robotgo.MilliSleep(50)
	robotgo.Toggle("left", "down")
	robotgo.MilliSleep(80)
	robotgo.MoveSmooth(toX, toY, 0.9, 0.9)
	robotgo.MilliSleep(80)
	robotgo.Toggle("left", "up")

	if p.logger != nil {
		p.logger.Info("card placed", "slot", slot, "tile_x", tile.X, "tile_y", tile.Y, "from_x", fromX, "from_y", fromY, "to_x", toX, "to_y", toY)
	}
	return nil
}

// Click clicks a region-local position.
func (p *Placer) Click(x, y int, region window.Region) error {
	if !p.enabled {
		return ErrDisabled
	}
	gx, gy := region.ToGlobal(x, y)
	robotgo.Move(gx, gy)
	robotgo.MilliSleep(30)
	robotgo.Click("left", false)
	if p.logger != nil {
		p.logger.Debug("click", "x", gx, "y", gy)
	}
	return nil
}

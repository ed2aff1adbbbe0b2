package board

import (
	"fmt"
	"log/slog"
	"strings"
)

// Grid geometry of the playfield and the card tray. Fixed for the game;
// the pixel size of a tile is derived from the capture region instead.
const (
	HandSize    = 4
	ArenaWidth  = 9
	ArenaHeight = 16
)

// CostUnknown marks a card whose elixir cost cannot be read from vision alone.
const CostUnknown = -1

// Owner identifies which side a troop belongs to.
type Owner int

const (
	OwnerAllied Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	switch o {
	case OwnerAllied:
		return "allied"
	case OwnerEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// CellKind discriminates the content of a hand slot or arena cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellCard
	CellTroop
)

// Card is a playable card identified by name. Cost is informational
// and defaults to CostUnknown.
type Card struct {
	Name string
	Cost int
}

// Troop is a unit on the arena grid.
type Troop struct {
	Name  string
	Owner Owner
}

// Cell is a closed tagged union over {Empty, Card, Troop}. Only the
// field matching Kind is meaningful.
type Cell struct {
	Kind  CellKind
	Card  Card
	Troop Troop
}

// Board holds one frame's reconstructed game state: a fixed ordered
// hand of HandSize slots and a fixed ArenaWidth x ArenaHeight grid.
// Slot/cell count never changes after construction. Not safe for
// concurrent use; the owning session serializes cycles.
type Board struct {
	hand   [HandSize]Cell
	arena  [ArenaHeight][ArenaWidth]Cell
	logger *slog.Logger
}

// New returns an empty Board. logger may be nil.
func New(logger *slog.Logger) *Board {
	return &Board{logger: logger}
}

// Clear resets every hand slot and arena cell to Empty. Called at the
// start of each reconstruction cycle.
func (b *Board) Clear() {
	b.hand = [HandSize]Cell{}
	b.arena = [ArenaHeight][ArenaWidth]Cell{}
}

// SetHandCard places a card into the given slot. Invalid slot indices
// are logged and ignored.
func (b *Board) SetHandCard(slot int, c Card) bool {
	if slot < 0 || slot >= HandSize {
		if b.logger != nil {
			b.logger.Warn("hand slot out of range", "slot", slot, "card", c.Name)
		}
		return false
	}
	b.hand[slot] = Cell{Kind: CellCard, Card: c}
	return true
}

// HandCard returns the cell at the given hand slot.
func (b *Board) HandCard(slot int) (Cell, bool) {
	if slot < 0 || slot >= HandSize {
		return Cell{}, false
	}
	return b.hand[slot], true
}

// PlaceTroop writes a troop into its arena cell. A second detection
// landing on an occupied cell overwrites it: the board models the
// current frame only, last write wins. Invalid tiles are logged and
// ignored.
func (b *Board) PlaceTroop(t Tile, tr Troop) bool {
	if t.X < 0 || t.X >= ArenaWidth || t.Y < 0 || t.Y >= ArenaHeight {
		if b.logger != nil {
			b.logger.Warn("arena tile out of range", "x", t.X, "y", t.Y, "troop", tr.Name)
		}
		return false
	}
	b.arena[t.Y][t.X] = Cell{Kind: CellTroop, Troop: tr}
	return true
}

// CellAt returns the arena cell at the given tile.
func (b *Board) CellAt(t Tile) (Cell, bool) {
	if t.X < 0 || t.X >= ArenaWidth || t.Y < 0 || t.Y >= ArenaHeight {
		return Cell{}, false
	}
	return b.arena[t.Y][t.X], true
}

// Hand returns a copy of the hand slots.
func (b *Board) Hand() [HandSize]Cell { return b.hand }

// Arena returns a copy of the arena grid.
func (b *Board) Arena() [ArenaHeight][ArenaWidth]Cell { return b.arena }

// Render produces a human-readable dump: the hand list followed by the
// arena grid with fixed-width two-character cell codes (owner initial +
// name initial, ".." when empty).
func (b *Board) Render() string {
	var sb strings.Builder
	sb.WriteString("Hand:\n")
	for i, c := range b.hand {
		if c.Kind == CellCard {
			fmt.Fprintf(&sb, "  [%d] %s\n", i, c.Card.Name)
		} else {
			fmt.Fprintf(&sb, "  [%d] -\n", i)
		}
	}
	sb.WriteString("Arena:\n")
	for y := 0; y < ArenaHeight; y++ {
		sb.WriteString("  ")
		for x := 0; x < ArenaWidth; x++ {
			fmt.Fprintf(&sb, "%-3s", cellCode(b.arena[y][x]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func cellCode(c Cell) string {
	switch c.Kind {
	case CellTroop:
		return c.Troop.Owner.String()[:1] + initial(c.Troop.Name)
	case CellCard:
		return "c" + initial(c.Card.Name)
	default:
		return ".."
	}
}

func initial(name string) string {
	if name == "" {
		return "?"
	}
	return strings.ToUpper(name[:1])
}

package view

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// BoardPanel displays the reconstructed board as preformatted text.
type BoardPanel interface {
	SetBoard(text string)
}

type boardPanel struct {
	text *TextWidget
}

// NewBoardPanel creates the board text widget at the given grid cell.
// The widget is read-only from the user's perspective; content is
// replaced wholesale on each update.
func NewBoardPanel(row, col int) BoardPanel {
	w := Text(Height(22), Width(34))
	Grid(w, Row(row), Column(col), Rowspan(4), Sticky("nwe"), Padx("0.4m"), Pady("0.4m"))
	w.Insert("1.0", "Hand: (empty)")
	w.Configure(State("disabled"))
	return &boardPanel{text: w}
}

func (v *boardPanel) SetBoard(text string) {
	if v == nil || v.text == nil {
		return
	}
	v.text.Configure(State("normal"))
	v.text.Delete("1.0", END)
	v.text.Insert("1.0", text)
	v.text.Configure(State("disabled"))
}

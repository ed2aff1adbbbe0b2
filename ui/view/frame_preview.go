package view

import (
	"image"

	"github.com/lemus-D/clashBot/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// FramePreview shows the most recent captured frame.
type FramePreview interface {
	Update(img image.Image)
	Reset()
}

type framePreview struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo image, disposed before replacement
}

// NewFramePreview creates the preview label and grids it at the given cell.
func NewFramePreview(row, col int) FramePreview {
	placeholder := image.NewRGBA(image.Rect(0, 0, 160, 280))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(col), Rowspan(4), Sticky("n"), Padx("0.4m"), Pady("0.4m"))
	return &framePreview{label: label, prevPhoto: photo}
}

func (v *framePreview) Update(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevPhoto = newPhoto
	v.label.Configure(Image(newPhoto))
}

func (v *framePreview) Reset() {
	if v == nil || v.label == nil {
		return
	}
	placeholder := image.NewRGBA(image.Rect(0, 0, 160, 280))
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(placeholder)))
	v.label.Configure(Image(v.prevPhoto))
}

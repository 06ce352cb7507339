package filesink

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/user/clipprep/pkg/clip"
)

// Contact sheet layout constants.
const (
	sheetMargin  = 8
	sheetGap     = 6
	labelHeight  = 14
	headerHeight = 20
)

var (
	sheetBackground = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	sheetText       = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

// Render draws every frame of the clip into a labelled grid. Frames of
// either representation are accepted; the grid is sized from the first
// frame and roughly square in cells.
func Render(c clip.Clip, title string) (image.Image, error) {
	if len(c) == 0 {
		return nil, clip.ErrEmptyClip
	}

	first, err := clip.FrameImage(c[0])
	if err != nil {
		return nil, err
	}
	cellW := first.Bounds().Dx()
	cellH := first.Bounds().Dy()

	cols := int(math.Ceil(math.Sqrt(float64(len(c)))))
	rows := (len(c) + cols - 1) / cols

	sheetW := sheetMargin*2 + cols*cellW + (cols-1)*sheetGap
	sheetH := headerHeight + sheetMargin*2 + rows*(cellH+labelHeight) + (rows-1)*sheetGap

	dc := gg.NewContext(sheetW, sheetH)
	dc.SetColor(sheetBackground)
	dc.Clear()

	dc.SetColor(sheetText)
	dc.DrawStringAnchored(title, float64(sheetMargin), float64(headerHeight)/2, 0, 0.5)

	for i, f := range c {
		img, err := clip.FrameImage(f)
		if err != nil {
			return nil, err
		}
		col := i % cols
		row := i / cols
		x := sheetMargin + col*(cellW+sheetGap)
		y := headerHeight + sheetMargin + row*(cellH+labelHeight+sheetGap)
		dc.DrawImage(img, x, y)
		dc.SetColor(sheetText)
		dc.DrawStringAnchored(
			fmt.Sprintf("t=%d", i),
			float64(x),
			float64(y+cellH)+float64(labelHeight)/2,
			0, 0.5,
		)
	}

	return dc.Image(), nil
}

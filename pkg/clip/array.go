package clip

import (
	"image"
	"image/color"
)

// Array is a dense H×W×C frame buffer. Values are expected in the
// range [0, 255] but are not clamped; downstream packing divides by 255.
type Array struct {
	height   int
	width    int
	channels int
	data     []float64 // row-major, index = (y*width+x)*channels + c
}

// NewArray creates a zero-filled array frame.
func NewArray(height, width, channels int) *Array {
	return &Array{
		height:   height,
		width:    width,
		channels: channels,
		data:     make([]float64, height*width*channels),
	}
}

// Height returns the number of rows.
func (a *Array) Height() int { return a.height }

// Width returns the number of columns.
func (a *Array) Width() int { return a.width }

// Channels returns the number of channels per pixel.
func (a *Array) Channels() int { return a.channels }

// Dimensions returns the frame's width and height.
func (a *Array) Dimensions() Dimension {
	return Dimension{Width: a.width, Height: a.height}
}

// At returns the value at row y, column x, channel c.
func (a *Array) At(y, x, c int) float64 {
	return a.data[(y*a.width+x)*a.channels+c]
}

// Set stores v at row y, column x, channel c.
func (a *Array) Set(y, x, c int, v float64) {
	a.data[(y*a.width+x)*a.channels+c] = v
}

// Fill sets every value of the array to v.
func (a *Array) Fill(v float64) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Crop returns a new array containing the w×h region at offset (x, y).
// The region must lie within the frame.
func (a *Array) Crop(x, y, w, h int) *Array {
	out := NewArray(h, w, a.channels)
	for row := 0; row < h; row++ {
		srcOff := ((y+row)*a.width + x) * a.channels
		dstOff := row * w * a.channels
		copy(out.data[dstOff:dstOff+w*a.channels], a.data[srcOff:srcOff+w*a.channels])
	}
	return out
}

// FlipHorizontal returns a left-right mirrored copy of the array.
func (a *Array) FlipHorizontal() *Array {
	out := NewArray(a.height, a.width, a.channels)
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			srcOff := (y*a.width + x) * a.channels
			dstOff := (y*a.width + (a.width - 1 - x)) * a.channels
			copy(out.data[dstOff:dstOff+a.channels], a.data[srcOff:srcOff+a.channels])
		}
	}
	return out
}

// Resize returns the array scaled to size, ignoring aspect ratio.
// When bilinear is false, nearest-neighbor sampling is used.
func (a *Array) Resize(size Dimension, bilinear bool) *Array {
	if bilinear {
		return a.resizeBilinear(size)
	}
	return a.resizeNearest(size)
}

func (a *Array) resizeNearest(size Dimension) *Array {
	out := NewArray(size.Height, size.Width, a.channels)
	for y := 0; y < size.Height; y++ {
		sy := y * a.height / size.Height
		for x := 0; x < size.Width; x++ {
			sx := x * a.width / size.Width
			srcOff := (sy*a.width + sx) * a.channels
			dstOff := (y*size.Width + x) * a.channels
			copy(out.data[dstOff:dstOff+a.channels], a.data[srcOff:srcOff+a.channels])
		}
	}
	return out
}

func (a *Array) resizeBilinear(size Dimension) *Array {
	out := NewArray(size.Height, size.Width, a.channels)
	scaleX := float64(a.width) / float64(size.Width)
	scaleY := float64(a.height) / float64(size.Height)
	for y := 0; y < size.Height; y++ {
		gy := (float64(y)+0.5)*scaleY - 0.5
		y0, fy := splitCoord(gy, a.height)
		y1 := clampIndex(y0+1, a.height)
		for x := 0; x < size.Width; x++ {
			gx := (float64(x)+0.5)*scaleX - 0.5
			x0, fx := splitCoord(gx, a.width)
			x1 := clampIndex(x0+1, a.width)
			for c := 0; c < a.channels; c++ {
				top := a.At(y0, x0, c)*(1-fx) + a.At(y0, x1, c)*fx
				bottom := a.At(y1, x0, c)*(1-fx) + a.At(y1, x1, c)*fx
				out.Set(y, x, c, top*(1-fy)+bottom*fy)
			}
		}
	}
	return out
}

// splitCoord splits a continuous sample coordinate into an integer base
// index clamped to [0, n) and the fractional interpolation weight.
func splitCoord(g float64, n int) (int, float64) {
	if g < 0 {
		return 0, 0
	}
	i := int(g)
	if i >= n-1 {
		return n - 1, 0
	}
	return i, g - float64(i)
}

func clampIndex(i, n int) int {
	if i >= n {
		return n - 1
	}
	return i
}

// ToImage converts the array to an RGBA image, clamping values to
// [0, 255]. Single-channel arrays are replicated to gray; arrays with
// three or more channels use the first three as R, G, B.
func (a *Array) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, a.width, a.height))
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			var r, g, b float64
			if a.channels >= 3 {
				r, g, b = a.At(y, x, 0), a.At(y, x, 1), a.At(y, x, 2)
			} else {
				r = a.At(y, x, 0)
				g, b = r, r
			}
			img.SetRGBA(x, y, color.RGBA{
				R: clampByte(r),
				G: clampByte(g),
				B: clampByte(b),
				A: 255,
			})
		}
	}
	return img
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

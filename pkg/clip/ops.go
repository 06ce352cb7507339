package clip

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Ops provides uniform single-frame operations for one of the supported
// frame representations. An Ops value is obtained once per clip via
// OpsFor and is then applied to every frame; mixing representations
// within one clip is a programming error.
type Ops interface {
	// Dimensions returns the frame's width and height.
	Dimensions(f Frame) Dimension

	// Crop returns the w×h region of the frame at offset (x, y).
	Crop(f Frame, x, y, w, h int) Frame

	// Resize scales the frame to size, ignoring aspect ratio.
	Resize(f Frame, size Dimension, bilinear bool) Frame

	// FlipHorizontal returns a left-right mirrored copy of the frame.
	FlipHorizontal(f Frame) Frame

	// ToArray converts the frame to its dense H×W×C form.
	// Array frames are returned as-is; images are extracted as
	// three-channel RGB with values in [0, 255].
	ToArray(f Frame) *Array
}

// OpsFor inspects the first frame of c and returns the matching Ops.
// It returns ErrEmptyClip for an empty clip and
// ErrUnsupportedRepresentation when the first frame is neither an
// *Array nor an image.Image.
func OpsFor(c Clip) (Ops, error) {
	if len(c) == 0 {
		return nil, ErrEmptyClip
	}
	switch c[0].(type) {
	case *Array:
		return arrayOps{}, nil
	case image.Image:
		return imageOps{}, nil
	default:
		return nil, ErrUnsupportedRepresentation
	}
}

// FrameImage renders a frame of either representation as an image.Image.
func FrameImage(f Frame) (image.Image, error) {
	switch v := f.(type) {
	case *Array:
		return v.ToImage(), nil
	case image.Image:
		return v, nil
	default:
		return nil, ErrUnsupportedRepresentation
	}
}

type arrayOps struct{}

func (arrayOps) Dimensions(f Frame) Dimension {
	return f.(*Array).Dimensions()
}

func (arrayOps) Crop(f Frame, x, y, w, h int) Frame {
	return f.(*Array).Crop(x, y, w, h)
}

func (arrayOps) Resize(f Frame, size Dimension, bilinear bool) Frame {
	return f.(*Array).Resize(size, bilinear)
}

func (arrayOps) FlipHorizontal(f Frame) Frame {
	return f.(*Array).FlipHorizontal()
}

func (arrayOps) ToArray(f Frame) *Array {
	return f.(*Array)
}

type imageOps struct{}

func (imageOps) Dimensions(f Frame) Dimension {
	b := f.(image.Image).Bounds()
	return Dimension{Width: b.Dx(), Height: b.Dy()}
}

// Crop copies the region into a fresh image with bounds starting at
// (0, 0) so that later stages never see a sub-image with shifted bounds.
func (imageOps) Crop(f Frame, x, y, w, h int) Frame {
	src := f.(image.Image)
	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			out.Set(dx, dy, src.At(b.Min.X+x+dx, b.Min.Y+y+dy))
		}
	}
	return out
}

func (imageOps) Resize(f Frame, size Dimension, bilinear bool) Frame {
	src := f.(image.Image)
	var scaler xdraw.Interpolator = xdraw.NearestNeighbor
	if bilinear {
		scaler = xdraw.BiLinear
	}
	out := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	scaler.Scale(out, out.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return out
}

func (imageOps) FlipHorizontal(f Frame) Frame {
	src := f.(image.Image)
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(w-1-x, y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}

func (imageOps) ToArray(f Frame) *Array {
	src := f.(image.Image)
	b := src.Bounds()
	out := NewArray(b.Dy(), b.Dx(), 3)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, _ := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			out.Set(y, x, 0, float64(r>>8))
			out.Set(y, x, 1, float64(g>>8))
			out.Set(y, x, 2, float64(bl>>8))
		}
	}
	return out
}

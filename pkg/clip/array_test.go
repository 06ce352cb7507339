package clip

import (
	"math"
	"testing"
)

// gradientArray fills an array so each value encodes its position:
// v = y*1000 + x*10 + c.
func gradientArray(h, w, c int) *Array {
	a := NewArray(h, w, c)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for ch := 0; ch < c; ch++ {
				a.Set(y, x, ch, float64(y*1000+x*10+ch))
			}
		}
	}
	return a
}

func TestArrayAtSet(t *testing.T) {
	a := NewArray(2, 3, 3)
	a.Set(1, 2, 0, 42)
	if got := a.At(1, 2, 0); got != 42 {
		t.Errorf("At(1,2,0) = %v, want 42", got)
	}
	if got := a.At(0, 0, 0); got != 0 {
		t.Errorf("At(0,0,0) = %v, want 0", got)
	}
	if a.Height() != 2 || a.Width() != 3 || a.Channels() != 3 {
		t.Errorf("dimensions = %dx%dx%d, want 2x3x3", a.Height(), a.Width(), a.Channels())
	}
}

func TestArrayCrop(t *testing.T) {
	a := gradientArray(6, 8, 3)
	out := a.Crop(2, 1, 4, 3)

	if out.Height() != 3 || out.Width() != 4 || out.Channels() != 3 {
		t.Fatalf("crop dimensions = %dx%dx%d, want 3x4x3", out.Height(), out.Width(), out.Channels())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			for c := 0; c < 3; c++ {
				want := float64((y+1)*1000 + (x+2)*10 + c)
				if got := out.At(y, x, c); got != want {
					t.Fatalf("At(%d,%d,%d) = %v, want %v", y, x, c, got, want)
				}
			}
		}
	}
}

func TestArrayFlipHorizontal(t *testing.T) {
	a := gradientArray(2, 4, 3)
	out := a.FlipHorizontal()

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			for c := 0; c < 3; c++ {
				if got, want := out.At(y, x, c), a.At(y, 3-x, c); got != want {
					t.Fatalf("At(%d,%d,%d) = %v, want %v", y, x, c, got, want)
				}
			}
		}
	}
}

func TestArrayResizeNearest(t *testing.T) {
	// 2x2 checkerboard doubled: each source pixel becomes a 2x2 block.
	a := NewArray(2, 2, 1)
	a.Set(0, 0, 0, 10)
	a.Set(0, 1, 0, 20)
	a.Set(1, 0, 0, 30)
	a.Set(1, 1, 0, 40)

	out := a.Resize(Dimension{Width: 4, Height: 4}, false)
	if out.Height() != 4 || out.Width() != 4 {
		t.Fatalf("resize dimensions = %dx%d, want 4x4", out.Height(), out.Width())
	}
	expected := [4][4]float64{
		{10, 10, 20, 20},
		{10, 10, 20, 20},
		{30, 30, 40, 40},
		{30, 30, 40, 40},
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := out.At(y, x, 0); got != expected[y][x] {
				t.Errorf("At(%d,%d) = %v, want %v", y, x, got, expected[y][x])
			}
		}
	}
}

func TestArrayResizeBilinear(t *testing.T) {
	t.Run("uniform input stays uniform", func(t *testing.T) {
		a := NewArray(3, 3, 3)
		a.Fill(128)
		out := a.Resize(Dimension{Width: 7, Height: 5}, true)
		for y := 0; y < 5; y++ {
			for x := 0; x < 7; x++ {
				for c := 0; c < 3; c++ {
					if got := out.At(y, x, c); math.Abs(got-128) > 1e-9 {
						t.Fatalf("At(%d,%d,%d) = %v, want 128", y, x, c, got)
					}
				}
			}
		}
	})

	t.Run("interpolates between samples", func(t *testing.T) {
		a := NewArray(1, 2, 1)
		a.Set(0, 0, 0, 0)
		a.Set(0, 1, 0, 255)
		out := a.Resize(Dimension{Width: 4, Height: 1}, true)

		// Sample centers fall at source coordinates -0.25, 0.25,
		// 0.75, 1.25, clamped at the edges.
		expected := []float64{0, 63.75, 191.25, 255}
		for x, want := range expected {
			if got := out.At(0, x, 0); math.Abs(got-want) > 1e-9 {
				t.Errorf("At(0,%d) = %v, want %v", x, got, want)
			}
		}
	})
}

func TestArrayToImage(t *testing.T) {
	a := NewArray(1, 2, 3)
	a.Set(0, 0, 0, 300) // clamped to 255
	a.Set(0, 0, 1, -5)  // clamped to 0
	a.Set(0, 0, 2, 64)
	img := a.ToImage()

	r, g, b, alpha := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 64 || alpha>>8 != 255 {
		t.Errorf("pixel = (%d,%d,%d,%d), want (255,0,64,255)", r>>8, g>>8, b>>8, alpha>>8)
	}
}

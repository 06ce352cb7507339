package transform

import (
	"image"
	"image/color"

	"github.com/user/clipprep/pkg/clip"
)

// stubRand returns scripted values and counts draws, so tests can force
// branches and verify how much randomness a transform consumed.
type stubRand struct {
	floats     []float64
	ints       []int
	floatCalls int
	intCalls   int
}

func (s *stubRand) Float64() float64 {
	v := s.floats[s.floatCalls%len(s.floats)]
	s.floatCalls++
	return v
}

func (s *stubRand) Intn(n int) int {
	v := s.ints[s.intCalls%len(s.ints)]
	s.intCalls++
	if v >= n {
		v = n - 1
	}
	return v
}

// arrayClip builds a clip of dense frames where each value encodes its
// position and frame index: v = t*10000 + y*100 + x (channel ignored).
func arrayClip(frames, h, w, c int) clip.Clip {
	out := make(clip.Clip, frames)
	for t := 0; t < frames; t++ {
		a := clip.NewArray(h, w, c)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				for ch := 0; ch < c; ch++ {
					a.Set(y, x, ch, float64(t*10000+y*100+x))
				}
			}
		}
		out[t] = a
	}
	return out
}

// imageClip builds a clip of images where R encodes x and G encodes y.
func imageClip(frames, w, h int) clip.Clip {
	out := make(clip.Clip, frames)
	for t := 0; t < frames; t++ {
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(t), A: 255})
			}
		}
		out[t] = img
	}
	return out
}

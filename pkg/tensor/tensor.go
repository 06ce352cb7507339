// Package tensor packs clips into dense numeric tensors for training.
package tensor

// Tensor is a dense 4-dimensional float32 array with axis order
// (channel, time, height, width), stored in C order.
type Tensor struct {
	channels int
	frames   int
	height   int
	width    int
	data     []float32
}

// New creates a zero-filled tensor of the given shape.
func New(channels, frames, height, width int) *Tensor {
	return &Tensor{
		channels: channels,
		frames:   frames,
		height:   height,
		width:    width,
		data:     make([]float32, channels*frames*height*width),
	}
}

// Shape returns (channels, frames, height, width).
func (t *Tensor) Shape() [4]int {
	return [4]int{t.channels, t.frames, t.height, t.width}
}

// At returns the value at channel c, frame f, row y, column x.
func (t *Tensor) At(c, f, y, x int) float32 {
	return t.data[((c*t.frames+f)*t.height+y)*t.width+x]
}

// Set stores v at channel c, frame f, row y, column x.
func (t *Tensor) Set(c, f, y, x int, v float32) {
	t.data[((c*t.frames+f)*t.height+y)*t.width+x] = v
}

// Data returns the backing slice in C order. The slice is shared with
// the tensor; callers must not resize it.
func (t *Tensor) Data() []float32 {
	return t.data
}

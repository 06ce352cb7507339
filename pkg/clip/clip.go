// Package clip defines the frame and clip data model for video preprocessing.
//
// A clip is an ordered sequence of frames sharing the same dimensions.
// Two frame representations are supported: *Array, a dense H×W×C pixel
// buffer with values in [0, 255], and image.Image, an opaque image object.
// All frames of a clip use the same representation; it is inferred once
// from the first frame.
package clip

import "errors"

// Frame is a single image in a clip. Supported concrete types are
// *Array and image.Image. Any other type is rejected with
// ErrUnsupportedRepresentation when the clip is processed.
type Frame any

// Clip is an ordered sequence of frames.
type Clip []Frame

// Dimension represents width and height in pixels.
type Dimension struct {
	Width  int
	Height int
}

var (
	// ErrUnsupportedRepresentation is returned when a clip's first frame
	// is neither an *Array nor an image.Image.
	ErrUnsupportedRepresentation = errors.New("clip: frame is neither *clip.Array nor image.Image")

	// ErrEmptyClip is returned when an operation needs at least one frame
	// to infer the clip's representation.
	ErrEmptyClip = errors.New("clip: clip has no frames")
)

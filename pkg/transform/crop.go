package transform

import "github.com/user/clipprep/pkg/clip"

// RandomCrop extracts a crop of fixed size at a random offset. The
// offset is drawn once per clip and the identical window is applied to
// every frame.
type RandomCrop struct {
	height int
	width  int
	rng    Rand
}

// NewRandomCrop creates the transform with target size (height, width).
// A nil rng uses the process-global generator.
func NewRandomCrop(height, width int, rng Rand) *RandomCrop {
	if rng == nil {
		rng = Ambient()
	}
	return &RandomCrop{height: height, width: width, rng: rng}
}

// Apply crops every frame to the configured size. The size is validated
// against the source dimensions before any random draw, so a failed
// call consumes no randomness. Offsets x1 and y1 are drawn uniformly
// from [0, srcW-w] and [0, srcH-h], in that order.
func (t *RandomCrop) Apply(c clip.Clip) (clip.Clip, error) {
	ops, err := clip.OpsFor(c)
	if err != nil {
		return nil, err
	}
	src := ops.Dimensions(c[0])
	if t.width > src.Width || t.height > src.Height {
		return nil, &CropSizeError{
			Source:    src,
			Requested: clip.Dimension{Width: t.width, Height: t.height},
		}
	}
	x1 := t.rng.Intn(src.Width - t.width + 1)
	y1 := t.rng.Intn(src.Height - t.height + 1)
	out := make(clip.Clip, len(c))
	for i, f := range c {
		out[i] = ops.Crop(f, x1, y1, t.width, t.height)
	}
	return out, nil
}

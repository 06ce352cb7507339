package transform

import "github.com/user/clipprep/pkg/clip"

// RandomHorizontalFlip mirrors every frame of a clip left-right with
// probability 0.5. One random draw decides the whole clip, so all
// frames flip together or not at all.
type RandomHorizontalFlip struct {
	rng Rand
}

// NewRandomHorizontalFlip creates the transform. A nil rng uses the
// process-global generator.
func NewRandomHorizontalFlip(rng Rand) *RandomHorizontalFlip {
	if rng == nil {
		rng = Ambient()
	}
	return &RandomHorizontalFlip{rng: rng}
}

// Apply flips the clip or returns it unchanged. The random draw happens
// before representation dispatch, so the no-flip branch returns the
// input as-is without inspecting the frames.
func (t *RandomHorizontalFlip) Apply(c clip.Clip) (clip.Clip, error) {
	if t.rng.Float64() >= 0.5 {
		return c, nil
	}
	ops, err := clip.OpsFor(c)
	if err != nil {
		return nil, err
	}
	out := make(clip.Clip, len(c))
	for i, f := range c {
		out[i] = ops.FlipHorizontal(f)
	}
	return out, nil
}

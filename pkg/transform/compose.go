package transform

import "github.com/user/clipprep/pkg/clip"

// Compose applies a sequence of transforms left to right.
type Compose struct {
	transforms []Transform
}

// NewCompose creates a composite of the given transforms. An empty
// composite is the identity transform.
func NewCompose(transforms ...Transform) *Compose {
	return &Compose{transforms: transforms}
}

// Len returns the number of composed transforms.
func (t *Compose) Len() int {
	return len(t.transforms)
}

// Apply folds each transform over the clip in order. The first error
// stops the chain and is returned unchanged.
func (t *Compose) Apply(c clip.Clip) (clip.Clip, error) {
	var err error
	for _, tr := range t.transforms {
		c, err = tr.Apply(c)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

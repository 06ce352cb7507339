// Package transform implements clip-level preprocessing transforms.
//
// Each transform maps a clip to a new clip of the same length and
// applies one shared decision to every frame, so a random flip or crop
// is consistent across the whole sequence. Transforms hold only
// immutable configuration; errors are returned to the caller and never
// logged or recovered here.
package transform

import "github.com/user/clipprep/pkg/clip"

// Transform is a unary clip operation.
type Transform interface {
	// Apply transforms the clip and returns the result. The input clip
	// is never modified.
	Apply(c clip.Clip) (clip.Clip, error)
}

// TransformFunc is a function adapter for the Transform interface.
type TransformFunc func(c clip.Clip) (clip.Clip, error)

// Apply implements Transform.
func (f TransformFunc) Apply(c clip.Clip) (clip.Clip, error) {
	return f(c)
}

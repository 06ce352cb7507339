package ports

import (
	"context"

	"github.com/user/clipprep/pkg/clip"
)

// SourcedClip is a clip together with the key identifying its sample.
type SourcedClip struct {
	Key  string
	Clip clip.Clip
}

// FrameSource produces decoded clips for preprocessing. Decoding of
// images from disk (or wherever frames come from) lives entirely behind
// this interface; the transform core never touches codecs.
type FrameSource interface {
	// Clips returns all clips in a stable order.
	Clips(ctx context.Context) ([]SourcedClip, error)
}

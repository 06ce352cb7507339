package transform

import (
	"fmt"

	"github.com/user/clipprep/pkg/clip"
)

// CropSizeError is returned by RandomCrop when the requested crop size
// exceeds the source frame size in either dimension.
type CropSizeError struct {
	Source    clip.Dimension
	Requested clip.Dimension
}

func (e *CropSizeError) Error() string {
	return fmt.Sprintf("transform: requested crop %dx%d exceeds source frame %dx%d",
		e.Requested.Width, e.Requested.Height, e.Source.Width, e.Source.Height)
}

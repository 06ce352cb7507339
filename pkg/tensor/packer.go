package tensor

import (
	"fmt"

	"github.com/user/clipprep/pkg/clip"
)

// DefaultChannels is the expected per-frame channel count.
const DefaultChannels = 3

// Packer converts a clip of H×W×C frames with values in [0, 255] into
// a (C, T, H, W) float32 tensor with values in [0, 1]. The channel axis
// is written in reverse input order, so RGB input yields BGR-ordered
// channels; the training side this feeds expects that convention.
type Packer struct {
	channels int
}

// NewPacker creates a packer expecting the given channel count per
// frame. Zero or negative values select DefaultChannels.
func NewPacker(channels int) *Packer {
	if channels <= 0 {
		channels = DefaultChannels
	}
	return &Packer{channels: channels}
}

// Channels returns the configured channel count.
func (p *Packer) Channels() int { return p.channels }

// Pack converts the clip. Every frame is extracted as a dense array,
// rescaled by 1/255, and written into its time slice with the channel
// axis reversed. A frame whose channel count disagrees with the
// configuration fails with a ChannelCountError.
func (p *Packer) Pack(c clip.Clip) (*Tensor, error) {
	ops, err := clip.OpsFor(c)
	if err != nil {
		return nil, err
	}
	dim := ops.Dimensions(c[0])
	out := New(p.channels, len(c), dim.Height, dim.Width)
	for ti, f := range c {
		arr := ops.ToArray(f)
		if arr.Channels() != p.channels {
			return nil, &ChannelCountError{Want: p.channels, Got: arr.Channels()}
		}
		for y := 0; y < dim.Height; y++ {
			for x := 0; x < dim.Width; x++ {
				for ch := 0; ch < p.channels; ch++ {
					v := arr.At(y, x, p.channels-1-ch)
					out.Set(ch, ti, y, x, float32(v)/255)
				}
			}
		}
	}
	return out, nil
}

// ChannelCountError is returned when a frame's channel count does not
// match the packer's configuration.
type ChannelCountError struct {
	Want int
	Got  int
}

func (e *ChannelCountError) Error() string {
	return fmt.Sprintf("tensor: expected %d channels, got %d", e.Want, e.Got)
}

package ports

import (
	"github.com/user/clipprep/pkg/clip"
	"github.com/user/clipprep/pkg/tensor"
)

// TensorSink receives the packed tensor for each processed clip.
type TensorSink interface {
	// WriteTensor persists the tensor under the clip's key.
	WriteTensor(key string, t *tensor.Tensor) error
}

// DebugSink saves intermediate results for inspection.
type DebugSink interface {
	// Enabled reports whether debug output is enabled. Callers should
	// skip preparing debug data when it returns false.
	Enabled() bool

	// SaveClip saves a visual rendition of the clip at a named stage
	// of the pipeline (for example "input" or "transformed").
	SaveClip(key, stage string, c clip.Clip) error

	// SaveTensorMeta saves tensor metadata as JSON.
	SaveTensorMeta(key string, data []byte) error
}

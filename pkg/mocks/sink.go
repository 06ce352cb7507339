package mocks

import (
	"sync"

	"github.com/user/clipprep/pkg/clip"
	"github.com/user/clipprep/pkg/ports"
	"github.com/user/clipprep/pkg/tensor"
)

// TensorSink is a mock implementation of ports.TensorSink recording
// every written tensor.
type TensorSink struct {
	mu sync.Mutex

	Tensors map[string]*tensor.Tensor
	Err     error
}

// NewTensorSink creates a recording sink.
func NewTensorSink() *TensorSink {
	return &TensorSink{Tensors: make(map[string]*tensor.Tensor)}
}

// WriteTensor records the tensor or returns the configured error.
func (m *TensorSink) WriteTensor(key string, t *tensor.Tensor) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Tensors[key] = t
	return nil
}

var _ ports.TensorSink = (*TensorSink)(nil)

// DebugSink is a mock implementation of ports.DebugSink recording
// saved clips and metadata.
type DebugSink struct {
	mu sync.Mutex

	enabled bool

	Clips map[string]clip.Clip // keyed by "<key>/<stage>"
	Meta  map[string][]byte
}

// NewDebugSink creates a recording debug sink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Clips:   make(map[string]clip.Clip),
		Meta:    make(map[string][]byte),
	}
}

// Enabled reports the configured state.
func (m *DebugSink) Enabled() bool {
	return m.enabled
}

// SaveClip records the clip under "<key>/<stage>".
func (m *DebugSink) SaveClip(key, stage string, c clip.Clip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Clips[key+"/"+stage] = c
	return nil
}

// SaveTensorMeta records the metadata.
func (m *DebugSink) SaveTensorMeta(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Meta[key] = data
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)

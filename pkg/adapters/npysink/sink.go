// Package npysink implements a TensorSink writing NumPy .npy files.
package npysink

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/user/clipprep/pkg/npy"
	"github.com/user/clipprep/pkg/ports"
	"github.com/user/clipprep/pkg/tensor"
)

// Sink writes one <key>.npy file per tensor into a base directory.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a sink writing into baseDir.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{baseDir: baseDir, fs: fs}
}

// WriteTensor serializes the tensor as float32 .npy and writes it to
// <baseDir>/<key>.npy.
func (s *Sink) WriteTensor(key string, t *tensor.Tensor) error {
	shape := t.Shape()
	var buf bytes.Buffer
	if err := npy.Write(&buf, t.Data(), shape[:]); err != nil {
		return fmt.Errorf("npysink: encode %s: %w", key, err)
	}
	path := filepath.Join(s.baseDir, key+".npy")
	if err := s.fs.WriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("npysink: write %s: %w", key, err)
	}
	return nil
}

var _ ports.TensorSink = (*Sink)(nil)

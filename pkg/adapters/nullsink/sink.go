// Package nullsink provides a no-op debug sink.
package nullsink

import (
	"github.com/user/clipprep/pkg/clip"
	"github.com/user/clipprep/pkg/ports"
)

// Sink discards all debug output.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false so callers skip preparing debug data.
func (s *Sink) Enabled() bool {
	return false
}

// SaveClip does nothing.
func (s *Sink) SaveClip(key, stage string, c clip.Clip) error {
	return nil
}

// SaveTensorMeta does nothing.
func (s *Sink) SaveTensorMeta(key string, data []byte) error {
	return nil
}

var _ ports.DebugSink = (*Sink)(nil)

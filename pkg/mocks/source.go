// Package mocks provides mock port implementations for tests.
package mocks

import (
	"context"

	"github.com/user/clipprep/pkg/ports"
)

// FrameSource is a mock implementation of ports.FrameSource.
type FrameSource struct {
	Items []ports.SourcedClip
	Err   error
}

// NewFrameSource creates a source returning the given clips.
func NewFrameSource(items ...ports.SourcedClip) *FrameSource {
	return &FrameSource{Items: items}
}

// Clips returns the configured clips or error.
func (m *FrameSource) Clips(ctx context.Context) ([]ports.SourcedClip, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Items, nil
}

var _ ports.FrameSource = (*FrameSource)(nil)

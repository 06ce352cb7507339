// Package filesink provides a file-based debug sink. Clips are saved
// as contact-sheet PNGs so transform output can be eyeballed.
package filesink

import (
	"bytes"
	"fmt"
	"image/png"
	"path/filepath"

	"github.com/user/clipprep/pkg/clip"
	"github.com/user/clipprep/pkg/ports"
)

// Sink saves debug output under a base directory, one subdirectory per
// clip key.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new Sink.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{baseDir: baseDir, fs: fs}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveClip renders the clip as a contact sheet and writes it to
// <baseDir>/<key>/<stage>.png.
func (s *Sink) SaveClip(key, stage string, c clip.Clip) error {
	img, err := Render(c, fmt.Sprintf("%s / %s", key, stage))
	if err != nil {
		return fmt.Errorf("filesink: render %s/%s: %w", key, stage, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("filesink: encode %s/%s: %w", key, stage, err)
	}
	path := filepath.Join(s.baseDir, key, stage+".png")
	return s.fs.WriteFile(path, buf.Bytes())
}

// SaveTensorMeta writes tensor metadata to <baseDir>/<key>/tensor.json.
func (s *Sink) SaveTensorMeta(key string, data []byte) error {
	path := filepath.Join(s.baseDir, key, "tensor.json")
	return s.fs.WriteFile(path, data)
}

var _ ports.DebugSink = (*Sink)(nil)

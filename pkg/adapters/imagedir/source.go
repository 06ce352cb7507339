// Package imagedir implements a FrameSource reading clips from
// directories of image files.
//
// Each immediate subdirectory of the root that contains image files is
// one clip, keyed by the subdirectory name and ordered by file name.
// When the root has no such subdirectories, its own image files form a
// single clip keyed by the root's base name.
package imagedir

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"path/filepath"
	"sort"
	"strings"

	// Registered decoders for the frame formats the source accepts.
	_ "image/jpeg"
	_ "image/png"

	"github.com/user/clipprep/pkg/clip"
	"github.com/user/clipprep/pkg/ports"
)

// Source reads clips from a directory tree of PNG/JPEG frames.
type Source struct {
	root string
	fs   ports.FileSystem
}

// New creates a source rooted at dir.
func New(dir string, fs ports.FileSystem) *Source {
	return &Source{root: dir, fs: fs}
}

// Clips scans the root and decodes every clip it finds. Frames use the
// image representation; decoding is this adapter's whole job and the
// transform core never sees encoded bytes.
func (s *Source) Clips(ctx context.Context) ([]ports.SourcedClip, error) {
	entries, err := s.fs.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("imagedir: read root: %w", err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	sort.Strings(dirs)

	var clips []ports.SourcedClip
	for _, name := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		frames, err := s.readFrames(filepath.Join(s.root, name))
		if err != nil {
			return nil, err
		}
		if len(frames) == 0 {
			continue
		}
		clips = append(clips, ports.SourcedClip{Key: name, Clip: frames})
	}

	if len(clips) == 0 {
		frames, err := s.readFrames(s.root)
		if err != nil {
			return nil, err
		}
		if len(frames) > 0 {
			clips = append(clips, ports.SourcedClip{
				Key:  filepath.Base(s.root),
				Clip: frames,
			})
		}
	}

	return clips, nil
}

// readFrames decodes every image file directly inside dir, in file
// name order.
func (s *Source) readFrames(dir string) (clip.Clip, error) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("imagedir: read dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if isImageFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	frames := make(clip.Clip, 0, len(names))
	for _, name := range names {
		data, err := s.fs.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("imagedir: read frame %s: %w", name, err)
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("imagedir: decode frame %s: %w", name, err)
		}
		frames = append(frames, img)
	}
	return frames, nil
}

func isImageFile(name string) bool {
	if strings.HasPrefix(name, "._") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	default:
		return false
	}
}

var _ ports.FrameSource = (*Source)(nil)

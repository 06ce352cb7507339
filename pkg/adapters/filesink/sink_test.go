package filesink

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/clipprep/pkg/adapters/osfilesystem"
	"github.com/user/clipprep/pkg/clip"
)

func grayClip(frames, h, w int) clip.Clip {
	out := make(clip.Clip, frames)
	for i := range out {
		a := clip.NewArray(h, w, 3)
		a.Fill(float64(40 * i))
		out[i] = a
	}
	return out
}

func TestRender(t *testing.T) {
	img, err := Render(grayClip(5, 8, 12), "clip / input")
	if err != nil {
		t.Fatal(err)
	}

	// 5 frames pack into a 3-column grid of 12x8 cells.
	bounds := img.Bounds()
	wantW := sheetMargin*2 + 3*12 + 2*sheetGap
	if bounds.Dx() != wantW {
		t.Errorf("width = %d, want %d", bounds.Dx(), wantW)
	}
	if bounds.Dy() <= headerHeight {
		t.Errorf("height = %d, want taller than header", bounds.Dy())
	}
}

func TestRender_EmptyClip(t *testing.T) {
	if _, err := Render(clip.Clip{}, "x"); err != clip.ErrEmptyClip {
		t.Errorf("got %v, want ErrEmptyClip", err)
	}
}

func TestSaveClip(t *testing.T) {
	dir := t.TempDir()
	sink := New(dir, osfilesystem.New())

	if !sink.Enabled() {
		t.Error("Enabled() = false")
	}
	if err := sink.SaveClip("clip01", "input", grayClip(2, 4, 4)); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "clip01", "input.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("missing PNG magic, got % x", data[:4])
	}
}

func TestSaveTensorMeta(t *testing.T) {
	dir := t.TempDir()
	sink := New(dir, osfilesystem.New())

	meta := []byte(`{"key":"clip01"}`)
	if err := sink.SaveTensorMeta("clip01", meta); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "clip01", "tensor.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, meta) {
		t.Errorf("got %s", data)
	}
}

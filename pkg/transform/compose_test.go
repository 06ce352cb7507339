package transform

import (
	"errors"
	"testing"

	"github.com/user/clipprep/pkg/clip"
)

func TestCompose_EmptyIsIdentity(t *testing.T) {
	c := arrayClip(3, 4, 4, 3)
	out, err := NewCompose().Apply(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(c) {
		t.Fatalf("output length = %d, want %d", len(out), len(c))
	}
	for i := range out {
		if out[i] != c[i] {
			t.Fatalf("frame %d: expected identical frame back", i)
		}
	}
}

func TestCompose_AppliesInOrder(t *testing.T) {
	// Composing scale-then-crop must equal applying them one by one
	// with the same scripted offsets.
	scale := NewScale(clip.Dimension{Width: 6, Height: 6}, InterpolationNearest)
	crop1 := NewRandomCrop(2, 3, &stubRand{ints: []int{1, 2}})
	crop2 := NewRandomCrop(2, 3, &stubRand{ints: []int{1, 2}})

	c := arrayClip(2, 8, 8, 3)

	composed, err := NewCompose(scale, crop1).Apply(c)
	if err != nil {
		t.Fatal(err)
	}

	scaled, err := scale.Apply(c)
	if err != nil {
		t.Fatal(err)
	}
	stepped, err := crop2.Apply(scaled)
	if err != nil {
		t.Fatal(err)
	}

	for ti := range composed {
		a := composed[ti].(*clip.Array)
		b := stepped[ti].(*clip.Array)
		for y := 0; y < 2; y++ {
			for x := 0; x < 3; x++ {
				if a.At(y, x, 0) != b.At(y, x, 0) {
					t.Fatalf("frame %d differs at (%d,%d): %v vs %v", ti, y, x, a.At(y, x, 0), b.At(y, x, 0))
				}
			}
		}
	}
}

func TestCompose_PropagatesError(t *testing.T) {
	sentinel := errors.New("boom")
	failing := TransformFunc(func(c clip.Clip) (clip.Clip, error) {
		return nil, sentinel
	})
	var called bool
	after := TransformFunc(func(c clip.Clip) (clip.Clip, error) {
		called = true
		return c, nil
	})

	_, err := NewCompose(failing, after).Apply(arrayClip(1, 2, 2, 3))
	if !errors.Is(err, sentinel) {
		t.Fatalf("error = %v, want sentinel", err)
	}
	if called {
		t.Error("transforms after a failure must not run")
	}
}

func TestCompose_Len(t *testing.T) {
	if got := NewCompose().Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
	if got := NewCompose(NewRandomHorizontalFlip(nil), NewScale(clip.Dimension{Width: 2, Height: 2}, "")).Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/clipprep/pkg/adapters/logger"
	"github.com/user/clipprep/pkg/clip"
	"github.com/user/clipprep/pkg/mocks"
	"github.com/user/clipprep/pkg/ports"
	"github.com/user/clipprep/pkg/tensor"
	"github.com/user/clipprep/pkg/transform"
)

func testClip(frames, h, w int) clip.Clip {
	out := make(clip.Clip, frames)
	for i := range out {
		a := clip.NewArray(h, w, 3)
		a.Fill(128)
		out[i] = a
	}
	return out
}

func newOrchestrator(source ports.FrameSource, pipeline transform.Transform, sink ports.TensorSink, debug ports.DebugSink) *Orchestrator {
	return New(source, pipeline, tensor.NewPacker(3), sink, debug, logger.NewNoop())
}

func TestRun_WritesTensors(t *testing.T) {
	source := mocks.NewFrameSource(
		ports.SourcedClip{Key: "a", Clip: testClip(2, 4, 4)},
		ports.SourcedClip{Key: "b", Clip: testClip(3, 4, 4)},
	)
	sink := mocks.NewTensorSink()
	debug := mocks.NewDebugSink(true)

	orch := newOrchestrator(source, transform.NewCompose(), sink, debug)
	result, err := orch.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, sink.Tensors, 2)
	assert.Equal(t, [4]int{3, 2, 4, 4}, sink.Tensors["a"].Shape())
	assert.Equal(t, [4]int{3, 3, 4, 4}, sink.Tensors["b"].Shape())

	// Debug sink saw both stages and the metadata.
	assert.Contains(t, debug.Clips, "a/input")
	assert.Contains(t, debug.Clips, "a/transformed")
	assert.Contains(t, debug.Meta, "a")
}

func TestRun_AppliesPipeline(t *testing.T) {
	source := mocks.NewFrameSource(
		ports.SourcedClip{Key: "a", Clip: testClip(2, 8, 8)},
	)
	sink := mocks.NewTensorSink()

	pipeline := transform.NewCompose(
		transform.NewScale(clip.Dimension{Width: 4, Height: 6}, transform.InterpolationNearest),
	)
	orch := newOrchestrator(source, pipeline, sink, mocks.NewDebugSink(false))
	_, err := orch.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, [4]int{3, 2, 6, 4}, sink.Tensors["a"].Shape())
}

func TestRun_SkipsFailingClips(t *testing.T) {
	source := mocks.NewFrameSource(
		ports.SourcedClip{Key: "small", Clip: testClip(1, 2, 2)},
		ports.SourcedClip{Key: "ok", Clip: testClip(1, 8, 8)},
	)
	sink := mocks.NewTensorSink()

	// The 2x2 clip cannot satisfy a 4x4 crop and must be skipped.
	pipeline := transform.NewCompose(
		transform.NewRandomCrop(4, 4, nil),
	)
	orch := newOrchestrator(source, pipeline, sink, mocks.NewDebugSink(false))
	result, err := orch.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Skipped)
	assert.NotContains(t, sink.Tensors, "small")
	assert.Contains(t, sink.Tensors, "ok")
}

func TestRun_SourceErrorStops(t *testing.T) {
	source := &mocks.FrameSource{Err: errors.New("disk gone")}
	orch := newOrchestrator(source, transform.NewCompose(), mocks.NewTensorSink(), mocks.NewDebugSink(false))

	_, err := orch.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestRun_SinkErrorStops(t *testing.T) {
	source := mocks.NewFrameSource(
		ports.SourcedClip{Key: "a", Clip: testClip(1, 4, 4)},
	)
	sink := mocks.NewTensorSink()
	sink.Err = errors.New("no space")

	orch := newOrchestrator(source, transform.NewCompose(), sink, mocks.NewDebugSink(false))
	_, err := orch.Run(context.Background())
	require.Error(t, err)
}

func TestRun_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := mocks.NewFrameSource(
		ports.SourcedClip{Key: "a", Clip: testClip(1, 4, 4)},
	)
	orch := newOrchestrator(source, transform.NewCompose(), mocks.NewTensorSink(), mocks.NewDebugSink(false))
	_, err := orch.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

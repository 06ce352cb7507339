// Package orchestrator coordinates clip preprocessing from source to
// sink.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ideamans/go-l10n"

	"github.com/user/clipprep/pkg/ports"
	"github.com/user/clipprep/pkg/tensor"
	"github.com/user/clipprep/pkg/transform"
)

// Orchestrator runs the transform chain and tensor packing over every
// clip a source produces. Clips that fail are logged and skipped; the
// transform core itself never logs or recovers.
type Orchestrator struct {
	source   ports.FrameSource
	pipeline transform.Transform
	packer   *tensor.Packer
	sink     ports.TensorSink
	debug    ports.DebugSink
	logger   ports.Logger
}

// New creates a new Orchestrator.
func New(
	source ports.FrameSource,
	pipeline transform.Transform,
	packer *tensor.Packer,
	sink ports.TensorSink,
	debug ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		source:   source,
		pipeline: pipeline,
		packer:   packer,
		sink:     sink,
		debug:    debug,
		logger:   logger,
	}
}

// TensorInfo describes one written tensor.
type TensorInfo struct {
	Key   string `json:"key"`
	Shape [4]int `json:"shape"`
}

// RunResult summarizes a run.
type RunResult struct {
	Processed int
	Skipped   int
	Tensors   []TensorInfo
}

// Run processes every clip sequentially. It stops early only when the
// source fails, the sink fails, or the context is cancelled; per-clip
// transform errors are counted as skipped samples.
func (o *Orchestrator) Run(ctx context.Context) (RunResult, error) {
	result := RunResult{}

	clips, err := o.source.Clips(ctx)
	if err != nil {
		return result, fmt.Errorf("source: %w", err)
	}
	o.logger.Info(l10n.F("Loaded %d clips", len(clips)))

	for _, sc := range clips {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		o.logger.Debug(l10n.F("Processing clip %s (%d frames)", sc.Key, len(sc.Clip)))
		if o.debug.Enabled() {
			o.debug.SaveClip(sc.Key, "input", sc.Clip)
		}

		transformed, err := o.pipeline.Apply(sc.Clip)
		if err != nil {
			o.logger.Warn(l10n.F("Skipping clip %s: %s", sc.Key, err))
			result.Skipped++
			continue
		}
		if o.debug.Enabled() {
			o.debug.SaveClip(sc.Key, "transformed", transformed)
		}

		t, err := o.packer.Pack(transformed)
		if err != nil {
			o.logger.Warn(l10n.F("Skipping clip %s: %s", sc.Key, err))
			result.Skipped++
			continue
		}

		info := TensorInfo{Key: sc.Key, Shape: t.Shape()}
		if o.debug.Enabled() {
			if data, err := json.MarshalIndent(info, "", "  "); err == nil {
				o.debug.SaveTensorMeta(sc.Key, data)
			}
		}

		if err := o.sink.WriteTensor(sc.Key, t); err != nil {
			return result, fmt.Errorf("sink: write %s: %w", sc.Key, err)
		}

		result.Processed++
		result.Tensors = append(result.Tensors, info)
		shape := t.Shape()
		o.logger.Info(l10n.F("Wrote tensor %s (%d, %d, %d, %d)", sc.Key, shape[0], shape[1], shape[2], shape[3]))
	}

	o.logger.Info(l10n.F("Done: %d processed, %d skipped", result.Processed, result.Skipped))
	return result, nil
}

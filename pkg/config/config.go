// Package config loads preprocessing profiles. A profile is a YAML
// file describing the transform chain; CLIPPREP_* environment
// variables override the top-level fields.
package config

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	"github.com/user/clipprep/pkg/clip"
	"github.com/user/clipprep/pkg/tensor"
	"github.com/user/clipprep/pkg/transform"
)

// Transform type names accepted in profiles.
const (
	TypeRandomHorizontalFlip = "random_horizontal_flip"
	TypeScale                = "scale"
	TypeRandomCrop           = "random_crop"
)

// Config is a full preprocessing profile.
type Config struct {
	// Input is the directory of frame images to read clips from.
	Input string `yaml:"input" env:"CLIPPREP_INPUT"`

	// Output is the directory .npy tensors are written to.
	Output string `yaml:"output" env:"CLIPPREP_OUTPUT"`

	// Channels is the per-frame channel count the packer expects.
	Channels int `yaml:"channels" env:"CLIPPREP_CHANNELS" validate:"gte=1"`

	// Seed, when set, creates a private generator for the random
	// transforms. Without it the process-global generator is used.
	Seed *int64 `yaml:"seed"`

	// Transforms is the chain applied to each clip, in order.
	Transforms []TransformConfig `yaml:"transforms" validate:"dive"`

	LogLevel string `yaml:"log_level" env:"CLIPPREP_LOG_LEVEL" validate:"oneof=debug info warn error quiet"`
	Debug    bool   `yaml:"debug" env:"CLIPPREP_DEBUG"`
	DebugDir string `yaml:"debug_dir" env:"CLIPPREP_DEBUG_DIR"`
}

// TransformConfig describes one transform in the chain.
type TransformConfig struct {
	Type string `yaml:"type" validate:"required,oneof=random_horizontal_flip scale random_crop"`

	// Width and Height configure scale and random_crop; flip takes no
	// parameters.
	Width  int `yaml:"width" validate:"gte=0"`
	Height int `yaml:"height" validate:"gte=0"`

	// Interpolation applies to scale only: "nearest" (default) or
	// "bilinear".
	Interpolation string `yaml:"interpolation" validate:"omitempty,oneof=nearest bilinear"`
}

// Defaults returns a Config with default values and no transforms.
func Defaults() Config {
	return Config{
		Channels: tensor.DefaultChannels,
		LogLevel: "info",
		DebugDir: "./debug",
	}
}

// LoadFromFile loads a profile from a YAML file over the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays CLIPPREP_* environment variables onto the config.
func (c *Config) ApplyEnv(ctx context.Context) error {
	if err := envconfig.Process(ctx, c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Validate checks field constraints and per-transform parameter
// requirements.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	for i, tc := range c.Transforms {
		switch tc.Type {
		case TypeScale, TypeRandomCrop:
			if tc.Width <= 0 || tc.Height <= 0 {
				return fmt.Errorf("config: transforms[%d] (%s): width and height must be positive", i, tc.Type)
			}
		}
	}
	return nil
}

// BuildPipeline compiles the profile into a transform chain and a
// tensor packer. When Seed is set, flip and crop share one private
// generator so runs are reproducible.
func (c Config) BuildPipeline() (*transform.Compose, *tensor.Packer, error) {
	var rng transform.Rand
	if c.Seed != nil {
		rng = rand.New(rand.NewSource(*c.Seed))
	}

	transforms := make([]transform.Transform, 0, len(c.Transforms))
	for i, tc := range c.Transforms {
		switch tc.Type {
		case TypeRandomHorizontalFlip:
			transforms = append(transforms, transform.NewRandomHorizontalFlip(rng))
		case TypeScale:
			size := clip.Dimension{Width: tc.Width, Height: tc.Height}
			transforms = append(transforms, transform.NewScale(size, transform.Interpolation(tc.Interpolation)))
		case TypeRandomCrop:
			transforms = append(transforms, transform.NewRandomCrop(tc.Height, tc.Width, rng))
		default:
			return nil, nil, fmt.Errorf("config: transforms[%d]: unknown type %q", i, tc.Type)
		}
	}

	return transform.NewCompose(transforms...), tensor.NewPacker(c.Channels), nil
}

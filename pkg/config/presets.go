package config

// PresetTrain returns the standard training profile: flip, scale to
// 256x256, crop to 224x224, pack 3 channels.
func PresetTrain() Config {
	cfg := Defaults()
	cfg.Transforms = []TransformConfig{
		{Type: TypeRandomHorizontalFlip},
		{Type: TypeScale, Width: 256, Height: 256, Interpolation: "bilinear"},
		{Type: TypeRandomCrop, Width: 224, Height: 224},
	}
	return cfg
}

// PresetEval returns the evaluation profile: deterministic scale to
// 224x224, pack 3 channels, no random transforms.
func PresetEval() Config {
	cfg := Defaults()
	cfg.Transforms = []TransformConfig{
		{Type: TypeScale, Width: 224, Height: 224, Interpolation: "bilinear"},
	}
	return cfg
}

// Presets maps preset names to their builders.
var Presets = map[string]func() Config{
	"train": PresetTrain,
	"eval":  PresetEval,
}

// Package main provides the CLI entry point for clipprep.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/user/clipprep/pkg/adapters/filesink"
	"github.com/user/clipprep/pkg/adapters/imagedir"
	"github.com/user/clipprep/pkg/adapters/logger"
	"github.com/user/clipprep/pkg/adapters/npysink"
	"github.com/user/clipprep/pkg/adapters/nullsink"
	"github.com/user/clipprep/pkg/adapters/osfilesystem"
	"github.com/user/clipprep/pkg/config"
	"github.com/user/clipprep/pkg/orchestrator"
	"github.com/user/clipprep/pkg/ports"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "clipprep",
		Usage:   "Preprocess video clips into training tensors",
		Version: version,
		Commands: []*cli.Command{
			runCommand(),
			inspectCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func profileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Profile YAML file (overrides the preset)."},
		&cli.StringFlag{Name: "preset", Aliases: []string{"p"}, Value: "train", Usage: "Built-in profile: train or eval."},
		&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "Directory of frame images, one subdirectory per clip."},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Directory to write .npy tensors to."},
		&cli.Int64Flag{Name: "seed", Usage: "Seed for the random transforms (omit for ambient randomness)."},
		&cli.IntFlag{Name: "channels", Usage: "Expected channel count per frame."},
		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: "Log level: debug, info, warn, error, quiet."},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: "Suppress all log output."},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "Save contact sheets and tensor metadata."},
		&cli.StringFlag{Name: "debug-dir", Usage: "Directory for debug output."},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Apply a profile to a directory of clips and write tensors",
		Flags: profileFlags(),
		Action: func(c *cli.Context) error {
			cfg, err := resolveConfig(c)
			if err != nil {
				return err
			}
			if cfg.Input == "" {
				return fmt.Errorf("input directory is required (--input or CLIPPREP_INPUT)")
			}
			if cfg.Output == "" {
				return fmt.Errorf("output directory is required (--output or CLIPPREP_OUTPUT)")
			}

			log := buildLogger(cfg, c.Bool("quiet"))

			pipeline, packer, err := cfg.BuildPipeline()
			if err != nil {
				return err
			}

			fs := osfilesystem.New()
			source := imagedir.New(cfg.Input, fs)
			sink := npysink.New(cfg.Output, fs)

			var debug ports.DebugSink = nullsink.New()
			if cfg.Debug {
				debug = filesink.New(cfg.DebugDir, fs)
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			orch := orchestrator.New(source, pipeline, packer, sink, debug, log)
			result, err := orch.Run(ctx)
			if err != nil {
				return err
			}
			if result.Processed == 0 {
				return fmt.Errorf("no clips processed under %s", cfg.Input)
			}
			return nil
		},
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Print the resolved profile",
		Flags: profileFlags(),
		Action: func(c *cli.Context) error {
			cfg, err := resolveConfig(c)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}
}

// resolveConfig layers preset or profile file, environment overrides,
// and command-line flags, then validates the result.
func resolveConfig(c *cli.Context) (config.Config, error) {
	var cfg config.Config
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	} else {
		preset, ok := config.Presets[c.String("preset")]
		if !ok {
			return cfg, fmt.Errorf("unknown preset %q", c.String("preset"))
		}
		cfg = preset()
	}

	if err := cfg.ApplyEnv(c.Context); err != nil {
		return cfg, err
	}

	if c.IsSet("input") {
		cfg.Input = c.String("input")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("seed") {
		seed := c.Int64("seed")
		cfg.Seed = &seed
	}
	if c.IsSet("channels") {
		cfg.Channels = c.Int("channels")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func buildLogger(cfg config.Config, quiet bool) ports.Logger {
	if quiet || cfg.LogLevel == "quiet" {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
}

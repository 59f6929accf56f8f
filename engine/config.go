package engine

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/ovenlight/turnbake/engine/pipeline"
	"github.com/ovenlight/turnbake/engine/scene"
)

type InputConfig struct {
	// Directory scanned (recursively) for mesh files.
	Path string `toml:"path"`
	// Keep watching the directory and export meshes as they appear.
	Watch bool `toml:"watch"`
}

type OutputConfig struct {
	Path string `toml:"path"`
}

type BakeConfig struct {
	Resolution          int      `toml:"resolution"`
	WireframeResolution int      `toml:"wireframe_resolution"`
	WireframeThickness  float32  `toml:"wireframe_thickness"`
	AOSamples           int      `toml:"ao_samples"`
	ThicknessDistance   float32  `toml:"thickness_distance"`
	ThicknessSamples    int      `toml:"thickness_samples"`
	CurvatureSize       float32  `toml:"curvature_size"`
	// Which data maps to bake; empty means all of them.
	Modes []string `toml:"modes"`
}

type RenderConfig struct {
	Resolution      int     `toml:"resolution"`
	CameraCount     int     `toml:"camera_count"`
	FocalLength     float32 `toml:"focal_length"`
	CoveragePadding float32 `toml:"coverage_padding"`
	MinDistanceMult float32 `toml:"min_distance_mult"`
}

type BatchConfig struct {
	Size        int  `toml:"size"`
	AutoCleanup bool `toml:"auto_cleanup"`
	Checkpoint  bool `toml:"checkpoint"`
}

/**
 * @brief The exporter configuration, loaded from a TOML file and overlaid
 * on the defaults.
 */
type Config struct {
	LogLevel string       `toml:"log_level"`
	Input    InputConfig  `toml:"input"`
	Output   OutputConfig `toml:"output"`
	Bake     BakeConfig   `toml:"bake"`
	Render   RenderConfig `toml:"render"`
	Batch    BatchConfig  `toml:"batch"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Input: InputConfig{
			Path: "meshes",
		},
		Output: OutputConfig{
			Path: "dataset",
		},
		Bake: BakeConfig{
			Resolution:          512,
			WireframeResolution: 4096,
			WireframeThickness:  0.01,
			AOSamples:           128,
			ThicknessDistance:   1.0,
			ThicknessSamples:    32,
			CurvatureSize:       0.02,
		},
		Render: RenderConfig{
			Resolution:      512,
			CameraCount:     8,
			FocalLength:     50.0,
			CoveragePadding: 1.1,
			MinDistanceMult: 1.5,
		},
		Batch: BatchConfig{
			Size:        25,
			AutoCleanup: true,
			Checkpoint:  true,
		},
	}
}

/**
 * @brief Loads the configuration file at path over the defaults. A missing
 * file is not an error; the defaults are returned as-is.
 */
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("input.path must be set")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path must be set")
	}
	if c.Render.CameraCount < 1 {
		return fmt.Errorf("render.camera_count must be >= 1, got %d", c.Render.CameraCount)
	}
	if c.Render.CoveragePadding < 1.0 {
		return fmt.Errorf("render.coverage_padding must be >= 1.0, got %v", c.Render.CoveragePadding)
	}
	if c.Render.FocalLength <= 0 {
		return fmt.Errorf("render.focal_length must be positive, got %v", c.Render.FocalLength)
	}
	if c.Bake.Resolution <= 0 || c.Bake.WireframeResolution <= 0 || c.Render.Resolution <= 0 {
		return fmt.Errorf("resolutions must be positive")
	}
	if _, err := c.modes(); err != nil {
		return err
	}
	return nil
}

func (c *Config) modes() ([]scene.BakeMode, error) {
	if len(c.Bake.Modes) == 0 {
		return scene.AllBakeModes(), nil
	}
	modes := make([]scene.BakeMode, 0, len(c.Bake.Modes))
	for _, name := range c.Bake.Modes {
		mode, err := scene.ParseBakeMode(name)
		if err != nil {
			return nil, fmt.Errorf("bake.modes: %w", err)
		}
		modes = append(modes, mode)
	}
	return modes, nil
}

// PipelineSettings translates the configuration into the batch processor's
// settings. Call Validate first; mode parse failures panic here.
func (c *Config) PipelineSettings() pipeline.Settings {
	modes, err := c.modes()
	if err != nil {
		panic(err)
	}
	return pipeline.Settings{
		OutputPath:          c.Output.Path,
		BakeResolution:      c.Bake.Resolution,
		WireframeResolution: c.Bake.WireframeResolution,
		WireframeThickness:  c.Bake.WireframeThickness,
		AOSamples:           c.Bake.AOSamples,
		ThicknessDistance:   c.Bake.ThicknessDistance,
		ThicknessSamples:    c.Bake.ThicknessSamples,
		CurvatureSize:       c.Bake.CurvatureSize,
		Modes:               modes,
		RenderResolution:    c.Render.Resolution,
		CameraCount:         c.Render.CameraCount,
		FocalLength:         c.Render.FocalLength,
		CoveragePadding:     c.Render.CoveragePadding,
		MinDistanceMult:     c.Render.MinDistanceMult,
		BatchSize:           c.Batch.Size,
		AutoCleanup:         c.Batch.AutoCleanup,
		Checkpoint:          c.Batch.Checkpoint,
	}
}

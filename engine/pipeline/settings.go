package pipeline

import (
	"fmt"

	"github.com/ovenlight/turnbake/engine/host"
	"github.com/ovenlight/turnbake/engine/scene"
)

/**
 * @brief Settings is everything the batch processor needs to know about
 * one export run. Values are validated by the configuration layer before
 * they get here.
 */
type Settings struct {
	OutputPath string

	// Baking
	BakeResolution      int
	WireframeResolution int
	WireframeThickness  float32
	AOSamples           int
	ThicknessDistance   float32
	ThicknessSamples    int
	CurvatureSize       float32
	Modes               []scene.BakeMode

	// Turnaround rendering
	RenderResolution int
	CameraCount      int
	FocalLength      float32
	CoveragePadding  float32
	MinDistanceMult  float32

	// Batching
	BatchSize   int
	AutoCleanup bool
	Checkpoint  bool
}

// requestFor builds the bake request for one mode. Wireframe maps use
// their own, typically much higher, resolution.
func (s Settings) requestFor(mode scene.BakeMode) host.BakeRequest {
	req := host.BakeRequest{
		Mode:               mode,
		Resolution:         s.BakeResolution,
		WireframeThickness: s.WireframeThickness,
		ThicknessDistance:  s.ThicknessDistance,
		CurvatureSize:      s.CurvatureSize,
	}
	switch mode {
	case scene.BakeModeWireframe:
		req.Resolution = s.WireframeResolution
	case scene.BakeModeAO:
		req.Samples = s.AOSamples
	case scene.BakeModeThickness:
		req.Samples = s.ThicknessSamples
	}
	return req
}

func (s Settings) validate() error {
	if len(s.Modes) == 0 {
		return fmt.Errorf("no bake modes enabled")
	}
	if s.CameraCount < 1 {
		return fmt.Errorf("camera count must be >= 1, got %d", s.CameraCount)
	}
	if s.CoveragePadding < 1.0 {
		return fmt.Errorf("coverage padding must be >= 1.0, got %v", s.CoveragePadding)
	}
	if s.BakeResolution <= 0 || s.RenderResolution <= 0 || s.WireframeResolution <= 0 {
		return fmt.Errorf("resolutions must be positive")
	}
	if s.FocalLength <= 0 {
		return fmt.Errorf("focal length must be positive, got %v", s.FocalLength)
	}
	return nil
}

package host

import (
	"context"
	"image"

	"github.com/ovenlight/turnbake/engine/framing"
	"github.com/ovenlight/turnbake/engine/math"
	"github.com/ovenlight/turnbake/engine/scene"
)

// Fixed camera rig shared by every host: square 36mm sensor and a clip
// range wide enough for any solved turnaround distance.
const (
	SensorSize float32 = 36.0
	ClipStart  float32 = 0.01
	ClipEnd    float32 = 10000.0
)

/**
 * @brief Parameters for baking one data map. Per-mode knobs are ignored by
 * modes that do not use them.
 */
type BakeRequest struct {
	Mode       scene.BakeMode
	Resolution int
	/** @brief Sample count for AO and thickness bakes. */
	Samples int
	/** @brief Line thickness for wireframe bakes, in UV units. */
	WireframeThickness float32
	/** @brief Ray distance for thickness bakes, in world units. */
	ThicknessDistance float32
	/** @brief Kernel size for curvature bakes, in world units. */
	CurvatureSize float32
}

/**
 * @brief One view to rasterize: a mesh displayed unlit with a baked map
 * applied, seen from a solved turnaround frame against a black background.
 */
type RenderShot struct {
	Mesh   *scene.Mesh
	Map    *scene.BakedMap
	Frame  framing.CameraFrame
	Target math.Vec3
	/** @brief Focal length in mm; the sensor is always SensorSize. */
	FocalLength float32
	/** @brief Output resolution (square). */
	Resolution int
}

/**
 * @brief The view matrix for this shot: the camera at the frame position
 * aimed back at the target point, world Z up.
 */
func (s RenderShot) ViewMatrix() math.Mat4 {
	return math.NewMat4LookAt(s.Frame.Position, s.Target, math.NewVec3(0, 0, 1))
}

/**
 * @brief Host is the opaque render service everything computational is
 * delegated to. Baking and rasterization semantics belong to the host;
 * this package only fixes the contract.
 */
type Host interface {
	/** @brief Bakes one data map for the mesh. */
	Bake(ctx context.Context, mesh *scene.Mesh, req BakeRequest) (*scene.BakedMap, error)
	/** @brief Renders one turnaround view of the mesh with a baked map applied. */
	Render(ctx context.Context, shot RenderShot) (image.Image, error)
	/** @brief Drops unused host-side data blocks; returns how many were freed. */
	Cleanup(ctx context.Context) (int, error)
	/** @brief Releases the host connection. */
	Close() error
}

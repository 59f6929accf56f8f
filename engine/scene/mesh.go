package scene

import (
	"github.com/ovenlight/turnbake/engine/core"
	"github.com/ovenlight/turnbake/engine/math"
)

/**
 * @brief Metadata for a mesh queued for export. Geometry itself stays with
 * the render host; only bounding and bookkeeping data live here.
 */
type Mesh struct {
	/** @brief The mesh name, as found in the source file. */
	Name string
	/** @brief Path of the source file the mesh was indexed from. */
	SourcePath string
	/** @brief Number of vertices. */
	VertexCount int
	/** @brief Number of faces. */
	FaceCount int
	/** @brief Whether the mesh carries at least one UV layer. The host
	 * creates one on demand, so a missing layer is not a blocker. */
	HasUV bool
	/** @brief The 8 local-space bounding-box corners. */
	BoundBox [8]math.Vec3
	/** @brief The world transform applied when the mesh is staged. */
	World math.Mat4
}

/**
 * @brief Validates that a mesh is suitable for export.
 */
func (m *Mesh) Validate() error {
	if m.VertexCount == 0 {
		return core.ErrMeshNoVertices
	}
	if m.FaceCount == 0 {
		return core.ErrMeshNoFaces
	}
	return nil
}

/**
 * @brief Expands min/max extents into the 8 bounding-box corners, ordered
 * the same way the extent projector walks them.
 */
func BoundBoxCorners(min, max math.Vec3) [8]math.Vec3 {
	var corners [8]math.Vec3
	i := 0
	for _, x := range [2]float32{min.X, max.X} {
		for _, y := range [2]float32{min.Y, max.Y} {
			for _, z := range [2]float32{min.Z, max.Z} {
				corners[i] = math.NewVec3(x, y, z)
				i++
			}
		}
	}
	return corners
}

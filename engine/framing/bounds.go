package framing

import (
	"github.com/ovenlight/turnbake/engine/math"
)

/**
 * @brief Derived, read-only bounding information for a mesh under a given
 * world transform. Value data only; recompute after any mesh edit.
 */
type BoundingInfo struct {
	/** @brief Arithmetic mean of the 8 world-space bounding corners. */
	Center math.Vec3
	/** @brief Extent (max-min per axis) of the world-space corners. */
	Dimensions math.Vec3
	/** @brief Maximum distance from Center to any of the 8 corners. */
	Radius float32
}

/**
 * @brief Computes world-space bounding information from a mesh's 8
 * local-space bounding-box corners and its world transform.
 *
 * A degenerate (zero-volume) mesh is legal and yields Radius == 0.
 *
 * @param corners The 8 local-space bounding-box corners.
 * @param world The 4x4 world transform.
 * @return The computed bounding info.
 */
func ComputeBounds(corners [8]math.Vec3, world math.Mat4) BoundingInfo {
	var ws [8]math.Vec3
	center := math.NewVec3Zero()
	for i := range corners {
		ws[i] = corners[i].Transform(world)
		center = center.Add(ws[i])
	}
	center = center.MulScalar(1.0 / 8.0)

	minV := ws[0]
	maxV := ws[0]
	for _, c := range ws[1:] {
		if c.X < minV.X {
			minV.X = c.X
		}
		if c.Y < minV.Y {
			minV.Y = c.Y
		}
		if c.Z < minV.Z {
			minV.Z = c.Z
		}
		if c.X > maxV.X {
			maxV.X = c.X
		}
		if c.Y > maxV.Y {
			maxV.Y = c.Y
		}
		if c.Z > maxV.Z {
			maxV.Z = c.Z
		}
	}

	radius := float32(0)
	for _, c := range ws {
		if d := center.Distance(c); d > radius {
			radius = d
		}
	}

	return BoundingInfo{
		Center:     center,
		Dimensions: maxV.Sub(minV),
		Radius:     radius,
	}
}

/**
 * @brief Returns the world-space extents spanned by the bounding info,
 * reconstructed from the center and dimensions.
 */
func (b BoundingInfo) Extents() math.Extents3D {
	half := b.Dimensions.MulScalar(0.5)
	return math.Extents3D{
		Min: b.Center.Sub(half),
		Max: b.Center.Add(half),
	}
}

package framing

import (
	"github.com/ovenlight/turnbake/engine/math"
)

/**
 * @brief Calculates the maximum extent (effective radius) of the bounding
 * box when viewed from a specific angle.
 *
 * The box is treated as an axis-aligned box of the stored dimensions
 * centered at Center, regardless of actual mesh orientation. This is an
 * approximation of the silhouette, not an exact reprojection, and is
 * intentionally kept that way.
 *
 * @param b The bounding info to project.
 * @param azimuthDeg Azimuth in degrees, measured from +X in the XY plane.
 * @param elevationDeg Elevation in degrees from horizontal.
 * @return The maximal projected half-extent in world units.
 */
func MaxExtentFromAngle(b BoundingInfo, azimuthDeg, elevationDeg float32) float32 {
	az := math.DegToRad(azimuthDeg)
	el := math.DegToRad(elevationDeg)

	// View direction from camera toward the target.
	viewDir := math.NewVec3(
		-math.Cos(el)*math.Cos(az),
		-math.Cos(el)*math.Sin(az),
		-math.Sin(el),
	).Normalized()

	// Nearly vertical views need a different up reference to keep the
	// cross product well defined.
	worldUp := math.NewVec3(0, 0, 1)
	if math.Abs(viewDir.Z) > 0.99 {
		worldUp = math.NewVec3(0, 1, 0)
	}

	right := viewDir.Cross(worldUp).Normalized()
	up := right.Cross(viewDir).Normalized()

	halfX := b.Dimensions.X * 0.5
	halfY := b.Dimensions.Y * 0.5
	halfZ := b.Dimensions.Z * 0.5

	maxExtent := float32(0)
	for _, dx := range [2]float32{-1, 1} {
		for _, dy := range [2]float32{-1, 1} {
			for _, dz := range [2]float32{-1, 1} {
				offset := math.NewVec3(dx*halfX, dy*halfY, dz*halfZ)

				// Project onto the camera's right and up axes; these are
				// the 2D screen-space coordinates of the corner.
				xProj := math.Abs(offset.Dot(right))
				yProj := math.Abs(offset.Dot(up))

				extent := xProj
				if yProj > extent {
					extent = yProj
				}
				if extent > maxExtent {
					maxExtent = extent
				}
			}
		}
	}

	return maxExtent
}

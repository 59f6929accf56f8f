package framing

import (
	"github.com/ovenlight/turnbake/engine/math"
)

/**
 * @brief A single computed view in a turnaround sequence. All frames of
 * one turnaround share the same solved distance.
 */
type CameraFrame struct {
	/** @brief Azimuth in degrees. */
	Azimuth float32
	/** @brief Elevation in degrees. */
	Elevation float32
	/** @brief The shared solved camera distance in world units. */
	Distance float32
	/** @brief The camera position on the turnaround sphere. */
	Position math.Vec3
}

/**
 * @brief Returns the vertical field of view in radians for the given
 * optics. Sensor size and focal length are both in millimeters.
 */
func FieldOfView(sensorSize, focalLen float32) float32 {
	return 2.0 * math.Atan((sensorSize*0.5)/focalLen)
}

/**
 * @brief Calculates the optimal distance that works for all camera angles
 * in the turnaround. Returns the distance that ensures no clipping in any
 * view while maximizing mesh size: the bottleneck view dominates.
 *
 * @param b The bounding info of the subject.
 * @param azimuths The azimuth angles of the turnaround, in degrees.
 * @param focalLen Camera focal length in mm.
 * @param sensorSize The smaller of sensor width/height in mm.
 * @param padding Coverage padding multiplier, >= 1.0.
 * @param minDistMult Minimum distance as a multiple of the bounding radius.
 * @return The shared camera distance in world units.
 */
func OptimalTurnaroundDistance(b BoundingInfo, azimuths []float32, focalLen, sensorSize, padding, minDistMult float32) float32 {
	// All turnaround cameras share the same elevation.
	const elevation = float32(0)

	maxRequired := float32(0)
	fov := FieldOfView(sensorSize, focalLen)

	for _, azim := range azimuths {
		extent := MaxExtentFromAngle(b, azim, elevation)

		dist := extent / math.Sin(fov*0.5)
		dist *= padding

		if dist > maxRequired {
			maxRequired = dist
		}
	}

	// TODO: a zero bounding radius floors the distance at zero, which parks
	// the camera on the target point for a point-like mesh.
	minDist := minDistMult * b.Radius
	if minDist > maxRequired {
		return minDist
	}
	return maxRequired
}

/**
 * @brief Calculates a camera position on the turnaround sphere.
 *
 * X and Y always rotate about the world origin; only the Z height follows
 * the mesh. Meshes placed around the origin therefore share a consistent
 * turnaround rig.
 *
 * @param centerZ The Z coordinate of the subject's bounding center.
 * @param distance The solved camera distance.
 * @param azimuthDeg Azimuth in degrees.
 * @param elevationDeg Elevation in degrees.
 * @return The camera position in world units.
 */
func CameraPosition(centerZ, distance, azimuthDeg, elevationDeg float32) math.Vec3 {
	az := math.DegToRad(azimuthDeg)
	el := math.DegToRad(elevationDeg)

	return math.NewVec3(
		distance*math.Cos(el)*math.Cos(az),
		distance*math.Cos(el)*math.Sin(az),
		centerZ+distance*math.Sin(el),
	)
}

/**
 * @brief Returns count azimuth angles evenly spaced over the full circle,
 * starting at 0 degrees.
 */
func TurnaroundAzimuths(count int) []float32 {
	azimuths := make([]float32, count)
	for i := range azimuths {
		azimuths[i] = float32(i) * (360.0 / float32(count))
	}
	return azimuths
}

/**
 * @brief Builds the full turnaround frame list for the given bounds and
 * optics. Every frame carries the single solved distance; the caller aims
 * each camera back at (0, 0, Center.Z).
 */
func TurnaroundFrames(b BoundingInfo, count int, focalLen, sensorSize, padding, minDistMult float32) []CameraFrame {
	azimuths := TurnaroundAzimuths(count)
	distance := OptimalTurnaroundDistance(b, azimuths, focalLen, sensorSize, padding, minDistMult)

	frames := make([]CameraFrame, count)
	for i, azim := range azimuths {
		frames[i] = CameraFrame{
			Azimuth:   azim,
			Elevation: 0,
			Distance:  distance,
			Position:  CameraPosition(b.Center.Z, distance, azim, 0),
		}
	}
	return frames
}

/**
 * @brief Returns the point the turnaround cameras aim at: the world XY
 * origin at the subject's center height.
 */
func TargetPoint(b BoundingInfo) math.Vec3 {
	return math.NewVec3(0, 0, b.Center.Z)
}

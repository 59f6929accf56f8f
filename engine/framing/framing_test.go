package framing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenlight/turnbake/engine/math"
)

// boxCorners returns the 8 local-space corners of an axis-aligned box
// centered at the origin with the given half extents.
func boxCorners(hx, hy, hz float32) [8]math.Vec3 {
	var corners [8]math.Vec3
	i := 0
	for _, dx := range [2]float32{-1, 1} {
		for _, dy := range [2]float32{-1, 1} {
			for _, dz := range [2]float32{-1, 1} {
				corners[i] = math.NewVec3(dx*hx, dy*hy, dz*hz)
				i++
			}
		}
	}
	return corners
}

func TestComputeBounds(t *testing.T) {
	corners := boxCorners(1, 2, 3)
	world := math.NewMat4Translation(math.NewVec3(5, -4, 10))

	b := ComputeBounds(corners, world)

	assert.True(t, b.Center.Compare(math.NewVec3(5, -4, 10), 1e-5))
	assert.True(t, b.Dimensions.Compare(math.NewVec3(2, 4, 6), 1e-5))
	assert.InDelta(t, math.NewVec3(1, 2, 3).Length(), b.Radius, 1e-4)
}

func TestComputeBoundsScaled(t *testing.T) {
	corners := boxCorners(1, 1, 1)
	world := math.NewMat4Scale(math.NewVec3(2, 2, 2))

	b := ComputeBounds(corners, world)

	assert.True(t, b.Dimensions.Compare(math.NewVec3(4, 4, 4), 1e-5))
	assert.InDelta(t, math.NewVec3(2, 2, 2).Length(), b.Radius, 1e-4)

	ext := b.Extents()
	assert.True(t, ext.Min.Compare(math.NewVec3(-2, -2, -2), 1e-5))
	assert.True(t, ext.Max.Compare(math.NewVec3(2, 2, 2), 1e-5))
}

func TestComputeBoundsDegenerate(t *testing.T) {
	// A zero-volume mesh is legal and must produce a zero radius.
	var corners [8]math.Vec3
	for i := range corners {
		corners[i] = math.NewVec3(3, 3, 3)
	}

	b := ComputeBounds(corners, math.NewMat4Identity())

	assert.True(t, b.Center.Compare(math.NewVec3(3, 3, 3), 1e-5))
	assert.Equal(t, float32(0), b.Radius)
}

func TestMaxExtentCubeSymmetry(t *testing.T) {
	b := ComputeBounds(boxCorners(1, 1, 1), math.NewMat4Identity())

	base := MaxExtentFromAngle(b, 0, 0)
	require.Greater(t, base, float32(0))

	for _, azim := range []float32{90, 180, 270} {
		extent := MaxExtentFromAngle(b, azim, 0)
		assert.InDelta(t, base, extent, 1e-4, "azimuth %v", azim)
	}
}

func TestMaxExtentVerticalView(t *testing.T) {
	b := ComputeBounds(boxCorners(1, 2, 3), math.NewMat4Identity())

	// Looking straight down switches the world-up reference; the result
	// must stay finite and positive.
	extent := MaxExtentFromAngle(b, 0, 90)
	assert.Greater(t, extent, float32(0))
	assert.Less(t, extent, math.K_INFINITY)
}

func TestOptimalDistancePaddingMonotonic(t *testing.T) {
	b := ComputeBounds(boxCorners(1, 2, 0.5), math.NewMat4Identity())
	azimuths := TurnaroundAzimuths(8)

	prev := float32(0)
	for _, padding := range []float32{1.0, 1.1, 1.5, 2.0} {
		dist := OptimalTurnaroundDistance(b, azimuths, 50, 36, padding, 0)
		assert.Greater(t, dist, prev)
		prev = dist
	}
}

func TestOptimalDistanceFloor(t *testing.T) {
	b := ComputeBounds(boxCorners(1, 1, 1), math.NewMat4Identity())
	azimuths := TurnaroundAzimuths(8)

	// A huge multiplier forces the floor to dominate.
	minDistMult := float32(100)
	dist := OptimalTurnaroundDistance(b, azimuths, 50, 36, 1.1, minDistMult)
	assert.InDelta(t, minDistMult*b.Radius, dist, 1e-2)

	// The floor holds for ordinary multipliers too.
	for _, mult := range []float32{0, 0.5, 1.5, 3} {
		dist := OptimalTurnaroundDistance(b, azimuths, 50, 36, 1.1, mult)
		assert.GreaterOrEqual(t, dist, mult*b.Radius)
	}
}

func TestOptimalDistanceDegenerateBounds(t *testing.T) {
	var corners [8]math.Vec3
	b := ComputeBounds(corners, math.NewMat4Identity())
	require.Equal(t, float32(0), b.Radius)

	dist := OptimalTurnaroundDistance(b, TurnaroundAzimuths(8), 50, 36, 1.1, 1.5)
	assert.False(t, dist < 0)
	assert.False(t, dist != dist, "distance must not be NaN")
	assert.Equal(t, float32(0), dist)
}

func TestOptimalDistanceIsMaxOverAzimuths(t *testing.T) {
	b := ComputeBounds(boxCorners(3, 1, 0.5), math.NewMat4Identity())
	azimuths := TurnaroundAzimuths(8)

	focal := float32(50)
	sensor := float32(36)
	padding := float32(1.1)

	fov := FieldOfView(sensor, focal)
	maxRequired := float32(0)
	for _, azim := range azimuths {
		required := MaxExtentFromAngle(b, azim, 0) / math.Sin(fov*0.5) * padding
		if required > maxRequired {
			maxRequired = required
		}
	}

	dist := OptimalTurnaroundDistance(b, azimuths, focal, sensor, padding, 0)
	assert.InDelta(t, maxRequired, dist, 1e-3)
	for _, azim := range azimuths {
		required := MaxExtentFromAngle(b, azim, 0) / math.Sin(fov*0.5) * padding
		assert.GreaterOrEqual(t, dist+1e-3, required)
	}
}

func TestCameraPosition(t *testing.T) {
	d := float32(7)
	h := float32(2.5)

	pos := CameraPosition(h, d, 0, 0)
	assert.True(t, pos.Compare(math.NewVec3(d, 0, h), 1e-4))

	pos = CameraPosition(h, d, 90, 0)
	assert.True(t, pos.Compare(math.NewVec3(0, d, h), 1e-4))

	pos = CameraPosition(h, d, 0, 90)
	assert.True(t, pos.Compare(math.NewVec3(0, 0, h+d), 1e-4))
}

func TestTurnaroundFrames(t *testing.T) {
	b := ComputeBounds(boxCorners(1, 2, 1), math.NewMat4Translation(math.NewVec3(0, 0, 4)))

	frames := TurnaroundFrames(b, 8, 50, 36, 1.1, 1.5)
	require.Len(t, frames, 8)

	target := TargetPoint(b)
	assert.True(t, target.Compare(math.NewVec3(0, 0, b.Center.Z), 1e-5))

	shared := frames[0].Distance
	for i, frame := range frames {
		assert.Equal(t, shared, frame.Distance, "frame %d", i)
		assert.Equal(t, float32(i)*45.0, frame.Azimuth)
		assert.Equal(t, float32(0), frame.Elevation)

		// Every camera sits at the solved distance from the target point.
		assert.InDelta(t, shared, frame.Position.Distance(target), 1e-2)
	}
}

package core

import (
	"sync"
	"time"
)

const AVG_COUNT uint8 = 30

type MetricsState struct {
	MeshAVGCounter uint8
	MeshTimesMS    [AVG_COUNT]float64
	MSavg          float64
	Completed      int32
	Failed         int32
	AccumulatedMS  float64
}

var onceMetrics sync.Once
var metricsState *MetricsState = nil

func MetricsInitialize() error {
	onceMetrics.Do(func() {
		metricsState = &MetricsState{
			MeshTimesMS: [AVG_COUNT]float64{0},
		}
	})
	// Reset between runs; the once guard only protects allocation.
	*metricsState = MetricsState{}
	return nil
}

// MetricsUpdate records one completed mesh and refreshes the rolling
// average over the last AVG_COUNT meshes.
func MetricsUpdate(meshElapsed time.Duration) {
	ms := meshElapsed.Seconds() * 1000.0
	metricsState.MeshTimesMS[metricsState.MeshAVGCounter] = ms
	if metricsState.MeshAVGCounter == AVG_COUNT-1 {
		metricsState.MSavg = 0
		for i := uint8(0); i < AVG_COUNT; i++ {
			metricsState.MSavg += metricsState.MeshTimesMS[i]
		}
		metricsState.MSavg /= float64(AVG_COUNT)
	}
	metricsState.MeshAVGCounter++
	metricsState.MeshAVGCounter %= AVG_COUNT

	metricsState.AccumulatedMS += ms
	metricsState.Completed++
}

func MetricsFailure() {
	metricsState.Failed++
}

func MetricsCompleted() int32 {
	return metricsState.Completed
}

func MetricsFailed() int32 {
	return metricsState.Failed
}

// MetricsMeshTimeMS returns the average processing time per mesh in
// milliseconds. Falls back to the lifetime average until a full rolling
// window has been collected.
func MetricsMeshTimeMS() float64 {
	if metricsState.MSavg > 0 {
		return metricsState.MSavg
	}
	if metricsState.Completed == 0 {
		return 0
	}
	return metricsState.AccumulatedMS / float64(metricsState.Completed)
}

// MetricsProjected estimates the wall time needed to process meshCount
// meshes at the current average rate.
func MetricsProjected(meshCount int) time.Duration {
	avg := MetricsMeshTimeMS()
	return time.Duration(avg*float64(meshCount)) * time.Millisecond
}

package pipeline

import (
	"time"

	"github.com/ovenlight/turnbake/engine/core"
)

/**
 * @brief Timings and counts collected while processing one mesh.
 */
type MeshStats struct {
	MeshName   string
	MeshID     string
	BakeCount  int
	ViewCount  int
	BakeTime   time.Duration
	SaveTime   time.Duration
	RenderTime time.Duration
	TotalTime  time.Duration
}

/**
 * @brief Aggregated statistics for a whole run.
 */
type RunStats struct {
	Processed  int
	Failed     int
	Skipped    int
	TotalViews int
	TotalBakes int
	BakeTime   time.Duration
	RenderTime time.Duration
	TotalTime  time.Duration
}

func (r *RunStats) add(m *MeshStats) {
	r.Processed++
	r.TotalViews += m.ViewCount
	r.TotalBakes += m.BakeCount
	r.BakeTime += m.BakeTime
	r.RenderTime += m.RenderTime
}

// LogSummary prints the end-of-run report, including projections for large
// datasets when the sample is small enough to be worth extrapolating.
func (r *RunStats) LogSummary() {
	core.LogInfo("dataset export complete")
	core.LogInfo("  meshes processed: %d (failed: %d, skipped: %d)", r.Processed, r.Failed, r.Skipped)
	core.LogInfo("  total time: %s", r.TotalTime.Round(time.Millisecond))
	if r.Processed == 0 {
		return
	}

	core.LogInfo("  avg per mesh: %s", (r.TotalTime / time.Duration(r.Processed)).Round(time.Millisecond))
	core.LogInfo("  baking: %s, rendering: %s", r.BakeTime.Round(time.Millisecond), r.RenderTime.Round(time.Millisecond))
	core.LogInfo("  views rendered: %d, maps baked: %d", r.TotalViews, r.TotalBakes)

	if r.Processed < 1000 {
		core.LogInfo("  projected: 1k meshes in %s, 1M meshes in %s",
			core.MetricsProjected(1000).Round(time.Minute),
			core.MetricsProjected(1000000).Round(time.Hour))
	}
}

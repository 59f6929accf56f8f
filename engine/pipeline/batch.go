package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/ovenlight/turnbake/engine/core"
	"github.com/ovenlight/turnbake/engine/scene"
)

/**
 * @brief Runs the batch export over a set of meshes. Per-mesh failures are
 * logged and skipped so one bad asset never kills a long dataset run; only
 * context cancellation or a broken output directory stops the batch.
 */
func (p *Processor) Run(ctx context.Context, meshes []*scene.Mesh) (*RunStats, error) {
	if len(meshes) == 0 {
		return nil, core.ErrNothingToProcess
	}

	if err := core.MetricsInitialize(); err != nil {
		return nil, err
	}

	var checkpoint *Checkpoint
	if p.settings.Checkpoint {
		cp, err := LoadCheckpoint(p.dirs.Base)
		if err != nil {
			return nil, err
		}
		checkpoint = cp
	}

	runClock := core.Clock{}
	runClock.Start()
	stats := &RunStats{}

	core.LogInfo("starting export of %d meshes (%d modes, %d views each)",
		len(meshes), len(p.settings.Modes), p.settings.CameraCount)
	core.EventFire(core.EVENT_CODE_RUN_STARTED, p, core.EventContext{Total: len(meshes)})

	batchSize := p.settings.BatchSize
	if batchSize <= 0 {
		batchSize = len(meshes)
	}

	inBatch := 0
	for i, mesh := range meshes {
		if err := ctx.Err(); err != nil {
			core.LogWarn("export interrupted after %d meshes", stats.Processed)
			runClock.Update()
			stats.TotalTime = runClock.Elapsed()
			core.EventFire(core.EVENT_CODE_RUN_COMPLETED, p, core.EventContext{Total: len(meshes)})
			return stats, errors.Join(core.ErrShutdownInProgress, err)
		}

		if checkpoint != nil && checkpoint.IsDone(mesh.SourcePath) {
			core.LogDebug("mesh %s already exported, skipping", mesh.Name)
			stats.Skipped++
			continue
		}

		core.EventFire(core.EVENT_CODE_MESH_STARTED, p, core.EventContext{
			MeshName: mesh.Name,
			Index:    i,
			Total:    len(meshes),
		})

		meshClock := core.Clock{}
		meshClock.Start()
		meshStats, err := p.ProcessMesh(ctx, mesh)
		meshClock.Update()

		if err != nil {
			if ctx.Err() != nil {
				// Cancellation surfaces as a mesh error; let the next
				// iteration handle the shutdown path.
				continue
			}
			core.MetricsFailure()
			stats.Failed++
			core.LogError("mesh %s failed: %s", mesh.Name, err)
			core.EventFire(core.EVENT_CODE_MESH_FAILED, p, core.EventContext{
				MeshName: mesh.Name,
				Index:    i,
				Total:    len(meshes),
				Err:      err,
			})
			continue
		}

		core.MetricsUpdate(meshClock.Elapsed())
		stats.add(meshStats)

		if checkpoint != nil {
			if err := checkpoint.MarkDone(mesh.SourcePath); err != nil {
				return stats, err
			}
		}

		core.EventFire(core.EVENT_CODE_MESH_COMPLETED, p, core.EventContext{
			MeshName: mesh.Name,
			MeshID:   meshStats.MeshID,
			Index:    i,
			Total:    len(meshes),
			Views:    meshStats.ViewCount,
			Bakes:    meshStats.BakeCount,
		})

		inBatch++
		if inBatch >= batchSize && i < len(meshes)-1 {
			p.batchBoundary(ctx, i+1, len(meshes))
			inBatch = 0
		}
	}

	if p.settings.AutoCleanup {
		if freed, err := p.host.Cleanup(ctx); err != nil {
			core.LogWarn("final cleanup failed: %s", err)
		} else if freed > 0 {
			core.LogDebug("final cleanup freed %d data blocks", freed)
		}
	}

	runClock.Update()
	stats.TotalTime = runClock.Elapsed()
	core.EventFire(core.EVENT_CODE_RUN_COMPLETED, p, core.EventContext{Total: len(meshes)})
	return stats, nil
}

// batchBoundary runs between batches: frees host-side data blocks that
// accumulate during baking so memory stays flat over arbitrarily long runs.
func (p *Processor) batchBoundary(ctx context.Context, processed, total int) {
	if p.settings.AutoCleanup {
		freed, err := p.host.Cleanup(ctx)
		if err != nil {
			core.LogWarn("batch cleanup failed: %s", err)
		} else {
			core.LogDebug("batch cleanup freed %d data blocks", freed)
		}
	}

	avg := time.Duration(core.MetricsMeshTimeMS()) * time.Millisecond
	core.LogInfo("batch done: %d/%d meshes, avg %s per mesh, ~%s remaining",
		processed, total, avg.Round(time.Millisecond),
		core.MetricsProjected(total-processed).Round(time.Second))

	core.EventFire(core.EVENT_CODE_BATCH_COMPLETED, p, core.EventContext{
		Index: processed,
		Total: total,
	})
}

package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/ovenlight/turnbake/engine/assets"
	"github.com/ovenlight/turnbake/engine/core"
	"github.com/ovenlight/turnbake/engine/host"
	"github.com/ovenlight/turnbake/engine/pipeline"
	"github.com/ovenlight/turnbake/engine/scene"
)

type Stage uint8

const (
	// Exporter is in an uninitialized state
	ExporterStageUninitialized Stage = iota
	// Exporter is currently booting up
	ExporterStageBooting
	// Exporter completed boot process and is ready to run
	ExporterStageInitialized
	// Exporter is currently running
	ExporterStageRunning
	// Exporter is in the process of shutting down
	ExporterStageShuttingDown
)

/**
 * @brief Exporter owns the lifetime of one dataset export: the mesh
 * library, the render host connection and the batch processor.
 */
type Exporter struct {
	currentStage Stage
	config       *Config
	renderHost   host.Host
	library      *assets.Library
	processor    *pipeline.Processor
	clock        *core.Clock
	// Teardown scope: everything that must be undone on shutdown is
	// registered here and unwound LIFO.
	scope *host.Scope
}

func New(cfg *Config, h host.Host) (*Exporter, error) {
	if err := cfg.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	lib, err := assets.NewLibrary()
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	return &Exporter{
		currentStage: ExporterStageUninitialized,
		config:       cfg,
		renderHost:   h,
		library:      lib,
		clock:        core.NewClock(),
		scope:        host.NewScope(),
	}, nil
}

func (e *Exporter) Initialize() error {
	e.currentStage = ExporterStageBooting

	core.LogLevelSet(e.config.LogLevel)

	e.scope.OnExit(e.renderHost.Close)

	// initialize events
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}
	e.scope.OnExit(core.EventSystemShutdown)

	// register progress reporting
	core.EventRegister(core.EVENT_CODE_MESH_STARTED, e, e.onMeshStarted)
	core.EventRegister(core.EVENT_CODE_MESH_COMPLETED, e, e.onMeshCompleted)
	core.EventRegister(core.EVENT_CODE_MESH_FAILED, e, e.onMeshFailed)

	if err := e.library.Initialize(e.config.Input.Path); err != nil {
		return err
	}
	e.scope.OnExit(e.library.Close)

	proc, err := pipeline.NewProcessor(e.config.PipelineSettings(), e.renderHost)
	if err != nil {
		return err
	}
	e.processor = proc

	e.currentStage = ExporterStageInitialized
	return nil
}

/**
 * @brief Runs the export over every indexed mesh. With input.watch enabled
 * it keeps draining newly discovered meshes until the context is cancelled.
 */
func (e *Exporter) Run(ctx context.Context) error {
	if e.currentStage != ExporterStageInitialized {
		return core.ErrExporterNotBooted
	}
	e.currentStage = ExporterStageRunning

	e.clock.Start()

	meshes, err := e.loadMeshes(e.library.Meshes())
	if err != nil {
		return err
	}

	stats, err := e.processor.Run(ctx, meshes)
	if stats != nil {
		stats.LogSummary()
	}
	if err != nil {
		return err
	}

	if e.config.Input.Watch {
		if err := e.watchLoop(ctx); err != nil {
			return err
		}
	}

	e.clock.Update()
	core.LogInfo("exporter finished in %s", e.clock.Elapsed().Round(time.Millisecond))
	return nil
}

// loadMeshes parses the indexed files, skipping the ones that fail so a
// single unreadable file never blocks the dataset.
func (e *Exporter) loadMeshes(paths []string) ([]*scene.Mesh, error) {
	meshes := make([]*scene.Mesh, 0, len(paths))
	for _, path := range paths {
		mesh, err := e.library.Load(path)
		if err != nil {
			core.LogWarn("failed to load %s: %s", path, err)
			continue
		}
		meshes = append(meshes, mesh)
	}
	if len(meshes) == 0 {
		return nil, core.ErrNothingToProcess
	}
	return meshes, nil
}

// watchLoop exports meshes as the library discovers them, one batch per
// poll tick, until the context ends.
func (e *Exporter) watchLoop(ctx context.Context) error {
	core.LogInfo("watching %s for new meshes", e.config.Input.Path)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			var batch []*scene.Mesh
			for {
				path, ok := e.library.NextPending()
				if !ok {
					break
				}
				mesh, err := e.library.Load(path)
				if err != nil {
					core.LogWarn("failed to load %s: %s", path, err)
					continue
				}
				batch = append(batch, mesh)
			}
			if len(batch) == 0 {
				continue
			}
			stats, err := e.processor.Run(ctx, batch)
			if stats != nil {
				stats.LogSummary()
			}
			if err != nil && ctx.Err() == nil {
				return err
			}
		}
	}
}

func (e *Exporter) Shutdown() error {
	e.currentStage = ExporterStageShuttingDown
	return e.scope.Close()
}

func (e *Exporter) onMeshStarted(code core.SystemEventCode, sender interface{}, data core.EventContext) bool {
	core.LogInfo("[%d/%d] exporting %s", data.Index+1, data.Total, data.MeshName)
	return false
}

func (e *Exporter) onMeshCompleted(code core.SystemEventCode, sender interface{}, data core.EventContext) bool {
	core.LogInfo("[%d/%d] %s done: %d maps, %d views (id %s)",
		data.Index+1, data.Total, data.MeshName, data.Bakes, data.Views, data.MeshID)
	return false
}

func (e *Exporter) onMeshFailed(code core.SystemEventCode, sender interface{}, data core.EventContext) bool {
	core.LogError("[%d/%d] %s failed: %s", data.Index+1, data.Total, data.MeshName, data.Err)
	return false
}

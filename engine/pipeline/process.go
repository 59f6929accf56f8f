package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ovenlight/turnbake/engine/core"
	"github.com/ovenlight/turnbake/engine/framing"
	"github.com/ovenlight/turnbake/engine/host"
	"github.com/ovenlight/turnbake/engine/scene"
)

/**
 * @brief Processor runs the full export of single meshes: bake every
 * enabled data map, back the maps up, solve the turnaround camera and
 * render every view with every map applied.
 */
type Processor struct {
	settings Settings
	host     host.Host
	dirs     *OutputDirs
}

func NewProcessor(settings Settings, h host.Host) (*Processor, error) {
	if err := settings.validate(); err != nil {
		return nil, err
	}
	dirs, err := SetupOutputDirs(settings.OutputPath, settings.Modes)
	if err != nil {
		return nil, err
	}
	return &Processor{
		settings: settings,
		host:     h,
		dirs:     dirs,
	}, nil
}

// Dirs exposes the output layout, mainly so the batch runner can place the
// checkpoint next to the rendered views.
func (p *Processor) Dirs() *OutputDirs {
	return p.dirs
}

/**
 * @brief Exports one mesh. Any failure abandons the mesh; files already
 * written for it stay on disk but the mesh is not recorded as done.
 */
func (p *Processor) ProcessMesh(ctx context.Context, mesh *scene.Mesh) (*MeshStats, error) {
	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	total := core.Clock{}
	total.Start()

	stats := &MeshStats{
		MeshName: mesh.Name,
		MeshID:   core.NewMeshID(),
	}
	core.LogDebug("mesh %s: assigned id %s", mesh.Name, stats.MeshID)

	maps, err := p.bakeAll(ctx, mesh, stats)
	if err != nil {
		return nil, err
	}

	saveClock := core.Clock{}
	saveClock.Start()
	if err := SaveBakedTextures(p.dirs, mesh.Name, stats.MeshID, maps); err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrBakeFailed, err)
	}
	saveClock.Update()
	stats.SaveTime = saveClock.Elapsed()

	if err := p.renderAll(ctx, mesh, maps, stats); err != nil {
		return nil, err
	}

	total.Update()
	stats.TotalTime = total.Elapsed()
	return stats, nil
}

func (p *Processor) bakeAll(ctx context.Context, mesh *scene.Mesh, stats *MeshStats) ([]*scene.BakedMap, error) {
	clock := core.Clock{}
	clock.Start()

	maps := make([]*scene.BakedMap, 0, len(p.settings.Modes))
	for _, mode := range p.settings.Modes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		baked, err := p.host.Bake(ctx, mesh, p.settings.requestFor(mode))
		if err != nil {
			return nil, fmt.Errorf("%w: %s on %s: %s", core.ErrBakeFailed, mode, mesh.Name, err)
		}
		maps = append(maps, baked)
		stats.BakeCount++
	}

	clock.Update()
	stats.BakeTime = clock.Elapsed()
	core.LogDebug("mesh %s: baked %d maps in %s", mesh.Name, stats.BakeCount, stats.BakeTime.Round(time.Millisecond))
	return maps, nil
}

func (p *Processor) renderAll(ctx context.Context, mesh *scene.Mesh, maps []*scene.BakedMap, stats *MeshStats) error {
	clock := core.Clock{}
	clock.Start()

	bounds := framing.ComputeBounds(mesh.BoundBox, mesh.World)
	frames := framing.TurnaroundFrames(bounds,
		p.settings.CameraCount,
		p.settings.FocalLength,
		host.SensorSize,
		p.settings.CoveragePadding,
		p.settings.MinDistanceMult)
	target := framing.TargetPoint(bounds)

	for _, baked := range maps {
		dir, ok := p.dirs.Modes[baked.Mode]
		if !ok {
			return fmt.Errorf("%w: no output directory for mode %s", core.ErrRenderFailed, baked.Mode)
		}
		for i, frame := range frames {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := p.host.Render(ctx, host.RenderShot{
				Mesh:        mesh,
				Map:         baked,
				Frame:       frame,
				Target:      target,
				FocalLength: p.settings.FocalLength,
				Resolution:  p.settings.RenderResolution,
			})
			if err != nil {
				return fmt.Errorf("%w: %s view %d of %s: %s", core.ErrRenderFailed, baked.Mode, i, mesh.Name, err)
			}
			path := filepath.Join(dir, ViewFilename(mesh.Name, stats.MeshID, i))
			if err := WritePNG(path, img); err != nil {
				return fmt.Errorf("%w: %s", core.ErrRenderFailed, err)
			}
			stats.ViewCount++
		}
	}

	clock.Update()
	stats.RenderTime = clock.Elapsed()
	core.LogDebug("mesh %s: rendered %d views in %s", mesh.Name, stats.ViewCount, stats.RenderTime.Round(time.Millisecond))
	return nil
}

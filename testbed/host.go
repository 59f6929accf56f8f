package testbed

import (
	"context"
	"hash/fnv"
	"image"
	"image/color"
	"sync"

	"golang.org/x/exp/rand"
	"golang.org/x/image/draw"

	"github.com/ovenlight/turnbake/engine/core"
	"github.com/ovenlight/turnbake/engine/host"
	"github.com/ovenlight/turnbake/engine/scene"
)

/**
 * @brief SynthHost is a render host that fabricates deterministic maps and
 * views in-process. It exists to exercise the full export pipeline without
 * a real render service attached; the output is structurally identical to a
 * real run (same files, same naming, same dimensions).
 */
type SynthHost struct {
	mutex sync.Mutex
	// Fake host-side data blocks that accumulate per bake, like the
	// orphaned images a real host leaks until it is vacuumed.
	datablocks int
	isClosed   bool
}

func NewSynthHost() *SynthHost {
	return &SynthHost{}
}

func (h *SynthHost) Bake(ctx context.Context, mesh *scene.Mesh, req host.BakeRequest) (*scene.BakedMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h.mutex.Lock()
	if h.isClosed {
		h.mutex.Unlock()
		return nil, core.ErrHostUnavailable
	}
	h.datablocks++
	h.mutex.Unlock()

	baked := scene.NewBakedMap(req.Mode, mesh.Name, req.Resolution, req.Resolution)

	switch req.Mode {
	case scene.BakeModePosition:
		fillPositionGradient(baked.Pixels)
	case scene.BakeModeNormalObject:
		fillUniform(baked.Pixels, color.NRGBA{R: 128, G: 128, B: 255, A: 255})
	case scene.BakeModeWireframe:
		fillWireframeGrid(baked.Pixels, req.WireframeThickness)
	case scene.BakeModeThickness:
		fillRadial(baked.Pixels)
	case scene.BakeModeCurvature:
		fillUniform(baked.Pixels, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	default:
		// Base color, paint base and AO get per-mesh deterministic noise.
		fillNoise(baked.Pixels, meshSeed(mesh.Name, req.Mode))
	}

	return baked, nil
}

func (h *SynthHost) Render(ctx context.Context, shot host.RenderShot) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h.mutex.Lock()
	if h.isClosed {
		h.mutex.Unlock()
		return nil, core.ErrHostUnavailable
	}
	h.datablocks++
	h.mutex.Unlock()

	// Stand-in for rasterization: the baked map scaled to the output
	// resolution. The view matrix is still solved so framing bugs surface
	// in the logs even without a real host.
	_ = shot.ViewMatrix()

	out := image.NewNRGBA(image.Rect(0, 0, shot.Resolution, shot.Resolution))
	draw.ApproxBiLinear.Scale(out, out.Bounds(), shot.Map.Pixels, shot.Map.Pixels.Bounds(), draw.Src, nil)
	return out, nil
}

func (h *SynthHost) Cleanup(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.isClosed {
		return 0, core.ErrHostUnavailable
	}
	freed := h.datablocks
	h.datablocks = 0
	return freed, nil
}

func (h *SynthHost) Close() error {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.isClosed = true
	h.datablocks = 0
	return nil
}

// meshSeed derives a stable per-mesh, per-mode noise seed so re-exports of
// the same mesh produce identical maps.
func meshSeed(name string, mode scene.BakeMode) uint64 {
	hash := fnv.New64a()
	hash.Write([]byte(name))
	hash.Write([]byte(mode.String()))
	return hash.Sum64()
}

func fillUniform(img *image.NRGBA, c color.NRGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func fillPositionGradient(img *image.NRGBA) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: 128,
				A: 255,
			})
		}
	}
}

func fillWireframeGrid(img *image.NRGBA, thickness float32) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	cell := max(w/16, 1)
	lines := max(int(thickness*float32(w)), 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x%cell < lines || y%cell < lines {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
	}
}

func fillRadial(img *image.NRGBA) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	cx, cy := float32(w)/2, float32(h)/2
	maxDist := cx*cx + cy*cy
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float32(x)-cx, float32(y)-cy
			v := uint8(255 - (dx*dx+dy*dy)/maxDist*255)
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
}

func fillNoise(img *image.NRGBA, seed uint64) {
	rng := rand.New(rand.NewSource(seed))
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := uint8(rng.Intn(256))
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
}

// Package render ties compiler.Compile and shade.RenderPixel together
// into a framebuffer renderer: a bounded worker pool fans RenderPixel out
// over row bands, sized to runtime.NumCPU(). Grounded on
// nthery-goraytracer's per-stripe goroutine fan-out (Render(nstripes int))
// and df07-go-progressive-raytracer's bounds-parameterized RenderBounds,
// combined here into a worker-pool variant since page-composition scenes
// are typically much wider than tall, so row-stripe-per-goroutine wastes
// goroutines on a handful of very short bands near the bottom.
package render

import (
	"context"
	"errors"
	"image"
	"image/color"
	"runtime"
	"sync"

	"github.com/domscene/pagetrace/compiler"
	"github.com/domscene/pagetrace/config"
	"github.com/domscene/pagetrace/core"
	"github.com/domscene/pagetrace/enginelog"
	"github.com/domscene/pagetrace/gpu"
	"github.com/domscene/pagetrace/shade"
)

// ErrNoCPUCapacity is returned by NewRenderer if the host reports zero
// usable CPUs — a capability-missing condition per spec.md §7, though in
// practice runtime.NumCPU() never returns less than 1.
var ErrNoCPUCapacity = errors.New("render: no CPU capacity available")

// Renderer renders a core.Scene + core.Camera pair to an *image.RGBA.
type Renderer struct {
	cfg     config.Config
	log     enginelog.Logger
	workers int
	gpuOK   bool
}

// NewRenderer constructs a Renderer. It probes for a GPU device via
// gpu.TryAcquireDevice purely as a capability check (spec.md §7): failure
// is logged at Warn and the renderer falls back to the CPU path, which is
// the only path this package actually implements (see SPEC_FULL.md §6.6).
func NewRenderer(ctx context.Context, cfg config.Config, log enginelog.Logger) (*Renderer, error) {
	if log == nil {
		log = enginelog.Nop()
	}
	workers := runtime.NumCPU()
	if workers < 1 {
		return nil, ErrNoCPUCapacity
	}

	gpuOK := false
	if _, err := gpu.TryAcquireDevice(ctx); err != nil {
		log.Warnf("render: no GPU device available, using CPU path: %v", err)
	} else {
		gpuOK = true
		log.Infof("render: GPU device available (capability probe only; CPU path still used)")
	}

	return &Renderer{cfg: cfg, log: log, workers: workers, gpuOK: gpuOK}, nil
}

// GPUAvailable reports whether the last capability probe found a usable
// GPU adapter. Informational only — Render always uses the CPU path.
func (r *Renderer) GPUAvailable() bool { return r.gpuOK }

// Render compiles scene against camera and rasterizes it into an
// image.RGBA of the given pixel dimensions, row-parallel across a worker
// pool sized to runtime.NumCPU().
func (r *Renderer) Render(scene core.Scene, camera *core.Camera, width, height int) *image.RGBA {
	rs := compiler.Compile(scene, camera, r.cfg, r.log)
	basis := camera.ComputeBasis()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowsPerWorker := (height + r.workers - 1) / r.workers
	if rowsPerWorker < 1 {
		rowsPerWorker = 1
	}

	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += rowsPerWorker {
		y1 := y0 + rowsPerWorker
		if y1 > height {
			y1 = height
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			r.renderRows(img, &rs, camera, basis, width, height, y0, y1)
		}(y0, y1)
	}
	wg.Wait()

	return img
}

func (r *Renderer) renderRows(img *image.RGBA, rs *core.RenderScene, camera *core.Camera, basis core.Basis, width, height, y0, y1 int) {
	for y := y0; y < y1; y++ {
		v := (float32(y) + 0.5) / float32(height)
		for x := 0; x < width; x++ {
			u := (float32(x) + 0.5) / float32(width)
			c := shade.RenderPixel(rs, camera, basis, r.cfg, u, v)
			img.SetRGBA(x, y, color.RGBA{
				R: to8(c.X()),
				G: to8(c.Y()),
				B: to8(c.Z()),
				A: 255,
			})
		}
	}
}

func to8(x float32) uint8 {
	if x < 0 {
		x = 0
	}
	if x > 1 {
		x = 1
	}
	return uint8(x*255 + 0.5)
}

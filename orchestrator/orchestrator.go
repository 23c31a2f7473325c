// Package orchestrator implements spec.md §4.5/§6's render orchestrator:
// update_scene / update_viewport / force_render_all / dispose, a
// monotonic render_version for cancellation safety, and the tile-cache
// invalidation rules. Grounded on spec.md §5/§6 directly (no tile-
// orchestration analog exists in the pack); render-job identity follows
// the teacher's mod_assets.go AssetId(uuid.NewString()) pattern,
// repurposed from asset identity to per-render trace identity.
package orchestrator

import (
	"context"
	"image"
	"sync"

	"github.com/domscene/pagetrace/core"
	"github.com/domscene/pagetrace/enginelog"
	"github.com/domscene/pagetrace/render"
	"github.com/domscene/pagetrace/tile"
	"github.com/google/uuid"
)

// RenderJob describes one in-flight full-canvas render. ID is a
// debugging/logging aid only; correctness relies entirely on Version.
type RenderJob struct {
	ID      string
	Version uint64
}

// Orchestrator is single-threaded cooperative per spec.md §5: every
// exported method must be called from one goroutine (the "UI/control
// thread"). It performs no internal locking to serialize callers —
// callers must serialize calls themselves, exactly as the teacher's own
// single-threaded App/ECS update loop does for its systems.
type Orchestrator struct {
	renderer *render.Renderer
	log      enginelog.Logger

	grid  *tile.Grid
	cache *tile.Cache
	comp  *tile.Compositor

	scene  core.Scene
	camera *core.Camera

	contentW, contentH   int
	viewportW, viewportH int
	scrollY              int

	version  uint64
	disposed bool

	// mu guards version/disposed. Renders run synchronously on the
	// caller's goroutine, so no other goroutine in this package reads
	// them; the tile cache serializes its own mutation.
	mu sync.Mutex
}

// New constructs an Orchestrator. tileHeight follows config.Config's
// TileHeight; contentW/contentH start at zero (the first UpdateScene call
// establishes real dimensions).
func New(renderer *render.Renderer, tileHeight int, log enginelog.Logger) *Orchestrator {
	if log == nil {
		log = enginelog.Nop()
	}
	grid := tile.NewGrid(0, 0, tileHeight)
	cache := tile.NewCache(grid)
	return &Orchestrator{
		renderer: renderer,
		log:      log,
		grid:     grid,
		cache:    cache,
		comp:     tile.NewCompositor(cache),
	}
}

// UpdateScene implements spec.md §6's update_scene: a full re-render and
// composite. A content-size change rebuilds the tile grid (dropping
// cached pixels); any change at all invalidates every tile and bumps
// render_version, cancelling whatever render was previously in flight.
func (o *Orchestrator) UpdateScene(ctx context.Context, scene core.Scene, camera *core.Camera, contentW, contentH, viewportW, viewportH, scrollY int) *image.RGBA {
	if o.disposed {
		return nil
	}

	if contentW != o.contentW || contentH != o.contentH {
		o.cache.Resize(contentW, contentH)
		o.contentW, o.contentH = contentW, contentH
	} else {
		o.cache.Invalidate()
	}

	o.scene = scene
	o.camera = camera
	o.viewportW, o.viewportH = viewportW, viewportH
	o.scrollY = scrollY

	job := o.beginRender()
	o.log.Debugf("orchestrator: update_scene starting render %s (version=%d)", job.ID, job.Version)

	o.renderFullCanvas(job)

	return o.comp.Composite(o.viewportW, o.viewportH, o.scrollY)
}

// UpdateViewport implements spec.md §6's update_viewport: a scroll/
// viewport-height change never triggers a re-render, only a recomposite
// of whatever tiles are already cached.
func (o *Orchestrator) UpdateViewport(scrollY, viewportH int) *image.RGBA {
	if o.disposed {
		return nil
	}
	o.scrollY, o.viewportH = scrollY, viewportH
	return o.comp.Composite(o.viewportW, o.viewportH, o.scrollY)
}

// ForceRenderAll re-renders the full canvas against the current scene
// regardless of whether anything changed.
func (o *Orchestrator) ForceRenderAll(ctx context.Context) *image.RGBA {
	if o.disposed {
		return nil
	}
	o.cache.Invalidate()
	job := o.beginRender()
	o.renderFullCanvas(job)
	return o.comp.Composite(o.viewportW, o.viewportH, o.scrollY)
}

// Dispose releases the orchestrator's resources. After Dispose, every
// method is a no-op — matching spec.md §7's "cancellation is not an
// error, silent drop" policy extended to post-dispose calls.
func (o *Orchestrator) Dispose() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.disposed = true
}

// beginRender bumps render_version, per spec.md §5's "update_scene called
// twice in rapid succession: the second call's pixels alone are visible"
// ordering guarantee — any render still holding an older version number
// is, by construction, superseded (see isCancelled).
func (o *Orchestrator) beginRender() RenderJob {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.version++
	return RenderJob{ID: uuid.NewString(), Version: o.version}
}

// isCancelled reports whether job's version has been superseded by a
// later UpdateScene/ForceRenderAll call, or the orchestrator disposed,
// since the job started.
func (o *Orchestrator) isCancelled(version uint64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.disposed || version < o.version
}

// renderFullCanvas performs spec.md §4.5's "one fullscreen render of the
// entire content canvas per scene change": a single render.Renderer.Render
// call over the whole canvas, whose rows are then sliced into tiles and
// published — never per-tile sub-cameras, since the whole canvas fits in
// one pass here.
func (o *Orchestrator) renderFullCanvas(job RenderJob) {
	if o.contentW <= 0 || o.contentH <= 0 {
		return
	}

	img := o.renderer.Render(o.scene, o.camera, o.contentW, o.contentH)

	if o.isCancelled(job.Version) {
		o.log.Debugf("orchestrator: render %s (version=%d) cancelled, dropping results", job.ID, job.Version)
		return
	}

	for _, t := range o.grid.Tiles() {
		if !o.cache.BeginRender(t.ID) {
			continue
		}
		if o.isCancelled(job.Version) {
			return
		}
		sub := img.SubImage(rectFor(t)).(*image.RGBA)
		o.cache.CompleteRender(t.ID, sub)
	}
}

func rectFor(t tile.Tile) image.Rectangle {
	return image.Rect(t.X, t.Y, t.X+t.W, t.Y+t.H)
}

package orchestrator

import (
	"context"
	"testing"

	"github.com/domscene/pagetrace/config"
	"github.com/domscene/pagetrace/core"
	"github.com/domscene/pagetrace/enginelog"
	"github.com/domscene/pagetrace/render"
	"github.com/domscene/pagetrace/tile"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene() core.Scene {
	return core.Scene{
		Objects: []core.Primitive{
			{
				Geometry: core.NewBox(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{4, 4, 4}, core.IdentityRotation(), 0),
				Color:    mgl32.Vec3{1, 0, 0},
				Alpha:    1,
				IOR:      1,
			},
		},
	}
}

func testCamera() *core.Camera {
	return &core.Camera{
		Position: mgl32.Vec3{0, 0, -10},
		LookAt:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		Width:    10,
		Height:   10,
	}
}

func newTestOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	r, err := render.NewRenderer(context.Background(), config.Default(), enginelog.Nop())
	require.NoError(t, err)
	return New(r, 8, enginelog.Nop())
}

// TestUpdateSceneRendersAllTilesClean covers spec.md §8 scenario 5's setup
// half: a single update_scene renders every tile exactly once.
func TestUpdateSceneRendersAllTilesClean(t *testing.T) {
	o := newTestOrchestrator(t)
	surface := o.UpdateScene(context.Background(), testScene(), testCamera(), 20, 32, 20, 10, 0)
	require.NotNil(t, surface)
	for _, tl := range o.grid.Tiles() {
		assert.Equal(t, tile.StateClean, tl.State)
	}
}

// TestUpdateViewportNeverReRenders covers spec.md §8 scenario 5: after one
// update_scene, repeated update_viewport calls at different scroll offsets
// reuse the already-rendered tiles without bumping render_version.
func TestUpdateViewportNeverReRenders(t *testing.T) {
	o := newTestOrchestrator(t)
	o.UpdateScene(context.Background(), testScene(), testCamera(), 20, 32, 20, 10, 0)
	versionAfterScene := o.version

	o.UpdateViewport(0, 10)
	o.UpdateViewport(16, 10)

	assert.Equal(t, versionAfterScene, o.version, "update_viewport must never bump render_version")
}

// TestUpdateViewportCropsFullRender covers the rest of scenario 5: a
// composite at a scroll offset should match a crop of the full canvas
// render at the same offset.
func TestUpdateViewportCropsFullRender(t *testing.T) {
	o := newTestOrchestrator(t)
	o.UpdateScene(context.Background(), testScene(), testCamera(), 20, 32, 20, 16, 0)
	// content canvas is 20x32 (four 8px tile rows); the viewport below
	// only ever shows 16 rows at a time.

	top := o.UpdateViewport(0, 16)
	scrolled := o.UpdateViewport(8, 16)

	require.NotNil(t, top)
	require.NotNil(t, scrolled)
	// Pixel row 8 of the top view should equal pixel row 0 of the
	// scrolled-by-8 view, since both display the same underlying content
	// row.
	for x := 0; x < 20; x++ {
		assert.Equal(t, top.RGBAAt(x, 8), scrolled.RGBAAt(x, 0))
	}
}

// TestUpdateSceneCancelsPriorRender covers spec.md §5's cancellation
// safety invariant: a second UpdateScene call in rapid succession bumps
// render_version so the earlier job's results are never candidates for
// publication once superseded.
func TestUpdateSceneCancelsPriorRender(t *testing.T) {
	o := newTestOrchestrator(t)
	o.UpdateScene(context.Background(), testScene(), testCamera(), 20, 32, 20, 10, 0)
	v1 := o.version

	o.UpdateScene(context.Background(), testScene(), testCamera(), 20, 32, 20, 10, 0)
	v2 := o.version

	assert.Greater(t, v2, v1)
	assert.True(t, o.isCancelled(v1), "the superseded job's version must read as cancelled")
}

// TestDisposeStopsFurtherWork covers spec.md §6's dispose contract: once
// disposed, no further renders or composites occur.
func TestDisposeStopsFurtherWork(t *testing.T) {
	o := newTestOrchestrator(t)
	o.UpdateScene(context.Background(), testScene(), testCamera(), 20, 32, 20, 10, 0)
	o.Dispose()

	assert.Nil(t, o.UpdateScene(context.Background(), testScene(), testCamera(), 20, 32, 20, 10, 0))
	assert.Nil(t, o.UpdateViewport(0, 10))
	assert.Nil(t, o.ForceRenderAll(context.Background()))
}

// TestContentResizeRebuildsGrid covers spec.md §8 scenario 6 at
// the orchestrator level: a content-size change in UpdateScene rebuilds
// the tile grid.
func TestContentResizeRebuildsGrid(t *testing.T) {
	o := newTestOrchestrator(t)
	o.UpdateScene(context.Background(), testScene(), testCamera(), 20, 32, 20, 10, 0)
	rowsBefore := o.grid.RowCount()

	o.UpdateScene(context.Background(), testScene(), testCamera(), 20, 64, 20, 10, 0)
	rowsAfter := o.grid.RowCount()

	assert.Greater(t, rowsAfter, rowsBefore)
}

package tile

import (
	"image"
	"sync"
)

// Cache holds rendered pixel buffers keyed by tile id, alongside the
// Grid's lifecycle state. Confined to the single orchestration thread per
// spec.md §5 ("Tile cache mutation is confined to this thread") — the
// mutex here guards against accidental concurrent misuse, not to support
// concurrent mutation as a feature.
type Cache struct {
	mu     sync.Mutex
	grid   *Grid
	pixels map[int]*image.RGBA
}

// NewCache wraps a Grid with a pixel store.
func NewCache(grid *Grid) *Cache {
	return &Cache{grid: grid, pixels: make(map[int]*image.RGBA)}
}

// Grid returns the underlying tile grid.
func (c *Cache) Grid() *Grid { return c.grid }

// BeginRender marks a tile StateRendering. Returns false if the tile id
// doesn't exist in the current grid (e.g. a stale id from before a
// Resize).
func (c *Cache) BeginRender(tileID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.grid.tiles {
		if c.grid.tiles[i].ID == tileID {
			c.grid.tiles[i].State = StateRendering
			return true
		}
	}
	return false
}

// CompleteRender publishes a tile's pixels and marks it clean. A caller
// whose render was superseded (stale render_version) must never call
// this — per spec.md §5's cancellation rule, a cancelled render "must not
// publish pixels, must not advance tile state to clean".
func (c *Cache) CompleteRender(tileID int, pixels *image.RGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.grid.tiles {
		if c.grid.tiles[i].ID == tileID {
			c.grid.tiles[i].State = StateClean
			c.pixels[tileID] = pixels
			return
		}
	}
}

// Get returns a tile's cached pixels and whether they are present and
// clean.
func (c *Cache) Get(tileID int) (*image.RGBA, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.grid.tiles {
		if t.ID == tileID && t.State == StateClean {
			px, ok := c.pixels[tileID]
			return px, ok
		}
	}
	return nil, false
}

// Invalidate marks every tile dirty and drops no pixels (a dirty tile's
// stale pixels are still useful for a flash-free repaint until the
// re-render completes) — only Resize clears the pixel map outright.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.MarkAllDirty()
}

// Resize rebuilds the grid for a new content size and drops every cached
// pixel buffer, since tile ids/geometry are no longer meaningful.
func (c *Cache) Resize(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.Resize(width, height)
	c.pixels = make(map[int]*image.RGBA)
}

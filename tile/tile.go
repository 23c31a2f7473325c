// Package tile implements spec.md §4.5's tile grid and pixel cache: the
// content canvas is partitioned into a single column of fixed-height
// tiles, each carrying a three-state lifecycle (dirty/rendering/clean).
// No tile-cache analog exists in the example pack (see DESIGN.md); the
// state machine and invalidation rules below are built directly from
// spec.md's contract.
package tile

// State is a tile's lifecycle stage.
type State int

const (
	// StateDirty marks a tile as needing a render (new, or invalidated by
	// a scene/content-size change).
	StateDirty State = iota
	// StateRendering marks a tile whose render is in flight.
	StateRendering
	// StateClean marks a tile whose pixels reflect the current scene.
	StateClean
)

// Tile is one row-slice of the content canvas.
type Tile struct {
	ID    int
	X, Y  int
	W, H  int
	State State
}

// Grid partitions a content canvas of the given size into a single
// column of fixed-height tiles; the last row is short if the content
// height doesn't divide evenly.
type Grid struct {
	width, height int
	tileHeight    int
	tiles         []Tile
}

// NewGrid builds a Grid for a canvas of the given width/height, with rows
// of tileHeight (clamped to at least 1 to avoid a divide-by-zero on a
// misconfigured height).
func NewGrid(width, height, tileHeight int) *Grid {
	if tileHeight < 1 {
		tileHeight = 1
	}
	g := &Grid{width: width, height: height, tileHeight: tileHeight}
	g.rebuild()
	return g
}

func (g *Grid) rebuild() {
	g.tiles = nil
	id := 0
	for y := 0; y < g.height; y += g.tileHeight {
		h := g.tileHeight
		if y+h > g.height {
			h = g.height - y
		}
		g.tiles = append(g.tiles, Tile{ID: id, X: 0, Y: y, W: g.width, H: h, State: StateDirty})
		id++
	}
}

// Resize rebuilds the grid for a new content size, per spec.md's
// "Content size change: rebuild grid; mark all dirty" rule — every tile
// in the rebuilt grid starts StateDirty by construction.
func (g *Grid) Resize(width, height int) {
	g.width, g.height = width, height
	g.rebuild()
}

// Tiles returns the current tile set. Callers must not mutate the
// returned slice's State directly; use MarkAllDirty/Cache instead.
func (g *Grid) Tiles() []Tile {
	return g.tiles
}

// RowCount returns ceil(height / tileHeight), spec.md §8 scenario 6's
// invalidation-on-resize check.
func (g *Grid) RowCount() int {
	return len(g.tiles)
}

// MarkAllDirty implements spec.md's "Scene change... invalidate all
// tiles" rule.
func (g *Grid) MarkAllDirty() {
	for i := range g.tiles {
		g.tiles[i].State = StateDirty
	}
}

// TileAt returns the tile covering content-space y, and whether one
// exists.
func (g *Grid) TileAt(y int) (Tile, bool) {
	if y < 0 || y >= g.height {
		return Tile{}, false
	}
	idx := y / g.tileHeight
	if idx < 0 || idx >= len(g.tiles) {
		return Tile{}, false
	}
	return g.tiles[idx], true
}

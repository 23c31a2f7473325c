// Package grid implements the 2D uniform-grid accelerator of spec.md
// §4.2 ("alternative, used by the source when box count >= 16"): bucket
// box AABBs projected onto the XY plane into cellsX x cellsY cells sized
// so expected occupancy is roughly sqrt(N) per cell, then walk a ray
// through the grid with 2D DDA, testing every box referenced by each
// cell visited. No example repo in the pack implements a 2D DDA grid —
// see DESIGN.md's standard-library justification — so this package is
// built directly from the spec's contract, using core.AABB/core.Ray for
// its math exactly as bvh does.
package grid

import (
	"math"

	"github.com/domscene/pagetrace/core"
)

// Grid is a 2D uniform grid over box AABBs, bucketed by their XY extent.
// Z is ignored for bucketing (consistent with this engine's page-plane
// layout, where boxes are stacked along Z but laid out in XY). The grid
// performs no per-box AABB test; callers test each candidate's geometry.
type Grid struct {
	bounds         core.AABB
	cellsX, cellsY int
	cellW, cellH   float32
	cellStart      []int32 // len cellsX*cellsY+1, CSR-style offsets
	cellObjects    []int32 // flat indices, length cellStart[len(cellStart)-1]
}

// Build constructs a grid over the given AABBs; index i of aabbs
// corresponds to index i in the caller's primitive slice.
func Build(aabbs []core.AABB) *Grid {
	if len(aabbs) == 0 {
		return &Grid{}
	}

	bounds := core.EmptyAABB()
	for _, a := range aabbs {
		bounds = bounds.Union(a)
	}

	n := len(aabbs)
	cells := int(math.Ceil(math.Sqrt(float64(n))))
	if cells < 1 {
		cells = 1
	}
	g := &Grid{bounds: bounds, cellsX: cells, cellsY: cells}

	width := bounds.Max.X() - bounds.Min.X()
	height := bounds.Max.Y() - bounds.Min.Y()
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	g.cellW = width / float32(g.cellsX)
	g.cellH = height / float32(g.cellsY)

	// First pass: count per-cell occupancy (a box may overlap many cells).
	counts := make([]int32, g.cellsX*g.cellsY)
	cellRanges := make([][4]int, n) // x0,x1,y0,y1 inclusive, per box
	for i, a := range aabbs {
		x0, x1, y0, y1 := g.cellRange(a)
		cellRanges[i] = [4]int{x0, x1, y0, y1}
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				counts[cy*g.cellsX+cx]++
			}
		}
	}

	g.cellStart = make([]int32, len(counts)+1)
	for i, c := range counts {
		g.cellStart[i+1] = g.cellStart[i] + c
	}

	g.cellObjects = make([]int32, g.cellStart[len(g.cellStart)-1])
	cursor := make([]int32, len(counts))
	copy(cursor, g.cellStart[:len(counts)])
	for i := range aabbs {
		x0, x1, y0, y1 := cellRanges[i][0], cellRanges[i][1], cellRanges[i][2], cellRanges[i][3]
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				cellIdx := cy*g.cellsX + cx
				g.cellObjects[cursor[cellIdx]] = int32(i)
				cursor[cellIdx]++
			}
		}
	}

	return g
}

// cellRange returns the inclusive [x0,x1] x [y0,y1] cell range an AABB's
// XY projection overlaps, clamped to the grid.
func (g *Grid) cellRange(a core.AABB) (x0, x1, y0, y1 int) {
	x0 = g.cellIndexX(a.Min.X())
	x1 = g.cellIndexX(a.Max.X())
	y0 = g.cellIndexY(a.Min.Y())
	y1 = g.cellIndexY(a.Max.Y())
	return
}

func (g *Grid) cellIndexX(x float32) int {
	i := int((x - g.bounds.Min.X()) / g.cellW)
	if i < 0 {
		i = 0
	}
	if i >= g.cellsX {
		i = g.cellsX - 1
	}
	return i
}

func (g *Grid) cellIndexY(y float32) int {
	i := int((y - g.bounds.Min.Y()) / g.cellH)
	if i < 0 {
		i = 0
	}
	if i >= g.cellsY {
		i = g.cellsY - 1
	}
	return i
}

// Candidates implements core.Accelerator via 2D DDA over the XY grid.
// Every box referenced by a visited cell is reported once, in the first
// visited cell that references it; its AABBNear is the t at which the ray
// enters that cell, not the entry t of the box's own AABB. Callers test
// actual geometry, not just AABBs.
func (g *Grid) Candidates(ray core.Ray, tMin, tMax float32, primaryRay bool) []core.Candidate {
	if g.cellsX == 0 || g.cellsY == 0 {
		return nil
	}
	near, far, ok := g.bounds.HitSlab(ray, tMin, tMax)
	if !ok {
		return nil
	}

	start := ray.At(near)
	cx := g.cellIndexX(start.X())
	cy := g.cellIndexY(start.Y())

	stepX, stepY := 1, 1
	if ray.Direction.X() < 0 {
		stepX = -1
	}
	if ray.Direction.Y() < 0 {
		stepY = -1
	}

	invDX := core.SafeInverse(ray.Direction.X())
	invDY := core.SafeInverse(ray.Direction.Y())

	nextBoundaryX := g.bounds.Min.X() + float32(cx+boolToInt(stepX > 0))*g.cellW
	nextBoundaryY := g.bounds.Min.Y() + float32(cy+boolToInt(stepY > 0))*g.cellH

	tMaxX := (nextBoundaryX - ray.Origin.X()) * invDX
	tMaxY := (nextBoundaryY - ray.Origin.Y()) * invDY
	tDeltaX := g.cellW * absF(invDX)
	tDeltaY := g.cellH * absF(invDY)

	var out []core.Candidate
	seen := map[int32]bool{}

	t := near
	for t <= far {
		if cx >= 0 && cx < g.cellsX && cy >= 0 && cy < g.cellsY {
			idx := cy*g.cellsX + cx
			for _, objIdx := range g.cellObjects[g.cellStart[idx]:g.cellStart[idx+1]] {
				if seen[objIdx] {
					continue
				}
				seen[objIdx] = true
				out = append(out, core.Candidate{Index: int(objIdx), AABBNear: t})
			}
		}

		if tMaxX < tMaxY {
			t = tMaxX
			tMaxX += tDeltaX
			cx += stepX
		} else {
			t = tMaxY
			tMaxY += tDeltaY
			cy += stepY
		}
		if cx < 0 || cx >= g.cellsX || cy < 0 || cy >= g.cellsY {
			break
		}
	}

	return out
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func absF(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

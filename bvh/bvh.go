// Package bvh implements the binary bounding-volume hierarchy accelerator
// of spec.md §4.2: a top-down median-split build over box AABBs and a
// bounded-depth stack-based traversal, ordered near-first for primary
// rays. Grounded on the teacher's voxelrt/rt/bvh/builder.go TLASBuilder
// (longest-axis median split over voxel-object AABBs, flat node array);
// generalized here from voxel-object AABBs to arbitrary primitive AABBs
// and given a CPU traversal routine (the teacher's traversal lives only
// in a WGSL shader, not in Go).
package bvh

import (
	"sort"

	"github.com/domscene/pagetrace/core"
	"github.com/go-gl/mathgl/mgl32"
)

// maxStackDepth bounds the traversal stack per spec.md §4.2 ("bounded
// stack depth (e.g. 32)").
const maxStackDepth = 32

// node is an internal or leaf node of the tree. Leaves have Left ==
// Right == -1 and reference exactly one primitive via Index.
type node struct {
	AABB        core.AABB
	Left, Right int32 // -1 for leaves
	Index       int32 // valid only at leaves
}

// BVH is a built tree over a fixed set of box primitives, keyed by their
// index into the RenderScene.Boxes slice.
type BVH struct {
	nodes []node
}

// Build constructs a BVH over the given AABBs; index i of aabbs
// corresponds to index i in the caller's primitive slice (typically
// RenderScene.Boxes) and is threaded through to Candidate.Index.
func Build(aabbs []core.AABB) *BVH {
	if len(aabbs) == 0 {
		return &BVH{}
	}
	items := make([]item, len(aabbs))
	for i, a := range aabbs {
		items[i] = item{aabb: a, centroid: a.Centroid(), index: int32(i)}
	}
	b := &BVH{}
	buildRecursive(items, &b.nodes)
	return b
}

type item struct {
	aabb     core.AABB
	centroid mgl32.Vec3
	index    int32
}

func buildRecursive(items []item, nodes *[]node) int32 {
	idx := int32(len(*nodes))
	*nodes = append(*nodes, node{Left: -1, Right: -1})

	bounds := core.EmptyAABB()
	for _, it := range items {
		bounds = bounds.Union(it.aabb)
	}
	(*nodes)[idx].AABB = bounds

	if len(items) == 1 {
		(*nodes)[idx].Index = items[0].index
		return idx
	}

	extent := [3]float32{
		bounds.Max.X() - bounds.Min.X(),
		bounds.Max.Y() - bounds.Min.Y(),
		bounds.Max.Z() - bounds.Min.Z(),
	}
	axis := 0
	if extent[1] > extent[axis] {
		axis = 1
	}
	if extent[2] > extent[axis] {
		axis = 2
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].centroid[axis] < items[j].centroid[axis]
	})

	mid := len(items) / 2
	left := buildRecursive(items[:mid], nodes)
	right := buildRecursive(items[mid:], nodes)
	(*nodes)[idx].Left = left
	(*nodes)[idx].Right = right
	return idx
}

// Candidates implements core.Accelerator. For primary rays it pushes the
// farther child first so the nearer one pops (and is reported) first; for
// shadow rays traversal order is unspecified, matching spec.md §4.2.
func (b *BVH) Candidates(ray core.Ray, tMin, tMax float32, primaryRay bool) []core.Candidate {
	if len(b.nodes) == 0 {
		return nil
	}

	var out []core.Candidate
	var stack [maxStackDepth]int32
	sp := 0
	stack[sp] = 0
	sp++

	for sp > 0 {
		sp--
		n := &b.nodes[stack[sp]]

		near, _, ok := n.AABB.HitSlab(ray, tMin, tMax)
		if !ok {
			continue
		}

		if n.Left == -1 {
			out = append(out, core.Candidate{Index: int(n.Index), AABBNear: near})
			continue
		}

		left, right := &b.nodes[n.Left], &b.nodes[n.Right]
		lNear, _, lOK := left.AABB.HitSlab(ray, tMin, tMax)
		rNear, _, rOK := right.AABB.HitSlab(ray, tMin, tMax)

		// Push farther first so nearer is popped (and visited) first.
		firstIdx, secondIdx := n.Left, n.Right
		firstOK, secondOK := lOK, rOK
		if lOK && rOK && primaryRay && lNear > rNear {
			firstIdx, secondIdx = n.Right, n.Left
			firstOK, secondOK = rOK, lOK
		}
		if sp < maxStackDepth && secondOK {
			stack[sp] = secondIdx
			sp++
		}
		if sp < maxStackDepth && firstOK {
			stack[sp] = firstIdx
			sp++
		}
	}

	if primaryRay {
		sort.Slice(out, func(i, j int) bool { return out[i].AABBNear < out[j].AABBNear })
	}
	return out
}

package core

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis-aligned bounding box. Unbounded is set for primitives
// with no finite extent (infinite planes) — such boxes are never pruned by
// frustum culling regardless of Min/Max, per spec.
type AABB struct {
	Min, Max  mgl32.Vec3
	Unbounded bool
}

// EmptyAABB returns an AABB that contains no points; Union-ing it with any
// AABB yields that AABB unchanged.
func EmptyAABB() AABB {
	const inf = float32(1e30)
	return AABB{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// Union returns the smallest AABB containing both a and b.
func (a AABB) Union(b AABB) AABB {
	if a.Unbounded || b.Unbounded {
		return AABB{Unbounded: true}
	}
	return AABB{
		Min: mgl32.Vec3{
			min32(a.Min.X(), b.Min.X()),
			min32(a.Min.Y(), b.Min.Y()),
			min32(a.Min.Z(), b.Min.Z()),
		},
		Max: mgl32.Vec3{
			max32(a.Max.X(), b.Max.X()),
			max32(a.Max.Y(), b.Max.Y()),
			max32(a.Max.Z(), b.Max.Z()),
		},
	}
}

// Translated returns the AABB shifted by d.
func (a AABB) Translated(d mgl32.Vec3) AABB {
	if a.Unbounded {
		return a
	}
	return AABB{Min: a.Min.Add(d), Max: a.Max.Add(d)}
}

// Intersects reports whether two AABBs overlap. An unbounded AABB always
// intersects everything.
func (a AABB) Intersects(b AABB) bool {
	if a.Unbounded || b.Unbounded {
		return true
	}
	return a.Min.X() <= b.Max.X() && a.Max.X() >= b.Min.X() &&
		a.Min.Y() <= b.Max.Y() && a.Max.Y() >= b.Min.Y() &&
		a.Min.Z() <= b.Max.Z() && a.Max.Z() >= b.Min.Z()
}

// Centroid returns the midpoint of the box. Meaningless (zero) for an
// unbounded AABB; callers must check Unbounded first.
func (a AABB) Centroid() mgl32.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Corners returns the 8 corner points of the box.
func (a AABB) Corners() [8]mgl32.Vec3 {
	return [8]mgl32.Vec3{
		{a.Min.X(), a.Min.Y(), a.Min.Z()},
		{a.Max.X(), a.Min.Y(), a.Min.Z()},
		{a.Min.X(), a.Max.Y(), a.Min.Z()},
		{a.Max.X(), a.Max.Y(), a.Min.Z()},
		{a.Min.X(), a.Min.Y(), a.Max.Z()},
		{a.Max.X(), a.Min.Y(), a.Max.Z()},
		{a.Min.X(), a.Max.Y(), a.Max.Z()},
		{a.Max.X(), a.Max.Y(), a.Max.Z()},
	}
}

// HitSlab performs the ray-vs-slab test, returning the entry/exit t values
// clamped to [tMin, tMax] and whether the ray intersects the box at all.
// An unbounded AABB always "hits" across the full [tMin, tMax] range.
func (a AABB) HitSlab(r Ray, tMin, tMax float32) (near, far float32, ok bool) {
	if a.Unbounded {
		return tMin, tMax, true
	}
	near, far = tMin, tMax
	for axis := 0; axis < 3; axis++ {
		invD := SafeInverse(r.Direction[axis])
		t0 := (a.Min[axis] - r.Origin[axis]) * invD
		t1 := (a.Max[axis] - r.Origin[axis]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > near {
			near = t0
		}
		if t1 < far {
			far = t1
		}
		if far <= near {
			return near, far, false
		}
	}
	return near, far, true
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

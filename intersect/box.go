package intersect

import (
	"github.com/domscene/pagetrace/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Box dispatches to the sharp-OBB slab test or, when the geometry has a
// nonzero corner radius, the round-box SDF march.
func Box(ray core.Ray, g core.Geometry, maxSteps int, minDist float32) (Hit, bool) {
	if g.BoxRadius <= 0 {
		return sharpBox(ray, g)
	}
	return roundBox(ray, g, maxSteps, minDist)
}

// sharpBox transforms the ray into box-local space and runs a three-slab
// test against +-size/2, following the tie-break rule of spec.md §4.3:
// take the entry t if positive, else the exit t if the origin is inside.
// Grounded on the teacher's picking-ray IntersectAABB (other_examples
// avatar29A-midgard-ro) for the per-axis slab pattern, generalized to an
// arbitrary rotated box via core.Rotation.ToLocal and to report the hit
// axis as a normal.
func sharpBox(ray core.Ray, g core.Geometry) (Hit, bool) {
	o := g.BoxRot.ToLocal(ray.Origin.Sub(g.BoxCenter))
	d := g.BoxRot.ToLocal(ray.Direction)
	half := g.BoxSize.Mul(0.5)

	tMin, tMax := float32(-1e30), float32(1e30)
	var enterAxis, exitAxis int
	enterSign, exitSign := float32(1), float32(1)

	for axis := 0; axis < 3; axis++ {
		inv := core.SafeInverse(d[axis])
		t0 := (-half[axis] - o[axis]) * inv
		t1 := (half[axis] - o[axis]) * inv
		sign0, sign1 := float32(-1), float32(1)
		if t0 > t1 {
			t0, t1 = t1, t0
			sign0, sign1 = sign1, sign0
		}
		if t0 > tMin {
			tMin = t0
			enterAxis = axis
			enterSign = sign0
		}
		if t1 < tMax {
			tMax = t1
			exitAxis = axis
			exitSign = sign1
		}
		if tMin > tMax {
			return Hit{}, false
		}
	}

	var t float32
	var axis int
	var sign float32
	if tMin > 0 {
		t, axis, sign = tMin, enterAxis, enterSign
	} else if tMax > 0 {
		t, axis, sign = tMax, exitAxis, exitSign
	} else {
		return Hit{}, false
	}

	localNormal := mgl32.Vec3{}
	localNormal[axis] = sign
	return Hit{T: t, Normal: g.BoxRot.ToWorld(localNormal)}, true
}

// roundBox sphere-traces the SDF of a rounded box in box-local space,
// after an expanded-AABB early-out, exactly per spec.md §4.3. maxSteps
// and minDist come from config.Config (RayMarchMaxSteps/RayMarchMinDist)
// so CPU and GPU paths share the same tunables (spec.md §9 parity note).
func roundBox(ray core.Ray, g core.Geometry, maxSteps int, minDist float32) (Hit, bool) {
	half := g.BoxSize.Mul(0.5).Add(mgl32.Vec3{g.BoxRadius, g.BoxRadius, g.BoxRadius})
	expanded := core.AABB{Min: g.BoxCenter.Sub(half), Max: g.BoxCenter.Add(half)}
	near, far, ok := expanded.HitSlab(ray, 0, 1e30)
	if !ok {
		return Hit{}, false
	}
	if near < 0 {
		near = 0
	}

	o := g.BoxRot.ToLocal(ray.Origin.Sub(g.BoxCenter))
	d := g.BoxRot.ToLocal(ray.Direction)
	innerHalf := g.BoxSize.Mul(0.5)

	t := near
	for step := 0; step < maxSteps; step++ {
		if t > far {
			return Hit{}, false
		}
		p := o.Add(d.Mul(t))
		dist := roundBoxSDF(p, innerHalf, g.BoxRadius)
		if dist < minDist {
			n := roundBoxNormal(p, innerHalf, g.BoxRadius)
			return Hit{T: t, Normal: g.BoxRot.ToWorld(n)}, true
		}
		t += dist
	}
	return Hit{}, false
}

func roundBoxSDF(p, half mgl32.Vec3, radius float32) float32 {
	qx := abs(p.X()) - half.X()
	qy := abs(p.Y()) - half.Y()
	qz := abs(p.Z()) - half.Z()
	outside := mgl32.Vec3{max0(qx), max0(qy), max0(qz)}
	return outside.Len() + min0(max3(qx, qy, qz)) - radius
}

// roundBoxNormal estimates the SDF gradient via central differences, per
// spec.md §4.3 ("normal via central-difference of the SDF").
func roundBoxNormal(p, half mgl32.Vec3, radius float32) mgl32.Vec3 {
	const e = 1e-4
	dx := roundBoxSDF(p.Add(mgl32.Vec3{e, 0, 0}), half, radius) - roundBoxSDF(p.Sub(mgl32.Vec3{e, 0, 0}), half, radius)
	dy := roundBoxSDF(p.Add(mgl32.Vec3{0, e, 0}), half, radius) - roundBoxSDF(p.Sub(mgl32.Vec3{0, e, 0}), half, radius)
	dz := roundBoxSDF(p.Add(mgl32.Vec3{0, 0, e}), half, radius) - roundBoxSDF(p.Sub(mgl32.Vec3{0, 0, e}), half, radius)
	n := mgl32.Vec3{dx, dy, dz}
	if l := n.Len(); l > 1e-8 {
		return n.Mul(1 / l)
	}
	return mgl32.Vec3{0, 1, 0}
}

func max0(x float32) float32 {
	if x > 0 {
		return x
	}
	return 0
}

func min0(x float32) float32 {
	if x < 0 {
		return x
	}
	return 0
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

package intersect

import (
	"github.com/domscene/pagetrace/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Capsule implements the classic cylinder-with-hemispheres ray test of
// spec.md §4.3: the capsule is the set of points within radius of the
// segment [A, B]. We solve the quadratic for the infinite cylinder around
// the segment's axis, clamp the hit to the segment's extent, and fall back
// to the two end-cap spheres when the cylindrical hit falls outside
// [0, segLen]. No pack example implements a capsule test (see DESIGN.md);
// this follows the standard closed-form derivation, structured like this
// package's Sphere kernel for consistency.
func Capsule(ray core.Ray, g core.Geometry) (Hit, bool) {
	axis := g.CapsuleB.Sub(g.CapsuleA)
	segLen := axis.Len()
	if segLen < 1e-8 {
		return sphereAt(ray, g.CapsuleA, g.CapsuleRadius)
	}
	axisDir := axis.Mul(1 / segLen)

	oc := ray.Origin.Sub(g.CapsuleA)
	dDotAxis := ray.Direction.Dot(axisDir)
	ocDotAxis := oc.Dot(axisDir)

	dPerp := ray.Direction.Sub(axisDir.Mul(dDotAxis))
	ocPerp := oc.Sub(axisDir.Mul(ocDotAxis))

	a := dPerp.Dot(dPerp)
	b := 2 * dPerp.Dot(ocPerp)
	c := ocPerp.Dot(ocPerp) - g.CapsuleRadius*g.CapsuleRadius

	best := Hit{}
	found := false

	tryT := func(t float32, normalFromCylinder bool) {
		if t < 0 {
			return
		}
		p := ray.At(t)
		proj := p.Sub(g.CapsuleA).Dot(axisDir)
		if normalFromCylinder && (proj < 0 || proj > segLen) {
			return
		}
		if found && t >= best.T {
			return
		}
		var normal mgl32.Vec3
		if normalFromCylinder {
			closest := g.CapsuleA.Add(axisDir.Mul(proj))
			normal = p.Sub(closest).Normalize()
		} else {
			closest := g.CapsuleA
			if proj > segLen/2 {
				closest = g.CapsuleB
			}
			normal = p.Sub(closest).Normalize()
		}
		best = Hit{T: t, Normal: normal}
		found = true
	}

	if a > 1e-12 {
		disc := b*b - 4*a*c
		if disc >= 0 {
			sq := sqrtf(disc)
			t0 := (-b - sq) / (2 * a)
			t1 := (-b + sq) / (2 * a)
			tryT(t0, true)
			tryT(t1, true)
		}
	}

	if capHit, ok := sphereAt(ray, g.CapsuleA, g.CapsuleRadius); ok {
		tryT(capHit.T, false)
	}
	if capHit, ok := sphereAt(ray, g.CapsuleB, g.CapsuleRadius); ok {
		tryT(capHit.T, false)
	}

	return best, found
}

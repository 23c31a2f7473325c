package intersect

import "github.com/domscene/pagetrace/core"

// Plane solves spec.md §4.3's plane kernel: t = (p0-o).n / (d.n), rejecting
// a ray parallel to the plane or a hit behind the origin. A finite plane
// additionally rejects hits outside its (width, height) extent, projected
// onto a local (u, v) basis built from the normal — grounded on the
// teacher's picking-ray IntersectPlaneY (other_examples avatar29A-midgard-ro),
// generalized from a fixed Y-up plane to an arbitrary normal.
func Plane(ray core.Ray, g core.Geometry) (Hit, bool) {
	denom := ray.Direction.Dot(g.PlaneNormal)
	if denom > -EpsParallel && denom < EpsParallel {
		return Hit{}, false
	}

	t := g.PlanePoint.Sub(ray.Origin).Dot(g.PlaneNormal) / denom
	if t < 0 {
		return Hit{}, false
	}

	hitPoint := ray.At(t)
	if g.IsFinitePlane() {
		u, v := core.PlaneBasis(g.PlaneNormal)
		d := hitPoint.Sub(g.PlanePoint)
		lu, lv := d.Dot(u), d.Dot(v)
		if abs(lu) > g.PlaneWidth/2 || abs(lv) > g.PlaneHeight/2 {
			return Hit{}, false
		}
	}

	normal := g.PlaneNormal
	if denom > 0 {
		// Ray approaches from the back face; report the normal facing the
		// origin so shading sees a consistent "toward the viewer" normal.
		normal = normal.Mul(-1)
	}
	return Hit{T: t, Normal: normal}, true
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

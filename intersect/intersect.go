package intersect

import "github.com/domscene/pagetrace/core"

// Test dispatches a ray/primitive intersection to the kernel matching the
// primitive's geometry kind, filling in the Hit's material fields from the
// primitive on success. maxSteps/minDist are only consulted for rounded
// boxes (config.Config's RayMarchMaxSteps/RayMarchMinDist).
func Test(ray core.Ray, p core.Primitive, maxSteps int, minDist float32) (Hit, bool) {
	var hit Hit
	var ok bool

	switch p.Geometry.Kind {
	case core.GeometryPlane:
		hit, ok = Plane(ray, p.Geometry)
	case core.GeometryBox:
		hit, ok = Box(ray, p.Geometry, maxSteps, minDist)
	case core.GeometryCapsule:
		hit, ok = Capsule(ray, p.Geometry)
	case core.GeometrySphere:
		hit, ok = Sphere(ray, p.Geometry)
	default:
		return Hit{}, false
	}
	if !ok {
		return Hit{}, false
	}
	hit.Color = p.Color
	hit.Alpha = p.Alpha
	hit.IOR = p.IOR
	return hit, true
}

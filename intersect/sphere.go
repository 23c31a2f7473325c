package intersect

import (
	"math"

	"github.com/domscene/pagetrace/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere implements spec.md §4.3's sphere kernel: the standard ray/sphere
// quadratic, choosing the smallest positive root. Grounded on
// nthery-goraytracer's geom.SphereLineIntersection (other_examples),
// generalized here to also return the surface normal.
func Sphere(ray core.Ray, g core.Geometry) (Hit, bool) {
	return sphereAt(ray, g.SphereCenter, g.SphereRadius)
}

func sphereAt(ray core.Ray, center mgl32.Vec3, radius float32) (Hit, bool) {
	oc := ray.Origin.Sub(center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 || a < 1e-12 {
		return Hit{}, false
	}
	sq := sqrtf(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)

	t := t0
	if t < 0 {
		t = t1
	}
	if t < 0 {
		return Hit{}, false
	}

	p := ray.At(t)
	normal := p.Sub(center).Mul(1 / radius)
	return Hit{T: t, Normal: normal}, true
}

func sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

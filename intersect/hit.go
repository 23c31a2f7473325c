// Package intersect implements the ray/geometry kernels of spec.md §4.3:
// plane, sharp box (OBB), round box (SDF sphere-march), capsule, and
// sphere. Every kernel returns the nearest positive t (or a miss) and, for
// primary rays, the surface normal — grounded on the teacher's picking-ray
// slab test (other_examples avatar29A-midgard-ro) for the box/plane shape
// and nthery-goraytracer's quadratic sphere test, generalized to return
// normals and respect the entry/exit tie-break rules spec.md §4.3 states.
package intersect

import "github.com/go-gl/mathgl/mgl32"

// Epsilons from spec.md §4.3, shared by every kernel in this package (and
// by shade, via config.Config, for the ones that are host-tunable).
const (
	EpsParallel = 1e-6 // |d.n| below this is "ray parallel to plane"
	EpsMarch    = 1e-4 // ray-march hit distance threshold
)

// Hit is the result of a successful intersection: distance, surface
// normal, and the material fields needed to continue shading/transport.
// Sphere, box and capsule normals point outward from the surface, also
// when the ray hits from inside; Plane reports the normal on the side the
// ray comes from.
type Hit struct {
	T      float32
	Normal mgl32.Vec3
	Color  mgl32.Vec3
	Alpha  float32
	IOR    float32
}

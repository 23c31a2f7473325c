package core

// Candidate is one primitive whose AABB a ray enters, as reported by an
// Accelerator. AABBNear is the t at which the ray enters that AABB — for
// primary rays (where Accelerator orders candidates near-first) a caller
// can stop consuming candidates as soon as AABBNear exceeds the best hit
// t found so far, implementing spec.md §4.2's "if aabb_t > current_best_t,
// skip" rule without the accelerator needing to know about materials.
type Candidate struct {
	Kind     GeometryKind
	Index    int
	AABBNear float32
}

// Accelerator produces ray/AABB candidates from a spatial structure (BVH
// or uniform grid) built over box primitives. For primary rays it orders
// candidates near-first; for shadow rays ordering is unspecified (callers
// should stop at the first actual hit with t > 0 instead of relying on
// order). Both the bvh and grid packages implement this interface, and
// render.Renderer treats them identically — spec.md §9's "closure/
// interface ports... no dynamic dispatch required in tight loops" is
// honored by keeping this a single small method rather than a visitor
// hierarchy.
type Accelerator interface {
	Candidates(ray Ray, tMin, tMax float32, primaryRay bool) []Candidate
}

package core

import "github.com/go-gl/mathgl/mgl32"

// GeometryKind tags the variant held by a Geometry value.
type GeometryKind int

const (
	GeometryPlane GeometryKind = iota
	GeometryBox
	GeometryCapsule
	GeometrySphere
)

// Geometry is a tagged union of the four supported primitive shapes. Only
// the fields relevant to Kind are meaningful; this mirrors the teacher's
// preference for flat, GPU-packable structs over interface-based
// polymorphism (spec.md §9: "tagged variants... field layout known at
// compile time").
type Geometry struct {
	Kind GeometryKind

	// Plane
	PlanePoint  mgl32.Vec3
	PlaneNormal mgl32.Vec3 // unit length
	PlaneWidth  float32    // negative = infinite
	PlaneHeight float32    // negative = infinite

	// Box
	BoxCenter mgl32.Vec3
	BoxSize   mgl32.Vec3 // full size (not half)
	BoxRot    Rotation
	BoxRadius float32 // corner radius, 0 = sharp OBB

	// Capsule
	CapsuleA, CapsuleB mgl32.Vec3
	CapsuleRadius      float32

	// Sphere
	SphereCenter mgl32.Vec3
	SphereRadius float32
}

// NewPlane constructs a (possibly finite) plane geometry.
func NewPlane(point, normal mgl32.Vec3, width, height float32) Geometry {
	n := normal
	if l := n.Len(); l > 1e-8 {
		n = n.Mul(1 / l)
	} else {
		n = mgl32.Vec3{0, 0, 1}
	}
	return Geometry{Kind: GeometryPlane, PlanePoint: point, PlaneNormal: n, PlaneWidth: width, PlaneHeight: height}
}

// NewBox constructs a box geometry with an optional rotation and corner
// radius (0 = sharp OBB).
func NewBox(center, size mgl32.Vec3, rot Rotation, radius float32) Geometry {
	if radius < 0 {
		radius = 0
	}
	return Geometry{Kind: GeometryBox, BoxCenter: center, BoxSize: size, BoxRot: rot, BoxRadius: radius}
}

// NewCapsule constructs a capsule geometry between two endpoints.
func NewCapsule(a, b mgl32.Vec3, radius float32) Geometry {
	return Geometry{Kind: GeometryCapsule, CapsuleA: a, CapsuleB: b, CapsuleRadius: radius}
}

// NewSphere constructs a sphere geometry.
func NewSphere(center mgl32.Vec3, radius float32) Geometry {
	return Geometry{Kind: GeometrySphere, SphereCenter: center, SphereRadius: radius}
}

// IsFinitePlane reports whether a plane has finite extent.
func (g Geometry) IsFinitePlane() bool {
	return g.Kind == GeometryPlane && g.PlaneWidth >= 0 && g.PlaneHeight >= 0
}

// AABB computes the object's world-space bounding box. Infinite planes
// report Unbounded: true; spec.md requires these always survive culling.
func (g Geometry) AABB() AABB {
	switch g.Kind {
	case GeometryPlane:
		if !g.IsFinitePlane() {
			return AABB{Unbounded: true}
		}
		u, v := planeBasis(g.PlaneNormal)
		hw, hh := g.PlaneWidth/2, g.PlaneHeight/2
		corners := [4]mgl32.Vec3{
			g.PlanePoint.Add(u.Mul(hw)).Add(v.Mul(hh)),
			g.PlanePoint.Add(u.Mul(hw)).Sub(v.Mul(hh)),
			g.PlanePoint.Sub(u.Mul(hw)).Add(v.Mul(hh)),
			g.PlanePoint.Sub(u.Mul(hw)).Sub(v.Mul(hh)),
		}
		box := EmptyAABB()
		for _, c := range corners {
			box = box.Union(AABB{Min: c, Max: c})
		}
		return box
	case GeometryBox:
		half := g.BoxSize.Mul(0.5).Add(mgl32.Vec3{g.BoxRadius, g.BoxRadius, g.BoxRadius})
		if g.BoxRot.Ident {
			return AABB{Min: g.BoxCenter.Sub(half), Max: g.BoxCenter.Add(half)}
		}
		box := EmptyAABB()
		local := AABB{Min: half.Mul(-1), Max: half}
		for _, c := range local.Corners() {
			wc := g.BoxCenter.Add(g.BoxRot.ToWorld(c))
			box = box.Union(AABB{Min: wc, Max: wc})
		}
		return box
	case GeometryCapsule:
		r := mgl32.Vec3{g.CapsuleRadius, g.CapsuleRadius, g.CapsuleRadius}
		box := AABB{Min: g.CapsuleA.Sub(r), Max: g.CapsuleA.Add(r)}
		return box.Union(AABB{Min: g.CapsuleB.Sub(r), Max: g.CapsuleB.Add(r)})
	case GeometrySphere:
		r := mgl32.Vec3{g.SphereRadius, g.SphereRadius, g.SphereRadius}
		return AABB{Min: g.SphereCenter.Sub(r), Max: g.SphereCenter.Add(r)}
	default:
		return EmptyAABB()
	}
}

// planeBasis builds an orthonormal (u, v) basis perpendicular to n, used
// both for finite-plane AABB computation and for projecting a plane hit
// into local (u, v) coordinates during intersection testing.
func planeBasis(n mgl32.Vec3) (u, v mgl32.Vec3) {
	ref := mgl32.Vec3{0, 1, 0}
	if abs32(n.Dot(ref)) > 0.99 {
		ref = mgl32.Vec3{1, 0, 0}
	}
	u = ref.Cross(n).Normalize()
	v = n.Cross(u).Normalize()
	return u, v
}

// PlaneBasis exposes planeBasis for the intersect package.
func PlaneBasis(n mgl32.Vec3) (u, v mgl32.Vec3) { return planeBasis(n) }

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

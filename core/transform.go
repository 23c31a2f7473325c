package core

import "github.com/go-gl/mathgl/mgl32"

// EulerXYZ is an intrinsic XYZ Euler rotation in radians, used by Box
// geometry for its optional corner rotation. Degenerate (non-finite)
// angles are replaced by an identity basis at construction time (see
// NewRotation) rather than propagating NaNs into a ray transform.
type EulerXYZ struct {
	X, Y, Z float32
}

// Rotation caches a rotation matrix and its inverse (== transpose, since
// rotation matrices are orthonormal) so a box transformed into local space
// on every ray test never recomputes the inverse. Per spec.md's design
// notes: "store both to avoid recomputation when transforming normals".
type Rotation struct {
	M    mgl32.Mat3
	Inv  mgl32.Mat3
	Ident bool
}

// IdentityRotation returns a no-op rotation.
func IdentityRotation() Rotation {
	return Rotation{M: mgl32.Ident3(), Inv: mgl32.Ident3(), Ident: true}
}

// NewRotation builds a Rotation from intrinsic XYZ Euler angles. Non-finite
// inputs fall back to identity (spec.md §7: configuration-invalid values
// are clamped silently, never propagated as an error).
func NewRotation(e EulerXYZ) Rotation {
	if !isFinite32(e.X) || !isFinite32(e.Y) || !isFinite32(e.Z) {
		return IdentityRotation()
	}
	// Intrinsic XYZ order: compose body-axis rotations X then Y then Z,
	// which for column-vector multiplication is M = Rx * Ry * Rz.
	rx := mgl32.HomogRotate3DX(e.X).Mat3()
	ry := mgl32.HomogRotate3DY(e.Y).Mat3()
	rz := mgl32.HomogRotate3DZ(e.Z).Mat3()
	m := rx.Mul3(ry).Mul3(rz)
	return Rotation{M: m, Inv: m.Transpose()}
}

// ToLocal rotates a world-space vector into the box's local frame.
func (r Rotation) ToLocal(v mgl32.Vec3) mgl32.Vec3 {
	if r.Ident {
		return v
	}
	return r.Inv.Mul3x1(v)
}

// ToWorld rotates a local-space vector back into world space.
func (r Rotation) ToWorld(v mgl32.Vec3) mgl32.Vec3 {
	if r.Ident {
		return v
	}
	return r.M.Mul3x1(v)
}

func isFinite32(x float32) bool {
	return x == x && x > -3.4e38 && x < 3.4e38
}

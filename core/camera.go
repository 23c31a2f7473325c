package core

import "github.com/go-gl/mathgl/mgl32"

// Camera is an orthographic camera — the only projection spec.md
// supports. Width/Height are in world units and set the extent of the
// image plane. Generalizes the teacher's CameraState (core/camera.go),
// which models a free-flying perspective camera with yaw/pitch state;
// this spec's camera is a static position/lookAt/up triple with no
// perspective field of view at all.
type Camera struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
	Up       mgl32.Vec3
	Width    float32
	Height   float32

	// Near/Far bound the frustum depth used for shadow-caster expansion
	// (spec.md §4.1 step 3); zero values are defaulted by the compiler.
	Near float32
	Far  float32
}

// Basis is the camera's derived orthonormal frame: Forward = normalize
// (lookAt - position); Right = normalize(up x forward); Up' = forward x
// right. A degenerate input (zero-length forward, or up parallel to
// forward) falls back to the identity basis per spec.md §7
// ("degenerate basis is replaced by an identity basis").
type Basis struct {
	Forward, Right, Up mgl32.Vec3
}

// ComputeBasis derives the camera's orthonormal basis.
func (c Camera) ComputeBasis() Basis {
	fwd := c.LookAt.Sub(c.Position)
	if fwd.Len() < 1e-8 {
		return Basis{Forward: mgl32.Vec3{0, 0, 1}, Right: mgl32.Vec3{1, 0, 0}, Up: mgl32.Vec3{0, 1, 0}}
	}
	fwd = fwd.Normalize()

	right := c.Up.Cross(fwd)
	if right.Len() < 1e-8 {
		// up is parallel to forward: the basis is degenerate.
		return Basis{Forward: mgl32.Vec3{0, 0, 1}, Right: mgl32.Vec3{1, 0, 0}, Up: mgl32.Vec3{0, 1, 0}}
	}
	right = right.Normalize()
	up := fwd.Cross(right).Normalize()

	return Basis{Forward: fwd, Right: right, Up: up}
}

// FrustumAABB returns the world-space AABB of the orthographic viewing
// volume from near to far along Forward, per spec.md §4.1 step 3.
func (c Camera) FrustumAABB(basis Basis, near, far float32) AABB {
	hw, hh := c.Width/2, c.Height/2
	box := EmptyAABB()
	for _, d := range [2]float32{near, far} {
		center := c.Position.Add(basis.Forward.Mul(d))
		for _, su := range [2]float32{-1, 1} {
			for _, sv := range [2]float32{-1, 1} {
				p := center.Add(basis.Right.Mul(su * hw)).Add(basis.Up.Mul(sv * hh))
				box = box.Union(AABB{Min: p, Max: p})
			}
		}
	}
	return box
}

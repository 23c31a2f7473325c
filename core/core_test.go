package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewPrimitiveDefaultsAbsentAlphaAndIOR(t *testing.T) {
	p := NewPrimitive(NewSphere(mgl32.Vec3{0, 0, 0}, 1), mgl32.Vec3{1, 0, 0}, nil, nil)
	if p.Alpha != 1 {
		t.Errorf("expected absent alpha to default to 1, got %v", p.Alpha)
	}
	if p.IOR != 1 {
		t.Errorf("expected absent ior to default to 1, got %v", p.IOR)
	}
}

func TestNewPrimitivePreservesExplicitZeroAlpha(t *testing.T) {
	zero := float32(0)
	p := NewPrimitive(NewSphere(mgl32.Vec3{0, 0, 0}, 1), mgl32.Vec3{1, 0, 0}, &zero, nil)
	if p.Alpha != 0 {
		t.Errorf("expected an explicit alpha=0 to be preserved (not confused with absent), got %v", p.Alpha)
	}
}

func TestBoxAABBAxisAligned(t *testing.T) {
	g := NewBox(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{2, 4, 6}, IdentityRotation(), 0)
	box := g.AABB()
	want := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{2, 4, 6}}
	if !closeEnoughVec3(box.Min, want.Min) || !closeEnoughVec3(box.Max, want.Max) {
		t.Errorf("expected axis-aligned box AABB %+v, got %+v", want, box)
	}
}

func TestInfinitePlaneAABBIsUnbounded(t *testing.T) {
	g := NewPlane(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}, -1, -1)
	if !g.AABB().Unbounded {
		t.Error("expected an infinite plane's AABB to be Unbounded")
	}
}

func TestRotationToLocalToWorldRoundTrips(t *testing.T) {
	r := NewRotation(EulerXYZ{X: 0.3, Y: 0.5, Z: -0.2})
	v := mgl32.Vec3{1, 2, 3}
	local := r.ToLocal(v)
	back := r.ToWorld(local)
	if !closeEnoughVec3(back, v) {
		t.Errorf("expected ToWorld(ToLocal(v)) == v, got %+v (want %+v)", back, v)
	}
}

func TestRotationDegenerateAnglesFallBackToIdentity(t *testing.T) {
	nan := float32(0)
	nan /= nan
	r := NewRotation(EulerXYZ{X: nan, Y: 0, Z: 0})
	if !r.Ident {
		t.Error("expected a non-finite Euler angle to fall back to the identity rotation")
	}
}

func closeEnoughVec3(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 1e-4
}

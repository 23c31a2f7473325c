package core

import "github.com/go-gl/mathgl/mgl32"

// Primitive is a renderable scene object: geometry plus the material
// fields the shader needs. Color is linear RGB in [0,1]^3. Alpha is in
// [0,1] (0 = fully transparent, pruned by the compiler). IOR is >= 1 (air
// = 1). Generalizes the teacher's GPU-packed Material (core/material.go)
// from a voxel-palette entry to a per-object material, since this spec
// has one material per primitive rather than a shared palette.
type Primitive struct {
	Geometry Geometry
	Color    mgl32.Vec3
	Alpha    float32
	IOR      float32
}

// NewPrimitive builds a Primitive from optional alpha/ior, applying
// spec.md §3's "absent alpha defaults to 1; absent ior defaults to 1"
// rule. A plain float32 zero value is indistinguishable from an explicit
// alpha=0 (fully transparent, pruned by the compiler), so every
// scene-construction boundary that doesn't always specify both fields
// explicitly should build primitives through here rather than a literal.
func NewPrimitive(geometry Geometry, color mgl32.Vec3, alpha, ior *float32) Primitive {
	return Primitive{
		Geometry: geometry,
		Color:    color,
		Alpha:    ResolveAlpha(alpha),
		IOR:      ResolveIOR(ior),
	}
}

// ResolveAlpha applies spec's "absent alpha defaults to 1" rule. Callers at
// the scene-construction boundary (e.g. the adapter package) hold alpha as
// an optional *float32 so an explicit 0 (fully transparent) is never
// confused with "not specified".
func ResolveAlpha(alpha *float32) float32 {
	if alpha == nil {
		return 1
	}
	return *alpha
}

// ResolveIOR applies spec's "absent ior defaults to 1" rule.
func ResolveIOR(ior *float32) float32 {
	if ior == nil {
		return 1
	}
	return *ior
}

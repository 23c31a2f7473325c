// Package core holds the engine's math primitives and scene data model:
// rays, AABBs, geometry/material/light/camera variants, and the Scene and
// RenderScene aggregates that flow between the compiler and the tracer.
package core

import "github.com/go-gl/mathgl/mgl32"

// Ray is a half-line in world space: points o + t*d for t >= 0.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point along the ray at parameter t.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// SafeInverse returns 1/x, or a large finite number with x's sign (or
// positive if x is exactly zero) instead of +-Inf/NaN when x is ~0. Used by
// slab tests and DDA stepping so a zero ray-direction component never
// propagates a NaN through an intersection.
func SafeInverse(x float32) float32 {
	const epsilon = 1e-8
	const huge = 1e30
	if x > epsilon || x < -epsilon {
		return 1.0 / x
	}
	if x < 0 {
		return -huge
	}
	return huge
}

package core

import "github.com/go-gl/mathgl/mgl32"

// RenderScene is the compiler's output: primitives partitioned by
// geometry kind, lights separated into one ambient + a directional list,
// background/shadow-blur defaulted, and an optional Accelerator built
// over the Boxes array (bvh or grid, selected by the compiler). It is
// derived fresh, and cheaply, on every compiler.Compile call — spec.md
// §3: "derived and short-lived per render call".
type RenderScene struct {
	Planes   []Primitive
	Boxes    []Primitive
	Capsules []Primitive
	Spheres  []Primitive

	Ambient     Light
	Directional []Light

	Background mgl32.Vec3
	ShadowBlur float32

	Accelerator Accelerator // nil when the box count doesn't meet the threshold
}

// ByKind returns the primitive slice for a given geometry kind.
func (rs *RenderScene) ByKind(kind GeometryKind) []Primitive {
	switch kind {
	case GeometryPlane:
		return rs.Planes
	case GeometryBox:
		return rs.Boxes
	case GeometryCapsule:
		return rs.Capsules
	case GeometrySphere:
		return rs.Spheres
	default:
		return nil
	}
}

// AllPrimitives concatenates every partition, for callers (e.g. a linear-
// scan fallback, or tests) that want the full object list regardless of
// kind.
func (rs *RenderScene) AllPrimitives() []Primitive {
	out := make([]Primitive, 0, len(rs.Planes)+len(rs.Boxes)+len(rs.Capsules)+len(rs.Spheres))
	out = append(out, rs.Planes...)
	out = append(out, rs.Boxes...)
	out = append(out, rs.Capsules...)
	out = append(out, rs.Spheres...)
	return out
}

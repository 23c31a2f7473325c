package core

import "github.com/go-gl/mathgl/mgl32"

// Scene is the immutable-per-render input to the compiler: the raw
// primitive/light list before partitioning, culling, or acceleration.
// Generalizes the teacher's Scene (core/scene.go), which holds a flat
// []*VoxelObject plus a committed BVH byte blob — this spec's Scene
// carries heterogeneous 2D-rect-derived primitives instead of voxel
// objects, and defers acceleration entirely to the compiler.
type Scene struct {
	Objects         []Primitive
	Lights          []Light
	BackgroundColor *mgl32.Vec3 // nil = compiler default
	ShadowBlur      float32
}

// DefaultBackgroundColor is the "dark navy" spec.md §4.1 step 5 defaults
// to when a scene specifies none.
func DefaultBackgroundColor() mgl32.Vec3 {
	return mgl32.Vec3{0.03, 0.04, 0.08}
}

package core

import "github.com/go-gl/mathgl/mgl32"

// LightKind tags the variant held by a Light value.
type LightKind int

const (
	LightAmbient LightKind = iota
	LightDirectional
)

// Light is a tagged union of the two supported light variants. Direction
// points toward where the light travels (i.e. from the light, through the
// scene) per spec.md §3. Generalizes the teacher's GPU-packed Light
// (core/light.go, a flat [4]float32 x 4 struct meant for a uniform buffer)
// into a CPU-side tagged struct — this engine's shading runs on the CPU,
// so there is no GPU buffer layout to preserve here.
type Light struct {
	Kind      LightKind
	Color     mgl32.Vec3
	Intensity float32
	Direction mgl32.Vec3 // Directional only; unit length
}

// NewAmbientLight constructs an ambient light.
func NewAmbientLight(color mgl32.Vec3, intensity float32) Light {
	return Light{Kind: LightAmbient, Color: color, Intensity: intensity}
}

// NewDirectionalLight constructs a directional light; direction is
// normalized (or defaulted to -Y, i.e. "down", if degenerate).
func NewDirectionalLight(direction, color mgl32.Vec3, intensity float32) Light {
	d := direction
	if l := d.Len(); l > 1e-8 {
		d = d.Mul(1 / l)
	} else {
		d = mgl32.Vec3{0, -1, 0}
	}
	return Light{Kind: LightDirectional, Direction: d, Color: color, Intensity: intensity}
}

// DefaultAmbientLight is substituted by the compiler when a scene carries
// no ambient light: "white-1.0" per spec.md §3.
func DefaultAmbientLight() Light {
	return NewAmbientLight(mgl32.Vec3{1, 1, 1}, 1.0)
}

// Package shade implements spec.md §4.4's render_pixel contract:
// orthographic ray generation, ambient + directional shading with 3x3 PCF
// soft shadows, and a bounded transparency/refraction transport loop.
// Grounded on nthery-goraytracer's shadow-then-shade pixel pattern
// (castRay, then a shadow ray toward the light before computing color) and
// df07-go-progressive-raytracer's gamma-correct-then-clamp output step
// (both in other_examples), generalized from their per-sample/per-bounce
// path-tracing loops to this spec's deterministic, non-stochastic
// transport loop.
package shade

import (
	"github.com/domscene/pagetrace/core"
	"github.com/go-gl/mathgl/mgl32"
)

// PrimaryRay builds the orthographic ray for image-plane coordinates
// (u, v) in [0, 1]^2, per spec.md §4.4: sampled at pixel centers, v
// flipped so row 0 is the top of the image.
func PrimaryRay(cam *core.Camera, basis core.Basis, u, v float32) core.Ray {
	origin := cam.Position.
		Add(basis.Right.Mul((u - 0.5) * cam.Width)).
		Add(basis.Up.Mul((0.5 - v) * cam.Height))
	return core.Ray{Origin: origin, Direction: basis.Forward}
}

// linearize converts an sRGB color to linear RGB via x^2.2 (the inverse of
// the gamma encode applied to final output), component-wise.
func linearize(c mgl32.Vec3, gamma float32) mgl32.Vec3 {
	return mgl32.Vec3{powf(c.X(), gamma), powf(c.Y(), gamma), powf(c.Z(), gamma)}
}

// gammaEncode converts linear RGB to sRGB via x^(1/gamma), per spec.md
// §4.4's final output step.
func gammaEncode(c mgl32.Vec3, gamma float32) mgl32.Vec3 {
	inv := 1 / gamma
	return mgl32.Vec3{powf(clamp01(c.X()), inv), powf(clamp01(c.Y()), inv), powf(clamp01(c.Z()), inv)}
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

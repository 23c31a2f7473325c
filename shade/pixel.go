package shade

import (
	"github.com/domscene/pagetrace/config"
	"github.com/domscene/pagetrace/core"
	"github.com/domscene/pagetrace/intersect"
	"github.com/go-gl/mathgl/mgl32"
)

// surfaceColor computes ambient + directional shading at a hit, in linear
// RGB, per spec.md §4.4 steps 1-2.
func surfaceColor(rs *core.RenderScene, hit intersect.Hit, hitPoint mgl32.Vec3, cfg config.Config) mgl32.Vec3 {
	c := mulElem(hit.Color, rs.Ambient.Color).Mul(rs.Ambient.Intensity)

	for _, l := range rs.Directional {
		ndotl := hit.Normal.Dot(l.Direction.Mul(-1))
		if ndotl <= 0 {
			continue
		}
		v := visibility(rs, hitPoint, hit.Normal, l.Direction.Mul(-1), rs.ShadowBlur, cfg)
		if v <= 0 {
			continue
		}
		contribution := mulElem(hit.Color, l.Color).Mul(l.Intensity * ndotl * v)
		c = c.Add(contribution)
	}
	return c
}

// RenderPixel implements spec.md §4.4's render_pixel(u, v) -> color
// contract in full: orthographic ray generation, the bounded transparency/
// refraction transport loop, and gamma-encoded sRGB output.
func RenderPixel(rs *core.RenderScene, cam *core.Camera, basis core.Basis, cfg config.Config, u, v float32) mgl32.Vec3 {
	ray := PrimaryRay(cam, basis, u, v)

	accum := mgl32.Vec3{0, 0, 0}
	transmittance := float32(1)
	currentIOR := float32(1)
	maxBounces := cfg.MaxBounces
	if maxBounces < 1 {
		maxBounces = 1
	}

	for bounce := 0; bounce < maxBounces; bounce++ {
		hit, ok := traceNearest(rs, ray, 1e-4, 1e30, bounce == 0, cfg)
		if !ok {
			accum = accum.Add(linearize(rs.Background, cfg.Gamma).Mul(transmittance))
			break
		}

		hitPoint := ray.At(hit.T)
		s := surfaceColor(rs, hit, hitPoint, cfg)

		if hit.Alpha >= 1 {
			accum = accum.Add(s.Mul(transmittance))
			break
		}

		accum = accum.Add(s.Mul(transmittance * hit.Alpha))
		transmittance *= 1 - hit.Alpha
		if transmittance < 0.01 {
			break
		}

		cosI := -ray.Direction.Dot(hit.Normal)
		refractNormal := hit.Normal
		entering := cosI > 0
		eta := currentIOR / hit.IOR
		if !entering {
			cosI = -cosI
			refractNormal = hit.Normal.Mul(-1)
			eta = hit.IOR / currentIOR
		}

		k := 1 - eta*eta*(1-cosI*cosI)
		var nextDir mgl32.Vec3
		if k < 0 {
			nextDir = reflect(ray.Direction, refractNormal)
		} else {
			nextDir = ray.Direction.Mul(eta).Add(refractNormal.Mul(eta*cosI - sqrtf(k)))
			if entering {
				currentIOR = hit.IOR
			} else {
				currentIOR = 1
			}
		}

		ray = core.Ray{Origin: hitPoint.Add(nextDir.Mul(cfg.SelfShadowOffset)), Direction: nextDir}
	}

	return gammaEncode(accum, cfg.Gamma)
}

// reflect mirrors d about the plane with normal n (used for total internal
// reflection, per spec.md §4.4).
func reflect(d, n mgl32.Vec3) mgl32.Vec3 {
	return d.Sub(n.Mul(2 * d.Dot(n)))
}

// mulElem is a component-wise (Hadamard) product, used throughout shading
// to combine a surface color with a light color.
func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

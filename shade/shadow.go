package shade

import (
	"github.com/domscene/pagetrace/config"
	"github.com/domscene/pagetrace/core"
	"github.com/go-gl/mathgl/mgl32"
)

// visibility implements spec.md §4.4's shadow visibility rule: a hard
// binary test when shadow_blur <= 0, else a 3x3 percentage-closer-filter
// over offset origins on the plane perpendicular to the light direction.
func visibility(rs *core.RenderScene, p, normal, lightDir mgl32.Vec3, shadowBlur float32, cfg config.Config) float32 {
	origin := p.Add(normal.Mul(cfg.SelfShadowOffset))

	if shadowBlur <= 0 {
		ray := core.Ray{Origin: origin, Direction: lightDir}
		if traceAnyHit(rs, ray, 1e-4, cfg.ShadowDistance, cfg) {
			return 0
		}
		return 1
	}

	u, v := core.PlaneBasis(lightDir)
	n := cfg.PCFSamples
	if n < 1 {
		n = 3
	}
	offsets := pcfOffsets(n)
	taps := 0
	hits := 0
	for _, du := range offsets {
		for _, dv := range offsets {
			o := origin.Add(u.Mul(du * shadowBlur)).Add(v.Mul(dv * shadowBlur))
			ray := core.Ray{Origin: o, Direction: lightDir}
			taps++
			if traceAnyHit(rs, ray, 1e-4, cfg.ShadowDistance, cfg) {
				hits++
			}
		}
	}
	return 1 - float32(hits)/float32(taps)
}

// pcfOffsets returns n evenly spaced displacements centered on zero with
// unit spacing — for n=3 (spec.md's default) this is {-1, 0, 1}.
func pcfOffsets(n int) []float32 {
	out := make([]float32, n)
	start := -float32(n-1) / 2
	for i := range out {
		out[i] = start + float32(i)
	}
	return out
}

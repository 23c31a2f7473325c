package shade

import (
	"github.com/domscene/pagetrace/config"
	"github.com/domscene/pagetrace/core"
	"github.com/domscene/pagetrace/intersect"
)

// traceNearest finds the closest hit among every primitive kind in rs. Box
// primitives go through rs.Accelerator when present (BVH or grid, built by
// the compiler); every other kind is linear-scanned, matching spec.md
// §4.2's "or linear scan fallback" and the expectation that boxes (DOM
// rectangles) dominate object count while planes/capsules/spheres stay few.
func traceNearest(rs *core.RenderScene, ray core.Ray, tMin, tMax float32, primaryRay bool, cfg config.Config) (intersect.Hit, bool) {
	var best intersect.Hit
	found := false
	consider := func(h intersect.Hit, ok bool) {
		if ok && h.T >= tMin && h.T <= tMax && (!found || h.T < best.T) {
			best = h
			found = true
		}
	}

	for _, p := range rs.Planes {
		consider(intersect.Test(ray, p, cfg.RayMarchMaxSteps, cfg.RayMarchMinDist))
	}
	for _, p := range rs.Capsules {
		consider(intersect.Test(ray, p, cfg.RayMarchMaxSteps, cfg.RayMarchMinDist))
	}
	for _, p := range rs.Spheres {
		consider(intersect.Test(ray, p, cfg.RayMarchMaxSteps, cfg.RayMarchMinDist))
	}

	if rs.Accelerator != nil {
		for _, c := range rs.Accelerator.Candidates(ray, tMin, tMax, primaryRay) {
			// Candidates are near-first for primary rays: once a confirmed
			// hit is closer than the next candidate's AABB entry, nothing
			// further can beat it (spec.md §4.2's "skip if aabb_t > best_t").
			if primaryRay && found && c.AABBNear > best.T {
				break
			}
			if c.Index < 0 || c.Index >= len(rs.Boxes) {
				continue
			}
			consider(intersect.Test(ray, rs.Boxes[c.Index], cfg.RayMarchMaxSteps, cfg.RayMarchMinDist))
		}
	} else {
		for _, p := range rs.Boxes {
			consider(intersect.Test(ray, p, cfg.RayMarchMaxSteps, cfg.RayMarchMinDist))
		}
	}

	return best, found
}

// traceAnyHit reports whether any primitive blocks the ray within
// (tMin, tMax), used for shadow visibility where only occlusion, not the
// nearest surface, matters.
func traceAnyHit(rs *core.RenderScene, ray core.Ray, tMin, tMax float32, cfg config.Config) bool {
	for _, p := range rs.Planes {
		if h, ok := intersect.Test(ray, p, cfg.RayMarchMaxSteps, cfg.RayMarchMinDist); ok && h.T >= tMin && h.T <= tMax {
			return true
		}
	}
	for _, p := range rs.Capsules {
		if h, ok := intersect.Test(ray, p, cfg.RayMarchMaxSteps, cfg.RayMarchMinDist); ok && h.T >= tMin && h.T <= tMax {
			return true
		}
	}
	for _, p := range rs.Spheres {
		if h, ok := intersect.Test(ray, p, cfg.RayMarchMaxSteps, cfg.RayMarchMinDist); ok && h.T >= tMin && h.T <= tMax {
			return true
		}
	}
	if rs.Accelerator != nil {
		for _, c := range rs.Accelerator.Candidates(ray, tMin, tMax, false) {
			if c.Index < 0 || c.Index >= len(rs.Boxes) {
				continue
			}
			if h, ok := intersect.Test(ray, rs.Boxes[c.Index], cfg.RayMarchMaxSteps, cfg.RayMarchMinDist); ok && h.T >= tMin && h.T <= tMax {
				return true
			}
		}
	} else {
		for _, p := range rs.Boxes {
			if h, ok := intersect.Test(ray, p, cfg.RayMarchMaxSteps, cfg.RayMarchMinDist); ok && h.T >= tMin && h.T <= tMax {
				return true
			}
		}
	}
	return false
}

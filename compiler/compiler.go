// Package compiler implements spec.md §4.1's scene compiler: a pure
// function from a core.Scene (+ optional camera) to a core.RenderScene
// ready for tracing — light defaulting, alpha=0 pruning, frustum culling
// with a per-light shadow-caster margin, and accelerator selection.
// Grounded on the teacher's AABBInFrustum culling helper
// (voxelrt/rt/core/scene.go), generalized from a single static frustum
// test into the full compile pipeline spec.md §4.1 describes.
package compiler

import (
	"github.com/domscene/pagetrace/bvh"
	"github.com/domscene/pagetrace/config"
	"github.com/domscene/pagetrace/core"
	"github.com/domscene/pagetrace/enginelog"
	"github.com/domscene/pagetrace/grid"
)

const (
	defaultNear = 0
	defaultFar  = 1e4
)

// Compile implements spec.md §4.1's five steps in order. It never errors;
// malformed primitives are skipped rather than rejected. log may be
// enginelog.Nop() if the caller doesn't want compile-time diagnostics.
func Compile(scene core.Scene, camera *core.Camera, cfg config.Config, log enginelog.Logger) core.RenderScene {
	ambient, directional := splitLights(scene.Lights)

	planes, boxes, capsules, spheres := partition(scene.Objects)
	log.Debugf("compiler: partitioned %d objects -> planes=%d boxes=%d capsules=%d spheres=%d",
		len(scene.Objects), len(planes), len(boxes), len(capsules), len(spheres))

	if camera != nil {
		frustum := expandedFrustum(*camera, directional, cfg)
		before := len(planes) + len(boxes) + len(capsules) + len(spheres)
		planes = cullTo(planes, frustum)
		boxes = cullTo(boxes, frustum)
		capsules = cullTo(capsules, frustum)
		spheres = cullTo(spheres, frustum)
		after := len(planes) + len(boxes) + len(capsules) + len(spheres)
		log.Debugf("compiler: frustum culling kept %d/%d primitives", after, before)
	}

	var accel core.Accelerator
	if len(boxes) >= cfg.GridMinBoxes {
		aabbs := make([]core.AABB, len(boxes))
		axisAligned := true
		for i, p := range boxes {
			aabbs[i] = p.Geometry.AABB()
			if !p.Geometry.BoxRot.Ident {
				axisAligned = false
			}
		}
		if axisAligned {
			log.Debugf("compiler: building grid accelerator over %d axis-aligned boxes", len(boxes))
			accel = grid.Build(aabbs)
		} else {
			log.Debugf("compiler: building bvh accelerator over %d boxes", len(boxes))
			accel = bvh.Build(aabbs)
		}
	}

	background := core.DefaultBackgroundColor()
	if scene.BackgroundColor != nil {
		background = *scene.BackgroundColor
	}

	return core.RenderScene{
		Planes:      planes,
		Boxes:       boxes,
		Capsules:    capsules,
		Spheres:     spheres,
		Ambient:     ambient,
		Directional: directional,
		Background:  background,
		ShadowBlur:  scene.ShadowBlur,
		Accelerator: accel,
	}
}

// splitLights implements step 1: one ambient plus a directional list,
// substituting defaults when the corresponding kind is absent.
func splitLights(lights []core.Light) (core.Light, []core.Light) {
	ambient := core.DefaultAmbientLight()
	haveAmbient := false
	var directional []core.Light
	for _, l := range lights {
		switch l.Kind {
		case core.LightAmbient:
			if !haveAmbient {
				ambient = l
				haveAmbient = true
			}
		case core.LightDirectional:
			directional = append(directional, l)
		}
	}
	return ambient, directional
}

// partition implements step 2: split by geometry kind, dropping alpha=0
// primitives (fully transparent, never contributes to the image).
func partition(objects []core.Primitive) (planes, boxes, capsules, spheres []core.Primitive) {
	for _, p := range objects {
		if p.Alpha == 0 {
			continue
		}
		switch p.Geometry.Kind {
		case core.GeometryPlane:
			planes = append(planes, p)
		case core.GeometryBox:
			boxes = append(boxes, p)
		case core.GeometryCapsule:
			capsules = append(capsules, p)
		case core.GeometrySphere:
			spheres = append(spheres, p)
		}
	}
	return
}

// expandedFrustum implements step 3's frustum computation: the AABB of the
// orthographic viewing volume from near to far, unioned with the same
// volume translated by -light_direction*shadow_distance for every
// directional light (a shadow caster standing just outside the view
// frustum can still cast a visible shadow inside it).
func expandedFrustum(cam core.Camera, directional []core.Light, cfg config.Config) core.AABB {
	near, far := cam.Near, cam.Far
	if near == 0 {
		near = defaultNear
	}
	if far == 0 {
		far = defaultFar
	}

	basis := cam.ComputeBasis()
	frustum := cam.FrustumAABB(basis, near, far)

	shadowDistance := cfg.ShadowDistance
	if shadowDistance == 0 {
		shadowDistance = 1000
	}
	for _, l := range directional {
		offset := l.Direction.Mul(-shadowDistance)
		frustum = frustum.Union(frustum.Translated(offset))
	}
	return frustum
}

// cullTo implements step 3's per-type cull: keep primitives whose AABB
// intersects frustum; unbounded primitives (infinite planes) always
// survive.
func cullTo(primitives []core.Primitive, frustum core.AABB) []core.Primitive {
	kept := primitives[:0:0]
	for _, p := range primitives {
		aabb := p.Geometry.AABB()
		if aabb.Unbounded || aabb.Intersects(frustum) {
			kept = append(kept, p)
		}
	}
	return kept
}

package adapter

import (
	"github.com/domscene/pagetrace/core"
	"github.com/go-gl/mathgl/mgl32"
)

// worldPoint maps a viewport-space point (px, py) at the given depth into
// world space, per spec.md §6: wx = px - vw/2, wy = -(py - vh/2),
// wz = (maxDepth - depth) * 2.
func worldPoint(px, py float32, depth, maxDepth uint32, viewportW, viewportH float32) mgl32.Vec3 {
	wx := px - viewportW/2
	wy := -(py - viewportH/2)
	wz := float32(int64(maxDepth)-int64(depth)) * depthStep
	return mgl32.Vec3{wx, wy, wz}
}

// ToPrimitive converts one ParsedElement into a box primitive. The
// element's (x, y, width, height) rectangle is centered at
// (x+width/2, y+height/2) in viewport space before the coordinate mapping
// is applied, so the resulting box is centered on the element's screen
// footprint rather than its top-left corner.
func ToPrimitive(el ParsedElement, maxDepth uint32, viewportW, viewportH float32) core.Primitive {
	centerX := el.X + el.Width/2
	centerY := el.Y + el.Height/2
	center := worldPoint(centerX, centerY, el.Depth, maxDepth, viewportW, viewportH)

	radius := float32(0)
	if el.BorderRadius != nil {
		radius = *el.BorderRadius
	}

	size := mgl32.Vec3{el.Width, el.Height, boxThickness}
	geom := core.NewBox(center, size, core.IdentityRotation(), radius)

	// ParsedElement carries no alpha/ior of its own; every DOM-derived
	// box is fully opaque at ior=1, so both resolve to their spec.md §3
	// defaults via a nil optional.
	return core.NewPrimitive(geom, el.BackgroundColor, nil, nil)
}

// BackgroundPlane builds the single infinite plane spec.md §6 places
// behind every element, facing the camera at (0,0,-10) looking toward
// +z: wz = (maxDepth + 2) * 2, normal pointing back toward the camera
// (-z).
func BackgroundPlane(maxDepth uint32, color mgl32.Vec3) core.Primitive {
	wz := (float32(maxDepth) + 2) * depthStep
	geom := core.NewPlane(mgl32.Vec3{0, 0, wz}, mgl32.Vec3{0, 0, -1}, -1, -1)
	return core.NewPrimitive(geom, color, nil, nil)
}

// BuildScene converts a full parsed element tree (already flattened by
// the out-of-scope DOM walker) plus a background color into a
// core.Scene, applying ToPrimitive/BackgroundPlane to every element.
// maxDepth is the deepest element's Depth value; callers with an empty
// tree should pass 0.
func BuildScene(elements []ParsedElement, maxDepth uint32, backgroundColor mgl32.Vec3, viewportW, viewportH float32) core.Scene {
	objects := make([]core.Primitive, 0, len(elements)+1)
	for _, el := range elements {
		objects = append(objects, ToPrimitive(el, maxDepth, viewportW, viewportH))
	}
	objects = append(objects, BackgroundPlane(maxDepth, backgroundColor))

	return core.Scene{
		Objects:         objects,
		BackgroundColor: &backgroundColor,
	}
}

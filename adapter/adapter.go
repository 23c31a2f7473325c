// Package adapter converts DOM-derived layout rectangles into the
// core.Scene this engine renders, implementing spec.md §6's exact
// viewport-to-world coordinate mapping. Grounded directly on spec.md §6
// (the formulas are fully specified there; the DOM-tree-walking parser
// that produces ParsedElement values is explicitly out of this engine's
// scope).
package adapter

import (
	"github.com/domscene/pagetrace/core"
	"github.com/go-gl/mathgl/mgl32"
)

// ParsedElement is one layout rectangle as handed to the adapter by the
// (out-of-scope) DOM parser, per spec.md §6.
type ParsedElement struct {
	X, Y            float32
	Width, Height   float32
	BackgroundColor mgl32.Vec3
	Depth           uint32
	BorderRadius    *float32 // nil = sharp corners
}

// depthStep is the world-space z distance one unit of Depth maps to, per
// spec.md §6's "wz = (max_depth - depth) * 2".
const depthStep = 2

// boxThickness is the world-space z extent given to every element box.
// spec.md leaves this undocumented; a thin slab one depthStep deep keeps
// adjacent depth layers from visually interpenetrating, which is the only
// constraint spec.md's depth-stacking intent implies (see DESIGN.md).
const boxThickness = depthStep

// CameraPosition, CameraLookAt and CameraUp are spec.md §6's fixed camera
// placement: "(0,0,-10) looking toward +z, up (0,1,0)".
var (
	CameraPosition = mgl32.Vec3{0, 0, -10}
	CameraLookAt   = mgl32.Vec3{0, 0, 1}
	CameraUp       = mgl32.Vec3{0, 1, 0}
)

// Camera builds the fixed camera spec.md §6 mandates, sized to the
// viewport.
func Camera(viewportW, viewportH float32) core.Camera {
	return core.Camera{
		Position: CameraPosition,
		LookAt:   CameraLookAt,
		Up:       CameraUp,
		Width:    viewportW,
		Height:   viewportH,
	}
}

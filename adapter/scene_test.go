package adapter

import (
	"testing"

	"github.com/domscene/pagetrace/core"
	"github.com/go-gl/mathgl/mgl32"
)

func closeEnough(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestWorldPointMapsOriginToCenteredWorldOrigin(t *testing.T) {
	// px = vw/2, py = vh/2 is the viewport's own center, which must map to
	// world (0, 0, ...) per spec.md §6's formulas.
	p := worldPoint(400, 300, 0, 0, 800, 600)
	if !closeEnough(p.X(), 0, 1e-5) || !closeEnough(p.Y(), 0, 1e-5) {
		t.Fatalf("expected viewport center to map to world x=0,y=0, got %+v", p)
	}
}

func TestWorldPointFlipsYAxis(t *testing.T) {
	// A point below the viewport's vertical center (larger py) must map to
	// a negative world y: wy = -(py - vh/2).
	p := worldPoint(0, 600, 0, 0, 800, 600)
	if p.Y() >= 0 {
		t.Fatalf("expected a below-center viewport point to map to negative world y, got %v", p.Y())
	}
}

func TestWorldPointDepthOrdering(t *testing.T) {
	// A shallower element (smaller depth) must land at a larger wz than a
	// deeper one, since wz = (maxDepth - depth) * 2: deeper elements sit
	// nearer the camera at z=-10, which looks toward +z.
	shallow := worldPoint(0, 0, 1, 5, 100, 100)
	deep := worldPoint(0, 0, 4, 5, 100, 100)
	if shallow.Z() <= deep.Z() {
		t.Fatalf("expected shallower depth to map to larger wz: shallow=%v deep=%v", shallow.Z(), deep.Z())
	}
}

func TestToPrimitiveCentersBoxOnElementFootprint(t *testing.T) {
	el := ParsedElement{
		X: 100, Y: 100, Width: 200, Height: 50,
		BackgroundColor: mgl32.Vec3{1, 0, 0},
		Depth:           0,
	}
	p := ToPrimitive(el, 0, 800, 600)

	wantCenter := worldPoint(200, 125, 0, 0, 800, 600) // (100+200/2, 100+50/2)
	got := p.Geometry.BoxCenter
	if !closeEnough(got.X(), wantCenter.X(), 1e-4) || !closeEnough(got.Y(), wantCenter.Y(), 1e-4) {
		t.Fatalf("expected box centered at %+v, got %+v", wantCenter, got)
	}
	if p.Geometry.BoxSize.X() != el.Width || p.Geometry.BoxSize.Y() != el.Height {
		t.Fatalf("expected box size to match element footprint, got %+v", p.Geometry.BoxSize)
	}
}

func TestToPrimitiveAppliesBorderRadius(t *testing.T) {
	radius := float32(8)
	el := ParsedElement{Width: 100, Height: 100, BorderRadius: &radius}
	p := ToPrimitive(el, 0, 800, 600)
	if p.Geometry.BoxRadius != radius {
		t.Fatalf("expected border radius to carry through as box corner radius, got %v", p.Geometry.BoxRadius)
	}
}

func TestToPrimitiveDefaultsSharpCorners(t *testing.T) {
	el := ParsedElement{Width: 100, Height: 100}
	p := ToPrimitive(el, 0, 800, 600)
	if p.Geometry.BoxRadius != 0 {
		t.Fatalf("expected nil BorderRadius to default to sharp corners, got radius=%v", p.Geometry.BoxRadius)
	}
}

func TestBackgroundPlaneFacesCamera(t *testing.T) {
	p := BackgroundPlane(5, mgl32.Vec3{0.1, 0.1, 0.1})
	if p.Geometry.PlaneNormal.Z() >= 0 {
		t.Fatalf("expected background plane normal to face back toward -z (the camera), got %+v", p.Geometry.PlaneNormal)
	}
	wantZ := (float32(5) + 2) * depthStep
	if !closeEnough(p.Geometry.PlanePoint.Z(), wantZ, 1e-5) {
		t.Fatalf("expected background plane at wz=%v, got %v", wantZ, p.Geometry.PlanePoint.Z())
	}
}

func TestBuildSceneAppendsOneBackgroundPlaneAfterElements(t *testing.T) {
	elements := []ParsedElement{
		{X: 0, Y: 0, Width: 10, Height: 10, Depth: 0},
		{X: 20, Y: 20, Width: 30, Height: 30, Depth: 1},
	}
	scene := BuildScene(elements, 1, mgl32.Vec3{0.02, 0.02, 0.05}, 800, 600)
	if len(scene.Objects) != len(elements)+1 {
		t.Fatalf("expected %d objects (elements + background plane), got %d", len(elements)+1, len(scene.Objects))
	}
	last := scene.Objects[len(scene.Objects)-1]
	if last.Geometry.Kind != core.GeometryPlane {
		t.Fatalf("expected the final scene object to be the background plane, got kind %v", last.Geometry.Kind)
	}
}

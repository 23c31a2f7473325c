package shade

import (
	"testing"

	"github.com/domscene/pagetrace/config"
	"github.com/domscene/pagetrace/core"
	"github.com/go-gl/mathgl/mgl32"
)

func testCamera() (*core.Camera, core.Basis) {
	cam := &core.Camera{
		Position: mgl32.Vec3{0, 0, -10},
		LookAt:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		Width:    10,
		Height:   10,
	}
	return cam, cam.ComputeBasis()
}

func TestRenderPixelHitsOpaqueSphere(t *testing.T) {
	cam, basis := testCamera()
	cfg := config.Default()

	rs := &core.RenderScene{
		Spheres: []core.Primitive{{
			Geometry: core.NewSphere(mgl32.Vec3{0, 0, 0}, 2),
			Color:    mgl32.Vec3{1, 0, 0},
			Alpha:    1,
			IOR:      1,
		}},
		Ambient:    core.DefaultAmbientLight(),
		Background: mgl32.Vec3{0, 0, 0},
	}

	c := RenderPixel(rs, cam, basis, cfg, 0.5, 0.5)
	if c.X() <= c.Y() || c.X() <= c.Z() {
		t.Errorf("expected a red-dominant pixel at the sphere's center, got %v", c)
	}
}

func TestRenderPixelMissesToBackground(t *testing.T) {
	cam, basis := testCamera()
	cfg := config.Default()

	rs := &core.RenderScene{
		Ambient:    core.DefaultAmbientLight(),
		Background: mgl32.Vec3{0.2, 0.4, 0.6},
	}

	c := RenderPixel(rs, cam, basis, cfg, 0.5, 0.5)
	expected := gammaEncode(linearize(mgl32.Vec3{0.2, 0.4, 0.6}, cfg.Gamma), cfg.Gamma)
	if !closeEnoughVec(c, expected, 1e-3) {
		t.Errorf("expected background color %v, got %v", expected, c)
	}
}

func TestRenderPixelTransparentSphereBlendsBackground(t *testing.T) {
	cam, basis := testCamera()
	cfg := config.Default()

	rs := &core.RenderScene{
		Spheres: []core.Primitive{{
			Geometry: core.NewSphere(mgl32.Vec3{0, 0, 0}, 2),
			Color:    mgl32.Vec3{1, 1, 1},
			Alpha:    0.3,
			IOR:      1.5,
		}},
		Ambient:    core.DefaultAmbientLight(),
		Background: mgl32.Vec3{0, 0, 0},
	}

	overWhite := RenderPixel(&core.RenderScene{
		Spheres:    rs.Spheres,
		Ambient:    rs.Ambient,
		Background: mgl32.Vec3{1, 1, 1},
	}, cam, basis, cfg, 0.5, 0.5)

	transparent := RenderPixel(rs, cam, basis, cfg, 0.5, 0.5)

	if transparent.X() >= overWhite.X() {
		t.Errorf("expected a partially transparent sphere over a black background to be dimmer than the same sphere over a white background, got transparent=%v overWhite=%v", transparent, overWhite)
	}
}

func TestRenderPixelDirectionalLightIlluminatesFrontFace(t *testing.T) {
	cam, basis := testCamera()
	cfg := config.Default()

	rs := &core.RenderScene{
		Boxes: []core.Primitive{{
			Geometry: core.NewBox(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{4, 4, 1}, core.IdentityRotation(), 0),
			Color:    mgl32.Vec3{1, 1, 1},
			Alpha:    1,
			IOR:      1,
		}},
		Ambient:     core.NewAmbientLight(mgl32.Vec3{1, 1, 1}, 0.1),
		Directional: []core.Light{core.NewDirectionalLight(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 1, 1}, 1.0)},
		Background:  mgl32.Vec3{0, 0, 0},
	}

	c := RenderPixel(rs, cam, basis, cfg, 0.5, 0.5)
	// The directional light travels +Z, striking the box's front (-Z)
	// face directly, so the front face should receive full, unshadowed
	// directional contribution (nothing occludes between it and the light).
	if c.X() <= 0.1 {
		t.Errorf("expected a lit front face, got %v", c)
	}
}

// TestRenderPixelRefractiveSphereDisplacesPlaneColor implements spec.md §8
// scenario 4's central-pixel half: a thin, low-alpha glass sphere between
// the camera and a colored plane changes the central pixel. There the ray
// meets the sphere head-on and passes through unbent, so the change comes
// from the sphere's two surfaces blending into the color and attenuating
// the plane behind them.
func TestRenderPixelRefractiveSphereDisplacesPlaneColor(t *testing.T) {
	cam, basis := testCamera()
	cfg := config.Default()

	plane := core.Primitive{
		Geometry: core.NewPlane(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, -1}, -1, -1),
		Color:    mgl32.Vec3{0, 0.6, 0.1}, Alpha: 1, IOR: 1,
	}
	sphere := core.Primitive{
		Geometry: core.NewSphere(mgl32.Vec3{0, 0, 0}, 1),
		Color:    mgl32.Vec3{1, 1, 1}, Alpha: 0.1, IOR: 1.5,
	}

	withSphere := RenderPixel(&core.RenderScene{
		Planes:     []core.Primitive{plane},
		Spheres:    []core.Primitive{sphere},
		Ambient:    core.DefaultAmbientLight(),
		Background: mgl32.Vec3{0, 0, 0},
	}, cam, basis, cfg, 0.5, 0.5)

	withoutSphere := RenderPixel(&core.RenderScene{
		Planes:     []core.Primitive{plane},
		Ambient:    core.DefaultAmbientLight(),
		Background: mgl32.Vec3{0, 0, 0},
	}, cam, basis, cfg, 0.5, 0.5)

	if closeEnoughVec(withSphere, withoutSphere, 1e-4) {
		t.Errorf("expected the refractive sphere to visibly perturb the plane's color at the central pixel, got identical %v", withSphere)
	}
}

// TestRenderPixelEdgeOfSphereShowsTIRReflection implements spec.md §8
// scenario 4's edge-pixel half: near the sphere's silhouette, the
// incidence angle exceeds the critical angle for ior=1.5 and the ray
// totally internally reflects, so the pixel shows the background (via
// reflection) rather than the plane behind the sphere.
func TestRenderPixelEdgeOfSphereShowsTIRReflection(t *testing.T) {
	cam, basis := testCamera()
	cfg := config.Default()

	rs := &core.RenderScene{
		Planes: []core.Primitive{{
			Geometry: core.NewPlane(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, -1}, -1, -1),
			Color:    mgl32.Vec3{0, 0.6, 0.1}, Alpha: 1, IOR: 1,
		}},
		Spheres: []core.Primitive{{
			Geometry: core.NewSphere(mgl32.Vec3{0, 0, 0}, 1),
			Color:    mgl32.Vec3{1, 1, 1}, Alpha: 0.1, IOR: 1.5,
		}},
		Ambient:    core.DefaultAmbientLight(),
		Background: mgl32.Vec3{0.9, 0.9, 0.9},
	}

	// u,v near 0.5 but offset enough to graze the sphere's silhouette
	// (the sphere spans world x in [-1,1] over the camera's 10-unit-wide
	// image plane, i.e. u in [0.4, 0.6]).
	edge := RenderPixel(rs, cam, basis, cfg, 0.595, 0.5)
	center := RenderPixel(rs, cam, basis, cfg, 0.5, 0.5)

	if edge.X() <= center.X() {
		t.Errorf("expected the sphere's grazing edge to reflect a bright background rather than show the darker plane color, edge=%v center=%v", edge, center)
	}
}

func closeEnoughVec(a, b mgl32.Vec3, eps float32) bool {
	d := a.Sub(b)
	return d.Len() < eps
}

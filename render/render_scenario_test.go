package render

import (
	"context"
	"testing"

	"github.com/domscene/pagetrace/config"
	"github.com/domscene/pagetrace/core"
	"github.com/domscene/pagetrace/enginelog"
	"github.com/go-gl/mathgl/mgl32"
)

// TestScenarioSingleRedBoxNoLights implements spec.md §8 scenario 1: a
// single red box with full ambient light, center pixel red, corner pixel
// background.
func TestScenarioSingleRedBoxNoLights(t *testing.T) {
	r, err := NewRenderer(context.Background(), config.Default(), enginelog.Nop())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	scene := core.Scene{
		Objects: []core.Primitive{{
			Geometry: core.NewBox(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}, core.IdentityRotation(), 0),
			Color:    mgl32.Vec3{1, 0, 0},
			Alpha:    1,
			IOR:      1,
		}},
		Lights: []core.Light{core.NewAmbientLight(mgl32.Vec3{1, 1, 1}, 1.0)},
	}
	cam := &core.Camera{
		Position: mgl32.Vec3{0, 0, -5}, LookAt: mgl32.Vec3{0, 0, 0}, Up: mgl32.Vec3{0, 1, 0},
		Width: 2, Height: 2,
	}

	img := r.Render(scene, cam, 64, 64)

	center := img.RGBAAt(32, 32)
	if center.R < 200 || center.G > 60 || center.B > 60 {
		t.Errorf("expected a red-dominant center pixel, got %+v", center)
	}

	corner := img.RGBAAt(2, 2)
	bg := core.DefaultBackgroundColor()
	if !closeEnough8(corner.R, to8(bg.X()), 5) {
		t.Errorf("expected a background-colored corner pixel, got %+v", corner)
	}
}

// TestScenarioHardShadow implements spec.md §8 scenario 2: with
// shadow_blur=0, shadowed plane pixels receive ambient only.
func TestScenarioHardShadow(t *testing.T) {
	r, err := NewRenderer(context.Background(), config.Default(), enginelog.Nop())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	scene := core.Scene{
		// An infinite wall facing the camera (-Z normal) at z=0, lit by a
		// light travelling down and toward the wall (N.L ~ 0.71), with a
		// box hovering above the wall's center and in front of it: the
		// shadow ray from the wall's center climbs toward the light and
		// enters the box, while the camera's view of that point stays
		// unobstructed.
		Objects: []core.Primitive{
			{
				Geometry: core.NewPlane(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, -1, -1),
				Color:    mgl32.Vec3{1, 1, 1}, Alpha: 1, IOR: 1,
			},
			{
				Geometry: core.NewBox(mgl32.Vec3{0, 4, -4}, mgl32.Vec3{2, 2, 2}, core.IdentityRotation(), 0),
				Color:    mgl32.Vec3{1, 1, 1}, Alpha: 1, IOR: 1,
			},
		},
		Lights: []core.Light{
			core.NewAmbientLight(mgl32.Vec3{1, 1, 1}, 0.2),
			core.NewDirectionalLight(mgl32.Vec3{0, -1, 1}, mgl32.Vec3{1, 1, 1}, 1.0),
		},
		ShadowBlur: 0,
	}
	cam := &core.Camera{
		Position: mgl32.Vec3{0, 0, -10}, LookAt: mgl32.Vec3{0, 0, 0}, Up: mgl32.Vec3{0, 1, 0},
		Width: 8, Height: 8,
	}

	img := r.Render(scene, cam, 32, 32)
	center := img.RGBAAt(16, 16) // world (x~0, y~0, z=0) on the wall, in the box's shadow

	// The plane's center pixel sits in the box's shadow, so it should
	// receive ambient-only shading: 0.2 linear, which gamma-encodes to
	// about 123/255. Ambient + directional diffuse (0.2 + 0.71) would
	// encode to about 244.
	if center.R > 130 {
		t.Errorf("expected a dim, ambient-only shadowed pixel, got %+v", center)
	}
}

func closeEnough8(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// Command pagetrace-demo is a thin GLFW host exercising the orchestrator
// end to end: it opens a window, builds a scene from a handful of
// synthetic page elements, and redrives orchestrator.UpdateScene /
// UpdateViewport from the window's resize and scroll callbacks. Grounded
// on voxelrt/rt_main.go's window-setup/callback-wiring shape; unlike the
// teacher this demo never touches a GPU context (ClientAPI: NoAPI, no
// RequestAdapter here) since the core renderer is CPU-only — each frame
// is written out as a PNG instead of presented through a swapchain.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"runtime"

	"github.com/domscene/pagetrace/adapter"
	"github.com/domscene/pagetrace/config"
	"github.com/domscene/pagetrace/core"
	"github.com/domscene/pagetrace/enginelog"
	"github.com/domscene/pagetrace/orchestrator"
	"github.com/domscene/pagetrace/render"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	runtime.LockOSThread()
}

func demoElements() []adapter.ParsedElement {
	radius := float32(12)
	return []adapter.ParsedElement{
		{X: 40, Y: 40, Width: 400, Height: 120, BackgroundColor: mgl32.Vec3{0.8, 0.2, 0.2}, Depth: 0, BorderRadius: &radius},
		{X: 60, Y: 200, Width: 300, Height: 300, BackgroundColor: mgl32.Vec3{0.2, 0.5, 0.8}, Depth: 1},
		{X: 500, Y: 80, Width: 250, Height: 600, BackgroundColor: mgl32.Vec3{0.3, 0.7, 0.3}, Depth: 2},
	}
}

func main() {
	outDir := flag.String("out", ".", "directory to write composited frames to")
	flag.Parse()

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(1280, 720, "pagetrace demo", nil, nil)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	log := enginelog.Nop()
	cfg := config.Default()

	renderer, err := render.NewRenderer(context.Background(), cfg, log)
	if err != nil {
		panic(err)
	}

	orch := orchestrator.New(renderer, cfg.TileHeight, log)
	defer orch.Dispose()

	const contentW, contentH = 1280, 900
	elements := demoElements()
	scene := adapter.BuildScene(elements, 2, core.DefaultBackgroundColor(), contentW, contentH)
	cam := adapter.Camera(contentW, contentH)

	scrollY := 0
	frame := 0
	save := func(tag string, surface *image.RGBA) {
		if surface == nil {
			return
		}
		path := fmt.Sprintf("%s/frame-%s-%04d.png", *outDir, tag, frame)
		frame++
		f, err := os.Create(path)
		if err != nil {
			log.Warnf("pagetrace-demo: could not write %s: %v", path, err)
			return
		}
		defer f.Close()
		_ = png.Encode(f, surface)
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		surface := orch.UpdateScene(context.Background(), scene, &cam, contentW, contentH, width, height, scrollY)
		save("resize", surface)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		scrollY += int(yoff * 40)
		if scrollY < 0 {
			scrollY = 0
		}
		_, h := window.GetFramebufferSize()
		surface := orch.UpdateViewport(scrollY, h)
		save("scroll", surface)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	initW, initH := window.GetFramebufferSize()
	surface := orch.UpdateScene(context.Background(), scene, &cam, contentW, contentH, initW, initH, scrollY)
	save("initial", surface)

	for !window.ShouldClose() {
		glfw.PollEvents()
	}
}

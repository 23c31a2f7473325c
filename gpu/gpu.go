// Package gpu provides a headless capability probe for a GPU adapter/
// device, used by render.NewRenderer to decide whether a GPU fragment-
// shader path could be used (spec.md §7: "Capability-missing... fail at
// construction; fall back to a CPU renderer if available"). Grounded on
// the teacher's App.Init (voxelrt/rt/app/app.go:92-112): instance ->
// surface -> adapter -> device. This package drops the surface step
// entirely (no window, no swapchain) since the core never renders to a
// GPU surface — it exists solely to exercise and justify the capability-
// missing/fallback branch of the error-handling design. No shader module
// or pipeline is ever created here.
package gpu

import (
	"context"
	"errors"

	"github.com/cogentcore/webgpu/wgpu"
)

// ErrAdapterUnavailable is returned when no compatible GPU adapter can be
// acquired (headless environment, no driver, etc).
var ErrAdapterUnavailable = errors.New("gpu: no compatible adapter available")

// TryAcquireDevice performs a headless instance -> adapter -> device
// acquisition, returning ErrAdapterUnavailable on any failure along that
// chain. The returned Device is not used for rendering by this package;
// callers that only want the capability signal should discard it.
func TryAcquireDevice(ctx context.Context) (*wgpu.Device, error) {
	instance := wgpu.CreateInstance(nil)
	if instance == nil {
		return nil, ErrAdapterUnavailable
	}

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil || adapter == nil {
		return nil, ErrAdapterUnavailable
	}

	device, err := adapter.RequestDevice(nil)
	if err != nil || device == nil {
		return nil, ErrAdapterUnavailable
	}

	return device, nil
}

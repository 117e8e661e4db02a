// Package gpu implements a backend that turns figures into GPU-ready frames:
// a packed triangle-list vertex buffer, one draw range per batch and the
// render pass parameters a host needs to replay them.
//
// The backend never creates a GPU device. The host passes its device through
// a DeviceHandle (an alias for gpucontext.DeviceProvider) and, optionally, a
// Submitter that records the frame into its own command encoder. Without a
// Submitter the backend still builds frames; LastFrame exposes the result.
//
//	b := gpu.New(gpu.WithDevice(app), gpu.WithSubmitter(app))
//	if err := b.Init(backend.DescFromSize(fig.Size)); err != nil {
//		return err
//	}
//	defer b.Close()
//	err := backend.DrawFrame(b, fig)
//
// Vertices are 24 bytes: position as vec2<f32> in normalized device
// coordinates (location 0) and a premultiplied color as vec4<f32>
// (location 1). The WGSL source for the matching pipeline is embedded and
// compiled to SPIR-V with naga.
package gpu

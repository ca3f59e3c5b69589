// Package bindgroup derives WebGPU bind group layouts from program
// reflection.
//
// The compiler assigns every global shader parameter a register within a
// register space. For WGSL and SPIR-V targets those map to WebGPU's
// binding index and group index, so a linked program's layout can be
// turned into the layouts a WebGPU pipeline is created with:
//
//	shader, _, err := linked.Layout(0)
//	...
//	layout, err := bindgroup.FromShader(shader)
//	for _, g := range layout.Groups {
//		device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{Entries: g.Entries})
//	}
//
// Binding ranges WebGPU cannot express, such as storage textures,
// combined texture-samplers and acceleration structures, are reported in
// Layout.Skipped instead of being guessed at.
package bindgroup

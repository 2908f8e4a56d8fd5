package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (80 bytes).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// clipDepthCorrection maps OpenGL clip depth [-1, 1] to the WebGPU range [0, 1].
var clipDepthCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
type GPUCameraUniform struct {
	ViewProj       [16]float32 // offset  0: combined view-projection matrix (mat4x4<f32>)
	CameraPosition [3]float32  // offset 64: world-space camera position (vec3<f32>)
	_pad           float32     // offset 76: padding to 80 bytes
}

// NewGPUCameraUniform captures a camera's current state with WebGPU clip depth.
//
// Parameters:
//   - cam: the camera to capture
//
// Returns:
//   - GPUCameraUniform: the uniform contents
func NewGPUCameraUniform(cam Camera) GPUCameraUniform {
	return GPUCameraUniform{
		ViewProj:       clipDepthCorrection.Mul4(cam.ViewProjectionMatrix()),
		CameraPosition: cam.Transform().Translation,
	}
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProj[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.CameraPosition[i]))
	}
	binary.LittleEndian.PutUint32(buf[76:], 0) // _pad
	return buf
}

// WriteUniform uploads the camera's uniform to buffer at offset 0.
//
// Parameters:
//   - queue: the device queue
//   - buffer: a uniform buffer of at least 80 bytes
//   - cam: the camera to upload
func WriteUniform(queue *wgpu.Queue, buffer *wgpu.Buffer, cam Camera) {
	u := NewGPUCameraUniform(cam)
	queue.WriteBuffer(buffer, 0, u.Marshal())
}

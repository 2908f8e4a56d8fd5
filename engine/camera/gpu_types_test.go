package camera

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGPUCameraUniformLayout(t *testing.T) {
	c := NewCamera(WithOrbitController(nil), WithLookAt(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}))
	u := NewGPUCameraUniform(c)
	if u.Size() != 80 {
		t.Fatalf("expected 80 bytes, got %d", u.Size())
	}
	buf := u.Marshal()
	if len(buf) != 80 {
		t.Fatalf("expected 80 marshaled bytes, got %d", len(buf))
	}
	for i, want := range []float32{1, 2, 3} {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[64+i*4:]))
		if got != want {
			t.Fatalf("position[%d] = %v, want %v", i, got, want)
		}
	}
	if !strings.Contains(GPUCameraUniformSource, "view_proj") {
		t.Fatalf("embedded WGSL source missing view_proj")
	}
}

func TestGPUCameraUniformDepthRange(t *testing.T) {
	c := NewCamera(WithOrbitController(nil))
	u := NewGPUCameraUniform(c)
	vp := mgl32.Mat4(u.ViewProj)
	for _, dist := range []float32{0.1, 1000} {
		clip := vp.Mul4x1(mgl32.Vec4{0, 0, -dist, 1})
		z := clip.Z() / clip.W()
		if z < -1e-3 || z > 1+1e-3 {
			t.Fatalf("depth %v at distance %v outside [0, 1]", z, dist)
		}
	}
}

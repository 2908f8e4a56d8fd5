package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func nearVec3(a, b mgl32.Vec3, eps float32) bool {
	return near(a[0], b[0], eps) && near(a[1], b[1], eps) && near(a[2], b[2], eps)
}

func TestOrbitRoundTrip(t *testing.T) {
	yaws := []float32{-2.5, -1, 0, 0.7, 3.0}
	pitches := []float32{-1.2, 0, 0.4, 1.3}
	radii := []float32{0.05, 1, 12.5}
	foci := []mgl32.Vec3{{0, 0, 0}, {1, -2, 3}}

	for _, focus := range foci {
		for _, radius := range radii {
			for _, pitch := range pitches {
				for _, yaw := range yaws {
					tr := TransformFromOrbit(yaw, pitch, radius, focus)
					gotYaw, gotPitch, gotRadius := FromTranslationAndFocus(tr.Translation, focus)
					if !near(gotYaw, yaw, 1e-3) || !near(gotPitch, pitch, 1e-3) || !near(gotRadius, radius, 1e-3) {
						t.Fatalf("round trip (%.3f, %.3f, %.3f) around %v gave (%.4f, %.4f, %.4f)",
							yaw, pitch, radius, focus, gotYaw, gotPitch, gotRadius)
					}
				}
			}
		}
	}
}

func TestFromTranslationAndFocusYawSingularity(t *testing.T) {
	yaw, pitch, radius := FromTranslationAndFocus(mgl32.Vec3{0, 0, -2}, mgl32.Vec3{})
	if !near(yaw, math.Pi, 1e-6) {
		t.Fatalf("expected yaw pi on the -Z axis, got %.4f", yaw)
	}
	if pitch != 0 || !near(radius, 2, 1e-6) {
		t.Fatalf("unexpected pitch %.4f radius %.4f", pitch, radius)
	}
}

func TestFromTranslationAndFocusRadiusFloor(t *testing.T) {
	_, _, radius := FromTranslationAndFocus(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1})
	if radius != 0.05 {
		t.Fatalf("expected floored radius 0.05, got %v", radius)
	}
}

func TestUpdateOrbitTransformIdempotent(t *testing.T) {
	focus := mgl32.Vec3{0.5, 1, -2}
	for _, proj := range []Projection{NewPerspective(), NewOrthographic()} {
		var a, b Transform
		UpdateOrbitTransform(0.3, 0.6, 4, focus, &a, proj)
		UpdateOrbitTransform(0.3, 0.6, 4, focus, &b, proj)
		if a != b {
			t.Fatalf("%s: transforms differ %v vs %v", proj.Kind(), a, b)
		}
	}
}

func TestUpdateOrbitTransformOrthographic(t *testing.T) {
	proj := NewOrthographic()
	var tr Transform
	UpdateOrbitTransform(0, 0, 7, mgl32.Vec3{}, &tr, proj)
	if proj.Scale != 7 {
		t.Fatalf("expected scale 7, got %v", proj.Scale)
	}
	if !nearVec3(tr.Translation, mgl32.Vec3{0, 0, 500}, 1e-2) {
		t.Fatalf("expected camera halfway between clip planes, got %v", tr.Translation)
	}
}

func TestTransformFromOrbitLooksAtFocus(t *testing.T) {
	focus := mgl32.Vec3{1, 2, 3}
	tr := TransformFromOrbit(1.1, -0.4, 6, focus)
	toFocus := focus.Sub(tr.Translation).Normalize()
	if !nearVec3(tr.Forward(), toFocus, 1e-4) {
		t.Fatalf("forward %v does not point at focus %v", tr.Forward(), toFocus)
	}
}

func TestLookAtTransform(t *testing.T) {
	eye := mgl32.Vec3{0, 1.5, 5}
	tr := LookAtTransform(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	want := eye.Mul(-1).Normalize()
	if !nearVec3(tr.Forward(), want, 1e-4) {
		t.Fatalf("forward %v, want %v", tr.Forward(), want)
	}
	if tr.Right().Y() > 1e-4 || tr.Right().Y() < -1e-4 {
		t.Fatalf("look-at introduced roll, right = %v", tr.Right())
	}
}

func TestViewMatrixInvertsModelMatrix(t *testing.T) {
	tr := TransformFromOrbit(0.8, 0.3, 3, mgl32.Vec3{1, 0, -1})
	m := tr.ViewMatrix().Mul4(tr.Matrix())
	id := mgl32.Ident4()
	for i := range m {
		if !near(m[i], id[i], 1e-4) {
			t.Fatalf("view * model is not identity: %v", m)
		}
	}
}

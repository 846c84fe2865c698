package walkthrough

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestCameraDefaults(t *testing.T) {
	cam := NewDefaultCamera(16.0 / 9.0)
	if cam.FOV != 75 || cam.Near != 0.1 || cam.Far != 100 {
		t.Errorf("lens = (%v, %v, %v), want (75, 0.1, 100)", cam.FOV, cam.Near, cam.Far)
	}
	if cam.Position != (mgl64.Vec3{0, 1.7, -4.5}) {
		t.Errorf("Position = %v, want (0, 1.7, -4.5)", cam.Position)
	}
	assertVec3Near(t, "direction", cam.WorldDirection(), mgl64.Vec3{0, 0, -1}, 1e-12)
}

func TestCameraLookAt(t *testing.T) {
	targets := []mgl64.Vec3{
		{0, 0, 5},
		{3, 1, -2},
		{-1, -4, 0.5},
	}
	for _, target := range targets {
		cam := NewCamera(60, 1, 0.1, 100)
		cam.Position = mgl64.Vec3{1, 1, 1}
		cam.LookAt(target)
		want := target.Sub(cam.Position).Normalize()
		assertVec3Near(t, "direction", cam.WorldDirection(), want, 1e-9)

		// The camera's right axis stays horizontal.
		right := cam.Rotation().Col(0).Vec3()
		if !approxEqual(right.Y(), 0, 1e-9) {
			t.Errorf("right axis %v is not horizontal", right)
		}
	}
}

func TestCameraLookAtStraightUp(t *testing.T) {
	cam := NewCamera(60, 1, 0.1, 100)
	cam.LookAt(mgl64.Vec3{0, 10, 0})
	d := cam.WorldDirection()
	for i := 0; i < 3; i++ {
		if math.IsNaN(d[i]) {
			t.Fatalf("direction has NaN: %v", d)
		}
	}
	if d.Y() < 0.99 {
		t.Errorf("direction = %v, want nearly +Y", d)
	}
}

func TestCameraRayThroughCentre(t *testing.T) {
	cam := NewCamera(75, 16.0/9.0, 0.1, 100)
	cam.Position = mgl64.Vec3{0, 1.7, -4.5}
	cam.LookAt(mgl64.Vec3{0, 1.7, 0})

	r := cam.RayThrough(Vec2{})
	assertVec3Near(t, "origin", r.Origin, cam.Position, 1e-12)
	assertVec3Near(t, "direction", r.Direction, mgl64.Vec3{0, 0, 1}, 1e-9)
}

func TestCameraRayThroughEdge(t *testing.T) {
	cam := NewCamera(90, 1, 0.1, 100)
	// Looking down -Z with a 90 degree vertical FOV, the top edge is 45 degrees up.
	r := cam.RayThrough(Vec2{X: 0, Y: 1})
	want := mgl64.Vec3{0, 1, -1}.Normalize()
	assertVec3Near(t, "direction", r.Direction, want, 1e-9)
}

func TestCameraProjectRoundtrip(t *testing.T) {
	cam := NewCamera(70, 1.5, 0.1, 100)
	cam.Position = mgl64.Vec3{2, 1, 3}
	cam.LookAt(mgl64.Vec3{0, 0, 0})

	for _, ndc := range []Vec2{{0, 0}, {0.5, -0.25}, {-0.9, 0.9}} {
		r := cam.RayThrough(ndc)
		got, ok := cam.Project(r.At(7))
		if !ok {
			t.Fatalf("Project(%v) not ok", ndc)
		}
		if !approxEqual(got.X, ndc.X, 1e-9) || !approxEqual(got.Y, ndc.Y, 1e-9) {
			t.Errorf("Project = %v, want %v", got, ndc)
		}
	}
}

func TestCameraProjectBehind(t *testing.T) {
	cam := NewCamera(70, 1, 0.1, 100)
	if _, ok := cam.Project(mgl64.Vec3{0, 0, 5}); ok {
		t.Error("point behind the camera should not project")
	}
}

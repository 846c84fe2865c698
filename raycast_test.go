package walkthrough

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// lookingDownZ returns a camera at (0, 0, 10) looking at the origin.
func lookingDownZ() *Camera {
	cam := NewCamera(60, 1, 0.1, 100)
	cam.Position = mgl64.Vec3{0, 0, 10}
	cam.LookAt(mgl64.Vec3{})
	return cam
}

func TestResolveEmptyScene(t *testing.T) {
	rc := NewRaycaster()
	if _, ok := rc.Resolve(Vec2{}, lookingDownZ(), NewGroup("root")); ok {
		t.Error("empty scene should not hit")
	}
}

func TestResolveNilInputs(t *testing.T) {
	rc := NewRaycaster()
	root := NewGroup("root")
	root.AddChild(NewMesh("plane", Plane{Width: 2, Height: 2}))
	if _, ok := rc.Resolve(Vec2{}, nil, root); ok {
		t.Error("nil camera should not hit")
	}
	if _, ok := rc.Resolve(Vec2{}, lookingDownZ(), nil); ok {
		t.Error("nil root should not hit")
	}
}

func TestResolvePlaneDistance(t *testing.T) {
	root := NewGroup("root")
	plane := NewMesh("wall", Plane{Width: 4, Height: 4})
	plane.SetPosition(0, 0, 2)
	root.AddChild(plane)

	hit, ok := NewRaycaster().Resolve(Vec2{}, lookingDownZ(), root)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Node != plane {
		t.Errorf("Node = %q, want wall", hit.Node.Name)
	}
	assertNear(t, "distance", hit.Distance, 8)
	assertVec3Near(t, "point", hit.Point, mgl64.Vec3{0, 0, 2}, 1e-9)
}

func TestResolveOffAxisDistance(t *testing.T) {
	root := NewGroup("root")
	root.AddChild(NewMesh("wall", Plane{Width: 100, Height: 100}))
	cam := lookingDownZ()

	ndc := Vec2{X: 0.5, Y: 0}
	hit, ok := NewRaycaster().Resolve(ndc, cam, root)
	if !ok {
		t.Fatal("expected a hit")
	}
	// tan(half fov) * 0.5 * 10 units to the side at depth 10.
	x := math.Tan(mgl64.DegToRad(30)) * 0.5 * 10
	assertVec3Near(t, "point", hit.Point, mgl64.Vec3{x, 0, 0}, 1e-9)
	if !approxEqual(hit.Distance, math.Hypot(10, x), 1e-9) {
		t.Errorf("distance = %v, want %v", hit.Distance, math.Hypot(10, x))
	}
}

func TestResolveNearestWins(t *testing.T) {
	root := NewGroup("root")
	far := NewMesh("far", Plane{Width: 4, Height: 4})
	near := NewMesh("near", Plane{Width: 4, Height: 4})
	near.SetPosition(0, 0, 5)
	// Insert the far plane first so order alone would pick it.
	root.AddChild(far)
	root.AddChild(near)

	hit, ok := NewRaycaster().Resolve(Vec2{}, lookingDownZ(), root)
	if !ok || hit.Node != near {
		t.Fatalf("hit = %+v, want near", hit)
	}
	hits := NewRaycaster().IntersectRay(lookingDownZ().RayThrough(Vec2{}), root)
	if len(hits) != 2 || hits[0].Node != near || hits[1].Node != far {
		t.Errorf("hits not sorted nearest first: %+v", hits)
	}
}

func TestResolveNestedChild(t *testing.T) {
	root := NewGroup("root")
	door := NewGroup("Front_door")
	door.SetPosition(0, 0, 1)
	panel := NewMesh("panel", NewBox(1, 2, 0.1))
	door.AddChild(panel)
	root.AddChild(door)

	hit, ok := NewRaycaster().Resolve(Vec2{}, lookingDownZ(), root)
	if !ok || hit.Node != panel {
		t.Fatalf("hit = %+v, want panel", hit)
	}
	assertNear(t, "distance", hit.Distance, 8.95)
}

func TestResolveScaledRotatedParent(t *testing.T) {
	root := NewGroup("root")
	parent := NewGroup("parent")
	parent.SetScale(3, 3, 3)
	parent.SetRotation(0, math.Pi, 0)
	parent.SetPosition(0, 0, -1)
	// A 1x1 plane facing +Z, turned to face -Z by the parent, so only the
	// double-sided flag lets the camera see it. Scaled to 3x3.
	child := NewMesh("sheet", Plane{Width: 1, Height: 1, DoubleSided: true})
	child.SetPosition(0.4, 0, 0)
	parent.AddChild(child)
	root.AddChild(parent)

	rc := NewRaycaster()
	hit, ok := rc.Resolve(Vec2{}, lookingDownZ(), root)
	if !ok {
		t.Fatal("expected a hit on the scaled plane")
	}
	assertNear(t, "distance", hit.Distance, 11)
	assertVec3Near(t, "point", hit.Point, mgl64.Vec3{0, 0, -1}, 1e-9)
}

func TestResolveSkipsInvisible(t *testing.T) {
	root := NewGroup("root")
	group := NewGroup("hidden")
	group.Visible = false
	group.AddChild(NewMesh("wall", Plane{Width: 4, Height: 4}))
	root.AddChild(group)

	if _, ok := NewRaycaster().Resolve(Vec2{}, lookingDownZ(), root); ok {
		t.Error("invisible subtree should not be hit")
	}
}

func TestResolveSkipsZeroScale(t *testing.T) {
	tests := []struct {
		name  string
		scale func(flat, wall *Node)
	}{
		{"mesh", func(_, wall *Node) { wall.SetScale(0, 0, 0) }},
		{"parent", func(flat, _ *Node) { flat.SetScale(1, 0, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewGroup("root")
			flat := NewGroup("flat")
			wall := NewMesh("wall", Plane{Width: 4, Height: 4})
			flat.AddChild(wall)
			root.AddChild(flat)
			tt.scale(flat, wall)

			if hit, ok := NewRaycaster().Resolve(Vec2{}, lookingDownZ(), root); ok {
				t.Errorf("hit %q at %v; a flattened mesh must not take clicks", hit.Node.Name, hit.Distance)
			}
		})
	}
}

func TestResolveIgnoresRootGeometry(t *testing.T) {
	root := NewMesh("root", Plane{Width: 4, Height: 4})
	if _, ok := NewRaycaster().Resolve(Vec2{}, lookingDownZ(), root); ok {
		t.Error("root itself should not be tested")
	}
}

func TestResolveSeesMovedNodeWithoutManualRefresh(t *testing.T) {
	root := NewGroup("root")
	wall := NewMesh("wall", Plane{Width: 1, Height: 1})
	root.AddChild(wall)
	rc := NewRaycaster()
	cam := lookingDownZ()

	if _, ok := rc.Resolve(Vec2{}, cam, root); !ok {
		t.Fatal("expected a hit before moving")
	}
	wall.SetPosition(5, 0, 0)
	if _, ok := rc.Resolve(Vec2{}, cam, root); ok {
		t.Error("moved wall should be missed")
	}
}

func TestResolveDeterministic(t *testing.T) {
	root := NewGroup("root")
	for i := 0; i < 5; i++ {
		m := NewMesh("box", NewBox(1, 1, 1))
		m.SetPosition(float64(i)*0.3-0.6, 0, float64(-i))
		root.AddChild(m)
	}
	rc := NewRaycaster()
	cam := lookingDownZ()
	first, ok := rc.Resolve(Vec2{X: 0.01, Y: 0.02}, cam, root)
	if !ok {
		t.Fatal("expected a hit")
	}
	for i := 0; i < 10; i++ {
		again, _ := rc.Resolve(Vec2{X: 0.01, Y: 0.02}, cam, root)
		if again != first {
			t.Fatalf("resolve %d = %+v, want %+v", i, again, first)
		}
	}
}

func BenchmarkResolve1000Meshes(b *testing.B) {
	root := NewGroup("root")
	for i := 0; i < 1000; i++ {
		m := NewMesh("box", NewBox(0.5, 0.5, 0.5))
		m.SetPosition(float64(i%10)-5, float64(i/10%10)-5, -float64(i/100))
		root.AddChild(m)
	}
	rc := NewRaycaster()
	cam := lookingDownZ()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rc.Resolve(Vec2{X: 0.1, Y: 0.1}, cam, root)
	}
}

package walkthrough

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// --- Constructor defaults ---

func TestNewGroupDefaults(t *testing.T) {
	n := NewGroup("test")
	assertNodeDefaults(t, n, "test")
	if n.Geometry != nil {
		t.Error("group should have no geometry")
	}
}

func TestNewMeshDefaults(t *testing.T) {
	geom := NewBox(1, 2, 3)
	n := NewMesh("mesh", geom)
	assertNodeDefaults(t, n, "mesh")
	if n.Geometry != geom {
		t.Errorf("Geometry = %v, want %v", n.Geometry, geom)
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Scale != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("Scale = %v, want (1, 1, 1)", n.Scale)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if !n.transformDirty {
		t.Error("transformDirty should be true")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	if a.ID == b.ID {
		t.Errorf("IDs should differ, both %d", a.ID)
	}
}

// --- Tree manipulation ---

func TestAddChildBasic(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 || parent.ChildAt(0) != child {
		t.Error("parent should contain child")
	}
}

func TestAddChildReparent(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	child := NewGroup("child")
	a.AddChild(child)
	b.AddChild(child)

	if a.NumChildren() != 0 {
		t.Errorf("old parent has %d children, want 0", a.NumChildren())
	}
	if child.Parent != b {
		t.Error("child.Parent should be b")
	}
}

func TestAddChildCyclePanic(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	a.AddChild(b)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on cycle")
		}
	}()
	b.AddChild(a)
}

func TestAddChildSelfPanic(t *testing.T) {
	a := NewGroup("a")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic adding self")
		}
	}()
	a.AddChild(a)
}

func TestAddChildNilPanic(t *testing.T) {
	a := NewGroup("a")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic adding nil")
		}
	}()
	a.AddChild(nil)
}

func TestRemoveChild(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	parent.AddChild(child)
	parent.RemoveChild(child)

	if child.Parent != nil {
		t.Error("child.Parent should be nil")
	}
	if parent.NumChildren() != 0 {
		t.Error("parent should be empty")
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	child := NewGroup("child")
	a.AddChild(child)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic removing from wrong parent")
		}
	}()
	b.RemoveChild(child)
}

func TestRemoveFromParentNoOp(t *testing.T) {
	n := NewGroup("n")
	n.RemoveFromParent()
	if n.Parent != nil {
		t.Error("Parent should stay nil")
	}
}

func TestFindByName(t *testing.T) {
	root := NewGroup("root")
	door := NewGroup("Front_door")
	handle := NewMesh("handle", NewBox(0.1, 0.1, 0.1))
	root.AddChild(door)
	door.AddChild(handle)

	if got := root.FindByName("handle"); got != handle {
		t.Errorf("FindByName(handle) = %v", got)
	}
	if got := root.FindByName("root"); got != root {
		t.Error("FindByName should include the receiver")
	}
	if got := root.FindByName("missing"); got != nil {
		t.Errorf("FindByName(missing) = %v, want nil", got)
	}
}

func TestWalkSkipsPrunedSubtree(t *testing.T) {
	root := NewGroup("root")
	a := NewGroup("a")
	b := NewGroup("b")
	a1 := NewGroup("a1")
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(a1)

	var seen []string
	root.Walk(func(n *Node) bool {
		seen = append(seen, n.Name)
		return n != a
	})
	want := []string{"root", "a", "b"}
	if len(seen) != len(want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}

// --- Disposal ---

func TestDispose(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	grandchild := NewMesh("grandchild", NewBox(1, 1, 1))
	parent.AddChild(child)
	child.AddChild(grandchild)

	child.Dispose()

	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if parent.NumChildren() != 0 {
		t.Error("disposed child should be detached")
	}
	if grandchild.Geometry != nil {
		t.Error("Geometry should be released")
	}
	if child.ID != 0 {
		t.Errorf("ID = %d, want 0", child.ID)
	}
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewGroup("n")
	n.Dispose()
	n.Dispose()
	if !n.IsDisposed() {
		t.Error("should stay disposed")
	}
}

// --- Dirty propagation ---

func TestDirtyPropagationOnAddChild(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	grandchild := NewGroup("grandchild")
	child.AddChild(grandchild)
	child.UpdateWorldTransforms()
	if grandchild.transformDirty {
		t.Fatal("grandchild should be clean")
	}

	parent.AddChild(child)
	if !child.transformDirty || !grandchild.transformDirty {
		t.Error("reparenting should mark the subtree dirty")
	}
}

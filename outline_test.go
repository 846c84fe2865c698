package walkthrough

import "testing"

func TestOutlineSet(t *testing.T) {
	var o OutlineSet
	a, b := NewGroup("a"), NewGroup("b")
	o.OutlineObject(a)
	o.OutlineObject(b)
	if len(o.Nodes()) != 2 || o.Nodes()[0] != a || !o.Contains(b) {
		t.Errorf("nodes = %v", o.Nodes())
	}
	o.ClearOutlines()
	if len(o.Nodes()) != 0 || o.Contains(a) {
		t.Error("ClearOutlines should empty the set")
	}
}

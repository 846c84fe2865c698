package walkthrough

// Outliner is the highlight sink the renderer exposes.
type Outliner interface {
	OutlineObject(n *Node)
	ClearOutlines()
}

// OutlineSet is an Outliner that just remembers the outlined nodes, in
// outline order. Renderers read it each frame.
type OutlineSet struct {
	nodes []*Node
}

// OutlineObject implements Outliner.
func (o *OutlineSet) OutlineObject(n *Node) {
	o.nodes = append(o.nodes, n)
}

// ClearOutlines implements Outliner.
func (o *OutlineSet) ClearOutlines() {
	clear(o.nodes)
	o.nodes = o.nodes[:0]
}

// Nodes returns the outlined nodes. The returned slice MUST NOT be mutated.
func (o *OutlineSet) Nodes() []*Node {
	return o.nodes
}

// Contains reports whether n is outlined.
func (o *OutlineSet) Contains(n *Node) bool {
	for _, m := range o.nodes {
		if m == n {
			return true
		}
	}
	return false
}

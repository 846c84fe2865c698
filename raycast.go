package walkthrough

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// RayHit is one intersection of a ray with a mesh. It is only valid for the
// logic step that produced it.
type RayHit struct {
	Node     *Node
	Point    mgl64.Vec3
	Distance float64
}

// Raycaster resolves screen points against a scene graph. It holds no state
// beyond a reusable hit buffer, so results depend only on the camera, the
// scene and the point.
type Raycaster struct {
	hits []RayHit
}

// NewRaycaster creates a Raycaster.
func NewRaycaster() *Raycaster {
	return &Raycaster{}
}

// Resolve casts a ray from cam through the normalised device coordinate ndc
// and returns the nearest hit among the descendants of root. root itself is
// not tested.
func (rc *Raycaster) Resolve(ndc Vec2, cam *Camera, root *Node) (RayHit, bool) {
	if cam == nil || root == nil {
		return RayHit{}, false
	}
	hits := rc.IntersectRay(cam.RayThrough(ndc), root)
	if len(hits) == 0 {
		return RayHit{}, false
	}
	return hits[0], true
}

// IntersectRay returns every hit of a world-space ray against the
// descendants of root, nearest first. Hits at equal distance keep traversal
// order. The returned slice is reused by the next call.
func (rc *Raycaster) IntersectRay(ray Ray, root *Node) []RayHit {
	rc.hits = rc.hits[:0]
	root.UpdateWorldTransforms()
	for _, child := range root.children {
		rc.collect(child, ray)
	}
	slices.SortStableFunc(rc.hits, func(a, b RayHit) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	return rc.hits
}

// collect walks the subtree depth-first, appending hits. Invisible subtrees
// are skipped, and so are meshes flattened to a singular world matrix.
func (rc *Raycaster) collect(n *Node, ray Ray) {
	if !n.Visible {
		return
	}
	if n.Geometry != nil {
		rc.test(n, ray)
	}
	for _, child := range n.children {
		rc.collect(child, ray)
	}
}

func (rc *Raycaster) test(n *Node, ray Ray) {
	inv, ok := n.inverseWorld()
	if !ok {
		return
	}
	t, ok := n.Geometry.IntersectRay(ray.transformed(inv))
	if !ok {
		return
	}
	point := ray.At(t)
	rc.hits = append(rc.hits, RayHit{
		Node:     n,
		Point:    point,
		Distance: point.Sub(ray.Origin).Len(),
	})
}

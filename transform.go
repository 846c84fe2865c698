package walkthrough

import "github.com/go-gl/mathgl/mgl64"

// computeLocalTransform computes the local matrix from the node's transform
// properties.
//
// Composition order:
//
//	Scale -> RotateZ -> RotateY -> RotateX -> Translate(Position)
//
// which is T * Rx * Ry * Rz * S, the usual XYZ Euler convention.
func computeLocalTransform(n *Node) mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	r := mgl64.HomogRotate3DX(n.Rotation[0]).
		Mul4(mgl64.HomogRotate3DY(n.Rotation[1])).
		Mul4(mgl64.HomogRotate3DZ(n.Rotation[2]))
	s := mgl64.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2])
	return t.Mul4(r).Mul4(s)
}

// updateWorldTransform recomputes a node's worldTransform.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform mgl64.Mat4, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = parentTransform.Mul4(computeLocalTransform(n))
		n.transformDirty = false
		n.invDirty = true
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, recompute)
	}
}

// UpdateWorldTransforms refreshes world matrices for the whole tree this node
// belongs to. Cheap when nothing is dirty.
func (n *Node) UpdateWorldTransforms() {
	top := n
	for top.Parent != nil {
		top = top.Parent
	}
	updateWorldTransform(top, mgl64.Ident4(), false)
}

// --- Transform property setters ---

// SetPosition sets the node's local position and marks it dirty.
func (n *Node) SetPosition(x, y, z float64) {
	n.Position = mgl64.Vec3{x, y, z}
	n.transformDirty = true
}

// SetRotation sets the node's Euler rotation (radians) and marks it dirty.
func (n *Node) SetRotation(x, y, z float64) {
	n.Rotation = mgl64.Vec3{x, y, z}
	n.transformDirty = true
}

// SetScale sets the node's scale and marks it dirty.
func (n *Node) SetScale(x, y, z float64) {
	n.Scale = mgl64.Vec3{x, y, z}
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next refresh. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Coordinate conversion ---

// WorldMatrix returns the last computed world matrix.
func (n *Node) WorldMatrix() mgl64.Mat4 {
	return n.worldTransform
}

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() mgl64.Vec3 {
	return n.worldTransform.Col(3).Vec3()
}

// inverseWorld returns the cached inverse world matrix. ok is false when the
// world matrix is singular (e.g. a zero scale); the matrix is then identity.
func (n *Node) inverseWorld() (inv mgl64.Mat4, ok bool) {
	if n.invDirty {
		det := n.worldTransform.Det()
		n.singular = det > -1e-12 && det < 1e-12
		if n.singular {
			n.invWorld = mgl64.Ident4()
		} else {
			n.invWorld = n.worldTransform.Inv()
		}
		n.invDirty = false
	}
	return n.invWorld, !n.singular
}

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(p mgl64.Vec3) mgl64.Vec3 {
	inv, _ := n.inverseWorld()
	return mgl64.TransformCoordinate(p, inv)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, n.worldTransform)
}

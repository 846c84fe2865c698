package walkthrough

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 3 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenRotation,
// TweenField) and call Update(dt) each frame, or hand it to an Animator. The
// group auto-applies values and marks the node dirty. If the target node is
// disposed, the group stops immediately.
type TweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	fields [3]*float64
	to     [3]float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		if finished {
			// gween runs in float32; land exactly on the float64 target.
			*g.fields[i] = g.to[i]
			continue
		}
		*g.fields[i] = float64(val)
		allDone = false
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenPosition creates a TweenGroup that animates node.Position to the
// given target over the specified duration using the easing function.
func TweenPosition(node *Node, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, target: node}
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(float32(node.Position[i]), float32(to[i]), duration, fn)
		g.fields[i] = &node.Position[i]
		g.to[i] = to[i]
	}
	return g
}

// TweenRotation creates a TweenGroup that animates node.Rotation to the
// given Euler angles over the specified duration using the easing function.
func TweenRotation(node *Node, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, target: node}
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(float32(node.Rotation[i]), float32(to[i]), duration, fn)
		g.fields[i] = &node.Rotation[i]
		g.to[i] = to[i]
	}
	return g
}

// TweenField creates a TweenGroup that animates a single field of node,
// starting from its current value.
func TweenField(node *Node, field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	g.to[0] = to
	return g
}

// Animator runs at most one TweenGroup per node. Playing a new group on a
// node that is still animating replaces the old group, so a re-trigger
// retargets from wherever the node currently is instead of queueing.
type Animator struct {
	active map[uint32]*TweenGroup
}

// NewAnimator creates an empty Animator.
func NewAnimator() *Animator {
	return &Animator{active: make(map[uint32]*TweenGroup)}
}

// Play starts g for node, replacing any group already running on it.
func (a *Animator) Play(node *Node, g *TweenGroup) {
	a.active[node.ID] = g
}

// Update advances every running group by dt seconds and drops finished ones.
func (a *Animator) Update(dt float64) {
	if dt <= 0 {
		return
	}
	for id, g := range a.active {
		g.Update(float32(dt))
		if g.Done {
			delete(a.active, id)
		}
	}
}

// IsAnimating reports whether node has a running group.
func (a *Animator) IsAnimating(node *Node) bool {
	_, ok := a.active[node.ID]
	return ok
}

// Len returns the number of running groups.
func (a *Animator) Len() int {
	return len(a.active)
}

package walkthrough

import (
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// AnimationState is the open/closed state of one interactive object.
type AnimationState struct {
	Open bool
	// Rest is the closed Y position of a sash window, captured on its first
	// open. HasRest reports whether it has been captured.
	Rest    float64
	HasRest bool
}

// InteractiveItems highlights catalogued objects under the pointer and
// toggles them open or closed on click.
//
// A ray usually hits a mesh nested under the named object (a door's panel or
// handle), so a hit resolves to the hit node when its own name is
// catalogued, else to its parent when the parent's name is, else to nothing.
type InteractiveItems struct {
	catalog  Catalog
	camera   *Camera
	root     *Node
	resolver *Raycaster
	outliner Outliner
	animator *Animator
	cfg      Config
	ease     ease.TweenFunc

	states  map[*Node]*AnimationState
	handles []CallbackHandle
}

// NewInteractiveItems creates the registry. outliner may be nil.
func NewInteractiveItems(catalog Catalog, cam *Camera, root *Node, resolver *Raycaster,
	outliner Outliner, animator *Animator, cfg Config) *InteractiveItems {
	return &InteractiveItems{
		catalog:  catalog,
		camera:   cam,
		root:     root,
		resolver: resolver,
		outliner: outliner,
		animator: animator,
		cfg:      cfg.withDefaults(),
		ease:     ease.OutQuad,
		states:   make(map[*Node]*AnimationState),
	}
}

// Attach subscribes to move and left-click events.
func (it *InteractiveItems) Attach(t *PointerTracker) {
	it.Detach()
	it.handles = append(it.handles,
		t.OnMove(func(ctx PointerContext) {
			it.HandleMove(ctx.Position.Normalised)
		}),
		t.OnLeftClick(func(ctx PointerContext) {
			it.HandleLeftClick(ctx.Position.Normalised)
		}),
	)
}

// Detach removes every subscription made by Attach.
func (it *InteractiveItems) Detach() {
	for _, h := range it.handles {
		h.Remove()
	}
	it.handles = it.handles[:0]
}

// Catalog returns the catalogue in use.
func (it *InteractiveItems) Catalog() Catalog {
	return it.catalog
}

// SetEasing replaces the toggle easing function (ease.OutQuad by default).
func (it *InteractiveItems) SetEasing(fn ease.TweenFunc) {
	it.ease = fn
}

// Resolve maps a hit node to the interactive object it belongs to.
// viaParent is true when the match came from hit's parent.
func (it *InteractiveItems) Resolve(hit *Node) (target *Node, viaParent bool) {
	if hit == nil {
		return nil, false
	}
	if it.catalog.Contains(hit.Name) {
		return hit, false
	}
	if p := hit.Parent; p != nil && it.catalog.Contains(p.Name) {
		return p, true
	}
	return nil, false
}

// HandleMove refreshes highlighting for the pointer at ndc. A direct hit
// outlines the hit object; a hit through the parent outlines all of the
// parent's children so multi-mesh objects light up as one.
func (it *InteractiveItems) HandleMove(ndc Vec2) {
	if it.outliner != nil {
		it.outliner.ClearOutlines()
	}
	hit, ok := it.resolver.Resolve(ndc, it.camera, it.root)
	if !ok {
		return
	}
	target, viaParent := it.Resolve(hit.Node)
	if target == nil || it.outliner == nil {
		return
	}
	if !viaParent {
		it.outliner.OutlineObject(target)
		return
	}
	for _, child := range target.Children() {
		it.outliner.OutlineObject(child)
	}
}

// HandleLeftClick toggles the interactive object under ndc, if any.
func (it *InteractiveItems) HandleLeftClick(ndc Vec2) {
	hit, ok := it.resolver.Resolve(ndc, it.camera, it.root)
	if !ok {
		return
	}
	target, _ := it.Resolve(hit.Node)
	if target == nil {
		return
	}
	it.Toggle(target)
}

// State returns the animation state of node. Untouched, nil and disposed
// objects report the zero (closed) state.
func (it *InteractiveItems) State(node *Node) AnimationState {
	if node == nil || node.IsDisposed() {
		return AnimationState{}
	}
	if st, ok := it.states[node]; ok {
		return *st
	}
	return AnimationState{}
}

// dropDisposed forgets the state of objects disposed since the last toggle.
func (it *InteractiveItems) dropDisposed() {
	for n := range it.states {
		if n.IsDisposed() {
			delete(it.states, n)
		}
	}
}

// Toggle flips node between open and closed and starts the matching
// animation, retargeting any animation already in flight. It returns false
// if node is nil, disposed or not catalogued.
//
// Sash windows capture their rest height on first open and always close
// back to it, even if the window was moved in between.
func (it *InteractiveItems) Toggle(node *Node) bool {
	it.dropDisposed()
	if node == nil || node.IsDisposed() {
		return false
	}
	kind, ok := it.catalog.Kind(node.Name)
	if !ok {
		return false
	}
	st := it.states[node]
	if st == nil {
		st = &AnimationState{}
		it.states[node] = st
	}

	channel, sign := kind.channel()
	var field *float64
	var closed, open float64
	switch channel {
	case channelRotationX:
		field = &node.Rotation[0]
		open = sign * it.cfg.HingeWindowTravel
	case channelRotationY:
		field = &node.Rotation[1]
		open = sign * it.cfg.DoorTravel
	case channelPositionY:
		field = &node.Position[1]
		if !st.Open && !st.HasRest {
			st.Rest = node.Position[1]
			st.HasRest = true
		}
		closed = st.Rest
		open = st.Rest + sign*it.cfg.SashTravel
	}

	to := open
	if st.Open {
		to = closed
	}
	st.Open = !st.Open

	g := TweenField(node, field, to, float32(it.cfg.ToggleDuration), it.ease)
	if it.animator != nil {
		it.animator.Play(node, g)
	}
	logger.Debug("toggle",
		append(nodeFields(node),
			zap.Stringer("kind", kind),
			zap.Bool("open", st.Open),
			zap.Float64("to", to))...)
	return true
}

package walkthrough

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Default camera parameters for a person standing in the model.
const (
	DefaultFOV  = 75.0
	DefaultNear = 0.1
	DefaultFar  = 100.0
)

// DefaultEyePosition is where NewDefaultCamera places the camera: eye
// height, a few steps in front of the house.
var DefaultEyePosition = mgl64.Vec3{0, 1.7, -4.5}

// NewDefaultCamera creates a perspective camera with the stock lens at
// DefaultEyePosition.
func NewDefaultCamera(aspect float64) *Camera {
	cam := NewCamera(DefaultFOV, aspect, DefaultNear, DefaultFar)
	cam.Position = DefaultEyePosition
	return cam
}

// Scene is the top-level object that owns the node tree, the camera, input
// state and the interaction components wired to it.
type Scene struct {
	root       *Node
	camera     *Camera
	tracker    *PointerTracker
	keys       *KeyState
	raycaster  *Raycaster
	controller *CameraController
	items      *InteractiveItems
	animator   *Animator
	outlines   *OutlineSet
	cfg        Config
	debug      bool
	events     handlerRegistry

	// ClearColor fills the background when drawn through Run.
	ClearColor color.RGBA

	input       InputSource
	testRunner  *TestRunner
	injectQueue []syntheticEvent
}

// InputSource feeds live platform input into a scene once per tick.
type InputSource interface {
	Poll(s *Scene)
}

// NewScene creates a scene with an empty root group, viewed through cam on
// the given canvas surface. cfg is validated; zero fields take defaults.
func NewScene(cam *Camera, surface Surface, cfg Config) (*Scene, error) {
	if cam == nil {
		return nil, errors.New("new scene: nil camera")
	}
	cfg, err := cfg.validate()
	if err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}

	s := &Scene{
		root:       NewGroup("root"),
		camera:     cam,
		tracker:    NewPointerTracker(surface),
		keys:       NewKeyState(),
		raycaster:  NewRaycaster(),
		animator:   NewAnimator(),
		outlines:   &OutlineSet{},
		cfg:        cfg,
		ClearColor: color.RGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xff},
	}
	if surface.Height > 0 {
		cam.Aspect = surface.Width / surface.Height
	}
	s.tracker.SetClickTolerance(cfg.ClickTolerance)
	s.controller = NewCameraController(cam, s.keys, s.raycaster, s.root, cfg)
	s.items = NewInteractiveItems(catalog, cam, s.root, s.raycaster, s.outlines, s.animator, cfg)
	s.controller.Attach(s.tracker)
	s.items.Attach(s.tracker)
	s.tracker.OnMove(s.publishIntersection)
	return s, nil
}

// OnObjectIntersected registers fn to receive the nearest hit under the
// pointer on every pointer move that hits a mesh. Moves over empty space
// publish nothing.
func (s *Scene) OnObjectIntersected(fn func(RayHit)) CallbackHandle {
	s.events.nextID++
	id := s.events.nextID
	s.events.intersected = append(s.events.intersected, hitHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.events, event: EventObjectIntersected}
}

func (s *Scene) publishIntersection(ctx PointerContext) {
	if len(s.events.intersected) == 0 {
		return
	}
	hit, ok := s.raycaster.Resolve(ctx.Position.Normalised, s.camera, s.root)
	if !ok {
		return
	}
	for _, h := range s.events.intersected {
		h.fn(hit)
	}
}

// Root returns the scene's root group. Ray queries test its descendants,
// never the root itself.
func (s *Scene) Root() *Node { return s.root }

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera { return s.camera }

// Tracker returns the pointer tracker. Feed raw pointer events to it, or let
// Run do so.
func (s *Scene) Tracker() *PointerTracker { return s.tracker }

// Keys returns the held-key state.
func (s *Scene) Keys() *KeyState { return s.keys }

// Controller returns the camera controller.
func (s *Scene) Controller() *CameraController { return s.controller }

// Items returns the interactive object registry.
func (s *Scene) Items() *InteractiveItems { return s.items }

// Animator returns the animator running open/close tweens.
func (s *Scene) Animator() *Animator { return s.animator }

// Outlines returns the set of currently highlighted nodes.
func (s *Scene) Outlines() *OutlineSet { return s.outlines }

// Config returns the validated configuration.
func (s *Scene) Config() Config { return s.cfg }

// Resize updates the canvas surface and the camera aspect ratio.
func (s *Scene) Resize(surface Surface) {
	s.tracker.SetSurface(surface)
	if surface.Height > 0 {
		s.camera.Aspect = surface.Width / surface.Height
	}
}

// SetInput attaches a live input source. Ticks that consume an injected
// event skip it.
func (s *Scene) SetInput(in InputSource) {
	s.input = in
}

// Tick advances the scene by dt seconds: one scripted step and one injected
// event (or the live input) are processed, then the camera and animations
// are updated.
func (s *Scene) Tick(dt float64) {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	if !s.processInjectedInput() && s.input != nil {
		s.input.Poll(s)
	}

	s.root.UpdateWorldTransforms()
	s.controller.Update(dt)
	s.animator.Update(dt)
	s.debugLogFrame(dt)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and a
// per-tick summary is logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

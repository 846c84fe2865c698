package walkthrough

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// CameraController is a first-person look-and-move controller. Dragging
// turns the view, the wheel pushes the camera forward or back, and a right
// click hops most of the way toward whatever is under the pointer. All input
// is folded in with exponential damping in Update.
type CameraController struct {
	camera   *Camera
	keys     *KeyState
	resolver *Raycaster
	root     *Node
	cfg      Config

	orientation Spherical
	delta       Spherical
	wheel       float64

	target    mgl64.Vec3
	hasTarget bool

	handles []CallbackHandle
}

// NewCameraController creates a controller for cam. keys supplies the speed
// modifier; resolver and root serve right-click moves. Zero cfg fields take
// their defaults.
func NewCameraController(cam *Camera, keys *KeyState, resolver *Raycaster, root *Node, cfg Config) *CameraController {
	return &CameraController{
		camera:      cam,
		keys:        keys,
		resolver:    resolver,
		root:        root,
		cfg:         cfg.withDefaults(),
		orientation: Spherical{Radius: 1, Phi: math.Pi / 2},
	}
}

// Attach subscribes the controller to drag, wheel and right-click events.
func (c *CameraController) Attach(t *PointerTracker) {
	c.Detach()
	c.handles = append(c.handles,
		t.OnLeftClickDrag(func(ctx PointerContext) {
			s := t.Surface()
			c.HandleDrag(ctx.Position.Delta, s.Width, s.Height)
		}),
		t.OnWheel(func(ctx WheelContext) {
			c.HandleWheel(ctx.DeltaY)
		}),
		t.OnRightClick(func(ctx PointerContext) {
			c.HandleRightClick(ctx.Position.Normalised)
		}),
	)
}

// Detach removes every subscription made by Attach.
func (c *CameraController) Detach() {
	for _, h := range c.handles {
		h.Remove()
	}
	c.handles = c.handles[:0]
}

// Orientation returns the current look direction.
func (c *CameraController) Orientation() Spherical {
	return c.orientation
}

// SetOrientation replaces the look direction and drops pending look input.
func (c *CameraController) SetOrientation(s Spherical) {
	s.Radius = 1
	c.orientation = s.MakeSafe()
	c.delta = Spherical{}
}

// OrientationDelta returns the look input not yet applied.
func (c *CameraController) OrientationDelta() Spherical {
	return c.delta
}

// WheelScalar returns the pending forward (+) or backward (-) thrust.
func (c *CameraController) WheelScalar() float64 {
	return c.wheel
}

// Target returns the last look target the camera was pointed at.
func (c *CameraController) Target() mgl64.Vec3 {
	return c.target
}

// Update advances the controller by dt seconds. It is a no-op for dt <= 0.
func (c *CameraController) Update(dt float64) {
	if dt <= 0 {
		return
	}
	damp := c.cfg.LookDamping
	eps := c.cfg.Epsilon

	c.orientation.Theta += c.delta.Theta * damp
	c.orientation.Phi += c.delta.Phi * damp
	c.orientation.Phi = mgl64.Clamp(c.orientation.Phi, 0, math.Pi)
	c.orientation = c.orientation.MakeSafe()

	newTarget := c.orientation.Vec3().Add(c.camera.Position)
	if !c.hasTarget || c.target.Sub(newTarget).Len() > eps {
		c.camera.LookAt(newTarget)
		c.target = newTarget
		c.hasTarget = true
	}

	c.delta.Theta = decay(c.delta.Theta, damp, eps)
	c.delta.Phi = decay(c.delta.Phi, damp, eps)

	speed := c.cfg.SlowSpeed
	if c.keys != nil && c.keys.IsKeyPressed(c.cfg.FastKey) {
		speed = c.cfg.FastSpeed
	}
	if c.wheel != 0 {
		step := c.camera.WorldDirection().Mul(c.wheel * speed * dt)
		c.camera.Position = c.camera.Position.Add(step)
	}
	c.wheel = decay(c.wheel, c.cfg.WheelDamping, eps)
}

// decay shrinks v by the damping fraction and snaps it to zero below eps.
func decay(v, damping, eps float64) float64 {
	v *= 1 - damping
	if math.Abs(v) < eps {
		return 0
	}
	return v
}

// HandleDrag turns a drag of delta pixels on a width x height canvas into
// look input. A full-width drag turns π*Sensitivity*2 radians.
func (c *CameraController) HandleDrag(delta Vec2, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	c.delta.Theta += 2 * math.Pi * c.cfg.Sensitivity * delta.X / width
	c.delta.Phi -= math.Pi * c.cfg.Sensitivity * delta.Y / height
}

// HandleWheel arms a unit thrust opposite to the scroll direction. Each tick
// re-arms it rather than adding to it.
func (c *CameraController) HandleWheel(deltaY float64) {
	switch {
	case deltaY > 0:
		c.wheel = -1
	case deltaY < 0:
		c.wheel = 1
	default:
		c.wheel = 0
	}
}

// HandleRightClick moves the camera ApproachFraction of the way toward the
// scene point under ndc. Misses and hits closer than NearPlaneMultiple times
// the near plane are ignored.
func (c *CameraController) HandleRightClick(ndc Vec2) {
	if c.resolver == nil {
		return
	}
	hit, ok := c.resolver.Resolve(ndc, c.camera, c.root)
	if !ok {
		return
	}
	distance := c.camera.Position.Sub(hit.Point).Len()
	if distance < c.camera.Near*c.cfg.NearPlaneMultiple {
		logger.Debug("right-click move too close", zap.Float64("distance", distance))
		return
	}
	c.camera.Position = lerpVec3(c.camera.Position, hit.Point, c.cfg.ApproachFraction)
}

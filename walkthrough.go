package walkthrough

import "github.com/go-gl/mathgl/mgl64"

// Vec2 is a 2D point or offset. It carries normalised device coordinates,
// canvas-local pixels, screen pixels and per-event deltas.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// LenSqr returns the squared length of v.
func (v Vec2) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Up is the world up axis. The scene uses a right-handed, Y-up frame with
// cameras looking down -Z by default.
var Up = mgl64.Vec3{0, 1, 0}

// EventType identifies a kind of pointer event a PointerTracker publishes.
type EventType uint8

const (
	EventMove          EventType = iota // pointer moved, with or without a button held
	EventLeftClick                      // left button released within the click tolerance
	EventRightClick                     // right button released within the click tolerance
	EventLeftClickDrag                  // pointer moved while the left button is held
	EventWheel                          // wheel tick
	EventObjectIntersected              // pointer moved over a mesh; published by Scene
)

var eventTypeNames = [...]string{
	EventMove:              "move",
	EventLeftClick:         "leftclick",
	EventRightClick:        "rightclick",
	EventLeftClickDrag:     "leftclickdrag",
	EventWheel:             "wheel",
	EventObjectIntersected: "object-intersected",
}

func (e EventType) String() string {
	if int(e) < len(eventTypeNames) {
		return eventTypeNames[e]
	}
	return "unknown"
}

// MouseButton identifies a mouse button. The zero value is MouseButtonNone.
type MouseButton uint8

const (
	MouseButtonNone   MouseButton = iota // unclassified; ignored for click decisions
	MouseButtonLeft                      // primary (left) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
	MouseButtonRight                     // secondary (right) mouse button
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonRight:
		return "right"
	default:
		return "none"
	}
}

// lerpVec3 moves a toward b by fraction t.
func lerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

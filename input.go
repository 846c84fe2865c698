package walkthrough

// --- Constants ---

// defaultClickTolerance is the largest pointer travel, in screen pixels,
// between down and up that still counts as a click.
const defaultClickTolerance = 5.0

// Values for PointerEvent.Button, the discrete id of the button that changed.
const (
	ButtonNoChange  = -1 // moves that press or release nothing
	ButtonPrimary   = 0
	ButtonAuxiliary = 1
	ButtonSecondary = 2
)

// Bits of PointerEvent.Buttons, the live mask of held buttons.
const (
	ButtonsPrimary   = 1
	ButtonsSecondary = 2
	ButtonsAuxiliary = 4
)

// Surface is the on-screen rectangle of the canvas in client pixels.
type Surface struct {
	Left, Top, Width, Height float64
}

// PointerEvent is a raw platform pointer event in client (screen) pixels,
// shaped like a DOM PointerEvent. Note the zero Button is ButtonPrimary.
type PointerEvent struct {
	ClientX, ClientY float64
	Button           int
	Buttons          int
}

// PointerPosition is a snapshot of one pointer event in every coordinate
// space the core uses.
type PointerPosition struct {
	// Normalised is in normalised device coordinates: [-1, 1], +Y up.
	Normalised Vec2
	// Canvas is client pixels relative to the surface origin.
	Canvas Vec2
	// Screen is client pixels.
	Screen Vec2
	// Delta is Screen minus the previous event's Screen. The first event
	// after construction is measured from (0, 0).
	Delta Vec2
}

// PointerContext carries pointer event data.
type PointerContext struct {
	Position PointerPosition
	Button   MouseButton
}

// WheelContext carries wheel event data. DeltaY > 0 scrolls down (away from
// the user).
type WheelContext struct {
	DeltaY float64
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type wheelHandler struct {
	id uint32
	fn func(WheelContext)
}

type hitHandler struct {
	id uint32
	fn func(RayHit)
}

type handlerRegistry struct {
	move          []pointerHandler
	leftClick     []pointerHandler
	rightClick    []pointerHandler
	leftClickDrag []pointerHandler
	wheel         []wheelHandler
	intersected   []hitHandler
	nextID        uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventMove:
		h.reg.move = removePointerHandler(h.reg.move, h.id)
	case EventLeftClick:
		h.reg.leftClick = removePointerHandler(h.reg.leftClick, h.id)
	case EventRightClick:
		h.reg.rightClick = removePointerHandler(h.reg.rightClick, h.id)
	case EventLeftClickDrag:
		h.reg.leftClickDrag = removePointerHandler(h.reg.leftClickDrag, h.id)
	case EventWheel:
		h.reg.wheel = removeWheelHandler(h.reg.wheel, h.id)
	case EventObjectIntersected:
		h.reg.intersected = removeHitHandler(h.reg.intersected, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeHitHandler(s []hitHandler, id uint32) []hitHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = hitHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeWheelHandler(s []wheelHandler, id uint32) []wheelHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = wheelHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- PointerTracker ---

// PointerTracker turns raw pointer events on a canvas into semantic move,
// click and drag events. It keeps the latest move and click positions for
// handlers that want to read them.
type PointerTracker struct {
	surface   Surface
	tolerance float64
	handlers  handlerRegistry

	pendingDown PointerEvent
	hasPending  bool
	dragging    bool

	previous      Vec2
	movePosition  PointerPosition
	clickPosition PointerPosition
}

// NewPointerTracker creates a tracker for the given canvas surface.
func NewPointerTracker(surface Surface) *PointerTracker {
	return &PointerTracker{
		surface:   surface,
		tolerance: defaultClickTolerance,
	}
}

// Surface returns the canvas rectangle.
func (t *PointerTracker) Surface() Surface {
	return t.surface
}

// SetSurface updates the canvas rectangle, e.g. after a resize.
func (t *PointerTracker) SetSurface(s Surface) {
	t.surface = s
}

// SetClickTolerance sets the click-vs-drag radius in pixels.
func (t *PointerTracker) SetClickTolerance(pixels float64) {
	t.tolerance = pixels
}

// MovePosition returns the snapshot of the latest move event.
func (t *PointerTracker) MovePosition() PointerPosition {
	return t.movePosition
}

// ClickPosition returns the snapshot of the latest pointer-up event.
func (t *PointerTracker) ClickPosition() PointerPosition {
	return t.clickPosition
}

// --- Event registration ---

// On registers fn for a pointer event type. EventWheel handlers must be
// registered with OnWheel; passing EventWheel here returns an inert handle.
func (t *PointerTracker) On(event EventType, fn func(PointerContext)) CallbackHandle {
	var list *[]pointerHandler
	switch event {
	case EventMove:
		list = &t.handlers.move
	case EventLeftClick:
		list = &t.handlers.leftClick
	case EventRightClick:
		list = &t.handlers.rightClick
	case EventLeftClickDrag:
		list = &t.handlers.leftClickDrag
	default:
		return CallbackHandle{}
	}
	t.handlers.nextID++
	id := t.handlers.nextID
	*list = append(*list, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &t.handlers, event: event}
}

// Off unregisters the callback behind h. Equivalent to h.Remove().
func (t *PointerTracker) Off(h CallbackHandle) {
	h.Remove()
}

// OnMove registers a callback for pointer move events.
func (t *PointerTracker) OnMove(fn func(PointerContext)) CallbackHandle {
	return t.On(EventMove, fn)
}

// OnLeftClick registers a callback for left clicks.
func (t *PointerTracker) OnLeftClick(fn func(PointerContext)) CallbackHandle {
	return t.On(EventLeftClick, fn)
}

// OnRightClick registers a callback for right clicks.
func (t *PointerTracker) OnRightClick(fn func(PointerContext)) CallbackHandle {
	return t.On(EventRightClick, fn)
}

// OnLeftClickDrag registers a callback fired on every move while the left
// button is held.
func (t *PointerTracker) OnLeftClickDrag(fn func(PointerContext)) CallbackHandle {
	return t.On(EventLeftClickDrag, fn)
}

// OnWheel registers a callback for wheel ticks.
func (t *PointerTracker) OnWheel(fn func(WheelContext)) CallbackHandle {
	t.handlers.nextID++
	id := t.handlers.nextID
	t.handlers.wheel = append(t.handlers.wheel, wheelHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &t.handlers, event: EventWheel}
}

// --- Input processing ---

// HandlePointerDown records a pending press. Nothing fires until the pointer
// moves or is released.
func (t *PointerTracker) HandlePointerDown(e PointerEvent) {
	t.pendingDown = e
	t.hasPending = true
	t.dragging = false
}

// HandlePointerMove updates the move position and fires EventMove. While a
// press is pending and the left button is held, it also fires
// EventLeftClickDrag on every move once the pointer has left the click
// tolerance around the press. The move that leaves the tolerance carries the
// whole travel since the press as its delta, so drag handlers see every pixel.
func (t *PointerTracker) HandlePointerMove(e PointerEvent) {
	t.movePosition = t.position(e)
	button := classifyButton(e)
	ctx := PointerContext{Position: t.movePosition, Button: button}
	t.fire(t.handlers.move, ctx)

	if !t.hasPending {
		return
	}
	if !t.dragging {
		if movedLessThan(t.pendingDown, e, t.tolerance) {
			return
		}
		t.dragging = true
		ctx.Position.Delta = ctx.Position.Screen.Sub(Vec2{t.pendingDown.ClientX, t.pendingDown.ClientY})
	}
	if button == MouseButtonLeft {
		t.fire(t.handlers.leftClickDrag, ctx)
	}
}

// HandlePointerUp updates the click position and classifies the gesture by
// the distance between press and release alone: within the tolerance it fires
// EventLeftClick or EventRightClick by button, even if the pointer strayed
// further in between; anything else ends a drag silently.
func (t *PointerTracker) HandlePointerUp(e PointerEvent) {
	t.clickPosition = t.position(e)

	if !t.hasPending {
		return
	}
	down := t.pendingDown
	t.hasPending = false
	t.dragging = false
	t.pendingDown = PointerEvent{}

	if !movedLessThan(down, e, t.tolerance) {
		return
	}
	button := classifyButton(e)
	ctx := PointerContext{Position: t.clickPosition, Button: button}
	switch button {
	case MouseButtonLeft:
		t.fire(t.handlers.leftClick, ctx)
	case MouseButtonRight:
		t.fire(t.handlers.rightClick, ctx)
	}
}

// HandleWheel publishes a wheel tick.
func (t *PointerTracker) HandleWheel(deltaY float64) {
	ctx := WheelContext{DeltaY: deltaY}
	for _, h := range t.handlers.wheel {
		h.fn(ctx)
	}
}

// HasPendingPress reports whether a press is waiting for its release.
func (t *PointerTracker) HasPendingPress() bool {
	return t.hasPending
}

func (t *PointerTracker) fire(handlers []pointerHandler, ctx PointerContext) {
	for _, h := range handlers {
		h.fn(ctx)
	}
}

// position derives every coordinate view of e and advances the running
// previous position used for deltas.
func (t *PointerTracker) position(e PointerEvent) PointerPosition {
	s := t.surface
	var ndc Vec2
	if s.Width > 0 && s.Height > 0 {
		ndc = Vec2{
			X: ((e.ClientX-s.Left)/s.Width)*2 - 1,
			Y: -((e.ClientY-s.Top)/s.Height)*2 + 1,
		}
	}
	screen := Vec2{e.ClientX, e.ClientY}
	delta := screen.Sub(t.previous)
	t.previous = screen
	return PointerPosition{
		Normalised: ndc,
		Canvas:     Vec2{e.ClientX - s.Left, e.ClientY - s.Top},
		Screen:     screen,
		Delta:      delta,
	}
}

// classifyButton maps DOM-style button fields to a MouseButton. The live
// bitmask and the discrete id are checked together, primary first.
func classifyButton(e PointerEvent) MouseButton {
	switch {
	case e.Buttons == ButtonsPrimary || e.Button == ButtonPrimary:
		return MouseButtonLeft
	case e.Buttons == ButtonsAuxiliary || e.Button == ButtonAuxiliary:
		return MouseButtonMiddle
	case e.Buttons == ButtonsSecondary || e.Button == ButtonSecondary:
		return MouseButtonRight
	}
	return MouseButtonNone
}

// movedLessThan reports whether a and b are closer than radius in screen pixels.
func movedLessThan(a, b PointerEvent, radius float64) bool {
	dx := a.ClientX - b.ClientX
	dy := a.ClientY - b.ClientY
	return dx*dx+dy*dy < radius*radius
}

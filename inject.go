package walkthrough

// syntheticKind is the kind of a queued synthetic event.
type syntheticKind uint8

const (
	syntheticDown syntheticKind = iota
	syntheticMove
	syntheticUp
	syntheticWheel
	syntheticKeyDown
	syntheticKeyUp
)

// syntheticEvent represents a single injected input event. Pointer events
// use client coordinates, exactly like real pointer input.
type syntheticEvent struct {
	kind    syntheticKind
	pointer PointerEvent
	deltaY  float64
	key     string
}

func (s *Scene) inject(e syntheticEvent) {
	s.injectQueue = append(s.injectQueue, e)
}

// InjectPress queues a button press at the given client coordinates. The
// event is consumed on the next Tick.
func (s *Scene) InjectPress(x, y float64, button MouseButton) {
	s.inject(syntheticEvent{kind: syntheticDown, pointer: buttonEvent(x, y, button, true)})
}

// InjectMove queues a pointer move at the given client coordinates with the
// left button held. Use this between InjectPress and InjectRelease to
// simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.inject(syntheticEvent{kind: syntheticMove, pointer: PointerEvent{
		ClientX: x, ClientY: y,
		Button:  ButtonNoChange,
		Buttons: ButtonsPrimary,
	}})
}

// InjectHover queues a pointer move with no button held.
func (s *Scene) InjectHover(x, y float64) {
	s.inject(syntheticEvent{kind: syntheticMove, pointer: PointerEvent{
		ClientX: x, ClientY: y,
		Button: ButtonNoChange,
	}})
}

// InjectRelease queues a button release at the given client coordinates.
func (s *Scene) InjectRelease(x, y float64, button MouseButton) {
	s.inject(syntheticEvent{kind: syntheticUp, pointer: buttonEvent(x, y, button, false)})
}

// InjectClick is a convenience that queues a left press followed by a
// release at the same client coordinates. Consumes two ticks.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y, MouseButtonLeft)
	s.InjectRelease(x, y, MouseButtonLeft)
}

// InjectRightClick queues a right press and release at the same client
// coordinates. Consumes two ticks.
func (s *Scene) InjectRightClick(x, y float64) {
	s.InjectPress(x, y, MouseButtonRight)
	s.InjectRelease(x, y, MouseButtonRight)
}

// InjectDrag queues a full left-button drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate ticks, and release
// at (toX, toY). The total sequence consumes `frames` ticks. Minimum frames
// is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY, MouseButtonLeft)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY, MouseButtonLeft)
}

// InjectWheel queues a wheel tick. deltaY > 0 scrolls down.
func (s *Scene) InjectWheel(deltaY float64) {
	s.inject(syntheticEvent{kind: syntheticWheel, deltaY: deltaY})
}

// InjectKey queues a key press (down) or release (!down).
func (s *Scene) InjectKey(name string, down bool) {
	kind := syntheticKeyUp
	if down {
		kind = syntheticKeyDown
	}
	s.inject(syntheticEvent{kind: kind, key: name})
}

// PendingInjections returns the number of queued synthetic events.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}

// buttonEvent builds the DOM-shaped press or release event for button.
func buttonEvent(x, y float64, button MouseButton, down bool) PointerEvent {
	e := PointerEvent{ClientX: x, ClientY: y}
	switch button {
	case MouseButtonRight:
		e.Button = ButtonSecondary
		if down {
			e.Buttons = ButtonsSecondary
		}
	case MouseButtonMiddle:
		e.Button = ButtonAuxiliary
		if down {
			e.Buttons = ButtonsAuxiliary
		}
	case MouseButtonLeft:
		e.Button = ButtonPrimary
		if down {
			e.Buttons = ButtonsPrimary
		}
	default:
		e.Button = ButtonNoChange
	}
	return e
}

// processInjectedInput pops one event from the inject queue and feeds it to
// the tracker or key state. Returns true if an event was consumed (real
// input should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticDown:
		s.tracker.HandlePointerDown(evt.pointer)
	case syntheticMove:
		s.tracker.HandlePointerMove(evt.pointer)
	case syntheticUp:
		s.tracker.HandlePointerUp(evt.pointer)
	case syntheticWheel:
		s.tracker.HandleWheel(evt.deltaY)
	case syntheticKeyDown:
		s.keys.Press(evt.key)
	case syntheticKeyUp:
		s.keys.Release(evt.key)
	}
	return true
}

package walkthrough

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenInput polls Ebitengine's mouse, wheel and keyboard state and feeds
// it into a Scene as DOM-shaped pointer events and key names.
//
// Key names are ebiten.Key names lower-cased ("a", "shiftleft", "space").
// The side-agnostic modifiers "shift", "control", "alt" and "meta" are also
// reported while either side is held.
type EbitenInput struct {
	keyBuf  []ebiten.Key
	lastX   int
	lastY   int
	seen    bool
	focused bool
	modHeld [len(modifierKeys)]bool
}

var mouseButtons = [...]struct {
	button ebiten.MouseButton
	id     int
	mask   int
}{
	{ebiten.MouseButtonLeft, ButtonPrimary, ButtonsPrimary},
	{ebiten.MouseButtonMiddle, ButtonAuxiliary, ButtonsAuxiliary},
	{ebiten.MouseButtonRight, ButtonSecondary, ButtonsSecondary},
}

var modifierKeys = [...]struct {
	name string
	keys [3]ebiten.Key
}{
	{"shift", [3]ebiten.Key{ebiten.KeyShift, ebiten.KeyShiftLeft, ebiten.KeyShiftRight}},
	{"control", [3]ebiten.Key{ebiten.KeyControl, ebiten.KeyControlLeft, ebiten.KeyControlRight}},
	{"alt", [3]ebiten.Key{ebiten.KeyAlt, ebiten.KeyAltLeft, ebiten.KeyAltRight}},
	{"meta", [3]ebiten.Key{ebiten.KeyMeta, ebiten.KeyMetaLeft, ebiten.KeyMetaRight}},
}

// NewEbitenInput creates an input source for Scene.SetInput.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{focused: true}
}

// Poll implements InputSource.
func (in *EbitenInput) Poll(s *Scene) {
	in.pollKeys(s.keys)
	in.pollPointer(s.tracker)
}

// heldMask returns the DOM-style bitmask of held mouse buttons.
func heldMask() int {
	mask := 0
	for _, b := range mouseButtons {
		if ebiten.IsMouseButtonPressed(b.button) {
			mask |= b.mask
		}
	}
	return mask
}

func (in *EbitenInput) pollPointer(t *PointerTracker) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	mask := heldMask()

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.button) {
			t.HandlePointerDown(PointerEvent{ClientX: x, ClientY: y, Button: b.id, Buttons: mask})
		}
	}
	if !in.seen || mx != in.lastX || my != in.lastY {
		in.seen = true
		in.lastX, in.lastY = mx, my
		t.HandlePointerMove(PointerEvent{ClientX: x, ClientY: y, Button: ButtonNoChange, Buttons: mask})
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(b.button) {
			t.HandlePointerUp(PointerEvent{ClientX: x, ClientY: y, Button: b.id, Buttons: mask})
		}
	}

	// Ebitengine reports wheel-up as positive; DOM deltaY is positive down.
	if _, wy := ebiten.Wheel(); wy != 0 {
		t.HandleWheel(-wy)
	}
}

func (in *EbitenInput) pollKeys(k *KeyState) {
	focused := ebiten.IsFocused()
	if !focused {
		if in.focused {
			k.Reset()
			in.modHeld = [len(modifierKeys)]bool{}
		}
		in.focused = false
		return
	}
	in.focused = true

	in.keyBuf = inpututil.AppendJustPressedKeys(in.keyBuf[:0])
	for _, key := range in.keyBuf {
		k.Press(strings.ToLower(key.String()))
	}
	in.keyBuf = inpututil.AppendJustReleasedKeys(in.keyBuf[:0])
	for _, key := range in.keyBuf {
		k.Release(strings.ToLower(key.String()))
	}

	for i, m := range modifierKeys {
		held := false
		for _, key := range m.keys {
			if ebiten.IsKeyPressed(key) {
				held = true
				break
			}
		}
		switch {
		case held && !in.modHeld[i]:
			k.Press(m.name)
		case !held && in.modHeld[i]:
			k.Release(m.name)
		}
		in.modHeld[i] = held
	}
}

package walkthrough

import "strings"

// KeyState tracks which keys are held. Names are matched case-insensitively.
type KeyState struct {
	held map[string]struct{}
}

// NewKeyState creates an empty KeyState.
func NewKeyState() *KeyState {
	return &KeyState{held: make(map[string]struct{})}
}

// Press marks name as held.
func (k *KeyState) Press(name string) {
	k.held[strings.ToLower(name)] = struct{}{}
}

// Release marks name as released.
func (k *KeyState) Release(name string) {
	delete(k.held, strings.ToLower(name))
}

// IsKeyPressed reports whether name is held.
func (k *KeyState) IsKeyPressed(name string) bool {
	_, ok := k.held[strings.ToLower(name)]
	return ok
}

// Reset releases every key, e.g. when the window loses focus and key-up
// events will never arrive.
func (k *KeyState) Reset() {
	clear(k.held)
}

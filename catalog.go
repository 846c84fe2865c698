package walkthrough

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// InteractionKind says how a catalogued object moves when toggled.
type InteractionKind uint8

const (
	KindHingeDoor          InteractionKind = iota + 1 // swings about Y, positive travel
	KindHingeDoorInverse                              // swings about Y, negative travel
	KindSashWindowBottom                              // slides up along Y
	KindSashWindowTop                                 // slides down along Y
	KindHingeWindow                                   // tilts about X, positive travel
	KindHingeWindowInverse                            // tilts about X, negative travel
)

var kindNames = map[InteractionKind]string{
	KindHingeDoor:          "hinge-door",
	KindHingeDoorInverse:   "hinge-door-inverse",
	KindSashWindowBottom:   "sash-window-bottom",
	KindSashWindowTop:      "sash-window-top",
	KindHingeWindow:        "hinge-window",
	KindHingeWindowInverse: "hinge-window-inverse",
}

func (k InteractionKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ErrUnknownKind is returned when an interaction kind name is not recognised.
var ErrUnknownKind = errors.New("unknown interaction kind")

// ParseInteractionKind parses the string form of a kind.
func ParseInteractionKind(s string) (InteractionKind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// toggleChannel is the transform component a kind animates.
type toggleChannel uint8

const (
	channelRotationX toggleChannel = iota
	channelRotationY
	channelPositionY
)

// channel returns the animated component and the sign of the travel.
func (k InteractionKind) channel() (toggleChannel, float64) {
	switch k {
	case KindHingeDoor:
		return channelRotationY, 1
	case KindHingeDoorInverse:
		return channelRotationY, -1
	case KindSashWindowBottom:
		return channelPositionY, 1
	case KindSashWindowTop:
		return channelPositionY, -1
	case KindHingeWindow:
		return channelRotationX, 1
	case KindHingeWindowInverse:
		return channelRotationX, -1
	}
	return channelRotationY, 0
}

// Catalog maps scene object names to interaction kinds. It is read-only after
// construction.
type Catalog struct {
	entries map[string]InteractionKind
}

// NewCatalog builds a catalogue from entries. Names must be non-empty and
// kinds known.
func NewCatalog(entries map[string]InteractionKind) (Catalog, error) {
	c := Catalog{entries: make(map[string]InteractionKind, len(entries))}
	for name, kind := range entries {
		if name == "" {
			return Catalog{}, errors.New("catalog entry with empty name")
		}
		if _, ok := kindNames[kind]; !ok {
			return Catalog{}, fmt.Errorf("%w: %d for %q", ErrUnknownKind, kind, name)
		}
		c.entries[name] = kind
	}
	return c, nil
}

// Kind returns the interaction kind for name.
func (c Catalog) Kind(name string) (InteractionKind, bool) {
	k, ok := c.entries[name]
	return k, ok
}

// Contains reports whether name is catalogued.
func (c Catalog) Contains(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Len returns the number of entries.
func (c Catalog) Len() int {
	return len(c.entries)
}

// Names returns the catalogued names in sorted order.
func (c Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.entries))
}

// DefaultCatalog returns the fixtures of the stock house model.
func DefaultCatalog() Catalog {
	entries := make(map[string]InteractionKind, 28)
	add := func(kind InteractionKind, names ...string) {
		for _, n := range names {
			entries[n] = kind
		}
	}
	add(KindHingeDoor,
		"Living_room_door",
		"Livingroom_cupboard_door_right",
		"Back_hall_door",
		"Understairs_door_right",
		"Kitchen_door",
		"Bathroom_door",
		"Back_door",
		"Bedroom1_door",
		"Landing_cupboard_door",
	)
	add(KindHingeDoorInverse,
		"Front_door",
		"Study_door",
		"Study_cupboard_door",
		"Livingroom_cupboard_door_left",
		"Understairs_door_left",
		"Bedroom2_door",
	)
	add(KindSashWindowBottom,
		"Study_window_base",
		"Livingroom_window_base_left",
		"Livingroom_window_base_mid",
		"Livingroom_window_base_right",
	)
	add(KindSashWindowTop,
		"Study_window_top",
		"Livingroom_window_top_left",
		"Livingroom_window_top_mid",
		"Livingroom_window_top_right",
	)
	add(KindHingeWindow,
		"Bedroom1_window",
		"Bedroom2_window",
	)
	add(KindHingeWindowInverse,
		"Kitchen_window_left",
		"Kitchen_window_right",
		"Bathroom_window",
	)
	return Catalog{entries: entries}
}

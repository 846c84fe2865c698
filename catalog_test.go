package walkthrough

import (
	"errors"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() != 28 {
		t.Errorf("Len = %d, want 28", c.Len())
	}

	tests := []struct {
		name string
		want InteractionKind
	}{
		{"Living_room_door", KindHingeDoor},
		{"Front_door", KindHingeDoorInverse},
		{"Study_window_base", KindSashWindowBottom},
		{"Livingroom_window_top_mid", KindSashWindowTop},
		{"Bedroom2_window", KindHingeWindow},
		{"Bathroom_window", KindHingeWindowInverse},
	}
	for _, tt := range tests {
		got, ok := c.Kind(tt.name)
		if !ok || got != tt.want {
			t.Errorf("Kind(%q) = %v, %v; want %v", tt.name, got, ok, tt.want)
		}
	}
	if c.Contains("front_door") {
		t.Error("names are case-sensitive")
	}
}

func TestCatalogNamesSorted(t *testing.T) {
	c, err := NewCatalog(map[string]InteractionKind{
		"b": KindHingeDoor,
		"a": KindSashWindowTop,
		"c": KindHingeWindow,
	})
	if err != nil {
		t.Fatal(err)
	}
	names := c.Names()
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Errorf("Names = %v, want [a b c]", names)
	}
}

func TestNewCatalogRejects(t *testing.T) {
	if _, err := NewCatalog(map[string]InteractionKind{"": KindHingeDoor}); err == nil {
		t.Error("expected error for empty name")
	}
	_, err := NewCatalog(map[string]InteractionKind{"x": 0})
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
}

func TestParseInteractionKind(t *testing.T) {
	for k := KindHingeDoor; k <= KindHingeWindowInverse; k++ {
		got, err := ParseInteractionKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseInteractionKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseInteractionKind("trapdoor"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
	if got := InteractionKind(99).String(); got != "unknown" {
		t.Errorf("String = %q, want unknown", got)
	}
}

func TestKindChannel(t *testing.T) {
	tests := []struct {
		kind    InteractionKind
		channel toggleChannel
		sign    float64
	}{
		{KindHingeDoor, channelRotationY, 1},
		{KindHingeDoorInverse, channelRotationY, -1},
		{KindSashWindowBottom, channelPositionY, 1},
		{KindSashWindowTop, channelPositionY, -1},
		{KindHingeWindow, channelRotationX, 1},
		{KindHingeWindowInverse, channelRotationX, -1},
	}
	for _, tt := range tests {
		ch, sign := tt.kind.channel()
		if ch != tt.channel || sign != tt.sign {
			t.Errorf("%v.channel() = %v, %v; want %v, %v", tt.kind, ch, sign, tt.channel, tt.sign)
		}
	}
}

package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFlap) {
		t.Error("zero InputFrame should have no actions")
	}

	f.Set(ActionFlap)
	if !f.Has(ActionFlap) {
		t.Error("Set(ActionFlap) should be visible through Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionFlap) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionFlap) {
		t.Error("Clone should not share state with its source")
	}
}

func TestActionString(t *testing.T) {
	if ActionFlap.String() != "Flap" {
		t.Errorf("ActionFlap.String() = %q", ActionFlap.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown, got %q", Action(99).String())
	}
}

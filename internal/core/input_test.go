package core

import "testing"

func TestKeyStateTracksHeldKeys(t *testing.T) {
	ks := NewKeyState()

	ks.Apply(Press(KeyLeft))
	if !ks.Down(LeftKeys...) {
		t.Error("Left should be held after press")
	}
	if ks.Axis(LeftKeys, RightKeys) != -1 {
		t.Errorf("Axis() = %d, expected -1", ks.Axis(LeftKeys, RightKeys))
	}

	ks.Apply(Press(KeyD))
	if ks.Axis(LeftKeys, RightKeys) != 0 {
		t.Error("opposing keys should cancel")
	}

	ks.Apply(Release(KeyLeft))
	if ks.Axis(LeftKeys, RightKeys) != 1 {
		t.Error("expected right after releasing left")
	}

	ks.Clear()
	if ks.Down(KeyD) {
		t.Error("Clear should release every key")
	}
}

func TestKeyStateIgnoresClicks(t *testing.T) {
	var ks KeyState
	ks.Apply(Click(MouseLeft, 10, 10))
	if ks.Down(KeyNone) {
		t.Error("clicks must not mark keys as held")
	}
}

func TestEventPressed(t *testing.T) {
	if !Press(KeySpace).Pressed(KeyEnter, KeySpace) {
		t.Error("Pressed should match any listed key")
	}
	if Release(KeySpace).Pressed(KeySpace) {
		t.Error("release must not count as a press")
	}
	if !IsRestart(Press(KeyR)) {
		t.Error("R should restart")
	}
}

func TestKeyString(t *testing.T) {
	if KeyEscape.String() != "Escape" {
		t.Errorf("KeyEscape.String() = %q", KeyEscape.String())
	}
	if Key(999).String() != "Unknown" {
		t.Error("unknown key should stringify as Unknown")
	}
}

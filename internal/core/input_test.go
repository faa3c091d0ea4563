package core

import "testing"

func TestActionVector(t *testing.T) {
	tests := []struct {
		action Action
		dx, dy int
		ok     bool
	}{
		{ActionUp, 0, -1, true},
		{ActionDown, 0, 1, true},
		{ActionLeft, -1, 0, true},
		{ActionRight, 1, 0, true},
		{ActionQuit, 0, 0, false},
		{ActionNone, 0, 0, false},
		{ActionAny, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dx, dy, ok := tc.action.Vector()
			if dx != tc.dx || dy != tc.dy || ok != tc.ok {
				t.Errorf("Vector() = (%d, %d, %v), expected (%d, %d, %v)", dx, dy, ok, tc.dx, tc.dy, tc.ok)
			}
		})
	}
}

func TestActionEnds(t *testing.T) {
	if !ActionQuit.Ends() || !ActionInterrupt.Ends() {
		t.Error("Quit and Interrupt should end the loop")
	}
	for _, a := range []Action{ActionNone, ActionUp, ActionScreenshot, ActionAny} {
		if a.Ends() {
			t.Errorf("%v should not end the loop", a)
		}
	}
}

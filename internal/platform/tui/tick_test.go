package tui

import "testing"

func TestTickCmdHandlesNonPositiveRate(t *testing.T) {
	// A zero or negative --fps must not divide by zero.
	for _, rate := range []int{0, -5, 60} {
		if cmd := tickCmd(rate); cmd == nil {
			t.Errorf("tickCmd(%d) returned nil", rate)
		}
	}
}

package web

import (
	"math"
	"testing"

	"github.com/vovakirdan/site-arcade/internal/core"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		msg   clientMessage
		valid bool
	}{
		{"start", clientMessage{Type: msgStart}, true},
		{"tap", clientMessage{Type: msgTap}, true},
		{"arrow key", clientMessage{Type: msgKey, Key: "ArrowLeft", Down: true}, true},
		{"unmapped key", clientMessage{Type: msgKey, Key: "Tab"}, false},
		{"resize", clientMessage{Type: msgResize, Width: 320, Height: 240}, true},
		{"zero resize", clientMessage{Type: msgResize, Width: 0, Height: 240}, false},
		{"infinite resize", clientMessage{Type: msgResize, Width: math.Inf(1), Height: 240}, false},
		{"no type", clientMessage{}, false},
		{"unknown type", clientMessage{Type: "fly"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.validate()
			if (err == nil) != tc.valid {
				t.Errorf("validate() = %v, expected valid=%v", err, tc.valid)
			}
		})
	}
}

func TestEvents(t *testing.T) {
	tests := []struct {
		name     string
		msg      clientMessage
		expected []core.InputEvent
	}{
		{"left down", clientMessage{Type: msgKey, Key: "a", Down: true}, []core.InputEvent{core.Press(core.ActionLeft)}},
		{"right up", clientMessage{Type: msgKey, Key: "ArrowRight"}, []core.InputEvent{core.Release(core.ActionRight)}},
		{"pause up ignored", clientMessage{Type: msgKey, Key: "p"}, nil},
		{"reset", clientMessage{Type: msgReset}, []core.InputEvent{core.Press(core.ActionReset)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.msg.events()
			if len(got) != len(tc.expected) {
				t.Fatalf("events() = %v, expected %v", got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("events()[%d] = %v, expected %v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

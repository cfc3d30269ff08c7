package raster

import (
	"testing"

	"github.com/vovakirdan/site-arcade/internal/core"
)

func TestNewLayout(t *testing.T) {
	l := NewLayout(640, 480)

	if l.Area.W != 640 || l.Area.H != 436 {
		t.Errorf("Area = %+v, expected 640x436", l.Area)
	}
	if l.Toolbar.Y != 436 || l.Toolbar.H != 44 {
		t.Errorf("Toolbar = %+v", l.Toolbar)
	}
	if l.Start.Overlaps(l.Reset) {
		t.Error("buttons should not overlap")
	}

	tiny := NewLayout(10, 10)
	if tiny.Area.H != 0 {
		t.Errorf("Area.H = %v for a window shorter than the toolbar, expected 0", tiny.Area.H)
	}
}

func TestHitTest(t *testing.T) {
	l := NewLayout(640, 480)

	tests := []struct {
		name     string
		x, y     float64
		expected core.Action
	}{
		{"start button", l.Start.X + 1, l.Start.Y + 1, core.ActionStart},
		{"reset button", l.Reset.X + 1, l.Reset.Y + 1, core.ActionReset},
		{"play area", 320, 200, core.ActionTap},
		{"empty toolbar", 600, 470, core.ActionNone},
		{"outside", -5, 10, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.HitTest(tc.x, tc.y); got != tc.expected {
				t.Errorf("HitTest(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

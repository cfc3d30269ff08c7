package raster

import "github.com/vovakirdan/site-arcade/internal/core"

// Toolbar geometry in device-independent pixels.
const (
	toolbarH = 44.0
	buttonW  = 88.0
	buttonH  = 28.0
	padding  = 8.0
)

// Layout splits the window into the play area and the toolbar below it.
type Layout struct {
	Area    core.Rect
	Toolbar core.Rect
	Start   core.Rect
	Reset   core.Rect
}

// NewLayout computes the layout for a window of w x h pixels.
func NewLayout(w, h float64) Layout {
	w, h = max(w, 0), max(h, 0)
	areaH := max(h-toolbarH, 0)
	top := areaH + (toolbarH-buttonH)/2

	return Layout{
		Area:    core.NewRect(0, 0, w, areaH),
		Toolbar: core.NewRect(0, areaH, w, h-areaH),
		Start:   core.NewRect(padding, top, buttonW, buttonH),
		Reset:   core.NewRect(padding*2+buttonW, top, buttonW, buttonH),
	}
}

// HitTest maps a pointer press to an action: the two buttons start and reset
// the game, anywhere in the play area taps.
func (l Layout) HitTest(x, y float64) core.Action {
	switch {
	case l.Start.Contains(x, y):
		return core.ActionStart
	case l.Reset.Contains(x, y):
		return core.ActionReset
	case l.Area.Contains(x, y):
		return core.ActionTap
	}
	return core.ActionNone
}

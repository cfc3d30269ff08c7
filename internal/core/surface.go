package core

import (
	"fmt"
	"image/color"
)

// Surface is a 2D raster drawing target sized in device-independent pixels.
// Platforms implement it on top of terminal cells, GPU images or a recorded
// draw list; games only ever draw through this interface.
type Surface interface {
	// Size returns the drawable width and height.
	Size() (w, h float64)
	// Clear blanks the whole surface.
	Clear()
	// FillRect fills a rectangle. Colors with alpha below 1 blend over
	// what is already drawn.
	FillRect(r Rect, c color.Color)
	// DrawTextCentered draws a single line of text centered on (x, y).
	DrawTextCentered(x, y float64, text string, c color.Color)
}

// OpKind names a recorded drawing operation.
type OpKind string

const (
	OpClear OpKind = "clear"
	OpRect  OpKind = "rect"
	OpText  OpKind = "text"
)

// DrawOp is one recorded drawing operation. Color is a CSS rgba() value so the
// list can be replayed on an HTML canvas as-is.
type DrawOp struct {
	Kind  OpKind  `json:"op"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w,omitempty"`
	H     float64 `json:"h,omitempty"`
	Text  string  `json:"text,omitempty"`
	Color string  `json:"color,omitempty"`
}

// DrawList is a Surface that records operations instead of rasterizing them.
// Clear discards everything recorded so far, so the list always describes a
// single frame.
type DrawList struct {
	width  float64
	height float64
	ops    []DrawOp
}

// NewDrawList creates an empty draw list of the given size.
func NewDrawList(width, height float64) *DrawList {
	d := &DrawList{}
	d.Resize(width, height)
	return d
}

// Resize changes the reported surface size. Recorded operations are kept.
func (d *DrawList) Resize(width, height float64) {
	d.width = max(width, 0)
	d.height = max(height, 0)
}

// Size returns the surface size.
func (d *DrawList) Size() (float64, float64) {
	return d.width, d.height
}

// Clear drops all recorded operations and records a clear.
func (d *DrawList) Clear() {
	d.ops = append(d.ops[:0], DrawOp{Kind: OpClear, W: d.width, H: d.height})
}

// FillRect records a filled rectangle.
func (d *DrawList) FillRect(r Rect, c color.Color) {
	d.ops = append(d.ops, DrawOp{Kind: OpRect, X: r.X, Y: r.Y, W: r.W, H: r.H, Color: CSSColor(c)})
}

// DrawTextCentered records a centered text line.
func (d *DrawList) DrawTextCentered(x, y float64, text string, c color.Color) {
	d.ops = append(d.ops, DrawOp{Kind: OpText, X: x, Y: y, Text: text, Color: CSSColor(c)})
}

// Ops returns a copy of the recorded operations.
func (d *DrawList) Ops() []DrawOp {
	out := make([]DrawOp, len(d.ops))
	copy(out, d.ops)
	return out
}

// CSSColor formats a color as a CSS rgba() string.
func CSSColor(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", n.R, n.G, n.B, float64(n.A)/255)
}

// Package raster runs games in a desktop window through Ebitengine.
package raster

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/site-arcade/internal/core"
)

// Debug font glyph size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// Surface draws onto an ebiten image. Callers work in device-independent
// pixels; the surface multiplies everything by the device scale factor.
type Surface struct {
	dst        *ebiten.Image
	scale      float64
	background color.Color
	scratch    *ebiten.Image // Text is printed here, then tinted and scaled
}

// NewSurface creates a surface with the given clear color.
func NewSurface(background color.Color) *Surface {
	return &Surface{scale: 1, background: background}
}

// Target points the surface at a new destination for this frame.
// Non-positive scales are treated as 1.
func (s *Surface) Target(dst *ebiten.Image, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.dst = dst
	s.scale = scale
}

// Size returns the destination size in device-independent pixels.
func (s *Surface) Size() (float64, float64) {
	if s.dst == nil {
		return 0, 0
	}
	b := s.dst.Bounds()
	return float64(b.Dx()) / s.scale, float64(b.Dy()) / s.scale
}

// Clear fills the destination with the background color.
func (s *Surface) Clear() {
	if s.dst == nil {
		return
	}
	s.dst.Fill(s.background)
}

// FillRect fills a rectangle; translucent colors blend over the frame.
func (s *Surface) FillRect(r core.Rect, c color.Color) {
	if s.dst == nil || c == nil {
		return
	}
	b := s.dst.Bounds()
	vector.FillRect(s.dst,
		float32(float64(b.Min.X)+r.X*s.scale), float32(float64(b.Min.Y)+r.Y*s.scale),
		float32(r.W*s.scale), float32(r.H*s.scale),
		c, false)
}

// DrawTextCentered prints text with the debug font, centered on (x, y).
func (s *Surface) DrawTextCentered(x, y float64, text string, c color.Color) {
	if s.dst == nil || text == "" {
		return
	}
	tw := utf8.RuneCountInString(text) * glyphW
	if s.scratch == nil || s.scratch.Bounds().Dx() < tw {
		s.scratch = ebiten.NewImage(max(tw, 256), glyphH)
	}
	s.scratch.Clear()
	ebitenutil.DebugPrintAt(s.scratch, text, 0, 0)

	b := s.dst.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.scale, s.scale)
	op.GeoM.Translate(
		float64(b.Min.X)+x*s.scale-float64(tw)*s.scale/2,
		float64(b.Min.Y)+y*s.scale-float64(glyphH)*s.scale/2,
	)
	if c != nil {
		op.ColorScale.ScaleWithColor(c)
	}
	s.dst.DrawImage(s.scratch.SubImage(image.Rect(0, 0, tw, glyphH)).(*ebiten.Image), op)
}

package tui

import (
	"image/color"
	"math"
	"unicode/utf8"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/site-arcade/internal/core"
)

// FillRune is drawn for opaque rectangles.
const FillRune = '█'

// paletteEntry pairs a terminal color with its value in a perceptual space.
type paletteEntry struct {
	color core.Color
	value colorful.Color
}

var terminalPalette = buildPalette()

func buildPalette() []paletteEntry {
	colors := core.PaletteColors()
	out := make([]paletteEntry, 0, len(colors))
	for _, c := range colors {
		v, err := colorful.Hex(c.Hex())
		if err != nil {
			continue
		}
		out = append(out, paletteEntry{color: c, value: v})
	}
	return out
}

// NearestColor maps an arbitrary color onto the closest terminal palette
// entry by CIE Lab distance. Fully transparent colors map to ColorDefault.
func NearestColor(c color.Color) core.Color {
	if c == nil {
		return core.ColorDefault
	}
	v, ok := colorful.MakeColor(c)
	if !ok {
		return core.ColorDefault
	}

	best := core.ColorDefault
	bestDist := math.Inf(1)
	for _, p := range terminalPalette {
		if d := v.DistanceLab(p.value); d < bestDist {
			best, bestDist = p.color, d
		}
	}
	return best
}

// CellSurface draws a pixel play area onto a character grid.
// Every cell stands for a cellW x cellH block of pixels.
type CellSurface struct {
	screen *core.Screen
	cellW  float64
	cellH  float64
	cache  map[color.RGBA]core.Color
}

// NewCellSurface creates a surface of cols x rows cells.
// Non-positive cell sizes fall back to one pixel per cell.
func NewCellSurface(cols, rows int, cellW, cellH float64) *CellSurface {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &CellSurface{
		screen: core.NewScreen(cols, rows),
		cellW:  cellW,
		cellH:  cellH,
		cache:  make(map[color.RGBA]core.Color),
	}
}

// Resize changes the grid size in cells.
func (s *CellSurface) Resize(cols, rows int) {
	s.screen.Resize(cols, rows)
}

// Screen returns the underlying character buffer.
func (s *CellSurface) Screen() *core.Screen {
	return s.screen
}

// Size returns the play area in pixels.
func (s *CellSurface) Size() (float64, float64) {
	return float64(s.screen.Width()) * s.cellW, float64(s.screen.Height()) * s.cellH
}

// Clear blanks every cell.
func (s *CellSurface) Clear() {
	s.screen.Clear()
}

// FillRect paints the cells covered by r. Opaque colors overwrite the cells
// with solid blocks; translucent ones dim whatever is already drawn.
func (s *CellSurface) FillRect(r core.Rect, c color.Color) {
	if c == nil || r.W <= 0 || r.H <= 0 {
		return
	}
	_, _, _, a := c.RGBA()
	if a == 0 {
		return
	}

	x0, x1 := s.span(r.X, r.Right(), s.cellW)
	y0, y1 := s.span(r.Y, r.Bottom(), s.cellH)
	x0, x1 = max(x0, 0), min(x1, s.screen.Width())
	y0, y1 = max(y0, 0), min(y1, s.screen.Height())

	if a < 0xffff {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if s.screen.Get(x, y) != ' ' {
					s.screen.SetColor(x, y, core.ColorGray)
				}
			}
		}
		return
	}

	cell := core.Cell{Rune: FillRune, Color: s.nearest(c)}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetCell(x, y, cell)
		}
	}
}

// span converts a pixel range to a half-open cell range. Anything with a
// positive size covers at least one cell.
func (s *CellSurface) span(lo, hi, cell float64) (int, int) {
	start := int(math.Round(lo / cell))
	end := int(math.Round(hi / cell))
	if end <= start {
		end = start + 1
	}
	return start, end
}

// DrawTextCentered writes text so its middle lands on the cell holding (x, y).
func (s *CellSurface) DrawTextCentered(x, y float64, text string, c color.Color) {
	col := int(math.Floor(x/s.cellW)) - utf8.RuneCountInString(text)/2
	row := int(math.Floor(y / s.cellH))
	s.screen.DrawText(col, row, text, s.nearest(c))
}

func (s *CellSurface) nearest(c color.Color) core.Color {
	if c == nil {
		return core.ColorDefault
	}
	key := color.RGBAModel.Convert(c).(color.RGBA)
	if tc, ok := s.cache[key]; ok {
		return tc
	}
	tc := NearestColor(c)
	s.cache[key] = tc
	return tc
}

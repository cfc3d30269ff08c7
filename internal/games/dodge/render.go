package dodge

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/site-arcade/internal/config"
	"github.com/vovakirdan/site-arcade/internal/core"
)

// Palette holds the colors used to draw a session.
type Palette struct {
	Player   color.Color
	Obstacle color.Color
	Scrim    color.Color // Translucent layer behind the game over text
	Text     color.Color
}

// NewPalette parses the configured hex colors. Bad values fall back to the
// default palette entry.
func NewPalette(p config.DodgePalette) Palette {
	def := DefaultPalette()
	return Palette{
		Player:   config.ParseColor(p.Player, def.Player),
		Obstacle: config.ParseColor(p.Obstacle, def.Obstacle),
		Scrim:    config.ParseColorAlpha(p.Scrim, p.ScrimAlpha, def.Scrim),
		Text:     config.ParseColor(p.Text, def.Text),
	}
}

// DefaultPalette returns blue player, red obstacles and a dark scrim.
func DefaultPalette() Palette {
	return Palette{
		Player:   color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff},
		Obstacle: color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff},
		Scrim:    color.NRGBA{A: 115},
		Text:     color.White,
	}
}

// GameOverText formats the end-of-run message.
func GameOverText(elapsed float64) string {
	return fmt.Sprintf("Game Over - Time: %.2fs", elapsed)
}

// Render draws the session onto the surface. It never changes the session.
func Render(dst core.Surface, s *Session, pal Palette) {
	if dst == nil || s == nil {
		return
	}

	dst.Clear()

	dst.FillRect(s.Player.Rect(), pal.Player)
	for _, o := range s.Obstacles {
		dst.FillRect(o.Rect(), pal.Obstacle)
	}

	if s.Phase == core.PhaseEnded {
		w, h := dst.Size()
		dst.FillRect(core.NewRect(0, 0, w, h), pal.Scrim)
		dst.DrawTextCentered(w/2, h/2, GameOverText(s.Elapsed), pal.Text)
	}
}

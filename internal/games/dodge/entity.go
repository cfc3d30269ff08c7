package dodge

import "github.com/vovakirdan/site-arcade/internal/core"

// Player is the square the user steers along the bottom of the area.
type Player struct {
	X      float64 // Left edge, clamped into the area every step
	Y      float64 // Top edge, derived from the area height
	Width  float64
	Height float64
	Speed  float64 // Pixels per second while a direction is held
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Obstacle is a falling square.
type Obstacle struct {
	X     float64
	Y     float64 // Starts at -Size and only grows
	Size  float64 // Width and height
	Speed float64 // Pixels per second, fixed at spawn time
}

// Rect returns the obstacle's collision rectangle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Size, o.Size)
}

// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DodgeConfig contains all configuration for the Dodge game.
type DodgeConfig struct {
	Player     DodgePlayer      `yaml:"player"`
	Obstacles  DodgeObstacles   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Palette    DodgePalette     `yaml:"palette"`
}

// DodgePlayer defines the player square.
type DodgePlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Pixels per second
	Margin       float64 `yaml:"margin"`        // Horizontal clamp margin
	Inset        float64 `yaml:"inset"`         // Minimum x when recentering
	BottomOffset float64 `yaml:"bottom_offset"` // Gap between player and area bottom
}

// DodgeObstacles defines falling obstacle generation.
type DodgeObstacles struct {
	MinSize        float64 `yaml:"min_size"`         // Inclusive
	MaxSize        float64 `yaml:"max_size"`         // Exclusive
	BaseSpeed      float64 `yaml:"base_speed"`       // Pixels per second
	SpeedJitter    float64 `yaml:"speed_jitter"`     // Random extra speed in [0, jitter)
	SpeedPerSecond float64 `yaml:"speed_per_second"` // Extra speed per elapsed second
	CullMargin     float64 `yaml:"cull_margin"`      // Distance below the area before removal
}

// DifficultyConfig defines the spawn cadence curve.
// The interval falls linearly from StartInterval by one second every
// RampSeconds of play, and never drops below MinInterval.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	StartInterval float64 `yaml:"start_interval"`
	MinInterval   float64 `yaml:"min_interval"`
	RampSeconds   float64 `yaml:"ramp_seconds"`
}

// DodgePalette holds the hex colors used by the renderer.
type DodgePalette struct {
	Player     string  `yaml:"player"`
	Obstacle   string  `yaml:"obstacle"`
	Scrim      string  `yaml:"scrim"`
	ScrimAlpha float64 `yaml:"scrim_alpha"`
	Text       string  `yaml:"text"`
}

// ClickerConfig contains configuration for the reaction-click game.
type ClickerConfig struct {
	DurationSeconds int    `yaml:"duration_seconds"`
	TextColor       string `yaml:"text_color"`
	AccentColor     string `yaml:"accent_color"`
}

// PlatformConfig holds front-end settings shared by all games.
type PlatformConfig struct {
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
	Web      WebConfig      `yaml:"web"`
}

// TerminalConfig maps the pixel play area onto character cells.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // Pixels per column
	CellHeight float64 `yaml:"cell_height"` // Pixels per row
	HoldMillis int     `yaml:"hold_ms"`     // Key hold window without repeats
}

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"` // Prefix of the window title
}

// WebConfig configures the browser front end.
type WebConfig struct {
	Address string `yaml:"address"`
}

// Validate reports every inconsistent value in the dodge configuration.
func (c DodgeConfig) Validate() error {
	var errs []error
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player speed must not be negative, got %v", c.Player.Speed))
	}
	if c.Obstacles.MinSize <= 0 || c.Obstacles.MaxSize < c.Obstacles.MinSize {
		errs = append(errs, fmt.Errorf("obstacle size range [%v, %v) is invalid", c.Obstacles.MinSize, c.Obstacles.MaxSize))
	}
	if c.Obstacles.BaseSpeed < 0 || c.Obstacles.SpeedJitter < 0 || c.Obstacles.SpeedPerSecond < 0 {
		errs = append(errs, errors.New("obstacle speeds must not be negative"))
	}
	if c.Difficulty.MinInterval <= 0 {
		errs = append(errs, fmt.Errorf("min_interval must be positive, got %v", c.Difficulty.MinInterval))
	}
	if c.Difficulty.StartInterval < c.Difficulty.MinInterval {
		errs = append(errs, fmt.Errorf("start_interval %v is below min_interval %v", c.Difficulty.StartInterval, c.Difficulty.MinInterval))
	}
	if c.Difficulty.Enabled && c.Difficulty.RampSeconds <= 0 {
		errs = append(errs, fmt.Errorf("ramp_seconds must be positive, got %v", c.Difficulty.RampSeconds))
	}
	for name, hex := range map[string]string{
		"player":   c.Palette.Player,
		"obstacle": c.Palette.Obstacle,
		"scrim":    c.Palette.Scrim,
		"text":     c.Palette.Text,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, fmt.Errorf("palette %s: %w", name, err))
		}
	}
	if c.Palette.ScrimAlpha < 0 || c.Palette.ScrimAlpha > 1 {
		errs = append(errs, fmt.Errorf("scrim_alpha must be within [0, 1], got %v", c.Palette.ScrimAlpha))
	}
	return errors.Join(errs...)
}

// Validate reports every inconsistent value in the clicker configuration.
func (c ClickerConfig) Validate() error {
	var errs []error
	if c.DurationSeconds <= 0 {
		errs = append(errs, fmt.Errorf("duration_seconds must be positive, got %d", c.DurationSeconds))
	}
	for name, hex := range map[string]string{"text_color": c.TextColor, "accent_color": c.AccentColor} {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Validate reports every inconsistent value in the platform configuration.
func (c PlatformConfig) Validate() error {
	var errs []error
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("terminal cell size must be positive, got %vx%v", c.Terminal.CellWidth, c.Terminal.CellHeight))
	}
	if c.Terminal.HoldMillis <= 0 {
		errs = append(errs, fmt.Errorf("hold_ms must be positive, got %d", c.Terminal.HoldMillis))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	return errors.Join(errs...)
}

// ParseColor converts a "#rrggbb" string into an opaque color.
// Invalid strings fall back to the provided color.
func ParseColor(hex string, fallback color.Color) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// ParseColorAlpha converts a "#rrggbb" string plus an alpha in [0, 1] into a
// non-premultiplied color.
func ParseColorAlpha(hex string, alpha float64, fallback color.Color) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	a := uint8(clampF(alpha, 0, 1)*255 + 0.5)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

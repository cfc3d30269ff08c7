package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

//go:embed defaults/clicker.yaml
var defaultClickerYAML []byte

//go:embed defaults/platform.yaml
var defaultPlatformYAML []byte

// DefaultDodgeConfig returns the default Dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Player: DodgePlayer{
			Width:        34,
			Height:       34,
			Speed:        340,
			Margin:       4,
			Inset:        8,
			BottomOffset: 8,
		},
		Obstacles: DodgeObstacles{
			MinSize:        28,
			MaxSize:        58,
			BaseSpeed:      160,
			SpeedJitter:    200,
			SpeedPerSecond: 10,
			CullMargin:     50,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			StartInterval: 0.8,
			MinInterval:   0.25,
			RampSeconds:   25,
		},
		Palette: DodgePalette{
			Player:     "#2563eb",
			Obstacle:   "#ef4444",
			Scrim:      "#000000",
			ScrimAlpha: 0.45,
			Text:       "#ffffff",
		},
	}
}

// DefaultClickerConfig returns the default reaction-click configuration.
func DefaultClickerConfig() ClickerConfig {
	return ClickerConfig{
		DurationSeconds: 30,
		TextColor:       "#ffffff",
		AccentColor:     "#facc15",
	}
}

// DefaultPlatformConfig returns the default front-end configuration.
func DefaultPlatformConfig() PlatformConfig {
	return PlatformConfig{
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 20,
			HoldMillis: 550,
		},
		Window: WindowConfig{
			Width:  640,
			Height: 480,
			Title:  "Arcade",
		},
		Web: WebConfig{
			Address: ":8080",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "dodge":
		return defaultDodgeYAML
	case "clicker":
		return defaultClickerYAML
	case "platform":
		return defaultPlatformYAML
	default:
		return nil
	}
}

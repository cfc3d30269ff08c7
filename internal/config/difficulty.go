package config

import "math"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values return "" which
// leaves the loaded config untouched.
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyDodgePreset modifies the config based on a difficulty preset.
// Normal keeps whatever the config file says.
func ApplyDodgePreset(cfg *DodgeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.StartInterval = math.Max(cfg.Difficulty.StartInterval, 1.0)
		cfg.Difficulty.RampSeconds *= 1.6
		cfg.Obstacles.SpeedPerSecond *= 0.5
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.StartInterval *= 0.75
		cfg.Difficulty.MinInterval *= 0.8
		cfg.Obstacles.SpeedPerSecond *= 1.5
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
	if cfg.Difficulty.StartInterval < cfg.Difficulty.MinInterval {
		cfg.Difficulty.StartInterval = cfg.Difficulty.MinInterval
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

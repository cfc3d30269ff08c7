package dodge

import (
	"math"

	"github.com/vovakirdan/site-arcade/internal/config"
)

// Curve maps elapsed run time to the delay between obstacle spawns.
type Curve struct {
	cfg config.DifficultyConfig
}

// NewCurve creates a spawn cadence curve.
func NewCurve(cfg config.DifficultyConfig) Curve {
	return Curve{cfg: cfg}
}

// SpawnInterval returns the spawn delay in seconds after elapsed seconds of
// play. It never increases with time and never drops below the floor.
func (c Curve) SpawnInterval(elapsed float64) float64 {
	if !c.cfg.Enabled || c.cfg.RampSeconds <= 0 {
		return math.Max(c.cfg.MinInterval, c.cfg.StartInterval)
	}
	return math.Max(c.cfg.MinInterval, c.cfg.StartInterval-elapsed/c.cfg.RampSeconds)
}

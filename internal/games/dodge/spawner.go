package dodge

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/site-arcade/internal/config"
)

// Spawner creates obstacles above the play area.
// It owns its own RNG so a seed fully determines the obstacle sequence.
type Spawner struct {
	rng *rand.Rand
	cfg config.DodgeObstacles
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.DodgeObstacles) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Reseed restarts the obstacle sequence.
func (s *Spawner) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Spawn creates one obstacle just above the top edge of an area of the given
// width. Obstacles get faster the longer the run has lasted.
func (s *Spawner) Spawn(areaW, elapsed float64) Obstacle {
	size := s.cfg.MinSize + s.rng.Float64()*(s.cfg.MaxSize-s.cfg.MinSize)
	x := s.rng.Float64() * math.Max(0, areaW-size)
	speed := s.cfg.BaseSpeed + s.rng.Float64()*s.cfg.SpeedJitter + s.cfg.SpeedPerSecond*elapsed

	return Obstacle{
		X:     x,
		Y:     -size,
		Size:  size,
		Speed: speed,
	}
}

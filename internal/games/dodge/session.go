package dodge

import (
	"math"

	"github.com/vovakirdan/site-arcade/internal/config"
	"github.com/vovakirdan/site-arcade/internal/core"
)

// Input is the set of directions held during a step.
type Input struct {
	Left  bool
	Right bool
}

// Session is the complete state of one dodge run.
// It is owned by a single Game and only mutated through Simulation.
type Session struct {
	Phase         core.Phase
	Elapsed       float64 // Seconds of play since start
	SpawnTimer    float64 // Seconds since the last spawn
	SpawnInterval float64 // Current spawn delay, refreshed every step
	Player        Player
	Obstacles     []Obstacle
	AreaW         float64
	AreaH         float64
}

// Simulation advances sessions using one set of tuning values.
type Simulation struct {
	player     config.DodgePlayer
	cullMargin float64
	spawner    *Spawner
	curve      Curve
}

// NewSimulation creates a simulation from config with a seeded spawner.
func NewSimulation(cfg config.DodgeConfig, seed int64) *Simulation {
	return &Simulation{
		player:     cfg.Player,
		cullMargin: cfg.Obstacles.CullMargin,
		spawner:    NewSpawner(seed, cfg.Obstacles),
		curve:      NewCurve(cfg.Difficulty),
	}
}

// Spawner returns the obstacle spawner.
func (sim *Simulation) Spawner() *Spawner {
	return sim.spawner
}

// Curve returns the difficulty curve.
func (sim *Simulation) Curve() Curve {
	return sim.curve
}

// NewSession creates an idle session for an area of the given size.
func (sim *Simulation) NewSession(areaW, areaH float64) *Session {
	s := &Session{
		Obstacles: make([]Obstacle, 0, 16),
	}
	s.AreaW, s.AreaH = math.Max(areaW, 0), math.Max(areaH, 0)
	sim.Reinit(s)
	return s
}

// Reinit puts the session back to an idle, empty state with the player
// centered at the bottom. The area size is kept.
func (sim *Simulation) Reinit(s *Session) {
	s.Phase = core.PhaseIdle
	s.Elapsed = 0
	s.SpawnTimer = 0
	s.SpawnInterval = sim.curve.SpawnInterval(0)
	s.Obstacles = s.Obstacles[:0]
	s.Player = Player{
		Width:  sim.player.Width,
		Height: sim.player.Height,
		Speed:  sim.player.Speed,
	}
	s.Player.X = math.Max(sim.player.Inset, (s.AreaW-s.Player.Width)/2)
	s.Player.Y = sim.restingY(s.AreaH)
}

// Resize changes the area size and moves the player to its new resting row.
// Obstacles and elapsed time are kept.
func (sim *Simulation) Resize(s *Session, areaW, areaH float64) {
	s.AreaW, s.AreaH = math.Max(areaW, 0), math.Max(areaH, 0)
	s.Player.Y = sim.restingY(s.AreaH)
}

func (sim *Simulation) restingY(areaH float64) float64 {
	return math.Max(0, areaH-sim.player.Height-sim.player.BottomOffset)
}

// Step advances a running session by dt seconds and reports whether the run
// ended during this step. Negative dt is treated as zero. Sessions that are
// not running are left untouched.
func (sim *Simulation) Step(s *Session, in Input, dt float64) bool {
	if s.Phase != core.PhaseRunning {
		return false
	}
	dt = math.Max(dt, 0)

	s.Elapsed += dt

	if in.Left {
		s.Player.X -= s.Player.Speed * dt
	}
	if in.Right {
		s.Player.X += s.Player.Speed * dt
	}
	margin := sim.player.Margin
	s.Player.X = core.ClampF(s.Player.X, margin, s.AreaW-s.Player.Width-margin)

	// One spawn at most, leftover time is dropped
	s.SpawnTimer += dt
	s.SpawnInterval = sim.curve.SpawnInterval(s.Elapsed)
	if s.SpawnTimer >= s.SpawnInterval {
		s.SpawnTimer = 0
		s.Obstacles = append(s.Obstacles, sim.spawner.Spawn(s.AreaW, s.Elapsed))
	}

	for i := range s.Obstacles {
		s.Obstacles[i].Y += s.Obstacles[i].Speed * dt
	}

	sim.prune(s)

	playerRect := s.Player.Rect()
	for _, o := range s.Obstacles {
		if core.Overlaps(playerRect, o.Rect()) {
			s.Phase = core.PhaseEnded
			return true
		}
	}
	return false
}

// prune drops obstacles that fell past the cull line by swapping in the tail.
func (sim *Simulation) prune(s *Session) {
	limit := s.AreaH + sim.cullMargin
	for i := 0; i < len(s.Obstacles); {
		if s.Obstacles[i].Y > limit {
			last := len(s.Obstacles) - 1
			s.Obstacles[i] = s.Obstacles[last]
			s.Obstacles = s.Obstacles[:last]
			continue
		}
		i++
	}
}

package dodge

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/site-arcade/internal/config"
	"github.com/vovakirdan/site-arcade/internal/core"
)

func newRunning(t *testing.T, w, h float64) (*Simulation, *Session) {
	t.Helper()
	sim := NewSimulation(config.DefaultDodgeConfig(), 42)
	s := sim.NewSession(w, h)
	s.Phase = core.PhaseRunning
	return sim, s
}

func cloneSession(s *Session) Session {
	c := *s
	c.Obstacles = append([]Obstacle(nil), s.Obstacles...)
	return c
}

func TestNewSessionLayout(t *testing.T) {
	sim := NewSimulation(config.DefaultDodgeConfig(), 1)

	tests := []struct {
		name       string
		w, h       float64
		expectX    float64
		expectY    float64
		expectArea [2]float64
	}{
		{"regular", 400, 300, 183, 258, [2]float64{400, 300}},
		{"narrow uses inset", 20, 300, 8, 258, [2]float64{20, 300}},
		{"short clamps to top", 400, 10, 183, 0, [2]float64{400, 10}},
		{"negative area", -5, -5, 8, 0, [2]float64{0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := sim.NewSession(tc.w, tc.h)
			if s.Phase != core.PhaseIdle {
				t.Errorf("Phase = %v, expected idle", s.Phase)
			}
			if s.Player.X != tc.expectX || s.Player.Y != tc.expectY {
				t.Errorf("player at (%v, %v), expected (%v, %v)", s.Player.X, s.Player.Y, tc.expectX, tc.expectY)
			}
			if s.AreaW != tc.expectArea[0] || s.AreaH != tc.expectArea[1] {
				t.Errorf("area = %vx%v, expected %v", s.AreaW, s.AreaH, tc.expectArea)
			}
			if s.SpawnInterval != 0.8 {
				t.Errorf("SpawnInterval = %v, expected 0.8", s.SpawnInterval)
			}
		})
	}
}

func TestStepClamp(t *testing.T) {
	tests := []struct {
		name    string
		areaW   float64
		startX  float64
		in      Input
		expectX float64
	}{
		{"left edge", 400, 10, Input{Left: true}, 4},
		{"right edge", 400, 300, Input{Right: true}, 362},
		{"both cancel", 400, 100, Input{Left: true, Right: true}, 100},
		{"empty range takes lower bound", 20, 10, Input{Right: true}, 4},
		{"no input clamps stale position", 400, 1000, Input{}, 362},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sim, s := newRunning(t, tc.areaW, 100000)
			s.Player.X = tc.startX
			sim.Step(s, tc.in, 1)
			if s.Player.X != tc.expectX {
				t.Errorf("Player.X = %v, expected %v", s.Player.X, tc.expectX)
			}
		})
	}
}

func TestStepMovesPlayer(t *testing.T) {
	sim, s := newRunning(t, 400, 100000)
	s.Player.X = 200

	sim.Step(s, Input{Left: true}, 0.1)
	if s.Player.X != 166 {
		t.Errorf("after 0.1s left, Player.X = %v, expected 166", s.Player.X)
	}
	sim.Step(s, Input{Right: true}, 0.05)
	if s.Player.X != 183 {
		t.Errorf("after 0.05s right, Player.X = %v, expected 183", s.Player.X)
	}
}

func TestStepAtMostOneSpawn(t *testing.T) {
	// Tall area so nothing is culled or reaches the player
	sim, s := newRunning(t, 400, 100000)

	sim.Step(s, Input{}, 20)
	if len(s.Obstacles) != 1 {
		t.Fatalf("after a 20s step, %d obstacles, expected exactly 1", len(s.Obstacles))
	}
	if s.SpawnTimer != 0 {
		t.Errorf("SpawnTimer = %v, expected 0 after a spawn", s.SpawnTimer)
	}
	if s.SpawnInterval != 0.25 {
		t.Errorf("SpawnInterval = %v, expected 0.25 at 20s", s.SpawnInterval)
	}
}

func TestStepSpawnCadence(t *testing.T) {
	sim, s := newRunning(t, 400, 100000)

	sim.Step(s, Input{}, 0.5)
	if len(s.Obstacles) != 0 {
		t.Fatalf("spawned before the interval elapsed")
	}
	if s.SpawnTimer != 0.5 {
		t.Errorf("SpawnTimer = %v, expected 0.5", s.SpawnTimer)
	}
	sim.Step(s, Input{}, 0.5)
	if len(s.Obstacles) != 1 {
		t.Errorf("expected a spawn once the timer reached the interval, got %d obstacles", len(s.Obstacles))
	}
}

func TestStepZeroAndNegativeDt(t *testing.T) {
	for _, dt := range []float64{0, -0.5} {
		sim, s := newRunning(t, 400, 300)
		s.Obstacles = append(s.Obstacles, Obstacle{X: 10, Y: 20, Size: 30, Speed: 200})
		s.Elapsed = 1.5
		s.SpawnTimer = 0.1
		s.SpawnInterval = sim.Curve().SpawnInterval(1.5)
		before := cloneSession(s)

		if sim.Step(s, Input{Left: true}, dt) {
			t.Errorf("Step(dt=%v) ended the run", dt)
		}
		if !reflect.DeepEqual(cloneSession(s), before) {
			t.Errorf("Step(dt=%v) changed the session:\n got %+v\nwant %+v", dt, *s, before)
		}
	}
}

func TestStepNotRunning(t *testing.T) {
	for _, phase := range []core.Phase{core.PhaseIdle, core.PhaseEnded} {
		sim, s := newRunning(t, 400, 300)
		s.Phase = phase
		before := cloneSession(s)

		if sim.Step(s, Input{Right: true}, 1) {
			t.Errorf("Step() in %v reported an end", phase)
		}
		if !reflect.DeepEqual(cloneSession(s), before) {
			t.Errorf("Step() in %v changed the session", phase)
		}
	}
}

func TestStepMovesAndCullsObstacles(t *testing.T) {
	sim, s := newRunning(t, 400, 300)
	s.Player.X = 4
	s.Obstacles = append(s.Obstacles,
		Obstacle{X: 300, Y: 0, Size: 30, Speed: 100},    // falls to 10
		Obstacle{X: 300, Y: 351, Size: 30, Speed: 0},    // past the cull line
		Obstacle{X: 300, Y: 350, Size: 30, Speed: 0},    // exactly on the cull line
		Obstacle{X: 300, Y: 345, Size: 30, Speed: 1000}, // pushed past it this step
	)

	sim.Step(s, Input{}, 0.1)

	if len(s.Obstacles) != 2 {
		t.Fatalf("%d obstacles survived, expected 2: %+v", len(s.Obstacles), s.Obstacles)
	}
	ys := map[float64]bool{}
	for _, o := range s.Obstacles {
		ys[o.Y] = true
	}
	if !ys[10] || !ys[350] {
		t.Errorf("survivors at %v, expected y=10 and y=350", ys)
	}
}

func TestStepSeparateObstaclesNeverEnd(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Difficulty = config.DifficultyConfig{StartInterval: 1000, MinInterval: 1000}
	sim := NewSimulation(cfg, 3)
	s := sim.NewSession(400, 300)
	s.Phase = core.PhaseRunning
	s.Player.X = 4
	// Beside the player for the whole fall
	s.Obstacles = append(s.Obstacles, Obstacle{X: 200, Y: -40, Size: 40, Speed: 300})

	for i := 0; i < 200; i++ {
		if sim.Step(s, Input{Left: true}, 0.01) {
			t.Fatalf("run ended at step %d with no overlapping obstacle", i)
		}
	}
	if s.Phase != core.PhaseRunning {
		t.Errorf("Phase = %v, expected running", s.Phase)
	}
	if len(s.Obstacles) != 0 {
		t.Errorf("obstacle should have been culled, got %+v", s.Obstacles)
	}
}

func TestStepCollisionEndsRun(t *testing.T) {
	sim, s := newRunning(t, 400, 300)
	s.Obstacles = append(s.Obstacles, Obstacle{X: 0, Y: 0, Size: 1000, Speed: 0})

	if !sim.Step(s, Input{}, 0.016) {
		t.Fatal("Step() with a covering obstacle should end the run")
	}
	if s.Phase != core.PhaseEnded {
		t.Errorf("Phase = %v, expected ended", s.Phase)
	}

	elapsed := s.Elapsed
	sim.Step(s, Input{}, 1)
	if s.Elapsed != elapsed {
		t.Error("Step() after the end advanced elapsed")
	}
}

func TestStepEdgeTouchEndsRun(t *testing.T) {
	sim, s := newRunning(t, 400, 300)
	p := s.Player
	// Bottom edge lands exactly on the player's top edge
	s.Obstacles = append(s.Obstacles, Obstacle{X: p.X, Y: p.Y - 30, Size: 30, Speed: 0})

	if !sim.Step(s, Input{}, 0.001) {
		t.Error("touching edges should end the run")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	sim, s := newRunning(t, 400, 300)
	s.Elapsed = 4.2
	s.Obstacles = append(s.Obstacles, Obstacle{X: 10, Y: 10, Size: 30, Speed: 100})

	sim.Resize(s, 800, 600)

	if s.Player.Y != 558 {
		t.Errorf("Player.Y = %v, expected 558", s.Player.Y)
	}
	if s.Elapsed != 4.2 || len(s.Obstacles) != 1 || s.Phase != core.PhaseRunning {
		t.Errorf("Resize() lost run state: %+v", *s)
	}

	sim.Resize(s, 0, 0)
	if s.Player.Y != 0 {
		t.Errorf("Player.Y = %v after zero resize, expected 0", s.Player.Y)
	}
}

package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the play area and for deterministic simulation.
type RuntimeConfig struct {
	AreaW    float64 // Play area width in device-independent pixels
	AreaH    float64 // Play area height in device-independent pixels
	TickRate int     // Frame ticks per second requested from drivers (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
	Clock    Clock   // Source of run-start timestamps; nil means SystemClock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		AreaW:    640,
		AreaH:    400,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ClockOrDefault returns the configured clock, falling back to SystemClock.
func (c RuntimeConfig) ClockOrDefault() Clock {
	if c.Clock == nil {
		return SystemClock
	}
	return c.Clock
}

// Phase is the lifecycle stage of a game session.
type Phase int

const (
	PhaseIdle    Phase = iota // Waiting for start
	PhaseRunning              // Frames are being simulated
	PhaseEnded                // Run is over, final result shown
)

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase   Phase   // Lifecycle stage
	Score   float64 // Current score in the game's own unit
	Readout string  // Score display text
	Paused  bool    // Running but frame loop suspended
	Active  bool    // Whether the driver should keep delivering ticks
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseEnded
}

// StepResult is returned by Game.Tick() after each frame.
type StepResult struct {
	State GameState
}

// Package dodge implements a falling-block avoidance game.
// The player slides a square along the bottom edge while obstacles rain
// down faster and more often; the score is the time survived.
package dodge

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/site-arcade/internal/config"
	"github.com/vovakirdan/site-arcade/internal/core"
	"github.com/vovakirdan/site-arcade/internal/registry"
)

// PausedText is shown over a paused run.
const PausedText = "PAUSED"

// Game is the lifecycle controller: it turns input events and frame ticks
// into simulation steps.
type Game struct {
	runtime  core.RuntimeConfig
	cfg      config.DodgeConfig
	fixedCfg *config.DodgeConfig // Set by NewWithConfig, bypasses file loading
	sim      *Simulation
	session  *Session
	palette  Palette
	held     Input     // Directions currently held
	paused   bool      // Frame loop suspended mid-run
	lastTick time.Time // Baseline for the next dt, zero means "next tick is dt 0"
	readout  string
	logger   *log.Logger
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names keep whatever the config file says.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new Dodge game instance. Configuration is loaded on Reset.
func New() *Game {
	return &Game{
		logger:  log.New(io.Discard),
		palette: DefaultPalette(),
		readout: formatReadout(0),
	}
}

// NewWithConfig creates a game that always uses the given configuration.
func NewWithConfig(cfg config.DodgeConfig) *Game {
	g := New()
	g.fixedCfg = &cfg
	return g
}

// SetLogger sets the logger used for lifecycle events. Nil discards them.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge"
}

// Reset loads configuration, reseeds the spawner and returns to idle.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.palette = NewPalette(g.cfg.Palette)
	g.sim = NewSimulation(g.cfg, runtime.Seed)
	g.session = g.sim.NewSession(runtime.AreaW, runtime.AreaH)
	g.reset()
}

func (g *Game) loadConfig() config.DodgeConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}

	cfg, err := config.LoadDodge(configPath)
	if err != nil {
		g.logger.Warn("using default dodge config", "error", err)
		cfg = config.DefaultDodgeConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyDodgePreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Resize updates the play area. Obstacles and elapsed time are kept.
func (g *Game) Resize(w, h float64) {
	g.runtime.AreaW, g.runtime.AreaH = w, h
	if g.session == nil {
		return
	}
	g.sim.Resize(g.session, w, h)
	g.logger.Debug("dodge resized", "width", w, "height", h)
}

// Input applies one event. Directions only count while a run is in progress;
// start and reset work from any phase.
func (g *Game) Input(ev core.InputEvent) {
	if g.session == nil {
		return
	}

	switch ev.Action {
	case core.ActionLeft:
		if g.session.Phase == core.PhaseRunning {
			g.held.Left = ev.Down
		}
	case core.ActionRight:
		if g.session.Phase == core.PhaseRunning {
			g.held.Right = ev.Down
		}
	case core.ActionStart:
		if ev.Down {
			g.start()
		}
	case core.ActionReset:
		if ev.Down {
			g.reset()
		}
	case core.ActionPause:
		if ev.Down && g.session.Phase == core.PhaseRunning {
			g.togglePause()
		}
	}
}

// start begins a fresh run, abandoning any run in progress.
func (g *Game) start() {
	g.reset()
	g.session.Phase = core.PhaseRunning
	g.lastTick = g.runtime.ClockOrDefault().Now()
	g.logger.Debug("dodge run started", "width", g.session.AreaW, "height", g.session.AreaH)
}

// reset returns to an idle, empty session.
func (g *Game) reset() {
	g.sim.Reinit(g.session)
	g.held = Input{}
	g.paused = false
	g.lastTick = time.Time{}
	g.readout = formatReadout(0)
	g.logger.Debug("dodge reset")
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	// Time spent paused never reaches the simulation
	g.lastTick = time.Time{}
	g.logger.Debug("dodge pause toggled", "paused", g.paused, "elapsed", g.session.Elapsed)
}

// Tick advances the run to now. It does nothing unless the game is active.
func (g *Game) Tick(now time.Time) core.StepResult {
	if !g.active() {
		return core.StepResult{State: g.State()}
	}

	dt := 0.0
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick).Seconds()
	}
	// A clock that steps backwards yields dt 0 and keeps the later baseline
	if g.lastTick.IsZero() || now.After(g.lastTick) {
		g.lastTick = now
	}

	if g.sim.Step(g.session, g.held, dt) {
		g.held = Input{}
		g.logger.Debug("dodge run ended", "elapsed", g.session.Elapsed, "obstacles", len(g.session.Obstacles))
	} else {
		g.readout = formatReadout(g.session.Elapsed)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) active() bool {
	return g.session != nil && g.session.Phase == core.PhaseRunning && !g.paused
}

// Render draws the current frame. A nil surface is ignored.
func (g *Game) Render(dst core.Surface) {
	if dst == nil || g.session == nil {
		return
	}
	Render(dst, g.session, g.palette)
	if g.paused {
		w, h := dst.Size()
		dst.DrawTextCentered(w/2, h/2, PausedText, g.palette.Text)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Readout: g.readout}
	}
	return core.GameState{
		Phase:   g.session.Phase,
		Score:   g.session.Elapsed,
		Readout: g.readout,
		Paused:  g.paused,
		Active:  g.active(),
	}
}

// Session returns the live session. Callers must not keep it across ticks.
func (g *Game) Session() *Session {
	return g.session
}

func formatReadout(elapsed float64) string {
	return fmt.Sprintf("%.2f", math.Max(elapsed, 0))
}

// Register the game with the registry
func init() {
	registry.Register("dodge", func() registry.Game {
		return New()
	})
}

// Package clicker implements a timed reaction-click game: tap as often as
// possible before the countdown runs out.
package clicker

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/site-arcade/internal/config"
	"github.com/vovakirdan/site-arcade/internal/core"
	"github.com/vovakirdan/site-arcade/internal/registry"
)

const (
	buttonW = 160.0
	buttonH = 60.0
)

var defaultAccent = color.RGBA{R: 0xfa, G: 0xcc, B: 0x15, A: 0xff}

// Game implements the reaction-click game logic.
type Game struct {
	runtime  core.RuntimeConfig
	cfg      config.ClickerConfig
	fixedCfg *config.ClickerConfig
	areaW    float64
	areaH    float64
	phase    core.Phase
	score    int
	timeLeft int       // Whole seconds remaining
	started  time.Time // Run start, countdown is measured from here
	logger   *log.Logger
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new clicker game instance.
func New() *Game {
	cfg := config.DefaultClickerConfig()
	return &Game{
		cfg:      cfg,
		timeLeft: cfg.DurationSeconds,
		logger:   log.New(io.Discard),
	}
}

// NewWithConfig creates a game that always uses the given configuration.
func NewWithConfig(cfg config.ClickerConfig) *Game {
	g := New()
	g.fixedCfg = &cfg
	g.cfg = cfg
	g.timeLeft = cfg.DurationSeconds
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
	return "clicker"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Reaction Click"
}

// Reset loads configuration and returns to idle.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.areaW, g.areaH = max(runtime.AreaW, 0), max(runtime.AreaH, 0)

	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		cfg, err := config.LoadClicker(configPath)
		if err != nil {
			g.logger.Warn("using default clicker config", "error", err)
			cfg = config.DefaultClickerConfig()
		}
		g.cfg = cfg
	}
	g.reset()
}

func (g *Game) reset() {
	g.phase = core.PhaseIdle
	g.score = 0
	g.timeLeft = g.cfg.DurationSeconds
	g.started = time.Time{}
}

// Resize updates the play area.
func (g *Game) Resize(w, h float64) {
	g.areaW, g.areaH = max(w, 0), max(h, 0)
}

// Input applies one event. Start is ignored while a countdown is running.
func (g *Game) Input(ev core.InputEvent) {
	if !ev.Down {
		return
	}

	switch ev.Action {
	case core.ActionStart:
		if g.phase == core.PhaseRunning {
			return
		}
		g.reset()
		g.phase = core.PhaseRunning
		g.started = g.runtime.ClockOrDefault().Now()
		g.logger.Debug("clicker run started", "seconds", g.cfg.DurationSeconds)
	case core.ActionReset:
		g.reset()
	case core.ActionTap:
		if g.phase == core.PhaseRunning {
			g.score++
		}
	}
}

// Tick counts the timer down in whole seconds and ends the run at zero.
func (g *Game) Tick(now time.Time) core.StepResult {
	if g.phase != core.PhaseRunning {
		return core.StepResult{State: g.State()}
	}

	passed := int(now.Sub(g.started) / time.Second)
	g.timeLeft = max(g.cfg.DurationSeconds-max(passed, 0), 0)
	if g.timeLeft == 0 {
		g.phase = core.PhaseEnded
		g.logger.Debug("clicker run ended", "score", g.score)
	}

	return core.StepResult{State: g.State()}
}

// ButtonRect returns the tap target in area coordinates.
func (g *Game) ButtonRect() core.Rect {
	return core.NewRect((g.areaW-buttonW)/2, (g.areaH-buttonH)/2, buttonW, buttonH)
}

// Message returns the end-of-run text, empty while no run has finished.
func (g *Game) Message() string {
	if g.phase != core.PhaseEnded {
		return ""
	}
	return fmt.Sprintf("Time's up! Your score: %d", g.score)
}

// Render draws the tap button, the readout and the result message.
func (g *Game) Render(dst core.Surface) {
	if dst == nil {
		return
	}
	dst.Clear()

	w, h := dst.Size()
	text := config.ParseColor(g.cfg.TextColor, color.White)
	accent := config.ParseColor(g.cfg.AccentColor, defaultAccent)

	btn := g.ButtonRect()
	dst.FillRect(btn, accent)
	cx, cy := btn.Center()
	dst.DrawTextCentered(cx, cy, "TAP", color.Black)

	dst.DrawTextCentered(w/2, h*0.2, g.readout(), text)
	if msg := g.Message(); msg != "" {
		dst.DrawTextCentered(w/2, h*0.8, msg, text)
	}
}

func (g *Game) readout() string {
	return fmt.Sprintf("Time: %d  Score: %d", g.timeLeft, g.score)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:   g.phase,
		Score:   float64(g.score),
		Readout: g.readout(),
		Active:  g.phase == core.PhaseRunning,
	}
}

// Register the game with the registry
func init() {
	registry.Register("clicker", func() registry.Game {
		return New()
	})
}

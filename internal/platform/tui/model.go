package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/site-arcade/internal/config"
	"github.com/vovakirdan/site-arcade/internal/core"
	"github.com/vovakirdan/site-arcade/internal/registry"
)

// chromeRows is the number of terminal rows below the play area
// (status bar and help line).
const chromeRows = 2

// GameModel is the Bubble Tea model for one running game.
// Ticks are only scheduled while the game reports itself active.
type GameModel struct {
	game       registry.Game
	surface    *CellSurface
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	holds      *HoldTracker
	width      int
	height     int
	ticking    bool // A tick is scheduled
	quitting   bool
	backToMenu bool
	standalone bool // No menu to return to, back quits
}

// NewGameModel creates a model for the game sized to a width x height
// terminal. A zero seed is replaced by a time-based one.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, term config.TerminalConfig, width, height int) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := GameModel{
		game:    game,
		surface: NewCellSurface(0, 0, term.CellWidth, term.CellHeight),
		config:  cfg,
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		holds:   NewHoldTracker(time.Duration(term.HoldMillis) * time.Millisecond),
	}
	m.layout(width, height)
	return m
}

// layout sizes the play area to the terminal minus the chrome rows.
func (m *GameModel) layout(width, height int) {
	m.width, m.height = max(width, 0), max(height, 0)
	m.surface.Resize(m.width, max(m.height-chromeRows, 1))
	m.config.AreaW, m.config.AreaH = m.surface.Size()
	m.help.Width = m.width
}

// Init resets the game. Nothing ticks until the game becomes active.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		m.game.Resize(m.config.AreaW, m.config.AreaH)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.game.State().Active {
			return m, nil
		}
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		// Ends a menu-launched program; SessionModel swaps the menu back in
		// before the quit command is ever run.
		m.backToMenu = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		for _, ev := range m.holds.Press(action, time.Now()) {
			m.game.Input(ev)
		}
	case core.ActionStart, core.ActionReset:
		m.holds.Clear()
		m.game.Input(core.Press(action))
	default:
		m.game.Input(core.Press(action))
	}

	return m, m.ensureTicking()
}

// ensureTicking starts the tick loop if the game just became active.
func (m *GameModel) ensureTicking() tea.Cmd {
	if m.ticking || !m.game.State().Active {
		return nil
	}
	m.ticking = true
	return tickCmd(m.config.TickRate)
}

// handleTick advances the game and schedules the next frame while active.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, ev := range m.holds.Expire(now) {
		m.game.Input(ev)
	}

	result := m.game.Tick(now)
	if !result.State.Active {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.surface)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.surface.Screen().String()), 0o600)
}

// View renders the play area, the status bar and the key help.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.surface)
	return RenderScreen(m.surface.Screen()) + "\n" +
		renderStatus(m.game.Title(), m.game.State(), m.width) + "\n" +
		m.help.View(m.keys)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Size returns the terminal size the model is laid out for.
func (m GameModel) Size() (int, int) {
	return m.width, m.height
}

// Run starts a Bubble Tea program for a single game. Back and quit both
// end the program.
func Run(game registry.Game, cfg core.RuntimeConfig, term config.TerminalConfig, width, height int) error {
	model := NewGameModel(game, cfg, term, width, height)
	model.standalone = true
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// RunFromMenu plays a game picked from the menu. It reports whether the
// player asked to quit the arcade rather than go back to the menu.
func RunFromMenu(game registry.Game, cfg core.RuntimeConfig, term config.TerminalConfig, width, height int) (bool, error) {
	final, err := tea.NewProgram(NewGameModel(game, cfg, term, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return true, err
	}
	m, ok := final.(GameModel)
	return !ok || m.IsQuitting(), nil
}

package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/site-arcade/internal/config"
	"github.com/vovakirdan/site-arcade/internal/core"
	"github.com/vovakirdan/site-arcade/internal/registry"
)

var (
	areaBackground    = color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}
	toolbarBackground = color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
	buttonColor       = color.RGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xff}
	labelColor        = color.White
)

// keyBinding maps physical keys to one action. Held bindings also report
// releases; the rest only report presses.
type keyBinding struct {
	keys   []ebiten.Key
	action core.Action
	held   bool
}

var bindings = []keyBinding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, action: core.ActionLeft, held: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, action: core.ActionRight, held: true},
	{keys: []ebiten.Key{ebiten.KeyEnter}, action: core.ActionStart},
	{keys: []ebiten.Key{ebiten.KeyR}, action: core.ActionReset},
	{keys: []ebiten.Key{ebiten.KeySpace}, action: core.ActionTap},
	{keys: []ebiten.Key{ebiten.KeyP}, action: core.ActionPause},
}

// App adapts a registry.Game to ebiten.Game.
type App struct {
	game    registry.Game
	clock   core.Clock
	logger  *log.Logger
	area    *Surface
	chrome  *Surface
	layout  Layout
	scale   float64
	outside image.Point
}

// NewApp wraps a game that has already been Reset.
func NewApp(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	return &App{
		game:   game,
		clock:  cfg.ClockOrDefault(),
		logger: logger,
		area:   NewSurface(areaBackground),
		chrome: NewSurface(toolbarBackground),
		scale:  1,
	}
}

// Layout sizes the offscreen screen in device pixels so drawing stays sharp
// on high-DPI displays, and forwards size changes to the game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if scale <= 0 {
		scale = 1
	}
	if outsideWidth != a.outside.X || outsideHeight != a.outside.Y || scale != a.scale {
		a.outside = image.Pt(outsideWidth, outsideHeight)
		a.scale = scale
		a.layout = NewLayout(float64(outsideWidth), float64(outsideHeight))
		a.game.Resize(a.layout.Area.W, a.layout.Area.H)
		a.logger.Debug("window resized", "width", outsideWidth, "height", outsideHeight, "scale", scale)
	}
	return int(float64(outsideWidth) * scale), int(float64(outsideHeight) * scale)
}

// Update polls input and advances the game one frame.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, ev := range keyEvents() {
		a.game.Input(ev)
	}
	for _, p := range pointerPresses() {
		x, y := float64(p.X)/a.scale, float64(p.Y)/a.scale
		if action := a.layout.HitTest(x, y); action != core.ActionNone {
			a.game.Input(core.Press(action))
		}
	}

	if a.game.State().Active {
		a.game.Tick(a.clock.Now())
	}
	return nil
}

// Draw renders the play area at the top of the window and the toolbar below.
func (a *App) Draw(screen *ebiten.Image) {
	areaPx := image.Rect(0, 0,
		int(a.layout.Area.W*a.scale), int(a.layout.Area.H*a.scale))
	if !areaPx.Empty() {
		a.area.Target(screen.SubImage(areaPx).(*ebiten.Image), a.scale)
		a.game.Render(a.area)
	}

	a.chrome.Target(screen, a.scale)
	a.drawToolbar()
}

func (a *App) drawToolbar() {
	l := a.layout
	a.chrome.FillRect(l.Toolbar, toolbarBackground)
	for _, b := range []struct {
		rect  core.Rect
		label string
	}{
		{l.Start, "Start"},
		{l.Reset, "Reset"},
	} {
		a.chrome.FillRect(b.rect, buttonColor)
		cx, cy := b.rect.Center()
		a.chrome.DrawTextCentered(cx, cy, b.label, labelColor)
	}

	st := a.game.State()
	status := fmt.Sprintf("%s  %s", st.Readout, st.Phase)
	if st.Paused {
		status = fmt.Sprintf("%s  paused", st.Readout)
	}
	left := l.Reset.Right() + padding
	cx := left + (l.Toolbar.W-left)/2
	_, cy := l.Toolbar.Center()
	a.chrome.DrawTextCentered(cx, cy, status, labelColor)
}

func keyEvents() []core.InputEvent {
	var events []core.InputEvent
	for _, b := range bindings {
		for _, k := range b.keys {
			switch {
			case inpututil.IsKeyJustPressed(k):
				events = append(events, core.Press(b.action))
			case b.held && inpututil.IsKeyJustReleased(k):
				events = append(events, core.Release(b.action))
			}
		}
	}
	return events
}

// pointerPresses returns the screen positions of mouse clicks and new touches
// this frame.
func pointerPresses() []image.Point {
	var points []image.Point
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		points = append(points, image.Pt(ebiten.CursorPosition()))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		points = append(points, image.Pt(ebiten.TouchPosition(id)))
	}
	return points
}

// Run opens a window and plays the game until it is closed or Escape is
// pressed.
func Run(game registry.Game, cfg core.RuntimeConfig, win config.WindowConfig, logger *log.Logger) error {
	if cfg.TickRate <= 0 {
		cfg.TickRate = ebiten.DefaultTPS
	}
	cfg.AreaW = float64(win.Width)
	cfg.AreaH = max(float64(win.Height)-toolbarH, 0)
	game.Reset(cfg)

	title := game.Title()
	if win.Title != "" {
		title = win.Title + " - " + title
	}
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(NewApp(game, cfg, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("raster: %w", err)
	}
	return nil
}

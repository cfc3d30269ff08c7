// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/site-arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, frame scheduling, and rendering.
// A game instance is owned by exactly one goroutine.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "dodge", "clicker").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display (e.g., "Dodge").
	Title() string

	// Reset initializes the game for a play area and returns it to idle.
	// The RuntimeConfig provides area dimensions, RNG seed and clock.
	Reset(cfg core.RuntimeConfig)

	// Resize tells the game the play area changed. Safe in any state.
	Resize(w, h float64)

	// Input delivers one press or release. Start and reset controls
	// arrive here too.
	Input(ev core.InputEvent)

	// Tick advances the game to the given frame timestamp.
	// Drivers only need to call it while State().Active is true.
	Tick(now time.Time) core.StepResult

	// Render draws the current game state onto the surface.
	Render(dst core.Surface)

	// State returns the current game state.
	State() core.GameState
}

// LoggerSetter is implemented by games that emit lifecycle logs.
type LoggerSetter interface {
	SetLogger(l *log.Logger)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// ErrUnknownGame is returned by Create for ids nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id. Games call it from init.
// The title is read once from a throwaway instance.
// Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	}
}

// List returns every registered game ordered by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create returns a fresh instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}

// Unregister removes a game. Tests use it to drop throwaway registrations.
func Unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(entries, id)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/site-arcade/internal/platform/tui"
	"github.com/vovakirdan/site-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in this terminal.

Controls:
  Left/Right, A/D  - Move
  Enter            - Start a run (restarts from any state)
  R                - Reset to idle
  Space            - Tap
  P                - Pause
  Esc/B            - Quit when not running
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower ramp, more time between obstacles
  normal - Default ramp
  hard   - Faster ramp, tighter floor
  fixed  - No ramp, the start interval never changes

Examples:
  arcade play dodge
  arcade play dodge --difficulty easy
  arcade play dodge --config ./my-dodge.yaml
  arcade play clicker`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := registry.Create(args[0])
	if err != nil {
		return fmt.Errorf("%w (run 'arcade list' to see available games)", err)
	}

	width, height := terminalSize()
	platform := platformConfig(nil)
	return tui.Run(game, runtimeConfig(), platform.Terminal, width, height)
}

// terminalSize reports the current terminal size, or 80x24 when stdout is
// not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

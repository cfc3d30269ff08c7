package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/site-arcade/internal/platform/raster"
	"github.com/vovakirdan/site-arcade/internal/registry"
)

var (
	flagWindowW int
	flagWindowH int
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open a resizable window and play the specified game.

Drawing follows the display's scale factor, so the game stays sharp on
high-DPI screens.

Controls:
  Left/Right, A/D  - Move
  Enter or Start   - Start a run
  R or Reset       - Reset to idle
  Space or click   - Tap
  P                - Pause
  Esc              - Close the window

Examples:
  arcade window dodge
  arcade window dodge --width 800 --height 600`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowW, "width", 0, "Window width (0 = platform config)")
	windowCmd.Flags().IntVar(&flagWindowH, "height", 0, "Window height (0 = platform config)")
}

func runWindow(_ *cobra.Command, args []string) error {
	logger, err := newLogger("arcade-window")
	if err != nil {
		return err
	}

	game, err := registry.Create(args[0])
	if err != nil {
		return fmt.Errorf("%w (run 'arcade list' to see available games)", err)
	}
	if ls, ok := game.(registry.LoggerSetter); ok {
		ls.SetLogger(logger)
	}

	win := platformConfig(logger).Window
	if flagWindowW > 0 {
		win.Width = flagWindowW
	}
	if flagWindowH > 0 {
		win.Height = flagWindowH
	}
	return raster.Run(game, runtimeConfig(), win, logger)
}

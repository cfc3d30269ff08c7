package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/site-arcade/internal/platform/tui"
	"github.com/vovakirdan/site-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Leaving an idle game with Esc returns you to the menu; Q quits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q/Esc        - Quit

Examples:
  arcade menu
  arcade menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	width, height := terminalSize()
	platform := platformConfig(nil)

	for {
		result, err := tui.RunMenu(width, height)
		if err != nil {
			return err
		}
		width, height = result.Width, result.Height
		if result.Quit || result.GameID == "" {
			return nil
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}

		// A fresh seed per game unless one was pinned.
		quit, err := tui.RunFromMenu(game, runtimeConfig(), platform.Terminal, width, height)
		if err != nil || quit {
			return err
		}
	}
}

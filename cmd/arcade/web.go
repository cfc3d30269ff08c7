package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/site-arcade/internal/platform/web"
)

var (
	flagWebAddr string
	flagWebGame string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve a game to browsers",
	Long: `Start an HTTP server with a page that plays the selected game.

Every browser tab gets its own game session over a websocket; the server
simulates the game and streams each frame to the page.

Examples:
  arcade web                       # Serve dodge on the platform config address
  arcade web --addr :9000          # Listen on port 9000
  arcade web --game clicker        # Serve the reaction-click game`,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "HTTP listen address (default from platform config)")
	webCmd.Flags().StringVar(&flagWebGame, "game", "dodge", "Game every session plays")
}

func runWeb(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("arcade-web")
	if err != nil {
		return err
	}

	cfg := web.DefaultServerConfig()
	if addr := platformConfig(logger).Web.Address; addr != "" {
		cfg.Address = addr
	}
	if flagWebAddr != "" {
		cfg.Address = flagWebAddr
	}
	cfg.GameID = flagWebGame
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	server, err := web.NewServer(cfg, logger)
	if err != nil {
		return err
	}
	return server.ListenAndServe()
}

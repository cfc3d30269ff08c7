// arcade plays small real-time games in a terminal, a desktop window or a
// browser.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game in the terminal
//	arcade menu              - Pick games interactively in the terminal
//	arcade window <game>     - Play a game in a desktop window
//	arcade web               - Serve a game to browsers over websockets
//	arcade serve             - Start SSH server for remote terminal play
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Custom dodge config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/site-arcade/internal/config"
	"github.com/vovakirdan/site-arcade/internal/core"
	"github.com/vovakirdan/site-arcade/internal/games/clicker"
	"github.com/vovakirdan/site-arcade/internal/games/dodge"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagClicker    string
	flagPlatform   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - small real-time games for terminals, windows and browsers",
	Long: `Arcade runs small real-time games: dodge the falling squares, or tap
as fast as you can before the clock runs out.

Available commands:
  list     - Show all available games
  play     - Play a game in the terminal
  menu     - Interactive game picker menu
  window   - Play a game in a desktop window
  web      - Serve a game to browsers
  serve    - Start SSH server for remote play

Examples:
  arcade list
  arcade play dodge
  arcade play dodge --difficulty hard
  arcade window dodge
  arcade web --addr :8080
  arcade serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		dodge.SetConfigPath(flagConfig)
		dodge.SetDifficultyPreset(flagDifficulty)
		clicker.SetConfigPath(flagClicker)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom dodge config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagClicker, "clicker-config", "", "Path to custom clicker config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPlatform, "platform-config", "", "Path to custom platform config YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the stderr logger shared by servers and windowed games.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// runtimeConfig builds the config every front end starts a game with.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// platformConfig loads front-end settings, falling back to the defaults.
func platformConfig(logger *log.Logger) config.PlatformConfig {
	cfg, err := config.LoadPlatform(flagPlatform)
	if err != nil {
		if logger != nil {
			logger.Warn("using default platform config", "error", err)
		}
		return config.DefaultPlatformConfig()
	}
	return cfg
}

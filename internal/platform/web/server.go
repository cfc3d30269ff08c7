// Package web serves games to a browser: an embedded page draws the frames
// each websocket session streams to it.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/site-arcade/internal/core"
	"github.com/vovakirdan/site-arcade/internal/registry"
)

//go:embed static
var staticFiles embed.FS

// ServerConfig holds configuration for the web server.
type ServerConfig struct {
	Address  string     // host:port to listen on
	GameID   string     // Registered game every session plays
	TickRate int        // Frames per second while a game is active
	Seed     int64      // 0 picks a time-based seed per session
	Clock    core.Clock // nil means the system clock
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:  ":8080",
		GameID:   "dodge",
		TickRate: core.DefaultConfig().TickRate,
	}
}

// Server serves the game page and its websocket sessions.
type Server struct {
	config   ServerConfig
	logger   *log.Logger
	upgrader websocket.Upgrader
	static   http.Handler
	http     *http.Server

	// sessions is cancelled on shutdown; hijacked connections are not
	// closed by http.Server.Shutdown.
	sessions context.Context
	cancel   context.CancelFunc
}

// NewServer checks the game id and prepares the handlers.
// A nil logger discards output.
func NewServer(cfg ServerConfig, logger *log.Logger) (*Server, error) {
	if !registry.Exists(cfg.GameID) {
		return nil, fmt.Errorf("web: unknown game %q", cfg.GameID)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("web: static files: %w", err)
	}

	s := &Server{
		config: cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		static: http.FileServer(http.FS(sub)),
	}
	s.sessions, s.cancel = context.WithCancel(context.Background())
	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.http.RegisterOnShutdown(s.cancel)
	return s, nil
}

// Handler returns the HTTP routes: the page at / and sessions at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", s.static)
	mux.HandleFunc("/ws", s.handleSession)
	return mux
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	game, err := registry.Create(s.config.GameID)
	if err != nil {
		s.logger.Error("could not create game", "error", err)
		return
	}
	logger := s.logger.With("remote", r.RemoteAddr)
	if ls, ok := game.(registry.LoggerSetter); ok {
		ls.SetLogger(logger)
	}

	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	area := core.DefaultConfig()
	cfg := core.RuntimeConfig{
		AreaW:    area.AreaW,
		AreaH:    area.AreaH,
		TickRate: s.config.TickRate,
		Seed:     seed,
		Clock:    s.config.Clock,
	}

	logger.Info("session started", "game", s.config.GameID)
	start := time.Now()
	err = newSession(conn, game, cfg, logger).run(s.sessions)
	if err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		logger.Warn("session ended with error", "error", err, "duration", time.Since(start))
		return
	}
	logger.Info("session ended", "duration", time.Since(start))
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Serve serves until ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("starting web server", "address", s.config.Address, "game", s.config.GameID)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("web: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

package web

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/site-arcade/internal/core"
	"github.com/vovakirdan/site-arcade/internal/registry"
)

const writeWait = 5 * time.Second

// session plays one game over one websocket connection. Only the run
// goroutine touches the game and writes to the connection.
type session struct {
	conn     *websocket.Conn
	game     registry.Game
	frame    *core.DrawList
	clock    core.Clock
	interval time.Duration
	logger   *log.Logger
}

func newSession(conn *websocket.Conn, game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) *session {
	rate := cfg.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	game.Reset(cfg)
	return &session{
		conn:     conn,
		game:     game,
		frame:    core.NewDrawList(cfg.AreaW, cfg.AreaH),
		clock:    cfg.ClockOrDefault(),
		interval: time.Second / time.Duration(rate),
		logger:   logger,
	}
}

// run drives the session until the context ends or the connection fails.
func (s *session) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	msgs := make(chan clientMessage)
	readErr := make(chan error, 1)
	go s.readLoop(ctx, msgs, readErr)

	if err := s.sendFrame(); err != nil {
		return err
	}

	var ticker *time.Ticker
	var tickC <-chan time.Time
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		switch active := s.game.State().Active; {
		case active && ticker == nil:
			ticker = time.NewTicker(s.interval)
			tickC = ticker.C
		case !active && ticker != nil:
			ticker.Stop()
			ticker, tickC = nil, nil
		}

		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			return err
		case msg := <-msgs:
			s.apply(msg)
		case <-tickC:
			s.game.Tick(s.clock.Now())
		}

		if err := s.sendFrame(); err != nil {
			return err
		}
	}
}

// readLoop decodes client messages until the connection fails. Malformed
// messages are logged and dropped.
func (s *session) readLoop(ctx context.Context, msgs chan<- clientMessage, readErr chan<- error) {
	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			readErr <- err
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.logger.Warn("discarding malformed message", "error", err)
			continue
		}
		if err := msg.validate(); err != nil {
			s.logger.Warn("discarding message", "error", err)
			continue
		}

		select {
		case msgs <- msg:
		case <-ctx.Done():
			return
		}
	}
}

func (s *session) apply(msg clientMessage) {
	if msg.Type == msgResize {
		s.frame.Resize(msg.Width, msg.Height)
		s.game.Resize(msg.Width, msg.Height)
		return
	}
	for _, ev := range msg.events() {
		s.game.Input(ev)
	}
}

func (s *session) sendFrame() error {
	s.game.Render(s.frame)
	w, h := s.frame.Size()
	st := s.game.State()

	data, err := json.Marshal(frameMessage{
		Type:    "frame",
		Phase:   st.Phase.String(),
		Readout: st.Readout,
		Paused:  st.Paused,
		Width:   w,
		Height:  h,
		Ops:     s.frame.Ops(),
	})
	if err != nil {
		return fmt.Errorf("web: encode frame: %w", err)
	}

	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

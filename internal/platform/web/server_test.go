package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/site-arcade/internal/core"
	_ "github.com/vovakirdan/site-arcade/internal/games/dodge"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	clock := core.NewManualClock(time.Unix(1000, 0))
	srv, err := NewServer(ServerConfig{GameID: "dodge", TickRate: 60, Seed: 1, Clock: clock}, nil)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		t.Fatalf("failed to open websocket connection: %v", err)
	}
	t.Cleanup(func() {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
		if resp != nil {
			resp.Body.Close()
		}
	})
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) frameMessage {
	t.Helper()

	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline: %v", err)
	}
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read frame: %v", err)
	}
	var frame frameMessage
	if err := json.Unmarshal(payload, &frame); err != nil {
		t.Fatalf("failed to decode frame %s: %v", payload, err)
	}
	if frame.Type != "frame" {
		t.Fatalf("message type = %q, expected frame", frame.Type)
	}
	return frame
}

// readUntil skips frames until one matches; ticks keep frames coming while
// the game runs.
func readUntil(t *testing.T, conn *websocket.Conn, match func(frameMessage) bool) frameMessage {
	t.Helper()

	for range 500 {
		if f := readFrame(t, conn); match(f) {
			return f
		}
	}
	t.Fatal("no matching frame")
	return frameMessage{}
}

func send(t *testing.T, conn *websocket.Conn, msg string) {
	t.Helper()

	if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		t.Fatalf("failed to send %s: %v", msg, err)
	}
}

func TestSessionInitialFrame(t *testing.T) {
	conn := dial(t, newTestServer(t))

	f := readFrame(t, conn)
	if f.Phase != "idle" || f.Readout != "0.00" {
		t.Errorf("initial frame phase=%q readout=%q, expected idle 0.00", f.Phase, f.Readout)
	}
	if f.Width != 640 || f.Height != 400 {
		t.Errorf("initial frame size = %vx%v, expected 640x400", f.Width, f.Height)
	}
	if len(f.Ops) < 2 || f.Ops[0].Kind != core.OpClear || f.Ops[1].Kind != core.OpRect {
		t.Errorf("initial ops = %+v, expected clear then the player", f.Ops)
	}
}

func TestSessionResizeStartReset(t *testing.T) {
	conn := dial(t, newTestServer(t))
	readFrame(t, conn)

	send(t, conn, `{"type":"resize","width":300,"height":200}`)
	f := readFrame(t, conn)
	if f.Width != 300 || f.Height != 200 {
		t.Fatalf("frame size after resize = %vx%v, expected 300x200", f.Width, f.Height)
	}
	if player := f.Ops[1]; player.Y != 200-34-8 {
		t.Errorf("player y after resize = %v, expected %v", player.Y, 200-34-8)
	}

	send(t, conn, `{"type":"start"}`)
	readUntil(t, conn, func(f frameMessage) bool { return f.Phase == "running" })

	send(t, conn, `{"type":"key","key":"ArrowLeft","down":true}`)
	send(t, conn, `{"type":"reset"}`)
	f = readUntil(t, conn, func(f frameMessage) bool { return f.Phase == "idle" })
	if f.Readout != "0.00" {
		t.Errorf("readout after reset = %q, expected 0.00", f.Readout)
	}
}

func TestSessionDropsBadMessages(t *testing.T) {
	conn := dial(t, newTestServer(t))
	readFrame(t, conn)

	for _, msg := range []string{
		`{`,
		`{"type":"jump"}`,
		`{"type":"resize","width":-1,"height":10}`,
		`{"type":"key","key":"F5","down":true}`,
	} {
		send(t, conn, msg)
	}
	send(t, conn, `{"type":"start"}`)

	// Only the start message produces a frame; the bad ones were dropped.
	if f := readFrame(t, conn); f.Phase != "running" {
		t.Errorf("phase = %q, expected running", f.Phase)
	}
}

func TestServerServesPage(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "<canvas") {
		t.Errorf("GET / = %d, expected the game page", resp.StatusCode)
	}
}

func TestNewServerUnknownGame(t *testing.T) {
	if _, err := NewServer(ServerConfig{GameID: "nope"}, nil); err == nil {
		t.Error("expected an error for an unknown game")
	}
}

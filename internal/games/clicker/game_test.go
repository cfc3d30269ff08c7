package clicker

import (
	"testing"
	"time"

	"github.com/vovakirdan/site-arcade/internal/config"
	"github.com/vovakirdan/site-arcade/internal/core"
)

func newTestGame(t *testing.T) (*Game, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(time.Unix(500, 0))
	g := NewWithConfig(config.DefaultClickerConfig())
	g.Reset(core.RuntimeConfig{AreaW: 400, AreaH: 300, Clock: clock})
	return g, clock
}

func TestClickerIdle(t *testing.T) {
	g, _ := newTestGame(t)

	st := g.State()
	if st.Phase != core.PhaseIdle || st.Active {
		t.Errorf("State() = %+v, expected inactive idle", st)
	}
	if st.Readout != "Time: 30  Score: 0" {
		t.Errorf("Readout = %q", st.Readout)
	}

	g.Input(core.Press(core.ActionTap))
	if g.State().Score != 0 {
		t.Error("tap while idle should not score")
	}
}

func TestClickerCountdown(t *testing.T) {
	g, clock := newTestGame(t)
	g.Input(core.Press(core.ActionStart))

	for i := 0; i < 3; i++ {
		g.Input(core.Press(core.ActionTap))
	}
	g.Input(core.Release(core.ActionTap))

	tests := []struct {
		advance  time.Duration
		expected int
	}{
		{900 * time.Millisecond, 30},
		{100 * time.Millisecond, 29},
		{1500 * time.Millisecond, 28},
		{20 * time.Second, 8},
	}
	for _, tc := range tests {
		g.Tick(clock.Advance(tc.advance))
		if g.timeLeft != tc.expected {
			t.Errorf("timeLeft = %d, expected %d", g.timeLeft, tc.expected)
		}
	}

	if got := g.State().Readout; got != "Time: 8  Score: 3" {
		t.Errorf("Readout = %q", got)
	}
}

func TestClickerTimesUp(t *testing.T) {
	g, clock := newTestGame(t)
	g.Input(core.Press(core.ActionStart))
	g.Input(core.Press(core.ActionTap))
	g.Input(core.Press(core.ActionTap))

	// Start is ignored mid-run
	g.Input(core.Press(core.ActionStart))
	if g.score != 2 {
		t.Fatalf("start during a run reset the score to %d", g.score)
	}

	res := g.Tick(clock.Advance(31 * time.Second))
	if !res.State.GameOver() || res.State.Active {
		t.Fatalf("State() = %+v, expected inactive ended", res.State)
	}
	if g.Message() != "Time's up! Your score: 2" {
		t.Errorf("Message() = %q", g.Message())
	}
	if res.State.Readout != "Time: 0  Score: 2" {
		t.Errorf("Readout = %q", res.State.Readout)
	}

	g.Input(core.Press(core.ActionTap))
	if g.score != 2 {
		t.Error("tap after time is up should not score")
	}

	dl := core.NewDrawList(400, 300)
	g.Render(dl)
	ops := dl.Ops()
	if last := ops[len(ops)-1]; last.Text != "Time's up! Your score: 2" {
		t.Errorf("last op = %+v, expected the result message", last)
	}
}

func TestClickerResetAndRestart(t *testing.T) {
	g, clock := newTestGame(t)
	g.Input(core.Press(core.ActionStart))
	g.Input(core.Press(core.ActionTap))
	g.Tick(clock.Advance(31 * time.Second))

	g.Input(core.Press(core.ActionReset))
	if st := g.State(); st.Phase != core.PhaseIdle || st.Readout != "Time: 30  Score: 0" {
		t.Errorf("after reset State() = %+v", st)
	}

	g.Input(core.Press(core.ActionStart))
	g.Tick(clock.Advance(2 * time.Second))
	if g.timeLeft != 28 || g.score != 0 {
		t.Errorf("restart: timeLeft %d score %d, expected 28 and 0", g.timeLeft, g.score)
	}
}

func TestClickerButtonCentered(t *testing.T) {
	g, _ := newTestGame(t)
	g.Resize(800, 600)

	cx, cy := g.ButtonRect().Center()
	if cx != 400 || cy != 300 {
		t.Errorf("button centered at (%v, %v), expected (400, 300)", cx, cy)
	}
	g.Render(nil)
}

package web

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/site-arcade/internal/core"
)

// Client message types.
const (
	msgKey    = "key"
	msgStart  = "start"
	msgReset  = "reset"
	msgResize = "resize"
	msgTap    = "tap"
)

// clientMessage is everything the page can send. Fields that do not apply to
// a message type are ignored.
type clientMessage struct {
	Type   string  `json:"type"`
	Key    string  `json:"key,omitempty"`
	Down   bool    `json:"down,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// frameMessage carries one rendered frame to the page.
type frameMessage struct {
	Type    string        `json:"type"`
	Phase   string        `json:"phase"`
	Readout string        `json:"readout"`
	Paused  bool          `json:"paused,omitempty"`
	Width   float64       `json:"width"`
	Height  float64       `json:"height"`
	Ops     []core.DrawOp `json:"ops"`
}

var errEmptyType = errors.New("message has no type")

// keyAction maps a browser KeyboardEvent.key value to an action.
func keyAction(key string) core.Action {
	switch key {
	case "ArrowLeft", "Left", "a", "A":
		return core.ActionLeft
	case "ArrowRight", "Right", "d", "D":
		return core.ActionRight
	case "Enter":
		return core.ActionStart
	case "r", "R":
		return core.ActionReset
	case " ":
		return core.ActionTap
	case "p", "P":
		return core.ActionPause
	}
	return core.ActionNone
}

// validate rejects messages the session cannot apply.
func (m clientMessage) validate() error {
	switch m.Type {
	case "":
		return errEmptyType
	case msgStart, msgReset, msgTap:
		return nil
	case msgKey:
		if keyAction(m.Key) == core.ActionNone {
			return fmt.Errorf("unmapped key %q", m.Key)
		}
		return nil
	case msgResize:
		if !finitePositive(m.Width) || !finitePositive(m.Height) {
			return fmt.Errorf("invalid size %vx%v", m.Width, m.Height)
		}
		return nil
	}
	return fmt.Errorf("unknown message type %q", m.Type)
}

// events converts a valid non-resize message into game input.
// Key releases are only forwarded for held directions.
func (m clientMessage) events() []core.InputEvent {
	switch m.Type {
	case msgStart:
		return []core.InputEvent{core.Press(core.ActionStart)}
	case msgReset:
		return []core.InputEvent{core.Press(core.ActionReset)}
	case msgTap:
		return []core.InputEvent{core.Press(core.ActionTap)}
	case msgKey:
		a := keyAction(m.Key)
		if m.Down {
			return []core.InputEvent{core.Press(a)}
		}
		if a == core.ActionLeft || a == core.ActionRight {
			return []core.InputEvent{core.Release(a)}
		}
	}
	return nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

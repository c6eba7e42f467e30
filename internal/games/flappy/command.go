package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Command is one unit of work for the game. Front ends turn their frame
// callbacks, timers and key events into commands and apply them one at a
// time.
type Command int

const (
	CommandTick  Command = iota // One frame of physics
	CommandSpawn                // One spawn timer firing
	CommandJump                 // One jump key press
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandTick:
		return "tick"
	case CommandSpawn:
		return "spawn"
	case CommandJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Apply runs the handler for cmd to completion and returns the resulting state.
// StepResult.Scored and StepResult.Ended are only set by ticks.
func (g *Game) Apply(cmd Command) core.StepResult {
	switch cmd {
	case CommandTick:
		return g.Update()
	case CommandSpawn:
		g.Spawn()
	case CommandJump:
		g.Jump()
	}
	return core.StepResult{State: g.State()}
}

// ApplyAll applies commands in order. The result holds the final state,
// the total score gained and whether any tick ended the game.
func (g *Game) ApplyAll(cmds []Command) core.StepResult {
	var res core.StepResult
	for _, cmd := range cmds {
		r := g.Apply(cmd)
		res.Scored += r.Scored
		res.Ended = res.Ended || r.Ended
	}
	res.State = g.State()
	return res
}

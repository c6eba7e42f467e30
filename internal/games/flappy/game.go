// Package flappy implements a Flappy Bird-style game.
// The player controls a sprite that falls under gravity, jumps on input and
// must pass through the openings of a stream of obstacle pairs.
package flappy

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ScorePerPipe is added once for every obstacle the sprite clears,
// so a full top/bottom pair is worth 1.
const ScorePerPipe = 0.5

// Game holds the complete state of one game. It is not safe for concurrent
// use: front ends feed it from a single event loop.
type Game struct {
	cfg      config.FlappyConfig
	logger   *log.Logger
	sprite   core.Rect    // X is fixed; Y changes every frame
	velocity float64      // Vertical velocity, positive = down
	pipes    *PipeManager // Obstacle collection
	score    float64
	ended    bool
	ticks    int // Frames simulated since the last (re)start
}

// New creates a game in the PLAYING state. A nil logger discards output.
func New(cfg config.FlappyConfig, seed int64, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		cfg:    cfg,
		logger: logger,
		pipes:  NewPipeManager(seed, cfg),
	}
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset puts the sprite back at its start position, empties the obstacle
// collection, zeroes the score and clears the ended flag.
// Vertical velocity is left alone so a restarting jump keeps its impulse.
func (g *Game) Reset() {
	g.sprite = core.NewRect(g.cfg.Sprite.X, g.cfg.Sprite.StartY, g.cfg.Sprite.Width, g.cfg.Sprite.Height)
	g.pipes.Clear()
	g.score = 0
	g.ended = false
	g.ticks = 0
}

// Update advances the game by one frame. It does nothing once the game has ended.
func (g *Game) Update() core.StepResult {
	if g.ended {
		return core.StepResult{State: g.State()}
	}

	g.ticks++

	g.velocity += g.cfg.Physics.Gravity
	// Clamped at the top edge only; there is no floor.
	g.sprite.Y = math.Max(g.sprite.Y+g.velocity, 0)

	cause := ""
	if g.sprite.Y > g.cfg.Playfield.Height {
		g.ended = true
		cause = "fell"
	}

	passed, hit := g.pipes.Advance(g.sprite)
	scored := float64(passed) * ScorePerPipe
	g.score += scored
	if hit {
		g.ended = true
		cause = "collision"
	}

	g.pipes.Prune()

	if g.ended {
		g.logger.Info("game over", "score", g.score, "ticks", g.ticks, "cause", cause)
	}

	return core.StepResult{
		State:  g.State(),
		Scored: scored,
		Ended:  g.ended,
	}
}

// Spawn adds a new obstacle pair at the right edge. It does nothing once the game has ended.
func (g *Game) Spawn() {
	if g.ended {
		return
	}
	top, bottom := g.pipes.Spawn()
	g.logger.Debug("obstacles spawned", "x", top.X, "top_y", top.Y, "bottom_y", bottom.Y)
}

// Jump applies the upward impulse. If the game has ended it is restarted
// first, so the same key press both restarts and jumps.
func (g *Game) Jump() {
	g.velocity = g.cfg.Physics.JumpImpulse
	if g.ended {
		g.logger.Info("restart", "previous_score", g.score)
		g.Reset()
	}
}

// HandleKey runs the input handler for a key press.
// Returns false (and does nothing) for keys that are not jump keys.
func (g *Game) HandleKey(k core.Key) bool {
	if !core.IsJumpKey(k) {
		return false
	}
	g.Apply(CommandJump)
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Ended: g.ended,
	}
}

// Sprite returns the sprite's current rectangle.
func (g *Game) Sprite() core.Rect {
	return g.sprite
}

// Velocity returns the sprite's vertical velocity.
func (g *Game) Velocity() float64 {
	return g.velocity
}

// Pipes returns the obstacles currently on the field, left to right.
func (g *Game) Pipes() []Pipe {
	return g.pipes.Pipes()
}

// Ticks returns the number of frames simulated since the last (re)start.
func (g *Game) Ticks() int {
	return g.ticks
}

package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Variant tells the renderer which half of a pair an obstacle is.
type Variant int

const (
	VariantTop Variant = iota
	VariantBottom
)

// Pipe is one half (top or bottom) of an obstacle pair.
type Pipe struct {
	X, Y          float64 // Top-left corner; X decreases every frame
	Width, Height float64
	Passed        bool // Set once the sprite has cleared the right edge
	Variant       Variant
}

// Rect returns the collision rectangle of the pipe.
func (p Pipe) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Right returns the x-coordinate of the pipe's trailing edge.
func (p Pipe) Right() float64 {
	return p.X + p.Width
}

// PipeManager owns the obstacle collection: spawning, movement, scoring and removal.
// Pipes are kept in spawn order, which is also left-to-right order.
type PipeManager struct {
	pipes []Pipe
	rng   *rand.Rand
	cfg   config.FlappyConfig
}

// NewPipeManager creates a new pipe manager with the given RNG seed.
func NewPipeManager(seed int64, cfg config.FlappyConfig) *PipeManager {
	return &PipeManager{
		pipes: make([]Pipe, 0, 8),
		rng:   rand.New(rand.NewSource(seed)),
		cfg:   cfg,
	}
}

// Clear removes all pipes. The RNG keeps its position.
func (pm *PipeManager) Clear() {
	pm.pipes = pm.pipes[:0]
}

// Spawn appends a top/bottom pair at the right edge of the playfield with
// a randomized vertical position and a fixed opening between them.
func (pm *PipeManager) Spawn() (top, bottom Pipe) {
	h := pm.cfg.Obstacles.Height
	gapY := pm.cfg.Obstacles.ReferenceY - h/4 - pm.rng.Float64()*(h/2)
	x := pm.cfg.Playfield.Width

	top = Pipe{
		X:       x,
		Y:       gapY,
		Width:   pm.cfg.Obstacles.Width,
		Height:  h,
		Variant: VariantTop,
	}
	bottom = Pipe{
		X:       x,
		Y:       gapY + h + pm.cfg.OpeningSpace(),
		Width:   pm.cfg.Obstacles.Width,
		Height:  h,
		Variant: VariantBottom,
	}

	pm.pipes = append(pm.pipes, top, bottom)
	return top, bottom
}

// Advance moves every pipe by the configured velocity, marks pipes the
// sprite has cleared and tests each against the sprite.
// Returns how many pipes were cleared this frame and whether any collided.
func (pm *PipeManager) Advance(sprite core.Rect) (passed int, hit bool) {
	for i := range pm.pipes {
		p := &pm.pipes[i]
		p.X += pm.cfg.Physics.PipeVelocity

		if !p.Passed && sprite.X > p.Right() {
			p.Passed = true
			passed++
		}

		if core.DetectCollision(sprite, p.Rect()) {
			hit = true
		}
	}
	return passed, hit
}

// Prune removes pipes from the front while they are fully left of the playfield.
// Returns the number of pipes removed.
func (pm *PipeManager) Prune() int {
	n := 0
	for n < len(pm.pipes) && pm.pipes[n].Right() < 0 {
		n++
	}
	if n > 0 {
		pm.pipes = append(pm.pipes[:0], pm.pipes[n:]...)
	}
	return n
}

// Pipes returns the current list of pipes.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// Len returns the number of pipes on the field.
func (pm *PipeManager) Len() int {
	return len(pm.pipes)
}

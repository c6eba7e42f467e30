package flappy

import (
	"math"
	"time"
)

// Scheduler turns a fixed frame rate into the command stream of one frame:
// a tick every frame plus a spawn whenever the spawn interval has elapsed.
// Spawns keep firing after game over; the game ignores them.
type Scheduler struct {
	spawnEvery int // Frames between spawns
	frame      int
}

// NewScheduler creates a scheduler for the given spawn interval and frame rate.
func NewScheduler(interval time.Duration, tickRate int) *Scheduler {
	return &Scheduler{spawnEvery: FramesPer(interval, tickRate)}
}

// FramesPer converts a duration to a whole number of frames (at least 1).
func FramesPer(d time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	n := int(math.Round(d.Seconds() * float64(tickRate)))
	if n < 1 {
		n = 1
	}
	return n
}

// Next returns the commands for the next frame.
func (s *Scheduler) Next() []Command {
	s.frame++
	if s.frame%s.spawnEvery == 0 {
		return []Command{CommandTick, CommandSpawn}
	}
	return []Command{CommandTick}
}

// Frame returns the number of frames scheduled so far.
func (s *Scheduler) Frame() int {
	return s.frame
}

// SpawnEvery returns the number of frames between spawns.
func (s *Scheduler) SpawnEvery() int {
	return s.spawnEvery
}

package flappy

import (
	"testing"
	"time"
)

func TestFramesPer(t *testing.T) {
	tests := []struct {
		d        time.Duration
		rate     int
		expected int
	}{
		{1500 * time.Millisecond, 60, 90},
		{1500 * time.Millisecond, 30, 45},
		{time.Second, 0, 60}, // invalid rate falls back to 60
		{0, 60, 1},
		{time.Millisecond, 60, 1},
	}

	for _, tc := range tests {
		if got := FramesPer(tc.d, tc.rate); got != tc.expected {
			t.Errorf("FramesPer(%v, %d) = %d, expected %d", tc.d, tc.rate, got, tc.expected)
		}
	}
}

func TestSchedulerCadence(t *testing.T) {
	s := NewScheduler(1500*time.Millisecond, 60)
	if s.SpawnEvery() != 90 {
		t.Fatalf("SpawnEvery() = %d, expected 90", s.SpawnEvery())
	}

	spawns := 0
	for i := 1; i <= 270; i++ {
		cmds := s.Next()
		if cmds[0] != CommandTick {
			t.Fatalf("Frame %d: first command = %v, expected tick", i, cmds[0])
		}
		switch len(cmds) {
		case 1:
		case 2:
			if cmds[1] != CommandSpawn {
				t.Fatalf("Frame %d: second command = %v, expected spawn", i, cmds[1])
			}
			if i%90 != 0 {
				t.Errorf("Spawn on frame %d, expected only on multiples of 90", i)
			}
			spawns++
		default:
			t.Fatalf("Frame %d: unexpected commands %v", i, cmds)
		}
	}

	if spawns != 3 {
		t.Errorf("Expected 3 spawns in 270 frames, got %d", spawns)
	}
	if s.Frame() != 270 {
		t.Errorf("Frame() = %d, expected 270", s.Frame())
	}
}

func TestSchedulerKeepsSpawningAfterGameOver(t *testing.T) {
	g := newTestGame(1)
	g.ended = true
	s := NewScheduler(g.Config().Spawn.Interval, 60)

	spawns := 0
	for i := 0; i < 180; i++ {
		for _, cmd := range s.Next() {
			if cmd == CommandSpawn {
				spawns++
			}
			g.Apply(cmd)
		}
	}

	if spawns != 2 {
		t.Errorf("Timer should keep firing while ended, got %d spawns", spawns)
	}
	if len(g.Pipes()) != 0 {
		t.Errorf("Spawns while ended should be ignored, got %d obstacles", len(g.Pipes()))
	}
}

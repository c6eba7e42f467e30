package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func newTestModel() (Model, *flappy.Game) {
	game := flappy.New(config.DefaultFlappyConfig(), 1, nil)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	return NewModel(game, cfg, nil), game
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Key
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.KeySpace},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{"x", runes("x"), core.KeyX},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.KeyNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyNone},
		{"z", runes("z"), core.KeyNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %q, expected %q", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapperMapAction(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"q quits", runes("q"), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"? toggles help", runes("?"), core.ActionHelp},
		{"ctrl+s screenshots", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"x jumps", runes("x"), core.ActionJump},
		{"other keys", runes("a"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapAction(tc.msg); got != tc.expected {
				t.Errorf("MapAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestModelInitStartsTimers(t *testing.T) {
	m, _ := newTestModel()
	if m.Init() == nil {
		t.Fatal("Init() should start the frame and spawn timers")
	}
}

func TestModelTickAdvancesGame(t *testing.T) {
	m, game := newTestModel()

	updated, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Error("Tick should schedule the next tick")
	}
	if _, ok := updated.(Model); !ok {
		t.Fatalf("Update should return a Model, got %T", updated)
	}
	if game.Ticks() != 1 {
		t.Errorf("Ticks = %d, expected 1", game.Ticks())
	}
}

func TestModelSpawnAddsObstacles(t *testing.T) {
	m, game := newTestModel()

	_, cmd := m.Update(SpawnMsg(time.Now()))
	if cmd == nil {
		t.Error("Spawn should re-arm the spawn timer")
	}
	if len(game.Pipes()) != 2 {
		t.Errorf("Obstacles = %d, expected 2", len(game.Pipes()))
	}
}

func TestModelSpawnTimerRunsWhileEnded(t *testing.T) {
	m, game := newTestModel()

	// Drop the sprite until the game ends
	var model tea.Model = m
	for i := 0; i < 1000 && !game.State().Ended; i++ {
		model, _ = model.Update(TickMsg(time.Now()))
	}
	if !game.State().Ended {
		t.Fatal("Game should end after falling")
	}

	_, cmd := model.Update(SpawnMsg(time.Now()))
	if cmd == nil {
		t.Error("Spawn timer should keep running after game over")
	}
	if len(game.Pipes()) != 0 {
		t.Errorf("Spawns after game over should be ignored, got %d obstacles", len(game.Pipes()))
	}
}

func TestModelJumpKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeySpace}, {Type: tea.KeyUp}, runes("x")} {
		m, game := newTestModel()
		m.Update(msg)
		if game.Velocity() != game.Config().Physics.JumpImpulse {
			t.Errorf("Key %q should jump, velocity = %v", msg.String(), game.Velocity())
		}
	}
}

func TestModelIgnoresOtherKeys(t *testing.T) {
	m, game := newTestModel()
	_, cmd := m.Update(runes("z"))
	if cmd != nil {
		t.Error("Unknown keys should not produce commands")
	}
	if game.Velocity() != 0 {
		t.Errorf("Unknown keys should not jump, velocity = %v", game.Velocity())
	}
}

func TestModelRestartOnJump(t *testing.T) {
	m, game := newTestModel()

	var model tea.Model = m
	model, _ = model.Update(SpawnMsg(time.Now()))
	for i := 0; i < 1000 && !game.State().Ended; i++ {
		model, _ = model.Update(TickMsg(time.Now()))
	}
	if !game.State().Ended {
		t.Fatal("Game should end")
	}

	model.Update(tea.KeyMsg{Type: tea.KeySpace})

	state := game.State()
	if state.Ended || state.Score != 0 || len(game.Pipes()) != 0 {
		t.Errorf("Jump after game over should restart, state=%+v obstacles=%d", state, len(game.Pipes()))
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel()

	updated, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce tea.QuitMsg")
	}
	if view := updated.View(); view != "" {
		t.Errorf("View after quit should be empty, got %d bytes", len(view))
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel()

	updated, _ := m.Update(runes("?"))
	if !updated.(Model).help.ShowAll {
		t.Error("? should expand the help")
	}
	updated, _ = updated.Update(runes("?"))
	if updated.(Model).help.ShowAll {
		t.Error("? again should collapse the help")
	}
}

func TestModelResize(t *testing.T) {
	m, game := newTestModel()
	game.Apply(flappy.CommandSpawn)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model := updated.(Model)

	if model.config.ScreenW != 120 || model.config.ScreenH != 40 {
		t.Errorf("Config size = %dx%d, expected 120x40", model.config.ScreenW, model.config.ScreenH)
	}
	if len(game.Pipes()) != 2 {
		t.Error("Resize must not reset the game")
	}

	view := model.View()
	if model.screen.Width() != 120 {
		t.Errorf("Screen width = %d, expected 120", model.screen.Width())
	}
	if lines := strings.Count(view, "\n") + 1; lines != 40 {
		t.Errorf("View should fill the terminal height, got %d lines", lines)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel()

	view := m.View()
	if !strings.ContainsRune(view, flappy.SpriteChar) {
		t.Error("View should contain the sprite")
	}
	if !strings.Contains(view, "jump") {
		t.Error("View should contain the help footer")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorGreen)
	s.DrawText(2, 0, "cd")
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen should emit one line per row, got %q", out)
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output missing %q: %q", want, out)
		}
	}
}

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Model is the Bubble Tea model for running the game.
// Bubble Tea delivers ticks, spawn timer firings and key presses one at a
// time through Update, which is the game's only event loop.
type Model struct {
	game          *flappy.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	keys          KeyMap
	mapper        *KeyMapper
	help          help.Model
	logger        *log.Logger
	spawnInterval time.Duration
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *flappy.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:        cfg,
		keys:          keys,
		mapper:        NewKeyMapper(keys),
		help:          h,
		logger:        logger,
		spawnInterval: game.Config().Spawn.Interval,
	}
}

// Init starts the frame loop and the spawn timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.config.TickRate),
		spawnCmd(m.spawnInterval),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.game.Apply(flappy.CommandTick)
		return m, tickCmd(m.config.TickRate)

	case SpawnMsg:
		// The timer keeps running after game over; the game ignores it.
		m.game.Apply(flappy.CommandSpawn)
		return m, spawnCmd(m.spawnInterval)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mapper.MapAction(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	// Everything else goes to the game, which ignores keys it does not know.
	m.game.HandleKey(m.mapper.MapKey(msg))
	return m, nil
}

// handleResize processes window resize events.
// The playfield is scaled, so the game itself is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// saveScreenshot saves the current screen to ~/.flappy/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: cannot write file", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH-lipgloss.Height(footer))
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + footer
}

// Frontend runs the game in the terminal.
type Frontend struct{}

// ID returns the front-end identifier.
func (Frontend) ID() string {
	return "tui"
}

// Title returns the display name for this front end.
func (Frontend) Title() string {
	return "Terminal (Bubble Tea)"
}

// Run starts the Bubble Tea program and blocks until the player quits or ctx is done.
func (Frontend) Run(ctx context.Context, game *flappy.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func init() {
	registry.Register("tui", func() registry.Frontend {
		return Frontend{}
	})
}

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

const defaultFrontend = "tui"

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Play the game",
	Long: `Start a game in the terminal (tui, default) or in a window (gui).

Controls:
  Space/Up/X  - Flap (restart after game over)
  ?           - Toggle full help (terminal)
  Ctrl+S      - Save a text screenshot (terminal)
  Q/Ctrl+C    - Quit (terminal)
  Esc         - Quit (window)

Examples:
  flappy play
  flappy play gui --fps 120
  flappy play --seed 42 --log-file ./flappy.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	frontendID := defaultFrontend
	if len(args) == 1 {
		frontendID = args[0]
	}

	if !registry.Exists(frontendID) {
		return fmt.Errorf("unknown frontend %q, run 'flappy list' to see available front ends", frontendID)
	}

	out, closeLog, err := openLogOutput(flagLogFile, frontendID == defaultFrontend)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(out, flagLogLevel)
	if err != nil {
		return err
	}

	gameCfg, source, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	// Terminal size; the window front end ignores it
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	frontend, err := registry.Create(frontendID)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "frontend", frontendID, "seed", seed, "config", source, "fps", cfg.TickRate)

	game := flappy.New(gameCfg, seed, logger)
	if err := frontend.Run(ctx, game, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	state := game.State()
	logger.Info("finished", "score", state.Score, "ticks", game.Ticks())
	return nil
}

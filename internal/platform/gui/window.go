// Package gui runs the game in a desktop window using Ebitengine.
package gui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var (
	skyColor    = color.RGBA{0x70, 0xc5, 0xce, 0xff}
	spriteColor = color.RGBA{0xf8, 0xd8, 0x20, 0xff}
	pipeColor   = color.RGBA{0x5e, 0xbd, 0x3e, 0xff}
	pipeCap     = color.RGBA{0x3f, 0x8a, 0x28, 0xff}
	shadeColor  = color.RGBA{0, 0, 0, 0xa0}
)

// keyBindings maps Ebitengine keys to game keys.
var keyBindings = []struct {
	native ebiten.Key
	key    core.Key
}{
	{ebiten.KeySpace, core.KeySpace},
	{ebiten.KeyArrowUp, core.KeyUp},
	{ebiten.KeyX, core.KeyX},
}

// pressedKeys returns the game keys whose native key was pressed this frame.
func pressedKeys(justPressed func(ebiten.Key) bool) []core.Key {
	var keys []core.Key
	for _, b := range keyBindings {
		if justPressed(b.native) {
			keys = append(keys, b.key)
		}
	}
	return keys
}

// window implements ebiten.Game. Ebitengine calls Update once per tick on a
// single goroutine, so spawns come from a frame-counting scheduler instead of
// a separate timer.
type window struct {
	ctx    context.Context
	game   *flappy.Game
	sched  *flappy.Scheduler
	logger *log.Logger
	face   font.Face
}

func newWindow(ctx context.Context, game *flappy.Game, tickRate int, logger *log.Logger) *window {
	return &window{
		ctx:    ctx,
		game:   game,
		sched:  flappy.NewScheduler(game.Config().Spawn.Interval, tickRate),
		logger: logger,
		face:   basicfont.Face7x13,
	}
}

// step runs one frame: input first, then the scheduled commands.
func (w *window) step(keys []core.Key) {
	for _, k := range keys {
		w.game.HandleKey(k)
	}
	w.game.ApplyAll(w.sched.Next())
}

func (w *window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.logger.Debug("window closed by player", "score", w.game.State().Score)
		return ebiten.Termination
	}
	w.step(pressedKeys(inpututil.IsKeyJustPressed))
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	for _, p := range w.game.Pipes() {
		r := p.Rect()
		drawRect(screen, r, pipeColor)
		capY := r.Bottom() - 12
		if p.Variant == flappy.VariantBottom {
			capY = p.Y
		}
		drawRect(screen, core.NewRect(p.X-3, capY, p.Width+6, 12), pipeCap)
	}

	drawRect(screen, w.game.Sprite(), spriteColor)

	state := w.game.State()
	text.Draw(screen, flappy.FormatScore(state.Score), w.face, 8, 20, color.White)

	if state.Ended {
		cfg := w.game.Config().Playfield
		vector.DrawFilledRect(screen, 0, 0, float32(cfg.Width), float32(cfg.Height), shadeColor, false)
		w.drawCentered(screen, "GAME OVER", int(cfg.Height/2)-10)
		w.drawCentered(screen, "Score: "+flappy.FormatScore(state.Score), int(cfg.Height/2)+10)
		w.drawCentered(screen, "Space/Up/X to restart", int(cfg.Height/2)+30)
	}
}

func (w *window) drawCentered(screen *ebiten.Image, msg string, y int) {
	bounds, _ := font.BoundString(w.face, msg)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	x := (screen.Bounds().Dx() - width) / 2
	text.Draw(screen, msg, w.face, x, y, color.White)
}

func drawRect(dst *ebiten.Image, r core.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// Layout keeps the logical screen at playfield size; Ebitengine scales it to the window.
func (w *window) Layout(_, _ int) (int, int) {
	cfg := w.game.Config().Playfield
	return int(cfg.Width), int(cfg.Height)
}

// Frontend runs the game in a desktop window.
type Frontend struct{}

// ID returns the front-end identifier.
func (Frontend) ID() string {
	return "gui"
}

// Title returns the display name for this front end.
func (Frontend) Title() string {
	return "Window (Ebitengine)"
}

// Run opens the window and blocks until it is closed, Esc is pressed or ctx is done.
func (Frontend) Run(ctx context.Context, game *flappy.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}

	field := game.Config().Playfield
	ebiten.SetWindowSize(int(field.Width), int(field.Height))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(tickRate)

	logger.Debug("opening window", "width", field.Width, "height", field.Height, "tps", tickRate)
	err := ebiten.RunGame(newWindow(ctx, game, tickRate, logger))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}

func init() {
	registry.Register("gui", func() registry.Frontend {
		return Frontend{}
	})
}

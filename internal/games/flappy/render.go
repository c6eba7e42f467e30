package flappy

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	SpriteChar     = '●'
	SpriteBeakChar = '▶'
	PipeChar       = '█'
	PipeCapTop     = '▄'
	PipeCapBottom  = '▀'
)

// FormatScore renders a score without trailing zeros ("1", "1.5").
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// projection maps playfield units onto screen cells.
type projection struct {
	sx, sy float64
}

func newProjection(pf config.PlayfieldConfig, dst *core.Screen) projection {
	return projection{
		sx: float64(dst.Width()) / pf.Width,
		sy: float64(dst.Height()) / pf.Height,
	}
}

// cells returns the half-open cell range covered by r, at least one cell in each direction.
func (p projection) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X * p.sx))
	y0 = int(math.Floor(r.Y * p.sy))
	x1 = int(math.Ceil(r.Right() * p.sx))
	y1 = int(math.Ceil(r.Bottom() * p.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// Render draws the current game state to the screen, scaling the playfield
// to the screen size. Once the game has ended the frozen final frame is
// drawn with an overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	proj := newProjection(g.cfg.Playfield, dst)

	for _, p := range g.pipes.Pipes() {
		drawPipe(dst, proj, p)
	}

	x0, y0, x1, y1 := proj.cells(g.sprite)
	dst.FillRect(x0, y0, x1, y1, SpriteChar, core.ColorBrightYellow)
	dst.SetColored(x1-1, y0, SpriteBeakChar, core.ColorYellow)

	// Draw HUD
	dst.DrawTextColored(1, 0, " "+FormatScore(g.score)+" ", core.ColorWhite)

	if g.ended {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %s  |  Space/Up/X to restart", FormatScore(g.score)))
	}
}

// drawPipe renders a single pipe with a cap on the edge facing the opening.
func drawPipe(dst *core.Screen, proj projection, p Pipe) {
	x0, y0, x1, y1 := proj.cells(p.Rect())
	dst.FillRect(x0, y0, x1, y1, PipeChar, core.ColorGreen)

	switch p.Variant {
	case VariantTop:
		dst.DrawHLine(x0, y1-1, x1-x0, PipeCapTop, core.ColorBrightGreen)
	case VariantBottom:
		dst.DrawHLine(x0, y0, x1-x0, PipeCapBottom, core.ColorBrightGreen)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightRed)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

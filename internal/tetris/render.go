package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	hudHeight = 2 // status line + separator
	cellWidth = 2 // each well cell is two characters wide
)

// Well glyphs.
const (
	blockGlyph = '█'
	emptyGlyph = '·'
)

// requiredSize returns the smallest screen that fits the HUD and the well.
func (g *Game) requiredSize() (w, h int) {
	cols := g.cfg.Arena.Width + 1
	rows := g.cfg.Arena.Height + 1
	return cols*cellWidth + 2, rows + 2 + hudHeight
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.arena == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		reqW, reqH := g.requiredSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", reqW, reqH))
		return
	}

	well := g.wellRect(dst)
	dst.DrawBox(well, core.ColorWhite)

	// Empty cells first, then the stack, then the falling piece on top.
	bounds := g.arena.Bounds()
	for y := 0; y <= bounds.Y; y++ {
		for x := 0; x <= bounds.X; x++ {
			g.drawCell(dst, well, core.Vec(x, y), emptyGlyph, ' ', core.ColorDarkGray)
		}
	}
	for _, t := range g.arena.settled {
		g.drawCell(dst, well, t.Pos, blockGlyph, blockGlyph, t.Color)
	}
	active := g.arena.Active()
	for _, p := range active.Tiles {
		g.drawCell(dst, well, p, blockGlyph, blockGlyph, active.Color)
	}

	switch {
	case g.arena.GameOver():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Lines: %d  Press N to restart", g.arena.Score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// wellRect returns the bordered well area centered below the HUD.
func (g *Game) wellRect(dst *core.Screen) core.Rect {
	bounds := g.arena.Bounds()
	w := (bounds.X+1)*cellWidth + 2
	h := bounds.Y + 1 + 2
	x := (dst.Width() - w) / 2
	return core.NewRect(x, hudHeight, w, h)
}

// drawCell paints one well cell; arena coordinates map to two screen columns.
// Cells outside the well interior, such as tiles above the ceiling, are hidden.
func (g *Game) drawCell(dst *core.Screen, well core.Rect, p core.Vector, left, right rune, c core.Color) {
	sx := well.X + 1 + p.X*cellWidth
	sy := well.Y + 1 + p.Y
	inner := core.NewRect(well.X+1, well.Y+1, well.W-2, well.H-2)
	if !inner.Contains(core.Vec(sx, sy)) {
		return
	}
	dst.SetColored(sx, sy, left, c)
	dst.SetColored(sx+1, sy, right, c)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris | Lines: %d  Gravity: %d  Next drop in %s",
		g.arena.Score(), g.arena.GravityInterval(), g.nextDropLabel())
	dst.DrawText(0, 0, hud)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) nextDropLabel() string {
	due := g.arena.lastGravity + uint64(g.arena.GravityInterval()) + 1
	if due <= g.frame {
		return "0f"
	}
	return fmt.Sprintf("%df", due-g.frame)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect((w-(maxLen+4))/2, (h-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

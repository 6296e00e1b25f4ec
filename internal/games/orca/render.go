package orca

import (
	"math"

	"github.com/vovakirdan/orca-arcade/internal/core"
)

// Visual characters for rendering
const (
	FillChar  = '█'
	DotChar   = '●' // Circle too small to cover a cell center
	alphaKeep = 128 // Sprite pixels below this alpha are transparent
)

// Score text position in arena pixels
const (
	scoreX = 10
	scoreY = 10
)

// viewport projects arena pixels onto screen cells.
type viewport struct {
	cols, rows int
	sx, sy     float64 // cells per pixel
}

func newViewport(arena Arena, cols, rows int) viewport {
	return viewport{
		cols: cols,
		rows: rows,
		sx:   float64(cols) / float64(arena.Width),
		sy:   float64(rows) / float64(arena.Height),
	}
}

// cell returns the screen cell containing an arena point.
func (v viewport) cell(p core.Vec) (int, int) {
	cx := core.Clamp(int(math.Floor(p.X*v.sx)), 0, v.cols-1)
	cy := core.Clamp(int(math.Floor(p.Y*v.sy)), 0, v.rows-1)
	return cx, cy
}

// pixel returns the arena point at the center of a screen cell.
func (v viewport) pixel(cx, cy int) core.Vec {
	return core.V((float64(cx)+0.5)/v.sx, (float64(cy)+0.5)/v.sy)
}

// span returns the cell range [lo, hi] that may hold centers within [a, b].
func span(a, b, scale float64, limit int) (int, int) {
	lo := core.Clamp(int(math.Floor(a*scale)), 0, limit-1)
	hi := core.Clamp(int(math.Ceil(b*scale)), 0, limit-1)
	return lo, hi
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Fill(g.palette.Background)
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	v := newViewport(g.arena, dst.Width(), dst.Height())

	g.drawPlayer(dst, v)
	drawCircle(dst, v, g.fish.Center(), float64(g.fish.Radius), g.palette.Fish)
	for _, p := range g.pursuers {
		drawCircle(dst, v, p.Pos, p.Radius, g.palette.Pursuer)
	}

	// Draw score
	sx, sy := v.cell(core.V(scoreX, scoreY))
	dst.DrawText(sx, sy, g.scoreText(), g.palette.Text)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCircle fills every cell whose center lies inside the circle.
// Circles smaller than a cell still show up as a single dot.
func drawCircle(dst *core.Screen, v viewport, center core.Vec, radius float64, fg core.Color) {
	x0, x1 := span(center.X-radius, center.X+radius, v.sx, v.cols)
	y0, y1 := span(center.Y-radius, center.Y+radius, v.sy, v.rows)

	painted := false
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if core.Distance(v.pixel(cx, cy), center) <= radius {
				dst.SetColored(cx, cy, FillChar, fg)
				painted = true
			}
		}
	}

	if !painted {
		cx, cy := v.cell(center)
		dst.SetColored(cx, cy, DotChar, fg)
	}
}

// drawPlayer blits the sprite over the cells covered by the player box,
// sampling one sprite pixel per cell center.
func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	box := g.player.Box
	x0, x1 := span(float64(box.X), float64(box.Right()), v.sx, v.cols)
	y0, y1 := span(float64(box.Y), float64(box.Bottom()), v.sy, v.rows)

	covered := false
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			p := v.pixel(cx, cy)
			px, py := int(math.Floor(p.X)), int(math.Floor(p.Y))
			if !box.Contains(px, py) {
				continue
			}
			covered = true

			if g.sprite == nil {
				dst.SetColored(cx, cy, FillChar, g.palette.Player)
				continue
			}

			// Map the box pixel into sprite space
			sxp := (px - box.X) * g.sprite.Width() / box.W
			syp := (py - box.Y) * g.sprite.Height() / box.H
			rgb, alpha := g.sprite.At(sxp, syp)
			if alpha < alphaKeep {
				continue
			}
			dst.SetColored(cx, cy, FillChar, core.NearestColor(rgb))
		}
	}

	// Tiny screens: keep the player visible
	if !covered {
		cx, cy := v.cell(g.player.Center())
		dst.SetColored(cx, cy, FillChar, g.palette.Player)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	// Draw box
	dst.DrawRect(box, ' ', g.palette.Text)
	dst.DrawBox(box, g.palette.Text)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title, g.palette.Text)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle, g.palette.Text)
}

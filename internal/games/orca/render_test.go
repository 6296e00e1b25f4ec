package orca

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/orca-arcade/internal/core"
	"github.com/vovakirdan/orca-arcade/internal/sprite"
)

// readRow returns n runes of row y starting at column x.
func readRow(s *core.Screen, x, y, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteRune(s.Get(x+i, y))
	}
	return sb.String()
}

// renderGame places entities away from each other and renders to 80x24.
func renderGame(t *testing.T, opts ...func(*Game)) *core.Screen {
	t.Helper()
	g := newTestGame(t, 1)
	g.pursuers = []Pursuer{{Pos: core.V(100, 100), Radius: 10, Speed: 2}}
	g.fish = Fish{X: 700, Y: 500, Radius: 12}
	for _, opt := range opts {
		opt(g)
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	return screen
}

func TestRenderScore(t *testing.T) {
	screen := renderGame(t)

	// (10, 10) in arena pixels lands on cell (1, 0)
	if got := readRow(screen, 1, 0, 8); got != "Score: 0" {
		t.Errorf("score row = %q, expected %q", got, "Score: 0")
	}
	if c := screen.GetCell(1, 0); c.Fg != core.ColorBlack {
		t.Errorf("score color = %v, expected black", c.Fg)
	}
}

func TestRenderBackground(t *testing.T) {
	screen := renderGame(t)

	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Bg != core.ColorWhite {
				t.Fatalf("cell (%d, %d) background = %v, expected white", x, y, c.Bg)
			}
		}
	}
}

func TestRenderPlayerWithoutSprite(t *testing.T) {
	screen := renderGame(t)

	c := screen.GetCell(40, 12)
	if c.Rune != FillChar || c.Fg != core.ColorBlue {
		t.Errorf("player cell = %+v, expected blue fill", c)
	}
	// Outside the box
	if c := screen.GetCell(30, 12); c.Rune != ' ' {
		t.Errorf("cell left of the player = %q, expected blank", c.Rune)
	}
}

func TestRenderSmallPursuerAsDot(t *testing.T) {
	screen := renderGame(t)

	// A radius-10 circle covers no cell center at 10x25 pixels per cell
	c := screen.GetCell(10, 4)
	if c.Rune != DotChar || c.Fg != core.ColorRed {
		t.Errorf("pursuer cell = %+v, expected red dot", c)
	}
}

func TestRenderFish(t *testing.T) {
	screen := renderGame(t)

	c := screen.GetCell(70, 20)
	if c.Fg != core.ColorGreen || (c.Rune != DotChar && c.Rune != FillChar) {
		t.Errorf("fish cell = %+v, expected green", c)
	}
}

func TestDrawCircleFillsCenterCell(t *testing.T) {
	screen := core.NewScreen(80, 60)
	v := newViewport(testArena, 80, 60)

	drawCircle(screen, v, core.V(105, 105), 10, core.ColorRed)

	if c := screen.GetCell(10, 10); c.Rune != FillChar || c.Fg != core.ColorRed {
		t.Errorf("center cell = %+v, expected red fill", c)
	}
	if c := screen.GetCell(12, 10); c.Rune != ' ' {
		t.Errorf("cell outside radius = %q, expected blank", c.Rune)
	}
}

func TestViewportCellClamps(t *testing.T) {
	v := newViewport(testArena, 80, 24)

	tests := []struct {
		name   string
		p      core.Vec
		cx, cy int
	}{
		{"origin", core.V(0, 0), 0, 0},
		{"far corner", core.V(800, 600), 79, 23},
		{"center", core.V(400, 300), 40, 12},
		{"negative", core.V(-5, -5), 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy := v.cell(tc.p)
			if cx != tc.cx || cy != tc.cy {
				t.Errorf("cell(%v) = (%d, %d), expected (%d, %d)", tc.p, cx, cy, tc.cx, tc.cy)
			}
		})
	}
}

func solidSprite(t *testing.T, c color.Color) *sprite.Sprite {
	t.Helper()
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			src.Set(x, y, c)
		}
	}
	s, err := sprite.FromImage(src, 80, 80)
	if err != nil {
		t.Fatalf("FromImage() error: %v", err)
	}
	return s
}

func TestRenderPlayerSprite(t *testing.T) {
	s := solidSprite(t, color.RGBA{A: 255})
	screen := renderGame(t, func(g *Game) { g.sprite = s })

	c := screen.GetCell(40, 12)
	if c.Rune != FillChar || c.Fg != core.ColorBlack {
		t.Errorf("sprite cell = %+v, expected black fill", c)
	}
}

func TestRenderTransparentSprite(t *testing.T) {
	s := solidSprite(t, color.RGBA{})
	screen := renderGame(t, func(g *Game) { g.sprite = s })

	c := screen.GetCell(40, 12)
	if c.Rune != ' ' || c.Bg != core.ColorWhite {
		t.Errorf("transparent sprite cell = %+v, expected background", c)
	}
}

func TestRenderPaused(t *testing.T) {
	screen := renderGame(t, func(g *Game) { g.paused = true })

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Errorf("paused screen should show PAUSED:\n%s", screen.String())
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, 1)
	g.pursuers = nil
	g.fish = Fish{X: 0, Y: 0, Radius: 12}

	// Must not panic
	g.Render(core.NewScreen(0, 0))

	screen := core.NewScreen(4, 3)
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), FillChar) {
		t.Errorf("player should stay visible on a tiny screen:\n%s", screen.String())
	}
}

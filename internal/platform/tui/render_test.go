package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/orca-arcade/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.Fill(core.ColorWhite)
	s.DrawText(0, 0, "Score", core.ColorBlack)
	s.SetColored(5, 1, '█', core.ColorRed)

	out := RenderScreen(s)

	// Escape codes depend on the terminal; the text must survive either way
	if !strings.Contains(out, "Score") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if !strings.Contains(out, "█") {
		t.Errorf("rendered output lost fill cell: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rendered %d newlines, expected 1", got)
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("RenderScreen(empty) = %q, expected empty", out)
	}
}

func TestStyleForColors(t *testing.T) {
	style := styleFor(colorPair{fg: core.ColorRed, bg: core.ColorWhite})
	if style.GetForeground() != lipgloss.Color("1") {
		t.Errorf("foreground = %v, expected 1", style.GetForeground())
	}
	if style.GetBackground() != lipgloss.Color("7") {
		t.Errorf("background = %v, expected 7", style.GetBackground())
	}

	plain := styleFor(colorPair{})
	if _, ok := plain.GetForeground().(lipgloss.NoColor); !ok {
		t.Errorf("default foreground = %v, expected NoColor", plain.GetForeground())
	}
}

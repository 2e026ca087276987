package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-hopper/internal/core"
)

func TestRenderScreenPreservesCells(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.DrawText(0, 0, "pond")
	s.SetColored(2, 1, '@', core.ColorBrightGreen)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "pond") {
		t.Errorf("first line missing drawn text: %q", lines[0])
	}
	if !strings.Contains(lines[1], "@") {
		t.Errorf("colored cell dropped from output: %q", lines[1])
	}
}

func TestRenderScreenUnknownColorFallsBack(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetColored(0, 0, 'x', core.Color(200))

	if !strings.Contains(RenderScreen(s), "x") {
		t.Error("unknown palette entry should render with the default style")
	}
}

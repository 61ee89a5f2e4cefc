package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-stack/internal/config"
	"github.com/vovakirdan/tui-stack/internal/core"
	"github.com/vovakirdan/tui-stack/internal/games/stack"
)

func newRenderGame(t *testing.T) *stack.Game {
	t.Helper()
	clock := &core.ManualClock{T: time.Unix(1_700_000_000, 0)}
	g, err := stack.New(config.DefaultStackConfig(), stack.WithSeed(7), stack.WithClock(clock))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func screenContains(s *core.Screen, text string) bool {
	for y := 0; y < s.Height(); y++ {
		if strings.Contains(s.Row(y), text) {
			return true
		}
	}
	return false
}

func countRune(s *core.Screen, r rune) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		n += strings.Count(s.Row(y), string(r))
	}
	return n
}

func TestRendererMenuOverlay(t *testing.T) {
	g := newRenderGame(t)
	r := NewRenderer(g.Settings())
	s := core.NewScreen(60, 20)

	r.Draw(s, g.Snapshot(), "")

	if !screenContains(s, "S T A C K") {
		t.Error("menu title not drawn")
	}
	if !strings.Contains(s.Row(0), "SCORE 0") {
		t.Errorf("HUD row = %q, want score", s.Row(0))
	}
}

func TestRendererDrawsTower(t *testing.T) {
	g := newRenderGame(t)
	g.Start()
	r := NewRenderer(g.Settings())
	s := core.NewScreen(60, 20)

	r.Draw(s, g.Snapshot(), "+10")

	// Base block plus the moving block
	if countRune(s, blockGlyph) == 0 {
		t.Fatal("no blocks drawn")
	}
	if !strings.Contains(s.Row(s.Height()-1), "+10") {
		t.Errorf("status line = %q", s.Row(s.Height()-1))
	}
	if screenContains(s, "S T A C K") {
		t.Error("menu overlay drawn while playing")
	}
}

func TestRendererMovingBlockIsHighlighted(t *testing.T) {
	g := newRenderGame(t)
	g.Start()
	snap := g.Snapshot()
	r := NewRenderer(g.Settings())

	placed := r.shade(snap.Blocks[0].Color, 0)
	moving := r.highlight(snap.CurrentBlock.Color)
	if placed == moving {
		t.Errorf("moving block color %q should differ from placed %q", moving, placed)
	}
}

func TestRendererShadeDarkensWithDepth(t *testing.T) {
	r := NewRenderer(config.DefaultStackConfig())

	top := r.shade("#FF6B6B", 0)
	deep := r.shade("#FF6B6B", 10)
	if top == deep {
		t.Error("deeper blocks should be darker")
	}
	if r.shade("#FF6B6B", 100) != r.shade("#FF6B6B", 200) {
		t.Error("shading should saturate")
	}
}

func TestRendererCameraFollowsTower(t *testing.T) {
	r := NewRenderer(config.DefaultStackConfig())
	h := 0.5
	blocks := make([]stack.Block, 40)
	for i := range blocks {
		blocks[i] = stack.Block{
			Position: core.V3(0, -0.25+float64(i)*h, 0),
			Size:     core.V3(2, h, 2),
			Color:    "#FF6B6B",
			IsPlaced: true,
		}
	}
	snap := stack.Snapshot{Phase: stack.PhasePlaying, Blocks: blocks}

	s := core.NewScreen(40, 16)
	r.Draw(s, snap, "")

	// Tall tower: ground scrolled away, top layer still visible
	if screenContains(s, "▔") {
		t.Error("ground should scroll out of view")
	}
	if countRune(s, blockGlyph) == 0 {
		t.Error("top of tower should stay visible")
	}
}

func TestRendererTooSmall(t *testing.T) {
	g := newRenderGame(t)
	r := NewRenderer(g.Settings())
	s := core.NewScreen(10, 4)

	r.Draw(s, g.Snapshot(), "")

	if !screenContains(s, "too small") {
		t.Errorf("expected too small message, got %q", s.Row(2))
	}

	narrow := core.NewScreen(5, 3)
	r.Draw(narrow, g.Snapshot(), "")
	if got := narrow.Row(1); got != "too s" {
		t.Errorf("narrow screen row = %q, want clipped message", got)
	}
}

func TestRendererOverlayPanel(t *testing.T) {
	g := newRenderGame(t)
	r := NewRenderer(g.Settings())
	s := core.NewScreen(60, 20)

	r.Draw(s, g.Snapshot(), "")

	if countRune(s, '┌') != 1 || countRune(s, '┘') != 1 {
		t.Error("menu overlay should sit inside a single box")
	}

	g.Start()
	r.Draw(s, g.Snapshot(), "")
	if countRune(s, '┌') != 0 {
		t.Error("no panel expected while playing")
	}
}

func TestRendererSkipsExpiredParticles(t *testing.T) {
	r := NewRenderer(config.DefaultStackConfig())
	now := time.Unix(1_700_000_000, 0)
	fall := stack.Particle{
		Position:  core.V3(0, 0.25, 0),
		Kind:      stack.ParticleFall,
		StartTime: now.Add(-10 * time.Second),
		Duration:  time.Second,
	}
	snap := stack.Snapshot{Phase: stack.PhasePlaying, Particles: []stack.Particle{fall}, Now: now}

	s := core.NewScreen(40, 16)
	r.Draw(s, snap, "")
	if countRune(s, 'v') != 0 {
		t.Error("expired particle should not be drawn")
	}

	fall.StartTime = now
	snap.Particles = []stack.Particle{fall}
	r.Draw(s, snap, "")
	if countRune(s, 'v') != 1 {
		t.Error("live particle should be drawn")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "abc", core.ColorGold)
	s.DrawTextColored(0, 1, "xyz", core.ColorDefault)

	out := RenderScreen(s)
	if !strings.Contains(out, "abc") || !strings.Contains(out, "xyz") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}

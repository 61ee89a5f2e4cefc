package tui

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-stack/internal/config"
	"github.com/vovakirdan/tui-stack/internal/core"
	"github.com/vovakirdan/tui-stack/internal/games/stack"
)

// styleCache maps core.Color to lipgloss styles.
// Palette colors are hex strings, so the set is open and built lazily.
var styleCache sync.Map

func styleFor(c core.Color) lipgloss.Style {
	if v, ok := styleCache.Load(c); ok {
		return v.(lipgloss.Style)
	}
	style := lipgloss.NewStyle()
	if c != core.ColorDefault {
		style = style.Foreground(lipgloss.Color(string(c)))
	}
	styleCache.Store(c, style)
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// Renderer layout
const (
	minFieldW   = 24
	minFieldH   = 8
	hudRows     = 2 // HUD line plus gap
	cameraShare = 0.6
	blockGlyph  = '█'
)

// Renderer draws a side view of the tower: world X runs across the screen,
// each block layer takes one row. The camera follows the top of the tower.
type Renderer struct {
	halfWidth   float64 // World half-width covered by the screen
	blockHeight float64

	mu     sync.Mutex
	shades map[string]core.Color
}

// NewRenderer creates a renderer sized for the given settings.
func NewRenderer(cfg config.StackConfig) *Renderer {
	return &Renderer{
		halfWidth:   cfg.Blocks.TravelBound + cfg.Blocks.BaseWidth/2,
		blockHeight: cfg.Blocks.Height,
		shades:      make(map[string]core.Color),
	}
}

// Draw renders a snapshot onto the screen. The last row is the status line.
func (r *Renderer) Draw(s *core.Screen, snap stack.Snapshot, status string) {
	s.Clear()
	w, h := s.Width(), s.Height()
	if w < minFieldW || h < minFieldH {
		msg := []rune("terminal too small")
		if len(msg) > w {
			msg = []rune("too small")
		}
		if len(msg) > w {
			msg = msg[:w]
		}
		s.DrawTextCentered(h/2, string(msg), core.ColorRed)
		return
	}

	r.drawHUD(s, snap)

	field := fieldView{
		top:    hudRows,
		bottom: h - 2,
		width:  w,
		scaleX: float64(w-2) / (2 * r.halfWidth),
		half:   r.halfWidth,
		height: r.blockHeight,
	}
	if base, ok := firstBlock(snap); ok {
		field.baseY = base.Position.Y
	}
	field.camera = r.cameraLayer(field, snap)

	if field.camera == 0 {
		s.DrawHLine(0, field.bottom, w, '▔', core.ColorDim)
	}

	topLayer := len(snap.Blocks) - 1
	for _, b := range snap.Blocks {
		depth := topLayer - field.layer(b.Position.Y)
		r.drawBlock(s, field, b, r.shade(b.Color, depth))
	}
	if snap.CurrentBlock != nil {
		r.drawBlock(s, field, *snap.CurrentBlock, r.highlight(snap.CurrentBlock.Color))
	}
	for _, p := range snap.Particles {
		if !p.Alive(snap.Now) {
			continue
		}
		drawParticle(s, field, p, p.Age(snap.Now))
	}

	r.drawOverlay(s, snap)

	if status != "" {
		s.DrawTextCentered(h-1, status, core.ColorHighlight)
	}
}

func firstBlock(snap stack.Snapshot) (stack.Block, bool) {
	if len(snap.Blocks) == 0 {
		return stack.Block{}, false
	}
	return snap.Blocks[0], true
}

// fieldView maps world coordinates to screen cells.
type fieldView struct {
	top, bottom int // Playfield rows; bottom is the ground line
	width       int
	scaleX      float64
	half        float64
	height      float64
	baseY       float64
	camera      int // Lowest visible layer
}

func (f fieldView) layer(y float64) int {
	return int(math.Round((y - f.baseY) / f.height))
}

func (f fieldView) row(y float64) int {
	return f.bottom - 1 - (f.layer(y) - f.camera)
}

func (f fieldView) col(x float64) int {
	return 1 + int(math.Round((x+f.half)*f.scaleX))
}

func (f fieldView) visible(row int) bool {
	return row >= f.top && row < f.bottom
}

// cameraLayer keeps the highest layer in the upper part of the field.
func (r *Renderer) cameraLayer(f fieldView, snap stack.Snapshot) int {
	top, ok := snap.Top()
	if !ok {
		return 0
	}
	highest := f.layer(top.Position.Y)
	if snap.CurrentBlock != nil {
		highest = max(highest, f.layer(snap.CurrentBlock.Position.Y))
	}
	rows := f.bottom - f.top
	return max(0, highest-int(float64(rows)*cameraShare))
}

func (r *Renderer) drawBlock(s *core.Screen, f fieldView, b stack.Block, c core.Color) {
	row := f.row(b.Position.Y)
	if !f.visible(row) {
		return
	}
	x0 := f.col(b.Position.X - b.Size.X/2)
	x1 := f.col(b.Position.X + b.Size.X/2)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	for x := x0; x < x1; x++ {
		s.SetColored(x, row, blockGlyph, c)
	}
}

func drawParticle(s *core.Screen, f fieldView, p stack.Particle, age float64) {
	row := f.row(p.Position.Y)
	col := f.col(p.Position.X)

	switch p.Kind {
	case stack.ParticlePerfect:
		spread := 1 + int(age*6)
		if f.visible(row) {
			s.SetColored(col-spread, row, '*', core.ColorGold)
			s.SetColored(col+spread, row, '*', core.ColorGold)
		}
		if age < 0.5 && f.visible(row-1) {
			s.SetColored(col, row-1, '+', core.ColorGold)
		}
	case stack.ParticlePlace:
		spread := 1 + int(age*3)
		if f.visible(row) {
			s.SetColored(col-spread, row, '·', core.ColorGray)
			s.SetColored(col+spread, row, '·', core.ColorGray)
		}
	case stack.ParticleFall:
		row += int(age * 4)
		if f.visible(row) {
			s.SetColored(col, row, 'v', core.ColorRed)
		}
	}
}

func (r *Renderer) drawHUD(s *core.Screen, snap stack.Snapshot) {
	left := fmt.Sprintf(" SCORE %d   LEVEL %d", snap.Score, snap.Level)
	s.DrawTextColored(0, 0, left, core.ColorHighlight)

	right := fmt.Sprintf("BEST %d ", snap.BestScore)
	s.DrawTextColored(s.Width()-len(right), 0, right, core.ColorGray)

	if snap.PerfectStreak > 0 {
		s.DrawTextCentered(0, fmt.Sprintf("PERFECT x%d", snap.PerfectStreak), core.ColorGold)
	}
}

type overlayLine struct {
	text  string
	color core.Color
}

func (r *Renderer) drawOverlay(s *core.Screen, snap stack.Snapshot) {
	var lines []overlayLine
	switch snap.Phase {
	case stack.PhaseMenu:
		lines = []overlayLine{
			{"S T A C K", core.ColorCyan},
			{},
			{"press space to start", core.ColorGray},
		}
	case stack.PhasePaused:
		lines = []overlayLine{
			{"PAUSED", core.ColorHighlight},
			{},
			{"space to resume", core.ColorGray},
		}
	case stack.PhaseGameOver:
		best := overlayLine{}
		if snap.Score > 0 && snap.Score >= snap.BestScore {
			best = overlayLine{"NEW BEST!", core.ColorGold}
		}
		lines = []overlayLine{
			{"GAME OVER", core.ColorRed},
			{fmt.Sprintf("score %d   best %d", snap.Score, snap.BestScore), core.ColorDefault},
			best,
			{},
			{"space to play again", core.ColorGray},
		}
	default:
		return
	}

	widest := 0
	for _, l := range lines {
		widest = max(widest, len([]rune(l.text)))
	}
	w, h := s.Width(), s.Height()
	pw := core.Clamp(widest+6, 20, w)
	ph := len(lines) + 2
	y := core.Clamp(h/3-1, hudRows, max(hudRows, h-1-ph))
	panel := core.NewRect((w-pw)/2, y, pw, ph)

	s.FillRect(panel, ' ', core.ColorDefault)
	s.DrawBox(panel, core.ColorDim)
	for i, l := range lines {
		if l.text != "" {
			s.DrawTextCentered(panel.Y+1+i, l.text, l.color)
		}
	}
}

// shade darkens a block color with its depth below the top of the tower.
func (r *Renderer) shade(hex string, depth int) core.Color {
	amount := math.Min(float64(max(depth, 0))*0.04, 0.5)
	return r.blend(hex, colorful.Color{}, amount)
}

// highlight lightens the moving block.
func (r *Renderer) highlight(hex string) core.Color {
	return r.blend(hex, colorful.Color{R: 1, G: 1, B: 1}, 0.2)
}

func (r *Renderer) blend(hex string, toward colorful.Color, amount float64) core.Color {
	key := fmt.Sprintf("%s/%.2f/%s", hex, amount, toward.Hex())

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.shades[key]; ok {
		return c
	}

	base, err := colorful.Hex(hex)
	if err != nil {
		return core.Color(hex)
	}
	c := core.Color(base.BlendLab(toward, amount).Clamped().Hex())
	r.shades[key] = c
	return c
}

package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stack/internal/config"
	"github.com/vovakirdan/tui-stack/internal/core"
	"github.com/vovakirdan/tui-stack/internal/games/stack"
	"github.com/vovakirdan/tui-stack/internal/storage"
)

const (
	// statusDuration is how long a status message stays on screen.
	statusDuration = 1500 * time.Millisecond
	// bellDuration keeps a BEL in the frame until the renderer flushes it.
	bellDuration = 100 * time.Millisecond
)

// Env bundles what a game screen needs from its host.
type Env struct {
	Settings config.StackConfig
	Runtime  core.RuntimeConfig
	Store    *storage.Store // Optional; nil keeps the best score in memory
	Logger   *log.Logger    // Optional
	Bell     bool           // Ring the terminal bell on perfect placements
}

// persistence returns the gateway backing the best score.
func (e Env) persistence() stack.Persistence {
	if e.Store == nil {
		return stack.NewMemoryPersistence()
	}
	return e.Store
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// eventBuffer collects engine events between frames.
// Shared by pointer so value copies of the model see the same queue.
type eventBuffer struct {
	events []stack.Event
}

func (b *eventBuffer) push(e stack.Event) {
	b.events = append(b.events, e)
}

func (b *eventBuffer) drain() []stack.Event {
	out := b.events
	b.events = nil
	return out
}

// GameModel is the Bubble Tea model for playing the stack game.
// Key presses are queued and applied at the start of the next tick,
// then the simulation advances by the real frame time.
type GameModel struct {
	game     *stack.Game
	events   *eventBuffer
	env      Env
	logger   *log.Logger
	screen   *core.Screen
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	pending  core.InputFrame
	lastTick time.Time

	status      string
	statusUntil time.Time
	bellUntil   time.Time

	quitOnBack bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game screen. It fails if the settings are invalid.
func NewGameModel(env Env) (GameModel, error) {
	events := &eventBuffer{}
	logger := env.logger()

	opts := []stack.Option{
		stack.WithPersistence(env.persistence()),
		stack.WithLogger(logger),
		stack.WithListener(events.push),
	}
	if env.Runtime.Seed != 0 {
		opts = append(opts, stack.WithSeed(env.Runtime.Seed))
	}

	game, err := stack.New(env.Settings, opts...)
	if err != nil {
		return GameModel{}, err
	}

	h := help.New()
	h.Width = env.Runtime.ScreenW

	return GameModel{
		game:     game,
		events:   events,
		env:      env,
		logger:   logger,
		screen:   core.NewScreen(env.Runtime.ScreenW, max(env.Runtime.ScreenH-1, 1)),
		renderer: NewRenderer(env.Settings),
		keys:     DefaultKeyMap(),
		help:     h,
		pending:  core.NewInputFrame(),
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.env.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.env.Runtime.ScreenW = msg.Width
		m.env.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.ActionFor(msg, m.game.Phase()); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
	case core.ActionNone:
	default:
		m.pending.Set(action)
	}

	return m, nil
}

// handleTick applies queued input, advances the simulation and reacts to
// the events it produced.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	for _, a := range m.pending.Actions {
		m.game.Apply(a)
	}
	m.pending.Clear()
	m.game.Tick(dt)

	m.handleEvents(now)

	if !m.statusUntil.IsZero() && now.After(m.statusUntil) {
		m.status = ""
		m.statusUntil = time.Time{}
	}
	if !m.bellUntil.IsZero() && now.After(m.bellUntil) {
		m.bellUntil = time.Time{}
	}

	return m, tickCmd(m.env.Runtime.TickRate)
}

// handleEvents turns engine events into status messages, sounds and
// run history.
func (m *GameModel) handleEvents(now time.Time) {
	for _, ev := range m.events.drain() {
		switch e := ev.(type) {
		case stack.PerfectPlacedEvent:
			m.setStatus(now, fmt.Sprintf("PERFECT! +%d", e.Points))
			if m.env.Bell {
				m.bellUntil = now.Add(bellDuration)
			}
		case stack.BlockPlacedEvent:
			m.setStatus(now, fmt.Sprintf("+%d", e.Points))
		case stack.GameOverEvent:
			m.recordRun(e.Score)
			if e.NewBest {
				m.setStatus(now, "new best score!")
			}
		case stack.PersistenceFailedEvent:
			m.setStatus(now, "could not save best score")
		case stack.MusicShouldPlayEvent:
			m.logger.Debug("music", "state", "play")
		case stack.MusicShouldStopEvent:
			m.logger.Debug("music", "state", "stop")
		}
	}
}

// recordRun appends a finished run to the history.
func (m *GameModel) recordRun(score int) {
	if m.env.Store == nil || score <= 0 {
		return
	}
	if _, err := m.env.Store.SaveScore(stack.GameID, score, m.game.Level()); err != nil {
		m.logger.Warn("could not record run", "score", score, "error", err)
	}
}

func (m *GameModel) setStatus(now time.Time, text string) {
	m.status = text
	m.statusUntil = now.Add(statusDuration)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.screen, m.game.Snapshot(), m.status)
	out := RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
	if !m.bellUntil.IsZero() {
		// The renderer only rewrites changed lines, so the bell sounds once
		// when it appears on the help line.
		out += "\a"
	}
	return out
}

// Game returns the underlying game.
func (m GameModel) Game() *stack.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the user quits.
func Run(env Env) error {
	model, err := NewGameModel(env)
	if err != nil {
		return err
	}
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}

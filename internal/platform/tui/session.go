package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-stack/internal/games/stack"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// It is the top-level model for menu mode and SSH sessions.
type SessionModel struct {
	env        Env
	screen     sessionScreen
	best       int
	menu       MenuModel
	game       *GameModel
	scoreboard *ScoreboardModel
	err        error
	quitting   bool
}

// NewSessionModel creates a session starting at the main menu.
func NewSessionModel(env Env) SessionModel {
	m := SessionModel{env: env}
	m.best = m.loadBest()
	m.menu = NewMenuModel(env.Runtime.ScreenW, env.Runtime.ScreenH, m.best)
	return m
}

func (m SessionModel) loadBest() int {
	if m.env.Store == nil {
		return m.best
	}
	best, err := m.env.Store.Load(stack.BestScoreKey)
	if err != nil {
		m.env.logger().Warn("could not load best score", "error", err)
		return m.best
	}
	return best
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.env.Runtime.ScreenW = wsm.Width
		m.env.Runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Selected() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoicePlay:
		// A fresh game picks up the stored best and a new seed.
		env := m.env
		env.Runtime.Seed = 0
		game, err := NewGameModel(env)
		if err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.game = &game
		m.screen = screenGame
		return m, m.game.Init()

	case ChoiceScores:
		sb := NewScoreboardModel(m.env.Store, m.env.Runtime.ScreenW, m.env.Runtime.ScreenH)
		m.scoreboard = &sb
		m.screen = screenScores
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.best = max(m.game.Game().BestScore(), m.loadBest())
		m.game = nil
		return m.showMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		return m.showMenu()
	}

	return m, cmd
}

func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.env.Runtime.ScreenW, m.env.Runtime.ScreenH, m.best)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(env Env) error {
	p := tea.NewProgram(
		NewSessionModel(env),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(SessionModel); ok {
		return m.Err()
	}
	return nil
}

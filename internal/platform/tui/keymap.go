package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-stack/internal/core"
	"github.com/vovakirdan/tui-stack/internal/games/stack"
)

// KeyMap defines the key bindings for the game screen.
// It centralizes bindings and makes them testable.
type KeyMap struct {
	Drop  key.Binding // Start, place or resume depending on phase
	Pause key.Binding
	Reset key.Binding
	Back  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Drop, k.Pause, k.Reset, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Drop, k.Pause, k.Reset},
		{k.Back, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Drop: key.NewBinding(
			key.WithKeys(" ", "enter", "up", "w"),
			key.WithHelp("space", "drop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ActionFor translates a key press into a game action for the given phase.
// The drop key starts a run from the menu or game over screen, places the
// block while playing and resumes when paused. The pause key toggles.
// Returns ActionNone for keys that mean nothing in the phase.
func (k KeyMap) ActionFor(msg tea.KeyMsg, phase stack.Phase) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Back):
		if phase == stack.PhasePlaying {
			return core.ActionNone
		}
		return core.ActionBack
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Drop):
		switch phase {
		case stack.PhaseMenu, stack.PhaseGameOver:
			return core.ActionStart
		case stack.PhasePlaying:
			return core.ActionPlace
		case stack.PhasePaused:
			return core.ActionResume
		}
	case key.Matches(msg, k.Pause):
		switch phase {
		case stack.PhasePlaying:
			return core.ActionPause
		case stack.PhasePaused:
			return core.ActionResume
		}
	}
	return core.ActionNone
}

// MenuKeyMap defines the key bindings for list screens.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns the default list bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Back, k.Quit}}
}

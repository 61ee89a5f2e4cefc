package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-stack/internal/core"
	"github.com/vovakirdan/tui-stack/internal/games/stack"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapActionFor(t *testing.T) {
	km := DefaultKeyMap()
	space := tea.KeyMsg{Type: tea.KeySpace}
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		phase stack.Phase
		want  core.Action
	}{
		{"space starts from menu", space, stack.PhaseMenu, core.ActionStart},
		{"enter starts after game over", enter, stack.PhaseGameOver, core.ActionStart},
		{"space places while playing", space, stack.PhasePlaying, core.ActionPlace},
		{"space resumes when paused", space, stack.PhasePaused, core.ActionResume},
		{"p pauses while playing", runeKey('p'), stack.PhasePlaying, core.ActionPause},
		{"esc resumes when paused", esc, stack.PhasePaused, core.ActionResume},
		{"pause ignored in menu", runeKey('p'), stack.PhaseMenu, core.ActionNone},
		{"r resets", runeKey('r'), stack.PhasePlaying, core.ActionReset},
		{"b goes back from menu", runeKey('b'), stack.PhaseMenu, core.ActionBack},
		{"b ignored while playing", runeKey('b'), stack.PhasePlaying, core.ActionNone},
		{"q quits", runeKey('q'), stack.PhasePlaying, core.ActionQuit},
		{"unbound key", runeKey('z'), stack.PhasePlaying, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.ActionFor(tt.msg, tt.phase); got != tt.want {
				t.Errorf("ActionFor() = %v, want %v", got, tt.want)
			}
		})
	}
}

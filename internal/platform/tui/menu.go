package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var menuItems = []MenuItem{
	{Choice: ChoicePlay, Title: "Play"},
	{Choice: ChoiceScores, Title: "High Scores"},
	{Choice: ChoiceQuit, Title: "Quit"},
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	best     int
	keys     MenuKeyMap
	help     help.Model
	selected MenuChoice
}

// NewMenuModel creates a new menu model showing the given best score.
func NewMenuModel(width, height, best int) MenuModel {
	return MenuModel{
		items:  menuItems,
		width:  width,
		height: height,
		best:   best,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.selected = ChoiceQuit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.selected = m.items[m.cursor].Choice
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S T A C K"), m.width, len("S T A C K")))
	b.WriteString("\n\n")

	best := fmt.Sprintf("best %d", m.best)
	b.WriteString(centerText(dimStyle.Render(best), m.width, len(best)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		style := lipgloss.NewStyle()
		if i == m.cursor {
			line = "> " + item.Title
			style = activeStyle
		}
		b.WriteString(centerText(style.Render(line), m.width, len(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone while browsing.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// centerText centers already-styled text of the given visible length.
func centerText(text string, width, visible int) string {
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", (width-visible)/2) + text
}

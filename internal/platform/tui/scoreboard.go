package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-stack/internal/games/stack"
	"github.com/vovakirdan/tui-stack/internal/storage"
)

// maxScores is the number of runs loaded into the table.
const maxScores = 100

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      MenuKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard and loads the history.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Level", Width: 7},
		{Title: "Date", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads runs and aggregate stats from the store.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.scores, m.loadErr = m.store.TopScores(stack.GameID, maxScores)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(stack.GameID)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Select):
			m.goingBack = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), m.width, len("HIGH SCORES")))
	b.WriteString("\n\n")

	if m.stats != nil && m.stats.GamesCount > 0 {
		line := fmt.Sprintf("%d runs   best %d   avg %.0f   highest level %d",
			m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.BestLevel)
		b.WriteString(centerText(dimStyle.Render(line), m.width, len(line)))
		b.WriteString("\n\n")
	}

	b.WriteString(boxStyle.Render(m.renderTableContent()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or a placeholder message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Score history is unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load scores.")
	case len(m.scores) == 0:
		return emptyStyle.Render("No runs recorded yet.\nStack some blocks to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

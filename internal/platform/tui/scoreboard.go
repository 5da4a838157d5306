package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/akarpov/notflappy/internal/storage"
)

const scoreboardLimit = 100

// scoreboardKeyMap defines the key bindings for the score browser.
type scoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns bindings for the one-line help view.
func (k scoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k scoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

func defaultScoreboardKeyMap() scoreboardKeyMap {
	return scoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("11")).
				MarginBottom(1)

	scoreboardBestStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("10")).
				MarginTop(1)
)

// ScoreboardModel browses recorded runs in a table.
type ScoreboardModel struct {
	table    table.Model
	help     help.Model
	keys     scoreboardKeyMap
	best     int
	quitting bool
}

// NewScoreboardModel loads the top runs from the store.
func NewScoreboardModel(store *storage.Store) (ScoreboardModel, error) {
	entries, err := store.TopScores(scoreboardLimit)
	if err != nil {
		return ScoreboardModel{}, err
	}
	best, err := store.HighScore()
	if err != nil {
		return ScoreboardModel{}, err
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	return ScoreboardModel{
		table: t,
		help:  help.New(),
		keys:  defaultScoreboardKeyMap(),
		best:  best,
	}, nil
}

// Init is a no-op; the table is loaded up front.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation and quit keys.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table with its chrome.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}
	out := scoreboardTitleStyle.Render("NotFlappyBird - High Scores") + "\n"
	out += m.table.View() + "\n"
	if m.best > 0 {
		out += scoreboardBestStyle.Render(fmt.Sprintf("Best: %d", m.best)) + "\n"
	}
	out += m.help.View(m.keys)
	return out
}

// RunScoreboard opens the interactive score browser.
func RunScoreboard(store *storage.Store) error {
	model, err := NewScoreboardModel(store)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	_, err = p.Run()
	return err
}

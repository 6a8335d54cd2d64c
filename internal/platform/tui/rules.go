package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wordquest/internal/games/wordquest"
)

// RulesKeyMap defines the key bindings for the rules screen.
type RulesKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RulesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RulesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultRulesKeyMap returns default key bindings.
func DefaultRulesKeyMap() RulesKeyMap {
	return RulesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RulesModel is the Bubble Tea model for the "How to play" screen.
type RulesModel struct {
	rules     wordquest.Rules
	table     table.Model
	help      help.Model
	keys      RulesKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewRulesModel creates a rules screen for the given rules.
func NewRulesModel(rules wordquest.Rules, width, height int) RulesModel {
	m := RulesModel{
		rules:  rules,
		keys:   DefaultRulesKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the letter value table.
func (m *RulesModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Tier", Width: 12},
		{Title: "Points", Width: 7},
		{Title: "Letters", Width: 14},
	}

	tiers := wordquest.Tiers()
	rows := make([]table.Row, len(tiers))
	for i, t := range tiers {
		rows[i] = table.Row{
			t.Name,
			fmt.Sprintf("%d", t.Points),
			strings.ToUpper(strings.Join(strings.Split(t.Letters, ""), " ")),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+3), // header and its border
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

// Init initializes the rules model.
func (m RulesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the rules screen.
func (m RulesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Summary returns the rule paragraph shown above the table.
func (m RulesModel) Summary() []string {
	return m.rules.Summary()
}

// View renders the rules screen.
func (m RulesModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("HOW TO PLAY", m.width)))
	b.WriteString("\n\n")

	for _, line := range m.Summary() {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	for _, line := range strings.Split(tableStyle.Render(m.table.View()), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RulesModel) IsGoingBack() bool {
	return m.goingBack
}

// RunRules runs the rules screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunRules(rules wordquest.Rules, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewRulesModel(rules, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RulesModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}

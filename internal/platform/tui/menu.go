package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wordquest/internal/core"
	"github.com/vovakirdan/wordquest/internal/registry"
)

// MenuItemKind distinguishes games from other menu entries.
type MenuItemKind int

const (
	MenuItemGame MenuItemKind = iota
	MenuItemRules
	MenuItemQuit
)

// MenuItem represents a selectable menu entry.
type MenuItem struct {
	Kind   MenuItemKind
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when user selects an entry
}

// NewMenuModel creates a new menu model listing every registered variant.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+2)

	for _, g := range games {
		items = append(items, MenuItem{
			Kind:   MenuItemGame,
			GameID: g.ID,
			Title:  g.Title,
		})
	}
	items = append(items,
		MenuItem{Kind: MenuItemRules, Title: "How to play"},
		MenuItem{Kind: MenuItemQuit, Title: "Quit"},
	)

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
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
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		if selected.Kind == MenuItemQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &selected
		return m, tea.Quit // Exit menu to start the selection
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle, "W O R D   Q U E S T", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Spell words from twelve tiles to beat each round's target", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			b.WriteString(centerStyled(activeStyle, "> "+item.Title, m.width))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := fmt.Sprintf("%s  |  %s  |  %s", "Up/Down: Navigate", "Enter: Select", "Q: Quit")
	b.WriteString(centerStyled(dimStyle, controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// centerStyled centers text and applies a style to it.
func centerStyled(style lipgloss.Style, text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return style.Render(text)
	}
	return strings.Repeat(" ", (width-n)/2) + style.Render(text)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID    string
	ShowRules bool
	Config    core.RuntimeConfig
	Quit      bool
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.config}

	switch {
	case m.quitting || m.selected == nil:
		result.Quit = true
	case m.selected.Kind == MenuItemRules:
		result.ShowRules = true
	default:
		result.GameID = m.selected.GameID
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}

package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/wordquest/internal/core"
	"github.com/vovakirdan/wordquest/internal/registry"
)

// helpHeight is the number of rows reserved below the game for the help bar.
const helpHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	sessionID  string
	quitting   bool
	goingBack  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sessionID := uuid.NewString()

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		logger:     logger.With("session", sessionID[:8], "game", game.ID()),
		sessionID:  sessionID,
	}
}

// gameHeight is the screen height left for the game after the help bar.
func gameHeight(termH int) int {
	return core.Max(0, termH-helpHeight)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.logger.Info("quit", "score", m.gameState.Score, "round", m.gameState.Round)
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionBack) {
		m.logger.Info("back to menu", "score", m.gameState.Score, "round", m.gameState.Round)
		m.goingBack = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events without restarting the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = gameHeight(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransition(prev, m.gameState)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logTransition records round and game changes.
func (m Model) logTransition(prev, cur core.GameState) {
	if prev.Waiting == cur.Waiting {
		return
	}
	switch {
	case cur.Won:
		m.logger.Info("game won", "score", cur.Score)
	case cur.GameOver:
		m.logger.Info("out of words", "score", cur.Score)
	case cur.Waiting:
		m.logger.Info("round cleared", "next_round", cur.Round, "score", cur.Score)
	default:
		m.logger.Debug("round resumed", "round", cur.Round)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".wordquest", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsGoingBack returns true if the user asked to return to the menu.
func (m Model) IsGoingBack() bool {
	return m.goingBack
}

// Run starts the Bubble Tea program with the given game.
// Returns true if the user wants to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (goBack bool, err error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}

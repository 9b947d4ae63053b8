package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodger/internal/core"
	"github.com/vovakirdan/tui-dodger/internal/registry"
	"github.com/vovakirdan/tui-dodger/internal/storage"
)

// Model is the Bubble Tea model for running the game. Terminals deliver no
// key-up events, so held movement is emulated: each movement key press arms
// a per-direction tick counter sized to outlive the key-repeat gap, and the
// direction reads as held while its counter is positive.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	heldTicks  [moveDirCount]int
	holdTicks  int // Ticks a single key press counts as held
	gameState  core.GameState
	best       int
	seedFixed  bool // Seed came from the user; keep it across restarts
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	seedFixed := cfg.Seed != 0
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	holdTicks := cfg.TickRate / 6
	if holdTicks < 2 {
		holdTicks = 2
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		holdTicks:  holdTicks,
		seedFixed:  seedFixed,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)

	// Inject the persisted best score for display
	if m.store != nil {
		if best, err := m.store.HighScore(m.game.ID()); err == nil {
			m.game.SetBest(best)
		}
	}

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if dir, ok := m.keys.MapMoveKey(msg); ok {
		m.heldTicks[dir] = m.holdTicks
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The simulation runs on a
// fixed logical field, so only the presentation buffer changes size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// An auto-chosen seed is rolled again on restart so runs differ;
	// a user-supplied seed stays for reproducibility.
	if m.gameState.Phase == core.PhaseGameOver && !m.seedFixed &&
		(m.inputFrame.Has(core.ActionStart) || m.inputFrame.Has(core.ActionRestart)) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.game.SetBest(m.best)
		m.inputFrame.Set(core.ActionStart)
	}

	// Sample the emulated held keys for this tick
	m.inputFrame.Move = core.MoveState{
		Up:    m.heldTicks[moveUp] > 0,
		Down:  m.heldTicks[moveDown] > 0,
		Left:  m.heldTicks[moveLeft] > 0,
		Right: m.heldTicks[moveRight] > 0,
	}
	for i := range m.heldTicks {
		if m.heldTicks[i] > 0 {
			m.heldTicks[i]--
		}
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.Phase == core.PhaseGameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score)
			if best, err := m.store.HighScore(m.game.ID()); err == nil {
				m.best = best
				m.game.SetBest(best)
			}
		}
		if m.gameState.Score > m.best {
			m.best = m.gameState.Score
			m.game.SetBest(m.best)
		}
		m.scoreSaved = true
	}
	if m.gameState.Phase != core.PhaseGameOver {
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".dodger", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

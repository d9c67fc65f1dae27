package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-anglers/internal/core"
	"github.com/vovakirdan/tui-anglers/internal/registry"
	"github.com/vovakirdan/tui-anglers/internal/replay"
	"github.com/vovakirdan/tui-anglers/internal/storage"
)

// footerHeight is the number of rows below the game screen.
const footerHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	holds      *HoldTracker
	keyMapper  *KeyMapper
	help       help.Model
	recorder   *replay.Recorder
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	saved      bool   // Whether the recording has been saved for the current round
	savedID    string // ID of the last saved recording
}

// NewModel creates a new Bubble Tea model for the given game and starts the
// first round. A nil store disables recording; a nil logger discards output.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1)),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		holds:      NewHoldTracker(cfg.HoldWindow),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
	}
	m.startRound()
	return m
}

// startRound resets the game with a fresh seed and starts a new recording.
func (m *Model) startRound() {
	// Use time-based seed if not specified
	if m.config.Seed == 0 {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.holds.Reset()
	m.inputFrame = core.NewInputFrame()
	m.saved = false
	m.savedID = ""

	m.recorder = nil
	if m.store == nil {
		return
	}
	rec, err := replay.NewRecorder(m.game, m.config.Seed)
	if err != nil {
		m.logger.Warn("recording disabled", "error", err)
		return
	}
	m.recorder = rec
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keyMapper.MapKey(msg); action {
	case core.ActionQuit:
		m.saveRecording()
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp, core.ActionDown:
		m.holds.Press(action, now)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The world has a fixed size
// and is scaled to the screen, so the round keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by the wall-clock time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = 0
		m.startRound()
		m.logger.Info("round restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	m.holds.Apply(&m.inputFrame, now)

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	if m.recorder != nil && !m.saved {
		m.recorder.Record(m.inputFrame, dt)
	}

	// Save the recording on game over (once)
	if m.gameState.GameOver && !m.saved {
		m.saveRecording()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRecording stores the current round's recording, once.
func (m *Model) saveRecording() {
	if m.saved || m.recorder == nil || m.recorder.Len() == 0 {
		return
	}
	m.saved = true

	id, err := m.store.SaveReplay(m.recorder.Finish(m.gameState))
	if err != nil {
		m.logger.Warn("cannot save replay", "error", err)
		return
	}
	m.savedID = id
	m.logger.Info("replay saved",
		"id", id,
		"score", m.gameState.Score,
		"frames", m.recorder.Len(),
	)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".anglers", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// footer shows the key help, and the replay ID once the round is saved.
func (m Model) footer() string {
	line := m.help.View(m.keyMapper.Keys())
	if m.saved && m.savedID != "" {
		line += fmt.Sprintf("  •  replay %s", m.savedID[:8])
	}
	return line
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

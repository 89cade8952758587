package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/herring/internal/core"
	"github.com/vovakirdan/herring/internal/games/herring"
)

// Model is the Bubble Tea model running one herring engine.
type Model struct {
	engine   *herring.Engine
	screen   *core.Screen
	renderer *Renderer
	clock    *Clock
	config   core.RuntimeConfig
	input    core.InputFrame
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	last     core.GameState
	paused   bool
	showHelp bool
	quitting bool
}

// NewModel creates a model for engine. A nil logger discards output.
func NewModel(engine *herring.Engine, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	screen := core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH))

	return Model{
		engine:   engine,
		screen:   screen,
		renderer: NewRenderer(screen),
		clock:    NewClock(time.Now),
		config:   cfg,
		input:    core.NewInputFrame(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		last:     engine.State(),
		showHelp: true,
	}
}

// playRows is the screen height left after the help footer.
func playRows(h int) int {
	return max(h-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))
	case tea.MouseMsg:
		return m.handleAction(MouseAction(msg))
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.engine.Score(), "state", m.engine.Phase())
		return m, tea.Quit
	case core.ActionPause:
		m.togglePause()
	case core.ActionHelp:
		m.showHelp = !m.showHelp
	case core.ActionFlap:
		if !m.paused {
			m.input.Set(core.ActionFlap)
		}
	case core.ActionRestart:
		if !m.paused && m.engine.Phase() == herring.StateGameOver {
			m.input.Set(core.ActionRestart)
		}
	}
	return m, nil
}

// togglePause pauses or resumes a running game. Outside of play there is
// nothing to freeze.
func (m *Model) togglePause() {
	if !m.paused && m.engine.Phase() != herring.StatePlaying {
		return
	}
	m.paused = !m.paused
	if m.paused {
		m.clock.Pause()
		m.logger.Debug("paused", "score", m.engine.Score())
		return
	}
	m.clock.Resume()
	m.logger.Debug("resumed")
}

// handleTick advances the engine by one step with the inputs gathered
// since the previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		m.input.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	flap := m.input.Has(core.ActionFlap) || m.input.Has(core.ActionRestart)
	m.engine.Tick(flap, m.clock.Now())
	m.input.Clear()
	m.logTransition()

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) logTransition() {
	st := m.engine.State()
	prev := m.last
	m.last = st

	switch {
	case prev.GameOver && !st.GameOver:
		m.logger.Info("run restarted")
	case !prev.Started && st.Started:
		m.logger.Info("run started")
	}
	if !prev.GameOver && st.GameOver {
		m.logger.Info("game over", "score", st.Score, "ticks", m.engine.Snapshot().Ticks)
	}
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.engine.Snapshot(), m.paused)
	out := RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// Paused reports whether the game is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts an interactive game on the local terminal.
func Run(engine *herring.Engine, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(engine, cfg, logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

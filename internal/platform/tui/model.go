package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Options carries the optional collaborators of a Model.
type Options struct {
	Ledger *storage.Ledger      // Finished runs are recorded here when set
	Logger *log.Logger          // Defaults to a discarding logger
	Swipe  core.SwipeThresholds // Mouse drag thresholds in cells
	Assist func() core.Action   // Demo mode: supplies one action per tick
}

// Model is the Bubble Tea model that runs a game.
type Model struct {
	game       Game
	screen     *core.Screen
	ledger     *storage.Ledger
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	swipe      core.SwipeThresholds
	assist     func() core.Action
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool

	// Pointer drag in progress, in cells.
	dragging     bool
	dragX, dragY int
	recordedRuns int
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		ledger:     opts.Ledger,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		swipe:      opts.Swipe,
		assist:     opts.Assist,
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game ready", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game once it is not mid-run.
	if m.inputFrame.Has(core.ActionBack) && (!m.gameState.Started || m.gameState.GameOver) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse turns a left-button press/release pair into a swipe.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.dragging = true
		m.dragX, m.dragY = msg.X, msg.Y

	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		dx := float64(msg.X - m.dragX)
		dy := float64(msg.Y - m.dragY)
		action := core.ClassifySwipe(dx, dy, m.swipe)
		if action == core.ActionNone && dx == 0 && dy == 0 {
			// A plain click starts or restarts, like Enter.
			action = core.ActionConfirm
		}
		if action != core.ActionNone {
			m.inputFrame.Set(action)
		}
	}

	return m, nil
}

// handleResize processes window resize events. The world is scaled to the
// screen, so a run survives resizing.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.assist != nil && m.gameState.Started && !m.gameState.GameOver {
		if a := m.assist(); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.RunStarted {
		m.logger.Info("run started", "game", m.game.ID())
	}
	if result.RunEnded {
		m.recordRun(result.State)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRun logs a finished run and adds it to the ledger.
func (m *Model) recordRun(s core.GameState) {
	m.logger.Info("run ended",
		"score", s.Score,
		"coins", s.Coins,
		"distance", s.Distance,
		"frames", s.Frames,
	)
	m.recordedRuns++

	if m.ledger == nil {
		return
	}
	_, err := m.ledger.SaveRun(storage.RunRecord{
		Score:    s.Score,
		Coins:    s.Coins,
		Distance: s.Distance,
		Frames:   s.Frames,
		Seed:     m.config.Seed,
	})
	if err != nil {
		m.logger.Error("cannot record run", "error", err)
	}
}

// RecordedRuns returns how many runs ended while this model was running.
func (m Model) RecordedRuns() int {
	return m.recordedRuns
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press/release events for swipes
	)

	_, err := p.Run()
	return err
}

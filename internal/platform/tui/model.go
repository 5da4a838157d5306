package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/notflappy/internal/display"
	"github.com/akarpov/notflappy/internal/game"
	"github.com/akarpov/notflappy/internal/sched"
	"github.com/akarpov/notflappy/internal/storage"
)

// Model runs the game inside Bubble Tea. Each tick message performs one
// scheduler pass and one differential frame into the cell grid; View
// presents the grid.
type Model struct {
	state       *game.State
	grid        *cellGrid
	renderer    *display.Renderer
	scheduler   *sched.Scheduler
	scrollTimer *sched.Timer
	keys        *keyState
	store       *storage.Store

	tickEvery time.Duration
	width     int
	height    int
	tooSmall  bool
	quitting  bool
	err       error
}

// NewModel builds the frontend around an already constructed game
// state. Store may be nil to disable score persistence.
func NewModel(state *game.State, store *storage.Store) *Model {
	cfg := state.Config()
	grid := newCellGrid(game.Width, game.Height)

	m := &Model{
		state:     state,
		grid:      grid,
		renderer:  display.New(grid, game.Width, game.Height, cfg.Render.FrameRate),
		scheduler: sched.New(nil),
		keys:      newKeyState(),
		store:     store,
		tickEvery: time.Duration(cfg.Timers.InputMs) * time.Millisecond,
	}

	m.scrollTimer = m.scheduler.Add(state.ScrollPeriod(), state.ScrollWorld)
	m.scheduler.Add(time.Duration(cfg.Timers.AnimateMs)*time.Millisecond, state.AnimateBird)
	m.scheduler.Add(m.tickEvery, func() error {
		return state.Tick(m.keys)
	})

	return m
}

// Err returns the fatal error that stopped the session, if any.
func (m *Model) Err() error {
	return m.err
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.tickEvery)
}

// Update handles input, resizes and ticks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if k, ok := mapKey(msg); ok {
			m.keys.press(k)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// One extra row for the status line.
		m.tooSmall = msg.Width < game.Width || msg.Height < game.Height+1
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one scheduler pass and composes the next frame.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.tooSmall {
		// Hold the simulation until the window fits again.
		return m, tickCmd(m.tickEvery)
	}

	if err := m.scheduler.Pass(); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	m.scrollTimer.SetPeriod(m.state.ScrollPeriod())

	if score, ok := m.state.TakeFinishedRun(); ok && score > 0 && m.store != nil {
		//nolint:errcheck // Best-effort save, play continues regardless
		m.store.SaveScore(score)
	}

	if m.state.Quit() {
		m.quitting = true
		return m, tea.Quit
	}

	if _, err := m.renderer.Frame(m.state.Registry(), time.Now()); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.tickEvery)
}

// View presents the committed frame, or the resize prompt while the
// window is below the playfield contract.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall {
		return renderTooSmall(m.width, m.height)
	}
	return renderFrame(m.grid, m.state)
}

// Run plays the game in the local terminal through Bubble Tea.
func Run(state *game.State, store *storage.Store) error {
	model := NewModel(state, store)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return model.Err()
}

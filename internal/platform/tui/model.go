package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hopper/internal/core"
)

// laneWidth is the world-unit width mapped onto the full screen width.
// Must mirror the renderer's projection so drag gestures land where the
// preview shows.
const laneWidth = 600.0

// worldPerRow is the world-unit height of one terminal row.
const worldPerRow = 30.0

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool

	dragging   bool
	dragAnchor core.Vec2 // screen cells
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	switch msg.String() {
	case " ", "enter":
		m.inputFrame.Set(core.ActionTap)
	case "left", "a", "h":
		m.inputFrame.Set(core.ActionSteerLeft)
	case "right", "d", "l":
		m.inputFrame.Set(core.ActionSteerRight)
	case "1":
		m.inputFrame.Set(core.ActionChoiceA)
	case "2":
		m.inputFrame.Set(core.ActionChoiceB)
	case "p", "esc":
		m.inputFrame.Set(core.ActionPause)
	case "r":
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleMouse translates mouse gestures into drag input. Press anchors
// the slingshot, motion updates the aim preview, release commits the
// launch.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.dragging = true
		m.dragAnchor = core.Vec2{X: float64(msg.X), Y: float64(msg.Y)}
		m.inputFrame.SetDrag(core.DragBegin, core.Vec2{})

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		m.inputFrame.SetDrag(core.DragMove, m.dragVector(msg.X, msg.Y))

	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		m.inputFrame.SetDrag(core.DragEnd, m.dragVector(msg.X, msg.Y))
	}

	return m, nil
}

// dragVector converts a cell-space pull-back offset to world units.
// Terminal rows grow downward while the forward axis grows upward, so
// the row delta flips sign: dragging toward the bottom of the screen
// aims the launch forward.
func (m Model) dragVector(x, y int) core.Vec2 {
	unitsPerCol := laneWidth / float64(core.Max(m.config.ScreenW, 1))
	dx := (float64(x) - m.dragAnchor.X) * unitsPerCol
	dy := -(float64(y) - m.dragAnchor.Y) * worldPerRow
	return core.Vec2{X: dx, Y: dy}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Reinitialize game with new dimensions if needed
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".hopper", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
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
func Run(game core.Game, cfg core.RuntimeConfig) error {
	model := NewModel(game, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drag aiming
	)

	_, err := p.Run()
	return err
}

// Package game adapts the Pond Hopper simulation core to the platform
// Game interface: it owns config loading, drag/aim handling and the
// character renderer. All gameplay rules live in internal/sim.
package game

import (
	"fmt"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
	"github.com/vovakirdan/tui-hopper/internal/sim"
)

// Visual characters for rendering
const (
	FrogChar    = '@'
	PadChar     = '▓'
	IceChar     = '░'
	LogChar     = '═'
	LotusChar   = '❀'
	HazardChar  = 'ʂ'
	HeronChar   = 'Y'
	PickupChar  = '*'
	MountChar   = 'Ω'
	PreviewChar = '·'
	WaterChar   = '~'
)

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// defaultDrag is the keyboard launch gesture: a straight pull-back at
// moderate power for players without a mouse.
var defaultDrag = core.Vec2{X: 0, Y: -170}

// Game implements the platform Game interface over sim.World.
type Game struct {
	world   *sim.World
	cfg     config.HopperConfig
	runtime core.RuntimeConfig
	collab  sim.Collaborators

	paused  bool
	preview []core.Vec2
	aiming  bool

	dt float64
}

// New creates a new Pond Hopper game instance with no-op collaborators.
func New() *Game {
	return &Game{}
}

// NewWithCollaborators creates a game wired to external collaborators
// (persistence, audio, telemetry).
func NewWithCollaborators(collab sim.Collaborators) *Game {
	return &Game{collab: collab}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "hopper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pond Hopper"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadHopper(configPath)
	if err != nil {
		cfg = config.DefaultHopperConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHopperPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.dt = 1.0 / float64(runtime.TickRate)

	if g.world == nil {
		g.world = sim.NewWorld(cfg, runtime, g.collab)
	} else {
		g.world.Reset(runtime)
	}

	g.paused = false
	g.preview = nil
	g.aiming = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.IsDefeated() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.trackAim(in)

	// Keyboard launch: a tap while standing commits the default gesture.
	p := g.world.Player()
	if in.Has(core.ActionTap) && p.Grounded() && !p.Floating && !g.aiming {
		in.SetDrag(core.DragEnd, defaultDrag)
	}

	g.world.Tick(g.dt, in)
	return core.StepResult{State: g.State()}
}

// trackAim maintains the read-only trajectory preview for an
// in-progress drag. Live state is untouched until release.
func (g *Game) trackAim(in core.InputFrame) {
	switch in.Drag.Phase {
	case core.DragBegin, core.DragMove:
		g.aiming = true
		g.preview = g.world.PredictAim(in.Drag.Vector)
	case core.DragEnd:
		g.aiming = false
		g.preview = nil
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.IsDefeated(),
		Paused:   g.paused,
	}
}

// World exposes the simulation for tests and the platform layer.
func (g *Game) World() *sim.World {
	return g.world
}

// Screen-space projection. The lane maps to the full screen width; the
// forward axis maps to rows with the camera near the bottom.

func (g *Game) unitsPerCol() float64 {
	w := g.runtime.ScreenW
	if w <= 0 {
		w = 80
	}
	lane := g.cfg.Placement.LaneMaxX + g.cfg.Placement.LaneMinX
	return lane / float64(w)
}

func (g *Game) unitsPerRow() float64 {
	return 30
}

func (g *Game) project(pos core.Vec2) (int, int) {
	viewBottom := g.world.CameraY() - 60
	col := int(pos.X / g.unitsPerCol())
	row := g.runtime.ScreenH - 1 - int((pos.Y-viewBottom)/g.unitsPerRow())
	return col, row
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.world.Snapshot()

	// Water backdrop
	for y := 1; y < dst.Height(); y += 3 {
		for x := 0; x < dst.Width(); x += 7 {
			dst.SetColored(x, y, WaterChar, core.ColorBlue)
		}
	}

	for _, pad := range snap.Pads {
		g.drawPad(dst, pad)
	}
	for _, pk := range snap.Pickups {
		col, row := g.project(pk.Pos)
		dst.SetColored(col, row, PickupChar, core.ColorBrightYellow)
	}
	for _, m := range snap.Mounts {
		col, row := g.project(m.Pos)
		dst.SetColored(col, row, MountChar, core.ColorGreen)
	}
	for _, h := range snap.Hazards {
		col, row := g.project(h.Pos)
		ch := HazardChar
		if h.Kind == "Heron" {
			ch = HeronChar
		}
		dst.SetColored(col, row, ch, core.ColorRed)
	}

	for _, pt := range g.preview {
		col, row := g.project(pt)
		dst.SetColored(col, row, PreviewChar, core.ColorGray)
	}

	// Player, lifted by jump height
	col, row := g.project(snap.PlayerPos)
	row -= int(snap.PlayerHeight / 40)
	dst.SetColored(col, row, FrogChar, core.ColorBrightGreen)

	g.drawHUD(dst, snap)

	if snap.Upgrade {
		g.drawCenteredMessage(dst, "UPGRADE", "1: Speed Boost   2: Supply Kit")
	}
	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.Defeated {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

func (g *Game) drawPad(dst *core.Screen, pad sim.EntityPose) {
	col, row := g.project(pad.Pos)
	halfW := int(pad.Radius / g.unitsPerCol())
	ch := PadChar
	color := core.ColorGreen
	switch pad.Kind {
	case "Ice":
		ch, color = IceChar, core.ColorBrightCyan
	case "Log":
		ch, color = LogChar, core.ColorOrange
	case "Lotus":
		ch, color = LotusChar, core.ColorMagenta
	case "Whirlpool":
		color = core.ColorCyan
	case "Moving":
		color = core.ColorBrightGreen
	}
	if pad.Kind == "Lotus" {
		dst.SetColored(col, row, ch, color)
		return
	}
	for dx := -halfW; dx <= halfW; dx++ {
		dst.SetColored(col+dx, row, ch, color)
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	hearts := ""
	for i := 0; i < snap.MaxHealth; i++ {
		if i < snap.Health {
			hearts += "♥"
		} else {
			hearts += "♡"
		}
	}
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  %s  Coins: %d ", snap.Score, hearts, snap.Currency))

	status := fmt.Sprintf(" Stage %d  %s ", snap.Stage, snap.Weather)
	dst.DrawText(dst.Width()-len(status)-2, 0, status)

	if snap.Streak > 1 {
		dst.DrawText(2, 1, fmt.Sprintf(" Streak: %d ", snap.Streak))
	}
	if snap.Mounted {
		dst.DrawText(2, 2, fmt.Sprintf(" Ride: %.0fs ", snap.RideLeft))
	}
	if snap.Floating {
		dst.DrawText(2, 2, " Floating - tap to hop out ")
	}
	if snap.GraceLeft > 0 {
		dst.DrawText(2, 2, fmt.Sprintf(" JUMP! %d ", snap.GraceLeft))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

// speedBoostMultiplier is applied to launch velocity while the
// SpeedBoost effect is active.
const speedBoostMultiplier = 1.5

// UpgradeChoice is one option of the upgrade-selection interrupt
// triggered every Nth currency pickup.
type UpgradeChoice int

const (
	UpgradeSpeedBoost UpgradeChoice = iota // Timed launch power buff
	UpgradeSupplyKit                       // One Lifebuoy and one Machete
)

// String returns the upgrade choice name.
func (u UpgradeChoice) String() string {
	switch u {
	case UpgradeSpeedBoost:
		return "SpeedBoost"
	case UpgradeSupplyKit:
		return "SupplyKit"
	default:
		return "Unknown"
	}
}

// speedBoostDurationTicks is the duration granted by UpgradeSpeedBoost.
const speedBoostDurationTicks = 15 * 60

// World is the single authoritative mutable simulation state. It is
// single-threaded: Tick runs its fixed phase order to completion before
// the next external event is processed.
type World struct {
	cfg     config.HopperConfig
	stepper Stepper
	rng     *rand.Rand
	placer  *Placer
	gen     *generator
	diff    *config.DifficultyManager
	prog    *Progression
	collab  Collaborators

	player  Player
	pads    []*Pad
	hazards []*Hazard
	pickups []*Pickup
	mounts  []*Mount

	nextID  uint64
	cameraY float64
	tick    int

	currency          int
	currencyCollected int
	consumablesUsed   int

	pendingUpgrade bool
	powerMult      float64

	graceTicks int // Water-grace countdown; 0 = inactive

	defeated bool
}

// NewWorld constructs a simulation with the given config, seed and
// collaborators. Nil collaborators are replaced with no-op stubs.
func NewWorld(cfg config.HopperConfig, runtime core.RuntimeConfig, collab Collaborators) *World {
	w := &World{
		cfg:    cfg,
		collab: collab.withDefaults(),
	}
	w.Reset(runtime)
	return w
}

// Reset starts a fresh run. This is the only way out of the defeated
// state.
func (w *World) Reset(runtime core.RuntimeConfig) {
	w.stepper = NewStepper(w.cfg.Physics, runtime.TickRate)
	w.rng = rand.New(rand.NewSource(runtime.Seed))
	w.placer = NewPlacer(w.rng, w.cfg.Placement)
	w.diff = config.NewDifficultyManager(w.cfg.Difficulty)
	w.prog = NewProgression()
	w.gen = newGenerator(w.cfg, w.placer, w.rng, w.diff)

	params := w.collab.Session.StartParams()
	consumables := make(map[ConsumableKind]int, len(params.Consumables))
	for k, v := range params.Consumables {
		if v > 0 {
			consumables[k] = v
		}
	}
	w.powerMult = params.PowerMultiplier
	if w.powerMult <= 0 {
		w.powerMult = 1.0
	}

	start := core.Vec2{X: w.cfg.Player.StartX, Y: w.cfg.Player.StartY}
	w.player = Player{
		Kin:         Kinetics{Pos: start},
		Health:      w.cfg.Player.MaxHealth,
		MaxHealth:   w.cfg.Player.MaxHealth,
		Consumables: consumables,
		Effects:     make(map[EffectKind]int),
	}

	w.pads = w.pads[:0]
	w.hazards = w.hazards[:0]
	w.pickups = w.pickups[:0]
	w.mounts = w.mounts[:0]
	w.nextID = 0
	w.cameraY = start.Y - w.cfg.Camera.FollowOffset
	w.tick = 0
	w.currency = 0
	w.currencyCollected = 0
	w.consumablesUsed = 0
	w.pendingUpgrade = false
	w.graceTicks = 0
	w.defeated = false

	// Starting pad under the player's feet.
	home := w.spawnPad(start, w.cfg.Pads.NormalRadius, PadNormal)
	home.SteppedOn = true
	w.player.OnPad = home.ID

	// Fill the look-ahead window before the first tick.
	w.gen.fill(w)
}

func (w *World) allocID() uint64 {
	w.nextID++
	return w.nextID
}

// Tick advances the simulation by one fixed step in strict phase order:
// physics integration, generation check, collision resolution,
// lifecycle cull. A negative dt is clamped to 0 and skips the tick.
// Defeat short-circuits all mutation until Reset.
func (w *World) Tick(dt float64, in core.InputFrame) {
	if dt < 0 {
		dt = 0
	}
	if dt == 0 || w.defeated {
		return
	}

	w.tick++
	w.handleInput(in)

	if w.pendingUpgrade {
		// Upgrade interrupt: the world holds until a choice is made.
		return
	}

	w.integrate(in)
	w.gen.fill(w)
	w.resolve()
	w.cull()

	w.cameraY = maxF(w.cameraY, w.player.Kin.Pos.Y-w.cfg.Camera.FollowOffset)
	w.prog.Advance(w.player.Kin.Pos.Y - w.cfg.Player.StartY)
	if w.player.Grounded() || w.player.Floating {
		w.prog.ConsumePending()
	}
}

// handleInput samples tick-boundary input: drag commits and discrete
// actions. An in-progress drag is aim-only; callers read the preview
// through PredictAim, so nothing is recorded until release.
func (w *World) handleInput(in core.InputFrame) {
	if w.pendingUpgrade {
		if in.Has(core.ActionChoiceA) {
			w.ChooseUpgrade(UpgradeSpeedBoost)
		} else if in.Has(core.ActionChoiceB) {
			w.ChooseUpgrade(UpgradeSupplyKit)
		}
		return
	}

	if in.Drag.Phase == core.DragEnd {
		w.Launch(in.Drag.Vector)
	}

	if in.Has(core.ActionTap) {
		w.jumpOut()
	}
}

// integrate runs the physics phase: player (or mount-slaved) motion and
// autonomous entity movement.
func (w *World) integrate(in core.InputFrame) {
	dt := w.stepper.DT
	gravity := GravityScale(w.prog.Weather)

	// Timed effects count down every tick.
	for k, left := range w.player.Effects {
		if left <= 1 {
			delete(w.player.Effects, k)
		} else {
			w.player.Effects[k] = left - 1
		}
	}
	if w.player.InvulnTicks > 0 {
		w.player.InvulnTicks--
	}

	bounds := w.placer.Bounds()

	if m := w.player.MountedOn; m != nil {
		// Position slaved to the mount; independent lateral steering.
		if in.Has(core.ActionSteerLeft) {
			m.Pos.X = bounds.ClampX(m.Pos.X - w.cfg.Mounts.SteerSpeed*dt)
		}
		if in.Has(core.ActionSteerRight) {
			m.Pos.X = bounds.ClampX(m.Pos.X + w.cfg.Mounts.SteerSpeed*dt)
		}
		m.Pos.Y += w.cfg.Mounts.SwimSpeed * dt
		w.player.Kin.Pos = m.Pos
		w.player.Kin.Height = 0
		w.player.Kin.VerticalVel = 0

		m.RemainingRide -= dt
		if m.RemainingRide <= 0 {
			w.completeRide(m)
		}
	} else if w.player.Airborne() {
		w.stepper.Step(&w.player.Kin, gravity)
	} else if w.player.OnPad != 0 {
		pad := w.padByID(w.player.OnPad)
		if pad == nil || pad.dead {
			w.player.OnPad = 0
		} else {
			switch pad.Kind {
			case PadMoving:
				// Carried by the pad.
				w.player.Kin.Pos = w.player.Kin.Pos.Add(pad.Vel.Scale(dt))
			case PadIce:
				// Sliding: horizontal velocity persists on ice.
				if !w.player.Kin.Vel.IsZero() {
					w.player.Kin.Pos = w.player.Kin.Pos.Add(w.player.Kin.Vel.Scale(dt))
					w.player.Kin.Vel = w.player.Kin.Vel.Scale(groundFriction)
					if w.player.Kin.Vel.Len() < 1 {
						w.player.Kin.Vel = core.Vec2{}
					}
				}
			}
			// A shrunk or drifted pad can leave the player over water.
			if !pad.Circle().Overlaps(w.playerCircle(), 0) {
				w.player.OnPad = 0
			}
		}
	}

	w.updatePads(dt, bounds)
	w.updateHazards(dt, bounds)
	w.updateMounts(dt)

	// Water grace countdown is tick-clock-driven, not a blocking timer.
	if w.graceTicks > 0 {
		w.graceTicks--
		if w.graceTicks == 0 {
			w.applyDamage(1)
			if !w.defeated {
				w.graceTicks = w.graceTickBudget()
			}
		}
	}
}

func (w *World) graceTickBudget() int {
	ticks := int(w.cfg.Water.GraceSeconds / w.stepper.DT)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

func (w *World) updatePads(dt float64, bounds core.LaneBounds) {
	for _, p := range w.pads {
		switch p.Kind {
		case PadMoving:
			p.Pos.X += p.Vel.X * dt
			if p.Pos.X-p.Radius < bounds.MinX || p.Pos.X+p.Radius > bounds.MaxX {
				p.Vel.X = -p.Vel.X
				p.Pos.X = core.ClampF(p.Pos.X, bounds.MinX+p.Radius, bounds.MaxX-p.Radius)
			}
		case PadShrinking:
			if p.SteppedOn && p.Radius > w.cfg.Pads.MinRadius {
				p.Radius -= w.cfg.Pads.ShrinkRate * dt
				if p.Radius < w.cfg.Pads.MinRadius {
					p.Radius = w.cfg.Pads.MinRadius
				}
			}
		}
	}
}

func (w *World) updateHazards(dt float64, bounds core.LaneBounds) {
	for _, h := range w.hazards {
		h.Pos.X += h.PatrolSpeed * h.PatrolDir * dt
		var lo, hi float64
		if h.Kind == HazardHeron {
			lo, hi = bounds.MinX, bounds.MaxX
		} else {
			lo = h.anchorX - w.cfg.Hazards.PatrolRange
			hi = h.anchorX + w.cfg.Hazards.PatrolRange
		}
		if h.Pos.X < lo || h.Pos.X > hi {
			h.PatrolDir = -h.PatrolDir
			h.Pos.X = core.ClampF(h.Pos.X, lo, hi)
		}
	}
}

func (w *World) updateMounts(dt float64) {
	for _, m := range w.mounts {
		if m.State == MountIdle {
			// Idle turtles bob in place; they drift slowly forward.
			m.Pos.Y += w.cfg.Mounts.SwimSpeed * 0.15 * dt
		}
	}
}

// Launch commits a jump from a pull-back drag vector. Zero-length drags
// are "no launch". Launching while mounted dismounts first (without the
// completion reward); launching while floating jumps out of the water.
func (w *World) Launch(drag core.Vec2) {
	if w.defeated || w.pendingUpgrade {
		return
	}
	intensity := IntensityRatio(drag, w.cfg.Drag.MaxDistance)
	if intensity == 0 {
		return
	}
	if w.player.Airborne() {
		return
	}
	if m := w.player.MountedOn; m != nil {
		w.dismount(m)
	}

	w.player.Kin = w.launchKinetics(drag)
	w.player.OnPad = 0
	w.player.Floating = false
	w.graceTicks = 0
}

// launchKinetics builds the launch state shared verbatim by Launch and
// PredictAim, so the committed jump and the preview cannot diverge.
func (w *World) launchKinetics(drag core.Vec2) Kinetics {
	intensity := IntensityRatio(drag, w.cfg.Drag.MaxDistance)
	return Kinetics{
		Pos:         w.player.Kin.Pos,
		Vel:         LaunchVelocity(drag, w.cfg.Drag.PowerCoeff, w.activeMultiplier()),
		Height:      0.01, // Leave the plane so the arc integrates
		VerticalVel: w.cfg.Physics.JumpImpulse * intensity,
	}
}

func (w *World) activeMultiplier() float64 {
	mult := w.powerMult
	if w.player.Effects[EffectSpeedBoost] > 0 {
		mult *= speedBoostMultiplier
	}
	return mult
}

// PredictAim returns the sampled trajectory for the current (or given)
// drag. Pure: live state is never mutated. It uses the identical
// stepper and gravity scale as the live tick.
func (w *World) PredictAim(drag core.Vec2) []core.Vec2 {
	if IntensityRatio(drag, w.cfg.Drag.MaxDistance) == 0 {
		return nil
	}
	start := w.launchKinetics(drag)
	return w.stepper.Predict(start, GravityScale(w.prog.Weather), w.cfg.Drag.PredictMaxSteps)
}

// jumpOut is the self-rescue hop used while floating or in the water
// grace window.
func (w *World) jumpOut() {
	if !w.player.Floating && w.graceTicks == 0 {
		return
	}
	w.player.Floating = false
	w.graceTicks = 0
	w.player.Kin.Height = 0.01
	w.player.Kin.VerticalVel = w.cfg.Physics.JumpImpulse * 0.6
}

// consume spends one charge of a consumable and counts it in the run
// summary. Returns false if none is held.
func (w *World) consume(kind ConsumableKind) bool {
	if w.player.Consumables[kind] <= 0 {
		return false
	}
	w.player.Consumables[kind]--
	w.consumablesUsed++
	return true
}

// applyDamage lowers health, floors it at 0 and fires the terminal
// outcome exactly once.
func (w *World) applyDamage(amount int) {
	if w.defeated || amount <= 0 {
		return
	}
	w.player.Health -= amount
	if w.player.Health <= 0 {
		w.player.Health = 0
		w.triggerDefeat()
	}
}

// triggerDefeat freezes the simulation and reports the run summary
// upstream. Idempotent: re-entrant calls are no-ops.
func (w *World) triggerDefeat() {
	if w.defeated {
		return
	}
	w.defeated = true
	w.player.Kin.Vel = core.Vec2{}
	w.player.Kin.VerticalVel = 0
	w.player.MountedOn = nil
	w.graceTicks = 0

	summary := w.Summary()
	w.collab.Summary.SaveRun(summary)
	w.collab.Telemetry.RunEnded(summary)
}

// Summary builds the current run report.
func (w *World) Summary() RunSummary {
	return RunSummary{
		Score:           w.Score(),
		Currency:        w.currency,
		Distance:        w.prog.CumulativeDistance,
		ConsumablesUsed: w.consumablesUsed,
		LongestStreak:   w.player.LongestStreak,
	}
}

// Score derives the run score from distance and collected currency.
func (w *World) Score() int {
	return int(w.prog.CumulativeDistance/10) + w.currencyCollected*5
}

// IsDefeated reports whether the terminal outcome has fired. It stays
// true until an explicit Reset.
func (w *World) IsDefeated() bool {
	return w.defeated
}

// PendingUpgrade reports whether an upgrade-selection interrupt is
// waiting for a choice.
func (w *World) PendingUpgrade() bool {
	return w.pendingUpgrade
}

// ChooseUpgrade resolves the upgrade interrupt. A no-op when no
// interrupt is pending.
func (w *World) ChooseUpgrade(choice UpgradeChoice) {
	if !w.pendingUpgrade {
		return
	}
	w.pendingUpgrade = false
	switch choice {
	case UpgradeSpeedBoost:
		w.player.Effects[EffectSpeedBoost] = speedBoostDurationTicks
	case UpgradeSupplyKit:
		w.player.Consumables[ConsumableLifebuoy]++
		w.player.Consumables[ConsumableMachete]++
	}
}

// Player returns the player state for inspection.
func (w *World) Player() *Player {
	return &w.player
}

// Progress returns the progression state (distance, stage, weather).
func (w *World) Progress() *Progression {
	return w.prog
}

// CameraY returns the camera's forward position.
func (w *World) CameraY() float64 {
	return w.cameraY
}

func (w *World) padByID(id uint64) *Pad {
	for _, p := range w.pads {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// nearestLandablePad returns the closest landable active pad to pos
// within maxRange, or nil. When forwardOnly is set, only pads ahead of
// pos are considered.
func (w *World) nearestLandablePad(pos core.Vec2, maxRange float64, forwardOnly bool) *Pad {
	var best *Pad
	bestDist := maxRange
	for _, p := range w.pads {
		if p.dead || !p.Landable() {
			continue
		}
		if forwardOnly && p.Pos.Y <= pos.Y {
			continue
		}
		d := p.Pos.Dist(pos)
		if d <= bestDist {
			bestDist = d
			best = p
		}
	}
	return best
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

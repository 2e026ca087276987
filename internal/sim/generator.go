package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

// generator composes the placement engine and progression into the next
// content slice. All probabilistic rolls are independent per-call
// Bernoulli draws; only placement sampling retries.
type generator struct {
	cfg    config.HopperConfig
	placer *Placer
	rng    *rand.Rand
	diff   *config.DifficultyManager

	lastPad       *Pad
	nextStage     int // Next stage whose boundary gets a forced Lotus pad
	mountsSpawned int
}

func newGenerator(cfg config.HopperConfig, placer *Placer, rng *rand.Rand, diff *config.DifficultyManager) *generator {
	return &generator{
		cfg:       cfg,
		placer:    placer,
		rng:       rng,
		diff:      diff,
		nextStage: 1,
	}
}

// fill generates slices until the frontmost pad leaves the look-ahead
// window.
func (g *generator) fill(w *World) {
	for g.frontY() < w.cameraY+g.cfg.Camera.LookAhead {
		g.generateSlice(w)
	}
}

func (g *generator) frontY() float64 {
	if g.lastPad == nil {
		return 0
	}
	return g.lastPad.Pos.Y
}

// generateSlice places one primary pad and its conditional attachments.
func (g *generator) generateSlice(w *World) {
	anchor := g.anchor(w)
	stage := w.prog.Stage
	bounds := g.placer.Bounds()
	score := w.Score()

	maxAdvance := g.diff.MaxAdvance(g.cfg.Placement.MaxAdvance, score, w.tick)

	// Deterministic override: a biome-exit Lotus pad is forced at each
	// stage-boundary checkpoint, pre-empting the spawn-mix roll. The
	// trigger compares against the same scaled advance the placer uses,
	// so no regular slice can overshoot the checkpoint. The pinned Y
	// still goes through lateral rejection sampling; an unplaceable
	// checkpoint is marked best-effort like any other fallback.
	checkpoint := StageCheckpoint(g.nextStage) + g.cfg.Player.StartY
	if anchor.Pos.Y+maxAdvance >= checkpoint {
		pos, fallback := g.placer.PlaceAtY(anchor.Pos.X, checkpoint, g.cfg.Pads.LotusRadius, bounds, g.cfg.Placement.ExtraSpacing, w.activePadCircles())
		pad := w.spawnPad(pos, g.cfg.Pads.LotusRadius, PadLotus)
		pad.BiomeExit = true
		pad.BestEffort = fallback
		g.lastPad = pad
		g.nextStage++
		return
	}

	kind := rollKind(g.rng, SpawnMix(stage))
	radius := g.padRadius(kind)

	pos, fallback := g.placer.PlaceNext(anchor, radius, bounds, g.cfg.Placement.ExtraSpacing, w.activePadCircles(), maxAdvance)
	primary := w.spawnPad(pos, radius, kind)
	primary.BestEffort = fallback
	if kind == PadMoving {
		dir := 1.0
		if g.rng.Float64() < 0.5 {
			dir = -1
		}
		primary.Vel = core.Vec2{X: g.cfg.Pads.MovingSpeed * dir}
	}
	g.lastPad = primary

	g.attachAuxChain(w, primary, bounds)
	g.attachLog(w, primary, bounds)
	g.attachPickup(w, primary)
	g.attachMount(w, primary, bounds, stage)
	g.attachHazards(w, primary, bounds, score)
}

func (g *generator) anchor(w *World) core.Circle {
	if g.lastPad != nil {
		return g.lastPad.Circle()
	}
	return core.Circle{Pos: w.player.Kin.Pos, Radius: g.cfg.Player.Radius}
}

func (g *generator) padRadius(kind PadKind) float64 {
	switch kind {
	case PadWhirlpool:
		return g.cfg.Pads.WhirlpoolRadius
	case PadLotus:
		return g.cfg.Pads.LotusRadius
	default:
		return g.cfg.Pads.NormalRadius
	}
}

// attachAuxChain spawns a bounded chain of auxiliary pads. Reject-only
// placement: a missed spawn is fine, an overlap is not.
func (g *generator) attachAuxChain(w *World, primary *Pad, bounds core.LaneBounds) {
	anchor := primary.Circle()
	for i := 0; i < g.cfg.Pads.MaxAuxChain; i++ {
		if g.rng.Float64() >= g.cfg.Pads.AuxChainChance {
			return
		}
		pos, ok := g.placer.PlaceRejectOnly(anchor, g.cfg.Pads.AuxRadius, bounds, g.cfg.Placement.ExtraSpacing, w.activePadCircles(), g.cfg.Placement.MinAdvance+60)
		if !ok {
			return
		}
		aux := w.spawnPad(pos, g.cfg.Pads.AuxRadius, PadNormal)
		anchor = aux.Circle()
	}
}

// attachLog spawns a laterally offset log obstruction, rejected on
// overlap with any live pad.
func (g *generator) attachLog(w *World, primary *Pad, bounds core.LaneBounds) {
	if g.rng.Float64() >= g.cfg.Pads.LogChance {
		return
	}
	side := 1.0
	if g.rng.Float64() < 0.5 {
		side = -1
	}
	pos := core.Vec2{
		X: bounds.ClampX(primary.Pos.X + side*(primary.Radius+g.cfg.Pads.LogRadius+g.cfg.Placement.ExtraSpacing+20)),
		Y: primary.Pos.Y,
	}
	log := core.Circle{Pos: pos, Radius: g.cfg.Pads.LogRadius}
	if !keepsSpacing(log, w.activePadCircles(), g.cfg.Placement.ExtraSpacing) {
		return
	}
	w.spawnPad(pos, g.cfg.Pads.LogRadius, PadLog)
}

// attachPickup spawns a pickup at the primary pad's position.
func (g *generator) attachPickup(w *World, primary *Pad) {
	if g.rng.Float64() >= g.cfg.Pads.PickupChance {
		return
	}
	w.spawnPickup(primary.Pos, g.rollPickupKind())
}

func (g *generator) rollPickupKind() PickupKind {
	p := g.cfg.Pickups
	total := p.CurrencyWeight + p.HealthWeight + p.RewardWeight
	if total <= 0 {
		return PickupCurrency
	}
	roll := g.rng.Intn(total)
	if roll < p.CurrencyWeight {
		return PickupCurrency
	}
	if roll < p.CurrencyWeight+p.HealthWeight {
		return PickupHealthRestore
	}
	return PickupRewardContainer
}

// attachMount berths a turtle near water-feature pads. Rate-limited per
// run and gated on progress.
func (g *generator) attachMount(w *World, primary *Pad, bounds core.LaneBounds, stage int) {
	if primary.Kind != PadWhirlpool {
		return
	}
	if stage < g.cfg.Mounts.MinStage || g.mountsSpawned >= g.cfg.Mounts.PerRunLimit {
		return
	}
	if g.rng.Float64() >= g.cfg.Mounts.SpawnChance {
		return
	}
	pos, ok := g.placer.PlaceRejectOnly(primary.Circle(), g.cfg.Mounts.Radius, bounds, g.cfg.Placement.ExtraSpacing, w.activePadCircles(), g.cfg.Placement.MinAdvance)
	if !ok {
		return
	}
	w.spawnMount(pos)
	g.mountsSpawned++
}

// attachHazards spawns a patrol hazard above the pad (skipped for pads
// with their own scripted spawn) and, capped by concurrency, a roaming
// lateral heron.
func (g *generator) attachHazards(w *World, primary *Pad, bounds core.LaneBounds, score int) {
	chance := g.diff.HazardChance(g.cfg.Hazards.PadHazardChance, score, w.tick)
	// Lotus pads run a scripted delayed spawn on first landing instead.
	if primary.Kind != PadLotus && g.rng.Float64() < chance {
		kind := HazardSnake
		if g.rng.Float64() < 0.4 {
			kind = HazardDragonfly
		}
		w.spawnHazard(primary.Pos, kind)
	}

	if w.activeRoamers() < g.cfg.Hazards.MaxRoamers && g.rng.Float64() < g.cfg.Hazards.RoamerChance {
		x := bounds.MinX
		dir := 1.0
		if g.rng.Float64() < 0.5 {
			x = bounds.MaxX
			dir = -1
		}
		h := w.spawnHazard(core.Vec2{X: x, Y: primary.Pos.Y + 40}, HazardHeron)
		h.PatrolDir = dir
	}
}

// activeRoamers counts live roaming hazards for the concurrency cap.
func (w *World) activeRoamers() int {
	n := 0
	for _, h := range w.hazards {
		if !h.dead && h.Kind == HazardHeron {
			n++
		}
	}
	return n
}

// Entity spawn helpers. The world owns all non-player entities from
// creation to removal.

const hazardRadius = 14

func (w *World) spawnPad(pos core.Vec2, radius float64, kind PadKind) *Pad {
	p := &Pad{ID: w.allocID(), Pos: pos, Radius: radius, Kind: kind}
	w.pads = append(w.pads, p)
	return p
}

func (w *World) spawnHazard(pos core.Vec2, kind HazardKind) *Hazard {
	h := &Hazard{
		ID:          w.allocID(),
		Pos:         pos,
		Kind:        kind,
		PatrolSpeed: w.cfg.Hazards.PatrolSpeed,
		PatrolDir:   1,
		anchorX:     pos.X,
		Radius:      hazardRadius,
	}
	w.hazards = append(w.hazards, h)
	return h
}

func (w *World) spawnPickup(pos core.Vec2, kind PickupKind) *Pickup {
	p := &Pickup{ID: w.allocID(), Pos: pos, Kind: kind}
	w.pickups = append(w.pickups, p)
	return p
}

func (w *World) spawnMount(pos core.Vec2) *Mount {
	m := &Mount{
		ID:            w.allocID(),
		Pos:           pos,
		State:         MountIdle,
		RemainingRide: w.cfg.Mounts.RideSeconds,
		Radius:        w.cfg.Mounts.Radius,
	}
	w.mounts = append(w.mounts, m)
	return m
}

// activePadCircles snapshots the live pad footprints for placement
// separation checks.
func (w *World) activePadCircles() []core.Circle {
	circles := make([]core.Circle, 0, len(w.pads))
	for _, p := range w.pads {
		if !p.dead {
			circles = append(circles, p.Circle())
		}
	}
	return circles
}

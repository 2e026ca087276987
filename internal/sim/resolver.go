package sim

import "github.com/vovakirdan/tui-hopper/internal/core"

// Contact heights: entities sit on or just above the water plane, so
// interactions only trigger when the player's arc is low enough.
const (
	logBlockHeight    = 18 // Logs obstruct below this height
	hazardReachHeight = 30
	pickupReachHeight = 40
	mountReachHeight  = 20
)

// groundFriction damps an ice slide per tick.
const groundFriction = 0.9

// Reward is a fixed-table reward resolved from a reward container and
// applied immediately, in-memory only.
type Reward int

const (
	RewardFullHeal Reward = iota
	RewardCurrencyBundle
	RewardSupplyCache
	rewardCount
)

// String returns the reward name.
func (r Reward) String() string {
	switch r {
	case RewardFullHeal:
		return "FullHeal"
	case RewardCurrencyBundle:
		return "CurrencyBundle"
	case RewardSupplyCache:
		return "SupplyCache"
	default:
		return "Unknown"
	}
}

// rewardBundleCurrency is the CurrencyBundle payout.
const rewardBundleCurrency = 50

// resolve runs the collision and interaction pass once per tick against
// the active (post-cull) entity set. Destructive mutations go through
// the lifecycle manager's destroy path, never in-place edits.
func (w *World) resolve() {
	if w.defeated {
		return
	}
	w.resolveObstructions()
	w.resolveLanding()
	w.resolveHazards()
	w.resolveWater()
	w.resolvePickups()
	w.resolveMounts()
}

func (w *World) playerCircle() core.Circle {
	return core.Circle{Pos: w.player.Kin.Pos, Radius: w.cfg.Player.Radius}
}

// resolveObstructions blocks the player on un-bypassed logs: velocity is
// reversed and damped and the airborne state zeroed, with no health
// change. A held machete is consumed to destroy the log instead.
func (w *World) resolveObstructions() {
	if w.player.MountedOn != nil || w.player.Kin.Height >= logBlockHeight {
		return
	}
	pc := w.playerCircle()
	for _, pad := range w.pads {
		if pad.dead || pad.Kind != PadLog || !pad.Circle().Overlaps(pc, 0) {
			continue
		}
		if w.consume(ConsumableMachete) {
			w.destroy(pad)
			w.collab.Audio.Hit()
			continue
		}
		// Bounce: reversed and damped, arc height preserved so the
		// block itself never causes a splash.
		w.player.Kin.Vel = w.player.Kin.Vel.Scale(-0.4)
		w.player.Kin.VerticalVel = 0
	}
}

// resolveLanding snaps a descending player onto an overlapped pad,
// zeroes the vertical state and fires any once-only pad side effect.
func (w *World) resolveLanding() {
	p := &w.player
	if p.MountedOn != nil || p.Kin.Height > 0 {
		return
	}

	pad := w.padUnderfoot()
	if pad == nil {
		p.OnPad = 0
		return
	}

	first := p.OnPad != pad.ID
	p.OnPad = pad.ID
	p.Floating = false
	w.graceTicks = 0

	if !first {
		return
	}

	// Snap to the pad; ice keeps horizontal velocity (slide).
	p.Kin.Pos = pad.Pos
	p.Kin.VerticalVel = 0
	if pad.Kind != PadIce {
		p.Kin.Vel = core.Vec2{}
	}

	pad.SteppedOn = true
	p.Streak++
	if p.Streak > p.LongestStreak {
		p.LongestStreak = p.Streak
	}

	// One-shot scripted side effect, flag-guarded.
	if pad.Kind == PadLotus && !pad.SideEffectFired {
		pad.SideEffectFired = true
		w.spawnHazard(core.Vec2{X: pad.Pos.X, Y: pad.Pos.Y + pad.Radius + 50}, HazardDragonfly)
	}

	w.collab.Audio.PadLanded()
	w.collab.Telemetry.PadLanded(p.Streak)
}

// padUnderfoot returns the closest landable pad overlapping the player.
func (w *World) padUnderfoot() *Pad {
	pc := w.playerCircle()
	var best *Pad
	bestDist := 0.0
	for _, pad := range w.pads {
		if pad.dead || !pad.Landable() || !pad.Circle().Overlaps(pc, 0) {
			continue
		}
		d := pad.Pos.Dist(pc.Pos)
		if best == nil || d < bestDist {
			best = pad
			bestDist = d
		}
	}
	return best
}

// resolveHazards applies hazard contacts: a matching one-shot counter
// item defeats the hazard without damage; otherwise damage, knockback
// and a brief invincibility window.
func (w *World) resolveHazards() {
	p := &w.player
	if p.InvulnTicks > 0 || p.Kin.Height >= hazardReachHeight || w.defeated {
		return
	}
	pc := w.playerCircle()
	for _, h := range w.hazards {
		if h.dead || !h.Circle().Overlaps(pc, 0) {
			continue
		}
		if w.consume(h.Kind.Counter()) {
			w.destroy(h)
			w.collab.Telemetry.HazardDefeated(h.Kind)
			continue
		}
		if p.Effects[EffectShield] > 0 {
			delete(p.Effects, EffectShield)
			w.knockback(h.Pos)
			p.InvulnTicks = w.cfg.Player.InvulnTick
			continue
		}
		w.knockback(h.Pos)
		p.InvulnTicks = w.cfg.Player.InvulnTick
		w.collab.Audio.Hit()
		w.applyDamage(1)
		if w.defeated {
			return
		}
	}
}

// knockback pushes the player away from a contact point.
func (w *World) knockback(from core.Vec2) {
	p := &w.player
	dir := p.Kin.Pos.Sub(from)
	if dir.IsZero() {
		dir = core.Vec2{Y: -1}
	}
	dir = dir.Scale(1 / dir.Len())
	p.Kin.Vel = dir.Scale(w.cfg.Hazards.KnockbackSpeed)
	p.Kin.Height = 0.01
	p.Kin.VerticalVel = w.cfg.Physics.JumpImpulse * 0.3
	p.OnPad = 0
}

// resolveWater handles immersion: a held lifebuoy floats the player
// without damage; otherwise damage plus either a recovery impulse
// biased toward the nearest reachable pad, or (grace mechanic) a
// countdown demanding a jump before expiry.
func (w *World) resolveWater() {
	p := &w.player
	if w.defeated || p.MountedOn != nil || p.Kin.Height > 0 || p.OnPad != 0 {
		return
	}
	if p.Floating || w.graceTicks > 0 {
		return // Already in a water substate
	}

	p.Streak = 0
	w.collab.Audio.Splashed()

	if w.consume(ConsumableLifebuoy) {
		p.Floating = true
		return
	}

	w.applyDamage(1)
	if w.defeated {
		return
	}

	if w.cfg.Water.GraceEnabled {
		w.graceTicks = w.graceTickBudget()
		return
	}

	// Recovery impulse toward the nearest valid pad in range.
	if target := w.nearestLandablePad(p.Kin.Pos, w.cfg.Water.RecoveryRange, false); target != nil {
		dir := target.Pos.Sub(p.Kin.Pos)
		dir = dir.Scale(1 / dir.Len())
		p.Kin.Vel = dir.Scale(w.cfg.Water.RecoverySpeed)
	} else {
		p.Kin.Vel = core.Vec2{Y: w.cfg.Water.RecoverySpeed}
	}
	p.Kin.Height = 0.01
	p.Kin.VerticalVel = w.cfg.Physics.JumpImpulse * 0.7
}

// resolvePickups collects overlapped pickups. Currency feeds the
// upgrade cadence; containers resolve a fixed-table reward exactly once.
func (w *World) resolvePickups() {
	if w.player.Kin.Height >= pickupReachHeight || w.defeated {
		return
	}
	pc := w.playerCircle()
	for _, pk := range w.pickups {
		if pk.dead || pk.Redeemed || !pk.Circle().Overlaps(pc, 0) {
			continue
		}
		pk.Redeemed = true
		w.destroy(pk)
		w.collab.Audio.Collected()
		w.collab.Telemetry.PickupCollected(pk.Kind)

		switch pk.Kind {
		case PickupCurrency:
			w.currency++
			w.currencyCollected++
			if w.cfg.Pickups.UpgradeEvery > 0 && w.currencyCollected%w.cfg.Pickups.UpgradeEvery == 0 {
				w.pendingUpgrade = true
			}
		case PickupHealthRestore:
			if w.player.Health < w.player.MaxHealth {
				w.player.Health++
			}
		case PickupRewardContainer:
			w.applyReward(w.rollReward())
		}
	}
}

// rollReward draws from the fixed reward table.
func (w *World) rollReward() Reward {
	return Reward(w.rng.Intn(int(rewardCount)))
}

// applyReward applies a reward deterministically and immediately.
func (w *World) applyReward(r Reward) {
	switch r {
	case RewardFullHeal:
		w.player.Health = w.player.MaxHealth
	case RewardCurrencyBundle:
		w.currency += rewardBundleCurrency
	case RewardSupplyCache:
		w.player.Consumables[ConsumableLifebuoy]++
		w.player.Consumables[ConsumableSnakeCharm]++
		w.player.Consumables[ConsumableBugSpray]++
	}
}

// resolveMounts boards the player onto an overlapped idle mount. Only
// one mount carries the player; boarding while mounted dismounts the
// previous mount first.
func (w *World) resolveMounts() {
	p := &w.player
	if w.defeated || p.Kin.Height >= mountReachHeight {
		return
	}
	pc := w.playerCircle()
	for _, m := range w.mounts {
		if m.dead || m.State != MountIdle || !m.Circle().Overlaps(pc, 0) {
			continue
		}
		if prev := p.MountedOn; prev != nil {
			w.dismount(prev)
		}
		m.State = MountCarrying
		p.MountedOn = m
		p.OnPad = 0
		p.Floating = false
		w.graceTicks = 0
		p.Kin.Pos = m.Pos
		p.Kin.Height = 0
		p.Kin.VerticalVel = 0
		p.Kin.Vel = core.Vec2{}
		w.collab.Audio.Mounted()
		return
	}
}

// completeRide fires the timed auto-dismount exactly once: the
// completion reward is granted once and the player is flung toward the
// nearest forward pad.
func (w *World) completeRide(m *Mount) {
	if m.State != MountCarrying {
		return
	}
	m.State = MountCompleted
	if !m.RewardGranted {
		m.RewardGranted = true
		w.currency += w.cfg.Mounts.RewardCurrency
	}

	p := &w.player
	p.MountedOn = nil
	p.Kin.Height = 0.01
	p.Kin.VerticalVel = w.cfg.Physics.JumpImpulse

	if target := w.nearestLandablePad(m.Pos, w.cfg.Camera.ViewAhead, true); target != nil {
		dir := target.Pos.Sub(m.Pos)
		dir = dir.Scale(1 / dir.Len())
		p.Kin.Vel = dir.Scale(w.cfg.Water.RecoverySpeed)
	} else {
		p.Kin.Vel = core.Vec2{Y: w.cfg.Water.RecoverySpeed}
	}

	w.collab.Audio.Dismounted()
	w.destroy(m)
}

// dismount releases the player without the completion reward (manual
// dismount or replacement by another mount).
func (w *World) dismount(m *Mount) {
	if m.State != MountCarrying {
		return
	}
	m.State = MountCompleted
	w.player.MountedOn = nil
	w.collab.Audio.Dismounted()
	w.destroy(m)
}

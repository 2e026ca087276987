package sim

import (
	"testing"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

func TestWaterRecoveryTowardNearestPad(t *testing.T) {
	w := newBareWorld(t, 1, nil)
	w.player.Kin = Kinetics{Pos: core.Vec2{X: 100, Y: 500}}
	w.player.Health = 2

	// In range (300 <= 400), directly forward.
	target := w.spawnPad(core.Vec2{X: 100, Y: 800}, 40, PadNormal)

	w.resolve()

	if w.player.Health != 1 {
		t.Errorf("health = %d, want 1", w.player.Health)
	}
	if !w.player.Airborne() {
		t.Fatal("recovery impulse should relaunch the player")
	}
	want := target.Pos.Sub(core.Vec2{X: 100, Y: 500})
	want = want.Scale(w.cfg.Water.RecoverySpeed / want.Len())
	if w.player.Kin.Vel.Dist(want) > 1e-9 {
		t.Errorf("recovery velocity = %v, want %v (toward the pad)", w.player.Kin.Vel, want)
	}
}

func TestWaterRecoveryWithoutTarget(t *testing.T) {
	w := newBareWorld(t, 1, nil)
	w.player.Kin = Kinetics{Pos: core.Vec2{X: 100, Y: 500}}
	w.player.Health = 3

	// Only pad is out of recovery range.
	w.spawnPad(core.Vec2{X: 100, Y: 500 + w.cfg.Water.RecoveryRange + 50}, 40, PadNormal)

	w.resolve()

	if w.player.Kin.Vel.X != 0 || w.player.Kin.Vel.Y != w.cfg.Water.RecoverySpeed {
		t.Errorf("with no reachable pad the impulse defaults forward, got %v", w.player.Kin.Vel)
	}
}

func TestWaterLifebuoyFloats(t *testing.T) {
	w := newBareWorld(t, 1, nil)
	w.player.Kin = Kinetics{Pos: core.Vec2{X: 100, Y: 500}}
	w.player.Streak = 5
	w.player.Consumables[ConsumableLifebuoy] = 1

	w.resolve()

	if !w.player.Floating {
		t.Fatal("lifebuoy should float the player")
	}
	if w.player.Health != w.player.MaxHealth {
		t.Errorf("floating must not cost health, got %d", w.player.Health)
	}
	if w.player.Consumables[ConsumableLifebuoy] != 0 {
		t.Error("lifebuoy charge not spent")
	}
	if w.consumablesUsed != 1 {
		t.Errorf("consumablesUsed = %d, want 1", w.consumablesUsed)
	}
	if w.player.Streak != 0 {
		t.Errorf("immersion resets the streak, got %d", w.player.Streak)
	}

	// Floating is a stable substate: another pass changes nothing.
	w.resolve()
	if w.player.Health != w.player.MaxHealth || w.player.Floating != true {
		t.Error("floating state should persist across resolve passes")
	}
}

func TestWaterGraceCountdown(t *testing.T) {
	w := newBareWorld(t, 1, func(cfg *config.HopperConfig) {
		cfg.Water.GraceEnabled = true
	})
	w.player.Kin = Kinetics{Pos: core.Vec2{X: 100, Y: 500}}

	w.resolve()

	if w.player.Health != w.player.MaxHealth-1 {
		t.Fatalf("splash damage expected, health = %d", w.player.Health)
	}
	if w.graceTicks == 0 {
		t.Fatal("grace countdown should be armed")
	}

	// Let the countdown expire.
	budget := w.graceTicks
	for i := 0; i < budget; i++ {
		w.integrate(emptyFrame())
	}
	if w.player.Health != w.player.MaxHealth-2 {
		t.Errorf("expiry should cost another point, health = %d", w.player.Health)
	}
	if w.graceTicks == 0 {
		t.Error("countdown should re-arm after a non-lethal expiry")
	}
}

func TestJumpOutCancelsGrace(t *testing.T) {
	w := newBareWorld(t, 1, func(cfg *config.HopperConfig) {
		cfg.Water.GraceEnabled = true
	})
	w.player.Kin = Kinetics{Pos: core.Vec2{X: 100, Y: 500}}
	w.resolve()

	w.jumpOut()

	if w.graceTicks != 0 {
		t.Error("jumping out should cancel the countdown")
	}
	if !w.player.Airborne() {
		t.Error("jump out should leave the plane")
	}
}

func TestHazardCounterConsumable(t *testing.T) {
	tests := []struct {
		hazard  HazardKind
		counter ConsumableKind
	}{
		{HazardSnake, ConsumableSnakeCharm},
		{HazardDragonfly, ConsumableBugSpray},
		{HazardHeron, ConsumableBugSpray},
	}

	for _, tt := range tests {
		w := newBareWorld(t, 1, nil)
		pos := core.Vec2{X: 300, Y: 400}
		pad := w.spawnPad(pos, 40, PadNormal)
		w.player.Kin = Kinetics{Pos: pos}
		w.player.OnPad = pad.ID
		w.player.Consumables[tt.counter] = 1

		h := w.spawnHazard(pos, tt.hazard)
		w.resolve()

		if !h.dead {
			t.Errorf("%v: counter item should defeat the hazard", tt.hazard)
		}
		if w.player.Health != w.player.MaxHealth {
			t.Errorf("%v: countered contact must not damage, health = %d", tt.hazard, w.player.Health)
		}
		if w.player.Consumables[tt.counter] != 0 {
			t.Errorf("%v: counter charge not spent", tt.hazard)
		}
	}
}

func TestHazardContactDamages(t *testing.T) {
	w := newBareWorld(t, 1, nil)
	pos := core.Vec2{X: 300, Y: 400}
	pad := w.spawnPad(pos, 40, PadNormal)
	w.player.Kin = Kinetics{Pos: pos}
	w.player.OnPad = pad.ID

	w.spawnHazard(core.Vec2{X: pos.X + 10, Y: pos.Y}, HazardSnake)
	w.resolve()

	if w.player.Health != w.player.MaxHealth-1 {
		t.Errorf("health = %d, want %d", w.player.Health, w.player.MaxHealth-1)
	}
	if w.player.InvulnTicks != w.cfg.Player.InvulnTick {
		t.Errorf("invulnerability window not armed: %d", w.player.InvulnTicks)
	}
	if !w.player.Airborne() {
		t.Error("knockback should toss the player")
	}
	if w.player.Kin.Vel.X >= 0 {
		t.Errorf("knockback should push away from the hazard, got %v", w.player.Kin.Vel)
	}

	// The window blocks a repeat hit.
	health := w.player.Health
	w.player.Kin.Height = 0
	w.resolveHazards()
	if w.player.Health != health {
		t.Error("invulnerability window ignored")
	}
}

func TestHazardIgnoredAtHeight(t *testing.T) {
	w := newBareWorld(t, 1, nil)
	pos := core.Vec2{X: 300, Y: 400}
	w.player.Kin = Kinetics{Pos: pos, Height: hazardReachHeight + 10, VerticalVel: 100}
	w.spawnHazard(pos, HazardSnake)

	w.resolveHazards()

	if w.player.Health != w.player.MaxHealth {
		t.Errorf("high arc should clear the hazard, health = %d", w.player.Health)
	}
}

func TestShieldAbsorbsOneHit(t *testing.T) {
	w := newBareWorld(t, 1, nil)
	pos := core.Vec2{X: 300, Y: 400}
	pad := w.spawnPad(pos, 40, PadNormal)
	w.player.Kin = Kinetics{Pos: pos}
	w.player.OnPad = pad.ID
	w.player.Effects[EffectShield] = 600

	w.spawnHazard(core.Vec2{X: pos.X + 5, Y: pos.Y}, HazardSnake)
	w.resolveHazards()

	if w.player.Health != w.player.MaxHealth {
		t.Errorf("shield should absorb the hit, health = %d", w.player.Health)
	}
	if _, ok := w.player.Effects[EffectShield]; ok {
		t.Error("shield is single-use")
	}
}

func TestLogObstructionBounces(t *testing.T) {
	w := newBareWorld(t, 1, nil)
	pos := core.Vec2{X: 300, Y: 400}
	w.player.Kin = Kinetics{Pos: pos, Vel: core.Vec2{Y: 100}, Height: 10, VerticalVel: -50}
	w.spawnPad(pos, 32, PadLog)

	w.resolve()

	if w.player.Health != w.player.MaxHealth {
		t.Errorf("logs never damage, health = %d", w.player.Health)
	}
	if w.player.Kin.Vel.Y != -40 {
		t.Errorf("velocity should reverse damped: got %v, want -40", w.player.Kin.Vel.Y)
	}
	if w.player.Kin.Height != 10 {
		t.Errorf("bounce must not flatten the arc, height = %v", w.player.Kin.Height)
	}
}

func TestLogMacheteBypass(t *testing.T) {
	w := newBareWorld(t, 1, nil)
	pos := core.Vec2{X: 300, Y: 400}
	w.player.Kin = Kinetics{Pos: pos, Vel: core.Vec2{Y: 100}, Height: 10, VerticalVel: -50}
	w.player.Consumables[ConsumableMachete] = 1
	log := w.spawnPad(pos, 32, PadLog)

	w.resolve()

	if !log.dead {
		t.Fatal("machete should destroy the log")
	}
	if w.player.Consumables[ConsumableMachete] != 0 {
		t.Error("machete charge not spent")
	}
	if w.player.Kin.Vel.Y != 100 {
		t.Errorf("bypassed log must not deflect, Vel.Y = %v", w.player.Kin.Vel.Y)
	}
}

func TestLogHighArcPassesOver(t *testing.T) {
	w := newBareWorld(t, 1, nil)
	pos := core.Vec2{X: 300, Y: 400}
	w.player.Kin = Kinetics{Pos: pos, Vel: core.Vec2{Y: 100}, Height: logBlockHeight + 5, VerticalVel: 10}
	w.spawnPad(pos, 32, PadLog)

	w.resolveObstructions()

	if w.player.Kin.Vel.Y != 100 {
		t.Errorf("arc above the block height should pass, Vel.Y = %v", w.player.Kin.Vel.Y)
	}
}

func TestLandingSnapsAndStreaks(t *testing.T) {
	w := newBareWorld(t, 1, nil)
	pad := w.spawnPad(core.Vec2{X: 300, Y: 400}, 40, PadNormal)
	w.player.Kin = Kinetics{Pos: core.Vec2{X: 310, Y: 390}, Vel: core.Vec2{Y: 80}}

	w.resolve()

	if w.player.OnPad != pad.ID {
		t.Fatal("player should stand on the pad")
	}
	if w.player.Kin.Pos != pad.Pos {
		t.Errorf("landing snaps to the pad center, pos = %v", w.player.Kin.Pos)
	}
	if !w.player.Kin.Vel.IsZero() {
		t.Errorf("normal pads absorb momentum, vel = %v", w.player.Kin.Vel)
	}
	if !pad.SteppedOn {
		t.Error("first landing should mark the pad")
	}
	if w.player.Streak != 1 || w.player.LongestStreak != 1 {
		t.Errorf("streak = %d/%d, want 1/1", w.player.Streak, w.player.LongestStreak)
	}

	// A held position is not a new landing.
	w.resolve()
	if w.player.Streak != 1 {
		t.Errorf("repeat resolve must not inflate the streak, got %d", w.player.Streak)
	}
}

func TestIceLandingKeepsMomentum(t *testing.T) {
	w := newBareWorld(t, 1, nil)
	w.spawnPad(core.Vec2{X: 300, Y: 400}, 40, PadIce)
	w.player.Kin = Kinetics{Pos: core.Vec2{X: 300, Y: 400}, Vel: core.Vec2{X: 60}}

	w.resolve()

	if w.player.Kin.Vel.X != 60 {
		t.Errorf("ice keeps horizontal velocity, got %v", w.player.Kin.Vel)
	}
}

func TestLotusLandingScriptedSpawnOnce(t *testing.T) {
	w := newBareWorld(t, 1, nil)
	pad := w.spawnPad(core.Vec2{X: 300, Y: 700}, 42, PadLotus)
	pad.BiomeExit = true
	w.player.Kin = Kinetics{Pos: pad.Pos}

	w.resolve()
	if len(w.hazards) != 1 {
		t.Fatalf("first lotus landing spawns exactly one hazard, got %d", len(w.hazards))
	}
	if !pad.SideEffectFired {
		t.Error("side effect flag should latch")
	}

	// Leave and land again: the one-shot must not refire.
	w.player.OnPad = 0
	w.resolve()
	if len(w.hazards) != 1 {
		t.Errorf("side effect refired, hazards = %d", len(w.hazards))
	}
}

func TestPickupCurrencyAndUpgradeCadence(t *testing.T) {
	w := newBareWorld(t, 1, nil)
	pos := core.Vec2{X: 300, Y: 400}
	pad := w.spawnPad(pos, 40, PadNormal)
	w.player.Kin = Kinetics{Pos: pos}
	w.player.OnPad = pad.ID

	w.currencyCollected = w.cfg.Pickups.UpgradeEvery - 1
	pk := w.spawnPickup(pos, PickupCurrency)

	w.resolve()

	if !pk.dead || !pk.Redeemed {
		t.Error("pickup should be redeemed and destroyed")
	}
	if w.currency != 1 {
		t.Errorf("currency = %d, want 1", w.currency)
	}
	if !w.pendingUpgrade {
		t.Error("the Nth currency pickup should trigger the upgrade interrupt")
	}
}

func TestPickupHealthRestoreCapped(t *testing.T) {
	w := newBareWorld(t, 1, nil)
	pos := core.Vec2{X: 300, Y: 400}
	pad := w.spawnPad(pos, 40, PadNormal)
	w.player.Kin = Kinetics{Pos: pos}
	w.player.OnPad = pad.ID
	w.player.Health = 1

	w.spawnPickup(pos, PickupHealthRestore)
	w.resolve()
	if w.player.Health != 2 {
		t.Errorf("health = %d, want 2", w.player.Health)
	}

	// At full health the restore is wasted, never exceeding the cap.
	w.player.Health = w.player.MaxHealth
	w.spawnPickup(pos, PickupHealthRestore)
	w.resolve()
	if w.player.Health != w.player.MaxHealth {
		t.Errorf("health exceeded cap: %d", w.player.Health)
	}
}

func TestRedeemedPickupIgnored(t *testing.T) {
	w := newBareWorld(t, 1, nil)
	pos := core.Vec2{X: 300, Y: 400}
	pad := w.spawnPad(pos, 40, PadNormal)
	w.player.Kin = Kinetics{Pos: pos}
	w.player.OnPad = pad.ID

	pk := w.spawnPickup(pos, PickupCurrency)
	pk.Redeemed = true

	w.resolve()
	if w.currency != 0 {
		t.Errorf("redeemed pickup collected again, currency = %d", w.currency)
	}
}

func TestRewardTable(t *testing.T) {
	w := newBareWorld(t, 1, nil)

	w.player.Health = 1
	w.applyReward(RewardFullHeal)
	if w.player.Health != w.player.MaxHealth {
		t.Errorf("FullHeal: health = %d, want %d", w.player.Health, w.player.MaxHealth)
	}

	w.applyReward(RewardCurrencyBundle)
	if w.currency != rewardBundleCurrency {
		t.Errorf("CurrencyBundle: currency = %d, want %d", w.currency, rewardBundleCurrency)
	}

	w.applyReward(RewardSupplyCache)
	for _, k := range []ConsumableKind{ConsumableLifebuoy, ConsumableSnakeCharm, ConsumableBugSpray} {
		if w.player.Consumables[k] != 1 {
			t.Errorf("SupplyCache: %v = %d, want 1", k, w.player.Consumables[k])
		}
	}
}

func TestMountRideLifecycle(t *testing.T) {
	w := newBareWorld(t, 1, nil)
	pos := core.Vec2{X: 300, Y: 400}
	w.player.Kin = Kinetics{Pos: pos}
	m := w.spawnMount(pos)

	w.resolve()

	if m.State != MountCarrying || w.player.MountedOn != m {
		t.Fatal("overlapping an idle mount should board it")
	}

	// Steering moves the mount (and the slaved player) laterally.
	frame := emptyFrame()
	frame.Set(core.ActionSteerRight)
	before := m.Pos.X
	w.integrate(frame)
	if m.Pos.X <= before {
		t.Error("steer right should move the mount right")
	}
	if w.player.Kin.Pos != m.Pos {
		t.Error("carried player position must slave to the mount")
	}

	// Expire the ride timer: exactly-once completion reward and a
	// dismount fling.
	m.RemainingRide = 0.001
	w.integrate(emptyFrame())

	if m.State != MountCompleted {
		t.Fatalf("ride should complete, state = %v", m.State)
	}
	if w.currency != w.cfg.Mounts.RewardCurrency {
		t.Errorf("completion reward = %d, want %d", w.currency, w.cfg.Mounts.RewardCurrency)
	}
	if w.player.MountedOn != nil {
		t.Error("player should be dismounted")
	}
	if !w.player.Airborne() {
		t.Error("auto-dismount should fling the player")
	}

	// A second completion attempt grants nothing.
	w.completeRide(m)
	if w.currency != w.cfg.Mounts.RewardCurrency {
		t.Errorf("completion reward granted twice: %d", w.currency)
	}

	w.cull()
	if len(w.mounts) != 0 {
		t.Error("completed mount should be culled")
	}
}

func TestLaunchWhileMountedSkipsReward(t *testing.T) {
	w := newBareWorld(t, 1, nil)
	pos := core.Vec2{X: 300, Y: 400}
	w.player.Kin = Kinetics{Pos: pos}
	m := w.spawnMount(pos)
	w.resolve()

	w.Launch(core.Vec2{X: 0, Y: -200})

	if w.player.MountedOn != nil {
		t.Fatal("launching should dismount")
	}
	if m.State != MountCompleted {
		t.Errorf("mount state = %v, want Completed", m.State)
	}
	if w.currency != 0 {
		t.Errorf("manual dismount must not grant the completion reward, currency = %d", w.currency)
	}
	if !w.player.Airborne() {
		t.Error("launch should be committed")
	}
}

func TestKnockbackFromCoincidentContact(t *testing.T) {
	w := newBareWorld(t, 1, nil)
	w.player.Kin = Kinetics{Pos: core.Vec2{X: 300, Y: 400}}

	w.knockback(w.player.Kin.Pos)

	if w.player.Kin.Vel.IsZero() {
		t.Error("coincident contact still needs a knockback direction")
	}
}

// Package sim implements the Pond Hopper simulation core: jump physics
// shared between live play and the aim preview, procedural pad
// generation, collision resolution and lifecycle culling. It has no
// rendering or terminal dependencies; external concerns are reached
// through collaborator interfaces.
package sim

import "github.com/vovakirdan/tui-hopper/internal/core"

// PadKind is the closed set of platform variants.
type PadKind int

const (
	PadNormal    PadKind = iota
	PadMoving            // Drifts laterally, carries the player
	PadIce               // Player keeps horizontal velocity on landing
	PadShrinking         // Radius decays once stepped on
	PadWhirlpool         // Water feature; mounts spawn nearby
	PadLog               // Obstruction, cannot be landed on
	PadLotus             // Biome-exit pad with a scripted delayed hazard
)

// String returns the pad kind name.
func (k PadKind) String() string {
	switch k {
	case PadNormal:
		return "Normal"
	case PadMoving:
		return "Moving"
	case PadIce:
		return "Ice"
	case PadShrinking:
		return "Shrinking"
	case PadWhirlpool:
		return "Whirlpool"
	case PadLog:
		return "Log"
	case PadLotus:
		return "Lotus"
	default:
		return "Unknown"
	}
}

// Pad is a platform entity. Pads are created by the generator, mutated
// by the resolver and destroyed through the lifecycle manager only.
type Pad struct {
	ID     uint64
	Pos    core.Vec2
	Radius float64
	Kind   PadKind
	Vel    core.Vec2 // Moving pads only

	// BestEffort marks a pad placed via the documented fallback path
	// after the retry budget was exhausted; it may violate the
	// minimum-separation invariant.
	BestEffort bool

	// BiomeExit marks a pad forced at an exact stage-boundary
	// checkpoint, pre-empting the spawn-mix roll.
	BiomeExit bool

	// SideEffectFired guards the one-shot landing side effect.
	SideEffectFired bool

	// SteppedOn records the first landing; shrinking starts after it.
	SteppedOn bool

	dead bool
}

// Circle returns the pad's collision footprint.
func (p *Pad) Circle() core.Circle {
	return core.Circle{Pos: p.Pos, Radius: p.Radius}
}

// Landable reports whether the player can stand on this pad.
func (p *Pad) Landable() bool {
	return p.Kind != PadLog
}

// HazardKind is the closed set of hazard variants.
type HazardKind int

const (
	HazardSnake     HazardKind = iota // Patrols on a pad
	HazardDragonfly                   // Hovers above a pad
	HazardHeron                       // Roams laterally across the lane
)

// String returns the hazard kind name.
func (k HazardKind) String() string {
	switch k {
	case HazardSnake:
		return "Snake"
	case HazardDragonfly:
		return "Dragonfly"
	case HazardHeron:
		return "Heron"
	default:
		return "Unknown"
	}
}

// Counter returns the consumable kind that defeats this hazard on
// contact without damage, consuming one charge.
func (k HazardKind) Counter() ConsumableKind {
	switch k {
	case HazardSnake:
		return ConsumableSnakeCharm
	default:
		return ConsumableBugSpray
	}
}

// Hazard is a damaging entity.
type Hazard struct {
	ID          uint64
	Pos         core.Vec2
	Kind        HazardKind
	PatrolSpeed float64
	PatrolDir   float64 // -1 or +1
	anchorX     float64 // Patrol center
	Radius      float64

	dead bool
}

// Circle returns the hazard's collision footprint.
func (h *Hazard) Circle() core.Circle {
	return core.Circle{Pos: h.Pos, Radius: h.Radius}
}

// PickupKind is the closed set of pickup variants.
type PickupKind int

const (
	PickupCurrency PickupKind = iota // Flies; increment score and wallet
	PickupHealthRestore
	PickupRewardContainer
)

// String returns the pickup kind name.
func (k PickupKind) String() string {
	switch k {
	case PickupCurrency:
		return "Currency"
	case PickupHealthRestore:
		return "HealthRestore"
	case PickupRewardContainer:
		return "RewardContainer"
	default:
		return "Unknown"
	}
}

// Pickup is a collectible entity.
type Pickup struct {
	ID   uint64
	Pos  core.Vec2
	Kind PickupKind

	// Redeemed guards reward application; a container resolves once.
	Redeemed bool

	dead bool
}

const pickupRadius = 12

// Circle returns the pickup's collection footprint.
func (p *Pickup) Circle() core.Circle {
	return core.Circle{Pos: p.Pos, Radius: pickupRadius}
}

// MountState tracks the turtle ride lifecycle.
type MountState int

const (
	MountIdle MountState = iota
	MountCarrying
	MountCompleted
)

// String returns the mount state name.
func (s MountState) String() string {
	switch s {
	case MountIdle:
		return "Idle"
	case MountCarrying:
		return "Carrying"
	case MountCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Mount is a rideable turtle. While carrying, it owns the player's
// position and accepts lateral steering; the ride timer auto-dismounts.
type Mount struct {
	ID            uint64
	Pos           core.Vec2
	State         MountState
	RemainingRide float64 // Seconds until auto-dismount
	Radius        float64

	// RewardGranted guards the one-time completion currency grant.
	RewardGranted bool

	dead bool
}

// Circle returns the mount's collision footprint.
func (m *Mount) Circle() core.Circle {
	return core.Circle{Pos: m.Pos, Radius: m.Radius}
}

// ConsumableKind is the closed set of mitigation items.
type ConsumableKind int

const (
	ConsumableLifebuoy   ConsumableKind = iota // Floats on water immersion
	ConsumableSnakeCharm                       // Counters snakes
	ConsumableBugSpray                         // Counters dragonflies and herons
	ConsumableMachete                          // Bypasses log obstructions
)

// String returns the consumable kind name.
func (k ConsumableKind) String() string {
	switch k {
	case ConsumableLifebuoy:
		return "Lifebuoy"
	case ConsumableSnakeCharm:
		return "SnakeCharm"
	case ConsumableBugSpray:
		return "BugSpray"
	case ConsumableMachete:
		return "Machete"
	default:
		return "Unknown"
	}
}

// EffectKind is the closed set of timed buffs.
type EffectKind int

const (
	EffectSpeedBoost EffectKind = iota // Launch velocity multiplier
	EffectShield                       // Negates the next hazard hit
)

// String returns the effect kind name.
func (k EffectKind) String() string {
	switch k {
	case EffectSpeedBoost:
		return "SpeedBoost"
	case EffectShield:
		return "Shield"
	default:
		return "Unknown"
	}
}

// Player holds the player entity state.
//
// Invariants: Height > 0 implies airborne; Floating implies Height == 0
// and not standing on a pad; Health stays in [0, MaxHealth].
type Player struct {
	Kin       Kinetics
	Health    int
	MaxHealth int

	Consumables map[ConsumableKind]int
	Effects     map[EffectKind]int // Remaining ticks per active effect

	MountedOn *Mount // Weak reference; the world owns the mount
	Floating  bool

	OnPad       uint64 // ID of the pad stood on, 0 if none
	InvulnTicks int

	Streak        int // Consecutive pad landings without a splash
	LongestStreak int
}

// Airborne reports whether the player is above the ground plane.
func (p *Player) Airborne() bool {
	return p.Kin.Height > 0
}

// Grounded reports whether the player is at water level and not riding.
func (p *Player) Grounded() bool {
	return p.Kin.Height <= 0 && p.MountedOn == nil
}

// HasConsumable reports whether at least one charge of kind is held.
func (p *Player) HasConsumable(kind ConsumableKind) bool {
	return p.Consumables[kind] > 0
}

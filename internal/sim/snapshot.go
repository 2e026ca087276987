package sim

import "github.com/vovakirdan/tui-hopper/internal/core"

// EntityPose is the read-only pose+kind view of one active entity,
// consumed by the render collaborator.
type EntityPose struct {
	ID     uint64
	Pos    core.Vec2
	Radius float64
	Kind   string
}

// Snapshot is the per-tick read-only view handed to collaborators. It
// never aliases mutable world state.
type Snapshot struct {
	Tick    int
	CameraY float64
	Stage   int
	Weather Weather

	PlayerPos    core.Vec2
	PlayerHeight float64
	Health       int
	MaxHealth    int
	Floating     bool
	Mounted      bool
	RideLeft     float64
	GraceLeft    int

	Score    int
	Currency int
	Streak   int

	Consumables map[ConsumableKind]int
	Defeated    bool
	Upgrade     bool

	Pads    []EntityPose
	Hazards []EntityPose
	Pickups []EntityPose
	Mounts  []EntityPose
}

// Snapshot captures the current state for rendering and determinism
// tests.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         w.tick,
		CameraY:      w.cameraY,
		Stage:        w.prog.Stage,
		Weather:      w.prog.Weather,
		PlayerPos:    w.player.Kin.Pos,
		PlayerHeight: w.player.Kin.Height,
		Health:       w.player.Health,
		MaxHealth:    w.player.MaxHealth,
		Floating:     w.player.Floating,
		Mounted:      w.player.MountedOn != nil,
		GraceLeft:    w.graceTicks,
		Score:        w.Score(),
		Currency:     w.currency,
		Streak:       w.player.Streak,
		Defeated:     w.defeated,
		Upgrade:      w.pendingUpgrade,
		Consumables:  make(map[ConsumableKind]int, len(w.player.Consumables)),
	}
	if m := w.player.MountedOn; m != nil {
		s.RideLeft = m.RemainingRide
	}
	for k, v := range w.player.Consumables {
		if v > 0 {
			s.Consumables[k] = v
		}
	}

	for _, p := range w.pads {
		if p.dead {
			continue
		}
		s.Pads = append(s.Pads, EntityPose{ID: p.ID, Pos: p.Pos, Radius: p.Radius, Kind: p.Kind.String()})
	}
	for _, h := range w.hazards {
		if h.dead {
			continue
		}
		s.Hazards = append(s.Hazards, EntityPose{ID: h.ID, Pos: h.Pos, Radius: h.Radius, Kind: h.Kind.String()})
	}
	for _, pk := range w.pickups {
		if pk.dead {
			continue
		}
		s.Pickups = append(s.Pickups, EntityPose{ID: pk.ID, Pos: pk.Pos, Radius: pickupRadius, Kind: pk.Kind.String()})
	}
	for _, m := range w.mounts {
		if m.dead {
			continue
		}
		s.Mounts = append(s.Mounts, EntityPose{ID: m.ID, Pos: m.Pos, Radius: m.Radius, Kind: m.State.String()})
	}
	return s
}

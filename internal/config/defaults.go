package config

import (
	_ "embed"
)

//go:embed defaults/hopper.yaml
var defaultHopperYAML []byte

// DefaultHopperConfig returns the default Pond Hopper configuration.
// Kept in sync with defaults/hopper.yaml, which is the embedded source
// of truth for normal loading; this is the fallback of last resort.
func DefaultHopperConfig() HopperConfig {
	return HopperConfig{
		Physics: PhysicsConfig{
			Gravity:      900,
			JumpImpulse:  420,
			AirFriction:  0.995,
			MaxFallSpeed: 900,
		},
		Drag: DragConfig{
			MaxDistance:     200,
			PowerCoeff:      2.0,
			PredictMaxSteps: 240,
		},
		Player: PlayerConfig{
			MaxHealth:  3,
			Radius:     14,
			InvulnTick: 45,
			StartX:     300,
			StartY:     100,
		},
		Placement: PlacementConfig{
			MinAdvance:   120,
			MaxAdvance:   240,
			MaxLateral:   90,
			ExtraSpacing: 10,
			LaneMinX:     40,
			LaneMaxX:     560,
		},
		Pads: PadConfig{
			NormalRadius:    40,
			AuxRadius:       26,
			WhirlpoolRadius: 44,
			LogRadius:       32,
			LotusRadius:     42,
			MovingSpeed:     40,
			ShrinkRate:      4,
			MinRadius:       12,
			AuxChainChance:  0.35,
			MaxAuxChain:     2,
			LogChance:       0.2,
			PickupChance:    0.45,
		},
		Hazards: HazardConfig{
			PadHazardChance: 0.25,
			RoamerChance:    0.12,
			MaxRoamers:      2,
			PatrolSpeed:     60,
			PatrolRange:     70,
			KnockbackSpeed:  220,
		},
		Pickups: PickupConfig{
			UpgradeEvery:   10,
			CurrencyWeight: 70,
			HealthWeight:   20,
			RewardWeight:   10,
		},
		Mounts: MountConfig{
			RideSeconds:    20,
			PerRunLimit:    3,
			MinStage:       1,
			SpawnChance:    0.5,
			RewardCurrency: 25,
			SwimSpeed:      90,
			SteerSpeed:     140,
			Radius:         30,
		},
		Water: WaterConfig{
			GraceEnabled:  false,
			GraceSeconds:  3,
			RecoveryRange: 400,
			RecoverySpeed: 260,
		},
		Camera: CameraConfig{
			ViewBehind:   240,
			ViewAhead:    900,
			LookAhead:    780,
			FollowOffset: 200,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				AdvanceBoost: 80,
				HazardBoost:  0.25,
			},
		},
	}
}

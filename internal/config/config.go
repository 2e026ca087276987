// Package config provides YAML-based game configuration loading and
// difficulty management for the hopper simulation.
package config

// HopperConfig contains all tunable parameters for the Pond Hopper game.
type HopperConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Drag       DragConfig       `yaml:"drag"`
	Player     PlayerConfig     `yaml:"player"`
	Placement  PlacementConfig  `yaml:"placement"`
	Pads       PadConfig        `yaml:"pads"`
	Hazards    HazardConfig     `yaml:"hazards"`
	Pickups    PickupConfig     `yaml:"pickups"`
	Mounts     MountConfig      `yaml:"mounts"`
	Water      WaterConfig      `yaml:"water"`
	Camera     CameraConfig     `yaml:"camera"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines the jump physics shared by live simulation and
// the predictive aim preview.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // World units per second squared
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Vertical launch speed at full drag
	AirFriction  float64 `yaml:"air_friction"`   // Horizontal velocity decay factor per tick
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal vertical speed
}

// DragConfig defines the slingshot aim gesture.
type DragConfig struct {
	MaxDistance     float64 `yaml:"max_distance"`      // Drag length giving intensity 1.0
	PowerCoeff      float64 `yaml:"power_coefficient"` // Drag-to-velocity scale
	PredictMaxSteps int     `yaml:"predict_max_steps"` // Preview sample budget
}

// PlayerConfig defines the player entity.
type PlayerConfig struct {
	MaxHealth  int     `yaml:"max_health"`
	Radius     float64 `yaml:"radius"`
	InvulnTick int     `yaml:"invuln_ticks"` // Invincibility window after a hit
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
}

// PlacementConfig bounds the rejection-sampled pad placement.
type PlacementConfig struct {
	MinAdvance   float64 `yaml:"min_advance"`   // Minimum forward offset from the anchor
	MaxAdvance   float64 `yaml:"max_advance"`   // Maximum forward offset from the anchor
	MaxLateral   float64 `yaml:"max_lateral"`   // Maximum lateral deviation from the anchor
	ExtraSpacing float64 `yaml:"extra_spacing"` // Required gap on top of combined radii
	LaneMinX     float64 `yaml:"lane_min_x"`
	LaneMaxX     float64 `yaml:"lane_max_x"`
}

// PadConfig defines pad footprints and attachment spawn odds.
type PadConfig struct {
	NormalRadius    float64 `yaml:"normal_radius"`
	AuxRadius       float64 `yaml:"aux_radius"`
	WhirlpoolRadius float64 `yaml:"whirlpool_radius"`
	LogRadius       float64 `yaml:"log_radius"`
	LotusRadius     float64 `yaml:"lotus_radius"`
	MovingSpeed     float64 `yaml:"moving_speed"` // Lateral drift speed of Moving pads
	ShrinkRate      float64 `yaml:"shrink_rate"`  // Radius loss per second once stepped on
	MinRadius       float64 `yaml:"min_radius"`   // Shrinking pad floor
	AuxChainChance  float64 `yaml:"aux_chain_chance"`
	MaxAuxChain     int     `yaml:"max_aux_chain"`
	LogChance       float64 `yaml:"log_chance"`
	PickupChance    float64 `yaml:"pickup_chance"`
}

// HazardConfig defines hazard spawning and behavior.
type HazardConfig struct {
	PadHazardChance float64 `yaml:"pad_hazard_chance"` // Chance of a hazard above a new pad
	RoamerChance    float64 `yaml:"roamer_chance"`     // Chance of a roaming lateral hazard
	MaxRoamers      int     `yaml:"max_roamers"`       // Concurrency cap for roamers
	PatrolSpeed     float64 `yaml:"patrol_speed"`
	PatrolRange     float64 `yaml:"patrol_range"`
	KnockbackSpeed  float64 `yaml:"knockback_speed"`
}

// PickupConfig defines pickup spawn weights and the upgrade cadence.
type PickupConfig struct {
	UpgradeEvery   int `yaml:"upgrade_every"` // Currency pickups per upgrade interrupt
	CurrencyWeight int `yaml:"currency_weight"`
	HealthWeight   int `yaml:"health_weight"`
	RewardWeight   int `yaml:"reward_weight"`
}

// MountConfig defines turtle mounts.
type MountConfig struct {
	RideSeconds    float64 `yaml:"ride_seconds"` // Auto-dismount timer
	PerRunLimit    int     `yaml:"per_run_limit"`
	MinStage       int     `yaml:"min_stage"`
	SpawnChance    float64 `yaml:"spawn_chance"` // Chance near a whirlpool pad
	RewardCurrency int     `yaml:"reward_currency"`
	SwimSpeed      float64 `yaml:"swim_speed"`
	SteerSpeed     float64 `yaml:"steer_speed"`
	Radius         float64 `yaml:"radius"`
}

// WaterConfig defines the immersion outcome.
type WaterConfig struct {
	GraceEnabled  bool    `yaml:"grace_enabled"` // Countdown reprieve instead of instant recovery
	GraceSeconds  float64 `yaml:"grace_seconds"`
	RecoveryRange float64 `yaml:"recovery_range"` // Max distance to a recovery target pad
	RecoverySpeed float64 `yaml:"recovery_speed"`
}

// CameraConfig defines the active window and generation look-ahead.
type CameraConfig struct {
	ViewBehind   float64 `yaml:"view_behind"` // Active window reach behind the camera
	ViewAhead    float64 `yaml:"view_ahead"`  // Active window reach ahead of the camera
	LookAhead    float64 `yaml:"look_ahead"`  // Generation trigger distance
	FollowOffset float64 `yaml:"follow_offset"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	AdvanceBoost float64 `yaml:"advance_boost"` // Extra max pad advance at max difficulty
	HazardBoost  float64 `yaml:"hazard_boost"`  // Extra hazard probability at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

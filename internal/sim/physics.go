package sim

import (
	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

// Kinetics is the projectile state integrated each tick: a 2D pond
// position plus a vertical jump arc above the water plane.
type Kinetics struct {
	Pos         core.Vec2 // X lateral, Y forward
	Vel         core.Vec2 // World units per second
	Height      float64   // Vertical offset above the water plane, >= 0
	VerticalVel float64   // Positive = rising
}

// Stepper integrates jump physics. The live simulation and the
// predictive aim preview MUST share one Stepper: duplicating the
// gravity constant makes prediction and execution diverge.
type Stepper struct {
	Gravity      float64
	AirFriction  float64 // Horizontal decay factor applied once per tick
	MaxFallSpeed float64
	DT           float64 // Seconds per tick
}

// NewStepper builds a stepper from physics config at the given tick rate.
func NewStepper(cfg config.PhysicsConfig, tickRate int) Stepper {
	if tickRate <= 0 {
		tickRate = 60
	}
	return Stepper{
		Gravity:      cfg.Gravity,
		AirFriction:  cfg.AirFriction,
		MaxFallSpeed: cfg.MaxFallSpeed,
		DT:           1.0 / float64(tickRate),
	}
}

// Step advances k by one tick under the given gravity scale and returns
// whether the step ended with a landing (airborne before, on the plane
// after). Height is clamped at zero and downward vertical velocity is
// zeroed on landing.
func (s Stepper) Step(k *Kinetics, gravityScale float64) bool {
	wasAirborne := k.Height > 0

	k.VerticalVel -= s.Gravity * gravityScale * s.DT
	if k.VerticalVel < -s.MaxFallSpeed {
		k.VerticalVel = -s.MaxFallSpeed
	}
	k.Height += k.VerticalVel * s.DT
	k.Pos = k.Pos.Add(k.Vel.Scale(s.DT))
	k.Vel = k.Vel.Scale(s.AirFriction)

	if k.Height <= 0 {
		k.Height = 0
		if k.VerticalVel < 0 {
			k.VerticalVel = 0
		}
		return wasAirborne
	}
	return false
}

// Predict samples the trajectory of a launch until it returns to the
// water plane or maxSteps is exhausted. It is pure: the caller's state
// is never mutated, and it runs the exact same Step as the live tick.
func (s Stepper) Predict(start Kinetics, gravityScale float64, maxSteps int) []core.Vec2 {
	k := start
	points := make([]core.Vec2, 0, core.Max(maxSteps, 0))
	for i := 0; i < maxSteps; i++ {
		landed := s.Step(&k, gravityScale)
		points = append(points, k.Pos)
		if landed || k.Height <= 0 {
			break
		}
	}
	return points
}

// IntensityRatio maps a drag gesture to a launch intensity in [0, 1].
// A zero-length drag or non-positive max distance yields 0 (no launch).
func IntensityRatio(drag core.Vec2, maxDistance float64) float64 {
	if maxDistance <= 0 {
		return 0
	}
	return core.ClampF(drag.Len()/maxDistance, 0, 1)
}

// LaunchVelocity converts a pull-back drag vector into a horizontal
// launch velocity: opposite the drag, scaled by the power coefficient
// and any active speed-multiplier buff.
func LaunchVelocity(drag core.Vec2, powerCoeff, activeMultiplier float64) core.Vec2 {
	return drag.Scale(-powerCoeff * activeMultiplier)
}

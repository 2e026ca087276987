package sim

import "math/rand"

// Weather is the biome enum. Weather scales gravity and the spawn mix.
type Weather int

const (
	WeatherClear Weather = iota
	WeatherBreeze
	WeatherRain
	WeatherStorm
	WeatherMoonlit // Low-gravity biome
)

// String returns the weather name.
func (w Weather) String() string {
	switch w {
	case WeatherClear:
		return "Clear"
	case WeatherBreeze:
		return "Breeze"
	case WeatherRain:
		return "Rain"
	case WeatherStorm:
		return "Storm"
	case WeatherMoonlit:
		return "Moonlit"
	default:
		return "Unknown"
	}
}

// moonlitGravityScale is the reduced gravity of the Moonlit biome,
// consumed identically by live and predictive physics.
const moonlitGravityScale = 0.3

// GravityScale returns the gravity multiplier for a weather.
func GravityScale(w Weather) float64 {
	if w == WeatherMoonlit {
		return moonlitGravityScale
	}
	return 1.0
}

// stageThresholds are the cumulative distances at which the difficulty
// stage steps up. Stages beyond the table repeat the last interval.
var stageThresholds = []float64{600, 1400, 2400, 3600, 5200}

// stageInterval extends the table for endless runs.
const stageInterval = 1800

// StageForDistance maps cumulative distance to a discrete stage.
// Non-decreasing in distance.
func StageForDistance(d float64) int {
	if d < 0 {
		return 0
	}
	for i, t := range stageThresholds {
		if d < t {
			return i
		}
	}
	last := stageThresholds[len(stageThresholds)-1]
	return len(stageThresholds) + int((d-last)/stageInterval)
}

// StageCheckpoint returns the exact distance at which the given stage
// begins. Checkpoint(0) is 0.
func StageCheckpoint(stage int) float64 {
	if stage <= 0 {
		return 0
	}
	if stage <= len(stageThresholds) {
		return stageThresholds[stage-1]
	}
	last := stageThresholds[len(stageThresholds)-1]
	return last + float64(stage-len(stageThresholds))*stageInterval
}

var weatherCycle = []Weather{WeatherClear, WeatherBreeze, WeatherRain, WeatherStorm, WeatherMoonlit}

// WeatherForStage cycles the fixed ordered weather list.
func WeatherForStage(stage int) Weather {
	if stage < 0 {
		stage = 0
	}
	return weatherCycle[stage%len(weatherCycle)]
}

// WeightedKind is one entry of the spawn-mix probability table.
type WeightedKind struct {
	Kind   PadKind
	Weight int
}

// SpawnMix returns the weighted pad-kind table for a stage. Some kinds
// are gated to a minimum stage; Lotus never appears in the mix because
// it is only placed by the deterministic biome-exit override.
func SpawnMix(stage int) []WeightedKind {
	mix := []WeightedKind{{PadNormal, 50}}
	if stage >= 1 {
		mix = append(mix,
			WeightedKind{PadMoving, 15},
			WeightedKind{PadWhirlpool, 15},
		)
	}
	if stage >= 2 {
		mix = append(mix, WeightedKind{PadIce, 12})
	}
	if stage >= 3 {
		mix = append(mix, WeightedKind{PadShrinking, 10})
	}
	return mix
}

// rollKind draws a pad kind from the weighted table.
func rollKind(rng *rand.Rand, mix []WeightedKind) PadKind {
	total := 0
	for _, wk := range mix {
		total += wk.Weight
	}
	if total <= 0 {
		return PadNormal
	}
	roll := rng.Intn(total)
	for _, wk := range mix {
		roll -= wk.Weight
		if roll < 0 {
			return wk.Kind
		}
	}
	return PadNormal
}

// Progression tracks cumulative progress and the derived stage/weather.
// Stage is non-decreasing; the weather swap is held as a pending token
// consumed on the next grounded tick, never mid-air.
type Progression struct {
	CumulativeDistance float64
	Stage              int
	Weather            Weather

	pending    Weather
	hasPending bool
}

// NewProgression starts a run at stage 0.
func NewProgression() *Progression {
	return &Progression{Weather: WeatherForStage(0)}
}

// Advance records forward progress (monotonic) and, when the stage
// steps up, queues the matching weather as a pending transition.
func (p *Progression) Advance(distance float64) {
	if distance <= p.CumulativeDistance {
		return
	}
	p.CumulativeDistance = distance
	stage := StageForDistance(distance)
	if stage > p.Stage {
		p.Stage = stage
		p.pending = WeatherForStage(stage)
		p.hasPending = true
	}
}

// ConsumePending applies a queued weather transition. Called by the
// world only when the player is grounded; returns true if a swap
// happened this tick.
func (p *Progression) ConsumePending() bool {
	if !p.hasPending {
		return false
	}
	p.Weather = p.pending
	p.hasPending = false
	return true
}

// TransitionPending reports whether a weather swap is queued.
func (p *Progression) TransitionPending() bool {
	return p.hasPending
}

package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

// placementRetryBudget is the fixed number of rejection-sampling
// attempts before PlaceNext falls back to its last sample.
const placementRetryBudget = 15

// Placer produces forward-biased pad positions by rejection sampling
// against minimum-separation and lane constraints.
type Placer struct {
	rng *rand.Rand
	cfg config.PlacementConfig
}

// NewPlacer creates a placer drawing from the given RNG.
func NewPlacer(rng *rand.Rand, cfg config.PlacementConfig) *Placer {
	return &Placer{rng: rng, cfg: cfg}
}

// Bounds returns the lane bounds the placer clamps samples to.
func (p *Placer) Bounds() core.LaneBounds {
	return core.LaneBounds{MinX: p.cfg.LaneMinX, MaxX: p.cfg.LaneMaxX}
}

// sample draws one forward-biased candidate around the anchor: advance
// within [MinAdvance, maxAdvance], lateral deviation within MaxLateral,
// clamped to the lane.
func (p *Placer) sample(anchor core.Vec2, maxAdvance float64, bounds core.LaneBounds) core.Vec2 {
	if maxAdvance < p.cfg.MinAdvance {
		maxAdvance = p.cfg.MinAdvance
	}
	advance := p.cfg.MinAdvance + p.rng.Float64()*(maxAdvance-p.cfg.MinAdvance)
	lateral := (p.rng.Float64()*2 - 1) * p.cfg.MaxLateral
	return core.Vec2{
		X: bounds.ClampX(anchor.X + lateral),
		Y: anchor.Y + advance,
	}
}

// valid reports whether a candidate circle keeps the required spacing
// from the anchor and every obstacle.
func valid(cand core.Circle, anchor core.Circle, obstacles []core.Circle, extraSpacing float64) bool {
	if cand.Overlaps(anchor, extraSpacing) {
		return false
	}
	return keepsSpacing(cand, obstacles, extraSpacing)
}

// keepsSpacing reports whether a candidate circle keeps the required
// spacing from every obstacle.
func keepsSpacing(cand core.Circle, obstacles []core.Circle, extraSpacing float64) bool {
	for _, o := range obstacles {
		if cand.Overlaps(o, extraSpacing) {
			return false
		}
	}
	return true
}

// PlaceNext returns the next primary position relative to the anchor.
// After the retry budget is exhausted it falls back to the LAST sample
// even if it still violates separation; the second return value is true
// on that path. Callers needing a hard guarantee must re-validate.
func (p *Placer) PlaceNext(anchor core.Circle, candidateRadius float64, bounds core.LaneBounds, extraSpacing float64, obstacles []core.Circle, maxAdvance float64) (core.Vec2, bool) {
	var last core.Vec2
	for i := 0; i < placementRetryBudget; i++ {
		last = p.sample(anchor.Pos, maxAdvance, bounds)
		cand := core.Circle{Pos: last, Radius: candidateRadius}
		if valid(cand, anchor, obstacles, extraSpacing) {
			return last, false
		}
	}
	return last, true
}

// PlaceAtY pins the forward coordinate and samples only the lateral
// axis: the preferred X first, then uniform draws across the lane.
// After the retry budget is exhausted it falls back to the lane-clamped
// preferred X even if it still violates separation; the second return
// value is true on that path.
func (p *Placer) PlaceAtY(preferredX, y, candidateRadius float64, bounds core.LaneBounds, extraSpacing float64, obstacles []core.Circle) (core.Vec2, bool) {
	pos := core.Vec2{X: bounds.ClampX(preferredX), Y: y}
	if keepsSpacing(core.Circle{Pos: pos, Radius: candidateRadius}, obstacles, extraSpacing) {
		return pos, false
	}
	for i := 0; i < placementRetryBudget; i++ {
		cand := core.Circle{
			Pos:    core.Vec2{X: bounds.MinX + p.rng.Float64()*(bounds.MaxX-bounds.MinX), Y: y},
			Radius: candidateRadius,
		}
		if keepsSpacing(cand, obstacles, extraSpacing) {
			return cand.Pos, false
		}
	}
	return pos, true
}

// PlaceRejectOnly performs the identical sampling but returns ok=false
// instead of falling back. Used for secondary spawns (pad chains,
// mount berths, log offsets) where overlap is unacceptable but a
// missed spawn is fine.
func (p *Placer) PlaceRejectOnly(anchor core.Circle, candidateRadius float64, bounds core.LaneBounds, extraSpacing float64, obstacles []core.Circle, maxAdvance float64) (core.Vec2, bool) {
	for i := 0; i < placementRetryBudget; i++ {
		cand := core.Circle{Pos: p.sample(anchor.Pos, maxAdvance, bounds), Radius: candidateRadius}
		if valid(cand, anchor, obstacles, extraSpacing) {
			return cand.Pos, true
		}
	}
	return core.Vec2{}, false
}

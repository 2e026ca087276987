package sim

import (
	"testing"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestWorld(t *testing.T, seed int64) *World {
	t.Helper()
	return NewWorld(config.DefaultHopperConfig(), testRuntime(seed), Collaborators{})
}

// newBareWorld returns a world stripped of generated content so
// scenario tests control the exact entity set.
func newBareWorld(t *testing.T, seed int64, mutate func(*config.HopperConfig)) *World {
	t.Helper()
	cfg := config.DefaultHopperConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	w := NewWorld(cfg, testRuntime(seed), Collaborators{})
	w.pads = w.pads[:0]
	w.hazards = w.hazards[:0]
	w.pickups = w.pickups[:0]
	w.mounts = w.mounts[:0]
	w.player.OnPad = 0
	return w
}

func emptyFrame() core.InputFrame {
	return core.NewInputFrame()
}

package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
	"github.com/vovakirdan/tui-hopper/internal/sim"
)

var (
	flagSimTicks   int
	flagSimVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless scripted session",
	Long: `Run the simulation without a terminal UI, driven by a simple
scripted pilot that hops forward on a fixed cadence. Useful for
profiling, balancing and checking that a seed behaves.

Examples:
  hopper simulate
  hopper simulate --ticks 7200 --seed 42
  hopper simulate --verbose`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum ticks to simulate")
	simulateCmd.Flags().BoolVar(&flagSimVerbose, "verbose", false, "Log every landing and stage change")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hopper-sim",
	})

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runtime := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     seed,
	}

	cfg := config.DefaultHopperConfig()
	world := sim.NewWorld(cfg, runtime, sim.Collaborators{})
	dt := 1.0 / float64(runtime.TickRate)

	// The pilot aims with its own rng so the world seed alone decides
	// the level layout.
	pilot := rand.New(rand.NewSource(seed + 1))

	logger.Info("starting run", "seed", seed, "ticks", flagSimTicks)

	lastStage := world.Progress().Stage
	for tick := 0; tick < flagSimTicks && !world.IsDefeated(); tick++ {
		frame := core.NewInputFrame()

		if world.PendingUpgrade() {
			frame.Set(core.ActionChoiceA)
		}

		p := world.Player()
		streakBefore := p.Streak
		if p.Floating {
			frame.Set(core.ActionTap)
		} else if p.Grounded() && tick%45 == 0 {
			drag := core.Vec2{
				X: (pilot.Float64() - 0.5) * 80,
				Y: -(120 + pilot.Float64()*80),
			}
			frame.SetDrag(core.DragEnd, drag)
		}

		world.Tick(dt, frame)

		if stage := world.Progress().Stage; stage != lastStage {
			logger.Info("stage reached", "stage", stage, "weather", world.Progress().Weather, "score", world.Score())
			lastStage = stage
		}
		if flagSimVerbose && world.Player().Streak > streakBefore {
			logger.Debug("landing", "tick", tick, "streak", world.Player().Streak)
		}
	}

	summary := world.Summary()
	logger.Info("run finished",
		"defeated", world.IsDefeated(),
		"score", summary.Score,
		"currency", summary.Currency,
		"distance", summary.Distance,
		"longest_streak", summary.LongestStreak,
		"consumables_used", summary.ConsumablesUsed,
	)
}

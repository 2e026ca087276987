// hopper is a terminal endless river-crossing game: fling your frog
// from lily pad to lily pad, dodge the wildlife and ride the turtles.
//
// Usage:
//
//	hopper play              - Play in the current terminal
//	hopper serve             - Start SSH server for remote play
//	hopper scores            - Show best runs
//	hopper simulate          - Run a headless scripted session
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.hopper/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hopper",
	Short: "Pond Hopper - slingshot frog hopping in your terminal",
	Long: `Pond Hopper is a terminal endless runner. Drag with the mouse to
slingshot your frog up the river, land on lily pads, collect coins,
counter snakes and dragonflies with the right item and hitch a ride
on passing turtles.

Available commands:
  play      - Play in the current terminal
  serve     - Start SSH server for remote play
  scores    - View best runs
  simulate  - Run a headless scripted session

Examples:
  hopper play
  hopper play --difficulty hard
  hopper serve --ssh :2222
  hopper scores
  hopper simulate --ticks 3600`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hopper/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// flappy is a side-scrolling arcade game for the terminal and the desktop.
//
// Usage:
//
//	flappy play [frontend]   - Play in the terminal (tui, default) or a window (gui)
//	flappy list              - List available front ends
//	flappy sim               - Run a headless scripted game and print the result
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config YAML
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import front ends to register them
	_ "github.com/vovakirdan/tui-flappy/internal/platform/gui"
	_ "github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide the bird through the pipes",
	Long: `Flappy is a side-scrolling arcade game. Flap to stay in the air and
fly through the openings between pipes. Each pair passed scores one point.

Available commands:
  play     - Start a game (terminal or window)
  list     - Show available front ends
  sim      - Run a headless game with scripted flaps
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play gui
  flappy sim --frames 600 --flap-every 20 --seed 42
  flappy config --config ./my-flappy.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

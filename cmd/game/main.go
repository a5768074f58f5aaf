// game is a survivor-style arena roguelite: waves of enemies close in while
// the equipped spells fire on their own.
//
// Usage:
//
//	game play                - Open the game window
//	game simulate            - Run a headless fixed-step simulation
//	game scores              - Show the best recorded runs
//	game schema <spells|enemies> - Print the JSON Schema for a definitions file
//
// Global flags:
//
//	--config <path>  - YAML tuning overlay
//	--db <path>      - Run history database (default: ~/.go-survivors/runs.db)
//	--seed <value>   - RNG seed for reproducible runs (0 = time-seeded)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"go-survivors/internal/config"
	"go-survivors/internal/defs"
)

var (
	flagConfig  string
	flagDBPath  string
	flagSeed    int64
	flagLoadout []string
)

// defaultLoadout is the spell set a fresh run starts with.
var defaultLoadout = []string{"SPELL_FIREBALL", "SPELL_RADIANCE"}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Survivor-style arena roguelite",
	Long: `A survivor-style arena roguelite. Enemies arrive in waves, spells
cast themselves, and every run ends the same way; the score is how long it
took.

Examples:
  game play
  game play --loadout SPELL_FIREBALL,SPELL_GRIM_TETHER
  game simulate --duration 120 --seed 42
  game scores
  game schema spells`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML tuning overlay")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.go-survivors/runs.db", "Path to the run history database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = time-seeded)")
	rootCmd.PersistentFlags().StringSliceVar(&flagLoadout, "loadout", defaultLoadout, "Spell definition IDs to start with")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(schemaCmd)
}

// loadTuning resolves the effective tuning from defaults, the optional YAML
// overlay and the --seed flag, and loads the definition libraries.
func loadTuning() (config.Tuning, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if err := defs.LoadDefaults(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "game",
	})
}

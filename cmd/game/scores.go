// cmd/game/scores.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-survivors/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	RunE:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("%-4s %-8s %-6s %-6s %-6s %-8s %s\n", "#", "SCORE", "WAVE", "KILLS", "LEVEL", "TIME", "DATE")
	for i, r := range runs {
		fmt.Printf("%-4d %-8d %-6d %-6d %-6d %-8s %s\n",
			i+1, r.Score, r.Wave, r.Kills, r.Level,
			fmt.Sprintf("%.0fs", r.Duration),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}

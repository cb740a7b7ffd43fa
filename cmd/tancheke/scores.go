package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tancheke/internal/storage"
)

var (
	flagReset        bool
	flagClearHistory bool
	flagLimit        int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the record and the best runs",
	Long: `Display the high-score record and the top runs from the history.

Examples:
  tancheke scores
  tancheke scores --limit 20
  tancheke scores --reset
  tancheke scores --clear-history`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the high-score record")
	scoresCmd.Flags().BoolVar(&flagClearHistory, "clear-history", false, "Delete the run history")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	record, err := storage.NewHighScoreFile(flagRecord)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagReset {
		if err := record.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Record reset (%s)\n", record.Path())
		if !flagClearHistory {
			return
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearHistory {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println("Run history cleared")
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Record: %d\n", record.Load())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tancheke play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-15s  %-8s  %-5s  %s\n", "Rank", "Score", "Outcome", "Mode", "Level", "Date")
	fmt.Printf("  %-4s  %-7s  %-15s  %-8s  %-5s  %s\n", "----", "-----", "-------", "----", "-----", "----")
	for i, r := range runs {
		level := fmt.Sprintf("%d", r.Level)
		if r.Mode == storage.ModeBonus {
			level = "B"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7d  %-15s  %-8s  %-5s  %s\n", i+1, r.Score, r.Outcome, r.Mode, level, dateStr)
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Average: %.0f  Victories: %d  Boss kills: %d  Defeats: %d\n",
			stats.Runs, stats.AvgScore, stats.Victories, stats.BossKills, stats.Defeats)
	}
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sandeepan/tutora/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		results, err := s.EventRepo().RecentResults(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No quiz results yet. Run `tutora learn` to start a session.")
			return nil
		}

		fmt.Printf("%-19s  %-14s  %-26s  %-12s  %-7s  %-7s  %s\n",
			"Timestamp", "Subject", "Topic", "Level", "Score", "Pct", "Tier")
		fmt.Println(strings.Repeat("─", 100))

		excellent := color.New(color.FgGreen)
		good := color.New(color.FgYellow)
		review := color.New(color.FgRed)

		for _, r := range results {
			topic := r.Topic
			if len(topic) > 26 {
				topic = topic[:23] + "..."
			}
			fmt.Printf("%-19s  %-14s  %-26s  %-12s  %2d/%-4d  %5.1f%%  ",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Subject, topic, r.Level, r.Score, r.Total, r.Percentage)
			switch r.Tier {
			case "excellent":
				excellent.Println(r.Tier)
			case "good":
				good.Println(r.Tier)
			default:
				review.Println(r.Tier)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of results to show")
}

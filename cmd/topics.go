package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sandeepan/tutora/internal/catalog"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List subjects and suggested topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.LoadDefault()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		subjectColor := color.New(color.FgCyan, color.Bold)
		levelColor := color.New(color.FgYellow)

		for _, s := range cat.Subjects {
			subjectColor.Println(s.Name)
			for _, t := range s.Topics {
				fmt.Println("  -", t)
			}
			fmt.Println()
		}

		fmt.Print("Levels: ")
		for i, l := range cat.Levels {
			if i > 0 {
				fmt.Print(", ")
			}
			levelColor.Print(l)
		}
		fmt.Println()
		fmt.Println("\nAny free-text topic works too; these are starting points.")
		return nil
	},
}

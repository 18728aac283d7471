package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prasadg/medprep/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show answer accuracy per specialty",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.EventRepo().Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No answers recorded yet. Run a session first: medprep play")
			return nil
		}

		fmt.Printf("%-20s %8s %8s %9s\n", "SPECIALTY", "ANSWERED", "CORRECT", "ACCURACY")
		for _, s := range stats {
			fmt.Printf("%-20s %8d %8d %8.1f%%\n", s.SpecialtyID, s.Answered, s.Correct, s.Accuracy*100)
		}
		return nil
	},
}

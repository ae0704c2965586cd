package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/grader"
	"github.com/abhisek/assessly/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stored learner progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.log.Sync()

		st, err := e.openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		filter := store.ProgressFilter{}
		filter.AssessmentID, _ = cmd.Flags().GetString("assessment")
		filter.LearnerID, _ = cmd.Flags().GetString("learner")

		ctx := cmd.Context()
		records, err := st.ProgressRepo().List(ctx, filter)
		if err != nil {
			return fmt.Errorf("list progress: %w", err)
		}
		counts, err := st.EventRepo().SubmissionStats(ctx, filter)
		if err != nil {
			return fmt.Errorf("submission stats: %w", err)
		}
		subs := make(map[string]store.SubmissionStats, len(counts))
		for _, c := range counts {
			subs[c.AssessmentID+"/"+c.LearnerID] = c
		}

		// Scores need the definitions; without them the column shows "-".
		var catalog *content.Catalog
		if _, err := os.Stat(e.cfg.Content); err == nil {
			if catalog, _, err = loadCatalog(e.cfg.Content); err != nil {
				e.log.Sugar().Warnw("content not loaded, scores omitted", "error", err)
			}
		}

		if len(records) == 0 {
			fmt.Println("No progress stored.")
			return nil
		}

		fmt.Printf("%-24s  %-16s  %4s  %8s  %4s  %5s  %7s  %8s  %s\n",
			"Assessment", "Learner", "Step", "Attempts", "Done", "Score", "Submits", "Rejected", "Updated")
		fmt.Println(strings.Repeat("─", 104))

		for _, p := range records {
			score := "-"
			if catalog != nil {
				if def, ok := catalog.Get(p.AssessmentID); ok {
					score = fmt.Sprintf("%d%%", grader.Percentage(def, p.Results))
				}
			}
			done := "no"
			if p.Completed {
				done = "yes"
			}
			c := subs[p.AssessmentID+"/"+p.LearnerID]
			fmt.Printf("%-24s  %-16s  %4d  %8d  %4s  %5s  %7d  %8d  %s\n",
				truncate(p.AssessmentID, 24), truncate(p.LearnerID, 16),
				p.Step, p.NumAttempts, done, score, c.Submissions, c.Rejected,
				p.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}

		fmt.Printf("\n%d records\n", len(records))
		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func init() {
	statsCmd.Flags().String("assessment", "", "Filter by assessment ID")
	statsCmd.Flags().String("learner", "", "Filter by learner ID")
}

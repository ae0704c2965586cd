package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a learner's progress in an assessment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		assessmentID, _ := cmd.Flags().GetString("assessment")
		if assessmentID == "" {
			return errors.New("--assessment is required")
		}
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

		learner := e.learnerID(cmd)
		found, err := st.ProgressRepo().Delete(cmd.Context(), assessmentID, learner)
		if err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		if !found {
			fmt.Printf("No progress stored for %s in %s.\n", learner, assessmentID)
			return nil
		}
		fmt.Printf("Progress of %s in %s deleted.\n", learner, assessmentID)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("assessment", "", "Assessment ID")
	resetCmd.Flags().String("learner", "", "Learner ID (default: config learner or the OS user)")
}

package cli

import (
	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/mansoorceksport/fitgauge/internal/engine"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newTiersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "Evaluate tier unlocks against personal records",
		Long: "Reads a JSON array of tiers and a JSON array of personal records " +
			"(exercise_id, weight, max_reps) and prints the tier evaluation.",
		Args: cobra.NoArgs,
		RunE: runTiers,
	}

	cmd.Flags().String("tiers", "", "Path to tiers JSON")
	cmd.Flags().String("records", "", "Path to personal records JSON (omit for a member with no records)")
	_ = cmd.MarkFlagRequired("tiers")

	return cmd
}

func runTiers(cmd *cobra.Command, args []string) error {
	tiersPath, _ := cmd.Flags().GetString("tiers")
	recordsPath, _ := cmd.Flags().GetString("records")

	var tiers []domain.Tier
	if err := readJSONFile(tiersPath, &tiers); err != nil {
		return err
	}
	var records []*domain.PersonalRecord
	if recordsPath != "" {
		if err := readJSONFile(recordsPath, &records); err != nil {
			return err
		}
	}

	eval := engine.EvaluateTiers(tiers, domain.RecordMap(records))
	if len(eval.DuplicateLevels) > 0 {
		log.WithField("levels", eval.DuplicateLevels).Warn("tier configuration has duplicate levels")
	}
	return writeJSON(cmd, eval)
}

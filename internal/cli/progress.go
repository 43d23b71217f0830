package cli

import (
	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/mansoorceksport/fitgauge/internal/engine"
	"github.com/spf13/cobra"
)

func newProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Compute progress percentage and band for a goal",
		Args:  cobra.NoArgs,
		RunE:  runProgress,
	}

	cmd.Flags().Float64("current", 0, "Current value")
	cmd.Flags().Float64("target", 0, "Target value")
	cmd.Flags().Float64("fallback", 0, "Target used when --target is not positive")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func runProgress(cmd *cobra.Command, args []string) error {
	current, _ := cmd.Flags().GetFloat64("current")
	target, _ := cmd.Flags().GetFloat64("target")
	fallback, _ := cmd.Flags().GetFloat64("fallback")

	evaluator := engine.ProgressEvaluator{FallbackTarget: fallback}
	return writeJSON(cmd, evaluator.Evaluate(domain.MetricGoal{Current: current, Target: target}))
}

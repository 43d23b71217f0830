package cli

import (
	"strings"

	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/mansoorceksport/fitgauge/internal/engine"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Rank a food catalog against a query",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSearch,
	}

	cmd.Flags().String("catalog", "", "Path to food catalog JSON")
	cmd.Flags().IntP("limit", "l", engine.DefaultLimit, "Max results")
	_ = cmd.MarkFlagRequired("catalog")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	catalogPath, _ := cmd.Flags().GetString("catalog")
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	var foods []domain.FoodItem
	if err := readJSONFile(catalogPath, &foods); err != nil {
		return err
	}
	return writeJSON(cmd, engine.Rank(foods, query, limit))
}

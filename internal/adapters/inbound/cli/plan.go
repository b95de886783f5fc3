package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mongoshift/mongoshift/internal/adapters/outbound/history"
	"github.com/mongoshift/mongoshift/internal/adapters/outbound/tui"
)

func newPlanCmd() *cobra.Command {
	var (
		jsonOutput  bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "plan [path]",
		Short: "Produce a MongoDB migration plan",
		Long:  "Run the full planning pipeline: scan the repository, request migration advice, assemble a structurally complete plan and estimate per-file impact.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(args)
			if err != nil {
				return err
			}

			if showHistory {
				entries, err := history.New().Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			result, err := newPipelineService().Run(cmd.Context(), absPath)
			if err != nil {
				return fmt.Errorf("planning failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, result)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPlan(result.Plan))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output plan as JSON")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show recorded pipeline runs")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mongoshift/mongoshift/internal/adapters/outbound/tui"
)

func newImpactCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "impact [path]",
		Short: "Estimate the migration's per-file impact",
		Long:  "Run the planning pipeline and report which files need changes, their complexity and the estimated effort in hours.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(args)
			if err != nil {
				return err
			}

			result, err := newPipelineService().Run(cmd.Context(), absPath)
			if err != nil {
				return fmt.Errorf("impact estimation failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, result.Impact)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderImpact(result.Impact))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output impact report as JSON")

	return cmd
}

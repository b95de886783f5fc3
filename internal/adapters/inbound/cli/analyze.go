package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mongoshift/mongoshift/internal/adapters/outbound/tui"
)

func newAnalyzeCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Scan a Java repository's persistence layer",
		Long:  "Scan a Java repository for JPA entities, repository interfaces, database configuration files and entity relationships.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(args)
			if err != nil {
				return err
			}

			analysis, err := newAnalyzeService().Analyze(absPath)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, analysis)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderAnalysis(analysis))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output analysis as JSON")

	return cmd
}

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mongoshift/mongoshift/internal/adapters/outbound/export"
)

func newExportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Export the migration plan as files",
		Long:  "Run the planning pipeline and write the plan summary, MongoDB schema, code transformations, migration steps and impact analysis to a directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(args)
			if err != nil {
				return err
			}

			result, err := newPipelineService().Run(cmd.Context(), absPath)
			if err != nil {
				return fmt.Errorf("planning failed: %w", err)
			}

			dir := outDir
			if dir == "" {
				dir = result.Config.ExportDir
			}
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(absPath, dir)
			}

			written, err := export.NewWriter(dir).Write(*result.Plan, *result.Impact)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Migration plan exported to %s\n", dir)
			for _, f := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", filepath.Base(f))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "Export directory (defaults to export_dir from .mongoshift.yaml)")

	return cmd
}

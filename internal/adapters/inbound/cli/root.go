package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mongoshift",
		Short:         "Plan your JPA to MongoDB migration",
		Long:          "Mongoshift scans a Java repository's persistence layer and produces a reviewable MongoDB migration plan: schema design, code transformations, migration steps and a per-file impact estimate.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newPlanCmd())
	cmd.AddCommand(newImpactCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

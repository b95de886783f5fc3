package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mongoshift/mongoshift/internal/adapters/outbound/config"
	"github.com/mongoshift/mongoshift/internal/adapters/outbound/mongodb"
	"github.com/mongoshift/mongoshift/internal/adapters/outbound/tui"
)

func newValidateCmd() *cobra.Command {
	var (
		uri        string
		database   string
		checkOps   bool
		checkNames bool
	)

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate the target MongoDB deployment",
		Long:  "Check that the configured MongoDB deployment is reachable, optionally smoke-test basic operations and verify the proposed schema's collection names.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(args)
			if err != nil {
				return err
			}

			cfg, err := config.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if uri != "" {
				cfg.Mongo.URI = uri
			}
			if database != "" {
				cfg.Mongo.Database = database
			}
			if cfg.Mongo.URI == "" {
				return fmt.Errorf("no MongoDB URI configured: set mongodb.uri in .mongoshift.yaml or pass --uri")
			}

			validator := mongodb.NewValidator(cfg.Mongo)
			failed := false

			conn := validator.CheckConnection(cmd.Context())
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation("connection", conn))
			failed = failed || !conn.Success

			if checkOps && conn.Success {
				ops := validator.CheckOperations(cmd.Context(), cfg.Mongo.Database)
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation("operations", ops))
				failed = failed || !ops.Success
			}

			if checkNames {
				result, err := newPipelineService().Run(cmd.Context(), absPath)
				if err != nil {
					return fmt.Errorf("planning failed: %w", err)
				}
				schema := validator.CheckSchema(result.Plan.Schema)
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation("schema", schema))
				failed = failed || !schema.Success
			}

			if failed {
				return fmt.Errorf("validation failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&uri, "uri", "", "MongoDB connection URI (overrides .mongoshift.yaml)")
	cmd.Flags().StringVar(&database, "database", "", "Database for the operations smoke test")
	cmd.Flags().BoolVar(&checkOps, "ops", false, "Smoke-test insert, find, update and delete")
	cmd.Flags().BoolVar(&checkNames, "schema", false, "Verify the proposed schema's collection names")

	return cmd
}

package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mongoshift/mongoshift/internal/adapters/outbound/config"
	"github.com/mongoshift/mongoshift/internal/adapters/outbound/gitinfo"
	"github.com/mongoshift/mongoshift/internal/adapters/outbound/history"
	"github.com/mongoshift/mongoshift/internal/adapters/outbound/llm"
	"github.com/mongoshift/mongoshift/internal/adapters/outbound/scanner"
	"github.com/mongoshift/mongoshift/internal/application"
	"github.com/mongoshift/mongoshift/internal/domain"
)

func resolvePath(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return abs, nil
}

func newAnalyzeService() *application.AnalyzeService {
	return application.NewAnalyzeService(scanner.New(), config.New(), gitinfo.New())
}

func newPipelineService() *application.PipelineService {
	return application.NewPipelineService(
		scanner.New(),
		config.New(),
		func(cfg domain.LLMConfig) domain.Advisor { return llm.New(cfg) },
		history.New(),
		gitinfo.New(),
	)
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

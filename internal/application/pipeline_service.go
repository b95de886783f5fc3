package application

import (
	"context"
	"fmt"
	"time"

	"github.com/mongoshift/mongoshift/internal/domain"
	"github.com/mongoshift/mongoshift/internal/domain/planning"
)

// AdvisorFactory builds an advisor from the project's LLM settings. The
// settings are only known once config is loaded, so the pipeline receives
// a factory rather than a ready advisor.
type AdvisorFactory func(cfg domain.LLMConfig) domain.Advisor

// PipelineResult is the output of a full planning run.
type PipelineResult struct {
	Analysis *domain.Analysis      `json:"analysis"`
	Plan     *domain.MigrationPlan `json:"migration_plan"`
	Impact   *domain.ImpactReport  `json:"impact"`
	Config   domain.ProjectConfig  `json:"-"`
}

// PipelineService orchestrates the full planning pipeline:
// scan → advise → assemble plan → estimate impact → record run.
type PipelineService struct {
	scanner      domain.SourceScanner
	configLoader domain.ConfigLoader
	newAdvisor   AdvisorFactory
	history      domain.RunHistory
	git          GitInfo
}

func NewPipelineService(
	scanner domain.SourceScanner,
	configLoader domain.ConfigLoader,
	newAdvisor AdvisorFactory,
	history domain.RunHistory,
	git GitInfo,
) *PipelineService {
	return &PipelineService{
		scanner:      scanner,
		configLoader: configLoader,
		newAdvisor:   newAdvisor,
		history:      history,
		git:          git,
	}
}

func (s *PipelineService) Run(ctx context.Context, projectPath string) (*PipelineResult, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	analysis, err := s.scanner.Scan(projectPath, cfg.ExcludePaths...)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	if s.git != nil && s.git.IsGitRepo(projectPath) {
		if hash, err := s.git.CommitHash(projectPath); err == nil {
			analysis.CommitHash = hash
		}
	}

	// Advice never blocks the pipeline: a failed advisor call yields a
	// canned envelope and the assembler falls back to defaults.
	env := s.newAdvisor(cfg.LLM).Advise(ctx, analysis)

	plan := planning.BuildPlan(analysis, env)
	impact := EstimateImpact(analysis, &plan)

	if s.history != nil {
		entry := domain.RunEntry{
			Timestamp:      time.Now().UTC().Format(time.RFC3339),
			CommitHash:     analysis.CommitHash,
			Entities:       len(analysis.Entities),
			Repositories:   len(analysis.Repositories),
			Configurations: len(analysis.Configurations),
			EffortHours:    impact.Summary.EstimatedEffortHours,
		}
		// History is best effort; a failed write never fails the run.
		_ = s.history.Save(projectPath, entry)
	}

	return &PipelineResult{
		Analysis: analysis,
		Plan:     &plan,
		Impact:   impact,
		Config:   cfg,
	}, nil
}

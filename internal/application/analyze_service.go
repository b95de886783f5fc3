package application

import (
	"fmt"

	"github.com/mongoshift/mongoshift/internal/domain"
)

// GitInfo exposes commit information for the scanned project.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// AnalyzeService orchestrates the scan step on its own:
// load config → scan sources → stamp commit hash.
type AnalyzeService struct {
	scanner      domain.SourceScanner
	configLoader domain.ConfigLoader
	git          GitInfo
}

func NewAnalyzeService(scanner domain.SourceScanner, configLoader domain.ConfigLoader, git GitInfo) *AnalyzeService {
	return &AnalyzeService{
		scanner:      scanner,
		configLoader: configLoader,
		git:          git,
	}
}

func (s *AnalyzeService) Analyze(projectPath string) (*domain.Analysis, error) {
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

	return analysis, nil
}

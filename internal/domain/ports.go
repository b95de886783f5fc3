package domain

import "context"

// SourceScanner walks a Java repository and extracts its persistence
// structure.
type SourceScanner interface {
	Scan(rootPath string, excludePaths ...string) (*Analysis, error)
}

// Advisor obtains migration advice for a scanned repository. It never
// returns an error: a failed call yields an Envelope with
// Status == AdviceFailed so the pipeline can proceed on defaults.
type Advisor interface {
	Advise(ctx context.Context, analysis *Analysis) Envelope
}

// ConfigLoader loads project-level configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// RunEntry is one recorded pipeline run.
type RunEntry struct {
	Timestamp      string  `json:"timestamp"`
	CommitHash     string  `json:"commit_hash,omitempty"`
	Entities       int     `json:"entities"`
	Repositories   int     `json:"repositories"`
	Configurations int     `json:"configurations"`
	EffortHours    float64 `json:"effort_hours"`
}

// RunHistory records pipeline runs per project.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}

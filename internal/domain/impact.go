package domain

import "strings"

// Complexity is the coarse ordinal estimate of change difficulty for a file.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Change categories for impacted files.
const (
	ChangeEntity        = "entity"
	ChangeRepository    = "repository"
	ChangeConfiguration = "configuration"
)

// FileChange is one file's required edit.
type FileChange struct {
	FilePath    string     `json:"file_path"`
	ChangeType  string     `json:"change_type"`
	Description string     `json:"description"`
	Complexity  Complexity `json:"complexity"`
}

// ImpactSummary aggregates the impact analysis.
type ImpactSummary struct {
	TotalFiles           int     `json:"total_files"`
	EntityFiles          int     `json:"entity_files"`
	RepositoryFiles      int     `json:"repository_files"`
	ConfigurationFiles   int     `json:"configuration_files"`
	HighComplexity       int     `json:"high_complexity_changes"`
	MediumComplexity     int     `json:"medium_complexity_changes"`
	LowComplexity        int     `json:"low_complexity_changes"`
	EstimatedEffortHours float64 `json:"estimated_effort_hours"`
}

// ImpactReport holds the per-file changes plus the summary.
type ImpactReport struct {
	Files   []FileChange  `json:"impacted_files"`
	Summary ImpactSummary `json:"summary"`
}

// EntityComplexity applies the field-count rule, then the relationship
// rule. The relationship rule is evaluated second and overwrites the
// field-count result; this precedence is observed behavior and kept.
func EntityComplexity(e SourceEntity) Complexity {
	complexity := ComplexityLow
	if len(e.Fields) > 10 {
		complexity = ComplexityHigh
	} else if len(e.Fields) > 5 {
		complexity = ComplexityMedium
	}

	var rels int
	for _, f := range e.Fields {
		if f.IsRelationship {
			rels++
		}
	}
	if rels > 3 {
		complexity = ComplexityHigh
	} else if rels > 1 {
		complexity = ComplexityMedium
	}

	return complexity
}

// RepositoryComplexity scores a repository by method count and custom
// query count.
func RepositoryComplexity(r SourceRepository) Complexity {
	var queried int
	for _, m := range r.Methods {
		if m.Query != "" {
			queried++
		}
	}

	switch {
	case len(r.Methods) > 10 || queried > 5:
		return ComplexityHigh
	case len(r.Methods) > 5 || queried > 2:
		return ComplexityMedium
	default:
		return ComplexityLow
	}
}

// ConfigurationComplexity scores a configuration file by format and path.
// persistence.xml style files require the most rework; property files the
// least.
func ConfigurationComplexity(c SourceConfig) Complexity {
	if c.FileType == "xml" && strings.Contains(c.FilePath, "persistence") {
		return ComplexityHigh
	}
	switch c.FileType {
	case "properties", "yml", "yaml":
		return ComplexityLow
	}
	return ComplexityMedium
}

// EffortHours is the fixed-weight effort estimate over the complexity
// bucket counts: 4h per high, 2h per medium, 1h per low.
func EffortHours(high, medium, low int) float64 {
	return float64(high*4 + medium*2 + low*1)
}

package application

import (
	"os"
	"strings"

	"github.com/mongoshift/mongoshift/internal/domain"
)

// EstimateImpact derives the per-file change list and effort summary from
// a scanned analysis and its reconciled plan. Entity and repository files
// are re-read from disk to check which planned transformations apply;
// configuration files use the content captured at scan time.
func EstimateImpact(analysis *domain.Analysis, plan *domain.MigrationPlan) *domain.ImpactReport {
	var files []domain.FileChange

	entityTransforms := transformsFor(plan, "entity", "model")
	for _, e := range analysis.Entities {
		files = append(files, domain.FileChange{
			FilePath:    e.FilePath,
			ChangeType:  domain.ChangeEntity,
			Description: "Convert JPA entity to MongoDB document. " + appliedChanges(entityTransforms, readFileQuiet(e.FilePath)),
			Complexity:  domain.EntityComplexity(e),
		})
	}

	repoTransforms := transformsFor(plan, "repository", "dao")
	for _, r := range analysis.Repositories {
		files = append(files, domain.FileChange{
			FilePath:    r.FilePath,
			ChangeType:  domain.ChangeRepository,
			Description: "Convert JPA repository to MongoDB repository. " + appliedChanges(repoTransforms, readFileQuiet(r.FilePath)),
			Complexity:  domain.RepositoryComplexity(r),
		})
	}

	configTransforms := transformsFor(plan, "configuration", "config", "properties", "application")
	for _, c := range analysis.Configurations {
		files = append(files, domain.FileChange{
			FilePath:    c.FilePath,
			ChangeType:  domain.ChangeConfiguration,
			Description: "Update database configuration for MongoDB. " + appliedChanges(configTransforms, c.Content),
			Complexity:  domain.ConfigurationComplexity(c),
		})
	}

	return &domain.ImpactReport{
		Files:   files,
		Summary: summarizeImpact(files),
	}
}

func summarizeImpact(files []domain.FileChange) domain.ImpactSummary {
	var s domain.ImpactSummary
	s.TotalFiles = len(files)

	for _, f := range files {
		switch f.ChangeType {
		case domain.ChangeEntity:
			s.EntityFiles++
		case domain.ChangeRepository:
			s.RepositoryFiles++
		case domain.ChangeConfiguration:
			s.ConfigurationFiles++
		}
		switch f.Complexity {
		case domain.ComplexityHigh:
			s.HighComplexity++
		case domain.ComplexityMedium:
			s.MediumComplexity++
		case domain.ComplexityLow:
			s.LowComplexity++
		}
	}

	s.EstimatedEffortHours = domain.EffortHours(s.HighComplexity, s.MediumComplexity, s.LowComplexity)
	return s
}

func transformsFor(plan *domain.MigrationPlan, fileTypes ...string) []domain.CodeTransformation {
	var out []domain.CodeTransformation
	for _, t := range plan.Transformations {
		lower := strings.ToLower(t.FileType)
		for _, ft := range fileTypes {
			if lower == ft {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// appliedChanges lists the planned replacements whose original code is
// actually present in the file's content.
func appliedChanges(transforms []domain.CodeTransformation, content string) string {
	var clauses []string
	for _, t := range transforms {
		if t.OriginalCode != "" && strings.Contains(content, t.OriginalCode) {
			clauses = append(clauses, "Replace '"+t.OriginalCode+"' with '"+t.TransformedCode+"'")
		}
	}
	return strings.Join(clauses, " ")
}

func readFileQuiet(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

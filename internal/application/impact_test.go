package application_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mongoshift/mongoshift/internal/application"
	"github.com/mongoshift/mongoshift/internal/domain"
)

func TestEstimateImpact_AppliedTransformationsListedInDescription(t *testing.T) {
	dir := t.TempDir()
	entityPath := filepath.Join(dir, "Owner.java")
	require.NoError(t, os.WriteFile(entityPath, []byte("@Entity\npublic class Owner {}\n"), 0644))

	analysis := &domain.Analysis{
		Entities: []domain.SourceEntity{{Name: "Owner", FilePath: entityPath}},
	}
	plan := &domain.MigrationPlan{
		Transformations: []domain.CodeTransformation{
			{FileType: "Entity", OriginalCode: "@Entity", TransformedCode: "@Document"},
			{FileType: "Entity", OriginalCode: "@Column", TransformedCode: "@Field"},
		},
	}

	report := application.EstimateImpact(analysis, plan)

	require.Len(t, report.Files, 1)
	desc := report.Files[0].Description
	assert.Contains(t, desc, "Convert JPA entity to MongoDB document.")
	assert.Contains(t, desc, "Replace '@Entity' with '@Document'")
	assert.NotContains(t, desc, "@Column", "transformations absent from the file are not listed")
}

func TestEstimateImpact_ConfigurationUsesCapturedContent(t *testing.T) {
	analysis := &domain.Analysis{
		Configurations: []domain.SourceConfig{
			{
				FilePath: "/nonexistent/application.properties",
				FileType: "properties",
				Content:  "spring.datasource.url=jdbc:mysql://localhost/db",
			},
		},
	}
	plan := &domain.MigrationPlan{
		Transformations: []domain.CodeTransformation{
			{FileType: "Configuration", OriginalCode: "spring.datasource.url", TransformedCode: "spring.data.mongodb.uri"},
		},
	}

	report := application.EstimateImpact(analysis, plan)

	require.Len(t, report.Files, 1)
	assert.Equal(t, domain.ChangeConfiguration, report.Files[0].ChangeType)
	assert.Equal(t, domain.ComplexityLow, report.Files[0].Complexity)
	assert.Contains(t, report.Files[0].Description, "Replace 'spring.datasource.url' with 'spring.data.mongodb.uri'")
}

func TestEstimateImpact_SummaryCounts(t *testing.T) {
	analysis := &domain.Analysis{
		Entities: []domain.SourceEntity{
			{Name: "Big", Fields: make([]domain.SourceField, 11)},
			{Name: "Small", Fields: make([]domain.SourceField, 2)},
		},
		Repositories: []domain.SourceRepository{
			{Name: "SmallRepository"},
		},
		Configurations: []domain.SourceConfig{
			{FilePath: "META-INF/persistence.xml", FileType: "xml"},
		},
	}
	plan := &domain.MigrationPlan{}

	report := application.EstimateImpact(analysis, plan)

	s := report.Summary
	assert.Equal(t, 4, s.TotalFiles)
	assert.Equal(t, 2, s.EntityFiles)
	assert.Equal(t, 1, s.RepositoryFiles)
	assert.Equal(t, 1, s.ConfigurationFiles)
	assert.Equal(t, 2, s.HighComplexity, "11-field entity and persistence.xml")
	assert.Equal(t, 0, s.MediumComplexity)
	assert.Equal(t, 2, s.LowComplexity)
	assert.Equal(t, domain.EffortHours(2, 0, 2), s.EstimatedEffortHours)
}

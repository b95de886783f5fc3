package export_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mongoshift/mongoshift/internal/adapters/outbound/export"
	"github.com/mongoshift/mongoshift/internal/domain"
)

func samplePlan() domain.MigrationPlan {
	return domain.MigrationPlan{
		Schema: domain.Schema{
			Collections: []domain.Collection{
				{Name: "owners", Fields: []domain.CollectionField{{Name: "_id", Type: "ObjectId"}}},
			},
			EmbeddingStrategy: "Embed pets within owners.",
		},
		Transformations: []domain.CodeTransformation{
			{
				FileType:        "Entity",
				OriginalCode:    "@Entity\n@Table(name = \"owners\")",
				TransformedCode: "@Document(collection = \"owners\")",
				Explanation:     "Swap JPA annotations for MongoDB ones",
			},
		},
		Steps: []domain.MigrationStep{
			{Number: 1, Title: "Set up MongoDB", Description: "Install the server.", CodeExample: "brew install mongodb-community"},
			{Number: 2, Title: "Update dependencies", Description: "Swap JPA for Spring Data MongoDB."},
		},
		Concepts: []domain.Concept{
			{Name: "Document Model", Description: "JSON-like documents.", Relevance: "Core concept"},
		},
		Summary: "# Migration Plan Summary\n\nTwo collections, one transformation.",
	}
}

func sampleImpact() domain.ImpactReport {
	return domain.ImpactReport{
		Files: []domain.FileChange{
			{
				FilePath:    "/repo/src/main/java/Owner.java",
				ChangeType:  domain.ChangeEntity,
				Description: "Convert JPA entity to MongoDB document.",
				Complexity:  domain.ComplexityMedium,
			},
		},
		Summary: domain.ImpactSummary{
			TotalFiles:           1,
			EntityFiles:          1,
			MediumComplexity:     1,
			EstimatedEffortHours: 2,
		},
	}
}

func TestWrite_ProducesAllArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plan")

	written, err := export.NewWriter(dir).Write(samplePlan(), sampleImpact())
	require.NoError(t, err)
	require.Len(t, written, 5)

	for _, name := range []string{
		export.SummaryFile,
		export.SchemaFile,
		export.TransformationsFile,
		export.StepsFile,
		export.ImpactFile,
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected %s to exist", name)
	}
}

func TestWrite_SchemaIsValidJSON(t *testing.T) {
	dir := t.TempDir()

	_, err := export.NewWriter(dir).Write(samplePlan(), sampleImpact())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, export.SchemaFile))
	require.NoError(t, err)

	var schema domain.Schema
	require.NoError(t, json.Unmarshal(data, &schema))
	require.Len(t, schema.Collections, 1)
	assert.Equal(t, "owners", schema.Collections[0].Name)
	assert.Equal(t, "Embed pets within owners.", schema.EmbeddingStrategy)
}

func TestWrite_TransformationsIncludeDiff(t *testing.T) {
	dir := t.TempDir()

	_, err := export.NewWriter(dir).Write(samplePlan(), sampleImpact())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, export.TransformationsFile))
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "# Code Transformations")
	assert.Contains(t, content, "## Transformation 1: Entity")
	assert.Contains(t, content, "```diff")
	assert.Contains(t, content, "-@Entity")
	assert.Contains(t, content, "+@Document(collection = \"owners\")")
}

func TestWrite_StepsAndImpact(t *testing.T) {
	dir := t.TempDir()

	_, err := export.NewWriter(dir).Write(samplePlan(), sampleImpact())
	require.NoError(t, err)

	steps, err := os.ReadFile(filepath.Join(dir, export.StepsFile))
	require.NoError(t, err)
	assert.Contains(t, string(steps), "## Step 1: Set up MongoDB")
	assert.Contains(t, string(steps), "brew install mongodb-community")

	impact, err := os.ReadFile(filepath.Join(dir, export.ImpactFile))
	require.NoError(t, err)
	assert.Contains(t, string(impact), "**Total Files Impacted**: 1")
	assert.Contains(t, string(impact), "**Estimated Effort (hours)**: 2")
	assert.Contains(t, string(impact), "### Owner.java")
}

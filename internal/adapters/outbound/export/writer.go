// Package export writes a migration plan and impact report to disk as a
// set of reviewable artifacts: a summary, a schema JSON file and three
// markdown reports.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/mongoshift/mongoshift/internal/domain"
)

// Artifact filenames written into the export directory.
const (
	SummaryFile         = "migration_plan_summary.md"
	SchemaFile          = "mongodb_schema.json"
	TransformationsFile = "code_transformations.md"
	StepsFile           = "migration_steps.md"
	ImpactFile          = "file_impact_analysis.md"
)

// Writer renders plan artifacts under a target directory.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write renders all artifacts. It creates the directory if needed and
// returns the paths of the files written.
func (w *Writer) Write(plan domain.MigrationPlan, impact domain.ImpactReport) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	files := []struct {
		name    string
		content func() ([]byte, error)
	}{
		{SummaryFile, func() ([]byte, error) { return []byte(plan.Summary), nil }},
		{SchemaFile, func() ([]byte, error) { return renderSchema(plan.Schema) }},
		{TransformationsFile, func() ([]byte, error) { return renderTransformations(plan.Transformations), nil }},
		{StepsFile, func() ([]byte, error) { return renderSteps(plan.Steps), nil }},
		{ImpactFile, func() ([]byte, error) { return renderImpact(impact), nil }},
	}

	var written []string
	for _, f := range files {
		data, err := f.content()
		if err != nil {
			return written, fmt.Errorf("render %s: %w", f.name, err)
		}
		path := filepath.Join(w.dir, f.name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", f.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func renderSchema(schema domain.Schema) ([]byte, error) {
	return json.MarshalIndent(schema, "", "  ")
}

func renderTransformations(transformations []domain.CodeTransformation) []byte {
	var b strings.Builder
	b.WriteString("# Code Transformations\n\n")

	for i, t := range transformations {
		fmt.Fprintf(&b, "## Transformation %d: %s\n\n", i+1, t.FileType)
		fmt.Fprintf(&b, "**Explanation**: %s\n\n", t.Explanation)
		b.WriteString("**Original Code**:\n```java\n")
		b.WriteString(t.OriginalCode)
		b.WriteString("\n```\n\n")
		b.WriteString("**Transformed Code**:\n```java\n")
		b.WriteString(t.TransformedCode)
		b.WriteString("\n```\n\n")
		if diff := unifiedDiff(t); diff != "" {
			b.WriteString("**Diff**:\n```diff\n")
			b.WriteString(diff)
			b.WriteString("```\n\n")
		}
		b.WriteString("---\n\n")
	}
	return []byte(b.String())
}

func unifiedDiff(t domain.CodeTransformation) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(t.OriginalCode),
		B:        difflib.SplitLines(t.TransformedCode),
		FromFile: "original",
		ToFile:   "transformed",
		Context:  3,
	})
	if err != nil {
		return ""
	}
	return diff
}

func renderSteps(steps []domain.MigrationStep) []byte {
	var b strings.Builder
	b.WriteString("# Migration Steps\n\n")

	for _, s := range steps {
		fmt.Fprintf(&b, "## Step %d: %s\n\n", s.Number, s.Title)
		fmt.Fprintf(&b, "%s\n\n", s.Description)
		if s.CodeExample != "" {
			b.WriteString("```java\n")
			b.WriteString(s.CodeExample)
			b.WriteString("\n```\n\n")
		}
		b.WriteString("---\n\n")
	}
	return []byte(b.String())
}

func renderImpact(impact domain.ImpactReport) []byte {
	var b strings.Builder
	s := impact.Summary

	b.WriteString("# File Impact Analysis\n\n")
	fmt.Fprintf(&b, "**Total Files Impacted**: %d\n", s.TotalFiles)
	fmt.Fprintf(&b, "**Entity Files**: %d\n", s.EntityFiles)
	fmt.Fprintf(&b, "**Repository Files**: %d\n", s.RepositoryFiles)
	fmt.Fprintf(&b, "**Configuration Files**: %d\n\n", s.ConfigurationFiles)

	b.WriteString("## Complexity Breakdown\n\n")
	fmt.Fprintf(&b, "- **High Complexity**: %d\n", s.HighComplexity)
	fmt.Fprintf(&b, "- **Medium Complexity**: %d\n", s.MediumComplexity)
	fmt.Fprintf(&b, "- **Low Complexity**: %d\n\n", s.LowComplexity)

	fmt.Fprintf(&b, "**Estimated Effort (hours)**: %g\n\n", s.EstimatedEffortHours)

	b.WriteString("## Impacted Files\n\n")
	for _, fc := range impact.Files {
		fmt.Fprintf(&b, "### %s\n\n", filepath.Base(fc.FilePath))
		fmt.Fprintf(&b, "- **File**: `%s`\n", fc.FilePath)
		fmt.Fprintf(&b, "- **Change Type**: %s\n", fc.ChangeType)
		fmt.Fprintf(&b, "- **Complexity**: %s\n", fc.Complexity)
		fmt.Fprintf(&b, "- **Description**: %s\n\n", fc.Description)
		b.WriteString("---\n\n")
	}
	return []byte(b.String())
}

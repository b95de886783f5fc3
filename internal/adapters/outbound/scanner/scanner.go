// Package scanner implements domain.SourceScanner by walking a Java
// source tree and extracting its persistence structure with per-file
// regular-expression passes.
//
// The extraction is intentionally shallow: there is no tokenizer and no
// symbol table. Type-level annotations are collected file-wide rather
// than scoped to the declaration they decorate, and multi-line field
// declarations are not matched. Consumers treat the results as advisory
// hints, not ground truth.
package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mongoshift/mongoshift/internal/domain"
)

var skipDirs = map[string]bool{
	"target":       true,
	"build":        true,
	"node_modules": true,
	".git":         true,
}

var sourceExtensions = map[string]bool{
	".java":       true,
	".xml":        true,
	".properties": true,
	".yml":        true,
	".yaml":       true,
}

// Config files are admitted by basename first, then by content keywords.
var (
	configNamePatterns = []string{
		"persistence.xml",
		"application.properties",
		"application.yml",
		"hibernate.cfg.xml",
		"database",
		"datasource",
	}
	configContentPatterns = []string{
		"jdbc", "datasource", "database", "hibernate", "jpa",
		"spring.datasource", "persistence-unit",
	}
)

// JavaScanner implements domain.SourceScanner.
type JavaScanner struct{}

func New() *JavaScanner {
	return &JavaScanner{}
}

// fileRecord is the classification of a single file. Scan folds records
// into an Analysis; classification itself holds no shared state, so the
// walk could fan out across files without changing results.
type fileRecord struct {
	entity     *domain.SourceEntity
	repository *domain.SourceRepository
	config     *domain.SourceConfig
}

// Scan walks rootPath and reduces per-file classifications into an
// Analysis. The walk is lexical, so scanning the same immutable tree
// twice yields identical results.
func (s *JavaScanner) Scan(rootPath string, excludePaths ...string) (*domain.Analysis, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, err
	}

	extraSkip := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	analysis := &domain.Analysis{RootPath: absPath}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] || extraSkip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !sourceExtensions[filepath.Ext(d.Name())] {
			return nil
		}

		record := classifyFile(path)
		switch {
		case record.entity != nil:
			analysis.Entities = append(analysis.Entities, *record.entity)
		case record.repository != nil:
			analysis.Repositories = append(analysis.Repositories, *record.repository)
		case record.config != nil:
			analysis.Configurations = append(analysis.Configurations, *record.config)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	analysis.Relationships = extractRelationships(analysis.Entities)
	return analysis, nil
}

// classifyFile reads and classifies one file. Unreadable or undecodable
// files yield an empty record; no error is surfaced.
func classifyFile(path string) fileRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileRecord{}
	}

	if filepath.Ext(path) == ".java" {
		content := string(data)
		if isEntity(content) {
			e := parseEntity(content, path)
			return fileRecord{entity: &e}
		}
		if isRepository(content) {
			r := parseRepository(content, path)
			return fileRecord{repository: &r}
		}
		return fileRecord{}
	}

	// Non-code files become configuration candidates only when they
	// decode as text.
	if !utf8.Valid(data) {
		return fileRecord{}
	}
	content := string(data)
	if !isStorageConfig(path, content) {
		return fileRecord{}
	}
	return fileRecord{config: &domain.SourceConfig{
		FilePath: path,
		FileType: strings.TrimPrefix(filepath.Ext(path), "."),
		Content:  content,
	}}
}

func isStorageConfig(path, content string) bool {
	name := strings.ToLower(filepath.Base(path))
	for _, pattern := range configNamePatterns {
		if strings.Contains(name, pattern) {
			return true
		}
	}
	lower := strings.ToLower(content)
	for _, pattern := range configContentPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// extractRelationships derives directed associations from fields that
// carry both a relationship kind and a resolvable target entity name.
// Fields with an unresolvable target are dropped.
func extractRelationships(entities []domain.SourceEntity) []domain.Relationship {
	var relationships []domain.Relationship
	for _, entity := range entities {
		for _, field := range entity.Fields {
			if field.IsRelationship && field.TargetEntity != "" {
				relationships = append(relationships, domain.Relationship{
					SourceEntity: entity.Name,
					TargetEntity: field.TargetEntity,
					Kind:         field.RelationshipKind,
					SourceField:  field.Name,
				})
			}
		}
	}
	return relationships
}

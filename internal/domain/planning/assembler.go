// Package planning reconciles advisor envelopes against the scanned
// repository structure into a migration plan that is always structurally
// complete: any section the envelope cannot fill is derived from the scan
// or injected from canonical defaults.
package planning

import (
	"fmt"
	"strings"

	"github.com/mongoshift/mongoshift/internal/domain"
)

// BuildPlan turns an envelope plus the original analysis into a complete
// MigrationPlan. Preference order per section: structured envelope data,
// then free-text heuristics, then defaults.
func BuildPlan(analysis *domain.Analysis, env domain.Envelope) domain.MigrationPlan {
	schema := reconcileSchema(analysis, env.Schema)
	transformations := reconcileTransformations(env.Transformations)
	steps := reconcileSteps(env.Steps)
	concepts := reconcileConcepts(env.Concepts)

	return domain.MigrationPlan{
		Schema:          schema,
		Transformations: transformations,
		Steps:           steps,
		Concepts:        concepts,
		Summary:         summarize(schema, transformations, steps),
		AdviceStatus:    env.Status,
		AdviceReason:    env.Reason,
	}
}

func reconcileSchema(analysis *domain.Analysis, advice domain.SchemaAdvice) domain.Schema {
	var collections []domain.Collection
	embedding := advice.EmbeddingStrategy
	indexing := advice.IndexingStrategy

	switch {
	case len(advice.Collections) > 0:
		for _, c := range advice.Collections {
			collections = append(collections, collectionFromAdvice(c))
		}
	case advice.Description != "":
		collections = collectionsFromText(advice.Description)
		if embedding == "" {
			embedding = strategyFromText(advice.Description, "embedding")
		}
		if indexing == "" {
			indexing = strategyFromText(advice.Description, "indexing")
		}
	}

	if len(collections) == 0 {
		collections = defaultCollections(analysis)
	}
	if embedding == "" {
		embedding = defaultEmbeddingStrategy(analysis.Relationships)
	}

	return domain.Schema{
		Collections:       collections,
		EmbeddingStrategy: embedding,
		IndexingStrategy:  indexing,
	}
}

func collectionFromAdvice(c domain.CollectionAdvice) domain.Collection {
	col := domain.Collection{Name: c.Name, Indexes: c.Indexes}
	for _, f := range c.Fields {
		col.Fields = append(col.Fields, domain.CollectionField{
			Name:        f.Name,
			Type:        f.Type,
			Description: f.Description,
		})
	}
	return col
}

func reconcileTransformations(advice []domain.TransformationAdvice) []domain.CodeTransformation {
	var transformations []domain.CodeTransformation

	for _, item := range advice {
		switch {
		case item.File != "" && len(item.Changes) > 0:
			for _, change := range item.Changes {
				explanation := change.Explanation
				if explanation == "" {
					explanation = "No explanation provided"
				}
				transformations = append(transformations, domain.CodeTransformation{
					FileType:        item.File,
					OriginalCode:    change.From,
					TransformedCode: change.To,
					Explanation:     explanation,
				})
			}
		case item.Description != "":
			fileType, original, transformed := parseTransformationText(item.Description)
			transformations = append(transformations, domain.CodeTransformation{
				FileType:        fileType,
				OriginalCode:    original,
				TransformedCode: transformed,
				Explanation:     item.Description,
			})
		}
	}

	if len(transformations) == 0 {
		transformations = defaultTransformations()
	}
	return transformations
}

func reconcileSteps(advice []domain.StepAdvice) []domain.MigrationStep {
	var steps []domain.MigrationStep

	for i, item := range advice {
		switch {
		case item.Step > 0 && item.Title != "" && item.Description != "":
			steps = append(steps, domain.MigrationStep{
				Number:      item.Step,
				Title:       item.Title,
				Description: item.Description,
				CodeExample: item.CodeExample,
			})
		case item.Description != "":
			title := item.Description
			if idx := strings.Index(title, "."); idx >= 0 {
				title = title[:idx]
			}
			steps = append(steps, domain.MigrationStep{
				Number:      i + 1,
				Title:       title,
				Description: item.Description,
			})
		}
	}

	if len(steps) == 0 {
		steps = defaultSteps()
	}
	return steps
}

func reconcileConcepts(advice []domain.ConceptAdvice) []domain.Concept {
	var concepts []domain.Concept

	for _, item := range advice {
		switch {
		case item.Concept != "" && item.Description != "":
			relevance := item.Relevance
			if relevance == "" {
				relevance = "General MongoDB concept"
			}
			concepts = append(concepts, domain.Concept{
				Name:        item.Concept,
				Description: item.Description,
				Relevance:   relevance,
			})
		case item.Description != "":
			name := item.Description
			if idx := strings.Index(name, ":"); idx >= 0 {
				name = name[:idx]
			} else if idx := strings.Index(name, " "); idx >= 0 {
				name = name[:idx]
			}
			concepts = append(concepts, domain.Concept{
				Name:        name,
				Description: item.Description,
				Relevance:   "Extracted from advisor response",
			})
		}
	}

	if len(concepts) == 0 {
		concepts = defaultConcepts()
	}
	return concepts
}

func summarize(schema domain.Schema, transformations []domain.CodeTransformation, steps []domain.MigrationStep) string {
	return fmt.Sprintf(`# Migration Plan Summary

This migration plan will convert your Java application from a relational database to MongoDB.

## Overview
- %d MongoDB collections will be created
- %d code transformations are required
- The migration process consists of %d steps

## Key Changes
- Entity classes will be converted to MongoDB documents
- JPA repositories will be replaced with MongoDB repositories
- Database configuration will be updated for MongoDB

## Embedding Strategy
%s

Follow the step-by-step migration process to complete the transition to MongoDB.
`, len(schema.Collections), len(transformations), len(steps), schema.EmbeddingStrategy)
}

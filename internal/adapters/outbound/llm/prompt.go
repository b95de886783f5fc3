package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mongoshift/mongoshift/internal/domain"
)

// promptEntity mirrors the entity shape serialized into the prompt.
// Optional markers are only present when set, keeping the prompt compact.
type promptEntity struct {
	Name        string        `json:"name"`
	Annotations []string      `json:"annotations"`
	Fields      []promptField `json:"fields"`
	TableName   string        `json:"table_name,omitempty"`
}

type promptField struct {
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Annotations      []string `json:"annotations"`
	IsID             bool     `json:"is_id,omitempty"`
	IsRelationship   bool     `json:"is_relationship,omitempty"`
	RelationshipKind string   `json:"relationship_type,omitempty"`
	TargetEntity     string   `json:"target_entity,omitempty"`
}

type promptRepository struct {
	Name    string         `json:"name"`
	Entity  string         `json:"entity"`
	Extends []string       `json:"extends"`
	Methods []promptMethod `json:"methods"`
}

type promptMethod struct {
	Name       string             `json:"name"`
	ReturnType string             `json:"return_type"`
	Parameters []domain.Parameter `json:"parameters"`
	Query      string             `json:"query,omitempty"`
}

// BuildPrompt serializes the scanned structure into the migration prompt.
// The prompt is deterministic for a given analysis.
func BuildPrompt(analysis *domain.Analysis) string {
	entities := make([]promptEntity, 0, len(analysis.Entities))
	for _, e := range analysis.Entities {
		pe := promptEntity{
			Name:        e.Name,
			Annotations: e.Annotations,
			TableName:   e.TableName,
		}
		for _, f := range e.Fields {
			pe.Fields = append(pe.Fields, promptField{
				Name:             f.Name,
				Type:             f.Type,
				Annotations:      f.Annotations,
				IsID:             f.IsID,
				IsRelationship:   f.IsRelationship,
				RelationshipKind: f.RelationshipKind,
				TargetEntity:     f.TargetEntity,
			})
		}
		entities = append(entities, pe)
	}

	repositories := make([]promptRepository, 0, len(analysis.Repositories))
	for _, r := range analysis.Repositories {
		pr := promptRepository{
			Name:    r.Name,
			Entity:  r.EntityName,
			Extends: r.Extends,
		}
		for _, m := range r.Methods {
			pr.Methods = append(pr.Methods, promptMethod{
				Name:       m.Name,
				ReturnType: m.ReturnType,
				Parameters: m.Parameters,
				Query:      m.Query,
			})
		}
		repositories = append(repositories, pr)
	}

	entitiesJSON, _ := json.MarshalIndent(entities, "", "  ")
	repositoriesJSON, _ := json.MarshalIndent(repositories, "", "  ")

	var configPaths []string
	for _, c := range analysis.Configurations {
		configPaths = append(configPaths, c.FilePath)
	}

	var relations []string
	for _, rel := range analysis.Relationships {
		relations = append(relations, fmt.Sprintf("(%s, %s, %s)", rel.SourceEntity, rel.Kind, rel.TargetEntity))
	}

	return fmt.Sprintf(`You are an expert Java developer specializing in database migrations from relational databases to MongoDB.
Your task is to analyze the following Java application components and create a detailed migration plan.

# Application Analysis

## Entities
%s

## Repositories
%s

## Database Configurations
[%s]

## Entity Relationships
[%s]

# Migration Task

Create a comprehensive plan to migrate this application from a relational database to MongoDB.
Your response should include:

1. MongoDB Schema Design:
   - Document structure for each entity
   - Embedding vs. referencing decisions
   - Indexing recommendations

2. Code Transformations:
   - Changes needed for entity classes (JPA to MongoDB annotations)
   - Repository interface modifications
   - Configuration changes

3. Step-by-Step Migration Process:
   - Data migration approach
   - Code refactoring sequence
   - Testing strategy

4. MongoDB Concepts:
   - Explain relevant MongoDB concepts for this specific migration
   - Best practices for the migration

Format your response as a structured JSON with the following sections:
- mongodb_schema
- code_transformations
- migration_steps
- mongodb_concepts

Ensure your recommendations follow MongoDB best practices and maintain the application's functionality.
`, entitiesJSON, repositoriesJSON, strings.Join(configPaths, ", "), strings.Join(relations, ", "))
}

package planning

import (
	"fmt"
	"strings"

	"github.com/mongoshift/mongoshift/internal/domain"
)

// defaultCollections synthesizes one collection per scanned entity with
// one field per scanned field, types inferred from the Java declaration.
func defaultCollections(analysis *domain.Analysis) []domain.Collection {
	var collections []domain.Collection

	for _, entity := range analysis.Entities {
		col := domain.Collection{Name: strings.ToLower(entity.Name) + "s"}
		for _, field := range entity.Fields {
			col.Fields = append(col.Fields, domain.CollectionField{
				Name:        field.Name,
				Type:        javaFieldType(field),
				Description: fmt.Sprintf("From %s.%s", entity.Name, field.Name),
			})
		}
		collections = append(collections, col)
	}

	return collections
}

func javaFieldType(field domain.SourceField) string {
	lower := strings.ToLower(field.Type)
	switch {
	case field.IsID:
		return "ObjectId"
	case strings.Contains(lower, "int") || strings.Contains(lower, "long"):
		return "Number"
	case strings.Contains(lower, "date") || strings.Contains(lower, "time"):
		return "Date"
	case strings.Contains(lower, "list") || strings.Contains(lower, "set"):
		return "Array"
	default:
		return "String"
	}
}

// defaultEmbeddingStrategy derives a strategy sentence from the extracted
// relationship kinds: one-to-many pairs become embed recommendations,
// many-to-many pairs become reference recommendations.
func defaultEmbeddingStrategy(relationships []domain.Relationship) string {
	var embeds, refs []string
	for _, rel := range relationships {
		switch rel.Kind {
		case domain.RelOneToMany:
			embeds = append(embeds, fmt.Sprintf("%s within %s", rel.TargetEntity, rel.SourceEntity))
		case domain.RelManyToMany:
			refs = append(refs, fmt.Sprintf("%s and %s", rel.SourceEntity, rel.TargetEntity))
		}
	}

	var parts []string
	if len(embeds) > 0 {
		parts = append(parts, fmt.Sprintf("Embed %s for better read performance.", strings.Join(embeds, ", ")))
	}
	if len(refs) > 0 {
		parts = append(parts, fmt.Sprintf("Use references between %s to avoid duplication.", strings.Join(refs, ", ")))
	}
	if len(parts) == 0 {
		parts = append(parts, "Use embedding for entities with strong parent-child relationships and referencing for many-to-many relationships.")
	}

	return strings.Join(parts, " ")
}

// defaultTransformations returns the five canonical code transformations
// injected when the envelope yields none.
func defaultTransformations() []domain.CodeTransformation {
	return []domain.CodeTransformation{
		{
			FileType:        "Entity",
			OriginalCode:    "@Entity\n@Table(name = \"table_name\")",
			TransformedCode: "@Document(collection = \"collection_name\")",
			Explanation:     "Replace JPA entity annotations with MongoDB document annotations",
		},
		{
			FileType:        "Entity",
			OriginalCode:    "@Id\n@GeneratedValue(strategy = GenerationType.AUTO)\nprivate Long id;",
			TransformedCode: "@Id\nprivate String id;",
			Explanation:     "Replace JPA ID generation with MongoDB ObjectId",
		},
		{
			FileType:        "Repository",
			OriginalCode:    "extends JpaRepository<Entity, Long>",
			TransformedCode: "extends MongoRepository<Entity, String>",
			Explanation:     "Replace JPA repository with MongoDB repository",
		},
		{
			FileType:        "Repository",
			OriginalCode:    "@Query(\"SELECT e FROM Entity e WHERE e.field = ?1\")",
			TransformedCode: "@Query(\"{field: ?0}\")",
			Explanation:     "Replace JPQL queries with MongoDB queries",
		},
		{
			FileType:        "Configuration",
			OriginalCode:    "spring.datasource.url=jdbc:mysql://localhost:3306/db\nspring.jpa.hibernate.ddl-auto=update",
			TransformedCode: "spring.data.mongodb.uri=mongodb://localhost:27017/db",
			Explanation:     "Replace JPA datasource configuration with MongoDB configuration",
		},
	}
}

// defaultSteps returns the seven canonical migration steps.
func defaultSteps() []domain.MigrationStep {
	return []domain.MigrationStep{
		{
			Number:      1,
			Title:       "Set up MongoDB environment",
			Description: "Install MongoDB and create the necessary databases and users.",
		},
		{
			Number:      2,
			Title:       "Update dependencies",
			Description: "Replace JPA dependencies with Spring Data MongoDB in pom.xml or build.gradle.",
			CodeExample: "<dependency>\n    <groupId>org.springframework.boot</groupId>\n    <artifactId>spring-boot-starter-data-mongodb</artifactId>\n</dependency>",
		},
		{
			Number:      3,
			Title:       "Transform entity classes",
			Description: "Convert JPA annotations to MongoDB annotations.",
		},
		{
			Number:      4,
			Title:       "Update repository interfaces",
			Description: "Change from JPA repositories to MongoDB repositories.",
		},
		{
			Number:      5,
			Title:       "Update configuration",
			Description: "Replace database configuration properties.",
		},
		{
			Number:      6,
			Title:       "Migrate data",
			Description: "Write a script to migrate data from the relational database to MongoDB.",
		},
		{
			Number:      7,
			Title:       "Test the application",
			Description: "Verify that all functionality works with MongoDB.",
		},
	}
}

// defaultConcepts returns the four canonical MongoDB concepts.
func defaultConcepts() []domain.Concept {
	return []domain.Concept{
		{
			Name:        "Document Model",
			Description: "MongoDB stores data in flexible, JSON-like documents, allowing for nested data and arrays.",
			Relevance:   "Core MongoDB concept",
		},
		{
			Name:        "Embedding vs. Referencing",
			Description: "Embedding documents is preferred for one-to-many relationships with strong ownership, while referencing is better for many-to-many relationships.",
			Relevance:   "Data modeling strategy",
		},
		{
			Name:        "Indexing",
			Description: "Create indexes on frequently queried fields to improve performance.",
			Relevance:   "Performance optimization",
		},
		{
			Name:        "Aggregation Pipeline",
			Description: "Use MongoDB's aggregation framework for complex queries instead of JPA's JPQL.",
			Relevance:   "Query capability",
		},
	}
}

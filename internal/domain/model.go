package domain

// Relationship kinds recognized on entity fields. These mirror the JPA
// association annotations and are the only values a relationship field
// may carry.
const (
	RelOneToMany  = "OneToMany"
	RelManyToOne  = "ManyToOne"
	RelOneToOne   = "OneToOne"
	RelManyToMany = "ManyToMany"
)

// RelationshipKinds lists the four recognized association kinds.
var RelationshipKinds = []string{RelOneToMany, RelManyToOne, RelOneToOne, RelManyToMany}

// IsRelationshipKind reports whether kind is one of the four recognized
// association kinds.
func IsRelationshipKind(kind string) bool {
	for _, k := range RelationshipKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// SourceField is one declared field of a scanned entity.
type SourceField struct {
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Annotations      []string `json:"annotations"`
	IsID             bool     `json:"is_id"`
	IsRelationship   bool     `json:"is_relationship"`
	RelationshipKind string   `json:"relationship_type,omitempty"`
	TargetEntity     string   `json:"target_entity,omitempty"`
}

// SourceEntity is a scanned Java type recognized as a persistent record.
type SourceEntity struct {
	Name        string        `json:"name"`
	FilePath    string        `json:"file_path"`
	Fields      []SourceField `json:"fields"`
	Annotations []string      `json:"annotations"`
	TableName   string        `json:"table_name,omitempty"`
}

// Parameter is one (type, name) pair in a repository method signature.
type Parameter struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// SourceMethod is a declared method on a repository-like type.
type SourceMethod struct {
	Name       string      `json:"name"`
	ReturnType string      `json:"return_type"`
	Parameters []Parameter `json:"parameters"`
	Query      string      `json:"query,omitempty"`
}

// SourceRepository is a scanned Java type recognized as a data-access
// interface.
type SourceRepository struct {
	Name       string         `json:"name"`
	FilePath   string         `json:"file_path"`
	EntityName string         `json:"entity_name,omitempty"`
	Methods    []SourceMethod `json:"methods"`
	Extends    []string       `json:"extends"`
}

// SourceConfig is a non-code file judged to hold storage configuration.
type SourceConfig struct {
	FilePath string `json:"file_path"`
	FileType string `json:"file_type"`
	Content  string `json:"-"`
}

// Relationship is a directed association between two scanned entities.
// Relationships are derived only from fields that carry both a
// relationship kind and a resolvable target entity name.
type Relationship struct {
	SourceEntity string `json:"source_entity"`
	TargetEntity string `json:"target_entity"`
	Kind         string `json:"relationship_type"`
	SourceField  string `json:"source_field"`
}

// Analysis holds the full result of scanning a Java repository.
type Analysis struct {
	RootPath       string             `json:"root_path"`
	CommitHash     string             `json:"commit_hash,omitempty"`
	Entities       []SourceEntity     `json:"entities"`
	Repositories   []SourceRepository `json:"repositories"`
	Configurations []SourceConfig     `json:"configurations"`
	Relationships  []Relationship     `json:"relationships"`
}

// EntityNames returns the set of scanned entity names.
func (a *Analysis) EntityNames() map[string]bool {
	names := make(map[string]bool, len(a.Entities))
	for _, e := range a.Entities {
		names[e.Name] = true
	}
	return names
}

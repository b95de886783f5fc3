package domain

// CollectionField is one field of a planned MongoDB collection.
type CollectionField struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// Collection is one planned MongoDB collection.
type Collection struct {
	Name    string            `json:"name"`
	Fields  []CollectionField `json:"fields"`
	Indexes []IndexAdvice     `json:"indexes,omitempty"`
}

// Schema is the reconciled MongoDB schema design.
type Schema struct {
	Collections       []Collection `json:"collections"`
	EmbeddingStrategy string       `json:"embedding_strategy"`
	IndexingStrategy  string       `json:"indexing_strategy,omitempty"`
}

// CodeTransformation is one reconciled code change for the migration.
type CodeTransformation struct {
	FileType        string `json:"file_type"`
	OriginalCode    string `json:"original_code"`
	TransformedCode string `json:"transformed_code"`
	Explanation     string `json:"explanation"`
}

// MigrationStep is one step of the migration process.
type MigrationStep struct {
	Number      int    `json:"step_number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CodeExample string `json:"code_example,omitempty"`
}

// Concept is a MongoDB concept relevant to the migration.
type Concept struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Relevance   string `json:"relevance"`
}

// MigrationPlan is the reconciled, structurally complete plan. The
// assembler guarantees Transformations, Steps and Concepts are non-empty.
type MigrationPlan struct {
	Schema          Schema               `json:"mongodb_schema"`
	Transformations []CodeTransformation `json:"code_transformations"`
	Steps           []MigrationStep      `json:"migration_steps"`
	Concepts        []Concept            `json:"mongodb_concepts"`
	Summary         string               `json:"summary"`

	// Advice provenance: how the envelope behind this plan was obtained.
	AdviceStatus AdviceStatus `json:"advice_status"`
	AdviceReason string       `json:"advice_reason,omitempty"`
}

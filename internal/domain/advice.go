package domain

// AdviceStatus tags how a recommendation envelope was obtained, so callers
// can tell genuine advisor output apart from heuristic parses and canned
// substitutes.
type AdviceStatus string

const (
	// AdviceOK means the advisor response decoded strictly.
	AdviceOK AdviceStatus = "ok"
	// AdviceDegraded means the response was recovered through the
	// line-oriented fallback parser.
	AdviceDegraded AdviceStatus = "degraded"
	// AdviceFailed means the advisor call itself failed and a canned
	// envelope was substituted.
	AdviceFailed AdviceStatus = "failed"
)

// FieldAdvice describes one document field suggested by the advisor.
type FieldAdvice struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// IndexAdvice describes one suggested index.
type IndexAdvice struct {
	Fields []string `json:"fields"`
	Type   string   `json:"type,omitempty"`
}

// CollectionAdvice describes one suggested MongoDB collection.
type CollectionAdvice struct {
	Name    string        `json:"name"`
	Fields  []FieldAdvice `json:"fields,omitempty"`
	Indexes []IndexAdvice `json:"indexes,omitempty"`
}

// SchemaAdvice is the schema section of the envelope. Either Collections
// is populated (structured response) or Description carries free text for
// the assembler's text miner.
type SchemaAdvice struct {
	Collections       []CollectionAdvice `json:"collections,omitempty"`
	EmbeddingStrategy string             `json:"embedding_strategy,omitempty"`
	IndexingStrategy  string             `json:"indexing_strategy,omitempty"`
	Description       string             `json:"description,omitempty"`
}

// ChangeAdvice is one from/to code change attached to a file.
type ChangeAdvice struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Explanation string `json:"explanation,omitempty"`
}

// TransformationAdvice is one suggested code transformation. Structured
// responses carry File+Changes; free-text responses carry Description only.
type TransformationAdvice struct {
	File        string         `json:"file,omitempty"`
	Changes     []ChangeAdvice `json:"changes,omitempty"`
	Description string         `json:"description,omitempty"`
}

// StepAdvice is one suggested migration step.
type StepAdvice struct {
	Step        int    `json:"step,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	CodeExample string `json:"code_example,omitempty"`
}

// ConceptAdvice is one suggested MongoDB concept.
type ConceptAdvice struct {
	Concept     string `json:"concept,omitempty"`
	Description string `json:"description,omitempty"`
	Relevance   string `json:"relevance,omitempty"`
}

// Envelope is the parsed (or fallback-parsed) advisor response.
type Envelope struct {
	Schema          SchemaAdvice           `json:"mongodb_schema"`
	Transformations []TransformationAdvice `json:"code_transformations"`
	Steps           []StepAdvice           `json:"migration_steps"`
	Concepts        []ConceptAdvice        `json:"mongodb_concepts"`

	Raw    string       `json:"-"`
	Status AdviceStatus `json:"-"`
	Reason string       `json:"-"`
}

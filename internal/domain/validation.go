package domain

// Error kinds surfaced by storage validation. Each result carries a
// human-readable message plus one of these machine-checkable tags.
const (
	ErrKindTimeout           = "timeout"
	ErrKindConnectionRefused = "connection_refused"
	ErrKindAuthentication    = "authentication"
	ErrKindUnexpected        = "unexpected"
	ErrKindNoConnection      = "no_connection"
	ErrKindOperationFailure  = "operation_failure"
)

// ValidationResult is the outcome of one storage validation call.
type ValidationResult struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Kind    string         `json:"error_type,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// VerifySchemaNames runs the naming-convention scan over a proposed
// schema. Names containing '$' or starting with "system." are hard
// issues; camelCase names yield non-blocking suggestions.
func VerifySchemaNames(schema Schema) (issues, suggestions []string) {
	for _, c := range schema.Collections {
		issues = append(issues, CollectionNameIssues(c.Name)...)
		if s := SnakeCaseSuggestion(c.Name); s != "" {
			suggestions = append(suggestions, "Collection name '"+c.Name+"' could be renamed to '"+s+"'")
		}
	}
	return issues, suggestions
}

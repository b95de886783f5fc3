package domain

import (
	"strings"

	"github.com/fatih/camelcase"
)

// CollectionNameIssues returns the hard compatibility problems for a
// proposed collection name: MongoDB rejects names containing '$' and
// reserves the "system." prefix.
func CollectionNameIssues(name string) []string {
	var issues []string
	if strings.Contains(name, "$") {
		issues = append(issues, "Collection name '"+name+"' contains invalid character '$'")
	}
	if strings.HasPrefix(name, "system.") {
		issues = append(issues, "Collection name '"+name+"' starts with reserved prefix 'system.'")
	}
	return issues
}

// SnakeCaseSuggestion returns a snake_case rendering of a camelCase
// collection name, or "" when the name already has a single case run.
// Used for non-blocking naming advisories; MongoDB itself accepts
// camelCase names.
func SnakeCaseSuggestion(name string) string {
	words := camelcase.Split(name)
	if len(words) < 2 {
		return ""
	}
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

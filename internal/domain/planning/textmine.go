package planning

import (
	"strings"

	"github.com/mongoshift/mongoshift/internal/domain"
)

// collectionsFromText mines collection definitions out of a free-text
// schema description. A line ending in "Collection"/"collection" opens a
// new collection; subsequent "key: value" or "key - value" lines become
// fields, with the type sniffed from the value text.
func collectionsFromText(text string) []domain.Collection {
	var collections []domain.Collection
	var current *domain.Collection

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if name, ok := collectionHeader(line); ok {
			collections = append(collections, domain.Collection{Name: name})
			current = &collections[len(collections)-1]
			continue
		}

		if current == nil {
			continue
		}
		name, desc, ok := splitFieldLine(line)
		if !ok {
			continue
		}
		current.Fields = append(current.Fields, domain.CollectionField{
			Name:        name,
			Type:        sniffFieldType(name, desc),
			Description: desc,
		})
	}

	return collections
}

func collectionHeader(line string) (string, bool) {
	for _, suffix := range []string{" Collection", " collection"} {
		if strings.HasSuffix(line, suffix) {
			return strings.ToLower(strings.TrimSuffix(line, suffix)), true
		}
	}
	return "", false
}

func splitFieldLine(line string) (name, desc string, ok bool) {
	sep := ":"
	if !strings.Contains(line, ":") {
		if !strings.Contains(line, "-") {
			return "", "", false
		}
		sep = "-"
	}
	parts := strings.SplitN(line, sep, 2)
	if len(parts) != 2 {
		return "", "", false
	}
	name = strings.Trim(strings.TrimSpace(parts[0]), "`*")
	return name, strings.TrimSpace(parts[1]), true
}

// sniffFieldType infers a MongoDB field type from the field name and its
// free-text description.
func sniffFieldType(name, desc string) string {
	lowerDesc := strings.ToLower(desc)
	switch {
	case strings.Contains(desc, "ObjectId") || strings.Contains(strings.ToLower(name), "id"):
		return "ObjectId"
	case strings.Contains(lowerDesc, "array") || strings.Contains(lowerDesc, "list"):
		return "Array"
	case strings.Contains(lowerDesc, "date") || strings.Contains(lowerDesc, "time"):
		return "Date"
	case strings.Contains(lowerDesc, "number") || strings.Contains(lowerDesc, "int"):
		return "Number"
	default:
		return "String"
	}
}

// strategyFromText pulls a strategy description (embedding, indexing) out
// of free text: the first line mentioning the strategy plus up to four
// lines following it.
func strategyFromText(text, strategy string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), strings.ToLower(strategy)) {
			continue
		}
		var captured []string
		for j := i; j < len(lines) && j < i+5; j++ {
			if trimmed := strings.TrimSpace(lines[j]); trimmed != "" {
				captured = append(captured, trimmed)
			}
		}
		if len(captured) > 0 {
			return strings.Join(captured, " ")
		}
	}
	return ""
}

// parseTransformationText classifies a free-text transformation
// description into a file type and splits a naive "from X to Y" phrase
// into original and transformed code.
func parseTransformationText(text string) (fileType, original, transformed string) {
	fileType = "Java"
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "entity") || strings.Contains(lower, "model"):
		fileType = "Entity"
	case strings.Contains(lower, "repository") || strings.Contains(lower, "dao"):
		fileType = "Repository"
	case strings.Contains(lower, "config") || strings.Contains(lower, "properties") || strings.Contains(lower, "application"):
		fileType = "Configuration"
	}

	if strings.Contains(lower, "from") && strings.Contains(lower, "to") {
		if _, after, found := strings.Cut(lower, "from"); found {
			if orig, rest, found := strings.Cut(after, "to"); found {
				original = strings.TrimSpace(orig)
				transformed = strings.TrimSpace(rest)
			}
		}
	}

	return fileType, original, transformed
}

package llm

import (
	"encoding/json"
	"strings"

	"github.com/mongoshift/mongoshift/internal/domain"
)

// Decode parses a raw completion into an envelope. It first attempts a
// strict JSON decode of the largest brace-delimited substring; on failure
// it falls back to line-oriented section bucketing. The envelope status
// records which path produced it.
func Decode(raw string) domain.Envelope {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")

	if start >= 0 && end > start {
		var env domain.Envelope
		if err := json.Unmarshal([]byte(raw[start:end+1]), &env); err == nil {
			env.Raw = raw
			env.Status = domain.AdviceOK
			return env
		}
	}

	return decodeFlexible(raw)
}

// Section headers recognized by the fallback parser, matched
// case-insensitively as substrings.
var sectionPhrases = []struct {
	section string
	phrases []string
}{
	{"schema", []string{"mongodb schema", "schema design"}},
	{"transformations", []string{"code transformation", "code change"}},
	{"steps", []string{"migration step", "migration process"}},
	{"concepts", []string{"mongodb concept", "best practice"}},
}

// decodeFlexible buckets response lines under the last seen section
// header, then filters list-item-looking lines into the item sections.
func decodeFlexible(raw string) domain.Envelope {
	sections := map[string][]string{}
	current := ""

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)

		if section := matchSection(lower); section != "" {
			current = section
			continue
		}
		if line != "" && current != "" {
			sections[current] = append(sections[current], line)
		}
	}

	env := domain.Envelope{
		Raw:    raw,
		Status: domain.AdviceDegraded,
		Reason: "strict JSON decode failed; recovered sections by line heuristics",
	}

	if lines := sections["schema"]; len(lines) > 0 {
		env.Schema.Description = strings.Join(lines, "\n")
	}
	for i, line := range sections["transformations"] {
		if isListItem(line, i, sections["transformations"]) {
			env.Transformations = append(env.Transformations, domain.TransformationAdvice{Description: line})
		}
	}
	for i, line := range sections["steps"] {
		if isListItem(line, i, sections["steps"]) || startsWithDigit(line) {
			env.Steps = append(env.Steps, domain.StepAdvice{Description: line})
		}
	}
	for i, line := range sections["concepts"] {
		if isListItem(line, i, sections["concepts"]) {
			env.Concepts = append(env.Concepts, domain.ConceptAdvice{Description: line})
		}
	}

	return env
}

func matchSection(lowerLine string) string {
	for _, s := range sectionPhrases {
		for _, phrase := range s.phrases {
			if strings.Contains(lowerLine, phrase) {
				return s.section
			}
		}
	}
	return ""
}

// isListItem accepts lines with a leading bullet marker, or lines that
// directly follow a colon-terminated line.
func isListItem(line string, i int, lines []string) bool {
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
		return true
	}
	return i > 0 && strings.HasSuffix(lines[i-1], ":")
}

func startsWithDigit(line string) bool {
	return line != "" && line[0] >= '0' && line[0] <= '9'
}

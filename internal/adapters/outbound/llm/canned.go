package llm

import "github.com/mongoshift/mongoshift/internal/domain"

// cannedRaw is the substitute payload used when the advisor call fails.
// Its sections are deliberately empty so the plan assembler falls back to
// its built-in defaults.
const cannedRaw = `{"mongodb_schema": {}, "code_transformations": [], "migration_steps": [], "mongodb_concepts": []}`

func cannedEnvelope(reason string) domain.Envelope {
	return domain.Envelope{
		Raw:    cannedRaw,
		Status: domain.AdviceFailed,
		Reason: reason,
	}
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mongoshift/mongoshift/internal/domain"
)

func TestCollectionNameIssues(t *testing.T) {
	assert.Empty(t, domain.CollectionNameIssues("owners"))

	issues := domain.CollectionNameIssues("owner$pets")
	assert.Len(t, issues, 1)
	assert.Contains(t, issues[0], "invalid character '$'")

	issues = domain.CollectionNameIssues("system.owners")
	assert.Len(t, issues, 1)
	assert.Contains(t, issues[0], "reserved prefix 'system.'")

	assert.Len(t, domain.CollectionNameIssues("system.owner$s"), 2)
}

func TestSnakeCaseSuggestion(t *testing.T) {
	assert.Equal(t, "pet_owners", domain.SnakeCaseSuggestion("petOwners"))
	assert.Equal(t, "", domain.SnakeCaseSuggestion("owners"))
	assert.Equal(t, "", domain.SnakeCaseSuggestion("pets"))
}

func TestVerifySchemaNames(t *testing.T) {
	schema := domain.Schema{
		Collections: []domain.Collection{
			{Name: "owners"},
			{Name: "petVisits"},
			{Name: "system.cache"},
		},
	}

	issues, suggestions := domain.VerifySchemaNames(schema)

	assert.Len(t, issues, 1)
	assert.Contains(t, issues[0], "system.cache")

	assert.Len(t, suggestions, 1)
	assert.Contains(t, suggestions[0], "pet_visits")
}

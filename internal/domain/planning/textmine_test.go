package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mongoshift/mongoshift/internal/domain"
	"github.com/mongoshift/mongoshift/internal/domain/planning"
)

func TestBuildPlan_SchemaMinedFromDescription(t *testing.T) {
	description := `Proposed MongoDB schema design.

Owners Collection
  _id: ObjectId for the document
  name: full name of the owner
  pets: array of embedded pet documents

Visits Collection
  _id: ObjectId for the document
  date: date of the visit

Embedding strategy: embed pets inside owners since they are always read together.
`

	env := domain.Envelope{
		Status: domain.AdviceDegraded,
		Schema: domain.SchemaAdvice{Description: description},
	}

	plan := planning.BuildPlan(sampleAnalysis(), env)

	require.Len(t, plan.Schema.Collections, 2)

	owners := plan.Schema.Collections[0]
	assert.Equal(t, "owners", owners.Name)
	require.Len(t, owners.Fields, 3)
	assert.Equal(t, "ObjectId", owners.Fields[0].Type)
	assert.Equal(t, "String", owners.Fields[1].Type)
	assert.Equal(t, "Array", owners.Fields[2].Type)

	visits := plan.Schema.Collections[1]
	assert.Equal(t, "visits", visits.Name)
	assert.Equal(t, "Date", visits.Fields[1].Type)

	assert.Contains(t, plan.Schema.EmbeddingStrategy, "embed pets inside owners")
}

func TestBuildPlan_StrategyCapturedWithFollowingLines(t *testing.T) {
	description := `Indexing recommendations:
create an index on owners.name
create a compound index on visits.date and visits.petId`

	env := domain.Envelope{
		Status: domain.AdviceDegraded,
		Schema: domain.SchemaAdvice{Description: description},
	}

	plan := planning.BuildPlan(sampleAnalysis(), env)

	assert.Contains(t, plan.Schema.IndexingStrategy, "owners.name")
	assert.Contains(t, plan.Schema.IndexingStrategy, "compound index")
}

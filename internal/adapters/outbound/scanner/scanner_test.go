package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mongoshift/mongoshift/internal/adapters/outbound/scanner"
	"github.com/mongoshift/mongoshift/internal/domain"
)

const fixtureDir = "../../../../testdata/spring-petclinic-mini"

func scanFixture(t *testing.T) *domain.Analysis {
	t.Helper()
	analysis, err := scanner.New().Scan(fixtureDir, "legacy")
	require.NoError(t, err)
	return analysis
}

func TestScan_FindsEntities(t *testing.T) {
	analysis := scanFixture(t)

	require.Len(t, analysis.Entities, 3)

	names := make([]string, 0, len(analysis.Entities))
	for _, e := range analysis.Entities {
		names = append(names, e.Name)
	}
	assert.ElementsMatch(t, []string{"Owner", "Pet", "Visit"}, names)
}

func TestScan_EntityFields(t *testing.T) {
	analysis := scanFixture(t)

	owner := entityByName(t, analysis, "Owner")
	assert.Equal(t, "owners", owner.TableName)
	require.Len(t, owner.Fields, 7)

	id := fieldByName(t, owner, "id")
	assert.True(t, id.IsID)
	assert.Contains(t, id.Annotations, "GeneratedValue")

	pets := fieldByName(t, owner, "pets")
	assert.True(t, pets.IsRelationship)
	assert.Equal(t, domain.RelOneToMany, pets.RelationshipKind)
	assert.Equal(t, "Pet", pets.TargetEntity)

	city := fieldByName(t, owner, "city")
	assert.False(t, city.IsRelationship)
	assert.Equal(t, "String", city.Type)
}

func TestScan_FindsRepositories(t *testing.T) {
	analysis := scanFixture(t)

	require.Len(t, analysis.Repositories, 2)

	owners := repositoryByName(t, analysis, "OwnerRepository")
	assert.Equal(t, "Owner", owners.EntityName)
	assert.Contains(t, owners.Extends, "JpaRepository")
	require.Len(t, owners.Methods, 2)

	byLastName := owners.Methods[0]
	assert.Equal(t, "findByLastName", byLastName.Name)
	assert.NotEmpty(t, byLastName.Query, "custom query should be captured")
	require.Len(t, byLastName.Parameters, 1)
	assert.Equal(t, "String", byLastName.Parameters[0].Type)
	assert.Equal(t, "lastName", byLastName.Parameters[0].Name)

	pets := repositoryByName(t, analysis, "PetRepository")
	assert.Equal(t, "Pet", pets.EntityName, "entity inferred from generic parameter")
}

func TestScan_FindsConfigurations(t *testing.T) {
	analysis := scanFixture(t)

	require.Len(t, analysis.Configurations, 2)

	types := make(map[string]bool)
	for _, c := range analysis.Configurations {
		types[c.FileType] = true
		assert.NotEmpty(t, c.Content, "config content is captured at scan time")
	}
	assert.True(t, types["properties"])
	assert.True(t, types["xml"])
}

func TestScan_RelationshipsRequireResolvableTarget(t *testing.T) {
	analysis := scanFixture(t)

	// Pet.visits carries @OneToMany without targetEntity and must be
	// dropped; Owner.pets and Pet.owner resolve.
	require.Len(t, analysis.Relationships, 2)

	for _, rel := range analysis.Relationships {
		assert.True(t, domain.IsRelationshipKind(rel.Kind))
		assert.True(t, analysis.EntityNames()[rel.SourceEntity])
		assert.NotEmpty(t, rel.TargetEntity)
	}

	assert.Equal(t, domain.Relationship{
		SourceEntity: "Owner",
		TargetEntity: "Pet",
		Kind:         domain.RelOneToMany,
		SourceField:  "pets",
	}, analysis.Relationships[0])
}

func TestScan_SkipsBuildAndExcludedDirs(t *testing.T) {
	analysis := scanFixture(t)

	for _, e := range analysis.Entities {
		assert.NotEqual(t, "Stale", e.Name, "target/ must be skipped")
		assert.NotEqual(t, "OldCustomer", e.Name, "configured exclude paths must be skipped")
	}
}

func TestScan_ExcludePathsOff_IncludesLegacy(t *testing.T) {
	analysis, err := scanner.New().Scan(fixtureDir)
	require.NoError(t, err)

	var found bool
	for _, e := range analysis.Entities {
		if e.Name == "OldCustomer" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScan_Idempotent(t *testing.T) {
	first := scanFixture(t)
	second := scanFixture(t)
	assert.Equal(t, first, second)
}

func entityByName(t *testing.T, analysis *domain.Analysis, name string) domain.SourceEntity {
	t.Helper()
	for _, e := range analysis.Entities {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("entity %s not found", name)
	return domain.SourceEntity{}
}

func fieldByName(t *testing.T, entity domain.SourceEntity, name string) domain.SourceField {
	t.Helper()
	for _, f := range entity.Fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("field %s not found on %s", name, entity.Name)
	return domain.SourceField{}
}

func repositoryByName(t *testing.T, analysis *domain.Analysis, name string) domain.SourceRepository {
	t.Helper()
	for _, r := range analysis.Repositories {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("repository %s not found", name)
	return domain.SourceRepository{}
}

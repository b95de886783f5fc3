package mongodb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mongoshift/mongoshift/internal/adapters/outbound/mongodb"
	"github.com/mongoshift/mongoshift/internal/domain"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"deadline", context.DeadlineExceeded, domain.ErrKindTimeout},
		{"refused", errors.New("dial tcp 127.0.0.1:27017: connect: connection refused"), domain.ErrKindConnectionRefused},
		{"auth", errors.New("connection() error occurred during connection handshake: auth error: sasl conversation error"), domain.ErrKindAuthentication},
		{"other", errors.New("something odd"), domain.ErrKindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mongodb.ClassifyError(tt.err))
		})
	}
}

func TestCheckSchema_ValidNames(t *testing.T) {
	v := mongodb.NewValidator(domain.MongoConfig{})

	result := v.CheckSchema(domain.Schema{
		Collections: []domain.Collection{{Name: "owners"}, {Name: "visits"}},
	})

	assert.True(t, result.Success)
	assert.Empty(t, result.Kind)
}

func TestCheckSchema_InvalidNames(t *testing.T) {
	v := mongodb.NewValidator(domain.MongoConfig{})

	result := v.CheckSchema(domain.Schema{
		Collections: []domain.Collection{{Name: "system.owners"}, {Name: "pet$visits"}},
	})

	assert.False(t, result.Success)
	assert.Equal(t, domain.ErrKindOperationFailure, result.Kind)
	issues := result.Details["issues"].([]string)
	assert.Len(t, issues, 2)
}

func TestCheckSchema_CamelCaseSuggestions(t *testing.T) {
	v := mongodb.NewValidator(domain.MongoConfig{})

	result := v.CheckSchema(domain.Schema{
		Collections: []domain.Collection{{Name: "petVisits"}},
	})

	assert.True(t, result.Success, "camelCase is advisory, not blocking")
	suggestions := result.Details["suggestions"].([]string)
	assert.Contains(t, suggestions[0], "pet_visits")
}

func TestCheckConnection_UnreachableServer(t *testing.T) {
	v := mongodb.NewValidator(domain.MongoConfig{URI: "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=500&connectTimeoutMS=500"})

	result := v.CheckConnection(context.Background())

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Kind)
}

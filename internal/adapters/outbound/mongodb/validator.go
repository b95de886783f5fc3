// Package mongodb validates that a MongoDB deployment is reachable and
// usable before a migration plan is acted on. Each check opens its own
// short-lived connection so a stale pool never masks a dead server.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mongoshift/mongoshift/internal/domain"
)

const (
	serverSelectionTimeout = 5 * time.Second
	smokeTestCollection    = "migration_tool_test"
)

// Validator checks MongoDB connectivity, basic operations and proposed
// schema naming against a target deployment.
type Validator struct {
	uri string
}

func NewValidator(cfg domain.MongoConfig) *Validator {
	return &Validator{uri: cfg.URI}
}

// CheckConnection connects, pings the primary and reports the server
// version on success.
func (v *Validator) CheckConnection(ctx context.Context) domain.ValidationResult {
	client, err := v.connect(ctx)
	if err != nil {
		return failure("Could not connect to MongoDB", err)
	}
	defer disconnect(client)

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return failure("Could not connect to MongoDB", err)
	}

	version := serverVersion(ctx, client)
	return domain.ValidationResult{
		Success: true,
		Message: "Successfully connected to MongoDB",
		Details: map[string]any{"server_version": version},
	}
}

// CheckOperations runs an insert/find/update/delete smoke test against a
// throwaway collection in the given database, then drops it.
func (v *Validator) CheckOperations(ctx context.Context, database string) domain.ValidationResult {
	client, err := v.connect(ctx)
	if err != nil {
		return failure("Could not connect to MongoDB", err)
	}
	defer disconnect(client)

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return failure("Could not connect to MongoDB", err)
	}

	coll := client.Database(database).Collection(smokeTestCollection)
	defer coll.Drop(context.Background())

	doc := bson.M{"test": "connection_validation", "timestamp": time.Now().UTC()}
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return failure("Insert operation failed", err)
	}

	filter := bson.M{"_id": res.InsertedID}
	if err := coll.FindOne(ctx, filter).Err(); err != nil {
		return failure("Find operation failed", err)
	}
	if _, err := coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"updated": true}}); err != nil {
		return failure("Update operation failed", err)
	}
	if _, err := coll.DeleteOne(ctx, filter); err != nil {
		return failure("Delete operation failed", err)
	}

	return domain.ValidationResult{
		Success: true,
		Message: "Basic MongoDB operations (insert, find, update, delete) work correctly",
	}
}

// CheckSchema verifies the proposed schema's collection names against
// MongoDB naming restrictions. It needs no live connection.
func (v *Validator) CheckSchema(schema domain.Schema) domain.ValidationResult {
	issues, suggestions := domain.VerifySchemaNames(schema)

	details := map[string]any{}
	if len(suggestions) > 0 {
		details["suggestions"] = suggestions
	}

	if len(issues) > 0 {
		details["issues"] = issues
		return domain.ValidationResult{
			Success: false,
			Message: fmt.Sprintf("Schema validation found %d issue(s)", len(issues)),
			Kind:    domain.ErrKindOperationFailure,
			Details: details,
		}
	}

	return domain.ValidationResult{
		Success: true,
		Message: "Proposed schema follows MongoDB naming conventions",
		Details: details,
	}
}

func (v *Validator) connect(ctx context.Context) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(v.uri).
		SetServerSelectionTimeout(serverSelectionTimeout)
	return mongo.Connect(ctx, opts)
}

func disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = client.Disconnect(ctx)
}

func serverVersion(ctx context.Context, client *mongo.Client) string {
	var info struct {
		Version string `bson:"version"`
	}
	res := client.Database("admin").RunCommand(ctx, bson.D{{Key: "buildInfo", Value: 1}})
	if err := res.Decode(&info); err != nil {
		return "unknown"
	}
	return info.Version
}

func failure(message string, err error) domain.ValidationResult {
	return domain.ValidationResult{
		Success: false,
		Message: message + ": " + err.Error(),
		Kind:    ClassifyError(err),
	}
}

// ClassifyError maps a driver error to one of the validation error kinds.
func ClassifyError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err):
		return domain.ErrKindTimeout
	case strings.Contains(err.Error(), "connection refused"):
		return domain.ErrKindConnectionRefused
	case isAuthError(err):
		return domain.ErrKindAuthentication
	default:
		return domain.ErrKindUnexpected
	}
}

func isAuthError(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Name == "AuthenticationFailed" {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "authentication") || strings.Contains(msg, "auth error")
}

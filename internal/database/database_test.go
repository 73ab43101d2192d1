package database

import (
	"context"
	"flag"
	"os"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
)

var mongoURI string

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		log.Fatal().Err(err).Msg("Could not start mongodb container")
	}

	mongoURI, err = container.ConnectionString(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not read mongodb connection string")
	}

	code := m.Run()

	if err := container.Terminate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Could not teardown mongodb container")
	}
	os.Exit(code)
}

func TestNew(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	ctx := context.Background()
	srv, err := New(ctx, mongoURI, "recipeblog_db_test")
	require.NoError(t, err)
	defer srv.Close(ctx)

	// a second New runs collMod against the existing collection
	again, err := New(ctx, mongoURI, "recipeblog_db_test")
	require.NoError(t, err)
	defer again.Close(ctx)
}

func TestHealth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	ctx := context.Background()
	srv, err := New(ctx, mongoURI, "recipeblog_db_test")
	require.NoError(t, err)
	defer srv.Close(ctx)

	stats := srv.Health()
	assert.Equal(t, "It's healthy", stats["message"])
}

func TestRecipeValidatorRejectsIncompleteDocuments(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	ctx := context.Background()
	srv, err := New(ctx, mongoURI, "recipeblog_validator_test")
	require.NoError(t, err)
	defer srv.Close(ctx)

	recipes := srv.Database().Collection(RecipesCollection)

	_, err = recipes.InsertOne(ctx, bson.M{"name": "Pad Thai"})
	assert.Error(t, err)

	_, err = recipes.InsertOne(ctx, bson.M{
		"name":        "Pad Thai",
		"description": "Noodles",
		"email":       "cook@example.com",
		"ingredients": bson.A{"rice noodles"},
		"category":    "Thai",
	})
	assert.NoError(t, err)
}

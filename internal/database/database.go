package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CategoriesCollection = "categories"
	RecipesCollection    = "recipes"
)

type Service interface {
	Health() map[string]string
	Database() *mongo.Database
	Close(ctx context.Context) error
}

type service struct {
	db     *mongo.Client
	dbName string
}

// New connects to MongoDB and prepares the recipes collection (validator and
// text index). The returned Service must be closed by the caller.
func New(ctx context.Context, mongoURI, dbName string) (Service, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	s := &service{db: client, dbName: dbName}
	if err := s.setupRecipes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	log.Info().Str("database", dbName).Msg("Connected to MongoDB")
	return s, nil
}

// recipeValidator is the only validation recipes get: the store rejects
// documents missing any of the text fields or the ingredient list.
var recipeValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"name", "description", "email", "ingredients", "category"},
		"properties": bson.M{
			"name":        bson.M{"bsonType": "string", "minLength": 1},
			"description": bson.M{"bsonType": "string", "minLength": 1},
			"email":       bson.M{"bsonType": "string", "minLength": 1},
			"category":    bson.M{"bsonType": "string", "minLength": 1},
			"image":       bson.M{"bsonType": "string"},
			"ingredients": bson.M{
				"bsonType": "array",
				"minItems": 1,
				"items":    bson.M{"bsonType": "string"},
			},
		},
	},
}

func (s *service) setupRecipes(ctx context.Context) error {
	db := s.Database()

	names, err := db.ListCollectionNames(ctx, bson.M{"name": RecipesCollection})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	if len(names) == 0 {
		opts := options.CreateCollection().SetValidator(recipeValidator)
		if err := db.CreateCollection(ctx, RecipesCollection, opts); err != nil {
			return fmt.Errorf("failed to create recipes collection: %w", err)
		}
	} else {
		cmd := bson.D{{Key: "collMod", Value: RecipesCollection}, {Key: "validator", Value: recipeValidator}}
		if err := db.RunCommand(ctx, cmd).Err(); err != nil {
			return fmt.Errorf("failed to update recipes validator: %w", err)
		}
	}

	textIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}},
		Options: options.Index().SetName("recipes_text"),
	}
	if _, err := db.Collection(RecipesCollection).Indexes().CreateOne(ctx, textIndex); err != nil {
		return fmt.Errorf("failed to create recipes text index: %w", err)
	}
	return nil
}

func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := s.db.Ping(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("Database health check failed")
		return map[string]string{
			"message": "db down",
			"error":   err.Error(),
		}
	}

	return map[string]string{
		"message": "It's healthy",
	}
}

func (s *service) Database() *mongo.Database {
	return s.db.Database(s.dbName)
}

func (s *service) Close(ctx context.Context) error {
	return s.db.Disconnect(ctx)
}

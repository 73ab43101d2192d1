package repositories

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"recipeblog/internal/database"
	"recipeblog/internal/models"
	"recipeblog/internal/utils"
)

type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	FindByID(ctx context.Context, recipeID primitive.ObjectID) (*models.Recipe, error)
	FindLatest(ctx context.Context, limit int64) ([]models.Recipe, error)
	FindByCategory(ctx context.Context, category string, limit int64) ([]models.Recipe, error)
	Search(ctx context.Context, term string) ([]models.Recipe, error)
	Count(ctx context.Context) (int64, error)
	FindOneAt(ctx context.Context, skip int64) (*models.Recipe, error)
}

type recipeRepository struct {
	db database.Service
}

func NewRecipeRepository(db database.Service) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) collection() *mongo.Collection {
	return r.db.Database().Collection(database.RecipesCollection)
}

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	queryType := "create"
	repository := "recipe"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	result, err := r.collection().InsertOne(ctx, recipe)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Str("name", recipe.Name).Msg("Failed to insert recipe into database")
		return nil, fmt.Errorf("failed to add recipe: %w", err)
	}
	recipe.ID = result.InsertedID.(primitive.ObjectID)
	return recipe, nil
}

// FindByID returns mongo.ErrNoDocuments unwrapped when the recipe does not exist.
func (r *recipeRepository) FindByID(ctx context.Context, recipeID primitive.ObjectID) (*models.Recipe, error) {
	queryType := "findByID"
	repository := "recipe"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	var recipe models.Recipe
	err := r.collection().FindOne(ctx, bson.M{"_id": recipeID}).Decode(&recipe)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			status = "error"
			utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) FindLatest(ctx context.Context, limit int64) ([]models.Recipe, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}).SetLimit(limit)
	return r.find(ctx, "findLatest", bson.M{}, opts)
}

func (r *recipeRepository) FindByCategory(ctx context.Context, category string, limit int64) ([]models.Recipe, error) {
	return r.find(ctx, "findByCategory", bson.M{"category": category}, options.Find().SetLimit(limit))
}

func (r *recipeRepository) Search(ctx context.Context, term string) ([]models.Recipe, error) {
	filter := bson.M{"$text": bson.M{"$search": term, "$diacriticSensitive": true}}
	return r.find(ctx, "search", filter, options.Find())
}

func (r *recipeRepository) find(ctx context.Context, queryType string, filter bson.M, opts *options.FindOptions) ([]models.Recipe, error) {
	repository := "recipe"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to retrieve recipes: %w", err)
	}
	defer cursor.Close(ctx)

	recipes := []models.Recipe{}
	if err := cursor.All(ctx, &recipes); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("error decoding recipes: %w", err)
	}
	return recipes, nil
}

func (r *recipeRepository) Count(ctx context.Context) (int64, error) {
	queryType := "count"
	repository := "recipe"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	count, err := r.collection().CountDocuments(ctx, bson.M{})
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}

// FindOneAt skips the first skip recipes in natural order and returns the
// next one, or mongo.ErrNoDocuments when there is none.
func (r *recipeRepository) FindOneAt(ctx context.Context, skip int64) (*models.Recipe, error) {
	queryType := "findOneAt"
	repository := "recipe"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	var recipe models.Recipe
	err := r.collection().FindOne(ctx, bson.M{}, options.FindOne().SetSkip(skip)).Decode(&recipe)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			status = "error"
			utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		}
		return nil, err
	}
	return &recipe, nil
}

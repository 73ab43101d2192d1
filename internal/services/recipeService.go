package services

import (
	"context"
	"math/rand/v2"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"recipeblog/internal/metrics"
	"recipeblog/internal/models"
	"recipeblog/internal/repositories"
	"recipeblog/internal/storage"
)

// RecipeService defines the interface for recipe-related business logic.
// Lookups that find nothing return a nil recipe and no error.
type RecipeService interface {
	GetRecipe(ctx context.Context, recipeID string) (*models.Recipe, error)
	GetRecipesByCategory(ctx context.Context, category string) ([]models.Recipe, error)
	SearchRecipes(ctx context.Context, term string) ([]models.Recipe, error)
	GetLatestRecipes(ctx context.Context) ([]models.Recipe, error)
	GetRandomRecipe(ctx context.Context) (*models.Recipe, error)
	SubmitRecipe(ctx context.Context, submission models.RecipeSubmission) (*models.Recipe, error)
}

type recipeServiceImpl struct {
	recipeRepo repositories.RecipeRepository
	images     storage.ImageStore
	notifier   SubmissionNotifier
	randIndex  func(n int64) int64
}

func NewRecipeService(recipeRepo repositories.RecipeRepository, images storage.ImageStore, notifier SubmissionNotifier) RecipeService {
	return &recipeServiceImpl{
		recipeRepo: recipeRepo,
		images:     images,
		notifier:   notifier,
		randIndex:  rand.Int64N,
	}
}

func (s *recipeServiceImpl) GetRecipe(ctx context.Context, recipeID string) (*models.Recipe, error) {
	id, err := primitive.ObjectIDFromHex(recipeID)
	if err != nil {
		log.Warn().Str("recipeID", recipeID).Msg("Malformed recipe ID")
		return nil, nil
	}

	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Warn().Str("recipeID", recipeID).Msg("Recipe not found")
			return nil, nil
		}
		log.Error().Err(err).Str("recipeID", recipeID).Msg("Error finding recipe by ID")
		return nil, err
	}
	return recipe, nil
}

func (s *recipeServiceImpl) GetRecipesByCategory(ctx context.Context, category string) ([]models.Recipe, error) {
	recipes, err := s.recipeRepo.FindByCategory(ctx, category, ListLimit)
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("Error finding recipes by category")
		return nil, err
	}
	return recipes, nil
}

func (s *recipeServiceImpl) SearchRecipes(ctx context.Context, term string) ([]models.Recipe, error) {
	metrics.SearchesTotal.Inc()
	recipes, err := s.recipeRepo.Search(ctx, term)
	if err != nil {
		log.Error().Err(err).Str("searchTerm", term).Msg("Error searching recipes")
		return nil, err
	}
	log.Debug().Str("searchTerm", term).Int("count", len(recipes)).Msg("Search completed")
	return recipes, nil
}

func (s *recipeServiceImpl) GetLatestRecipes(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := s.recipeRepo.FindLatest(ctx, ListLimit)
	if err != nil {
		log.Error().Err(err).Msg("Error finding latest recipes")
		return nil, err
	}
	return recipes, nil
}

// GetRandomRecipe counts the recipes and skips to a uniformly drawn offset.
// The skip is a scan on the server, so this only suits small collections.
func (s *recipeServiceImpl) GetRandomRecipe(ctx context.Context) (*models.Recipe, error) {
	metrics.RandomRecipesServedTotal.Inc()
	count, err := s.recipeRepo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error counting recipes")
		return nil, err
	}

	var index int64
	if count > 0 {
		index = s.randIndex(count)
	}

	recipe, err := s.recipeRepo.FindOneAt(ctx, index)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Error().Err(err).Int64("index", index).Msg("Error finding random recipe")
		return nil, err
	}
	return recipe, nil
}

// SubmitRecipe stores the image (if any) and then inserts the recipe. The two
// writes are independent: a failed insert leaves the image on disk.
func (s *recipeServiceImpl) SubmitRecipe(ctx context.Context, submission models.RecipeSubmission) (*models.Recipe, error) {
	recipe := &models.Recipe{
		Name:        submission.Name,
		Description: submission.Description,
		Email:       submission.Email,
		Ingredients: submission.Ingredients,
		Category:    submission.Category,
	}

	if submission.Image != nil {
		name, err := s.images.Save(submission.Image.Filename, submission.Image.Content)
		if err != nil {
			log.Error().Err(err).Str("filename", submission.Image.Filename).Msg("Failed to store recipe image")
			metrics.RecipeSubmissionsTotal.WithLabelValues("failed").Inc()
			return nil, err
		}
		metrics.ImagesUploadedTotal.Inc()
		recipe.Image = name
	} else {
		log.Debug().Msg("No image was uploaded with the recipe")
	}

	created, err := s.recipeRepo.Create(ctx, recipe)
	if err != nil {
		metrics.RecipeSubmissionsTotal.WithLabelValues("failed").Inc()
		return nil, err
	}
	metrics.RecipeSubmissionsTotal.WithLabelValues("success").Inc()
	log.Info().Str("recipeID", created.ID.Hex()).Str("category", created.Category).Msg("Recipe submitted")

	if err := s.notifier.RecipeSubmitted(created); err != nil {
		log.Warn().Err(err).Str("recipeID", created.ID.Hex()).Msg("Could not send submission e-mail")
	}
	return created, nil
}

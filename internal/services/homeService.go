package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"recipeblog/internal/models"
	"recipeblog/internal/repositories"
)

const (
	HomepageLimit = 5
	ListLimit     = 20
)

// HomeService assembles the homepage.
type HomeService interface {
	GetHomepage(ctx context.Context) (*models.Homepage, error)
}

type homeServiceImpl struct {
	categoryRepo repositories.CategoryRepository
	recipeRepo   repositories.RecipeRepository
}

func NewHomeService(categoryRepo repositories.CategoryRepository, recipeRepo repositories.RecipeRepository) HomeService {
	return &homeServiceImpl{categoryRepo: categoryRepo, recipeRepo: recipeRepo}
}

// GetHomepage runs its queries one after another; any failure aborts the page.
func (s *homeServiceImpl) GetHomepage(ctx context.Context) (*models.Homepage, error) {
	categories, err := s.categoryRepo.Find(ctx, HomepageLimit)
	if err != nil {
		log.Error().Err(err).Msg("Error finding homepage categories")
		return nil, err
	}

	latest, err := s.recipeRepo.FindLatest(ctx, HomepageLimit)
	if err != nil {
		log.Error().Err(err).Msg("Error finding latest recipes")
		return nil, err
	}

	groups := make([][]models.Recipe, 0, 3)
	for _, category := range []string{"Thai", "American", "Chineese"} {
		recipes, err := s.recipeRepo.FindByCategory(ctx, category, HomepageLimit)
		if err != nil {
			log.Error().Err(err).Str("category", category).Msg("Error finding homepage recipes")
			return nil, err
		}
		groups = append(groups, recipes)
	}

	return &models.Homepage{
		Categories: categories,
		Food: models.Food{
			Latest:   latest,
			Thai:     groups[0],
			American: groups[1],
			Chineese: groups[2],
		},
	}, nil
}

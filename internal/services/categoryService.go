package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"recipeblog/internal/models"
	"recipeblog/internal/repositories"
)

// CategoryService defines the interface for category-related business logic.
type CategoryService interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
}

type categoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *categoryServiceImpl) GetCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.Find(ctx, ListLimit)
	if err != nil {
		log.Error().Err(err).Msg("Error finding categories")
		return nil, err
	}
	log.Debug().Int("count", len(categories)).Msg("Successfully retrieved categories")
	return categories, nil
}

package handlers

import (
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"recipeblog/internal/models"
)

var errStore = errors.New("server selection timeout")

type fakeHomeService struct {
	page *models.Homepage
	err  error
}

func (f *fakeHomeService) GetHomepage(context.Context) (*models.Homepage, error) {
	return f.page, f.err
}

type fakeCategoryService struct {
	categories []models.Category
	err        error
}

func (f *fakeCategoryService) GetCategories(context.Context) ([]models.Category, error) {
	return f.categories, f.err
}

// fakeRecipeService stores submitted recipes in memory.
type fakeRecipeService struct {
	recipes     []models.Recipe
	random      *models.Recipe
	err         error
	submitErr   error
	submissions []models.RecipeSubmission
	images      map[string]string
	searched    []string
}

func (f *fakeRecipeService) GetRecipe(_ context.Context, id string) (*models.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, rc := range f.recipes {
		if rc.ID.Hex() == id {
			found := rc
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeRecipeService) GetRecipesByCategory(_ context.Context, category string) ([]models.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Recipe{}
	for _, rc := range f.recipes {
		if rc.Category == category {
			out = append(out, rc)
		}
	}
	return out, nil
}

func (f *fakeRecipeService) SearchRecipes(_ context.Context, term string) ([]models.Recipe, error) {
	f.searched = append(f.searched, term)
	if f.err != nil {
		return nil, f.err
	}
	return []models.Recipe{}, nil
}

func (f *fakeRecipeService) GetLatestRecipes(context.Context) ([]models.Recipe, error) {
	return f.recipes, f.err
}

func (f *fakeRecipeService) GetRandomRecipe(context.Context) (*models.Recipe, error) {
	return f.random, f.err
}

func (f *fakeRecipeService) SubmitRecipe(_ context.Context, s models.RecipeSubmission) (*models.Recipe, error) {
	f.submissions = append(f.submissions, s)
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	recipe := &models.Recipe{
		ID:          primitive.NewObjectID(),
		Name:        s.Name,
		Description: s.Description,
		Email:       s.Email,
		Ingredients: s.Ingredients,
		Category:    s.Category,
	}
	if s.Image != nil {
		data, err := io.ReadAll(s.Image.Content)
		if err != nil {
			return nil, err
		}
		if f.images == nil {
			f.images = map[string]string{}
		}
		f.images[s.Image.Filename] = string(data)
		recipe.Image = "1700000000000" + s.Image.Filename
	}
	f.recipes = append(f.recipes, *recipe)
	return recipe, nil
}

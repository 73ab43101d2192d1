package services

import (
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"recipeblog/internal/models"
)

var errStore = errors.New("store unavailable")

// fakeRecipeRepository keeps recipes in insertion order.
type fakeRecipeRepository struct {
	recipes []models.Recipe
	err     error
	skips   []int64
}

func (f *fakeRecipeRepository) Create(_ context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	recipe.ID = primitive.NewObjectID()
	f.recipes = append(f.recipes, *recipe)
	return recipe, nil
}

func (f *fakeRecipeRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, rc := range f.recipes {
		if rc.ID == id {
			found := rc
			return &found, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRecipeRepository) FindLatest(_ context.Context, limit int64) ([]models.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Recipe{}
	for i := len(f.recipes) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, f.recipes[i])
	}
	return out, nil
}

func (f *fakeRecipeRepository) FindByCategory(_ context.Context, category string, limit int64) ([]models.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Recipe{}
	for _, rc := range f.recipes {
		if rc.Category == category && int64(len(out)) < limit {
			out = append(out, rc)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepository) Search(_ context.Context, _ string) ([]models.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.Recipe{}, nil
}

func (f *fakeRecipeRepository) Count(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.recipes)), nil
}

func (f *fakeRecipeRepository) FindOneAt(_ context.Context, skip int64) (*models.Recipe, error) {
	f.skips = append(f.skips, skip)
	if f.err != nil {
		return nil, f.err
	}
	if skip >= int64(len(f.recipes)) {
		return nil, mongo.ErrNoDocuments
	}
	found := f.recipes[skip]
	return &found, nil
}

type fakeCategoryRepository struct {
	categories []models.Category
	err        error
}

func (f *fakeCategoryRepository) Find(_ context.Context, limit int64) ([]models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	if int64(len(f.categories)) > limit {
		return f.categories[:limit], nil
	}
	return f.categories, nil
}

type fakeImageStore struct {
	saved map[string]string
	err   error
}

func (f *fakeImageStore) Save(name string, content io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	stored := "1700000000000" + name
	if f.saved == nil {
		f.saved = map[string]string{}
	}
	f.saved[stored] = string(data)
	return stored, nil
}

type recordingNotifier struct {
	sent []string
	err  error
}

func (n *recordingNotifier) RecipeSubmitted(recipe *models.Recipe) error {
	n.sent = append(n.sent, recipe.Email)
	return n.err
}

package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"recipeblog/internal/services"
	"recipeblog/internal/utils"
	"recipeblog/internal/views"
)

type CategoryHandler struct {
	categoryService services.CategoryService
	recipeService   services.RecipeService
	views           Renderer
}

func NewCategoryHandler(categoryService services.CategoryService, recipeService services.RecipeService, renderer Renderer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, recipeService: recipeService, views: renderer}
}

// ExploreCategories handles GET /categories.
func (h *CategoryHandler) ExploreCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.GetCategories(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error getting categories from service")
		utils.SendServerError(w, err)
		return
	}

	render(w, r, h.views, "categories", views.CategoriesPage{
		Title:      views.Title("Categories"),
		Categories: categories,
	})
}

// ExploreCategoryByID handles GET /category/{id}, where id is the category
// name matched exactly against each recipe's category.
func (h *CategoryHandler) ExploreCategoryByID(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["id"]

	recipes, err := h.recipeService.GetRecipesByCategory(r.Context(), category)
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("Error getting recipes by category")
		utils.SendServerError(w, err)
		return
	}

	log.Debug().Str("category", category).Int("count", len(recipes)).Msg("Category recipes retrieved")
	render(w, r, h.views, "categories", views.CategoriesPage{
		Title:        views.Title("Categories"),
		CategoryName: category,
		CategoryByID: recipes,
	})
}

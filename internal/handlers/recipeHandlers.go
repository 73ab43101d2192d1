package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"recipeblog/internal/services"
	"recipeblog/internal/utils"
	"recipeblog/internal/views"
)

type RecipeHandler struct {
	service services.RecipeService
	views   Renderer
}

func NewRecipeHandler(service services.RecipeService, renderer Renderer) *RecipeHandler {
	return &RecipeHandler{service: service, views: renderer}
}

// ExploreRecipe handles GET /recipes/{id}. An unknown id renders the page
// without a recipe.
func (h *RecipeHandler) ExploreRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID := mux.Vars(r)["id"]

	recipe, err := h.service.GetRecipe(r.Context(), recipeID)
	if err != nil {
		log.Error().Err(err).Str("recipe_id", recipeID).Msg("Error getting recipe from service")
		utils.SendServerError(w, err)
		return
	}

	render(w, r, h.views, "recipe", views.RecipePage{
		Title:  views.Title("Recipe"),
		Recipe: recipe,
	})
}

// SearchRecipe handles POST /search.
func (h *RecipeHandler) SearchRecipe(w http.ResponseWriter, r *http.Request) {
	searchTerm := r.PostFormValue("searchTerm")

	recipes, err := h.service.SearchRecipes(r.Context(), searchTerm)
	if err != nil {
		log.Error().Err(err).Str("searchTerm", searchTerm).Msg("Error searching recipes")
		utils.SendServerError(w, err)
		return
	}

	render(w, r, h.views, "search", views.SearchPage{
		Title:      views.Title("Search"),
		SearchTerm: searchTerm,
		Recipes:    recipes,
	})
}

// ExploreLatest handles GET /explore-latest.
func (h *RecipeHandler) ExploreLatest(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.service.GetLatestRecipes(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error getting latest recipes")
		utils.SendServerError(w, err)
		return
	}

	render(w, r, h.views, "explore-latest", views.ExploreLatestPage{
		Title:   views.Title("Explore Latest"),
		Recipes: recipes,
	})
}

// ExploreRandom handles GET /explore-random.
func (h *RecipeHandler) ExploreRandom(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.service.GetRandomRecipe(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error getting random recipe")
		utils.SendServerError(w, err)
		return
	}

	render(w, r, h.views, "explore-random", views.ExploreRandomPage{
		Title:  views.Title("Explore Random"),
		Recipe: recipe,
	})
}

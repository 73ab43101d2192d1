package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"recipeblog/internal/flash"
	"recipeblog/internal/models"
	"recipeblog/internal/services"
	"recipeblog/internal/views"
)

const (
	maxUploadMemory = 32 << 20
	submitPath      = "/submit-recipe"
	submitSuccess   = "Recipe has been added."
)

type SubmitHandler struct {
	service services.RecipeService
	flashes *flash.Store
	views   Renderer
}

func NewSubmitHandler(service services.RecipeService, flashes *flash.Store, renderer Renderer) *SubmitHandler {
	return &SubmitHandler{service: service, flashes: flashes, views: renderer}
}

// SubmitRecipe handles GET /submit-recipe and shows any pending outcome of
// the previous submission.
func (h *SubmitHandler) SubmitRecipe(w http.ResponseWriter, r *http.Request) {
	infoErrors, err := h.flashes.Take(w, r, flash.KeyErrors)
	if err != nil {
		log.Warn().Err(err).Msg("Could not read error flashes")
	}
	infoSubmit, err := h.flashes.Take(w, r, flash.KeySubmit)
	if err != nil {
		log.Warn().Err(err).Msg("Could not read submit flashes")
	}

	render(w, r, h.views, "submit-recipe", views.SubmitRecipePage{
		Title:      views.Title("Submit Recipe"),
		InfoErrors: infoErrors,
		InfoSubmit: infoSubmit,
		Categories: views.SubmitCategories,
	})
}

// SubmitRecipeOnPost handles POST /submit-recipe. It always redirects back to
// the form; the outcome travels in a flash message.
func (h *SubmitHandler) SubmitRecipeOnPost(w http.ResponseWriter, r *http.Request) {
	if err := h.submit(r); err != nil {
		log.Error().Err(err).Msg("Recipe submission failed")
		h.flash(w, r, flash.KeyErrors, err.Error())
	} else {
		h.flash(w, r, flash.KeySubmit, submitSuccess)
	}
	http.Redirect(w, r, submitPath, http.StatusFound)
}

func (h *SubmitHandler) submit(r *http.Request) error {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	submission := models.RecipeSubmission{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Email:       r.PostFormValue("email"),
		Ingredients: ingredients(r.PostForm["ingredients"]),
		Category:    r.PostFormValue("category"),
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		submission.Image = &models.Upload{Filename: header.Filename, Content: file}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		log.Debug().Msg("No files were uploaded")
	default:
		return err
	}

	_, err = h.service.SubmitRecipe(r.Context(), submission)
	return err
}

func (h *SubmitHandler) flash(w http.ResponseWriter, r *http.Request, key, msg string) {
	if err := h.flashes.Add(w, r, key, msg); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Could not store flash message")
	}
}

// ingredients drops the blank inputs the form always sends. The rest are kept
// exactly as typed.
func ingredients(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

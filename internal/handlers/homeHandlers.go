package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"recipeblog/internal/services"
	"recipeblog/internal/utils"
	"recipeblog/internal/views"
)

type HomeHandler struct {
	service services.HomeService
	views   Renderer
}

func NewHomeHandler(service services.HomeService, renderer Renderer) *HomeHandler {
	return &HomeHandler{service: service, views: renderer}
}

// Homepage handles GET /.
func (h *HomeHandler) Homepage(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.GetHomepage(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error loading homepage")
		utils.SendServerError(w, err)
		return
	}

	render(w, r, h.views, "index", views.IndexPage{
		Title:      views.Title("Homepage"),
		Categories: page.Categories,
		Food:       page.Food,
	})
}

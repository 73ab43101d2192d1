package handlers

import (
	"net/http"

	"recipeblog/internal/database"
	"recipeblog/internal/utils"
	"recipeblog/internal/views"
)

type CommonHandler struct {
	db    database.Service
	views Renderer
}

func NewCommonHandler(db database.Service, renderer Renderer) *CommonHandler {
	return &CommonHandler{db: db, views: renderer}
}

// Contact handles GET /contact.
func (h *CommonHandler) Contact(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.views, "contact", views.ContactPage{Title: views.Title("Contact")})
}

func (h *CommonHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	health := h.db.Health()
	status := http.StatusOK
	if health["message"] != "It's healthy" {
		status = http.StatusServiceUnavailable
	}
	utils.RespondWithJSON(w, status, health)
}

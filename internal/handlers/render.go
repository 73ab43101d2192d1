package handlers

import (
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"recipeblog/internal/utils"
)

// Renderer executes a named page template.
type Renderer interface {
	Render(w io.Writer, name string, data interface{}) error
}

func render(w http.ResponseWriter, r *http.Request, views Renderer, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := views.Render(w, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Str("path", r.URL.Path).Msg("Error rendering page")
		utils.SendServerError(w, err)
	}
}

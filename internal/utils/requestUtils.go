package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

const defaultErrorMessage = "Error Occurred"

// RespondWithJSON writes payload as a JSON response with the given status.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Error marshalling JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// SendJSONError writes {"message": ...}. An empty message falls back to a
// generic one.
func SendJSONError(w http.ResponseWriter, message string, code int) {
	if message == "" {
		message = defaultErrorMessage
	}
	RespondWithJSON(w, code, map[string]string{"message": message})
}

// SendServerError reports err as a 500 with its message.
func SendServerError(w http.ResponseWriter, err error) {
	message := ""
	if err != nil {
		message = err.Error()
	}
	SendJSONError(w, message, http.StatusInternalServerError)
}

package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendServerError(t *testing.T) {
	t.Run("uses the error message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		SendServerError(rec, errors.New("connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"message":"connection refused"}`, rec.Body.String())
	})

	t.Run("falls back to the default message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		SendServerError(rec, errors.New(""))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"Error Occurred"}`, rec.Body.String())
	})
}

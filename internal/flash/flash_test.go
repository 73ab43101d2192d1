package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carryCookies(from *httptest.ResponseRecorder, to *http.Request) {
	for _, c := range from.Result().Cookies() {
		to.AddCookie(c)
	}
}

func TestTakeReturnsMessagesOnce(t *testing.T) {
	store := NewStore("test-secret", false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/submit-recipe", nil)
	require.NoError(t, store.Add(rec, req, KeySubmit, "Recipe has been added."))

	next := httptest.NewRequest(http.MethodGet, "/submit-recipe", nil)
	carryCookies(rec, next)
	nextRec := httptest.NewRecorder()

	msgs, err := store.Take(nextRec, next, KeySubmit)
	require.NoError(t, err)
	assert.Equal(t, []string{"Recipe has been added."}, msgs)

	errs, err := store.Take(nextRec, next, KeyErrors)
	require.NoError(t, err)
	assert.Empty(t, errs)

	// the cleared session cookie no longer carries the message
	third := httptest.NewRequest(http.MethodGet, "/submit-recipe", nil)
	carryCookies(nextRec, third)
	msgs, err = store.Take(httptest.NewRecorder(), third, KeySubmit)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestTakeWithoutSession(t *testing.T) {
	store := NewStore("test-secret", false)

	req := httptest.NewRequest(http.MethodGet, "/submit-recipe", nil)
	msgs, err := store.Take(httptest.NewRecorder(), req, KeyErrors)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestCookieAttributes(t *testing.T) {
	for _, secure := range []bool{false, true} {
		store := NewStore("test-secret", secure)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/submit-recipe", nil)
		require.NoError(t, store.Add(rec, req, KeyErrors, "boom"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, secure, cookies[0].Secure)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, 1200, cookies[0].MaxAge)
	}
}

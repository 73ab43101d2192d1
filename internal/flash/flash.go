// Package flash keeps one-shot messages in the visitor's session cookie.
package flash

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "cookingblog"
	maxAge      = 1200

	KeySubmit = "infoSubmit"
	KeyErrors = "infoErrors"
)

type Store struct {
	sessions sessions.Store
}

// NewStore builds a cookie-backed flash store signed with secret.
func NewStore(secret string, secure bool) *Store {
	cookies := sessions.NewCookieStore([]byte(secret))
	cookies.MaxAge(maxAge)
	cookies.Options.Path = "/"
	cookies.Options.HttpOnly = true
	cookies.Options.Secure = secure
	cookies.Options.SameSite = http.SameSiteLaxMode
	return &Store{sessions: cookies}
}

// Add queues msg under key for the next request.
func (s *Store) Add(w http.ResponseWriter, r *http.Request, key, msg string) error {
	session, err := s.sessions.Get(r, sessionName)
	if err != nil && session == nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	session.AddFlash(msg, key)
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Take returns the messages queued under key and clears them.
func (s *Store) Take(w http.ResponseWriter, r *http.Request, key string) ([]string, error) {
	session, err := s.sessions.Get(r, sessionName)
	if err != nil && session == nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	flashes := session.Flashes(key)
	if len(flashes) == 0 {
		return nil, nil
	}
	if err := session.Save(r, w); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	msgs := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if msg, ok := f.(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs, nil
}

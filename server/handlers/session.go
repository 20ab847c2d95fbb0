package handlers

import (
	"net/http"

	"glucose-advisor/config"

	"github.com/google/uuid"
)

// sessionID returns the caller's session ID from its cookie. When create is
// set and the cookie is missing or malformed, a new ID is minted and sent back.
func sessionID(w http.ResponseWriter, r *http.Request, create bool) string {
	if c, err := r.Cookie(config.SESSION_COOKIE_NAME); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}
	if !create {
		return ""
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     config.SESSION_COOKIE_NAME,
		Value:    id,
		Path:     "/",
		MaxAge:   config.SESSION_COOKIE_MAX_AGE_SECONDS,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

package session

import "net/http"

// SetCookie writes the session ID cookie on the response.
func SetCookie(w http.ResponseWriter, name string, s *Session, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    s.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  s.Expiry,
	})
}

// ClearCookie expires the session cookie on the response.
func ClearCookie(w http.ResponseWriter, name string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// ReadCookie returns the session ID from the request cookie, or "" when the
// cookie is absent.
func ReadCookie(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

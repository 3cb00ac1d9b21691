package session

import (
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(header string) string {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

// TokenFromRequest returns the session token from the named cookie, falling
// back to the Authorization header.
func TokenFromRequest(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	return BearerToken(r.Header.Get("Authorization"))
}

// Package session describes the externally issued proof of authentication
// that gates every user-facing operation.
package session

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNoSession is returned when the request carries no session token.
	ErrNoSession = errors.New("no session")
	// ErrInvalidSession is returned when the token is unknown, expired or forged.
	ErrInvalidSession = errors.New("invalid session")
)

// Session is the identity provider's view of the signed-in user.
// Name, Email and ImageURL are the provider's profile fields; they take
// precedence over the stored record when the dashboard renders.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	FullName  string    `json:"full_name,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the session carries an expiry that has passed.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Verifier resolves an opaque token to a session.
// Implementations return ErrInvalidSession for tokens they reject and a
// wrapped infrastructure error when the backing service is unavailable.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Session, error)
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored by NewContext, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}

package session

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	domain "trading-dashboard/internal/domain/session"
)

// Claims is the identity provider's token payload.
type Claims struct {
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	GivenName string `json:"given_name,omitempty"`
	Picture   string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier accepts HS256 tokens signed by the identity provider.
type JWTVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier creates a verifier. An empty issuer disables the issuer check.
func NewJWTVerifier(secret, issuer string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), issuer: issuer}
}

// Verify parses and validates token. Any parse or claim failure is ErrInvalidSession.
func (v *JWTVerifier) Verify(_ context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrNoSession
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, domain.ErrInvalidSession
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || strings.TrimSpace(claims.Email) == "" {
		return nil, domain.ErrInvalidSession
	}

	sess := &domain.Session{
		UserID:    claims.Subject,
		Email:     claims.Email,
		FirstName: claims.GivenName,
		FullName:  claims.Name,
		ImageURL:  claims.Picture,
	}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}

// Sign issues a token for claims. Used by tooling and tests that stand in
// for the identity provider.
func (v *JWTVerifier) Sign(claims Claims) (string, error) {
	if v.issuer != "" && claims.Issuer == "" {
		claims.Issuer = v.issuer
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

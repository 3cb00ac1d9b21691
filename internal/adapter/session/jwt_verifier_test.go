package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "trading-dashboard/internal/domain/session"
)

func TestJWTVerifier_RoundTrip(t *testing.T) {
	v := NewJWTVerifier("secret", "idp")
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	token, err := v.Sign(Claims{
		Email:     "jane@x.com",
		Name:      "Jane Doe",
		GivenName: "Jane",
		Picture:   "https://idp/j.png",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	require.NoError(t, err)

	sess, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, "jane@x.com", sess.Email)
	assert.Equal(t, "Jane", sess.FirstName)
	assert.Equal(t, "Jane Doe", sess.FullName)
	assert.Equal(t, "https://idp/j.png", sess.ImageURL)
	assert.True(t, exp.Equal(sess.ExpiresAt))
}

func TestJWTVerifier_Rejects(t *testing.T) {
	v := NewJWTVerifier("secret", "idp")
	ctx := context.Background()

	sign := func(secret string, c Claims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}
	valid := jwt.RegisteredClaims{Issuer: "idp", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}

	tests := map[string]string{
		"malformed":    "not-a-jwt",
		"wrong secret": sign("other", Claims{Email: "jane@x.com", RegisteredClaims: valid}),
		"wrong issuer": sign("secret", Claims{Email: "jane@x.com", RegisteredClaims: jwt.RegisteredClaims{Issuer: "evil"}}),
		"expired": sign("secret", Claims{Email: "jane@x.com", RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "idp",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		}}),
		"no email": sign("secret", Claims{RegisteredClaims: valid}),
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			sess, err := v.Verify(ctx, token)
			assert.Nil(t, sess)
			assert.ErrorIs(t, err, domain.ErrInvalidSession)
		})
	}

	_, err := v.Verify(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestJWTVerifier_NoIssuerCheck(t *testing.T) {
	v := NewJWTVerifier("secret", "")
	token, err := v.Sign(Claims{Email: "jane@x.com"})
	require.NoError(t, err)

	sess, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, sess.ExpiresAt.IsZero())
}

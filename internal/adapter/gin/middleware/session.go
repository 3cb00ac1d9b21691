package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	sessionadapter "trading-dashboard/internal/adapter/session"
	"trading-dashboard/internal/domain/session"
	apperrors "trading-dashboard/pkg/errors"
	"trading-dashboard/pkg/logger"
)

// RequireSession rejects requests without a valid session before any
// input is looked at. The session is stored in the request context.
func RequireSession(verifier session.Verifier, cookieName string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		token := sessionadapter.TokenFromRequest(c.Request, cookieName)

		sess, err := verifier.Verify(ctx, token)
		if err != nil {
			if errors.Is(err, session.ErrNoSession) || errors.Is(err, session.ErrInvalidSession) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.MsgUnauthorized})
				return
			}
			logger.WithContext(ctx, log).Error("session verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": apperrors.MsgInternal})
			return
		}

		ctx = session.NewContext(ctx, sess)
		ctx = logger.WithSessionUser(ctx, sess.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "trading-dashboard/pkg/errors"
	"trading-dashboard/pkg/logger"
)

// ErrorResponse represents an error response. Error carries only the
// caller-safe message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError converts usecase errors to HTTP responses. Internal causes are
// logged and never returned.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	status, msg := apperrors.ToHTTP(err)

	l := logger.WithContext(c.Request.Context(), log)
	if status >= http.StatusInternalServerError {
		l.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	} else {
		l.Debug("request rejected", zap.Int("status", status), zap.String("reason", msg))
	}

	c.JSON(status, ErrorResponse{Error: msg})
}

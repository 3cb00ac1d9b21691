package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"trading-dashboard/internal/domain/session"
	"trading-dashboard/pkg/logger"
)

type stubVerifier struct {
	sessions map[string]*session.Session
	err      error
}

func (s stubVerifier) Verify(_ context.Context, token string) (*session.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	if token == "" {
		return nil, session.ErrNoSession
	}
	if sess, ok := s.sessions[token]; ok {
		return sess, nil
	}
	return nil, session.ErrInvalidSession
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequireSession(t *testing.T) {
	verifier := stubVerifier{sessions: map[string]*session.Session{
		"good": {UserID: "u1", Email: "jane@x.com"},
	}}

	r := gin.New()
	r.Use(RequireSession(verifier, "session", zaptest.NewLogger(t)))
	r.GET("/me", func(c *gin.Context) {
		sess, ok := session.FromContext(c.Request.Context())
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{
			"email": sess.Email,
			"user":  logger.GetSessionUser(c.Request.Context()),
		})
	})

	tests := []struct {
		name     string
		setup    func(r *http.Request)
		wantCode int
		wantBody string
	}{
		{
			name:     "no token",
			setup:    func(*http.Request) {},
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"Unauthorized"}`,
		},
		{
			name:     "unknown token",
			setup:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad") },
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"Unauthorized"}`,
		},
		{
			name:     "bearer token",
			setup:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") },
			wantCode: http.StatusOK,
			wantBody: `{"email":"jane@x.com","user":"u1"}`,
		},
		{
			name:     "cookie token",
			setup:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "session", Value: "good"}) },
			wantCode: http.StatusOK,
			wantBody: `{"email":"jane@x.com","user":"u1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRequireSession_StoreUnavailable(t *testing.T) {
	r := gin.New()
	r.Use(RequireSession(stubVerifier{err: errors.New("redis: connection refused")}, "session", zaptest.NewLogger(t)))
	r.GET("/me", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestRequestIDAndLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestID(), Logger(zap.New(core)))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, logger.GetRequestID(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(logger.RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-1", w.Body.String())
	assert.Equal(t, "req-1", w.Header().Get(logger.RequestIDHeader))

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "/ping", fields["route"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(logger.RequestIDHeader))
	assert.Equal(t, w.Header().Get(logger.RequestIDHeader), w.Body.String())
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	r := gin.New()
	r.Use(Recovery(zap.New(core)))
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	r := gin.New()
	r.Use(m.Handler())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	expected := `
# HELP trading_dashboard_http_requests_total Count of processed HTTP requests
# TYPE trading_dashboard_http_requests_total counter
trading_dashboard_http_requests_total{method="GET",route="/health",status="200"} 2
trading_dashboard_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "trading_dashboard_http_requests_total"))

	_, err = NewMetrics(reg)
	assert.Error(t, err, "duplicate registration")
}

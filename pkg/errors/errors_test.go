package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"invalid email", ErrInvalidEmail, http.StatusBadRequest, "Invalid email"},
		{"not found", ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"internal hides cause", NewInternalError("query users", errors.New("dial tcp: refused")), http.StatusInternalServerError, "Internal server error"},
		{"wrapped", fmt.Errorf("lookup: %w", ErrUserNotFound), http.StatusNotFound, "User not found"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := ToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestToGRPC(t *testing.T) {
	assert.NoError(t, ToGRPC(nil))

	st, ok := status.FromError(ToGRPC(ErrUnauthorized))
	assert.True(t, ok)
	assert.Equal(t, codes.Unauthenticated, st.Code())

	st, _ = status.FromError(ToGRPC(ErrInvalidEmail))
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "Invalid email", st.Message())

	st, _ = status.FromError(ToGRPC(ErrUserNotFound))
	assert.Equal(t, codes.NotFound, st.Code())

	st, _ = status.FromError(ToGRPC(NewInternalError("query", errors.New("secret detail"))))
	assert.Equal(t, codes.Internal, st.Code())
	assert.NotContains(t, st.Message(), "secret detail")

	st, _ = status.FromError(ToGRPC(errors.New("boom")))
	assert.Equal(t, codes.Internal, st.Code())
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternalError("query users", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "query users: connection reset", err.Error())
}

package dashboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"trading-dashboard/internal/domain/user"
)

func TestResolve_FixedOrder(t *testing.T) {
	data := &user.User{Email: "a@b.com"}
	boom := errors.New("boom")

	tests := []struct {
		name string
		in   FetchResult
		want Status
	}{
		{"unresolved wins over error", FetchResult{Done: false, Err: boom, Data: data}, StatusLoading},
		{"error wins over data", FetchResult{Done: true, Err: boom, Data: data}, StatusError},
		{"empty payload", FetchResult{Done: true}, StatusEmpty},
		{"ready", FetchResult{Done: true, Data: data}, StatusReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.in))
		})
	}
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "Loading...", Placeholder(StatusLoading, ""))
	assert.Equal(t, "Error: Failed to fetch user data", Placeholder(StatusError, FetchFailedMessage))
	assert.Equal(t, "No user data available", Placeholder(StatusEmpty, ""))
	assert.Empty(t, Placeholder(StatusReady, ""))
}

package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithSignal returns a context cancelled by SIGINT or SIGTERM, which starts
// the drain of both servers. Calling stop restores default signal handling.
func WithSignal(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

package app

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"trading-dashboard/cmd/api/di"
	"trading-dashboard/cmd/api/server"
	"trading-dashboard/internal/config"
)

func testApp(t *testing.T) (*App, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := &config.Config{}
	cfg.App.ShutdownTimeoutSeconds = 1
	cfg.Dashboard.RenderWait = 2 * time.Second
	cfg.Dashboard.PlaceholderAvatar = "/images/placeholder-avatar.png"

	l := zap.New(core)

	return &App{
		Config: cfg,
		Logger: l,
		Server: &server.Server{
			Config: cfg,
			Logger: l,
			GRPC:   grpc.NewServer(),
			HTTP:   &http.Server{ReadHeaderTimeout: time.Second},
		},
		Container: &di.Container{},
	}, logs
}

func TestShutdown_StopsServers(t *testing.T) {
	a, logs := testApp(t)

	lis := bufconn.Listen(1024)
	served := make(chan error, 1)
	go func() { served <- a.Server.GRPC.Serve(lis) }()

	httpLis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = a.Server.HTTP.Serve(httpLis) }()

	require.NoError(t, a.shutdown())

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("gRPC server still serving after shutdown")
	}
	assert.Equal(t, 1, logs.FilterMessage("shutdown complete").Len())
}

func TestRun_ShutsDownWhenContextEnds(t *testing.T) {
	a, logs := testApp(t)
	a.Config.App.GRPCPort = "0"
	a.Server.HTTP.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, a.Run(ctx))

	settings := logs.FilterMessage("dashboard settings").All()
	require.Len(t, settings, 1)
	fields := settings[0].ContextMap()
	assert.Equal(t, "/images/placeholder-avatar.png", fields["placeholder_avatar"])
	assert.Equal(t, 2*time.Second, fields["render_wait"])
	assert.Equal(t, 1, logs.FilterMessage("shutdown complete").Len())
}

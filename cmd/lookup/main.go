// Command lookup prints the public profile of one user as JSON, going
// through the same session-gated endpoint the dashboard uses.
//
//	LOOKUP_BASE_URL=http://localhost:8080 LOOKUP_SESSION_TOKEN=<token> lookup jane@x.com
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/viper"

	"trading-dashboard/pkg/client"
	"trading-dashboard/pkg/logger"
)

var errUsage = errors.New("usage: lookup <email>")

type settings struct {
	BaseURL  string
	Token    string
	Timeout  time.Duration
	LogLevel string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, loadSettings())
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "lookup:", err)
		os.Exit(1)
	}
}

// loadSettings reads LOOKUP_* environment variables.
func loadSettings() settings {
	v := viper.New()
	v.SetEnvPrefix("LOOKUP")
	v.AutomaticEnv()
	v.SetDefault("BASE_URL", "http://localhost:8080")
	v.SetDefault("SESSION_TOKEN", "")
	v.SetDefault("TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "warn")

	return settings{
		BaseURL:  v.GetString("BASE_URL"),
		Token:    v.GetString("SESSION_TOKEN"),
		Timeout:  v.GetDuration("TIMEOUT"),
		LogLevel: v.GetString("LOG_LEVEL"),
	}
}

func run(ctx context.Context, args []string, out io.Writer, s settings) error {
	if len(args) != 1 || args[0] == "" {
		return errUsage
	}

	log, err := logger.New(logger.Config{
		Level:      s.LogLevel,
		Format:     "console",
		OutputPath: "stderr",
		Service:    "lookup",
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	c, err := client.New(s.BaseURL,
		client.WithSessionToken(s.Token),
		client.WithHTTPClient(&http.Client{Timeout: s.Timeout}),
		client.WithLogger(log),
	)
	if err != nil {
		return err
	}

	p, err := c.GetUser(ctx, args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

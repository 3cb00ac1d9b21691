package infrastructure

import (
	"fmt"

	"go.uber.org/zap"

	sessionadapter "trading-dashboard/internal/adapter/session"
	"trading-dashboard/internal/config"
	"trading-dashboard/internal/domain/session"
	redisclient "trading-dashboard/pkg/redis"
)

// NewSessionVerifier builds the verifier selected by SESSION_PROVIDER.
// The redis provider requires rdb; the jwt provider ignores it.
func NewSessionVerifier(cfg *config.Config, rdb *redisclient.Client, l *zap.Logger) (session.Verifier, error) {
	switch cfg.Session.Provider {
	case config.SessionProviderRedis:
		if rdb == nil {
			return nil, fmt.Errorf("redis session provider requires a Redis client")
		}
		l.Info("using Redis session store", zap.String("prefix", cfg.Session.RedisPrefix))
		return sessionadapter.NewRedisStore(rdb.Client, cfg.Session.RedisPrefix, l), nil
	case config.SessionProviderJWT:
		l.Info("using JWT session verifier", zap.String("issuer", cfg.Session.JWTIssuer))
		return sessionadapter.NewJWTVerifier(cfg.Session.JWTSecret, cfg.Session.JWTIssuer), nil
	default:
		return nil, fmt.Errorf("unknown session provider %q", cfg.Session.Provider)
	}
}

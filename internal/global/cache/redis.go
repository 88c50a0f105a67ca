package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"controle-estagiarios/config"
	"controle-estagiarios/internal/global/logger"
)

var Client *redis.Client

// Init connects to Redis when a host is configured. Redis is optional:
// without it the login throttle falls back to allowing every attempt.
func Init() {
	cfg := config.Get().Redis
	if cfg.Host == "" {
		return
	}
	Client = redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := Client.Ping(ctx).Err(); err != nil {
		logger.New("Cache").Warn("redis unreachable, login throttling disabled", "error", err)
		Client = nil
	}
}

const (
	loginAttemptKey    = "login_attempts"
	loginAttemptLimit  = 5
	loginAttemptWindow = 10 * time.Minute
)

// LoginThrottled reports whether the admin login is currently locked out
// by too many failed attempts from any source. Single-tenant system, so
// the counter is global rather than per-IP.
func LoginThrottled(ctx context.Context) bool {
	if Client == nil {
		return false
	}
	count, err := Client.Get(ctx, loginAttemptKey).Int()
	if err != nil {
		return false
	}
	return count >= loginAttemptLimit
}

// RegisterFailedLogin bumps the failure counter, starting the lockout
// window on the first failure.
func RegisterFailedLogin(ctx context.Context) {
	if Client == nil {
		return
	}
	pipe := Client.TxPipeline()
	pipe.Incr(ctx, loginAttemptKey)
	pipe.Expire(ctx, loginAttemptKey, loginAttemptWindow)
	_, _ = pipe.Exec(ctx)
}

// ResetLoginAttempts clears the counter after a successful login.
func ResetLoginAttempts(ctx context.Context) {
	if Client == nil {
		return
	}
	_ = Client.Del(ctx, loginAttemptKey).Err()
}

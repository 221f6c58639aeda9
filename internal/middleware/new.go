package middleware

import (
	"text-to-calendar/config"
	"text-to-calendar/pkg/log"
)

type Middleware struct {
	l              log.Logger
	limiter        *rateLimiter
	allowedOrigins []string
	telegramSecret string
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:              l,
		limiter:        newRateLimiter(cfg.RateLimit.PerMin),
		allowedOrigins: cfg.CORS.AllowedOrigins,
		telegramSecret: cfg.Telegram.WebhookSecret,
	}
}

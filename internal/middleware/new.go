package middleware

import (
	"scheduling-optimizer/config"
	"scheduling-optimizer/pkg/log"
)

type Middleware struct {
	l      log.Logger
	config *config.Config

	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:           l,
		config:      cfg,
		rateLimiter: newRateLimiter(cfg.API.RateLimitPerMin),
	}
}

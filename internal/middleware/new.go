package middleware

import (
	"checklist-sync/pkg/log"
)

type Middleware struct {
	l       log.Logger
	apiKey  string
	limiter *rateLimiter
}

// Config configures the shared middlewares. An empty APIKey disables Auth and
// a non-positive RequestsPerMin disables RateLimit.
type Config struct {
	APIKey         string
	RequestsPerMin int
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:      l,
		apiKey: cfg.APIKey,
	}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}

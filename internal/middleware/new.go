package middleware

import (
	"voice-worklog/pkg/log"
)

// Config holds middleware tunables.
type Config struct {
	// RequestsPerMin caps requests per user. Zero disables rate limiting.
	RequestsPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}

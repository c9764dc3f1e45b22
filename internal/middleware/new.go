package middleware

import (
	"taskdesk/internal/auth"
	"taskdesk/pkg/log"
)

// Middleware bundles the request interceptors shared by all routes.
type Middleware struct {
	l        log.Logger
	verifier *auth.Verifier
	limiter  *rateLimiter
}

// New creates the middleware bag. ratePerMin <= 0 disables rate limiting.
func New(l log.Logger, verifier *auth.Verifier, ratePerMin int) Middleware {
	var limiter *rateLimiter
	if ratePerMin > 0 {
		limiter = newRateLimiter(ratePerMin)
	}
	return Middleware{
		l:        l,
		verifier: verifier,
		limiter:  limiter,
	}
}

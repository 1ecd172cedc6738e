package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/smontoya/kickstore-backend/api/responses"
	pkgerrors "github.com/smontoya/kickstore-backend/pkg/errors"
	"github.com/smontoya/kickstore-backend/pkg/logger"
)

type rateLimiterStore interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// LoginRateLimitPolicy throttles the admin login surface per client IP.
type LoginRateLimitPolicy struct {
	window  time.Duration
	ipLimit int
}

func NewLoginRateLimitPolicy(window time.Duration, ipLimit int) LoginRateLimitPolicy {
	return LoginRateLimitPolicy{window: window, ipLimit: ipLimit}
}

func (p LoginRateLimitPolicy) enabled() bool {
	return p.window > 0 && p.ipLimit > 0
}

// LoginRateLimit enforces a fixed-window per-IP counter on the login route.
// A rate limit store outage fails open.
func LoginRateLimit(policy LoginRateLimitPolicy, store rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ip := clientIP(r)
			scope := fmt.Sprintf("login:ip:%s", ip)

			allowed, count, err := store.FixedWindowAllow(ctx, scope, int64(policy.ipLimit), policy.window)
			if err != nil {
				if logg != nil {
					logg.Error(ctx, "login rate limit check failed", err)
				}
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				if logg != nil {
					ctx = logg.WithFields(ctx, map[string]any{
						"client_ip": ip,
						"count":     count,
						"limit":     policy.ipLimit,
					})
					logg.Warn(ctx, "login rate limited")
				}
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeRateLimit, "too many login attempts"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

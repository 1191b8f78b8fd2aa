package middleware

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"fotogram/internal/httputil"
	"fotogram/internal/redis"
)

// RateLimiter is a fixed-window per-IP limiter backed by Redis, applied to
// the auth endpoints. INCR creates the window key on first hit; EXPIRE is
// only set then, so the window does not slide.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		key := fmt.Sprintf("ratelimit:%s", ip)

		count, err := rl.client.Incr(r.Context(), key).Result()
		if err != nil {
			// Redis being down should not take the API down with it.
			log.Printf("[RateLimiter] Incr failed, allowing request: ip=%s err=%v", ip, err)
			next.ServeHTTP(w, r)
			return
		}

		if count == 1 {
			rl.client.Expire(r.Context(), key, rl.window)
		}

		if count > int64(rl.limit) {
			httputil.WriteTooManyRequests(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"cantina/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ipLimiter is a fixed-window per-IP counter. Entries for IPs that stop
// sending requests are purged by a background sweep so the map does not
// grow without bound.
type ipLimiter struct {
	limit   int
	window  time.Duration
	message string

	mu      sync.Mutex
	windows map[string]*ipWindow
}

type ipWindow struct {
	count int
	until time.Time
}

func newIPLimiter(limit int, window time.Duration, message string) *ipLimiter {
	l := &ipLimiter{
		limit:   limit,
		window:  window,
		message: message,
		windows: make(map[string]*ipWindow),
	}
	go l.sweep()
	return l
}

// allow reports whether ip may make another request in the current window.
func (l *ipLimiter) allow(ip string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[ip]
	if !ok || now.After(w.until) {
		w = &ipWindow{until: now.Add(l.window)}
		l.windows[ip] = w
	}
	w.count++
	return w.count <= l.limit
}

func (l *ipLimiter) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := 0

		l.mu.Lock()
		for ip, w := range l.windows {
			if now.After(w.until) {
				delete(l.windows, ip)
				purged++
			}
		}
		l.mu.Unlock()

		if purged > 0 {
			log.Debug().Int("purged", purged).Msg("rate limiter: stale entries removed")
		}
	}
}

func (l *ipLimiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.message))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter guards the login endpoint: 20 attempts per minute per IP.
// Login has no password to brute-force, but a flood of identity switches is
// still worth throttling.
func LoginRateLimiter() gin.HandlerFunc {
	return newIPLimiter(20, time.Minute,
		"Muitas tentativas de login. Tente novamente em 1 minuto.").handler()
}

// RateLimiter is the general per-IP limiter applied to the whole API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newIPLimiter(limit, window,
		"Muitas solicitações. Tente novamente em instantes.").handler()
}

package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiter keeps a token bucket per client IP. Entries idle longer than ttl
// are evicted by a background sweep.
type ipLimiter struct {
	mu      sync.RWMutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	ttl     time.Duration
}

func Limit(rps, burst int, ttl time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	l := &ipLimiter{
		clients: make(map[string]*client),
		limit:   rate.Limit(rps),
		burst:   burst,
		ttl:     ttl,
	}

	go l.sweep()

	return l.middleware(logger)
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.RLock()
	c, ok := l.clients[ip]
	l.mu.RUnlock()

	if !ok {
		limiter := rate.NewLimiter(l.limit, l.burst)
		l.mu.Lock()
		l.clients[ip] = &client{limiter, time.Now()}
		l.mu.Unlock()
		return limiter
	}

	c.lastSeen = time.Now()
	return c.limiter
}

func (l *ipLimiter) sweep() {
	for {
		time.Sleep(time.Minute)
		l.mu.Lock()
		for ip, c := range l.clients {
			if time.Since(c.lastSeen) > l.ttl {
				delete(l.clients, ip)
			}
		}
		l.mu.Unlock()
	}
}

func (l *ipLimiter) middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				logger.Error("rate limiter ip parse error", slog.String("error", err.Error()))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !l.get(ip).Allow() {
				logger.Warn("rate limit exceeded", slog.String("ip", ip))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

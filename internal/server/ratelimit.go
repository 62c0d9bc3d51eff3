package server

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// defaultMaxClients bounds how many client limiters are tracked at once.
const defaultMaxClients = 10000

// rateLimiter is a per-client token bucket. The least recently seen
// clients are evicted when the table is full.
type rateLimiter struct {
	limiters *lru.Cache[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(rps float64, burst, maxClients int) *rateLimiter {
	if burst <= 0 {
		burst = max(int(rps), 1)
	}
	if maxClients <= 0 {
		maxClients = defaultMaxClients
	}
	// lru.New only fails for a non-positive size.
	limiters, _ := lru.New[string, *rate.Limiter](maxClients)
	return &rateLimiter{
		limiters: limiters,
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

func (rl *rateLimiter) limiter(client string) *rate.Limiter {
	if l, ok := rl.limiters.Get(client); ok {
		return l
	}
	l := rate.NewLimiter(rl.rate, rl.burst)
	// Racing requests for a new client share whichever limiter landed first.
	if prev, ok, _ := rl.limiters.PeekOrAdd(client, l); ok {
		return prev
	}
	return l
}

// Middleware rejects requests over the client's rate with 429.
func (rl *rateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.limiter(clientKey(r)).Allow() {
			retryAfter := max(int(1.0/float64(rl.rate)), 1)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]string{"error": "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey identifies the client by IP. RealIP has already rewritten
// RemoteAddr from forwarding headers.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

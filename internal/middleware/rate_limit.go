package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// limiterIdleTTL is how long an IP's limiter survives without traffic
	// before it is swept; the map must not grow unbounded on an
	// internet-facing surface.
	limiterIdleTTL    = 10 * time.Minute
	limiterSweepEvery = time.Minute
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	limiters      = make(map[string]*ipLimiter)
	limitersMutex sync.Mutex
	lastSweep     time.Time

	whitelistedIPs = map[string]bool{
		"127.0.0.1": true, // in-process scheduler
	}
)

func getLimiter(ip string, now time.Time) *rate.Limiter {
	limitersMutex.Lock()
	defer limitersMutex.Unlock()

	if now.Sub(lastSweep) >= limiterSweepEvery {
		for key, entry := range limiters {
			if now.Sub(entry.lastSeen) > limiterIdleTTL {
				delete(limiters, key)
			}
		}
		lastSweep = now
	}

	entry, exists := limiters[ip]
	if !exists {
		entry = &ipLimiter{limiter: rate.NewLimiter(1, 5)} // 1 request/sec, burst up to 5
		limiters[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// RateLimitMiddleware bounds how often an operator can hammer the sync
// trigger endpoints; each sync fans out real partner traffic.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, _ := net.SplitHostPort(r.RemoteAddr)
		if whitelistedIPs[ip] {
			next.ServeHTTP(w, r)
			return
		}

		limiter := getLimiter(ip, time.Now())
		if !limiter.Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

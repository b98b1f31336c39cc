package http

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultClientIdleTimeout is how long a client's limiter is kept after its
// last request.
const DefaultClientIdleTimeout = 10 * time.Minute

// ClientLimiter provides per-client rate limiting using token buckets. Each
// client gets its own limiter, so one busy client cannot exhaust the model
// quota of the others. Limiters idle for longer than the idle timeout are
// dropped; a returning client starts with a full bucket.
type ClientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientEntry
	rps       float64
	burst     int
	idle      time.Duration
	lastPrune time.Time
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClientLimiter creates a new ClientLimiter allowing rps requests per
// second per client with the given burst. A burst below 1 is treated as 1.
func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ClientLimiter{
		clients: make(map[string]*clientEntry),
		rps:     rps,
		burst:   burst,
		idle:    DefaultClientIdleTimeout,
	}
}

// Wait blocks until the rate limit allows a request from client.
// Returns an error if the context is canceled before the wait completes.
func (l *ClientLimiter) Wait(ctx context.Context, client string) error {
	now := time.Now()

	l.mu.Lock()
	if now.Sub(l.lastPrune) >= l.idle {
		l.prune(now)
	}
	entry, ok := l.clients[client]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
		l.clients[client] = entry
	}
	entry.lastSeen = now
	l.mu.Unlock()

	return entry.limiter.Wait(ctx)
}

// Prune drops the limiters of clients whose last request is older than the
// idle timeout at now. It returns the number of limiters dropped.
func (l *ClientLimiter) Prune(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.prune(now)
}

// Len returns the number of tracked clients.
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// prune requires l.mu.
func (l *ClientLimiter) prune(now time.Time) int {
	l.lastPrune = now
	n := 0
	for client, entry := range l.clients {
		if now.Sub(entry.lastSeen) > l.idle {
			delete(l.clients, client)
			n++
		}
	}
	return n
}

// Middleware delays requests until the client's limiter allows them. Requests
// whose context ends first get 429.
func (l *ClientLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := l.Wait(r.Context(), clientKey(r)); err != nil {
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "Too many requests."})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey identifies the client of r by remote host.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

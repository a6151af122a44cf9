package middleware

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/time/rate"
)

var ErrRateLimited = errors.New("rate limit exceeded, try again later")

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per caller. Authenticated calls are
// keyed by principal, anonymous ones by peer address.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

// NewRateLimiter allows requestsPerMinute per caller plus burst. A
// non-positive requestsPerMinute disables limiting.
func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	limit := rate.Inf
	if requestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(requestsPerMinute))
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     limit,
		burst:    burst,
		now:      time.Now,
	}
}

// Allow reports whether key may make another call now.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[key] = v
	}
	now := rl.now()
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Prune forgets callers idle for longer than idle and returns how many.
func (rl *RateLimiter) Prune(idle time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-idle)
	pruned := 0
	for key, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, key)
			pruned++
		}
	}
	return pruned
}

// Run prunes idle callers every interval until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Prune(interval)
		}
	}
}

// Interceptor rejects calls over the limit with ResourceExhausted. It must
// run inside the auth interceptor to key by principal.
func (rl *RateLimiter) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			key := peerKey(req.Peer().Addr)
			if p := GetPrincipal(ctx); p != "" {
				key = "principal:" + string(p)
			}
			if !rl.Allow(key) {
				return nil, connect.NewError(connect.CodeResourceExhausted, ErrRateLimited)
			}
			return next(ctx, req)
		}
	}
}

// peerKey buckets anonymous callers by host so reconnecting from a new
// source port does not reset the limit.
func peerKey(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return "peer:" + host
	}
	return "peer:" + addr
}

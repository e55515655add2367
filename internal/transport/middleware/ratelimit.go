package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/landing-builder-backend/pkg/ctxutil"
)

const bucketIdleTTL = 10 * time.Minute

// RateLimiter is a per-client token bucket limiter.
type RateLimiter struct {
	mu     sync.Mutex
	scopes []*bucketSet
	stop   chan struct{}
	once   sync.Once
}

// bucketSet holds the buckets of one Limit call.
type bucketSet struct {
	buckets sync.Map // map[string]*bucket
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter starts a limiter whose idle buckets are swept every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows maxPerMinute requests per client for the wrapped routes.
// Each call to Limit owns a separate set of buckets.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	set := &bucketSet{}
	rl.mu.Lock()
	rl.scopes = append(rl.scopes, set)
	rl.mu.Unlock()

	retryAfter := strconv.Itoa(int(60.0/float64(maxPerMinute)) + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ctxutil.ClientIPFromCtx(r.Context())
			if key == "" {
				key = clientIP(r, false)
			}

			if !set.get(key, maxPerMinute).allow(time.Now()) {
				w.Header().Set("Retry-After", retryAfter)
				writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (s *bucketSet) get(key string, maxPerMinute int) *bucket {
	if b, ok := s.buckets.Load(key); ok {
		return b.(*bucket)
	}
	maxTokens := float64(maxPerMinute)
	val, _ := s.buckets.LoadOrStore(key, &bucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: maxTokens / 60.0,
		lastRefill: time.Now(),
	})
	return val.(*bucket)
}

func (b *bucket) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > b.maxTokens {
		b.tokens = b.maxTokens
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.sweep(now)
		}
	}
}

func (rl *RateLimiter) sweep(now time.Time) {
	rl.mu.Lock()
	scopes := append([]*bucketSet(nil), rl.scopes...)
	rl.mu.Unlock()

	for _, set := range scopes {
		set.buckets.Range(func(key, value any) bool {
			b := value.(*bucket)
			b.mu.Lock()
			idle := now.Sub(b.lastRefill)
			b.mu.Unlock()
			if idle > bucketIdleTTL {
				set.buckets.Delete(key)
			}
			return true
		})
	}
}

package ratelimit

import (
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bornholm/libraryms/internal/syncx"
	"github.com/bornholm/libraryms/pkg/log"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const DefaultIdleTimeout = 10 * time.Minute

type keyLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

type RateLimiter struct {
	rate        rate.Limit
	burst       int
	idleTimeout time.Duration
	now         func() time.Time

	keys syncx.Map[string, *keyLimiter]

	sweepMutex sync.Mutex
	lastSweep  time.Time
}

type GetKeyFunc func(r *http.Request) (string, error)

func (l *RateLimiter) Allow(key string) bool {
	now := l.now()

	entry, _ := l.keys.LoadOrStore(key, &keyLimiter{limiter: rate.NewLimiter(l.rate, l.burst)})
	entry.lastSeen.Store(now.UnixNano())

	allowed := entry.limiter.AllowN(now, 1)

	l.maybeSweep(now)

	return allowed
}

// Len returns the number of tracked keys.
func (l *RateLimiter) Len() int {
	count := 0
	l.keys.Range(func(_ string, _ *keyLimiter) bool {
		count++
		return true
	})
	return count
}

// Sweep forgets the keys not seen since the idle timeout.
func (l *RateLimiter) Sweep() {
	l.sweep(l.now())
}

func (l *RateLimiter) maybeSweep(now time.Time) {
	l.sweepMutex.Lock()
	due := now.Sub(l.lastSweep) >= l.idleTimeout
	if due {
		l.lastSweep = now
	}
	l.sweepMutex.Unlock()

	if due {
		l.sweep(now)
	}
}

func (l *RateLimiter) sweep(now time.Time) {
	deadline := now.Add(-l.idleTimeout).UnixNano()

	l.keys.Range(func(key string, entry *keyLimiter) bool {
		if entry.lastSeen.Load() < deadline {
			l.keys.Delete(key)
		}
		return true
	})
}

func (l *RateLimiter) Middleware(getKey GetKeyFunc) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			key, err := getKey(r)
			if err != nil {
				slog.ErrorContext(ctx, "could not retrieve rate limit key", log.Error(errors.WithStack(err)))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !l.Allow(key) {
				slog.WarnContext(ctx, "rate limit exceeded", slog.String("key", key))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type Options struct {
	IdleTimeout time.Duration
	Now         func() time.Time
}

type OptionFunc func(opts *Options)

func WithIdleTimeout(idleTimeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.IdleTimeout = idleTimeout
	}
}

func WithClock(now func() time.Time) OptionFunc {
	return func(opts *Options) {
		opts.Now = now
	}
}

func New(rate rate.Limit, burst int, funcs ...OptionFunc) *RateLimiter {
	opts := &Options{
		IdleTimeout: DefaultIdleTimeout,
		Now:         time.Now,
	}
	for _, fn := range funcs {
		fn(opts)
	}

	return &RateLimiter{
		rate:        rate,
		burst:       burst,
		idleTimeout: opts.IdleTimeout,
		now:         opts.Now,
		lastSweep:   opts.Now(),
	}
}

// Package ratelimit limits API requests per client with token buckets.
package ratelimit

import (
	"math"
	"slices"
	"sync"
	"time"
)

// bucket holds up to capacity tokens and refills at rate tokens per second.
type bucket struct {
	mu       sync.Mutex
	capacity float64
	rate     float64
	tokens   float64
	last     time.Time
}

func newBucket(capacity int, rate float64, now time.Time) *bucket {
	return &bucket{
		capacity: float64(capacity),
		rate:     rate,
		tokens:   float64(capacity),
		last:     now,
	}
}

// take refills the bucket up to now and tries to spend one token. It reports
// the tokens left and how long until the next token arrives.
func (b *bucket) take(now time.Time) (ok bool, remaining int, wait time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = min(b.capacity, b.tokens+now.Sub(b.last).Seconds()*b.rate)
	b.last = now

	if b.tokens >= 1 {
		b.tokens--
		ok = true
	}
	if b.tokens < 1 {
		wait = time.Duration((1 - b.tokens) / b.rate * float64(time.Second))
	}
	return ok, int(math.Floor(b.tokens)), wait
}

func (b *bucket) idleSince(t time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last.Before(t)
}

// Decision is the outcome of one Allow call. Limit is zero when the request
// was not subject to a limit.
type Decision struct {
	Allowed    bool
	Rule       string
	Limit      int
	Remaining  int
	Reset      time.Time
	RetryAfter time.Duration
}

// Limiter tracks one bucket per client and rule.
type Limiter struct {
	cfg Config
	now func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket

	stop chan struct{}
	once sync.Once
}

// NewLimiter creates a limiter. A nil config uses DefaultConfig. When enabled
// with a CleanupInterval, a goroutine drops idle buckets until Stop.
func NewLimiter(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	l := &Limiter{
		cfg:     *cfg,
		now:     time.Now,
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	if l.cfg.IdleTTL <= 0 {
		l.cfg.IdleTTL = time.Hour
	}
	if l.cfg.Enabled && l.cfg.CleanupInterval > 0 {
		go l.sweepEvery(l.cfg.CleanupInterval)
	}
	return l
}

// Allow decides whether clientID may make the request and spends a token if so.
func (l *Limiter) Allow(clientID, method, path string) Decision {
	switch {
	case !l.cfg.Enabled, l.cfg.Trusted[clientID], slices.Contains(l.cfg.Exempt, path):
		return Decision{Allowed: true}
	case l.cfg.Blocked[clientID]:
		return Decision{Allowed: false, Rule: "blocked"}
	}

	rule, ok := match(l.cfg.Rules, method, path)
	if !ok {
		rule = Rule{Name: "default", Limit: l.cfg.DefaultLimit, Window: l.cfg.DefaultWindow}
	}
	if rule.Limit <= 0 || rule.Window <= 0 {
		return Decision{Allowed: true, Rule: rule.Name}
	}

	now := l.now()
	b := l.bucket(clientID+"|"+rule.Name, rule, now)
	allowed, remaining, wait := b.take(now)

	d := Decision{
		Allowed:   allowed,
		Rule:      rule.Name,
		Limit:     rule.Limit,
		Remaining: remaining,
		Reset:     now.Add(wait),
	}
	if !allowed {
		d.RetryAfter = wait
	}
	return d
}

func (l *Limiter) bucket(key string, rule Rule, now time.Time) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[key]
	if !ok {
		b = newBucket(rule.capacity(), float64(rule.Limit)/rule.Window.Seconds(), now)
		l.buckets[key] = b
	}
	return b
}

func (l *Limiter) sweepEvery(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-l.stop:
			return
		}
	}
}

// sweep drops buckets that have not been used for IdleTTL.
func (l *Limiter) sweep() {
	cutoff := l.now().Add(-l.cfg.IdleTTL)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.idleSince(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

package session

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// ipCounter tracks session-creation attempts from a single client IP
// within the current window.
type ipCounter struct {
	count     int
	windowEnd time.Time
}

// CreationLimiter caps how many new sessions a single IP may create per
// window, so a client can't exhaust memory (MemoryStore) or Redis keys
// (CacheStore) by hammering a login endpoint with no cookie.
type CreationLimiter struct {
	mu      sync.Mutex
	entries map[string]*ipCounter
	limit   int
	window  time.Duration
}

// NewCreationLimiter creates a limiter allowing limit session creations per
// window, per IP.
func NewCreationLimiter(limit int, window time.Duration) *CreationLimiter {
	return &CreationLimiter{
		entries: make(map[string]*ipCounter),
		limit:   limit,
		window:  window,
	}
}

// Allow reports whether r's client IP may create another session right
// now, incrementing its counter if so.
func (l *CreationLimiter) Allow(r *http.Request) bool {
	ip := limiterKey(r)

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	entry, ok := l.entries[ip]
	if !ok || now.After(entry.windowEnd) {
		l.entries[ip] = &ipCounter{count: 1, windowEnd: now.Add(l.window)}
		return true
	}

	if entry.count >= l.limit {
		return false
	}
	entry.count++
	return true
}

// Sweep removes expired entries so the map doesn't grow unbounded under a
// distributed low-and-slow attack. Intended to run on the same ticker as
// a Store's CleanupExpired.
func (l *CreationLimiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	for ip, entry := range l.entries {
		if now.After(entry.windowEnd) {
			delete(l.entries, ip)
		}
	}
}

func limiterKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Package session provides a pluggable HTTP session store with in-memory
// and Redis-backed implementations, session fingerprinting, and rate-limited
// session creation.
//
// session 패키지는 인메모리 및 Redis 백엔드 구현, 세션 핑거프린팅, 속도
// 제한이 적용된 세션 생성을 지원하는 플러그형 HTTP 세션 저장소를 제공합니다.
//
// The Store interface lets a process swap backends without touching call
// sites; MemoryStore is the single-node default and CacheStore the
// multi-node drop-in.
package session

import (
	"net/http"
	"sync"
	"time"
)

// Session is a single user session's data and metadata. Data, Flash, and
// the dirty flag are all guarded by mu since a Session can be read from
// one goroutine (background sweep) while the owning request handler
// mutates it.
//
// Session은 단일 사용자 세션의 데이터와 메타데이터입니다.
type Session struct {
	ID          string
	Data        map[string]interface{}
	Flash       map[string]interface{}
	CreatedAt   time.Time
	ExpiresAt   time.Time
	Fingerprint string

	mu    sync.RWMutex
	dirty bool
}

// newSession creates a freshly initialized Session with no data.
func newSession(id string, ttl time.Duration, fingerprint string) *Session {
	now := time.Now()
	return &Session{
		ID:          id,
		Data:        make(map[string]interface{}),
		Flash:       make(map[string]interface{}),
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
		Fingerprint: fingerprint,
	}
}

// Set stores a value in the session and marks it dirty so the dispatcher
// knows to persist it at the end of the request.
func (s *Session) Set(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Data[key] = value
	s.dirty = true
}

// Get retrieves a value from the session.
func (s *Session) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.Data[key]
	return v, ok
}

// GetString retrieves a string value from the session.
func (s *Session) GetString(key string) string {
	v, ok := s.Get(key)
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return str
}

// GetInt retrieves an int value from the session.
func (s *Session) GetInt(key string) int {
	v, ok := s.Get(key)
	if !ok {
		return 0
	}
	i, _ := v.(int)
	return i
}

// GetBool retrieves a bool value from the session.
func (s *Session) GetBool(key string) bool {
	v, ok := s.Get(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Delete removes a value from the session.
func (s *Session) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Data, key)
	s.dirty = true
}

// Clear removes all values from the session.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Data = make(map[string]interface{})
	s.dirty = true
}

// SetFlash stores a flash value: visible to the very next read, then gone.
// Flash messages are the classic "redirect with a success banner" pattern.
func (s *Session) SetFlash(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Flash[key] = value
	s.dirty = true
}

// Flash reads and clears a flash value in one step.
func (s *Session) GetFlash(key string) (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.Flash[key]
	if ok {
		delete(s.Flash, key)
		s.dirty = true
	}
	return v, ok
}

// IsDirty reports whether the session has been modified since it was
// loaded, so the dispatcher can skip a write-back for read-only requests.
func (s *Session) IsDirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// MarkClean resets the dirty flag after a successful persist.
func (s *Session) MarkClean() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
}

// snapshot copies the session's data fields under lock, for backends that
// serialize the session (CacheStore) rather than keep the live pointer
// (MemoryStore).
func (s *Session) snapshot() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data := make(map[string]interface{}, len(s.Data))
	for k, v := range s.Data {
		data[k] = v
	}
	return data
}

// ExportData is the exported form of snapshot, used by callers outside the
// package (the dispatcher) that need to hand a Store.Set a plain data map
// without reaching into Session's unexported fields.
func (s *Session) ExportData() map[string]interface{} {
	return s.snapshot()
}

// CookieOptions configures the cookie a Store's caller (typically the
// dispatcher) emits for a session ID.
type CookieOptions struct {
	Name     string
	Path     string
	Domain   string
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
	MaxAge   time.Duration
}

// DefaultCookieOptions returns production-sane cookie defaults.
func DefaultCookieOptions() CookieOptions {
	return CookieOptions{
		Name:     "SESSION_ID",
		Path:     "/",
		Secure:   false,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   24 * time.Hour,
	}
}

// SetCookie writes a Set-Cookie header carrying id.
func (o CookieOptions) SetCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     o.Name,
		Value:    id,
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   int(o.MaxAge.Seconds()),
		Secure:   o.Secure,
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
	})
}

// ClearCookie expires the session cookie immediately.
func (o CookieOptions) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     o.Name,
		Value:    "",
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   -1,
		Secure:   o.Secure,
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
	})
}

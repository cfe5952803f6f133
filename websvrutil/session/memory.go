package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// shardCount is the number of independent shards a MemoryStore splits its
// sessions across. Each shard has its own RWMutex, so concurrent requests
// touching different sessions rarely contend on the same lock. Session
// IDs are uniformly random, so a fixed shard count spreads load evenly.
const shardCount = 32

// MemoryStore is the in-process Store implementation: a sharded map with
// a background sweep goroutine. Reads take only the owning shard's read
// lock; writes take only that shard's write lock.
type MemoryStore struct {
	shards [shardCount]*shard
	ttl    time.Duration
	fp     Fingerprint

	stopSweep chan struct{}
	sweepOnce sync.Once
}

type shard struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates a MemoryStore with the given default TTL and
// fingerprint mode, and starts its background expiry sweep at the given
// interval. Call Close to stop the sweep.
func NewMemoryStore(ttl, sweepInterval time.Duration, fp Fingerprint) *MemoryStore {
	m := &MemoryStore{
		ttl:       ttl,
		fp:        fp,
		stopSweep: make(chan struct{}),
	}
	for i := range m.shards {
		m.shards[i] = &shard{sessions: make(map[string]*Session)}
	}

	go m.sweepLoop(sweepInterval)
	return m
}

// Close stops the background sweep goroutine. Safe to call more than once.
func (m *MemoryStore) Close() {
	m.sweepOnce.Do(func() { close(m.stopSweep) })
}

func (m *MemoryStore) shardFor(id string) *shard {
	h := xxhash.Sum64String(id)
	return m.shards[h%uint64(shardCount)]
}

// Create makes and stores a brand new session with a fingerprint computed
// from r, used when a request without a valid cookie writes session state
// for the first time.
func (m *MemoryStore) Create(ctx context.Context, id string, r *http.Request, ttl time.Duration) (*Session, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}
	if ttl <= 0 {
		ttl = m.ttl
	}
	sess := newSession(id, ttl, m.fp.Compute(r))
	sh := m.shardFor(id)
	sh.mu.Lock()
	sh.sessions[id] = sess
	sh.mu.Unlock()
	return sess, nil
}

// Save stores sess (data, flash, fingerprint) and pushes its expiry out to
// ttl from now. The in-memory backend holds live pointers, so for a
// session obtained from Get this only refreshes the expiry; a detached
// session value is installed as-is.
func (m *MemoryStore) Save(ctx context.Context, sess *Session, ttl time.Duration) error {
	if !ValidID(sess.ID) {
		return ErrInvalidID
	}
	sh := m.shardFor(sess.ID)
	sh.mu.Lock()
	sh.sessions[sess.ID] = sess
	sh.mu.Unlock()

	sess.mu.Lock()
	sess.ExpiresAt = time.Now().Add(ttl)
	sess.mu.Unlock()
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string, fp *Fingerprint, r *http.Request) (*Session, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}

	sh := m.shardFor(id)
	sh.mu.RLock()
	sess, ok := sh.sessions[id]
	sh.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(sess.ExpiresAt) {
		sh.mu.Lock()
		delete(sh.sessions, id)
		sh.mu.Unlock()
		return nil, ErrExpired
	}

	if fp != nil && fp.Mode != Disabled {
		if !fp.Matches(sess.Fingerprint, r) {
			return nil, ErrFingerprintMismatch
		}
	}

	return sess, nil
}

func (m *MemoryStore) Set(ctx context.Context, id string, data map[string]interface{}, ttl time.Duration) error {
	if !ValidID(id) {
		return ErrInvalidID
	}
	sh := m.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sess, ok := sh.sessions[id]
	if !ok {
		sess = newSession(id, ttl, "")
		sh.sessions[id] = sess
	}
	sess.mu.Lock()
	sess.Data = data
	sess.ExpiresAt = time.Now().Add(ttl)
	sess.dirty = false
	sess.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	sh := m.shardFor(id)
	sh.mu.Lock()
	delete(sh.sessions, id)
	sh.mu.Unlock()
	return nil
}

func (m *MemoryStore) Exists(ctx context.Context, id string) (bool, error) {
	sh := m.shardFor(id)
	sh.mu.RLock()
	sess, ok := sh.sessions[id]
	sh.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return time.Now().Before(sess.ExpiresAt), nil
}

func (m *MemoryStore) CleanupExpired(ctx context.Context) (int, error) {
	removed := 0
	now := time.Now()
	for _, sh := range m.shards {
		sh.mu.Lock()
		for id, sess := range sh.sessions {
			if now.After(sess.ExpiresAt) {
				delete(sh.sessions, id)
				removed++
			}
		}
		sh.mu.Unlock()
	}
	return removed, nil
}

func (m *MemoryStore) Stats(ctx context.Context) (Stats, error) {
	count := 0
	for _, sh := range m.shards {
		sh.mu.RLock()
		count += len(sh.sessions)
		sh.mu.RUnlock()
	}
	return Stats{ActiveSessions: count}, nil
}

func (m *MemoryStore) Regenerate(ctx context.Context, oldID string) (string, error) {
	newID, err := NewID()
	if err != nil {
		return "", err
	}

	oldShard := m.shardFor(oldID)
	oldShard.mu.Lock()
	sess, ok := oldShard.sessions[oldID]
	if ok {
		delete(oldShard.sessions, oldID)
	}
	oldShard.mu.Unlock()
	if !ok {
		sess = newSession(newID, m.ttl, "")
	} else {
		sess.mu.Lock()
		sess.ID = newID
		sess.mu.Unlock()
	}

	newShard := m.shardFor(newID)
	newShard.mu.Lock()
	newShard.sessions[newID] = sess
	newShard.mu.Unlock()

	return newID, nil
}

func (m *MemoryStore) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_, _ = m.CleanupExpired(context.Background())
		case <-m.stopSweep:
			return
		}
	}
}

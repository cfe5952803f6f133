package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	redisclient "github.com/arkd0ng/webcore/database/redis"
)

// record is the compact JSON representation a session is serialized to
// before being stored under a prefixed Redis key.
type record struct {
	ID          string                 `json:"id"`
	Data        map[string]interface{} `json:"data"`
	Flash       map[string]interface{} `json:"flash,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	Fingerprint string                 `json:"fingerprint,omitempty"`
}

// CacheOptions configures a CacheStore.
type CacheOptions struct {
	// KeyPrefix namespaces session keys within a shared Redis instance.
	KeyPrefix string

	// OperationTimeout bounds every individual Redis round trip; a
	// timeout is surfaced as ErrStorageTimeout, never as "not found."
	OperationTimeout time.Duration

	// WritebackLastAccessed, when true, rewrites the stored record on
	// every Get to update a last-accessed timestamp, at the cost of a
	// write on every read. Default false: the read path stays a single
	// GET+TTL round trip, per the Open Question decision recorded in
	// DESIGN.md.
	WritebackLastAccessed bool
}

// DefaultCacheOptions returns sane production defaults.
func DefaultCacheOptions() CacheOptions {
	return CacheOptions{
		KeyPrefix:        "websvrutil:session:",
		OperationTimeout: 2 * time.Second,
	}
}

// CacheStore is a Store backend over the database/redis client wrapper.
// It implements a half-TTL refresh-without-rewrite rule: on Get, if more
// than half of the session's TTL remains, only the key's TTL is touched;
// the value is left alone. This keeps the hot read path to one GET plus
// one conditional EXPIRE instead of a GET-modify-SET round trip.
type CacheStore struct {
	client  *redisclient.Client
	ttl     time.Duration
	fp      Fingerprint
	options CacheOptions
}

// NewCacheStore wraps client as a session Store.
func NewCacheStore(client *redisclient.Client, ttl time.Duration, fp Fingerprint, opts CacheOptions) *CacheStore {
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = DefaultCacheOptions().KeyPrefix
	}
	if opts.OperationTimeout == 0 {
		opts.OperationTimeout = DefaultCacheOptions().OperationTimeout
	}
	return &CacheStore{client: client, ttl: ttl, fp: fp, options: opts}
}

func (c *CacheStore) key(id string) string {
	return c.options.KeyPrefix + id
}

func (c *CacheStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.options.OperationTimeout)
}

func (c *CacheStore) Get(ctx context.Context, id string, fp *Fingerprint, r *http.Request) (*Session, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}

	opCtx, cancel := c.withTimeout(ctx)
	defer cancel()

	raw, err := c.client.Get(opCtx, c.key(id))
	if err != nil {
		if errors.Is(err, redisclient.ErrNil) {
			return nil, ErrNotFound
		}
		if errors.Is(opCtx.Err(), context.DeadlineExceeded) {
			return nil, ErrStorageTimeout
		}
		return nil, err
	}

	var rec record
	if jsonErr := json.Unmarshal([]byte(raw), &rec); jsonErr != nil {
		// A corrupted record is logged by the caller (dispatcher) and
		// treated as absence, per the session store's failure semantics.
		return nil, ErrNotFound
	}

	if fp != nil && fp.Mode != Disabled {
		if !fp.Matches(rec.Fingerprint, r) {
			return nil, ErrFingerprintMismatch
		}
	}

	ttlCtx, ttlCancel := c.withTimeout(ctx)
	remaining, err := c.client.TTL(ttlCtx, c.key(id))
	ttlCancel()
	if err == nil && remaining > 0 && remaining < c.ttl/2 {
		refreshCtx, refreshCancel := c.withTimeout(ctx)
		_ = c.client.Expire(refreshCtx, c.key(id), c.ttl)
		refreshCancel()
	}

	sess := &Session{
		ID:          rec.ID,
		Data:        rec.Data,
		Flash:       rec.Flash,
		CreatedAt:   rec.CreatedAt,
		ExpiresAt:   time.Now().Add(remaining),
		Fingerprint: rec.Fingerprint,
	}
	if sess.Data == nil {
		sess.Data = make(map[string]interface{})
	}
	if sess.Flash == nil {
		sess.Flash = make(map[string]interface{})
	}

	if c.options.WritebackLastAccessed {
		_ = c.writeRecord(ctx, id, rec, c.ttl)
	}

	return sess, nil
}

func (c *CacheStore) writeRecord(ctx context.Context, id string, rec record, ttl time.Duration) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	opCtx, cancel := c.withTimeout(ctx)
	defer cancel()
	return c.client.Set(opCtx, c.key(id), string(payload), ttl)
}

func (c *CacheStore) Set(ctx context.Context, id string, data map[string]interface{}, ttl time.Duration) error {
	if !ValidID(id) {
		return ErrInvalidID
	}
	rec := record{
		ID:        id,
		Data:      data,
		CreatedAt: time.Now(),
	}
	if err := c.writeRecord(ctx, id, rec, ttl); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrStorageTimeout
		}
		return err
	}
	return nil
}

// Create makes and stores a brand new session with a fingerprint computed
// from r.
func (c *CacheStore) Create(ctx context.Context, id string, r *http.Request, ttl time.Duration) (*Session, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}
	if ttl <= 0 {
		ttl = c.ttl
	}
	sess := newSession(id, ttl, c.fp.Compute(r))
	if err := c.Save(ctx, sess, ttl); err != nil {
		return nil, err
	}
	return sess, nil
}

// Save persists the full Session value (data, flash, fingerprint) under
// its key with ttl — the dispatcher's write-back path for dirty sessions,
// as opposed to Set's plain-data-map contract.
func (c *CacheStore) Save(ctx context.Context, sess *Session, ttl time.Duration) error {
	if !ValidID(sess.ID) {
		return ErrInvalidID
	}
	rec := record{
		ID:          sess.ID,
		Data:        sess.snapshot(),
		CreatedAt:   sess.CreatedAt,
		Fingerprint: sess.Fingerprint,
	}
	sess.mu.RLock()
	flash := make(map[string]interface{}, len(sess.Flash))
	for k, v := range sess.Flash {
		flash[k] = v
	}
	sess.mu.RUnlock()
	rec.Flash = flash

	if ttl <= 0 {
		ttl = c.ttl
	}
	if err := c.writeRecord(ctx, sess.ID, rec, ttl); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrStorageTimeout
		}
		return err
	}
	return nil
}

func (c *CacheStore) Delete(ctx context.Context, id string) error {
	opCtx, cancel := c.withTimeout(ctx)
	defer cancel()
	return c.client.Del(opCtx, c.key(id))
}

func (c *CacheStore) Exists(ctx context.Context, id string) (bool, error) {
	opCtx, cancel := c.withTimeout(ctx)
	defer cancel()
	n, err := c.client.Exists(opCtx, c.key(id))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CleanupExpired is a no-op: Redis expires keys natively via TTL.
func (c *CacheStore) CleanupExpired(ctx context.Context) (int, error) {
	return 0, nil
}

// Stats is unsupported for the cache backend without a full KEYS scan,
// which is too expensive to run on a hot path or a timer; it reports zero
// rather than pretending to count.
func (c *CacheStore) Stats(ctx context.Context) (Stats, error) {
	return Stats{}, nil
}

func (c *CacheStore) Regenerate(ctx context.Context, oldID string) (string, error) {
	opCtx, cancel := c.withTimeout(ctx)
	defer cancel()

	raw, err := c.client.Get(opCtx, c.key(oldID))
	if err != nil {
		if errors.Is(err, redisclient.ErrNil) {
			return "", ErrNotFound
		}
		return "", err
	}

	newID, err := NewID()
	if err != nil {
		return "", err
	}

	setCtx, setCancel := c.withTimeout(ctx)
	setErr := c.client.Set(setCtx, c.key(newID), raw, c.ttl)
	setCancel()
	if setErr != nil {
		return "", setErr
	}

	delCtx, delCancel := c.withTimeout(ctx)
	_ = c.client.Del(delCtx, c.key(oldID))
	delCancel()

	return newID, nil
}

package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/arkd0ng/webcore/random"
)

// Store is the pluggable session backend. MemoryStore and CacheStore are
// the two implementations shipped here; both are safe for concurrent use.
type Store interface {
	// Get resolves id to a Session. If fp is non-nil and its Mode is not
	// Disabled, the stored fingerprint is compared against fp.Compute(r)
	// and ErrFingerprintMismatch is returned on a mismatch (hijack signal)
	// instead of silently accepting the session.
	Get(ctx context.Context, id string, fp *Fingerprint, r *http.Request) (*Session, error)

	// Set creates or overwrites the session at id with data, expiring
	// after ttl from now. Flash values and the fingerprint are not part
	// of this operation; use Create/Save for full-session writes.
	Set(ctx context.Context, id string, data map[string]interface{}, ttl time.Duration) error

	// Create makes a brand new empty session at id, computing and storing
	// the fingerprint from r according to the store's configured mode.
	Create(ctx context.Context, id string, r *http.Request, ttl time.Duration) (*Session, error)

	// Save persists the full session — data, flash, fingerprint — and
	// resets its expiry to ttl from now. This is the dispatcher's
	// write-back path for dirty sessions.
	Save(ctx context.Context, sess *Session, ttl time.Duration) error

	// Delete removes a session immediately (used by logout).
	Delete(ctx context.Context, id string) error

	// Exists reports whether id currently resolves to a live session,
	// without the fingerprint check Get performs.
	Exists(ctx context.Context, id string) (bool, error)

	// CleanupExpired sweeps and removes expired sessions, returning how
	// many were removed. Backends that expire entries natively (Redis TTL)
	// can make this a no-op.
	CleanupExpired(ctx context.Context) (int, error)

	// Stats reports point-in-time counters for monitoring.
	Stats(ctx context.Context) (Stats, error)

	// Regenerate moves the session at oldID to a freshly generated ID and
	// returns it, deleting oldID. Called on privilege elevation (e.g.
	// login) so a session ID observed before authentication can't be
	// replayed after it to hijack the now-authenticated session.
	Regenerate(ctx context.Context, oldID string) (newID string, err error)
}

// Stats is a snapshot of store-wide counters.
type Stats struct {
	ActiveSessions int
}

// Sentinel errors returned by Store implementations.
var (
	ErrNotFound            = errors.New("websvrutil/session: session not found")
	ErrExpired             = errors.New("websvrutil/session: session expired")
	ErrFingerprintMismatch = errors.New("websvrutil/session: fingerprint mismatch")
	ErrInvalidID           = errors.New("websvrutil/session: invalid session id")
	ErrStorageTimeout      = errors.New("websvrutil/session: storage operation timed out")
	ErrRateLimited         = errors.New("websvrutil/session: session creation rate limit exceeded")
)

// MinIDLength is the shortest session ID a Store will accept on read.
// random.GenString.Base64URL(IDLength) always produces IDLength characters,
// so a shorter value on the wire means a forged or truncated cookie.
const (
	IDLength    = 43
	MinIDLength = 32
)

// NewID generates a new cryptographically random, URL-safe session ID.
func NewID() (string, error) {
	return random.GenString.Base64URL(IDLength)
}

// ValidID reports whether id is long enough and uses only the base64url
// alphabet, rejecting it before it ever reaches a backend lookup.
func ValidID(id string) bool {
	if len(id) < MinIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}

// FingerprintMode selects how strictly a session's binding to the
// requesting client is enforced.
type FingerprintMode int

const (
	// Disabled performs no fingerprint check at all.
	Disabled FingerprintMode = iota
	// Soft tolerates IP churn within the same /24 (IPv4) or /64 (IPv6)
	// block and a stable User-Agent — catches session-fixation replay
	// from a different network while not punishing mobile IP handoff.
	Soft
	// Strict requires an exact match of the masked IP and User-Agent hash
	// computed at session creation; any drift invalidates the session.
	Strict
)

// Fingerprint binds a session to properties of the client that created
// it, used to detect session hijacking.
type Fingerprint struct {
	Mode FingerprintMode
}

// Compute derives the fingerprint string stored alongside a session, or
// compared against on lookup. Disabled mode returns an empty string so
// Strict/Soft fingerprints that were computed before a mode downgrade
// don't spuriously mismatch.
func (f Fingerprint) Compute(r *http.Request) string {
	if f.Mode == Disabled || r == nil {
		return ""
	}

	ip := maskIP(clientIP(r), f.Mode)
	ua := r.UserAgent()
	if f.Mode == Soft {
		// Soft mode only hashes the User-Agent's product tokens so minor
		// version bumps from auto-updating browsers don't invalidate it.
		if i := strings.IndexByte(ua, '('); i > 0 {
			ua = ua[:i]
		}
	}

	sum := sha256.Sum256([]byte(ip + "|" + ua))
	return hex.EncodeToString(sum[:])
}

// Matches reports whether stored, a fingerprint previously computed by
// Compute, still matches the current request.
func (f Fingerprint) Matches(stored string, r *http.Request) bool {
	if f.Mode == Disabled {
		return true
	}
	return stored == f.Compute(r)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func maskIP(ip string, mode FingerprintMode) string {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return ip
	}
	if mode != Soft {
		return parsed.String()
	}
	if v4 := parsed.To4(); v4 != nil {
		mask := net.CIDRMask(24, 32)
		return parsed.Mask(mask).String()
	}
	mask := net.CIDRMask(64, 128)
	return parsed.Mask(mask).String()
}

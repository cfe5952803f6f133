package websvrutil

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/arkd0ng/webcore/errorutil"
)

// Kind classifies a dispatch-time failure so the error-page module can
// pick a default status and a sanitization strategy without the caller
// having to know HTTP status codes at the call site.
type Kind int

const (
	KindRouting Kind = iota
	KindValidation
	KindAuth
	KindSession
	KindTemplate
	KindStorage
	KindTimeout
	KindInternal
)

// DefaultStatus returns the HTTP status a Kind maps to absent a more
// specific override.
func (k Kind) DefaultStatus() int {
	switch k {
	case KindRouting:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindSession:
		return http.StatusUnauthorized
	case KindTemplate:
		return http.StatusInternalServerError
	case KindStorage:
		return http.StatusInternalServerError
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindRouting:
		return "routing"
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindSession:
		return "session"
	case KindTemplate:
		return "template"
	case KindStorage:
		return "storage"
	case KindTimeout:
		return "timeout"
	default:
		return "internal"
	}
}

// kindError pairs a Kind with an errorutil numeric-coded error, so a single
// NewKindError call gives the error-page renderer both the HTTP status (via
// errorutil.GetNumericCode, which walks Unwrap to find it) and the kind
// name (via ErrorKind) for the JSON `error` field.
//
// A single type can't implement both errorutil.Coder (Code() string) and
// errorutil.NumericCoder (Code() int) — the method signatures collide — so
// the kind name is carried through a distinct kindCarrier interface instead
// of errorutil's string-code mechanism.
type kindError struct {
	kind Kind
	msg  string
	err  error
}

// Error returns the plain message, without the "[status]" prefix the inner
// errorutil error formats with — the status already travels separately, so
// prefixing it into the client-visible message would just duplicate it.
func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.err }

// DispatchKind implements kindCarrier.
func (e *kindError) DispatchKind() Kind { return e.kind }

// kindCarrier is implemented by errors built with NewKindError.
type kindCarrier interface {
	DispatchKind() Kind
}

// NewKindError wraps cause as a numeric-coded errorutil error carrying
// kind's default HTTP status, so errorutil.GetNumericCode recovers the
// status later at the error-page renderer, and tags it with kind so
// ErrorKind can recover the taxonomy name for the JSON error body.
func NewKindError(kind Kind, message string, cause error) error {
	return NewKindErrorWithStatus(kind, kind.DefaultStatus(), message, cause)
}

// NewKindErrorWithStatus is NewKindError with an explicit HTTP status for
// the cases where one Kind spans several statuses — routing covers both 404
// and 405, auth covers both 401 and 403.
func NewKindErrorWithStatus(kind Kind, status int, message string, cause error) error {
	var inner error
	msg := message
	if cause == nil {
		inner = errorutil.WithNumericCode(status, message)
	} else {
		inner = errorutil.WrapWithNumericCode(cause, status, message)
		msg = message + ": " + cause.Error()
	}
	return &kindError{kind: kind, msg: msg, err: inner}
}

// ErrorKind recovers the Kind from err if it (or something in its Unwrap
// chain) was built with NewKindError, defaulting to KindInternal for any
// other error.
func ErrorKind(err error) Kind {
	var kc kindCarrier
	if errors.As(err, &kc) {
		return kc.DispatchKind()
	}
	return KindInternal
}

// sanitizePatterns redact information a production error response must
// not leak: absolute file paths, IPv4 addresses, SQL fragments, and
// credential-looking tokens (JWTs, bearer tokens).
var sanitizePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:[A-Za-z]:)?(?:/[\w.\-]+){2,}`),                 // file paths
	regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`),                     // IPv4
	regexp.MustCompile(`(?i)\b(select|insert|update|delete)\b[^.!?]{0,80}`), // SQL fragments
	regexp.MustCompile(`\beyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\b`), // JWTs
	regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9._-]+\b`),                // bearer tokens
}

// Sanitize redacts sensitive substrings from msg for production-mode
// responses. Development mode should call errorutil.GetStackTrace instead
// and skip this entirely.
func Sanitize(msg string) string {
	out := msg
	for _, re := range sanitizePatterns {
		out = re.ReplaceAllString(out, "[redacted]")
	}
	return out
}

package websvrutil

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/arkd0ng/webcore/logging"
	"github.com/arkd0ng/webcore/websvrutil/session"
)

// Dispatcher is the explicit, end-to-end per-request flow: acquire a
// pooled request, resolve the session, match the route, build a Context,
// run the two-phase pipeline around the handler, persist a dirty/new
// session, and release the pooled request. It replaces the implicit chain
// App.buildHandler assembles from classic func(http.Handler) http.Handler
// middleware with one explicit method the core dispatch loop can be
// reasoned about and tested in isolation from net/http.
//
// Dispatcher grew out of App.buildHandler/Router.ServeHTTP's construction
// of a Context and invocation of the matched handler; here that sequence
// is made an explicit method so the dispatch loop can thread a Pipeline and
// a session.Store through it instead of relying on http.Handler closures.
type Dispatcher struct {
	// Router resolves (method, path) to a handler. Required.
	Router *Router

	// Pipeline is the two-phase middleware chain run around the handler.
	// A nil Pipeline behaves like an empty one (handler runs unguarded).
	Pipeline *Pipeline

	// Pool supplies PooledRequest values so per-dispatch locals storage is
	// reused instead of freshly allocated.
	Pool *RequestPool

	// Sessions is the pluggable session backend. Nil means sessions are
	// disabled entirely — every request is anonymous.
	Sessions session.Store

	// Cookie configures the session cookie's name and attributes.
	Cookie session.CookieOptions

	// Fingerprint configures hijack detection on session lookups.
	Fingerprint session.Fingerprint

	// SessionTTL is the idle TTL applied when persisting a session.
	SessionTTL time.Duration

	// Limiter caps concurrently-live session creation per source IP. Nil
	// disables rate limiting.
	Limiter *session.CreationLimiter

	// Timeout bounds the entire dispatch (route match through outbound).
	// Zero disables the deadline.
	Timeout time.Duration

	// Development selects full error detail (stack traces) over the
	// sanitized production error body.
	Development bool

	// Logger records dispatch-level failures (session errors, panics,
	// timeouts). Defaults to logging.Default() when nil.
	Logger *logging.Logger

	// totalDispatched counts requests that completed Dispatch, exposed via
	// DispatchedCount for coarse operational visibility.
	totalDispatched int64
}

// NewDispatcher creates a Dispatcher over router with an empty Pipeline, a
// fresh RequestPool, and sessions disabled — callers opt into a session
// store and pipeline registrations before serving traffic.
func NewDispatcher(router *Router) *Dispatcher {
	return &Dispatcher{
		Router:   router,
		Pipeline: NewPipeline(),
		Pool:     NewRequestPool(),
		Cookie:   session.DefaultCookieOptions(),
	}
}

func (d *Dispatcher) logger() *logging.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return logging.Default()
}

// DispatchedCount returns how many requests have completed Dispatch.
func (d *Dispatcher) DispatchedCount() int64 {
	return atomic.LoadInt64(&d.totalDispatched)
}

// Dispatch runs one request end to end. It never panics past its own
// boundary: handler/middleware panics are recovered, converted to a
// KindInternal error, and rendered like any other dispatch failure, so one
// bad handler can't take the listener down.
func (d *Dispatcher) Dispatch(w http.ResponseWriter, r *http.Request) {
	defer atomic.AddInt64(&d.totalDispatched, 1)

	// Step 1: acquire a pooled request so per-dispatch scratch storage
	// (the locals map) is reused rather than freshly allocated.
	pool := d.Pool
	if pool == nil {
		pool = NewRequestPool()
	}
	pr := pool.Acquire()
	defer pool.Release(pr)

	dw := &dispatchWriter{ResponseWriter: w}
	defer dw.flush()

	if d.Timeout > 0 {
		timeoutCtx, cancel := context.WithTimeout(r.Context(), d.Timeout)
		defer cancel()
		r = r.WithContext(timeoutCtx)
	}

	ctx := newPooledContext(dw, r, pr)
	ctx.dispatcher = d

	// Step 2: resolve the session cookie, if any, before routing — a
	// handler that short-circuits still sees the caller's session.
	ctx.setSession(d.resolveSession(r))

	// Step 3: route match.
	handler, params, allowed, matchErr := d.Router.Match(r.Method, r.URL.Path)
	r = r.WithContext(contextWithValue(r.Context(), ctx))
	ctx.Request = r
	if len(params) > 0 {
		ctx.setParams(params)
	}

	// A route miss still runs the full pipeline, just with no handler at
	// the center: inbound middleware gets a chance to answer the request
	// itself (a CORS preflight to an unrouted path must still produce its
	// 204), and outbound middleware observes the 404/405 like any other
	// response.
	switch matchErr {
	case ErrMethodNotAllowed:
		if len(allowed) > 0 {
			dw.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		d.runWithRecover(ctx, dw, func(w http.ResponseWriter, r *http.Request) {
			if custom := d.Router.MethodNotAllowedHandler(); custom != nil {
				custom(w, r)
				return
			}
			RenderError(w, r, NewKindErrorWithStatus(KindRouting, http.StatusMethodNotAllowed, "method not allowed", nil), ErrorPageOptions{Development: d.Development})
		})
		d.persistSession(r.Context(), ctx)
		return
	case ErrRouteNotFound:
		d.runWithRecover(ctx, dw, func(w http.ResponseWriter, r *http.Request) {
			if custom := d.Router.NotFoundHandler(); custom != nil {
				custom(w, r)
				return
			}
			RenderError(w, r, NewKindError(KindRouting, "not found", nil), ErrorPageOptions{Development: d.Development})
		})
		d.persistSession(r.Context(), ctx)
		return
	}

	d.runWithRecover(ctx, dw, handler)

	// Steps 8-9: persist the session and emit Set-Cookie; the pooled
	// request is released by the defer above.
	d.persistSession(r.Context(), ctx)
}

// runWithRecover drives the inbound chain, the handler, and the outbound
// chain, and recovers a handler/middleware panic into a rendered 500 —
// outbound still runs over whatever ran before the panic.
func (d *Dispatcher) runWithRecover(ctx *Context, dw *dispatchWriter, handler http.HandlerFunc) {
	pipeline := d.Pipeline
	if pipeline == nil {
		pipeline = NewPipeline()
	}

	defer func() {
		if rec := recover(); rec != nil {
			d.logger().Error("websvrutil: handler panic recovered", "panic", rec, "path", ctx.Request.URL.Path)
			if !dw.wrote {
				RenderError(dw, ctx.Request, NewKindError(KindInternal, "internal server error", nil), ErrorPageOptions{Development: d.Development})
			}
			pipeline.RunOutbound(ctx)
		}
	}()

	action := pipeline.RunInbound(ctx)

	if action == Continue && handler != nil && ctx.Request.Context().Err() == nil {
		handler(dw, ctx.Request)
	}

	// The deadline propagates through the request context, so handlers
	// and middleware doing I/O observe it and return early; whichever
	// phase noticed it, the response built so far still gets its
	// outbound pass, and a 504 goes out only if nothing was written.
	if ctx.Request.Context().Err() != nil {
		d.handleTimeout(ctx, dw)
	}
	pipeline.RunOutbound(ctx)
}

// handleTimeout enforces the dispatcher-level deadline: the in-flight step
// is treated as aborted and a 504 is emitted only if nothing has been
// written yet.
func (d *Dispatcher) handleTimeout(ctx *Context, dw *dispatchWriter) {
	if dw.wrote {
		return
	}
	RenderError(dw, ctx.Request, NewKindError(KindTimeout, "request timed out", nil), ErrorPageOptions{Development: d.Development})
}

// persistSession implements steps 8-9: persist the session if it is dirty
// or newly created this request, and emit Set-Cookie for a newly created
// session.
func (d *Dispatcher) persistSession(stdctx context.Context, ctx *Context) {
	sess := ctx.Session()
	if d.Sessions == nil || sess == nil {
		return
	}
	if !ctx.sessionIsNew && !sess.IsDirty() {
		return
	}

	ttl := d.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if err := d.Sessions.Save(stdctx, sess, ttl); err != nil {
		d.logger().Warn("websvrutil: session persist failed", "error", err, "session_id", sess.ID)
		return
	}
	sess.MarkClean()
	if ctx.sessionIsNew {
		d.Cookie.SetCookie(ctx.ResponseWriter, sess.ID)
	}
}

// resolveSession looks up the session cookie before routing. A storage
// error or invalid/mismatched cookie degrades to an anonymous request
// rather than failing the dispatch.
func (d *Dispatcher) resolveSession(r *http.Request) *session.Session {
	if d.Sessions == nil {
		return nil
	}

	cookie, err := r.Cookie(d.Cookie.Name)
	if err != nil || !session.ValidID(cookie.Value) {
		return nil
	}

	found, getErr := d.Sessions.Get(r.Context(), cookie.Value, &d.Fingerprint, r)
	if getErr != nil {
		// ErrNotFound, ErrExpired, ErrFingerprintMismatch, and storage
		// errors are all treated identically here: log (except the
		// routine not-found/expired cases) and proceed anonymous.
		if getErr != session.ErrNotFound && getErr != session.ErrExpired {
			d.logger().Warn("websvrutil: session lookup failed", "error", getErr)
		}
		return nil
	}
	return found
}

// NewSession creates and registers a brand new session for r, honoring the
// creation rate limiter if one is configured. Context.EnsureSession calls
// this on first write by a request lacking a valid session cookie.
func (d *Dispatcher) NewSession(r *http.Request) (*session.Session, error) {
	if d.Sessions == nil {
		return nil, session.ErrStorageTimeout
	}
	if d.Limiter != nil && !d.Limiter.Allow(r) {
		return nil, session.ErrRateLimited
	}

	id, err := session.NewID()
	if err != nil {
		return nil, err
	}

	ttl := d.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return d.Sessions.Create(r.Context(), id, r, ttl)
}

// ServeHTTP lets a Dispatcher stand in directly for an http.Handler, e.g.
// as the innermost handler App wraps its classic middleware chain around.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.Dispatch(w, r)
}

// dispatchWriter buffers the response instead of streaming it, the same
// way http.TimeoutHandler does: the status line and body are held back
// until flush, so outbound middleware can still append headers after the
// handler has written its body, and the timeout/panic-recovery paths can
// tell whether it's still safe to write an error response of their own.
// Header mutations go straight to the underlying writer's header map,
// which net/http doesn't transmit until WriteHeader is actually called.
type dispatchWriter struct {
	http.ResponseWriter
	status int
	wrote  bool
	body   bytes.Buffer
}

func (dw *dispatchWriter) WriteHeader(code int) {
	if dw.wrote {
		return
	}
	dw.wrote = true
	dw.status = code
}

func (dw *dispatchWriter) Write(b []byte) (int, error) {
	if !dw.wrote {
		dw.WriteHeader(http.StatusOK)
	}
	return dw.body.Write(b)
}

// StatusCode returns the status written so far, or 0 if nothing has been
// written yet.
func (dw *dispatchWriter) StatusCode() int {
	return dw.status
}

// flush emits the buffered status and body to the underlying writer. A
// dispatch where nothing was written at all emits nothing — net/http
// sends its usual empty 200 when the handler returns.
func (dw *dispatchWriter) flush() {
	if !dw.wrote {
		return
	}
	// Content-Length only when nothing downstream (a compression wrapper)
	// will change the body on the way out.
	h := dw.ResponseWriter.Header()
	if dw.body.Len() > 0 && h.Get("Content-Length") == "" && h.Get("Content-Encoding") == "" {
		h.Set("Content-Length", strconv.Itoa(dw.body.Len()))
	}
	dw.ResponseWriter.WriteHeader(dw.status)
	if dw.body.Len() > 0 {
		_, _ = dw.ResponseWriter.Write(dw.body.Bytes())
	}
}

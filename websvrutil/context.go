package websvrutil

import (
	"context"
	"net/http"
	"sync"

	"github.com/arkd0ng/webcore/websvrutil/session"
)

// Context represents the context of the current HTTP request. Request
// metadata access (context_request.go), response writing (context_response.go),
// body binding (context_bind.go), and convenience helpers (context_helpers.go)
// live in their own files; this file owns the struct itself, construction,
// locals, and path-parameter storage.
//
// Context는 현재 HTTP 요청의 컨텍스트를 나타냅니다.
type Context struct {
	// Request is the HTTP request
	Request *http.Request

	// ResponseWriter is the HTTP response writer
	ResponseWriter http.ResponseWriter

	// params stores URL path parameters
	params map[string]string

	// values stores custom context values (per-request locals)
	values map[string]interface{}

	// app is a reference to the App instance
	app *App

	// session is the resolved session for this request, if a session store
	// is configured and a valid cookie (or newly-created session) exists.
	// Nil means the request is anonymous.
	session *session.Session

	// sessionIsNew records whether session was created during this request
	// (via EnsureSession) rather than resolved from an existing cookie, so
	// the Dispatcher knows to emit Set-Cookie even if nothing was written
	// into it yet.
	sessionIsNew bool

	// dispatcher gives EnsureSession somewhere to create a session on
	// first write, without Context needing to know about session.Store,
	// cookies, or rate limiting directly.
	dispatcher *Dispatcher

	// action records what the currently-running inbound middleware decided
	// — Continue, Capture, or ShortCircuit — so Pipeline.RunInbound can stop
	// walking the chain the instant a non-Continue value is set.
	action Action

	// mu protects concurrent access to values
	mu sync.RWMutex
}

// contextKey is the type used for context keys.
type contextKey string

const (
	// contextKeyParams is the key for storing route parameters
	contextKeyParams contextKey = "params"
)

// NewContext creates a new Context instance.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{
		Request:        r,
		ResponseWriter: w,
		params:         make(map[string]string),
		values:         make(map[string]interface{}),
		action:         Continue,
	}
}

// newPooledContext creates a Context backed by pr's reusable Locals map
// instead of a freshly allocated one — the object-pool hookup the
// Dispatcher uses for every dispatch.
func newPooledContext(w http.ResponseWriter, r *http.Request, pr *PooledRequest) *Context {
	return &Context{
		Request:        r,
		ResponseWriter: w,
		params:         make(map[string]string),
		values:         pr.Locals,
		action:         Continue,
	}
}

// Param returns the value of the URL parameter with the given name.
//
// Example:
//
//	// Route: /users/:id
//	// URL: /users/123
//	id := ctx.Param("id") // Returns "123"
func (c *Context) Param(name string) string {
	return c.params[name]
}

// Params returns all URL parameters as a map.
func (c *Context) Params() map[string]string {
	// Return a copy to prevent external modification
	result := make(map[string]string, len(c.params))
	for k, v := range c.params {
		result[k] = v
	}
	return result
}

// setParams sets the URL parameters (internal use only).
func (c *Context) setParams(params map[string]string) {
	c.params = params
}

// Set stores a value in the context.
//
// Example:
//
//	ctx.Set("user", user)
//	ctx.Set("requestID", "12345")
func (c *Context) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

// Get retrieves a value from the context.
//
// Example:
//
//	user, exists := ctx.Get("user")
func (c *Context) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, exists := c.values[key]
	return value, exists
}

// MustGet retrieves a value from the context and panics if it doesn't exist.
func (c *Context) MustGet(key string) interface{} {
	value, exists := c.Get(key)
	if !exists {
		panic("key not found: " + key)
	}
	return value
}

// GetString retrieves a string value from the context.
func (c *Context) GetString(key string) string {
	value, exists := c.Get(key)
	if !exists {
		return ""
	}
	str, _ := value.(string)
	return str
}

// GetInt retrieves an int value from the context.
func (c *Context) GetInt(key string) int {
	value, exists := c.Get(key)
	if !exists {
		return 0
	}
	i, _ := value.(int)
	return i
}

// GetBool retrieves a bool value from the context.
func (c *Context) GetBool(key string) bool {
	value, exists := c.Get(key)
	if !exists {
		return false
	}
	b, _ := value.(bool)
	return b
}

// GetInt64 retrieves an int64 value from the context.
func (c *Context) GetInt64(key string) int64 {
	value, exists := c.Get(key)
	if !exists {
		return 0
	}
	i, _ := value.(int64)
	return i
}

// GetFloat64 retrieves a float64 value from the context.
func (c *Context) GetFloat64(key string) float64 {
	value, exists := c.Get(key)
	if !exists {
		return 0
	}
	f, _ := value.(float64)
	return f
}

// GetStringSlice retrieves a []string value from the context.
func (c *Context) GetStringSlice(key string) []string {
	value, exists := c.Get(key)
	if !exists {
		return nil
	}
	s, _ := value.([]string)
	return s
}

// GetStringMap retrieves a map[string]interface{} value from the context.
func (c *Context) GetStringMap(key string) map[string]interface{} {
	value, exists := c.Get(key)
	if !exists {
		return nil
	}
	m, _ := value.(map[string]interface{})
	return m
}

// Exists checks whether a key is present in the context.
func (c *Context) Exists(key string) bool {
	_, exists := c.Get(key)
	return exists
}

// Delete removes a value from the context.
func (c *Context) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
}

// Keys returns all keys stored in the context.
func (c *Context) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	return keys
}

// Context returns the request's context.Context.
func (c *Context) Context() context.Context {
	return c.Request.Context()
}

// WithContext returns a shallow copy of Context with a new context.Context.
func (c *Context) WithContext(ctx context.Context) *Context {
	c2 := *c
	c2.Request = c.Request.WithContext(ctx)
	return &c2
}

// GetContext retrieves the Context from the request's context.Context.
//
// Example:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    ctx := websvrutil.GetContext(r)
//	    id := ctx.Param("id")
//	}
func GetContext(r *http.Request) *Context {
	value := r.Context().Value(contextKeyParams)
	if value == nil {
		// Return empty context if not found
		return NewContext(nil, r)
	}
	ctx, ok := value.(*Context)
	if !ok {
		return NewContext(nil, r)
	}
	return ctx
}

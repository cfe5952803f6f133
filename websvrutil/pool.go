package websvrutil

import (
	"net/http"
	"sync"
)

// PooledRequest is a reusable holder for per-request scratch state.
// Handlers don't see this type directly — the dispatcher acquires one per
// dispatch and releases it when the response has been written.
type PooledRequest struct {
	Headers    http.Header
	Query      map[string][]string
	Cookies    []*http.Cookie
	Locals     map[string]interface{}
	BodyBuffer []byte
}

// RequestPool is a process-global, lock-free (via sync.Pool) freelist of
// PooledRequest values.
type RequestPool struct {
	pool sync.Pool
}

// NewRequestPool creates a RequestPool.
func NewRequestPool() *RequestPool {
	return &RequestPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &PooledRequest{
					Headers: make(http.Header),
					Query:   make(map[string][]string),
					Locals:  make(map[string]interface{}),
				}
			},
		},
	}
}

// Acquire returns a PooledRequest, either freshly allocated or reused.
// Callers must call Release when done; there is no finalizer.
func (p *RequestPool) Acquire() *PooledRequest {
	return p.pool.Get().(*PooledRequest)
}

// Release clears pr's fields and returns it to the pool. Clearing happens
// here — on release — rather than on Acquire, so a value sitting idle in
// the pool never pins memory from the last request that used it.
//
// Slices are truncated to zero length, not set to nil, to keep their
// backing arrays and avoid a fresh allocation on the next Acquire.
func (p *RequestPool) Release(pr *PooledRequest) {
	for k := range pr.Headers {
		delete(pr.Headers, k)
	}
	for k := range pr.Query {
		delete(pr.Query, k)
	}
	for k := range pr.Locals {
		delete(pr.Locals, k)
	}
	pr.Cookies = pr.Cookies[:0]
	pr.BodyBuffer = pr.BodyBuffer[:0]

	p.pool.Put(pr)
}

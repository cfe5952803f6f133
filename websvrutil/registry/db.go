package registry

import "sync"

// DBHandle is the minimal surface the registry needs from a database
// client so this package never has to import database/mysql's concrete
// *Client type — Install accepts anything satisfying it, keeping the
// registry package dependency-free of any one driver.
type DBHandle interface {
	Close() error
}

// dbRegistry holds the process-wide database handle.
type dbRegistry struct {
	mu     sync.Mutex
	handle DBHandle
	init   bool
}

// DB is the process-wide database handle singleton.
var DB = &dbRegistry{}

// Install sets the database handle. Calling it twice is a fatal error —
// the handle is meant to be wired once at startup.
func (r *dbRegistry) Install(handle DBHandle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.init {
		return ErrAlreadyInitialized{Registry: "db"}
	}
	r.handle = handle
	r.init = true
	return nil
}

// Get returns the installed handle, or nil if Install was never called.
func (r *dbRegistry) Get() DBHandle {
	return r.handle
}

package registry

import (
	"io"
	"sync"
)

// ViewEngine is the minimal surface the registry needs from a template
// engine. websvrutil.TemplateEngine satisfies it, so a startup sequence
// can do registry.Views.Install(app.TemplateEngine()) without this
// package ever importing websvrutil.
type ViewEngine interface {
	Render(w io.Writer, name string, data interface{}) error
	Has(name string) bool
}

type viewsRegistry struct {
	mu     sync.Mutex
	engine ViewEngine
	init   bool
}

// Views is the process-wide view engine singleton.
var Views = &viewsRegistry{}

// Install sets the view engine. Calling it twice is a fatal error.
func (r *viewsRegistry) Install(engine ViewEngine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.init {
		return ErrAlreadyInitialized{Registry: "views"}
	}
	r.engine = engine
	r.init = true
	return nil
}

// Get returns the installed view engine, or nil if Install was never called.
func (r *viewsRegistry) Get() ViewEngine {
	return r.engine
}

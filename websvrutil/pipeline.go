package websvrutil

import "fmt"

// Action is the result of an inbound middleware step, steering how the
// Dispatcher proceeds through the rest of the pipeline.
type Action int

const (
	// Continue proceeds to the next inbound middleware (and, if none
	// remain, the handler).
	Continue Action = iota
	// Capture skips remaining inbound middleware and the handler, but
	// still runs the full outbound chain — used by things like CORS
	// preflight that want to answer the request themselves while still
	// letting outbound middleware (logging, request-id) observe it.
	Capture
	// ShortCircuit skips remaining inbound middleware AND the handler;
	// only outbound middleware runs, over whatever Response the
	// short-circuiting middleware already wrote.
	ShortCircuit
)

func (a Action) String() string {
	switch a {
	case Continue:
		return "continue"
	case Capture:
		return "capture"
	case ShortCircuit:
		return "short_circuit"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// InboundFunc runs before the handler and reports how the pipeline should
// proceed.
type InboundFunc func(*Context) Action

// OutboundFunc runs after the handler (or after a Capture/ShortCircuit),
// in strict reverse order of inbound execution. It cannot re-enter the
// handler — by the time outbound runs, the Response is already decided
// and outbound middleware only observes or augments it (headers, logging).
type OutboundFunc func(*Context)

// Registration is one middleware's place in the pipeline: a name (for
// duplicate detection and debugging), a priority (lower runs earlier
// inbound / later outbound), and either or both phase functions.
type Registration struct {
	Name     string
	Priority int
	Inbound  InboundFunc
	Outbound OutboundFunc

	// order records registration sequence to break priority ties.
	order int
}

// Pipeline is the two-phase, priority-ordered middleware chain. Unlike the
// classic func(http.Handler) http.Handler chain (still available through
// App.Use and the middleware.go library), it splits each middleware into
// separate inbound/outbound phases with Continue/Capture/ShortCircuit
// signalling, so headers can be appended after the handler writes its body
// and phase ordering holds even when a middleware answers the request
// before the handler runs.
type Pipeline struct {
	registrations []Registration
	sorted        bool
	nextOrder     int
}

// NewPipeline creates an empty Pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Register adds reg to the pipeline. Registering two middlewares with the
// same Name is a startup-time configuration error (panic), matching the
// router's "ambiguous registration panics immediately" posture elsewhere
// in this package.
func (p *Pipeline) Register(reg Registration) {
	for _, existing := range p.registrations {
		if existing.Name == reg.Name {
			panic("websvrutil: pipeline middleware already registered: " + reg.Name)
		}
	}
	reg.order = p.nextOrder
	p.nextOrder++
	p.registrations = append(p.registrations, reg)
	p.sorted = false
}

// byPriority sorts registrations by ascending Priority, breaking ties by
// registration order, used for the inbound traversal. The outbound
// traversal walks this same slice backwards over the WHOLE chain, so
// outbound order is always the exact reverse of the configured inbound
// order regardless of which inbound action fired or where the walk
// stopped.
func (p *Pipeline) byPriority() []Registration {
	if !p.sorted {
		sortRegistrations(p.registrations)
		p.sorted = true
	}
	return p.registrations
}

// sortRegistrations performs a stable insertion sort by (Priority, order)
// — the registration count in a typical app is small (a few dozen at
// most), so this is simpler and plenty fast without pulling in sort.Slice
// machinery for a list this short.
func sortRegistrations(regs []Registration) {
	for i := 1; i < len(regs); i++ {
		j := i
		for j > 0 && less(regs[j], regs[j-1]) {
			regs[j], regs[j-1] = regs[j-1], regs[j]
			j--
		}
	}
}

func less(a, b Registration) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.order < b.order
}

// RunInbound walks the inbound chain in priority order and returns the
// Action that stopped the walk (ShortCircuit/Capture), or Continue if
// every step returned Continue.
func (p *Pipeline) RunInbound(ctx *Context) Action {
	for _, reg := range p.byPriority() {
		if reg.Inbound == nil {
			continue
		}
		action := reg.Inbound(ctx)
		ctx.action = action
		if action != Continue {
			return action
		}
	}
	return Continue
}

// RunOutbound runs the Outbound half of EVERY registration in the
// configured chain, in strict reverse priority order — including
// registrations whose Inbound never ran because an earlier step
// short-circuited. A middleware that only wants outbound work when its own
// inbound ran must track that itself (e.g. through a Context local).
func (p *Pipeline) RunOutbound(ctx *Context) {
	regs := p.byPriority()
	for i := len(regs) - 1; i >= 0; i-- {
		if regs[i].Outbound != nil {
			regs[i].Outbound(ctx)
		}
	}
}

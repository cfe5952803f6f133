package websvrutil

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/arkd0ng/webcore/validation"
	"github.com/arkd0ng/webcore/websvrutil/session"
)

// Session returns the session resolved for this request by the dispatcher,
// or nil for an anonymous request (no session store configured, or no
// valid session cookie presented).
func (c *Context) Session() *session.Session {
	return c.session
}

// setSession is called by the dispatcher after resolving (or creating) the
// request's session, before running the pipeline.
func (c *Context) setSession(s *session.Session) {
	c.session = s
}

// EnsureSession returns the request's session, creating one through the
// dispatcher's session store on first use if the request arrived without a
// valid session cookie. Returns an error if no session store is configured
// or session creation is rate-limited.
func (c *Context) EnsureSession() (*session.Session, error) {
	if c.session != nil {
		return c.session, nil
	}
	if c.dispatcher == nil {
		return nil, session.ErrStorageTimeout
	}
	sess, err := c.dispatcher.NewSession(c.Request)
	if err != nil {
		return nil, err
	}
	c.session = sess
	c.sessionIsNew = true
	return sess, nil
}

// RegenerateSession swaps the current session onto a freshly generated ID,
// preserving its data, deleting the old record, and re-emitting the
// session cookie. Call it on privilege elevation (login) so an ID observed
// before authentication can't be replayed afterward.
func (c *Context) RegenerateSession() (string, error) {
	if c.session == nil || c.dispatcher == nil || c.dispatcher.Sessions == nil {
		return "", session.ErrNotFound
	}

	newID, err := c.dispatcher.Sessions.Regenerate(c.Request.Context(), c.session.ID)
	if err != nil {
		return "", err
	}
	c.session.ID = newID
	// Re-emit Set-Cookie at the end of the request so the client drops
	// the old ID.
	c.sessionIsNew = true
	return newID, nil
}

// Flash reads and clears a flash value from the session's flash map — the
// classic "redirect with a banner message" pattern. Returns false if there
// is no session or no value under key.
func (c *Context) Flash(key string) (interface{}, bool) {
	if c.session == nil {
		return nil, false
	}
	return c.session.GetFlash(key)
}

// SetFlash stores a value visible to the very next request that reads it
// via Flash, then gone. A no-op if there is no session for this request.
func (c *Context) SetFlash(key string, value interface{}) {
	if c.session == nil {
		return
	}
	c.session.SetFlash(key, value)
}

// ShortCircuit marks the pipeline to skip remaining inbound middleware and
// the handler, running only the outbound chain over whatever Response has
// already been written. Call this from an InboundFunc that has fully
// answered the request itself (e.g. an auth failure).
func (c *Context) ShortCircuit() {
	c.action = ShortCircuit
}

// Capture marks the pipeline to skip remaining inbound middleware and the
// handler, same as ShortCircuit, but signals that this middleware answered
// the request as expected behavior (e.g. a CORS preflight) rather than a
// failure. The Dispatcher treats both the same; the distinction is for
// whoever reads Context.Action() later, such as logging middleware.
func (c *Context) Capture() {
	c.action = Capture
}

// Action returns the current pipeline action, set by the most recently
// run inbound middleware (or Continue if none has run or all continued).
func (c *Context) Action() Action {
	return c.action
}

// BindAndValidate binds the request body into obj via Bind, then validates
// it field-by-field with the validation package, driven by the same
// `validate:"required,min=3"` struct tags Context.BindWithValidation
// already reads — the difference is that each rule is dispatched onto
// validation's fluent *Validator instead of the in-package
// DefaultValidator, so callers get the richer rule set (Email, URL,
// UUID, ...) through the same tag syntax.
func (c *Context) BindAndValidate(obj interface{}) error {
	if err := c.Bind(obj); err != nil {
		return err
	}

	val := reflect.ValueOf(obj)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	mv := validation.NewValidator()
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		fieldType := typ.Field(i)
		tag := fieldType.Tag.Get("validate")
		if tag == "" {
			continue
		}
		applyValidateTag(mv.Field(val.Field(i).Interface(), fieldType.Name), tag)
	}
	return mv.Validate()
}

// applyValidateTag dispatches each comma-separated rule in tag
// (`validate:"rule,rule=value"` syntax) onto v's fluent API. Unknown rule
// names are skipped, matching DefaultValidator's behavior for
// forward-compatible tags.
func applyValidateTag(v *validation.Validator, tag string) {
	for _, rule := range strings.Split(tag, ",") {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		name, value, _ := strings.Cut(rule, "=")
		switch name {
		case "required":
			v.Required()
		case "email":
			v.Email()
		case "url":
			v.URL()
		case "alpha":
			v.Alpha()
		case "alphanum":
			v.Alphanumeric()
		case "numeric":
			v.Numeric()
		case "uuid":
			v.UUID()
		case "min":
			if n, err := strconv.ParseFloat(value, 64); err == nil {
				v.Min(n)
			}
		case "max":
			if n, err := strconv.ParseFloat(value, 64); err == nil {
				v.Max(n)
			}
		case "len":
			if n, err := strconv.Atoi(value); err == nil {
				v.Length(n)
			}
		case "oneof":
			values := strings.Fields(value)
			args := make([]interface{}, len(values))
			for i, s := range values {
				args[i] = s
			}
			v.OneOf(args...)
		}
	}
}

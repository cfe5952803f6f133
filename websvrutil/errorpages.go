package websvrutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/arkd0ng/webcore/errorutil"
	"github.com/arkd0ng/webcore/stringutil"
)

// ErrorPageOptions configures how RenderError presents a dispatch failure
// to the client — sanitized in production, full-detail (stack trace
// included) in development.
type ErrorPageOptions struct {
	Development bool
}

// errorBody is the JSON shape written for API clients: the error
// taxonomy's Kind name, a human message, the request's correlation ID, and
// the time the error was rendered.
type errorBody struct {
	Error     string   `json:"error"`
	Message   string   `json:"message"`
	RequestID string   `json:"request_id,omitempty"`
	Timestamp string   `json:"timestamp"`
	Stack     []string `json:"stack,omitempty"`
}

// RenderError writes err to w as the final response for a request,
// choosing JSON or HTML by the request's Accept header, status by
// errorutil.GetNumericCode (falling back to 500 if err wasn't built with
// NewKindError), and the `error` field by ErrorKind.
func RenderError(w http.ResponseWriter, r *http.Request, err error, opts ErrorPageOptions) {
	status, ok := errorutil.GetNumericCode(err)
	if !ok {
		status = http.StatusInternalServerError
	}
	kind := ErrorKind(err)

	message := err.Error()
	var stack []string
	if opts.Development {
		if frames, ok := errorutil.GetStackTrace(err); ok {
			for _, f := range frames {
				stack = append(stack, f.String())
			}
		}
	} else {
		message = Sanitize(message)
	}

	requestID, _ := r.Context().Value("request_id").(string)
	timestamp := time.Now().UTC().Format(time.RFC3339)

	if acceptsJSONHeader(r) {
		writeErrorJSON(w, status, kind.String(), message, requestID, timestamp, stack)
		return
	}
	writeErrorHTML(w, status, message, stack)
}

func acceptsJSONHeader(r *http.Request) bool {
	accept := r.Header.Get(HeaderAccept)
	if accept == "" {
		return false
	}
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

func writeErrorJSON(w http.ResponseWriter, status int, kind, message, requestID, timestamp string, stack []string) {
	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error:     kind,
		Message:   message,
		RequestID: requestID,
		Timestamp: timestamp,
		Stack:     stack,
	})
}

// writeErrorHTML renders the built-in error page. It deliberately avoids
// the template engine — an error page must render even if the template
// engine itself is what failed.
func writeErrorHTML(w http.ResponseWriter, status int, message string, stack []string) {
	w.Header().Set(HeaderContentType, ContentTypeHTML)
	w.WriteHeader(status)
	fmt.Fprintf(w, "<!doctype html><html><head><title>%d</title></head><body>", status)
	fmt.Fprintf(w, "<h1>%d %s</h1><p>%s</p>", status, http.StatusText(status), stringutil.HTMLEscape(message))
	if len(stack) > 0 {
		fmt.Fprint(w, "<pre>")
		for _, frame := range stack {
			fmt.Fprintln(w, stringutil.HTMLEscape(frame))
		}
		fmt.Fprint(w, "</pre>")
	}
	fmt.Fprint(w, "</body></html>")
}

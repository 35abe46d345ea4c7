package sportsdata

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// HeaderField is one response header with its values joined by "\n".
type HeaderField struct {
	Name  string
	Value string
}

// APIError reports a non-2xx response with everything needed to diagnose it
// without repeating the request.
type APIError struct {
	StatusCode int
	Reason     string
	Headers    []HeaderField
	HeaderText string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sportsdata: http %d %s", e.StatusCode, e.Reason)
}

// Header returns the joined value of the named header.
func (e *APIError) Header(name string) (string, bool) {
	canonical := http.CanonicalHeaderKey(name)
	for _, field := range e.Headers {
		if field.Name == canonical {
			return field.Value, true
		}
	}
	return "", false
}

// Dump renders status, headers and body as a multi-line report.
func (e *APIError) Dump() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("HTTP Response: ")
	_, _ = buf.WriteString(strconv.Itoa(e.StatusCode))
	_, _ = buf.WriteString(" - ")
	_, _ = buf.WriteString(e.Reason)
	_, _ = buf.WriteString("\n\nHeaders:\n")
	_, _ = buf.WriteString(e.HeaderText)
	_, _ = buf.WriteString("\n\nResponseData:\n")
	_, _ = buf.WriteString(e.Body)

	return buf.String()
}

// DecodeError means the provider answered 2xx but the body did not fit Target.
type DecodeError struct {
	Target string
	Body   string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("sportsdata: decode response into %s: %v", e.Target, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

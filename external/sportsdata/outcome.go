package sportsdata

import (
	"net/http"
	"sort"
	"strings"

	"github.com/valyala/bytebufferpool"
)

// classify passes 2xx bodies through untouched and turns everything else into
// an *APIError.
func classify(resp response) ([]byte, error) {
	if resp.statusCode >= http.StatusOK && resp.statusCode < http.StatusMultipleChoices {
		return resp.body, nil
	}

	headers := collectHeaders(resp.header)
	return nil, &APIError{
		StatusCode: resp.statusCode,
		Reason:     resp.reason,
		Headers:    headers,
		HeaderText: renderHeaders(headers),
		Body:       string(resp.body),
	}
}

// collectHeaders flattens the header map, ordered by canonical name.
func collectHeaders(header http.Header) []HeaderField {
	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]HeaderField, 0, len(names))
	for _, name := range names {
		out = append(out, HeaderField{
			Name:  name,
			Value: strings.Join(header[name], "\n"),
		})
	}
	return out
}

func renderHeaders(fields []HeaderField) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i, field := range fields {
		if i > 0 {
			_ = buf.WriteByte('\n')
		}
		_, _ = buf.WriteString(field.Name)
		_, _ = buf.WriteString(":\n")
		_, _ = buf.WriteString(field.Value)
	}
	return buf.String()
}

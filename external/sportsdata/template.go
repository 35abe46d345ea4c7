package sportsdata

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	formatParam = "format"
	formatJSON  = "json"
)

var placeholderRegex = regexp.MustCompile(`\{[^{}/]+\}`)

// ResolveURL substitutes every {name} placeholder in template and appends
// format=json. The whole URL is lowercased; values are trimmed and
// path-escaped (escapes are lowercased too, hex case is not significant).
// Placeholders without a matching parameter are left as-is.
func (c *Client) ResolveURL(template string, params ...Param) string {
	return resolveURL(c.scheme, c.host, template, params)
}

func resolveURL(scheme, host, template string, params []Param) string {
	path := strings.TrimSpace(template)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	resolved := strings.ToLower(strings.TrimSpace(scheme + "://" + host + path))

	for _, param := range withFormat(params) {
		placeholder := "{" + strings.ToLower(strings.TrimSpace(param.Name)) + "}"
		value := strings.ToLower(url.PathEscape(strings.ToLower(strings.TrimSpace(param.Value))))
		resolved = strings.ReplaceAll(resolved, placeholder, value)
	}

	separator := "?"
	if strings.Contains(resolved, "?") {
		separator = "&"
	}
	return resolved + separator + formatParam + "=" + formatJSON
}

// withFormat returns a copy of params with any caller-supplied format
// dropped and format=json appended last.
func withFormat(params []Param) []Param {
	out := make([]Param, 0, len(params)+1)
	for _, param := range params {
		if strings.EqualFold(strings.TrimSpace(param.Name), formatParam) {
			continue
		}
		out = append(out, param)
	}
	return append(out, Param{Name: formatParam, Value: formatJSON})
}

func unresolvedPlaceholders(resolved string) []string {
	return placeholderRegex.FindAllString(resolved, -1)
}

// Package httputil provides HTTP method and status code validation
// shared by the builder and spec packages.
package httputil

import (
	"strconv"
	"strings"
)

// HTTP method constants in the lowercase form used as PathItem keys.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// knownMethods is the set of HTTP methods an operation may be keyed by.
var knownMethods = map[string]bool{
	MethodGet:     true,
	MethodPut:     true,
	MethodPost:    true,
	MethodDelete:  true,
	MethodOptions: true,
	MethodHead:    true,
	MethodPatch:   true,
	MethodTrace:   true,
}

// NormalizeMethod lowercases an HTTP method for use as a PathItem key.
// It returns the normalized method and whether it is a known method.
func NormalizeMethod(method string) (string, bool) {
	m := strings.ToLower(strings.TrimSpace(method))
	return m, knownMethods[m]
}

// Status code boundaries per RFC 9110.
const (
	minStatusCode = 100
	maxStatusCode = 599
)

// ValidateStatusCode checks if a response key is valid:
//   - "default" for the default response
//   - wildcard patterns: 1XX through 5XX
//   - numeric codes: 100-599
func ValidateStatusCode(code string) bool {
	if code == "default" {
		return true
	}

	if len(code) != 3 {
		return false
	}

	// Wildcard patterns like "2XX".
	if code[1] == 'X' && code[2] == 'X' {
		return code[0] >= '1' && code[0] <= '5'
	}

	n, err := strconv.Atoi(code)
	if err != nil {
		return false
	}
	return n >= minStatusCode && n <= maxStatusCode
}

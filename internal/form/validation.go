package form

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError collects per-field validation messages from the
// pre-flight check. It always blocks submission locally: no network
// call is made while the draft is invalid.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Message returns the message for one field, or ""
func (e *ValidationError) Message(field string) string {
	return e.Fields[field]
}

package registration

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps a payload field name to one or more human-readable
// validation messages. It is the client-correctable error class: when a
// registration attempt fails with FieldErrors, no rows were written and no
// file was stored.
type FieldErrors map[string][]string

// Add appends a message to the given field.
func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Error renders the violations in a stable order.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", f, strings.Join(e[f], ", "))
	}
	return b.String()
}

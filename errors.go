package sten

import (
	"errors"
	"fmt"
	"strings"

	"github.com/strictenc/sten/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Construction-time failures.
	CodeInvalidBound          = "invalid_bound"
	CodeInvalidName           = "invalid_name"
	CodeDuplicateField        = "duplicate_field"
	CodeDuplicateDiscriminant = "duplicate_discriminant"
	CodeEmptyVariantSet       = "empty_variant_set"

	// Registration-time failures.
	CodeDuplicateName      = "duplicate_name"
	CodeUnknownType        = "unknown_type"
	CodeUnboundedRecursion = "unbounded_recursion"
	CodeSchemaSealed       = "schema_sealed"

	// Canonicalization failures. UnresolvableReference signals an
	// internal-consistency violation: registry invariants were bypassed.
	CodeUnresolvableReference = "unresolvable_reference"

	// Value verification failures.
	CodeMalformedValue         = "malformed_value"
	CodeTruncatedValue         = "truncated_value"
	CodeBoundViolation         = "bound_violation"
	CodeOutOfOrderKey          = "out_of_order_key"
	CodeUndeclaredDiscriminant = "undeclared_discriminant"
)

// Issue represents a single failure entry.
type Issue struct {
	Path    string // Slash-separated type or data path (for example: /Person/spouse).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"min":1, "max":10, "got":42})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. duplicate_field at /Person
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries at least one Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// issuef builds a single-Issue error with a translated message.
func issuef(path, code string, params map[string]any) Issues {
	return Issues{{Path: path, Code: code, Message: i18n.T(code, params), Params: params}}
}

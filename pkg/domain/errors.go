package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind tags every business-rule failure a service can produce. Handlers
// map kinds to HTTP statuses and render the catalog message for the key.
type ErrorKind int

const (
	MissingField ErrorKind = iota
	MissingReference
	ReferenceNotFound
	DuplicateKey
	DuplicateRelation
	InvalidFormat
	NotFound
	HasDependents
)

func (k ErrorKind) String() string {
	switch k {
	case MissingField:
		return "MissingField"
	case MissingReference:
		return "MissingReference"
	case ReferenceNotFound:
		return "ReferenceNotFound"
	case DuplicateKey:
		return "DuplicateKey"
	case DuplicateRelation:
		return "DuplicateRelation"
	case InvalidFormat:
		return "InvalidFormat"
	case NotFound:
		return "NotFound"
	case HasDependents:
		return "HasDependents"
	default:
		return "Unknown"
	}
}

// Error is a tagged business error. Key is a message-catalog key
// (e.g. "customer.not.found"); Args parameterize the rendered message with the
// offending id or value. Message formatting itself is a boundary concern.
type Error struct {
	Kind ErrorKind
	Key  string
	Args []any
}

func (e *Error) Error() string {
	if len(e.Args) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Key)
	}
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = fmt.Sprint(a)
	}
	return fmt.Sprintf("%s: %s [%s]", e.Kind, e.Key, strings.Join(parts, ", "))
}

// E builds a tagged Error.
func E(kind ErrorKind, key string, args ...any) *Error {
	return &Error{Kind: kind, Key: key, Args: args}
}

// KindOf extracts the ErrorKind from err, if err wraps a domain Error.
func KindOf(err error) (ErrorKind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}

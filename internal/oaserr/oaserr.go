// Package oaserr defines the error vocabulary for the document viewing
// pipeline. Every fallible stage (loading, reference resolution, canonical
// serialization, highlighting, drawing) produces exactly one Kind, and
// errors propagate upward by early return with no local recovery.
//
// # Usage
//
// Creating errors:
//
//	err := oaserr.ReferenceResolution("unresolvable reference: %s", ref)
//	err := oaserr.Wrap(oaserr.KindSerialization, cause, "marshal schema")
//
// Checking errors:
//
//	if oaserr.IsKind(err, oaserr.KindReferenceResolution) { ... }
//	switch oaserr.KindOf(err) { ... }
//
// Error values interoperate with the standard library: they implement
// Unwrap, so errors.Is and errors.As see through them.
package oaserr

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience so callers can
// import only this package for error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
)

// Kind identifies the pipeline stage an error originated from.
type Kind int

const (
	// KindUnknown is the zero Kind; errors from outside the pipeline.
	KindUnknown Kind = iota
	// KindDocumentLoad indicates the document could not be read or parsed.
	KindDocumentLoad
	// KindReferenceResolution indicates a missing, malformed, or
	// excessively deep schema reference.
	KindReferenceResolution
	// KindSerialization indicates a schema could not be rendered to its
	// canonical textual form.
	KindSerialization
	// KindHighlight indicates a lexical highlighting failure.
	KindHighlight
	// KindRender indicates a drawing failure.
	KindRender
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindDocumentLoad:
		return "document load"
	case KindReferenceResolution:
		return "reference resolution"
	case KindSerialization:
		return "serialization"
	case KindHighlight:
		return "highlight"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// Error is a pipeline error that remembers which stage produced it.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.msg != "" && e.cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.kind, e.msg, e.cause)
	case e.msg != "":
		return fmt.Sprintf("%s: %s", e.kind, e.msg)
	case e.cause != nil:
		return fmt.Sprintf("%s: %v", e.kind, e.cause)
	default:
		return e.kind.String()
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the pipeline stage that produced the error.
func (e *Error) Kind() Kind {
	return e.kind
}

// DocumentLoad creates a KindDocumentLoad error.
func DocumentLoad(format string, args ...interface{}) *Error {
	return &Error{kind: KindDocumentLoad, msg: fmt.Sprintf(format, args...)}
}

// ReferenceResolution creates a KindReferenceResolution error.
func ReferenceResolution(format string, args ...interface{}) *Error {
	return &Error{kind: KindReferenceResolution, msg: fmt.Sprintf(format, args...)}
}

// Serialization creates a KindSerialization error.
func Serialization(format string, args ...interface{}) *Error {
	return &Error{kind: KindSerialization, msg: fmt.Sprintf(format, args...)}
}

// Highlight creates a KindHighlight error.
func Highlight(format string, args ...interface{}) *Error {
	return &Error{kind: KindHighlight, msg: fmt.Sprintf(format, args...)}
}

// Render creates a KindRender error.
func Render(format string, args ...interface{}) *Error {
	return &Error{kind: KindRender, msg: fmt.Sprintf(format, args...)}
}

// Wrap annotates cause with a kind and a message. A nil cause returns nil
// so call sites can wrap unconditionally.
func Wrap(kind Kind, cause error, format string, args ...interface{}) error {
	if cause == nil {
		return nil
	}
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...), cause: cause}
}

// KindOf returns the kind of the outermost pipeline error in err's chain,
// or KindUnknown if the chain contains none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}

// IsKind reports whether err's chain contains a pipeline error of the
// given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.kind == kind {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseResolve  Phase = "resolve"  // class and field resolution
	PhaseAccess   Phase = "access"   // typed field get/set
	PhaseLookup   Phase = "lookup"   // trusted lookup acquisition
	PhaseManifest Phase = "manifest" // class image loading
	PhaseRegistry Phase = "registry" // class definition
)

// Kind categorizes the error
type Kind string

const (
	KindClassNotFound      Kind = "class_not_found"
	KindFieldNotFound      Kind = "field_not_found"
	KindDescriptorMismatch Kind = "descriptor_mismatch"
	KindKindMismatch       Kind = "kind_mismatch"
	KindNotStatic          Kind = "not_static"
	KindWrongHandleType    Kind = "wrong_handle_type"
	KindInvalidInput       Kind = "invalid_input"
	KindInvalidData        Kind = "invalid_data"
	KindDuplicate          Kind = "duplicate"
	KindNullReceiver       Kind = "null_receiver"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Cause      error
	Phase      Phase
	Kind       Kind
	Class      string
	Field      string
	Descriptor string
	Detail     string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Class != "" {
		b.WriteString(" at ")
		b.WriteString(e.Class)
		if e.Field != "" {
			b.WriteByte('.')
			b.WriteString(e.Field)
		}
	}

	if e.Descriptor != "" {
		b.WriteString(" (")
		b.WriteString(e.Descriptor)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Class sets the owner class internal name
func (b *Builder) Class(name string) *Builder {
	b.err.Class = name
	return b
}

// Field sets the field name
func (b *Builder) Field(name string) *Builder {
	b.err.Field = name
	return b
}

// Descriptor sets the type descriptor involved
func (b *Builder) Descriptor(d string) *Builder {
	b.err.Descriptor = d
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// ClassNotFound creates a class resolution failure error
func ClassNotFound(phase Phase, class string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClassNotFound,
		Class:  class,
		Detail: "class not resolvable",
	}
}

// FieldNotFound creates a field resolution failure error. The descriptor is
// part of the lookup key: a field with the right name but a different
// descriptor is still not found.
func FieldNotFound(phase Phase, class, field, desc string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindFieldNotFound,
		Class:      class,
		Field:      field,
		Descriptor: desc,
		Detail:     "no field with this name and descriptor",
	}
}

// KindMismatch creates an error for a value whose active kind differs from
// the kind the entry point declared
func KindMismatch(phase Phase, class, field string, want, got fmt.Stringer) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindKindMismatch,
		Class:  class,
		Field:  field,
		Detail: fmt.Sprintf("field holds %s, accessed as %s", got, want),
	}
}

// WrongHandleType creates an error for a resolved value that is not of the
// expected handle type
func WrongHandleType(phase Phase, wantClass, gotClass string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindWrongHandleType,
		Class:  wantClass,
		Detail: fmt.Sprintf("resolved value is a %s, not a %s", gotClass, wantClass),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Duplicate creates a duplicate definition error
func Duplicate(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDuplicate,
		Detail: fmt.Sprintf("%s %q already defined", what, name),
	}
}

// NullReceiver creates an error for an instance operation on a null receiver
func NullReceiver(phase Phase, class, field string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNullReceiver,
		Class:  class,
		Field:  field,
		Detail: "null receiver for instance field",
	}
}

// Manifest wraps a class image loading failure
func Manifest(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseManifest,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

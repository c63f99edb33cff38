package errors

import (
	"fmt"
	"strings"
)

// Op indicates which engine operation detected the violation
type Op string

const (
	OpConstruct Op = "construct" // variant construction
	OpReserve   Op = "reserve"   // capacity growth
	OpSet       Op = "set"       // assignment
	OpAppend    Op = "append"    // concatenation
	OpFormat    Op = "format"    // formatted write
	OpBind      Op = "bind"      // reference binding
	OpIndex     Op = "index"     // element access
	OpResize    Op = "resize"    // length change
	OpSwap      Op = "swap"      // swap/move
)

// Kind categorizes the violation
type Kind string

const (
	KindNilSource      Kind = "nil_source"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindNegativeCount  Kind = "negative_count"
	KindCapacityLimit  Kind = "capacity_limit"
	KindLocalSizeLimit Kind = "local_size_limit"
	KindFormatFailed   Kind = "format_failed"
	KindCopiedValue    Kind = "copied_value"
	KindRefWrite       Kind = "ref_write"
)

// Error is the structured error delivered to the engine's assert hook.
// The mutation API itself never returns an Error; failure there is
// communicated through boolean and sentinel results.
type Error struct {
	Value  any
	Cause  error
	Op     Op
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

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
		return e.Op == t.Op && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op Op, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// Convenience constructors for common violations

// NilSource creates a nil source pointer error
func NilSource(op Op) *Error {
	return &Error{
		Op:     op,
		Kind:   KindNilSource,
		Detail: "nil source",
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(op Op, index, length int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// NegativeCount creates a negative count/length error
func NegativeCount(op Op, count int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindNegativeCount,
		Detail: fmt.Sprintf("negative count %d", count),
		Value:  count,
	}
}

// CapacityLimit creates an error for a capacity request exceeding the
// packed field's representable maximum
func CapacityLimit(op Op, requested, max int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindCapacityLimit,
		Detail: fmt.Sprintf("requested capacity %d exceeds maximum %d", requested, max),
		Value:  requested,
	}
}

// LocalSizeLimit creates an error for an invalid local buffer size
func LocalSizeLimit(size, max int) *Error {
	return &Error{
		Op:     OpConstruct,
		Kind:   KindLocalSizeLimit,
		Detail: fmt.Sprintf("local buffer size %d outside 1..%d", size, max),
		Value:  size,
	}
}

// FormatFailed creates a formatting primitive failure error
func FormatFailed(op Op, cause error) *Error {
	return &Error{
		Op:     op,
		Kind:   KindFormatFailed,
		Detail: "formatting primitive failed",
		Cause:  cause,
	}
}

// CopiedValue creates an error for mutation of a copied instance.
// A Str whose address changed since first use aliases another instance's
// storage; mutating it would corrupt the original.
func CopiedValue(op Op) *Error {
	return &Error{
		Op:     op,
		Kind:   KindCopiedValue,
		Detail: "instance was copied after first use",
	}
}

// RefWrite creates an error for a write attempted through a non-owning
// reference binding
func RefWrite(op Op) *Error {
	return &Error{
		Op:     op,
		Kind:   KindRefWrite,
		Detail: "write through non-owning reference",
	}
}

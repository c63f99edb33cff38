// Package errors provides structured error types for the strkit engine.
//
// Errors are categorized by Op (which operation detected the violation) and
// Kind (violation category). They are delivered to the engine's assert hook
// rather than returned from the mutation API: precondition and limit
// violations are a trust boundary, not recoverable failures.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.OpReserve, errors.KindCapacityLimit).
//		Value(requested).
//		Detail("requested capacity %d exceeds maximum %d", requested, max).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.OpIndex, 10, 5)
//	err := errors.NilSource(errors.OpSet)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors

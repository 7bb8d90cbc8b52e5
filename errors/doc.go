// Package errors provides structured error types for the jvm-bridge library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category), and carry the class, field, and descriptor they concern.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindFieldNotFound).
//		Class("com/example/Counter").
//		Field("value").
//		Descriptor("I").
//		Detail("no such field").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ClassNotFound(errors.PhaseLookup, name)
//	err := errors.FieldNotFound(errors.PhaseResolve, class, field, desc)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors

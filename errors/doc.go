// Package errors provides structured error types for the pretty-debug library.
//
// The renderer itself never fails. Errors come from the boundary packages:
// configuration loading, JSON input decoding, Component Model value lifting
// and the command line tool.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the value path, Go/WIT type names, and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLift, errors.KindTypeMismatch).
//		Path("point", "x").
//		GoType("string").
//		WitType("u32").
//		Detail("cannot lift string as integer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseLift, path, "string", "u32")
//	err := errors.ParseFailed("input document", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors

// Package errors provides structured error types for the braille module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes context: location path, offending token and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLoad, errors.KindMalformedCell).
//		Path("signs", "#").
//		Token("3457").
//		Detail("dot 7 out of range").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MalformedCell(errors.PhaseValidate, path, "113", "repeated dot 1")
//	err := errors.Load("decode overlay", cause)
//
// Translation itself never fails. Characters without a dictionary entry are
// reported through UnresolvedError, which callers may treat as fatal or not.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors

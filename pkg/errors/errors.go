package errors

import "fmt"

// FathomError is the interface implemented by all Fathom errors.
type FathomError interface {
	error          // Embed the standard error interface
	Kind() string  // e.g., "Runtime"
	// Message returns the specific error message without the kind prefix.
	// This might be useful if the caller wants to format the error differently.
	Message() string
	Unwrap() error // For error wrapping support (errors.Is/As)
}

// --- Concrete Error Types ---

// RuntimeError represents an error during program execution in the VM,
// including uncaught script-level exceptions surfaced to the embedder.
type RuntimeError struct {
	Msg   string
	Cause error // Underlying cause, if any
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("Runtime Error: %s", e.Msg)
}
func (e *RuntimeError) Kind() string    { return "Runtime" }
func (e *RuntimeError) Message() string { return e.Msg }
func (e *RuntimeError) Unwrap() error   { return e.Cause }
func (e *RuntimeError) CausedBy(cause error) *RuntimeError {
	e.Cause = cause
	return e
}

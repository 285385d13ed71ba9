package services

import "fmt"

// ErrorKind classifies how a model invocation failed.
type ErrorKind int

const (
	// ErrKindExecutableNotFound means the interpreter could not be launched at all.
	ErrKindExecutableNotFound ErrorKind = iota
	// ErrKindProcessExited means the interpreter launched but exited non-zero.
	ErrKindProcessExited
	// ErrKindMalformedOutput means a clean exit produced output that is not the
	// expected JSON payload.
	ErrKindMalformedOutput
	// ErrKindTimeout means the child process was killed after exceeding the
	// configured wait.
	ErrKindTimeout
	// ErrKindExhausted means every configured interpreter candidate failed.
	ErrKindExhausted
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindExecutableNotFound:
		return "executable_not_found"
	case ErrKindProcessExited:
		return "process_exited_nonzero"
	case ErrKindMalformedOutput:
		return "malformed_output"
	case ErrKindTimeout:
		return "timeout"
	case ErrKindExhausted:
		return "exhausted"
	}
	return "unknown"
}

// InvocationError is the single error type crossing the predictor boundary.
// Diagnostic carries whatever text is useful upstream: captured stderr for
// process failures, the raw stdout for malformed payloads.
type InvocationError struct {
	Kind       ErrorKind
	Candidate  string
	ExitCode   int // meaningful only for ErrKindProcessExited
	Diagnostic string
	Err        error
}

func (e *InvocationError) Error() string {
	switch e.Kind {
	case ErrKindExecutableNotFound:
		return fmt.Sprintf("interpreter %q could not be started: %s", e.Candidate, e.Diagnostic)
	case ErrKindProcessExited:
		return fmt.Sprintf("interpreter %q exited with status %d: %s", e.Candidate, e.ExitCode, e.Diagnostic)
	case ErrKindMalformedOutput:
		return fmt.Sprintf("model output is not a valid payload: %s", e.Diagnostic)
	case ErrKindTimeout:
		return fmt.Sprintf("model run timed out: %s", e.Diagnostic)
	case ErrKindExhausted:
		return fmt.Sprintf("no usable interpreter: %s", e.Diagnostic)
	}
	return e.Diagnostic
}

// Unwrap returns the underlying cause, if any.
func (e *InvocationError) Unwrap() error {
	return e.Err
}

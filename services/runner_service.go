package services

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultRunTimeout bounds a model run when no explicit timeout is configured.
const DefaultRunTimeout = 30 * time.Second

// ProcessOutcome describes one clean child-process run.
type ProcessOutcome struct {
	Candidate string
	ExitCode  int
	Stdout    []byte
	Stderr    []byte
	Duration  time.Duration
}

// ModelRunner launches one predictor process per call. It is the only place
// in the server that creates OS processes.
type ModelRunner struct {
	scriptPath string
	timeout    time.Duration
}

func NewModelRunner(scriptPath string, timeout time.Duration) *ModelRunner {
	if timeout <= 0 {
		timeout = DefaultRunTimeout
	}
	return &ModelRunner{scriptPath: scriptPath, timeout: timeout}
}

// Run executes `<candidate> <script> <action> <paramsJSON>` and waits for it
// to terminate, capturing stdout and stderr in full. A clean exit returns the
// outcome; launch failures, non-zero exits and timeouts come back as a
// classified *InvocationError. The child is killed and reaped if it outlives
// the configured timeout.
func (r *ModelRunner) Run(candidate, action, paramsJSON string) (*ProcessOutcome, *InvocationError) {
	if candidate == "" {
		return nil, &InvocationError{
			Kind:       ErrKindExecutableNotFound,
			Candidate:  candidate,
			Diagnostic: "empty interpreter candidate",
		}
	}

	cmd := exec.Command(candidate, r.scriptPath, action, paramsJSON)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, &InvocationError{
			Kind:       ErrKindExecutableNotFound,
			Candidate:  candidate,
			Diagnostic: err.Error(),
			Err:        err,
		}
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			diag := strings.TrimSpace(stderr.String())
			if diag == "" {
				diag = err.Error()
			}
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return nil, &InvocationError{
					Kind:       ErrKindProcessExited,
					Candidate:  candidate,
					ExitCode:   exitErr.ExitCode(),
					Diagnostic: diag,
					Err:        err,
				}
			}
			// Wait failed without an exit status (e.g. I/O error draining pipes).
			return nil, &InvocationError{
				Kind:       ErrKindProcessExited,
				Candidate:  candidate,
				ExitCode:   -1,
				Diagnostic: diag,
				Err:        err,
			}
		}
		return &ProcessOutcome{
			Candidate: candidate,
			ExitCode:  0,
			Stdout:    stdout.Bytes(),
			Stderr:    stderr.Bytes(),
			Duration:  time.Since(start),
		}, nil

	case <-time.After(r.timeout):
		if cmd.Process != nil {
			cmd.Process.Kill()
		}
		<-done // reap, releases the process handle
		return nil, &InvocationError{
			Kind:       ErrKindTimeout,
			Candidate:  candidate,
			Diagnostic: fmt.Sprintf("model run exceeded %v", r.timeout),
		}
	}
}

package services

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFakeModel writes a shell script standing in for the predictor script.
// The "interpreter" candidate in these tests is sh, so the invocation contract
// stays exactly `<interpreter> <script> <action> <params_json>`.
func writeFakeModel(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake interpreters use sh")
	}
	path := filepath.Join(t.TempDir(), "fake_model.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestRunCleanExit(t *testing.T) {
	script := writeFakeModel(t, `echo "Warning: Untrained model in use."
echo '{"ok":true}'`)
	runner := NewModelRunner(script, 5*time.Second)

	outcome, ierr := runner.Run("sh", "predict_current", `{"location":"Delhi"}`)
	require.Nil(t, ierr)
	assert.Equal(t, "sh", outcome.Candidate)
	assert.Equal(t, 0, outcome.ExitCode)
	assert.Contains(t, string(outcome.Stdout), "Warning: Untrained model in use.")
	assert.Contains(t, string(outcome.Stdout), `{"ok":true}`)
	assert.Greater(t, outcome.Duration, time.Duration(0))
}

func TestRunPassesActionAndParams(t *testing.T) {
	script := writeFakeModel(t, `printf '{"action":"%s"}\n' "$1"
printf '%s\n' "$2" >&2`)
	runner := NewModelRunner(script, 5*time.Second)

	outcome, ierr := runner.Run("sh", "predict_forecast", `{"location":"Delhi","days":3}`)
	require.Nil(t, ierr)
	assert.Contains(t, string(outcome.Stdout), `{"action":"predict_forecast"}`)
	assert.Contains(t, string(outcome.Stderr), `{"location":"Delhi","days":3}`)
}

func TestRunExecutableNotFound(t *testing.T) {
	runner := NewModelRunner("scripts/ml_model.py", time.Second)

	outcome, ierr := runner.Run("airsense-no-such-interpreter", "predict_current", "{}")
	assert.Nil(t, outcome)
	require.NotNil(t, ierr)
	assert.Equal(t, ErrKindExecutableNotFound, ierr.Kind)
	assert.Equal(t, "airsense-no-such-interpreter", ierr.Candidate)
	assert.NotEmpty(t, ierr.Diagnostic)
}

func TestRunEmptyCandidate(t *testing.T) {
	runner := NewModelRunner("scripts/ml_model.py", time.Second)

	outcome, ierr := runner.Run("", "predict_current", "{}")
	assert.Nil(t, outcome)
	require.NotNil(t, ierr)
	assert.Equal(t, ErrKindExecutableNotFound, ierr.Kind)
}

func TestRunNonZeroExit(t *testing.T) {
	script := writeFakeModel(t, `echo "Error: model exploded" >&2
exit 1`)
	runner := NewModelRunner(script, 5*time.Second)

	outcome, ierr := runner.Run("sh", "predict_current", "{}")
	assert.Nil(t, outcome)
	require.NotNil(t, ierr)
	assert.Equal(t, ErrKindProcessExited, ierr.Kind)
	assert.Equal(t, 1, ierr.ExitCode)
	assert.Equal(t, "Error: model exploded", ierr.Diagnostic)
}

func TestRunNonZeroExitEmptyStderr(t *testing.T) {
	script := writeFakeModel(t, `exit 3`)
	runner := NewModelRunner(script, 5*time.Second)

	_, ierr := runner.Run("sh", "predict_current", "{}")
	require.NotNil(t, ierr)
	assert.Equal(t, ErrKindProcessExited, ierr.Kind)
	assert.Equal(t, 3, ierr.ExitCode)
	// falls back to the exit status text when stderr is empty
	assert.Contains(t, ierr.Diagnostic, "exit status 3")
}

func TestRunTimeoutKillsChild(t *testing.T) {
	script := writeFakeModel(t, `exec sleep 30`)
	runner := NewModelRunner(script, 150*time.Millisecond)

	start := time.Now()
	outcome, ierr := runner.Run("sh", "predict_current", "{}")
	elapsed := time.Since(start)

	assert.Nil(t, outcome)
	require.NotNil(t, ierr)
	assert.Equal(t, ErrKindTimeout, ierr.Kind)
	assert.Less(t, elapsed, 5*time.Second, "child should be killed, not waited for")
}

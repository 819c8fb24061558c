package runner

import (
	"errors"
	"fmt"
	"os/exec"
)

// ExecutionError is returned when a command cannot be started or does not
// exit cleanly. Spawn failures, non-zero exits and signals all map to it.
type ExecutionError struct {
	Name    string
	Command string
	// ExitCode is the child's exit status, or -1 when the command never
	// started or was killed by a signal.
	ExitCode int
	Err      error
}

func newExecutionError(req RunRequest, err error) *ExecutionError {
	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &ExecutionError{
		Name:     req.Name,
		Command:  req.Command,
		ExitCode: code,
		Err:      err,
	}
}

func (e *ExecutionError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("%s: command %q exited with code %d", e.Name, e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s: command %q failed: %v", e.Name, e.Command, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

package system

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/google/shlex"
)

// CommandRunner defines an interface for running system commands.
type CommandRunner interface {
	// Run executes a program and returns its combined output.
	Run(name string, args ...string) (string, error)
	// RunShell executes a command line through the host shell with the
	// standard streams connected to the child.
	RunShell(command string) error
	// RunDirect splits a command line into argv and executes it without a shell.
	RunDirect(command string) error
}

// ExecCommandRunner executes commands using os/exec.
// Nil streams fall back to the parent's standard streams.
type ExecCommandRunner struct {
	Shell  []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewCommandRunner returns a default command runner implementation.
func NewCommandRunner() CommandRunner {
	return NewCommandRunnerWithShell("")
}

// NewCommandRunnerWithShell returns a runner that uses the given shell
// invocation (for example "bash -c") instead of the platform default.
func NewCommandRunnerWithShell(shell string) CommandRunner {
	return &ExecCommandRunner{Shell: ShellCommand(shell)}
}

// ShellCommand returns the argv prefix used to hand a command line to the
// host shell. An unparsable or empty override yields the platform default.
func ShellCommand(override string) []string {
	if strings.TrimSpace(override) != "" {
		if args, err := shlex.Split(override); err == nil && len(args) > 0 {
			return args
		}
	}
	if runtime.GOOS == "windows" {
		return []string{"cmd", "/C"}
	}
	return []string{"sh", "-c"}
}

// Run executes a command and returns its combined output.
func (r *ExecCommandRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// RunShell executes a command line through the configured shell and blocks until it exits.
func (r *ExecCommandRunner) RunShell(command string) error {
	shell := r.Shell
	if len(shell) == 0 {
		shell = ShellCommand("")
	}
	args := append(append([]string{}, shell[1:]...), command)
	return r.attach(exec.Command(shell[0], args...)).Run()
}

// RunDirect executes a command line without a shell. Quoting follows POSIX
// shell rules but pipes, redirects and variables are not interpreted.
func (r *ExecCommandRunner) RunDirect(command string) error {
	args, err := shlex.Split(command)
	if err != nil {
		return fmt.Errorf("error parsing command %q: %w", command, err)
	}
	if len(args) == 0 {
		return fmt.Errorf("no command provided")
	}
	return r.attach(exec.Command(args[0], args[1:]...)).Run()
}

func (r *ExecCommandRunner) attach(cmd *exec.Cmd) *exec.Cmd {
	cmd.Stdin = r.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd
}

// CommandExists checks if a command is available in PATH
func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

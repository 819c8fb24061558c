// Package runner runs a single named command on behalf of a git hook,
// announcing it before it starts and reporting the outcome when it ends.
//
// Run returns the failure to the caller. MustRun is the fail-fast form used
// at the edge of the program: the first failure terminates the process with
// exit code 1.
package runner

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/system"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/ui"
)

// Runner executes RunRequests one at a time. It keeps no state between calls.
type Runner struct {
	ui    *ui.UI
	exec  system.CommandRunner
	log   log.FieldLogger
	exit  func(code int)
	shell bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithExecutor replaces the process executor.
func WithExecutor(exec system.CommandRunner) Option {
	return func(r *Runner) { r.exec = exec }
}

// WithExit replaces process termination, which defaults to os.Exit.
func WithExit(exit func(code int)) Option {
	return func(r *Runner) { r.exit = exit }
}

// WithLogger sets the logger that receives failure detail.
func WithLogger(logger log.FieldLogger) Option {
	return func(r *Runner) { r.log = logger }
}

// WithShell selects between the host shell (the default) and direct argv execution.
func WithShell(enabled bool) Option {
	return func(r *Runner) { r.shell = enabled }
}

// New creates a Runner printing to u. A nil u writes to standard output.
func New(u *ui.UI, opts ...Option) *Runner {
	if u == nil {
		u = ui.New()
	}
	r := &Runner{
		ui:    u,
		exec:  system.NewCommandRunner(),
		log:   log.StandardLogger(),
		exit:  os.Exit,
		shell: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithFields returns a copy of r whose log entries carry fields.
func (r *Runner) WithFields(fields log.Fields) *Runner {
	c := *r
	c.log = r.log.WithFields(fields)
	return &c
}

// With returns a copy of r with opts applied.
func (r *Runner) With(opts ...Option) *Runner {
	c := *r
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// Logger returns the runner's logger.
func (r *Runner) Logger() log.FieldLogger {
	return r.log
}

// Run executes req and blocks until the command exits. On failure it prints
// the failure line, logs the cause and returns an *ExecutionError.
func (r *Runner) Run(req RunRequest) error {
	req = req.WithDefaults()

	r.ui.Running(req.Name, req.Command)
	r.log.WithField("name", req.Name).Debugf("executing %q", req.Command)

	if err := r.execute(req.Command); err != nil {
		execErr := newExecutionError(req, err)
		r.ui.Failed(req.Name, req.FailureMessage)
		r.log.WithError(err).WithFields(log.Fields{
			"name":      req.Name,
			"command":   req.Command,
			"exit_code": execErr.ExitCode,
		}).Error("command execution failed")
		return execErr
	}

	r.ui.Passed(req.Name, req.SuccessMessage)
	return nil
}

// MustRun executes req and terminates the process with exit code 1 if it fails.
func (r *Runner) MustRun(req RunRequest) {
	if err := r.Run(req); err != nil {
		r.Exit(1)
	}
}

// Exit terminates the process through the configured exit function.
func (r *Runner) Exit(code int) {
	r.exit(code)
}

func (r *Runner) execute(command string) error {
	if r.shell {
		return r.exec.RunShell(command)
	}
	return r.exec.RunDirect(command)
}

package hooks

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/config"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/runner"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/ui"
)

type recordingExecutor struct {
	commands []string
	direct   []string
	failures map[string]error
	hooksDir string
}

func (e *recordingExecutor) Run(name string, args ...string) (string, error) {
	return e.hooksDir + "\n", nil
}

func (e *recordingExecutor) RunShell(command string) error {
	e.commands = append(e.commands, command)
	return e.failures[command]
}

func (e *recordingExecutor) RunDirect(command string) error {
	e.direct = append(e.direct, command)
	return e.failures[command]
}

func newTestRunner(exec *recordingExecutor) (*runner.Runner, *bytes.Buffer, *bytes.Buffer) {
	var out, logs bytes.Buffer
	u := ui.NewWithWriter(&out)
	u.DisableColor()
	logger := log.New()
	logger.SetOutput(&logs)
	logger.SetLevel(log.DebugLevel)
	r := runner.New(u,
		runner.WithExecutor(exec),
		runner.WithLogger(logger),
		runner.WithExit(func(int) { panic("chains must not exit") }),
	)
	return r, &out, &logs
}

func writeChainFile(t *testing.T, content string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return config.New(path)
}

func TestFromConfig(t *testing.T) {
	cfg := writeChainFile(t, `hooks:
  pre-commit:
    - name: Lint
      command: make lint
      successMessage: OK
    - command: make test
`)

	chain, err := FromConfig(cfg, "pre-commit", "a", "b")
	require.NoError(t, err)
	require.Equal(t, "pre-commit", chain.Hook)
	require.Equal(t, []string{"a", "b"}, chain.Args)
	require.Equal(t, []Step{
		{RunRequest: runner.RunRequest{Name: "Lint", Command: "make lint", SuccessMessage: "OK"}},
		{RunRequest: runner.RunRequest{Command: "make test"}},
	}, chain.Steps)

	empty, err := FromConfig(cfg, "pre-push")
	require.NoError(t, err)
	require.Empty(t, empty.Steps)
}

func TestFromConfigRejectsBadInput(t *testing.T) {
	cfg := writeChainFile(t, "hooks:\n  pre-commit:\n    - name: Nothing\n")

	_, err := FromConfig(cfg, "pre-commit")
	require.ErrorContains(t, err, "has no command")

	_, err = FromConfig(cfg, "not-a-hook")
	require.ErrorContains(t, err, "unknown git hook")
}

func TestRunChainStopsAtFirstFailure(t *testing.T) {
	t.Setenv(EnvHookArgs, "")
	cause := errors.New("exit status 2")
	exec := &recordingExecutor{failures: map[string]error{"make test": cause}}
	r, out, logs := newTestRunner(exec)

	chain := Chain{
		Hook: "pre-commit",
		Steps: []Step{
			{RunRequest: runner.RunRequest{Name: "Lint", Command: "make lint"}},
			{RunRequest: runner.RunRequest{Name: "Test", Command: "make test", FailureMessage: "Broke"}},
			{RunRequest: runner.RunRequest{Name: "Build", Command: "make build"}},
		},
	}

	err := RunChain(r, chain)
	require.ErrorIs(t, err, cause)
	require.ErrorContains(t, err, `hook "pre-commit": step "Test" failed`)

	var execErr *runner.ExecutionError
	require.ErrorAs(t, err, &execErr)

	require.Equal(t, []string{"make lint", "make test"}, exec.commands)
	require.Contains(t, out.String(), "Lint Passed")
	require.Contains(t, out.String(), "Test Broke")
	require.NotContains(t, out.String(), "Running Build")

	require.Contains(t, logs.String(), "hook=pre-commit")
	require.Contains(t, logs.String(), "run_id=")
}

func TestRunChainExportsHookArgs(t *testing.T) {
	t.Setenv(EnvHookArgs, "")
	exec := &recordingExecutor{}
	r, out, _ := newTestRunner(exec)

	err := RunChain(r, Chain{
		Hook:  "commit-msg",
		Args:  []string{".git/COMMIT EDITMSG"},
		Steps: []Step{{RunRequest: runner.RunRequest{Command: "true"}}},
	})
	require.NoError(t, err)
	require.Equal(t, `'.git/COMMIT EDITMSG'`, os.Getenv(EnvHookArgs))
	require.Contains(t, out.String(), "Unknown Passed")
}

func TestRunChainStepShellOverride(t *testing.T) {
	t.Setenv(EnvHookArgs, "")
	cfg := writeChainFile(t, `hooks:
  pre-commit:
    - name: Vet
      command: go vet ./...
      shell: false
    - name: Lint
      command: make lint
`)

	chain, err := FromConfig(cfg, "pre-commit")
	require.NoError(t, err)
	require.NotNil(t, chain.Steps[0].Shell)
	require.False(t, *chain.Steps[0].Shell)
	require.Nil(t, chain.Steps[1].Shell)

	exec := &recordingExecutor{}
	r, out, _ := newTestRunner(exec)
	require.NoError(t, RunChain(r, chain))

	require.Equal(t, []string{"go vet ./..."}, exec.direct)
	require.Equal(t, []string{"make lint"}, exec.commands)
	require.Contains(t, out.String(), "Vet Passed")
}

func TestRunChainStepForcesShell(t *testing.T) {
	t.Setenv(EnvHookArgs, "")
	exec := &recordingExecutor{}
	r, _, _ := newTestRunner(exec)
	r = r.With(runner.WithShell(false))

	enabled := true
	err := RunChain(r, Chain{
		Hook: "pre-push",
		Steps: []Step{
			{RunRequest: runner.RunRequest{Command: "make test | tee out.log"}, Shell: &enabled},
			{RunRequest: runner.RunRequest{Command: "go build ./..."}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"make test | tee out.log"}, exec.commands)
	require.Equal(t, []string{"go build ./..."}, exec.direct)
}

func TestRunChainEmpty(t *testing.T) {
	t.Setenv(EnvHookArgs, "")
	exec := &recordingExecutor{}
	r, out, _ := newTestRunner(exec)

	require.NoError(t, RunChain(r, Chain{Hook: "pre-push"}))
	require.Empty(t, exec.commands)
	require.Empty(t, out.String())
}

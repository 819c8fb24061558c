package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/require"

	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/cli"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/config"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/ui"
)

// envCLIArgs makes the test binary act as hook-runner with the given,
// shell-quoted arguments.
const envCLIArgs = "HOOKRUN_TEST_CLI_ARGS"

func TestMain(m *testing.M) {
	if line, ok := os.LookupEnv(envCLIArgs); ok {
		args, err := shellquote.Split(line)
		if err != nil {
			os.Exit(2)
		}
		rootCmd.SetArgs(args)
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// runCLI runs hook-runner in dir as a separate process and returns its
// combined output and exit code.
func runCLI(t *testing.T, dir string, args ...string) (string, int) {
	t.Helper()
	exe, err := os.Executable()
	require.NoError(t, err)

	cmd := exec.Command(exe)
	cmd.Dir = dir
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "HOOKRUN_") {
			cmd.Env = append(cmd.Env, kv)
		}
	}
	cmd.Env = append(cmd.Env,
		"HOOKRUN_NO_COLOR=true",
		"HOOKRUN_NON_INTERACTIVE=true",
		envCLIArgs+"="+shellquote.Join(args...),
	)

	out, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(out), exitErr.ExitCode()
	}
	require.NoError(t, err)
	return string(out), 0
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell syntax")
	}
}

func testContext(t *testing.T, chain string) *cli.Context {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFileName)
	if chain != "" {
		require.NoError(t, os.WriteFile(path, []byte(chain), 0644))
	}
	u := ui.NewWithWriter(&bytes.Buffer{})
	u.SetNonInteractive(true)
	return &cli.Context{Config: config.New(path), UI: u}
}

func TestHookNames(t *testing.T) {
	configured := "hooks:\n  pre-push:\n    - command: make test\n  commit-msg:\n    - command: make lint-msg\n"

	tests := []struct {
		name        string
		chain       string
		args        []string
		allowPrompt bool
		want        []string
		wantErr     bool
	}{
		{"explicit arguments win", configured, []string{"pre-commit"}, false, []string{"pre-commit"}, false},
		{"configured hooks", configured, nil, false, []string{"commit-msg", "pre-push"}, false},
		{"nothing configured", "", nil, false, nil, true},
		{"prompt refused when non-interactive", "", nil, true, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hookNames(testContext(t, tt.chain), tt.args, tt.allowPrompt)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"run", "hook", "install", "uninstall", "list", "doctor", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		require.Equal(t, name, cmd.Name())
	}
}

func TestRunCommand(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()

	out, code := runCLI(t, dir, "run", "--name", "Lint", "--success-message", "OK", "--", "exit 0")
	require.Equal(t, 0, code, out)
	require.Contains(t, out, "Running Lint : exit 0")
	require.Contains(t, out, "Lint OK")

	out, code = runCLI(t, dir, "run", "--name", "Test", "--failure-message", "Broke", "--", "exit", "1")
	require.Equal(t, 1, code, out)
	require.Contains(t, out, "Running Test : exit 1")
	require.Contains(t, out, "Test Broke")
	require.NotContains(t, out, "Error:")

	out, code = runCLI(t, dir, "run")
	require.Equal(t, 0, code, out)
	require.Contains(t, out, "No command was specified!")
	require.Contains(t, out, "Unknown Passed")
}

func TestRunCommandKeepsArgumentQuoting(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()

	out, code := runCLI(t, dir, "run", "--", "test", "two words", "=", "two words")
	require.Equal(t, 0, code, out)
	require.Contains(t, out, "Running Unknown : test 'two words' = 'two words'")
}

func TestHookCommand(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	chain := `hooks:
  pre-commit:
    - name: Lint
      command: "true"
    - name: Test
      command: exit 1
      failureMessage: Broke
    - name: Build
      command: echo built
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFileName), []byte(chain), 0644))
	configFlag := "--config=" + filepath.Join(dir, config.DefaultFileName)

	out, code := runCLI(t, dir, configFlag, "hook", "pre-commit")
	require.Equal(t, 1, code, out)
	require.Contains(t, out, "Lint Passed")
	require.Contains(t, out, "Test Broke")
	require.NotContains(t, out, "Running Build")
	require.Contains(t, out, `Error: hook "pre-commit": step "Test" failed`)

	out, code = runCLI(t, dir, configFlag, "hook", "pre-push", "origin")
	require.Equal(t, 0, code, out)
	require.Contains(t, out, "No commands configured for pre-push")

	out, code = runCLI(t, dir, configFlag, "hook", "not-a-hook")
	require.Equal(t, 1, code, out)
	require.Contains(t, out, "unknown git hook")
}

func TestCommandLine(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"none", nil, ""},
		{"single argument kept verbatim", []string{"make lint && make test"}, "make lint && make test"},
		{"words joined", []string{"go", "vet", "./..."}, "go vet ./..."},
		{"spaces quoted", []string{"grep", "two words", "f"}, "grep 'two words' f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, commandLine(tt.args))
		})
	}
}

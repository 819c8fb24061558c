package main

import (
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/runner"
)

var (
	runName           string
	runSuccessMessage string
	runFailureMessage string
	runNoShell        bool
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [--] [command...]",
	Short: "Run a single command",
	Long: `Run one command, print its status, and exit with code 1 if it fails.

A single argument is handed to the shell (sh -c, or cmd /C on Windows) as
a complete command line. Several arguments are quoted back into one command
line first, so each keeps its boundaries. Use -- to stop flag parsing before
the command. Without a command a harmless echo runs.

Examples:
  hook-runner run --name Lint --success-message OK -- golangci-lint run ./...
  hook-runner run --name Check -- 'make lint && make test'`,
	Args: cobra.ArbitraryArgs,
	RunE: runSingle,
}

func init() {
	runCmd.Flags().StringVarP(&runName, "name", "n", "", "Display name (default \"Unknown\")")
	runCmd.Flags().StringVar(&runSuccessMessage, "success-message", "", "Message printed after the name on success (default \"Passed\")")
	runCmd.Flags().StringVar(&runFailureMessage, "failure-message", "", "Message printed after the name on failure (default \"Failed\")")
	runCmd.Flags().BoolVar(&runNoShell, "no-shell", false, "Split the command and execute it without a shell")

	rootCmd.AddCommand(runCmd)
}

func runSingle(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	var opts []runner.Option
	if runNoShell {
		opts = append(opts, runner.WithShell(false))
	}

	ctx.NewRunner(opts...).MustRun(runner.RunRequest{
		Name:           runName,
		Command:        commandLine(args),
		SuccessMessage: runSuccessMessage,
		FailureMessage: runFailureMessage,
	})
	return nil
}

// commandLine turns run's arguments into the command line handed to the shell.
func commandLine(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return shellquote.Join(args...)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/cli"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/pkg/version"
)

var (
	// Persistent flags shared by every command
	configPath     string
	logLevel       string
	noColor        bool
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "hook-runner",
	Short: "Run git hook checks with colored status output",
	Long: `hook-runner runs the commands behind your git hooks.

Each command is announced before it starts and reported as passed or failed
when it finishes. The first failing command stops the hook with exit code 1,
which makes git abort the operation.

Hook chains live in .hookrun.yml at the repository root:

  hooks:
    pre-commit:
      - name: Lint
        command: golangci-lint run
        successMessage: looks clean
        failureMessage: has lint errors`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Hook chain file (default .hookrun.yml at the repository root)")
	flags.StringVar(&logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "Never prompt; use defaults")

	rootCmd.AddCommand(versionCmd)
}

func newContext() (*cli.Context, error) {
	ctx, err := cli.NewContext(cli.Options{
		ConfigPath:     configPath,
		LogLevel:       logLevel,
		NoColor:        noColor,
		NonInteractive: nonInteractive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize context: %w", err)
	}
	return ctx, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

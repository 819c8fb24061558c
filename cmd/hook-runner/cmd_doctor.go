package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/cli"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/hooks"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/system"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the hook setup of this repository",
	Long: `Run diagnostic checks: git and shell availability, the chain file,
and whether each configured hook is installed.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	ctx.UI.Header("hook-runner Diagnostics")

	problems := 0
	problems += checkTools(ctx)
	problems += checkChainFile(ctx)
	problems += checkInstalledHooks(ctx)

	ctx.UI.Print("")
	ctx.UI.Separator()
	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	ctx.UI.Success("No problems found")
	return nil
}

func checkTools(ctx *cli.Context) int {
	problems := 0

	if system.CommandExists("git") {
		ctx.UI.Success("git is available")
	} else {
		ctx.UI.Error("git was not found in PATH")
		problems++
	}

	shell := system.ShellCommand(ctx.Settings.Shell)
	if system.CommandExists(shell[0]) {
		ctx.UI.Successf("Shell %s is available", shell[0])
	} else {
		ctx.UI.Errorf("Shell %s was not found in PATH", shell[0])
		problems++
	}

	ctx.UI.Infof("Repository root: %s", ctx.RepoRoot)
	return problems
}

func checkChainFile(ctx *cli.Context) int {
	path := ctx.Config.FilePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		ctx.UI.Warningf("No chain file at %s", path)
		return 0
	}

	if err := ctx.Config.Validate(); err != nil {
		ctx.UI.Errorf("Chain file %s is invalid:\n%v", path, err)
		return 1
	}
	ctx.UI.Successf("Chain file is valid: %s", path)
	return 0
}

func checkInstalledHooks(ctx *cli.Context) int {
	names, err := ctx.Config.HookNames()
	if err != nil || len(names) == 0 {
		return 0
	}

	installer := ctx.NewInstaller("", false)
	problems := 0
	for _, name := range names {
		state, err := installer.Status(name)
		if err != nil {
			ctx.UI.Errorf("%s: %v", name, err)
			problems++
			continue
		}
		switch state {
		case hooks.Managed:
			ctx.UI.Successf("%s: %s", name, state)
		case hooks.Foreign:
			ctx.UI.Warningf("%s: %s (run 'hook-runner install --force %s' to replace it)", name, state, name)
			problems++
		default:
			ctx.UI.Warningf("%s: %s (run 'hook-runner install %s')", name, state, name)
			problems++
		}
	}
	return problems
}

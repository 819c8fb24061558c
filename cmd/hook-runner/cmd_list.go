package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/runner"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show configured hooks and their commands",
	RunE:  listHooks,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listHooks(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	if err := ctx.Config.Validate(); err != nil {
		ctx.UI.Warningf("%s has problems:\n%v", ctx.Config.FilePath(), err)
	}

	names, err := ctx.Config.HookNames()
	if err != nil {
		return err
	}

	ctx.UI.Header("Configured Hooks")
	if len(names) == 0 {
		ctx.UI.Infof("No hooks configured in %s", ctx.Config.FilePath())
		return nil
	}

	installer := ctx.NewInstaller("", false)
	for _, name := range names {
		steps, err := ctx.Config.Steps(name)
		if err != nil {
			return err
		}
		if state, err := installer.Status(name); err == nil {
			ctx.UI.Bold(fmt.Sprintf("%s (%s)", name, state))
		} else {
			ctx.UI.Bold(name)
		}
		for i, step := range steps {
			stepName := step.Name
			if stepName == "" {
				stepName = runner.DefaultName
			}
			if step.Shell != nil && !*step.Shell {
				ctx.UI.Printf("  %d. %s : %s (no shell)", i+1, stepName, step.Command)
				continue
			}
			ctx.UI.Printf("  %d. %s : %s", i+1, stepName, step.Command)
		}
		ctx.UI.Print("")
	}

	ctx.UI.Separator()
	ctx.UI.Infof("Configuration file: %s", ctx.Config.FilePath())
	return nil
}

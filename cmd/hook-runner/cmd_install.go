package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/cli"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/common"
)

var (
	installForce  bool
	installBinary string
)

var installCmd = &cobra.Command{
	Use:   "install [hook-name...]",
	Short: "Install git hook scripts that call hook-runner",
	Long: `Write a script into the repository's hooks directory for each hook.

Without arguments, every hook in the chain file is installed. Existing hooks
not written by hook-runner are backed up and only replaced after
confirmation, or with --force.`,
	RunE: installHooks,
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall [hook-name...]",
	Short: "Remove hook scripts written by hook-runner",
	Long:  `Remove installed hook scripts. Hooks not written by hook-runner are left alone.`,
	RunE:  uninstallHooks,
}

func init() {
	installCmd.Flags().BoolVarP(&installForce, "force", "f", false, "Replace existing hooks without asking")
	installCmd.Flags().StringVar(&installBinary, "binary", "hook-runner", "hook-runner executable the scripts call")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}

func installHooks(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	names, err := hookNames(ctx, args, true)
	if err != nil {
		return err
	}

	installer := ctx.NewInstaller(installBinary, installForce)
	installed := 0
	for _, name := range names {
		written, err := installer.Install(name)
		if err != nil {
			return fmt.Errorf("failed to install %s: %w", name, err)
		}
		if written {
			installed++
		}
	}

	if installed == 0 {
		ctx.UI.Warning("No hooks were installed")
		return nil
	}
	ctx.UI.Infof("%d of %d hook(s) installed", installed, len(names))
	return nil
}

func uninstallHooks(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	names, err := hookNames(ctx, args, false)
	if err != nil {
		return err
	}

	installer := ctx.NewInstaller(installBinary, false)
	for _, name := range names {
		if err := installer.Uninstall(name); err != nil {
			return fmt.Errorf("failed to uninstall %s: %w", name, err)
		}
	}
	return nil
}

// hookNames resolves the hooks a command acts on: explicit arguments, else
// the chain file, else (when allowed) an interactive selection.
func hookNames(ctx *cli.Context, args []string, allowPrompt bool) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	names, err := ctx.Config.HookNames()
	if err != nil {
		return nil, err
	}
	if len(names) > 0 {
		return names, nil
	}
	if !allowPrompt || ctx.UI.IsNonInteractive() {
		return nil, fmt.Errorf("no hooks given and none configured in %s", ctx.Config.FilePath())
	}

	indices, err := ctx.UI.PromptMultiSelect("Select hooks to install", common.GitHooks)
	if err != nil {
		return nil, err
	}
	for _, i := range indices {
		names = append(names, common.GitHooks[i])
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no hooks selected")
	}
	return names, nil
}

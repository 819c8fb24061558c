package main

import (
	"github.com/spf13/cobra"

	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/hooks"
)

var hookCmd = &cobra.Command{
	Use:   "hook <hook-name> [git-args...]",
	Short: "Run the chain configured for a git hook",
	Long: `Run every command configured for a git hook, in order.

The installed hook scripts call this command. Arguments git passes to the
hook are exported, shell-quoted, in HOOKRUN_HOOK_ARGS.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHook,
}

func init() {
	// Everything after the hook name belongs to git
	hookCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(hookCmd)
}

func runHook(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	chain, err := hooks.FromConfig(ctx.Config, args[0], args[1:]...)
	if err != nil {
		return err
	}
	if len(chain.Steps) == 0 {
		ctx.UI.Infof("No commands configured for %s in %s", chain.Hook, ctx.Config.FilePath())
		return nil
	}

	return hooks.RunChain(ctx.NewRunner(), chain)
}

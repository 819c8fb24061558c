// Package hooks binds runner requests to git hook names: it runs the chain
// configured for a hook and installs the scripts git calls.
package hooks

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"
	log "github.com/sirupsen/logrus"

	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/common"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/config"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/runner"
)

// EnvHookArgs holds the arguments git passed to the hook, shell-quoted,
// so chain commands can forward them (e.g. the commit message file).
const EnvHookArgs = "HOOKRUN_HOOK_ARGS"

// Step is one command of a chain.
type Step struct {
	runner.RunRequest
	// Shell overrides the runner's shell setting when set.
	Shell *bool
}

// Chain is the ordered list of commands run for one hook.
type Chain struct {
	Hook  string
	Args  []string
	Steps []Step
}

// FromConfig builds the chain for hook from the chain file.
func FromConfig(cfg *config.Config, hook string, args ...string) (Chain, error) {
	if err := common.ValidateHookName(hook); err != nil {
		return Chain{}, err
	}
	steps, err := cfg.Steps(hook)
	if err != nil {
		return Chain{}, err
	}

	chain := Chain{Hook: hook, Args: args}
	for i, step := range steps {
		if err := common.ValidateNotEmpty(step.Command); err != nil {
			return Chain{}, fmt.Errorf("hook %s: step %d (%s) has no command", hook, i+1, step.Name)
		}
		chain.Steps = append(chain.Steps, Step{
			RunRequest: runner.RunRequest{
				Name:           step.Name,
				Command:        step.Command,
				SuccessMessage: step.SuccessMessage,
				FailureMessage: step.FailureMessage,
			},
			Shell: step.Shell,
		})
	}
	return chain, nil
}

// RunChain runs the steps in order and stops at the first failure.
// A step's Shell setting takes precedence over r's.
func RunChain(r *runner.Runner, chain Chain) error {
	r = r.WithFields(log.Fields{"hook": chain.Hook, "run_id": uuid.NewString()})

	if err := os.Setenv(EnvHookArgs, shellquote.Join(chain.Args...)); err != nil {
		return fmt.Errorf("failed to export %s: %w", EnvHookArgs, err)
	}

	r.Logger().Debugf("running %d step(s)", len(chain.Steps))
	for _, step := range chain.Steps {
		sr := r
		if step.Shell != nil {
			sr = r.With(runner.WithShell(*step.Shell))
		}
		if err := sr.Run(step.RunRequest); err != nil {
			return fmt.Errorf("hook %q: step %q failed: %w", chain.Hook, step.WithDefaults().Name, err)
		}
	}
	return nil
}

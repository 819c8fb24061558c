// Package common holds small validation helpers shared by the config and
// hooks packages.
package common

import (
	"fmt"
	"strings"
)

// GitHooks lists the client-side hooks git invokes, in the order they
// usually fire.
var GitHooks = []string{
	"applypatch-msg",
	"pre-applypatch",
	"post-applypatch",
	"pre-commit",
	"pre-merge-commit",
	"prepare-commit-msg",
	"commit-msg",
	"post-commit",
	"pre-rebase",
	"post-checkout",
	"post-merge",
	"pre-push",
	"pre-auto-gc",
	"post-rewrite",
	"sendemail-validate",
	"fsmonitor-watchman",
	"post-index-change",
	"reference-transaction",
}

// IsGitHook reports whether name is a hook git knows how to run.
func IsGitHook(name string) bool {
	for _, hook := range GitHooks {
		if hook == name {
			return true
		}
	}
	return false
}

// ValidateHookName validates a git hook name
func ValidateHookName(name string) error {
	if err := ValidateNotEmpty(name); err != nil {
		return fmt.Errorf("hook name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("hook name cannot be a path: %s", name)
	}
	if !IsGitHook(name) {
		return fmt.Errorf("unknown git hook: %s", name)
	}
	return nil
}

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

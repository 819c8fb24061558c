package system

import (
	"fmt"
	"path/filepath"
	"strings"
)

// GitTopLevel returns the top-level directory of the current work tree.
func GitTopLevel(r CommandRunner) (string, error) {
	out, err := r.Run("git", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not inside a git work tree: %w\nOutput: %s", err, strings.TrimSpace(out))
	}
	return strings.TrimSpace(out), nil
}

// GitHooksDir returns the absolute path of the directory git reads hooks from.
// It honours core.hooksPath and linked worktrees.
func GitHooksDir(r CommandRunner) (string, error) {
	out, err := r.Run("git", "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", fmt.Errorf("failed to locate git hooks directory: %w\nOutput: %s", err, strings.TrimSpace(out))
	}
	dir := strings.TrimSpace(out)
	if dir == "" {
		return "", fmt.Errorf("git returned an empty hooks path")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve hooks directory %s: %w", dir, err)
	}
	return abs, nil
}

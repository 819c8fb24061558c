package hooks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/common"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/system"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/ui"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/pkg/version"
)

// managedMarker identifies scripts written by Install.
const managedMarker = "# managed by hook-runner"

// InstallOptions configures an Installer.
type InstallOptions struct {
	// Binary is the hook-runner executable the script calls.
	Binary string
	// HooksDir overrides the directory reported by git.
	HooksDir string
	// Force replaces foreign hooks without asking.
	Force bool
}

// Installer writes and removes hook scripts.
type Installer struct {
	fs   system.FileSystemManager
	exec system.CommandRunner
	ui   *ui.UI
	opts InstallOptions
}

// NewInstaller creates a new Installer
func NewInstaller(fs system.FileSystemManager, exec system.CommandRunner, u *ui.UI, opts InstallOptions) *Installer {
	if opts.Binary == "" {
		opts.Binary = "hook-runner"
	}
	return &Installer{fs: fs, exec: exec, ui: u, opts: opts}
}

// Script returns the shell script git runs for hook.
func Script(binary, hook string) string {
	return fmt.Sprintf("#!/bin/sh\n%s\n# %s\nexec %s \"$@\"\n",
		managedMarker, version.Stamp(), shellquote.Join(binary, "hook", hook))
}

// IsManaged reports whether content was written by Install.
func IsManaged(content []byte) bool {
	return strings.Contains(string(content), managedMarker)
}

// HooksDir returns the directory scripts are written to.
func (i *Installer) HooksDir() (string, error) {
	if i.opts.HooksDir != "" {
		return i.opts.HooksDir, nil
	}
	return system.GitHooksDir(i.exec)
}

// Install writes the script for hook. A hook not written by Install is
// backed up first, and only replaced after confirmation or with Force.
// It reports whether the script was written.
func (i *Installer) Install(hook string) (bool, error) {
	if err := common.ValidateHookName(hook); err != nil {
		return false, err
	}

	dir, err := i.HooksDir()
	if err != nil {
		return false, err
	}
	path := filepath.Join(dir, hook)

	exists, err := i.fs.FileExists(path)
	if err != nil {
		return false, err
	}
	if exists {
		existing, err := i.fs.ReadFile(path)
		if err != nil {
			return false, err
		}
		if !IsManaged(existing) {
			if !i.opts.Force {
				replace, err := i.ui.PromptYesNo(fmt.Sprintf("A %s hook already exists. Replace it?", hook), false)
				if err != nil {
					return false, err
				}
				if !replace {
					i.ui.Warningf("Skipped %s: existing hook left in place (use --force to replace)", hook)
					return false, nil
				}
			}
			backup, err := i.fs.BackupFile(path)
			if err != nil {
				return false, err
			}
			i.ui.Infof("Backed up existing %s hook to %s", hook, backup)
		}
	}

	if err := i.fs.EnsureDirectory(dir, 0755); err != nil {
		return false, err
	}
	if err := i.fs.WriteFile(path, []byte(Script(i.opts.Binary, hook)), 0755); err != nil {
		return false, fmt.Errorf("failed to write %s hook: %w", hook, err)
	}

	i.ui.Successf("Installed %s hook: %s", hook, path)
	return true, nil
}

// ErrNotManaged is returned when removing a hook Install did not write.
var ErrNotManaged = errors.New("hook is not managed by hook-runner")

// Uninstall removes the script for hook. It refuses to touch foreign hooks.
func (i *Installer) Uninstall(hook string) error {
	if err := common.ValidateHookName(hook); err != nil {
		return err
	}

	dir, err := i.HooksDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, hook)

	content, err := i.fs.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		i.ui.Infof("No %s hook installed", hook)
		return nil
	}
	if err != nil {
		return err
	}
	if !IsManaged(content) {
		return fmt.Errorf("%s: %w", path, ErrNotManaged)
	}

	if err := i.fs.RemoveFile(path); err != nil {
		return err
	}
	i.ui.Successf("Removed %s hook", hook)
	return nil
}

// State describes what currently sits at a hook's path.
type State int

const (
	NotInstalled State = iota
	Managed
	Foreign
)

func (s State) String() string {
	switch s {
	case Managed:
		return "installed"
	case Foreign:
		return "foreign hook"
	default:
		return "not installed"
	}
}

// Status reports whether hook is installed and who wrote it.
func (i *Installer) Status(hook string) (State, error) {
	dir, err := i.HooksDir()
	if err != nil {
		return NotInstalled, err
	}

	content, err := i.fs.ReadFile(filepath.Join(dir, hook))
	if errors.Is(err, os.ErrNotExist) {
		return NotInstalled, nil
	}
	if err != nil {
		return NotInstalled, err
	}
	if IsManaged(content) {
		return Managed, nil
	}
	return Foreign, nil
}

// Package cli wires configuration, console output, logging and process
// execution together for the hook-runner commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/config"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/hooks"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/logging"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/runner"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/system"
	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/ui"
)

// Options are command-line overrides. Zero values leave the environment
// settings in place.
type Options struct {
	ConfigPath     string
	LogLevel       string
	NoColor        bool
	NonInteractive bool
}

// Context holds all dependencies needed by the commands
type Context struct {
	Settings *config.Settings
	Config   *config.Config
	UI       *ui.UI
	Log      *log.Logger
	Exec     system.CommandRunner
	FS       system.FileSystemManager
	// RepoRoot is the git top-level directory, or the working directory
	// outside a repository.
	RepoRoot string
}

// NewContext creates a new Context with all dependencies initialized
func NewContext(opts Options) (*Context, error) {
	root, err := system.GitTopLevel(system.NewCommandRunner())
	if err != nil {
		if root, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
	}

	settings, err := config.LoadEnv(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	applyOptions(settings, opts)

	uiInstance := ui.New()
	uiInstance.SetNonInteractive(settings.NonInteractive)
	if settings.NoColor {
		uiInstance.DisableColor()
	}

	configPath := settings.ConfigPath
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(root, configPath)
	}

	return &Context{
		Settings: settings,
		Config:   config.New(configPath),
		UI:       uiInstance,
		Log:      logging.New(settings.LogLevel, os.Stderr),
		Exec:     system.NewCommandRunnerWithShell(settings.Shell),
		FS:       system.NewFileSystem(),
		RepoRoot: root,
	}, nil
}

func applyOptions(settings *config.Settings, opts Options) {
	if opts.ConfigPath != "" {
		settings.ConfigPath = opts.ConfigPath
	}
	if opts.LogLevel != "" {
		settings.LogLevel = opts.LogLevel
	}
	if opts.NoColor {
		settings.NoColor = true
	}
	if opts.NonInteractive {
		settings.NonInteractive = true
	}
}

// NewRunner returns a runner bound to this context. The chain file decides
// whether commands go through the shell; opts are applied last.
func (c *Context) NewRunner(opts ...runner.Option) *runner.Runner {
	base := []runner.Option{
		runner.WithExecutor(c.Exec),
		runner.WithLogger(c.Log),
		runner.WithShell(c.Config.ShellEnabled()),
	}
	return runner.New(c.UI, append(base, opts...)...)
}

// NewInstaller returns a hook installer bound to this context.
func (c *Context) NewInstaller(binary string, force bool) *hooks.Installer {
	return hooks.NewInstaller(c.FS, c.Exec, c.UI, hooks.InstallOptions{
		Binary: binary,
		Force:  force,
	})
}

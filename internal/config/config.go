// Package config reads the hook-chain file that maps git hook names to the
// commands run for them, and resolves process settings from the environment.
// The chain file is never written by this tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/common"
)

// Step is one command in a hook chain. Empty fields take the runner defaults.
type Step struct {
	Name           string `yaml:"name"`
	Command        string `yaml:"command"`
	SuccessMessage string `yaml:"successMessage"`
	FailureMessage string `yaml:"failureMessage"`
	// Shell overrides the file-level shell setting for this step.
	Shell *bool `yaml:"shell"`
}

// File is the on-disk layout of the chain file.
type File struct {
	// Shell selects execution through the host shell. Nil means true.
	Shell *bool             `yaml:"shell"`
	Hooks map[string][]Step `yaml:"hooks"`
}

// Config gives read access to a chain file, loaded lazily on first use.
type Config struct {
	filePath string
	file     File
	loaded   bool
	mu       sync.Mutex
}

// New creates a new Config instance
func New(filePath string) *Config {
	if filePath == "" {
		filePath = DefaultFileName
	}
	return &Config{filePath: filePath}
}

// Load reads the chain file. A missing file is an empty configuration.
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// load must be called with c.mu held.
func (c *Config) load() error {
	data, err := os.ReadFile(c.filePath)
	if errors.Is(err, os.ErrNotExist) {
		c.file = File{}
		c.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", c.filePath, err)
	}

	c.file = f
	c.loaded = true
	return nil
}

// ensureLoaded must be called with c.mu held.
func (c *Config) ensureLoaded() error {
	if c.loaded {
		return nil
	}
	return c.load()
}

// Steps returns a copy of the steps configured for hook, in file order.
// A hook with no entry yields an empty slice.
func (c *Config) Steps(hook string) ([]Step, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	steps := c.file.Hooks[hook]
	result := make([]Step, len(steps))
	copy(result, steps)
	return result, nil
}

// HookNames returns the configured hook names, sorted.
func (c *Config) HookNames() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	names := make([]string, 0, len(c.file.Hooks))
	for name := range c.file.Hooks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ShellEnabled reports whether steps run through the host shell.
// Defaults to true, including when the file cannot be loaded.
func (c *Config) ShellEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return true
	}
	if c.file.Shell == nil {
		return true
	}
	return *c.file.Shell
}

// Validate checks hook names and that every step has a command.
func (c *Config) Validate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var errs []error
	for hook, steps := range c.file.Hooks {
		if err := common.ValidateHookName(hook); err != nil {
			errs = append(errs, err)
			continue
		}
		for i, step := range steps {
			if err := common.ValidateNotEmpty(step.Command); err != nil {
				errs = append(errs, fmt.Errorf("hook %s: step %d (%s) has no command", hook, i+1, step.Name))
			}
		}
	}
	return errors.Join(errs...)
}

// FilePath returns the configuration file path
func (c *Config) FilePath() string {
	return c.filePath
}

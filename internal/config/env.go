package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Settings are the process-level options resolved from the environment.
type Settings struct {
	ConfigPath     string
	LogLevel       string
	Shell          string
	NoColor        bool
	NonInteractive bool
}

// LoadEnv loads dir/.hookrun.env when it exists and resolves Settings from
// the environment. Variables already set in the environment take precedence
// over the file. An empty dir skips the file.
func LoadEnv(dir string) (*Settings, error) {
	if dir != "" {
		envPath := filepath.Join(dir, EnvFileName)
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to check %s: %w", envPath, err)
		}
	}

	noColor, err := lookupBool(KeyNoColor)
	if err != nil {
		return nil, err
	}
	nonInteractive, err := lookupBool(KeyNonInteractive)
	if err != nil {
		return nil, err
	}

	return &Settings{
		ConfigPath:     lookup(KeyConfigPath),
		LogLevel:       lookup(KeyLogLevel),
		Shell:          lookup(KeyShell),
		NoColor:        noColor,
		NonInteractive: nonInteractive,
	}, nil
}

func lookup(key string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return Defaults[key]
}

func lookupBool(key string) (bool, error) {
	value := lookup(key)
	if value == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, value)
	}
	return parsed, nil
}

package config

// Environment keys read by LoadEnv
const (
	KeyConfigPath     = "HOOKRUN_CONFIG"    // Chain file, relative to the repository root
	KeyLogLevel       = "HOOKRUN_LOG_LEVEL" // logrus level name
	KeyNoColor        = "HOOKRUN_NO_COLOR"
	KeyShell          = "HOOKRUN_SHELL" // e.g. "bash -c"; empty means sh -c / cmd /C
	KeyNonInteractive = "HOOKRUN_NON_INTERACTIVE"
)

const (
	// DefaultFileName is the chain file looked up at the repository root.
	DefaultFileName = ".hookrun.yml"
	// EnvFileName is an optional dotenv file at the repository root.
	EnvFileName = ".hookrun.env"
)

// Default values for environment keys
var Defaults = map[string]string{
	KeyConfigPath:     DefaultFileName,
	KeyLogLevel:       "warn",
	KeyNoColor:        "false",
	KeyNonInteractive: "false",
}

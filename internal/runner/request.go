package runner

// Defaults applied to empty RunRequest fields
const (
	DefaultName           = "Unknown"
	DefaultCommand        = "echo 'No command was specified!'"
	DefaultSuccessMessage = "Passed"
	DefaultFailureMessage = "Failed"
)

// RunRequest describes one command to run. Every field is optional.
type RunRequest struct {
	Name           string
	Command        string
	SuccessMessage string
	FailureMessage string
}

// WithDefaults returns a copy of r with empty fields replaced by the defaults.
func (r RunRequest) WithDefaults() RunRequest {
	if r.Name == "" {
		r.Name = DefaultName
	}
	if r.Command == "" {
		r.Command = DefaultCommand
	}
	if r.SuccessMessage == "" {
		r.SuccessMessage = DefaultSuccessMessage
	}
	if r.FailureMessage == "" {
		r.FailureMessage = DefaultFailureMessage
	}
	return r
}

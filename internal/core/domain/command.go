package domain

// Command describes one external process invocation.
type Command struct {
	Path string
	Args []string
	Dir  string
	// Env entries in KEY=VALUE form, appended to the process environment.
	Env []string
}

// CommandResult carries the observable outcome of a completed invocation.
// A non-zero exit code is reported here, not as an error: failing to start
// the process is an error, the process failing is a result.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited zero.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

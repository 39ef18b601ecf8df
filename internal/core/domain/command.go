package domain

// CommandSpec describes a single external process invocation.
type CommandSpec struct {
	// Name is the executable to run, resolved against PATH.
	Name string
	// Args are the arguments passed to the executable.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Check marks a non-zero exit as a failure of the calling step.
	// When false, a non-zero exit is reported in the result only.
	Check bool
}

// CommandResult captures the outcome of an external process invocation.
// Output is always captured, never streamed; callers decide what to print.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Succeeded reports whether the command exited with status zero.
func (r CommandResult) Succeeded() bool {
	return r.ExitCode == 0
}

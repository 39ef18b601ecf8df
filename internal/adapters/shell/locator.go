package shell

import "os/exec"

// Locator implements ports.Locator using exec.LookPath.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Look reports whether name resolves to an executable on the current
// PATH, without invoking it.
func (l *Locator) Look(name string) (string, bool) {
	path, err := exec.LookPath(name)
	return path, err == nil
}

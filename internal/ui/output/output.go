// Package output constructs termenv.Output values with consistent color
// profile and TTY handling.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile to use for console output.
// NO_COLOR forces Ascii; otherwise the terminal's capabilities are
// detected automatically.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output for w using the detected profile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stdout
	}

	opts = append(opts, termenv.WithProfile(ColorProfile()))

	return termenv.NewOutput(w, opts...)
}

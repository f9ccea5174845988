// Package output builds termenv outputs with shared color handling for the
// CLI and the log handler.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile honors NO_COLOR before falling back to terminal detection.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv output for w with the shared profile. A nil writer
// falls back to stderr.
func New(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(ColorProfile()), termenv.WithTTY(true))
}

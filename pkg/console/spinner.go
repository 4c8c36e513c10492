package console

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// Spinner shows validation progress on a TTY and is a no-op everywhere else,
// so piped output stays machine-readable.
type Spinner struct {
	inner *spinner.Spinner
}

// NewSpinner creates a spinner with the given message. It stays disabled when
// stdout is not a terminal.
func NewSpinner(message string) *Spinner {
	s := &Spinner{}
	if isatty.IsTerminal(1) {
		s.inner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.inner.Suffix = " " + message
		_ = s.inner.Color("cyan")
	}
	return s
}

// Start begins the animation.
func (s *Spinner) Start() {
	if s.inner != nil {
		s.inner.Start()
	}
}

// Stop halts the animation and clears the line.
func (s *Spinner) Stop() {
	if s.inner != nil {
		s.inner.Stop()
	}
}

// SetMessage updates the text shown next to the spinner.
func (s *Spinner) SetMessage(message string) {
	if s.inner != nil {
		s.inner.Suffix = " " + message
	}
}

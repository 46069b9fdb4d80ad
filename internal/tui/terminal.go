package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsInteractive checks if we're in an interactive terminal
func IsInteractive() bool {
	// Allow forcing non-interactive mode via environment variable
	if os.Getenv("QIT_NON_INTERACTIVE") != "" {
		return false
	}
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// ConfigureColor picks the colour profile for out. Colour is dropped when
// requested, when NO_COLOR is set, or when out is not a terminal.
func ConfigureColor(noColor bool, out *os.File) {
	if noColor || os.Getenv("NO_COLOR") != "" || !isTerminal(out) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(out).EnvColorProfile())
}

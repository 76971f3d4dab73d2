package styles

import (
	"os"

	"github.com/muesli/termenv"
)

var (
	stdout = termenv.NewOutput(os.Stdout)
	stderr = termenv.NewOutput(os.Stderr)

	// ERROR styles fatal startup messages written to stderr.
	ERROR = func(s string) string {
		return stderr.String(s).
			Foreground(stderr.Color("9")).
			String()
	}
	// VERSION styles the --version output.
	VERSION = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("6")).
			Bold().
			String()
	}
	// LOG styles pointers to the log file.
	LOG = func(s string) string {
		return stderr.String(s).
			Foreground(stderr.Color("8")).
			String()
	}
)

package logs

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/ion/cmds"
)

// Writer is where terminal logs go.
type Writer io.Writer

var logFile = cmds.Var[string]("-log-file", "append logs to this file instead of stderr")

func (Module) Writer() Writer {
	if *logFile == "" {
		return os.Stderr
	}
	return openLogFile(*logFile, os.Stderr)
}

// openLogFile opens path for appending. The file stays open for the life of the process.
// If it cannot be opened, the error is written to fallback and fallback is used.
func openLogFile(path string, fallback io.Writer) io.Writer {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(fallback, "open log file: %v, logging to stderr\n", err)
		return fallback
	}
	return f
}

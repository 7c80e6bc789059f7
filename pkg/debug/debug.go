// Package debug provides optional file-based debug logging for layout
// passes.
//
// When the FLEXBOX_DEBUG environment variable is set to a file path, trace
// output of every config that uses [FromEnv] is appended to that file.
// Otherwise the returned logger discards everything.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// EnvVar names the environment variable read by FromEnv.
const EnvVar = "FLEXBOX_DEBUG"

var (
	envOnce   sync.Once
	envLogger hclog.Logger
)

// Open creates a trace-level logger appending to the file at path. If path
// is empty, uses "flexbox-debug.log" in the current directory. The caller
// owns the returned closer.
func Open(path string) (hclog.Logger, io.Closer, error) {
	if path == "" {
		path = "flexbox-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}

	return New(f), f, nil
}

// New returns a trace-level logger named "flexbox" writing to w.
func New(w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:            "flexbox",
		Level:           hclog.Trace,
		Output:          w,
		TimeFormat:      "15:04:05.000",
		IncludeLocation: false,
	})
}

// FromEnv returns the logger selected by FLEXBOX_DEBUG. The file is opened
// once per process and stays open. If the variable is unset or the file
// cannot be opened, the logger discards output.
func FromEnv() hclog.Logger {
	envOnce.Do(func() {
		envLogger = hclog.NewNullLogger()

		path := os.Getenv(EnvVar)
		if path == "" {
			return
		}
		l, _, err := Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "flexbox: %v\n", err)
			return
		}
		envLogger = l
	})
	return envLogger
}

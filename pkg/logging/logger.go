package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// NewLogger creates an hclog logger for cart tooling. Text output gets a
// line prefix; JSON output is left untouched for log shippers.
func NewLogger(name, level string, jsonFormat bool, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}
	if level == "" {
		level = DefaultLevel
	}
	if !jsonFormat {
		output = NewPrefixWriter("🕹️ ", output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// ValidLevel reports whether level names an hclog level.
func ValidLevel(level string) bool {
	return hclog.LevelFromString(level) != hclog.NoLevel
}

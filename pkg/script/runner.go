// Package script applies line-oriented command scripts to a cart.
//
// Each non-blank line that does not start with '#' is one command:
//
//	set <Key> <value>
//	get <Key>
//	reset
//	verify
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Target is the cart surface a script drives.
type Target interface {
	Get(key string) (string, error)
	Set(key, raw string) error
	ResetToDefaults() error
	Verify() error
}

// LineError reports the script line that failed.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Run executes the script read from r against t, writing get results to out
// as "Key=value" lines. It stops at the first failing line.
func Run(r io.Reader, t Target, out io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 64*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := exec(text, t, out); err != nil {
			return &LineError{Line: lineNo, Text: text, Err: err}
		}
	}
	return scanner.Err()
}

func exec(text string, t Target, out io.Writer) error {
	words, err := Fields(text)
	if err != nil {
		return err
	}

	switch verb, args := strings.ToLower(words[0]), words[1:]; verb {
	case "set":
		if len(args) != 2 {
			return fmt.Errorf("usage: set <key> <value>")
		}
		return t.Set(args[0], args[1])
	case "get":
		if len(args) != 1 {
			return fmt.Errorf("usage: get <key>")
		}
		v, err := t.Get(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s=%s\n", args[0], v)
		return err
	case "reset":
		if len(args) != 0 {
			return fmt.Errorf("usage: reset")
		}
		return t.ResetToDefaults()
	case "verify":
		if len(args) != 0 {
			return fmt.Errorf("usage: verify")
		}
		return t.Verify()
	default:
		return fmt.Errorf("unknown command %q", words[0])
	}
}

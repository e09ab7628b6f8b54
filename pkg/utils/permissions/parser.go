// Package permissions parses octal permission strings from configuration.
package permissions

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseMode parses an octal permission string such as "644", "0644" or
// "0o644". An empty string yields fallback.
func ParseMode(s string, fallback os.FileMode) (os.FileMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}

	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0o"), "0O")
	val, err := strconv.ParseUint(digits, 8, 32)
	if err != nil {
		return fallback, fmt.Errorf("invalid permission string %q: %w", s, err)
	}
	if val > 0o777 {
		return fallback, fmt.Errorf("invalid permission string %q: only permission bits are allowed", s)
	}
	return os.FileMode(val), nil
}

// FormatOctal formats a permission value as an octal string
func FormatOctal(mode os.FileMode) string {
	return fmt.Sprintf("0%o", mode.Perm())
}

// OwnerCanWrite checks that the owner write bit is set.
func OwnerCanWrite(mode os.FileMode) bool {
	return mode&0o200 != 0
}

// IsTraversable checks if permissions let the owner enter a directory
func IsTraversable(mode os.FileMode) bool {
	return mode&0o100 != 0
}

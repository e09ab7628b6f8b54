//go:build !windows

package cart

import (
	"errors"
	"os"
	"syscall"
)

// IsProcessRunning checks if a process with given PID is still running
func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// Signal(0) checks if process exists without actually sending a signal.
	// EPERM means it exists but belongs to another user.
	err = process.Signal(syscall.Signal(0))
	return err == nil || errors.Is(err, syscall.EPERM)
}

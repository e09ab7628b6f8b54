//go:build windows

package cart

import (
	"errors"

	"golang.org/x/sys/windows"
)

// GetExitCodeProcess reports this code until the process exits.
const stillActive = 259

// IsProcessRunning checks if a process with given PID is still running
func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		// The process exists but we may not inspect it.
		return errors.Is(err, windows.ERROR_ACCESS_DENIED)
	}
	defer windows.CloseHandle(h)

	var code uint32
	if err := windows.GetExitCodeProcess(h, &code); err != nil {
		return true
	}
	return code == stillActive
}
